package rmqconsumer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"user-account-api/config"
	"user-account-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Consumer prints one audit line per account event.
type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	out        io.Writer
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, out io.Writer) *Consumer {
	if out == nil {
		out = os.Stdout
	}
	return &Consumer{
		cfg: cfg,
		log: logger,
		out: out,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	if err := c.chConsume.QueueBind(
		c.cfg.QueueName,
		mq.BindingKey,
		c.cfg.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue bind %s: %w", mq.BindingKey, err)
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		case <-ctx.Done():
			_ = c.chConsume.Close()
			if c.conn != nil {
				_ = c.conn.Close()
			}
			return
		}
	}
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var action string
	switch msg.RoutingKey {
	case mq.ActionRegistered:
		action = "UserRegistered"
	case mq.ActionLoggedIn:
		action = "UserLoggedIn"
	case mq.ActionLoggedOut:
		action = "UserLoggedOut"
	case mq.ActionBlocked:
		action = "UserBlocked"
	}

	_, err := fmt.Fprintf(c.out,
		"Action=%s EventBody=%s\n",
		action,
		string(msg.Body),
	)

	return err
}
