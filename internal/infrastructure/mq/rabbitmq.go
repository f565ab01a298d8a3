package mq

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"user-account-api/config"
	"user-account-api/internal/interface/api/rest/dto/user"
)

// "Rely on metrics, not guesses."
const bufferSize = 128

// Routing keys of account events.
const (
	ActionRegistered = "user.registered"
	ActionLoggedIn   = "user.logged_in"
	ActionLoggedOut  = "user.logged_out"
	ActionBlocked    = "user.blocked"

	BindingKey = "user.*"
)

type (
	InputCh  = chan Event
	RabbitMQ struct {
		cfg   config.MQ
		log   *zap.Logger
		conn  *amqp091.Connection
		pubCh *amqp091.Channel
		in    InputCh
	}
	Event struct {
		Id      uuid.UUID  `json:"event_id"`
		TS      time.Time  `json:"time_stamp"`
		Action  string     `json:"event_action"`
		UserID  int64      `json:"user_id"`
		Payload *user.User `json:"user_payload,omitempty"`
	}

	// NopPublisher drops every event; used when messaging is disabled.
	NopPublisher struct{}
)

func NewEvent(action string, userID int64, payload *user.User) Event {
	return Event{
		Id:      uuid.New(),
		TS:      time.Now().UTC(),
		Action:  action,
		UserID:  userID,
		Payload: payload,
	}
}

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg: cfg,
		log: logger,
		in:  make(chan Event, bufferSize),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	amqpCfg := amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "useraccount",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}

	var err error
	r.conn, err = amqp091.DialConfig(dsn, amqpCfg)
	if err != nil {
		return err
	}
	r.pubCh, err = r.conn.Channel()
	if err != nil {
		_ = r.conn.Close()
		r.conn = nil
		return err
	}

	r.log.Info("rabbitmq connected successfully")

	return nil
}

func (r *RabbitMQ) Init() error {
	var err error
	if err = r.pubCh.ExchangeDeclare(
		r.cfg.Exchange,
		r.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = r.pubCh.Close()
		return err
	}
	q, err := r.pubCh.QueueDeclare(
		r.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	return r.pubCh.QueueBind(q.Name, BindingKey, r.cfg.Exchange, false, nil)
}

// Publish hands the event to the publisher worker.
func (r *RabbitMQ) Publish(ctx context.Context, e Event) error {
	select {
	case r.in <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker ")

	defer func() {
		r.log.Info("publisher worker gracefully stopped")
	}()

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				// alert
				r.log.Error("mq publish error", zap.Error(err), zap.String("action", e.Action))
			}
		case <-ctx.Done():
			if r.pubCh != nil {
				_ = r.pubCh.Close()
			}
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		// alert
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.Id.String(),
		Timestamp:    e.TS,
		Type:         e.Action,
		Body:         b,
	}

	return r.pubCh.PublishWithContext(
		ctx,
		r.cfg.Exchange,
		e.Action,
		false,
		false,
		pub,
	)
}

func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }

func (NopPublisher) Publish(context.Context, Event) error { return nil }
