package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	APP struct {
		Name       string        `env:"SERVICE_NAME" env-default:"useraccount"`
		Host       string        `env:"SERVICE_HOST" env-default:"0.0.0.0"`
		Port       string        `env:"SERVICE_PORT" env-default:"8080"`
		Env        string        `env:"SERVICE_ENV" env-default:"debug"`
		JWTSecret  string        `env:"SERVICE_JWT_SECRET" env-required:"true"`
		TokenTTL   time.Duration `env:"SERVICE_TOKEN_TTL" env-default:"24h"`
		BcryptCost int           `env:"SERVICE_BCRYPT_COST" env-default:"10"`
	}
	DB struct {
		User        string `env:"POSTGRES_USER"`
		Password    string `env:"POSTGRES_PASSWORD"`
		Name        string `env:"POSTGRES_DB"`
		Host        string `env:"POSTGRES_HOST"`
		Port        string `env:"POSTGRES_PORT" env-default:"5432"`
		SSLMode     string `env:"POSTGRES_SSLMODE" env-default:"disable"`
		AutoMigrate bool   `env:"POSTGRES_AUTO_MIGRATE" env-default:"true"`
	}
	MQ struct {
		Enabled      bool   `env:"RABBITMQ_ENABLED" env-default:"true"`
		User         string `env:"RABBITMQ_USER"`
		Password     string `env:"RABBITMQ_PASSWORD"`
		Vhost        string `env:"RABBITMQ_VHOST"`
		Host         string `env:"RABBITMQ_HOST"`
		AmqpPort     string `env:"RABBITMQ_AMQP_PORT" env-default:"5672"`
		Exchange     string `env:"RABBITMQ_EXCHANGE" env-default:"account.events"`
		ExchangeType string `env:"RABBITMQ_EXCHANGE_TYPE" env-default:"topic"`
		QueueName    string `env:"RABBITMQ_QUEUE_NAME" env-default:"account.audit"`
	}

	Config struct {
		App APP
		DB  DB
		MQ  MQ
	}
)

// Load reads an optional .env file into the process environment and
// then fills Config from it.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}

	return cfg, nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Host:   c.DB.Host + ":" + c.DB.Port,
		Path:   c.DB.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.DB.SSLMode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// MigrateDSN is DBDSN with the scheme golang-migrate registers for pgx v5.
func (c Config) MigrateDSN() (string, error) {
	dsn, err := c.DBDSN()
	if err != nil {
		return "", err
	}
	return "pgx5" + strings.TrimPrefix(dsn, "postgres"), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
