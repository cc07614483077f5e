package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	EmailDeliveryDirect = "direct"
	EmailDeliveryQueue  = "queue"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"8080"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqOutgoingEmailExchange string `env:"RABBITMQ_OUTGOING_EMAIL_EXCHANGE" envDefault:""`
	RabbitmqOutgoingEmailQueue    string `env:"RABBITMQ_OUTGOING_EMAIL_QUEUE" envDefault:"outgoing-email"`

	BcryptHasherCost          int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	CodeValidDuration         time.Duration `env:"CODE_VALID_DURATION" envDefault:"24h"`
	SessionTokenValidDuration time.Duration `env:"SESSION_TOKEN_VALID_DURATION" envDefault:"24h"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER,required"`

	// EmailDeliveryMode selects how outbound email leaves the HTTP process:
	// "queue" publishes to RabbitMQ for the mailer worker, "direct" sends
	// through SES inline.
	EmailDeliveryMode string `env:"EMAIL_DELIVERY_MODE" envDefault:"queue"`

	AllowedOrigins      []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	InternalEventsToken string   `env:"INTERNAL_EVENTS_TOKEN,required"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.EmailDeliveryMode != EmailDeliveryDirect && cfg.EmailDeliveryMode != EmailDeliveryQueue {
		return nil, fmt.Errorf("invalid EMAIL_DELIVERY_MODE value: %s", cfg.EmailDeliveryMode)
	}
	return cfg, nil
}
