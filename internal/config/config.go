package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	OTP     OTPConfig
	Order   OrderConfig
	Mailgun MailgunConfig
}

type ServerConfig struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type OTPConfig struct {
	TTL time.Duration `env:"OTP_TTL" envDefault:"5m"`
	// Echo returns the issued code in the API response. Demo convenience
	// only; set OTP_ECHO=false in anything resembling production.
	Echo bool `env:"OTP_ECHO" envDefault:"true"`
}

type OrderConfig struct {
	// ReserveStock decrements product stock when an order is created and
	// restores it on cancellation.
	ReserveStock    bool   `env:"ORDER_RESERVE_STOCK" envDefault:"true"`
	DefaultDelivery string `env:"ORDER_DEFAULT_DELIVERY" envDefault:"2-3 hours"`
	NotifyQueueSize int    `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`
}

type MailgunConfig struct {
	Domain string `env:"MAILGUN_DOMAIN"`
	APIKey string `env:"MAILGUN_API_KEY"`
	Sender string `env:"MAILGUN_SENDER" envDefault:"no-reply@freshmart.example"`
}

func (c MailgunConfig) Enabled() bool {
	return c.Domain != "" && c.APIKey != ""
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
