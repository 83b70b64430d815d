package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"CARDEVAL_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"CARDEVAL_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"CARDEVAL_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"CARDEVAL_LOG_FORMAT" envDefault:"json"`

	Validator Validator
	Fraud     Fraud
}

// Validator configures the in-process frequent flyer validator.
type Validator struct {
	LicenseKey    string `env:"CARDEVAL_LICENSE_KEY" envDefault:"dev-license"`
	NumberPattern string `env:"CARDEVAL_FLYER_PATTERN" envDefault:"^[A-Z]{2}[0-9]{6,10}$"`
}

// Fraud configures the blocklist fraud lookup.
type Fraud struct {
	Blocklist []string `env:"CARDEVAL_FRAUD_BLOCKLIST" envSeparator:","`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Server{}, fmt.Errorf("CARDEVAL_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
