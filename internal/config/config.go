package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure returned by New.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `env:"LABSITE_ADDR" envDefault:":8080" validate:"required"`
	OutputDir       string        `env:"LABSITE_OUTPUT_DIR" envDefault:"public" validate:"required"`
	BackURL         string        `env:"LABSITE_BACK_URL" validate:"omitempty,uri"`
	Bucket          string        `env:"LABSITE_S3_BUCKET"`
	RateLimit       float64       `env:"LABSITE_RATE_LIMIT" envDefault:"20" validate:"gte=0"`
	ShutdownTimeout time.Duration `env:"LABSITE_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet; the default handler is fine for this.
		slog.Debug("no .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv parses and validates configuration from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints declared on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
