// Package bootstrap assembles the SDK stack from configuration.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hypernetlabs/galileo-go/config"
)

// InitLogger initializes the structured logger writing JSON to w.
func InitLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables, reading the
// given .env files first when they exist. With no files, ./.env is tried.
func LoadConfig(envFiles ...string) (config.SDKConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.SDKConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.SDKConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}
