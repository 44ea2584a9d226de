// Package config loads host configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the bridge host configuration.
type Config struct {
	Addr           string        `env:"NAVBRIDGE_ADDR" envDefault:"127.0.0.1:7577"`
	LogLevel       slog.Level    `env:"NAVBRIDGE_LOG_LEVEL" envDefault:"info"`
	WriteWait      time.Duration `env:"NAVBRIDGE_WRITE_WAIT" envDefault:"10s"`
	PongWait       time.Duration `env:"NAVBRIDGE_PONG_WAIT" envDefault:"60s"`
	SendBuffer     int           `env:"NAVBRIDGE_SEND_BUFFER" envDefault:"256"`
	ReplyCacheSize int           `env:"NAVBRIDGE_REPLY_CACHE" envDefault:"1024"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
