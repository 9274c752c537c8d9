package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds draw-service settings, populated from the environment.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"PSEUDORANDOM_ADDR" envDefault:":8080"`

	// PingInterval is how often idle connections are pinged.
	PingInterval time.Duration `env:"PSEUDORANDOM_PING_INTERVAL" envDefault:"30s"`

	// IdleTimeout closes connections with no requests for this long.
	IdleTimeout time.Duration `env:"PSEUDORANDOM_IDLE_TIMEOUT" envDefault:"5m"`

	// MaxOps bounds the number of operations in a single request.
	MaxOps int `env:"PSEUDORANDOM_MAX_OPS" envDefault:"256"`
}

// FromEnv parses configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse server config: %w", err)
	}
	return cfg, nil
}
