package main

import (
	"github.com/seedable/pseudorandom/cmd/pseudorandom/shared"
	"github.com/seedable/pseudorandom/internal/server"
)

// ServeCmd runs the websocket draw service. Settings come from the
// environment (PSEUDORANDOM_*); flags override.
type ServeCmd struct {
	Addr       string `kong:"help='Listen address (overrides PSEUDORANDOM_ADDR)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
	Structured bool   `kong:"help='Structured (JSON) log output'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, c.Structured)

	cfg, err := server.FromEnv()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}

	logger.Info().
		Str("address", cfg.Addr).
		Dur("ping_interval", cfg.PingInterval).
		Dur("idle_timeout", cfg.IdleTimeout).
		Int("max_ops", cfg.MaxOps).
		Msg("Starting draw service")

	ctx := shared.SetupSignalHandler(logger)
	return server.New(logger, cfg, nil).Serve(ctx)
}
