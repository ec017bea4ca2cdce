package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem-advisor/cmd/holdem-advisor/shared"
	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/consensus"
	"github.com/lox/holdem-advisor/internal/oracle"
	"github.com/lox/holdem-advisor/internal/service"
)

// ServeCmd runs the WebSocket advisory service.
type ServeCmd struct {
	Config     string `kong:"default='advisor.hcl',help='Path to HCL config file'"`
	Addr       string `kong:"help='Override listener address from config'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
	Structured bool   `kong:"help='Structured JSON log output'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	if c.Structured {
		logger = shared.SetupStructuredLogger(c.Debug)
	}

	cfg, err := service.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.ListenAddr()
	if c.Addr != "" {
		addr = c.Addr
	}

	var o oracle.Oracle = oracle.NewHTTPOracle(oracle.HTTPConfig{
		URL:    cfg.Oracle.URL,
		Model:  cfg.Oracle.Model,
		APIKey: os.Getenv(cfg.Oracle.APIKeyEnv),
	})
	if timeout := cfg.OracleTimeout(); timeout > 0 {
		o = oracle.WithDeadline(o, quartz.NewReal(), timeout)
	}

	coordinator := consensus.NewCoordinator(o,
		consensus.WithValidators(cfg.Oracle.Validators),
		consensus.WithLogger(logger),
	)
	registry := advisor.NewRegistry(coordinator, logger)
	server := service.NewServer(addr, registry, logger)

	logger.Info().
		Str("address", addr).
		Str("model", cfg.Oracle.Model).
		Int("validators", cfg.Oracle.Validators).
		Dur("oracle_timeout", cfg.OracleTimeout()).
		Msg("starting holdem-advisor service")

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
