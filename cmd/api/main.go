package main

import (
	"context"
	"os/signal"
	"syscall"

	httpadapter "tdm/internal/adapter/http"
	"tdm/pkg/config"
	"tdm/pkg/logging"
	"tdm/pkg/tracing"
)

const (
	serviceName    = "tdm"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		telemetry, err := tracing.Init(ctx, tracing.Config{
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
			Environment:    cfg.Environment,
			OTLPEndpoint:   cfg.OTLPEndpoint,
		})

		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telemetry")
		}

		defer telemetry.Shutdown(context.Background())
	}

	if err := httpadapter.StartServer(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}

	logger.Info().Msg("shutdown complete")
}
