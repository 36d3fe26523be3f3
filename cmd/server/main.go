package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nulzo/unified-router/internal/adapters/providers/factory"
	"github.com/nulzo/unified-router/internal/buildinfo"
	"github.com/nulzo/unified-router/internal/cli"
	"github.com/nulzo/unified-router/internal/config"
	"github.com/nulzo/unified-router/internal/core/services"
	"github.com/nulzo/unified-router/internal/endpoint"
	"github.com/nulzo/unified-router/internal/modeldata"
	"github.com/nulzo/unified-router/internal/platform/logger"
	"github.com/nulzo/unified-router/internal/platform/otel"
	"github.com/nulzo/unified-router/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: logger.DefaultConfig().EnableColor,
	})
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting unified router",
		zap.String("version", buildinfo.Version().String()),
		zap.String("env", cfg.Server.Env),
		zap.Bool("unified", cfg.Unified.Enabled),
		zap.String("log_level", logger.Level()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := otel.InitTracer(cfg.Tracing.Enabled, cfg.Tracing.ServiceName, log, os.Stderr)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	resolver := endpoint.NewResolver(cfg.Env, endpoint.WithLogger(logger.With(zap.String("component", "endpoint"))))
	catalog := services.NewInMemoryModelRegistry(modeldata.KnownModels)

	router := services.NewRouterService(resolver, catalog, services.RouterConfig{
		UnifiedEnabled: cfg.Unified.Enabled,
		Defaults:       cfg.Providers,
		CustomModels:   cfg.Custom.Models,
	}, logger.With(zap.String("component", "router")))
	router.SetClientFactory(factory.NewProviderFactory())

	for p, d := range cfg.Providers {
		if d.APIKey != "" {
			log.Debug("Provider key configured", zap.String("provider", p.String()), logger.Secret("api_key", d.APIKey))
		}
	}
	if !cfg.IsProduction() {
		cli.PrintProviders(os.Stdout, router.Providers())
	}

	srv := server.New(cfg, log, router, resolver)
	if err := srv.Run(ctx); err != nil {
		log.Error("Server failed", zap.Error(err))
		os.Exit(1)
	}
}
