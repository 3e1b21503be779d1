package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/domain/catalog"
	"github.com/Megallm/megallm-docs/internal/infrastructure/crontab"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/infrastructure/observability"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver"
)

type Application struct {
	httpServer    *httpserver.HttpServer
	metricsServer *httpserver.MetricsServer
	presenter     *catalog.Presenter
	crontab       *crontab.Crontab
}

// @title MegaLLM Docs
// @version 1.0
// @description Documentation site backend: live model catalog and the /api/models proxy.
// @BasePath /
func (application *Application) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return application.presenter.Run(ctx)
	})
	eg.Go(func() error {
		return application.crontab.Run(ctx)
	})
	eg.Go(func() error {
		return application.metricsServer.Run(ctx)
	})
	eg.Go(func() error {
		return application.httpServer.Run(ctx)
	})
	return eg.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	configured, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Str("format", cfg.LogFormat).Msg("configure logger")
	}
	log = configured

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	log.Info().
		Str("version", config.Version).
		Str("environment", cfg.Environment).
		Msg("starting megallm docs server")

	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
