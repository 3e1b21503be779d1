package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/domain/catalog"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/infrastructure/metrics"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

const (
	DefaultEnvReloadSchedule = "* * * * *"
	catalogMetricsSchedule   = "* * * * *"
)

type Crontab struct {
	ctab      *crontab.Crontab
	presenter *catalog.Presenter
}

func NewCrontab(presenter *catalog.Presenter) *Crontab {
	return &Crontab{
		ctab:      crontab.New(),
		presenter: presenter,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// publish once on start so the gauges exist before the first minute passes
	c.publishCatalogMetrics()

	schedule := DefaultEnvReloadSchedule
	if cfg := config.GetGlobal(); cfg != nil && cfg.EnvReloadSchedule != "" {
		schedule = cfg.EnvReloadSchedule
	}
	if err := c.ctab.AddJob(schedule, reloadEnv); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add env reload job")
	}
	if err := c.ctab.AddJob(catalogMetricsSchedule, c.publishCatalogMetrics); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add catalog metrics job")
	}
	log.Info().Str("env_reload", schedule).Msg("crontab started")

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

// reloadEnv re-reads the environment. Only the log level is applied live;
// everything else takes effect on restart.
func reloadEnv() {
	log := logger.GetLogger()
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("env reload failed, keeping previous config")
		return
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("ignoring invalid LOG_LEVEL")
	}
}

func (c *Crontab) publishCatalogMetrics() {
	snap := c.presenter.Snapshot()
	chat, embedding := snap.Counts()
	metrics.SetCatalogModels(chat, embedding)
	metrics.SetCatalogUp(snap.Status == catalog.StatusLoaded)
	metrics.SetCatalogAge(snap.LastUpdated, time.Now())
}
