package domain

import (
	"github.com/google/wire"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/domain/catalog"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Catalog domain
	ProvideCatalogConfig,
	catalog.NewPresenter,
)

func ProvideCatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		RefreshInterval: cfg.CatalogRefreshInterval,
		AutoRefresh:     cfg.CatalogAutoRefresh,
		FetchTimeout:    cfg.UpstreamTimeout,
	}
}
