package cataloghandler

import (
	"context"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/domain/catalog"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/responses/catalogres"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/site"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

type CatalogHandler struct {
	presenter *catalog.Presenter
	site      site.Options
}

func NewCatalogHandler(presenter *catalog.Presenter, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		presenter: presenter,
		site:      site.BaseOptions(cfg),
	}
}

func (h *CatalogHandler) Catalog() catalogres.CatalogResponse {
	return catalogres.NewCatalogResponse(h.presenter.Snapshot())
}

func (h *CatalogHandler) Page(tabID string) catalogres.CatalogPage {
	return catalogres.NewCatalogPage(h.site, h.presenter.Snapshot(), tabID)
}

// Refresh starts a fetch and returns without waiting for it. It fails once the
// presenter has stopped.
func (h *CatalogHandler) Refresh(ctx context.Context) error {
	log := logger.GetLogger()
	log.Info().Msg("catalog refresh requested")
	if !h.presenter.Refresh(ctx) {
		return platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeUnavailable,
			"catalog is shutting down", nil, "e41b7c96-2f5d-4a83-9b0e-6c7d1a3f58e2")
	}
	return nil
}

func (h *CatalogHandler) SetAutoRefresh(enabled bool) bool {
	h.presenter.SetAutoRefresh(enabled)
	log := logger.GetLogger()
	log.Info().Bool("enabled", enabled).Msg("catalog auto-refresh toggled")
	return h.presenter.AutoRefresh()
}

func (h *CatalogHandler) Site() site.Options {
	return h.site
}
