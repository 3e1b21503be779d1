package routes

import (
	"github.com/google/wire"

	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/modelhandler"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/api"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/site"
	v1 "github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/v1"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/v1/catalog"
)

var RouteProvider = wire.NewSet(
	// Handlers
	modelhandler.NewModelHandler,
	cataloghandler.NewCatalogHandler,

	// Routes
	api.NewModelsRoute,
	site.NewSiteRoute,
	v1.NewV1Route,
	catalog.NewCatalogRoute,
)
