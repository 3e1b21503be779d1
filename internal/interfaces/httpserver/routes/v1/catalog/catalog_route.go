package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/responses/catalogres"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

type CatalogRoute struct {
	catalogHandler *cataloghandler.CatalogHandler
}

func NewCatalogRoute(catalogHandler *cataloghandler.CatalogHandler) *CatalogRoute {
	return &CatalogRoute{catalogHandler: catalogHandler}
}

func (r *CatalogRoute) RegisterRouter(router gin.IRouter) {
	catalogRouter := router.Group("/catalog")
	catalogRouter.GET("", r.GetCatalog)
	catalogRouter.POST("/refresh", r.PostRefresh)
	catalogRouter.PUT("/auto-refresh", r.PutAutoRefresh)
}

type AutoRefreshRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetCatalog
// @Summary Catalog snapshot
// @Description Current catalog state with every tab formatted for display.
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalogres.CatalogResponse
// @Router /v1/catalog [get]
func (r *CatalogRoute) GetCatalog(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, r.catalogHandler.Catalog())
}

// PostRefresh
// @Summary Refresh the catalog
// @Description Re-enters the loading state and fetches the model list again.
// @Tags Catalog
// @Produce json
// @Success 202 {object} catalogres.RefreshResponse
// @Failure 503 {object} platformerrors.HTTPErrorResponse
// @Router /v1/catalog/refresh [post]
func (r *CatalogRoute) PostRefresh(reqCtx *gin.Context) {
	if err := r.catalogHandler.Refresh(reqCtx.Request.Context()); err != nil {
		platformerrors.WriteError(reqCtx, err, logger.GetLogger())
		return
	}
	reqCtx.JSON(http.StatusAccepted, catalogres.RefreshResponse{Status: "loading"})
}

// PutAutoRefresh
// @Summary Toggle auto-refresh
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body AutoRefreshRequest true "desired state"
// @Success 200 {object} catalogres.AutoRefreshResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Router /v1/catalog/auto-refresh [put]
func (r *CatalogRoute) PutAutoRefresh(reqCtx *gin.Context) {
	var req AutoRefreshRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(reqCtx, "body must be {\"enabled\": true|false}")
		return
	}
	enabled := r.catalogHandler.SetAutoRefresh(*req.Enabled)
	reqCtx.JSON(http.StatusOK, catalogres.AutoRefreshResponse{AutoRefresh: enabled})
}
