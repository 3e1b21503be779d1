package site

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/infrastructure/openapidoc"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/templates"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

// SiteRoute serves the human facing pages: the catalog and the OpenAPI file
// consumed by the documentation renderer.
type SiteRoute struct {
	catalogHandler *cataloghandler.CatalogHandler
	document       *openapidoc.Document
}

func NewSiteRoute(catalogHandler *cataloghandler.CatalogHandler, document *openapidoc.Document) *SiteRoute {
	return &SiteRoute{
		catalogHandler: catalogHandler,
		document:       document,
	}
}

func (r *SiteRoute) RegisterRouter(router gin.IRouter) {
	models := router.Group("/models")
	models.GET("", r.GetCatalogPage)
	models.POST("/refresh", r.PostRefresh)
	models.POST("/auto-refresh", r.PostAutoRefresh)

	router.GET("/openapi.yaml", r.GetOpenAPIYAML)
	router.GET("/openapi.json", r.GetOpenAPIJSON)
	router.GET("/openapi/operations", r.ListOperations)
	router.GET("/openapi/operations/:operation_id", r.GetOperation)
	router.GET("/site.json", r.GetSiteOptions)
}

func (r *SiteRoute) GetCatalogPage(reqCtx *gin.Context) {
	page := r.catalogHandler.Page(reqCtx.Query("tab"))
	reqCtx.Header("Cache-Control", "no-store")
	reqCtx.HTML(http.StatusOK, templates.CatalogPage, page)
}

// PostRefresh backs the "Refresh Now" and "Retry" buttons.
func (r *SiteRoute) PostRefresh(reqCtx *gin.Context) {
	if err := r.catalogHandler.Refresh(reqCtx.Request.Context()); err != nil {
		platformerrors.WriteError(reqCtx, err, logger.GetLogger())
		return
	}
	reqCtx.Redirect(http.StatusSeeOther, "/models")
}

// PostAutoRefresh backs the auto-refresh checkbox.
func (r *SiteRoute) PostAutoRefresh(reqCtx *gin.Context) {
	enabled, err := strconv.ParseBool(reqCtx.PostForm("enabled"))
	if err != nil {
		platformerrors.WriteValidationError(reqCtx, "enabled must be true or false")
		return
	}
	r.catalogHandler.SetAutoRefresh(enabled)
	reqCtx.Redirect(http.StatusSeeOther, "/models")
}

func (r *SiteRoute) GetOpenAPIYAML(reqCtx *gin.Context) {
	reqCtx.Data(http.StatusOK, "application/yaml; charset=utf-8", r.document.YAML())
}

func (r *SiteRoute) GetOpenAPIJSON(reqCtx *gin.Context) {
	reqCtx.Data(http.StatusOK, "application/json; charset=utf-8", r.document.JSON())
}

type OperationsResponse struct {
	Title      string                 `json:"title"`
	Version    string                 `json:"version"`
	Operations []openapidoc.Operation `json:"operations"`
	Total      int                    `json:"total"`
}

// ListOperations lists the API reference pages the docs renderer builds, in
// path order.
func (r *SiteRoute) ListOperations(reqCtx *gin.Context) {
	operations := r.document.Operations()
	reqCtx.JSON(http.StatusOK, OperationsResponse{
		Title:      r.document.Title,
		Version:    r.document.Version,
		Operations: operations,
		Total:      len(operations),
	})
}

func (r *SiteRoute) GetOperation(reqCtx *gin.Context) {
	operationID := reqCtx.Param("operation_id")
	operation, ok := r.document.Operation(operationID)
	if !ok {
		err := platformerrors.NewErrorWithContext(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeNotFound,
			"operation not found", nil, "7b2e9d41-c5a3-4f6e-8d10-3a9c2e5b7f64", map[string]any{"operation_id": operationID})
		platformerrors.WriteError(reqCtx, err, logger.GetLogger())
		return
	}
	reqCtx.JSON(http.StatusOK, operation)
}

// GetSiteOptions exposes the navigation shell to the documentation renderer.
func (r *SiteRoute) GetSiteOptions(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, r.catalogHandler.Site())
}
