package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/v1/catalog"
)

type V1Route struct {
	catalog *catalog.CatalogRoute
}

func NewV1Route(catalog *catalog.CatalogRoute) *V1Route {
	return &V1Route{catalog: catalog}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.catalog.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary Get build version
// @Description Returns the build version and the time the environment was last reloaded.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetEnvReloadedAt().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz godoc
// @Summary Health check endpoint
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/healthz [get]
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz godoc
// @Summary Readiness check endpoint
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/readyz [get]
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
