package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/modelhandler"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/responses/modelres"
)

// ModelsRoute is the browser-facing proxy to the upstream model listing. The
// upstream credential never leaves the server.
type ModelsRoute struct {
	modelHandler *modelhandler.ModelHandler
}

func NewModelsRoute(modelHandler *modelhandler.ModelHandler) *ModelsRoute {
	return &ModelsRoute{modelHandler: modelHandler}
}

func (r *ModelsRoute) RegisterRouter(router gin.IRouter) {
	apiRouter := router.Group("/api")
	apiRouter.GET("/models", r.ListModels)
}

// ListModels
// @Summary List upstream models
// @Description Fetches the live model list from the aggregation API.
// @Tags Models
// @Produce json
// @Success 200 {object} modelres.ListResponse
// @Failure 500 {object} modelres.FailureResponse
// @Router /api/models [get]
func (r *ModelsRoute) ListModels(reqCtx *gin.Context) {
	listing, err := r.modelHandler.ListModels(reqCtx.Request.Context())
	if err != nil {
		_ = reqCtx.Error(err)
		reqCtx.JSON(http.StatusInternalServerError, modelres.NewFailureResponse(err))
		return
	}
	reqCtx.JSON(http.StatusOK, modelres.NewListResponse(listing))
}
