package modelhandler

import (
	"context"

	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/infrastructure/gateway"
)

// ModelHandler serves the model listing proxy.
type ModelHandler struct {
	gateway model.Gateway
}

func NewModelHandler(gw *gateway.ModelGateway) *ModelHandler {
	return &ModelHandler{gateway: gw.ForCaller("proxy")}
}

// ListModels forwards one listing request upstream. Errors are returned as is
// so the route can relay the upstream message.
func (h *ModelHandler) ListModels(ctx context.Context) (*model.Listing, error) {
	return h.gateway.ListModels(ctx)
}
