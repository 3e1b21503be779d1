package interfaces

import (
	"github.com/google/wire"

	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
	httpserver.NewMetricsServer,
)
