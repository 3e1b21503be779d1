//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Megallm/megallm-docs/internal/domain"
	"github.com/Megallm/megallm-docs/internal/infrastructure"
	"github.com/Megallm/megallm-docs/internal/interfaces"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
