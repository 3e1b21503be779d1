package infrastructure

import (
	"github.com/google/wire"
	"resty.dev/v3"

	"github.com/Megallm/megallm-docs/internal/config"
	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/infrastructure/crontab"
	"github.com/Megallm/megallm-docs/internal/infrastructure/gateway"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/infrastructure/openapidoc"
	"github.com/Megallm/megallm-docs/internal/utils/httpclients"
	"github.com/Megallm/megallm-docs/internal/utils/httpclients/modelclient"
)

// ProvideConfig returns the configuration loaded at startup, loading it if
// nothing has been loaded yet.
func ProvideConfig() (*config.Config, error) {
	if cfg := config.GetGlobal(); cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// ProvideRestyClient provides the single HTTP client shared by every caller of
// the upstream gateway.
func ProvideRestyClient(cfg *config.Config) *resty.Client {
	return httpclients.NewClient("megallm-upstream", cfg.UpstreamTimeout)
}

func ProvideModelClient(client *resty.Client, cfg *config.Config) *modelclient.ModelClient {
	return modelclient.NewModelClient(client, cfg.UpstreamModelsURL, cfg.UpstreamAPIKey)
}

func ProvideModelGateway(client *modelclient.ModelClient, cfg *config.Config) *gateway.ModelGateway {
	return gateway.NewModelGateway(client, cfg.UpstreamTimeout)
}

// ProvideCatalogGateway labels the presenter's upstream calls.
func ProvideCatalogGateway(gw *gateway.ModelGateway) model.Gateway {
	return gw.ForCaller("catalog")
}

// ProvideOpenAPIDocument loads the API reference and refuses to start when an
// operation the docs link to is missing.
func ProvideOpenAPIDocument(cfg *config.Config) (*openapidoc.Document, error) {
	document, err := openapidoc.Load(cfg.OpenAPIFile)
	if err != nil {
		return nil, err
	}
	if err := document.Require(openapidoc.RequiredOperations...); err != nil {
		return nil, err
	}
	return document, nil
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	logger.GetLogger,

	// Upstream gateway
	ProvideRestyClient,
	ProvideModelClient,
	ProvideModelGateway,
	ProvideCatalogGateway,

	// API reference
	ProvideOpenAPIDocument,

	// Scheduled jobs
	crontab.NewCrontab,
)
