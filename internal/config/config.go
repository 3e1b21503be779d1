package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Config holds all environment backed configuration for the catalog service.
type Config struct {
	// HTTP Server
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort     int           `env:"METRICS_PORT" envDefault:"9091"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Upstream model gateway
	UpstreamModelsURL string        `env:"UPSTREAM_MODELS_URL" envDefault:"https://ai.megallm.io/v1/models"`
	UpstreamAPIKey    string        `env:"UPSTREAM_API_KEY,notEmpty"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	// Catalog presenter
	CatalogRefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"30s"`
	CatalogAutoRefresh     bool          `env:"CATALOG_AUTO_REFRESH" envDefault:"true"`

	// Documentation site shell
	SiteTitle    string `env:"SITE_TITLE" envDefault:"MegaLLM"`
	SiteLogo     string `env:"SITE_LOGO" envDefault:"/logo.png"`
	DocsURL      string `env:"DOCS_URL" envDefault:"/docs"`
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"https://megallm.io"`
	OpenAPIFile  string `env:"OPENAPI_FILE" envDefault:"openapi.yaml"`

	// Scheduled jobs
	EnvReloadSchedule string `env:"ENV_RELOAD_SCHEDULE" envDefault:"* * * * *"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"megallm-docs"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"megallm"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	EnableSwagger      bool     `env:"ENABLE_SWAGGER" envDefault:"true"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8080"`

	// Internal
	EnvReloadedAt time.Time `env:"-"`
}

// Load parses environment variables into Config, validates it and publishes
// it as the global instance.
//
// Loading order (highest to lowest priority):
//  1. Environment variables
//  2. .env file (if present)
//  3. Default values from struct tags
func Load() (*Config, error) {
	loadEnvFiles(".env", "../.env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.ParseRequestURI(c.UpstreamModelsURL)
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_MODELS_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid UPSTREAM_MODELS_URL: unsupported scheme %q", u.Scheme)
	}
	if strings.TrimSpace(c.UpstreamAPIKey) == "" {
		return errors.New("UPSTREAM_API_KEY must not be blank")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	if c.CatalogRefreshInterval <= 0 {
		return errors.New("CATALOG_REFRESH_INTERVAL must be positive")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MetricsAddr returns the Prometheus listen address.
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// GetGlobal returns the most recently loaded config.
func GetGlobal() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// GetEnvReloadedAt returns when the environment was last reloaded
func GetEnvReloadedAt() time.Time {
	if cfg := GetGlobal(); cfg != nil {
		return cfg.EnvReloadedAt
	}
	return time.Time{}
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
		}
	}
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
