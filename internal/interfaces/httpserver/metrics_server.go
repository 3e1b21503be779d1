package httpserver

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Megallm/megallm-docs/internal/config"
)

// MetricsServer exposes Prometheus metrics on their own port.
type MetricsServer struct {
	config *config.Config
	log    zerolog.Logger
}

func NewMetricsServer(cfg *config.Config, log zerolog.Logger) *MetricsServer {
	return &MetricsServer{config: cfg, log: log}
}

func (s *MetricsServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:    s.config.MetricsAddr(),
		Handler: mux,
	}
	return serve(ctx, server, s.config, s.log, "metrics server")
}
