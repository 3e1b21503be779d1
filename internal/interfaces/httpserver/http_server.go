package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Megallm/megallm-docs/internal/config"
	middleware "github.com/Megallm/megallm-docs/internal/interfaces/httpserver/middlewares"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/api"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/site"
	v1 "github.com/Megallm/megallm-docs/internal/interfaces/httpserver/routes/v1"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/templates"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	engine *gin.Engine
	config *config.Config
	log    zerolog.Logger
}

func NewHttpServer(
	apiRoute *api.ModelsRoute,
	siteRoute *site.SiteRoute,
	v1Route *v1.V1Route,
	cfg *config.Config,
	log zerolog.Logger,
) (*HttpServer, error) {
	if !config.IsDev() || cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	pages, err := templates.Load()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	engine.Use(middleware.LoggingMiddleware(log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	engine.SetHTMLTemplate(pages)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/models")
	})

	if cfg.EnableSwagger {
		engine.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
	}

	apiRoute.RegisterRouter(engine)
	siteRoute.RegisterRouter(engine)
	v1Route.RegisterRouter(engine)

	return &HttpServer{
		engine: engine,
		config: cfg,
		log:    log,
	}, nil
}

// Handler exposes the engine for in-process tests.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.config.Addr(),
		Handler: s.engine,
	}
	return serve(ctx, server, s.config, s.log, "HTTP server")
}

func serve(ctx context.Context, server *http.Server, cfg *config.Config, log zerolog.Logger, name string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msgf("%s listening", name)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msgf("%s error", name)
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msgf("Context cancelled, shutting down %s", name)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
