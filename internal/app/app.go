package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/bengobox/keeds-app/internal/clock"
	"github.com/bengobox/keeds-app/internal/config"
	"github.com/bengobox/keeds-app/internal/httpapi"
	"github.com/bengobox/keeds-app/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/keeds-app/internal/httpapi/middleware"
	"github.com/bengobox/keeds-app/internal/metrics"
	"go.uber.org/zap"
)

const metricsNamespace = "keeds"

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New constructs the application.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	return NewWithClock(ctx, cfg, logger, clock.System{})
}

// NewWithClock constructs the application with an explicit time source.
func NewWithClock(_ context.Context, cfg *config.Config, logger *zap.Logger, c clock.Clock) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}

	greetingHandler := handlers.NewGreetingHandler(c, logger)

	deps := httpapi.RouterDeps{
		GreetingHandler: greetingHandler.Home,
		HealthHandler:   handlers.Health(cfg.App.ServiceName, c),
		RequestID:       httpmiddleware.RequestID,
		AccessLog:       httpmiddleware.AccessLog(logger),
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
		RequestTimeout:  cfg.HTTP.RequestTimeout,
	}
	if cfg.HTTP.MetricsEnabled {
		recorder := metrics.New(metricsNamespace)
		deps.MetricsHandler = recorder.Handler()
		deps.Metrics = httpmiddleware.Metrics(recorder)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server with TLS if certificates are configured.
// It returns nil once the server has been shut down.
func (a *App) Run() error {
	var err error
	if a.cfg.HTTP.TLSCertFile != "" && a.cfg.HTTP.TLSKeyFile != "" {
		a.logger.Info("starting HTTPS server",
			zap.String("cert", a.cfg.HTTP.TLSCertFile),
			zap.String("key", a.cfg.HTTP.TLSKeyFile),
			zap.String("addr", a.httpServer.Addr),
		)
		err = a.httpServer.ListenAndServeTLS(a.cfg.HTTP.TLSCertFile, a.cfg.HTTP.TLSKeyFile)
	} else {
		a.logger.Info("starting HTTP server", zap.String("addr", a.httpServer.Addr))
		err = a.httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
