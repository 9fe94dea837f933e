// Package httpapi exposes the core operations over HTTP. It is
// transport glue: handlers here decode requests, call pkg/service, and
// serialize the outcome; no request semantics live in this package.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/polyrpc/demoapi/pkg/logging"
	"github.com/polyrpc/demoapi/pkg/service"
)

// API serves the demo backend REST surface.
type API struct {
	svc            *service.Service
	log            *slog.Logger
	port           int
	allowedOrigins []string
	httpServer     *http.Server
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) { a.log = log }
}

// WithAllowedOrigins sets the CORS allow-list. "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(a *API) { a.allowedOrigins = origins }
}

// New creates an API for the given service, listening on port when
// started.
func New(svc *service.Service, port int, opts ...Option) *API {
	a := &API{
		svc:  svc,
		log:  logging.Nop(),
		port: port,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns the full route tree with middleware applied. Exposed
// separately from Start so tests can drive it with httptest.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	a.registerRoutes(mux)

	var h http.Handler = mux
	h = a.corsMiddleware(h)
	h = a.accessLogMiddleware(h)
	return h
}

// Start begins serving and blocks until the server stops.
func (a *API) Start() error {
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.log.Info("http api listening", "port", a.port)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http api: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *API) Shutdown(ctx context.Context) error {
	if a.httpServer == nil {
		return nil
	}
	return a.httpServer.Shutdown(ctx)
}
