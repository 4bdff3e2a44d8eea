// Package server provides HTTP server initialization and management.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/AtRiskMedia/tractpage-go/internal/application/container"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/http/routes"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// Server wraps the HTTP server with configuration and dependency injection
type Server struct {
	httpServer *http.Server
	logger     *logging.ChanneledLogger
}

// New creates the preview server. WriteTimeout stays unset because the log
// stream is long-lived; the websocket sets its own write deadlines.
func New(port string, container *container.Container) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:        net.JoinHostPort("", port),
			Handler:     routes.SetupRoutes(container),
			ReadTimeout: config.ServerReadTimeout,
			IdleTimeout: config.ServerIdleTimeout,
		},
		logger: container.Logger,
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until Stop is called.
func (s *Server) Start() error {
	s.logger.System().Info("HTTP server listening", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Shutdown().Info("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
