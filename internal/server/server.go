package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/pkg/config"
	"github.com/FACorreiaa/northern-oak/internal/routes"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	router   http.Handler
	handlers *routes.AppHandlers

	// base is the parent of every request context; it is cancelled when
	// shutdown starts so open streams end.
	base       context.Context
	cancelBase context.CancelFunc
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	base, cancel := context.WithCancel(context.Background())
	return &Server{cfg: cfg, logger: logger, base: base, cancelBase: cancel}, nil
}

// HTTPServer creates and configures the HTTP server. There is no write
// timeout because the testimonial stream stays open while the page does.
func (s *Server) HTTPServer() *http.Server {
	srv := &http.Server{
		Addr:              ":" + s.cfg.ServerPort,
		Handler:           s.router,
		IdleTimeout:       time.Minute,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.base },
	}
	srv.RegisterOnShutdown(s.cancelBase)
	return srv
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close closes all server resources
func (s *Server) Close() {
	s.cancelBase()
	if s.handlers != nil {
		s.handlers.Close()
	}
}
