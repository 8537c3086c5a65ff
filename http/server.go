// Package http exposes the prediction API over a stdlib HTTP server.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps *http.Server with the service's middleware chain.
type Server struct {
	server *http.Server
	config ServerConfig
	log    *zap.Logger
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           int
	Timeout        time.Duration
	AllowedOrigins []string
}

// DefaultServerConfig returns the settings used when config.yaml omits them.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:           8000,
		Timeout:        30 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

// NewServer builds the mux, middleware chain and listener.
func NewServer(config ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Port == 0 {
		config.Port = DefaultServerConfig().Port
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultServerConfig().Timeout
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = DefaultServerConfig().AllowedOrigins
	}
	SetLogger(logger)

	mux := http.NewServeMux()
	RegisterHandlers(mux)

	chain := Chain(
		RecoveryMiddleware(logger),
		RequestLogMiddleware(logger),
		SecurityHeadersMiddleware,
		CORSMiddleware(config.AllowedOrigins),
		TimeoutMiddleware(config.Timeout),
	)

	handler := chain(mux)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			Handler:      handler,
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			IdleTimeout:  120 * time.Second,
		},
		config: config,
		log:    logger,
	}
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	s.log.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down, waiting up to 5s for in-flight requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.log.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}
