// Package api serves the dice game over HTTP: a JSON action API plus a
// per-room Server-Sent Events stream for state broadcasts.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type ServerConfig struct {
	Host string
	Port int
	// WriteTimeout is zero because SSE connections are long-lived
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:              "0.0.0.0",
		Port:              8080,
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

type Server struct {
	logger *slog.Logger
	config ServerConfig
	http   *http.Server
}

func NewServer(logger *slog.Logger, config ServerConfig, router http.Handler) *Server {
	return &Server{
		logger: logger.With(slog.String("component", "api")),
		config: config,
		http: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:           router,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
	}
}

// Start serves until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("server listening", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
