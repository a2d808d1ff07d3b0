package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macroprep/backend/config"
)

// Server wraps the HTTP server around the gin engine.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New creates a server for the configured host and port.
func New(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
