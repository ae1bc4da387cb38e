package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
)

// Server wraps the gin engine in an http.Server with the configured
// timeouts and a graceful shutdown path.
type Server struct {
	srv    *http.Server
	engine *gin.Engine
	logger logging.Logger
}

// NewServer builds the trigger server from configuration.
func NewServer(cfg config.ServerConfig, engine *gin.Engine, log logging.Logger) *Server {
	return &Server{
		engine: engine,
		logger: log,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("trigger server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("trigger server shutting down")
	return s.srv.Shutdown(ctx)
}

// Handler exposes the underlying engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

//Personal.AI order the ending
