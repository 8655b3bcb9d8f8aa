// Package server exposes the task and label services as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	labelservice "github.com/thenoetrevino/tally/internal/services/label"
	taskservice "github.com/thenoetrevino/tally/internal/services/task"
)

const defaultShutdownTimeout = 10 * time.Second

// Server is the tally HTTP server
type Server struct {
	tasks   taskservice.Service
	labels  labelservice.Service
	logger  *slog.Logger
	metrics *Metrics
	router  *gin.Engine
	cfg     config.ServerConfig
}

// New creates a server routing to the services of a
func New(a *app.App, cfg config.ServerConfig) (*Server, error) {
	s := &Server{
		tasks:   a.TaskService,
		labels:  a.LabelService,
		logger:  a.Logger().With("component", "http"),
		metrics: NewMetrics(),
		router:  gin.New(),
		cfg:     cfg,
	}

	s.router.Use(requestID(), accessLog(s.logger, s.metrics), recovery(s.logger))
	if len(cfg.AllowedOrigins) > 0 {
		mw, err := corsMiddleware(cfg.AllowedOrigins)
		if err != nil {
			return nil, err
		}
		s.router.Use(mw)
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)

	todos := s.router.Group("/todos")
	{
		todos.POST("", s.handleCreateTask)
		todos.GET("", s.handleListTasks)
		todos.GET("/:id", s.handleGetTask)
		todos.PATCH("/:id", s.handleUpdateTask)
		todos.DELETE("/:id", s.handleDeleteTask)
	}

	labels := s.router.Group("/labels")
	{
		labels.POST("", s.handleCreateLabel)
		labels.GET("", s.handleListLabels)
		labels.DELETE("/:id", s.handleDeleteLabel)
	}
}

// Handler returns the router for use with httptest or a custom http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped: %w", err)
		}
		return nil
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}
