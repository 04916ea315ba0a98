// Package server builds the gin engine and runs the HTTP server for the
// configured modules.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/extension"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/middleware"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/version"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

// Server owns the module manager and the gin engine
type Server struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	manager *extension.Manager
	engine  *gin.Engine
}

// New initializes the configured modules and, when enabled, migrates and
// seeds their tables.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, d *data.Data) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if d == nil {
		return nil, fmt.Errorf("data layer not initialized")
	}

	mgr := extension.NewManager(cfg, d, log)
	if err := mgr.InitExtensions(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize extensions: %w", err)
	}

	if cfg.Data != nil && cfg.Data.Database != nil {
		if cfg.Data.Database.Migrate {
			if err := mgr.Migrate(ctx); err != nil {
				mgr.Cleanup()
				return nil, err
			}
		}
		if cfg.Data.Database.Seed {
			if err := mgr.Seed(ctx); err != nil {
				mgr.Cleanup()
				return nil, err
			}
		}
	}

	return &Server{config: cfg, logger: log, data: d, manager: mgr}, nil
}

// Manager exposes the module manager to the CLI
func (s *Server) Manager() *extension.Manager {
	return s.manager
}

// SetupRouter builds the engine once and returns it.
func (s *Server) SetupRouter() *gin.Engine {
	if s.engine != nil {
		return s.engine
	}

	switch s.config.RunMode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(s.config.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Trace())
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.CORS(s.config.CORS))

	r.GET("/health", s.health)
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound(""))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed(""))
	})

	s.manager.RegisterRoutes(r)

	s.engine = r
	return r
}

func (s *Server) health(c *gin.Context) {
	status := http.StatusOK
	state := "healthy"
	if err := s.data.Ping(c.Request.Context()); err != nil {
		s.logger.Warn(c.Request.Context(), "health check failed", "error", err)
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	resp.WithStatusCode(c.Writer, status, map[string]any{
		"success": status == http.StatusOK,
		"status":  state,
		"version": version.GetVersionInfo().Version,
		"modules": s.manager.GetMetadata(),
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.SetupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(context.Background(), "Starting server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// Cleanup releases module resources
func (s *Server) Cleanup() {
	s.manager.Cleanup()
}
