// Package api provides the HTTP server for the lost-and-found service.
package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apickard/discbin/internal/logger"
	"github.com/apickard/discbin/pkg/lostfound/store"
	"github.com/apickard/discbin/pkg/metrics"
)

// Server provides the HTTP server for the found-disc API and staff UI.
//
// The server supports graceful shutdown with configurable timeout.
type Server struct {
	server          *http.Server
	config          APIConfig
	instanceID      string
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
}

// NewServer creates a new API HTTP server.
//
// The server is created in a stopped state. Call Start() to begin
// serving requests. The metrics argument may be nil when metrics are
// disabled.
func NewServer(config APIConfig, discStore store.DiscStore, m *metrics.Metrics) *Server {
	config.applyDefaults()

	instanceID := uuid.New().String()
	router := NewRouter(discStore, m, instanceID, config.RequestTimeout)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		server:          server,
		config:          config,
		instanceID:      instanceID,
		shutdownTimeout: 5 * time.Second,
	}
}

// SetShutdownTimeout overrides how long graceful shutdown may take
// before in-flight requests are aborted.
func (s *Server) SetShutdownTimeout(d time.Duration) {
	if d > 0 {
		s.shutdownTimeout = d
	}
}

// Start starts the HTTP server and blocks until the context is
// cancelled or an error occurs. Cancellation triggers graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening",
			"port", s.config.Port,
			"instance_id", s.instanceID,
		)
		logger.Debug("API endpoints available",
			"inventory", fmt.Sprintf("http://localhost:%d/inventory", s.config.Port),
			"health", fmt.Sprintf("http://localhost:%d/health", s.config.Port),
		)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
			}
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("API server shutdown signal received")
		// Fresh context: the cancelled one would abort shutdown immediately.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("API server failed: %w", err)
	}
}

// Stop initiates graceful shutdown of the API server.
// Stop is safe to call multiple times and concurrently with Start().
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		logger.Debug("API server shutdown initiated")

		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("API server shutdown error: %w", err)
			logger.Error("API server shutdown error", "error", err)
		} else {
			logger.Info("API server stopped gracefully")
		}
	})
	return shutdownErr
}

// Port returns the TCP port the server is listening on.
func (s *Server) Port() int {
	return s.config.Port
}

// InstanceID returns the unique id assigned to this server process.
func (s *Server) InstanceID() string {
	return s.instanceID
}
