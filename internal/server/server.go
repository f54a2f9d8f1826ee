package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/internal/logging"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 30 * time.Second

// Server is the HTTP listener of the API
type Server struct {
	http   *http.Server
	logger *logging.Logger
}

// New creates a server for handler using the listen address and timeouts in settings
func New(settings *config.Settings, handler http.Handler, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		http: &http.Server{
			Addr:         settings.Addr(),
			Handler:      handler,
			ReadTimeout:  settings.Server.ReadTimeout,
			WriteTimeout: settings.Server.WriteTimeout,
		},
		logger: logger.WithComponent(logging.ComponentHTTP),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("server exited")
	return nil
}
