// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It contains the initialization logic to spin up the HTTP server and
// handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - data source (csv file or embedded sqlite store)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/config"
	"github.com/deppfellow/titanic-api/internal/dataset"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds the config, the logger,
// the resolved data source, and an internal *http.Server used to listen
// and serve requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Source is the resolved passenger data backend. It is opened once
	// here and closed on Shutdown; handlers only ever read from it.
	Source dataset.Source

	// httpServer is the standard library HTTP server instance.
	// It is configured in SetupHTTPServer and started in Start().
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server directly; that is done in
// SetupHTTPServer + Start. Opening the data source happens here so a
// missing file or unreadable store fails startup instead of the first
// request.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	source, err := dataset.Open(cfg, *logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open data source: %w", err)
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		Source: source,
	}, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The actual router/middleware stack is passed in as handler; Echo
// satisfies http.Handler directly.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// These timeouts protect against slow clients and resource
		// exhaustion. Config stores whole seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called
// first and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("data_source", s.Source.Kind()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// It stops the HTTP server first (finishing inflight requests until the
// ctx deadline), then closes the data source handle.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.Source.Close(); err != nil {
		return fmt.Errorf("failed to close data source: %w", err)
	}

	return nil
}
