// Command api runs the Titanic passenger data HTTP API.
//
// Startup order: config -> logger -> server container (which opens the
// configured data source) -> services -> handlers -> router. Invalid or
// missing configuration and an unreadable data source are fatal here;
// nothing is deferred to the first request.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/config"
	"github.com/deppfellow/titanic-api/internal/handler"
	"github.com/deppfellow/titanic-api/internal/logger"
	"github.com/deppfellow/titanic-api/internal/middleware"
	"github.com/deppfellow/titanic-api/internal/router"
	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger for the window before config is loaded.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("could not load configuration")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Primary.Env)

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize server")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	// Run the listener in the background so the main goroutine can wait
	// for termination signals.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}
