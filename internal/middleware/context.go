package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/server"
)

// LoggerKey is used as the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger carrying correlation fields
// (request_id, method, path, ip) and stores it in both the Echo context
// and the Go request context so deeper layers that only see a
// context.Context can log with the same fields.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app Server
// container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that derives a child logger
// for every request and makes it retrievable via GetLogger.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Request ID comes from the RequestID middleware; empty if
			// it did not run first.
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext middleware didn't run, it returns a no-op logger so
// callers never crash on a nil logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
