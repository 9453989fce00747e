package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/middleware"
	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to access shared resources
// via *server.Server (config, logger, data source).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value: the struct only contains a pointer
// field, so copying is cheap and still points to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a
// bound-and-validated request payload and returns a response or an
// error. Req is always a pointer type so Echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes the endpoint boilerplate:
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - timing (validation duration, handler duration, total duration)
//   - JSON response writing
func handleRequest(
	c echo.Context,
	req validation.Validatable,
	handler func(c echo.Context, req validation.Validatable) (any, error),
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// logging, and JSON response writing, returning an echo.HandlerFunc
// ready to register on a route.
//
// A fresh Req instance is allocated per request; binding into a shared
// payload would race under concurrent requests.
//
// Usage pattern (typical):
//
//	router.GET("/x/:id", handler.Handle(h.Handler, h.getX, http.StatusOK))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req validation.Validatable) (any, error) {
			return handler(c, req.(PReq))
		}, status)
	}
}
