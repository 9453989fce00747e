// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/handler"
	"github.com/deppfellow/titanic-api/internal/middleware"
)

// New builds the Echo instance: global middleware first, then all route
// groups. The returned *echo.Echo satisfies http.Handler and is handed
// to server.SetupHTTPServer.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Order matters: request id and the context logger must run before
	// anything that logs.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	registerSystemRoutes(e, h)
	registerPassengerRoutes(e, h)

	return e
}

// registerPassengerRoutes maps the passenger API surface.
func registerPassengerRoutes(e *echo.Echo, h *handler.Handlers) {
	g := e.Group("/passengers")

	g.GET("", handler.Handle(h.Passenger.Handler, h.Passenger.List, http.StatusOK))
	g.GET("/", handler.Handle(h.Passenger.Handler, h.Passenger.List, http.StatusOK))

	// Static segment must be registered alongside the :id route; Echo
	// matches static routes before parameterized ones.
	g.GET("/analytics/fare-histogram", handler.Handle(h.Analytics.Handler, h.Analytics.FareHistogram, http.StatusOK))

	g.GET("/:id", handler.Handle(h.Passenger.Handler, h.Passenger.Get, http.StatusOK))
}
