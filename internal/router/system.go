package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/handler"
)

// registerSystemRoutes registers "system" endpoints that are not part
// of business logic:
//  1. Root metadata endpoint (name, version, endpoint list)
//  2. Health endpoint (used by orchestrators/monitors)
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Meta.Root)
	e.GET("/status", h.Health.CheckHealth)
}
