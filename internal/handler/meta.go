package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/server"
)

// APIVersion is reported by the root metadata endpoint.
const APIVersion = "1.0.0"

// APIInfo is the static metadata served at the root. Pure glue: it
// tells a human (or a probe) what this service is and where its
// endpoints live.
type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// MetaHandler serves static API metadata.
type MetaHandler struct {
	Handler
}

// NewMetaHandler constructs a MetaHandler.
func NewMetaHandler(s *server.Server) *MetaHandler {
	return &MetaHandler{
		Handler: NewHandler(s),
	}
}

// Root returns the API name, version, and endpoint list.
func (h *MetaHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, APIInfo{
		Name:    "Titanic Passenger Data API",
		Version: APIVersion,
		Endpoints: []string{
			"GET /passengers/",
			"GET /passengers/:id",
			"GET /passengers/:id?attributes=Name,Age",
			"GET /passengers/analytics/fare-histogram",
			"GET /status",
		},
	})
}
