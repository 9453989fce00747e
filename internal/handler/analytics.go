package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/service"
)

var validate = validator.New()

// AnalyticsHandler serves derived analytic views over the dataset.
type AnalyticsHandler struct {
	Handler
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(s *server.Server, analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		Handler:   NewHandler(s),
		analytics: analytics,
	}
}

// FareHistogramRequest is the payload for the fare-histogram endpoint.
// Buckets of 0 means "not provided" and selects the configured default.
type FareHistogramRequest struct {
	Buckets int `query:"buckets" validate:"omitempty,min=1,max=100"`
}

// Validate implements validation.Validatable.
func (r *FareHistogramRequest) Validate() error {
	return validate.Struct(r)
}

// FareHistogram returns the fare distribution bucketed into equal-width
// ranges, plus total and excluded record counts.
func (h *AnalyticsHandler) FareHistogram(c echo.Context, req *FareHistogramRequest) (*service.HistogramResult, error) {
	return h.analytics.FareHistogram(req.Buckets)
}
