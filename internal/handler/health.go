package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/middleware"
	"github.com/deppfellow/titanic-api/internal/server"
)

// HealthHandler exposes a "system" endpoint that external systems can
// use to verify the service is alive and its data backend is readable.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status and dependency checks.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - timestamp (UTC)
//   - environment (from config)
//   - checks map (data_source)
//
// It returns 200 OK if all checks pass, 503 Service Unavailable
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	// ---------------- Data source check --------------------------------------
	sourceStart := time.Now()

	check := map[string]interface{}{
		"backend": h.server.Source.Kind(),
	}

	// The sqlite backend keeps its handle open; ping it so a deleted or
	// corrupted database file surfaces here. The csv backend has no
	// handle to ping.
	var pingErr error
	if pinger, ok := h.server.Source.(interface{ Ping() error }); ok {
		pingErr = pinger.Ping()
	}

	if pingErr != nil {
		check["status"] = "unhealthy"
		check["error"] = pingErr.Error()
		check["response_time"] = time.Since(sourceStart).String()
		isHealthy = false

		logger.Error().
			Err(pingErr).
			Dur("response_time", time.Since(sourceStart)).
			Msg("data source health check failed")
	} else {
		records, err := h.server.Source.ListAll()
		if err != nil {
			check["status"] = "unhealthy"
			check["error"] = err.Error()
			isHealthy = false

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(sourceStart)).
				Msg("data source health check failed")
		} else {
			check["status"] = "healthy"
			check["records"] = len(records)

			logger.Debug().
				Dur("response_time", time.Since(sourceStart)).
				Msg("data source health check passed")
		}
		check["response_time"] = time.Since(sourceStart).String()
	}

	checks["data_source"] = check

	// ---------------- Overall status + response ------------------------------
	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
