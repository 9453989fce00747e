package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/titanic-api/internal/config"
	"github.com/deppfellow/titanic-api/internal/handler"
	"github.com/deppfellow/titanic-api/internal/middleware"
	"github.com/deppfellow/titanic-api/internal/router"
	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/service"
)

const fixtureCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley (Florence Briggs Thayer)",female,38,1,0,PC 17599,71.2833,C85,C
3,1,3,"Heikkinen, Miss. Laina",female,26,0,0,STON/O2. 3101282,7.925,,S
4,0,3,"Moran, Mr. James",male,,0,0,330877,,,Q
`

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "titanic.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
		},
		Data: config.DataConfig{
			Source:  config.SourceCSV,
			CSVPath: path,
		},
		Logging:   config.LoggingConfig{Level: "disabled", Format: "json"},
		Analytics: config.AnalyticsConfig{HistogramBuckets: config.DefaultHistogramBuckets},
	}

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Source.Close() })

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	return router.New(handlers, middlewares)
}

func doGET(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Root(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)

	var info handler.APIInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Titanic Passenger Data API", info.Name)
	assert.Equal(t, handler.APIVersion, info.Version)
	assert.NotEmpty(t, info.Endpoints)
}

func TestAPI_ListPassengers(t *testing.T) {
	e := newTestAPI(t)

	for _, target := range []string{"/passengers", "/passengers/"} {
		rec := doGET(t, e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 4)
		assert.Equal(t, float64(1), records[0]["PassengerId"])
		assert.Equal(t, float64(4), records[3]["PassengerId"])
	}
}

func TestAPI_GetPassenger(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/1")

	require.Equal(t, http.StatusOK, rec.Code)

	// Exact string comparison: field order must follow the dataset
	// schema, not alphabetical map order.
	assert.Equal(t,
		`{"PassengerId":1,"Survived":0,"Pclass":3,"Name":"Braund, Mr. Owen Harris",`+
			`"Sex":"male","Age":22,"SibSp":1,"Parch":0,"Ticket":"A/5 21171",`+
			`"Fare":7.25,"Cabin":null,"Embarked":"S"}`,
		strings.TrimSpace(rec.Body.String()))
}

func TestAPI_GetPassengerNotFound(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/9999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passenger 9999 not found")
	assert.Contains(t, rec.Body.String(), `"NOT_FOUND"`)
}

func TestAPI_GetPassengerMalformedID(t *testing.T) {
	e := newTestAPI(t)

	for _, target := range []string{"/passengers/abc", "/passengers/-1", "/passengers/0"} {
		rec := doGET(t, e, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"id"`, target)
	}
}

func TestAPI_GetPassengerWithAttributes(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/1?attributes=Name,Age")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"Name":"Braund, Mr. Owen Harris","Age":22}`,
		strings.TrimSpace(rec.Body.String()))
}

func TestAPI_GetPassengerWithAttributesReordered(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/1?attributes=Fare,PassengerId")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"Fare":7.25,"PassengerId":1}`,
		strings.TrimSpace(rec.Body.String()))
}

func TestAPI_GetPassengerWithInvalidAttributes(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/1?attributes=Name,Bogus,AlsoBogus")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "INVALID_ATTRIBUTES")
	assert.Contains(t, body, "Bogus")
	assert.Contains(t, body, "AlsoBogus")
}

func TestAPI_FareHistogram(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/analytics/fare-histogram?buckets=4")

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.HistogramResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.Len(t, result.Buckets, 4)
	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 1, result.ExcludedCount, "passenger 4 has no fare")

	sum := 0
	for _, b := range result.Buckets {
		sum += b.Count
	}
	assert.Equal(t, result.TotalCount-result.ExcludedCount, sum)
}

func TestAPI_FareHistogramDefaultBuckets(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/passengers/analytics/fare-histogram")

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.HistogramResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Buckets, config.DefaultHistogramBuckets)
}

func TestAPI_FareHistogramInvalidBuckets(t *testing.T) {
	e := newTestAPI(t)

	for _, target := range []string{
		"/passengers/analytics/fare-histogram?buckets=200",
		"/passengers/analytics/fare-histogram?buckets=-1",
	} {
		rec := doGET(t, e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestAPI_Health(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/status")

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestAPI_UnknownRoute(t *testing.T) {
	rec := doGET(t, newTestAPI(t), "/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestAPI_RequestIDHeader(t *testing.T) {
	e := newTestAPI(t)

	rec := doGET(t, e, "/passengers/1")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// Upstream-provided ids are passed through.
	req := httptest.NewRequest(http.MethodGet, "/passengers/1", nil)
	req.Header.Set("X-Request-ID", "test-correlation-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "test-correlation-id", rec.Header().Get("X-Request-ID"))
}
