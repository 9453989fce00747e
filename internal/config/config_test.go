package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/titanic-api/internal/config"
)

// setBaseEnv sets the minimal required environment for a loadable config.
// t.Setenv restores the previous values when the test ends.
func setBaseEnv(t *testing.T) {
	t.Helper()

	t.Setenv("TITANIC_PRIMARY.ENV", "test")
	t.Setenv("TITANIC_SERVER.PORT", "8080")
	t.Setenv("TITANIC_SERVER.READ_TIMEOUT", "5")
	t.Setenv("TITANIC_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("TITANIC_SERVER.IDLE_TIMEOUT", "120")
	t.Setenv("TITANIC_SERVER.CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("TITANIC_DATA.SOURCE", "csv")
	t.Setenv("TITANIC_DATA.CSV_PATH", "testdata/titanic.csv")
}

func TestLoad(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, config.SourceCSV, cfg.Data.Source)
	assert.Equal(t, "testdata/titanic.csv", cfg.Data.CSVPath)
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, config.DefaultHistogramBuckets, cfg.Analytics.HistogramBuckets)
}

func TestLoad_ConsoleFormatForLocalEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_PRIMARY.ENV", "local")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_CORSOriginsSplitOnComma(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"http://localhost:3000", "https://example.com"},
		cfg.Server.CORSAllowedOrigins)
}

func TestLoad_HistogramBucketsOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_ANALYTICS.HISTOGRAM_BUCKETS", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Analytics.HistogramBuckets)
}

func TestLoad_InvalidHistogramBuckets(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_ANALYTICS.HISTOGRAM_BUCKETS", "500")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_DATA.SOURCE", "postgres")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_SQLiteRequiresPath(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_DATA.SOURCE", "sqlite")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite_path")
}

func TestLoad_SQLiteSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_DATA.SOURCE", "sqlite")
	t.Setenv("TITANIC_DATA.SQLITE_PATH", "testdata/titanic.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.SourceSQLite, cfg.Data.Source)
	assert.Equal(t, "testdata/titanic.db", cfg.Data.SQLitePath)
}

func TestLoad_CSVPathDefault(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TITANIC_DATA.CSV_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "data/titanic.csv", cfg.Data.CSVPath)
}
