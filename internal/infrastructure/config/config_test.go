package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedEnv = []string{
	"LOGI_APP_NAME",
	"LOGI_APP_ENV",
	"LOGI_APP_PORT",
	"LOGI_DATABASE_HOST",
	"LOGI_DATABASE_PORT",
	"LOGI_DATABASE_PASSWORD",
	"LOGI_DATABASE_DBNAME",
	"LOGI_DATABASE_SSLMODE",
	"LOGI_DATABASE_MAX_OPEN_CONNS",
	"LOGI_DATABASE_MAX_IDLE_CONNS",
	"LOGI_REDIS_HOST",
	"LOGI_REPORT_FACET_CACHE_TTL",
	"LOGI_REPORT_EXPORT_MAX_ROWS",
	"LOGI_TELEMETRY_METRICS_PATH",
	"LOGI_TELEMETRY_SAMPLING_RATIO",
	"LOGI_TELEMETRY_COLLECTOR_ENDPOINT",
	"LOGI_HTTP_CORS_ALLOW_ORIGINS",
}

// isolateEnv clears every managed variable and restores the originals when the test ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	original := make(map[string]string, len(managedEnv))
	for _, k := range managedEnv {
		original[k] = os.Getenv(k)
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for k, v := range original {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		isolateEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "logistics-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "logistics", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThresh)
		assert.Equal(t, 5*time.Minute, cfg.Report.FacetCacheTTL)
		assert.Equal(t, "/metrics", cfg.Telemetry.MetricsPath)
		assert.Equal(t, "logistics-backend", cfg.Telemetry.ServiceName)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Empty(t, cfg.Telemetry.CollectorEndpoint)
		assert.Empty(t, cfg.Redis.Addr())
	})

	t.Run("loads values from environment variables with LOGI prefix", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_APP_NAME", "report-api")
		os.Setenv("LOGI_APP_PORT", "9000")
		os.Setenv("LOGI_DATABASE_HOST", "db.internal")
		os.Setenv("LOGI_DATABASE_PORT", "5433")
		os.Setenv("LOGI_REDIS_HOST", "cache.internal")
		os.Setenv("LOGI_REPORT_FACET_CACHE_TTL", "30s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "report-api", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
		assert.Equal(t, 30*time.Second, cfg.Report.FacetCacheTTL)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("LOGI_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects negative export limit", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_REPORT_EXPORT_MAX_ROWS", "-5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "export_max_rows")
	})

	t.Run("keeps an explicit zero sampling ratio", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_TELEMETRY_SAMPLING_RATIO", "0")
		os.Setenv("LOGI_TELEMETRY_COLLECTOR_ENDPOINT", "otel-collector:4317")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "otel-collector:4317", cfg.Telemetry.CollectorEndpoint)
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("rejects relative metrics path", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_TELEMETRY_METRICS_PATH", "metrics")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics_path")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("requires database.password in production", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_APP_ENV", "production")
		os.Setenv("LOGI_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_APP_ENV", "production")
		os.Setenv("LOGI_DATABASE_PASSWORD", "secure-password")
		os.Setenv("LOGI_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		isolateEnv(t)
		os.Setenv("LOGI_APP_ENV", "production")
		os.Setenv("LOGI_DATABASE_PASSWORD", "secure-password")
		os.Setenv("LOGI_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "/testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}
