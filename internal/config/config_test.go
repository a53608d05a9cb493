package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "./forestshield.db", cfg.DatabasePath)
	assert.Equal(t, "devsecret", cfg.JWTSecret)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/var/data/fs.db")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/data/fs.db", cfg.DatabasePath)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}

func TestLoadDashboardDefaults(t *testing.T) {
	t.Setenv("DASHBOARD_PORT", "")
	t.Setenv("PREDICT_URL", "")

	cfg, err := LoadDashboard()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "http://127.0.0.1:8000/predecir", cfg.PredictURL)
}
