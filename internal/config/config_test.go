package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, float64(100), cfg.RateLimit.RequestsPerSecond)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadRejectsMissingPasswordOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_SSLMODE", "require")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoadRejectsDisabledSSLInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_SSLMODE", "disable")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_SSLMODE")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, Name: "clinicdesk", User: "app", Password: "pw", SSLMode: "require"}
	assert.Equal(t, "host=localhost user=app password=pw dbname=clinicdesk port=5432 sslmode=require Timezone=UTC", d.DSN())
}
