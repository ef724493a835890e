package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "9091", cfg.Server.MetricsPort)
	assert.Equal(t, 30, cfg.Server.ShutdownGrace)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "payment-connector-engine", cfg.Log.ServiceName)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PAYMENT_CONNECTOR_ENGINE_SERVER_PORT", "7000")
	t.Setenv("PAYMENT_CONNECTOR_ENGINE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}
