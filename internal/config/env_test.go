package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Server struct {
		Port string `env:"ENVTEST_PORT"`
	}
	Cache struct {
		Enabled bool          `env:"ENVTEST_CACHE_ENABLED"`
		TTL     time.Duration `env:"ENVTEST_CACHE_TTL"`
	}
	MaxConns int `env:"ENVTEST_MAX_CONNS"`
	Untagged string
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ENVTEST_PORT", "9090")
	t.Setenv("ENVTEST_CACHE_ENABLED", "true")
	t.Setenv("ENVTEST_CACHE_TTL", "45m")
	t.Setenv("ENVTEST_MAX_CONNS", "25")

	cfg := &envTestConfig{Untagged: "left alone"}
	cfg.Server.Port = "8080"

	require.NoError(t, applyEnvOverrides(cfg))

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 45*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 25, cfg.MaxConns)
	assert.Equal(t, "left alone", cfg.Untagged)
}

func TestApplyEnvOverrides_UnsetVarsKeepDefaults(t *testing.T) {
	cfg := &envTestConfig{MaxConns: 10}
	cfg.Server.Port = "8080"

	require.NoError(t, applyEnvOverrides(cfg))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.MaxConns)
}

func TestApplyEnvOverrides_BadValue(t *testing.T) {
	t.Setenv("ENVTEST_MAX_CONNS", "not-a-number")

	err := applyEnvOverrides(&envTestConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENVTEST_MAX_CONNS")
}
