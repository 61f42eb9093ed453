package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SPECMOCK_PORT", "")
	t.Setenv("SPECMOCK_WATCH", "")
	t.Setenv("SPECMOCK_METRICS", "")

	cfg := Load()
	assert.Empty(t, cfg.ServerPort)
	assert.False(t, cfg.WatchEnabled)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SPECMOCK_PORT", "9090")
	t.Setenv("SPECMOCK_WATCH", "true")
	t.Setenv("SPECMOCK_METRICS", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.WatchEnabled)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_NonBooleanValues(t *testing.T) {
	t.Setenv("SPECMOCK_WATCH", "yes")
	t.Setenv("SPECMOCK_METRICS", "1")

	cfg := Load()
	assert.False(t, cfg.WatchEnabled)
	assert.False(t, cfg.MetricsEnabled)
}
