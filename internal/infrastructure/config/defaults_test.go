package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 0.95, cfg.Layout.MaxWidthFraction, 1e-9)
	assert.Equal(t, 120, cfg.Layout.FixedChrome)
	assert.Equal(t, 250, cfg.Animation.DurationMs)
	assert.Equal(t, 16, cfg.Animation.FrameIntervalMs)
	assert.Equal(t, 100, cfg.Monitor.IntervalMs)
	assert.Equal(t, SurfaceBackendAuto, cfg.Surface.Backend)
	assert.Equal(t, "paysurface", cfg.Surface.BridgeName)
	assert.False(t, cfg.Metrics.Enabled)
}
