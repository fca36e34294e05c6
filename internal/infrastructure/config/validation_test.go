package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "width fraction above one",
			mutate:  func(c *Config) { c.Layout.MaxWidthFraction = 1.2 },
			wantErr: "layout.max_width_fraction",
		},
		{
			name:    "zero width fraction",
			mutate:  func(c *Config) { c.Layout.MaxWidthFraction = 0 },
			wantErr: "layout.max_width_fraction",
		},
		{
			name: "close min above max",
			mutate: func(c *Config) {
				c.Layout.CloseMinSize = 80
				c.Layout.CloseMaxSize = 40
			},
			wantErr: "layout.close_min_size must not exceed",
		},
		{
			name:    "zero frame interval",
			mutate:  func(c *Config) { c.Animation.FrameIntervalMs = 0 },
			wantErr: "animation.frame_interval_ms",
		},
		{
			name:   "zero duration disables animation",
			mutate: func(c *Config) { c.Animation.DurationMs = 0 },
		},
		{
			name:    "negative monitor interval",
			mutate:  func(c *Config) { c.Monitor.IntervalMs = -1 },
			wantErr: "monitor.interval_ms",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Surface.Backend = "gecko" },
			wantErr: "surface.backend",
		},
		{
			name:    "bridge name not an identifier",
			mutate:  func(c *Config) { c.Surface.BridgeName = "pay-surface" },
			wantErr: "surface.bridge_name",
		},
		{
			name:    "deep link without scheme",
			mutate:  func(c *Config) { c.Surface.CompleteURLs = []string{"shop.example.com/done"} },
			wantErr: "must include a scheme",
		},
		{
			name: "metrics address",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.ListenAddr = "9464"
			},
			wantErr: "metrics.listen_addr",
		},
		{
			name:    "log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.FixedChrome = -1
	cfg.Monitor.IntervalMs = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.fixed_chrome")
	assert.Contains(t, err.Error(), "monitor.interval_ms")
}
