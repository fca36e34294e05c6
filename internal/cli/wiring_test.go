package cli

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/component"
	"github.com/bnema/paysurface/internal/ui/coordinator"
)

func TestCoordinatorSettings_DefaultsMatchBuiltins(t *testing.T) {
	got := CoordinatorSettings(config.DefaultConfig())

	assert.Equal(t, coordinator.DefaultSettings(), got)
	assert.Equal(t, component.PaymentModalSizeDefaults, got.Layout)
}

func TestCoordinatorSettings_Converts(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.MaxWidthFraction = 0.5
	cfg.Animation.DurationMs = 0
	cfg.Monitor.IntervalMs = 250

	got := CoordinatorSettings(cfg)
	assert.InDelta(t, 0.5, got.Layout.MaxWidthPct, 1e-9)
	assert.Zero(t, got.Animation.Duration)
	assert.Equal(t, 16*time.Millisecond, got.Animation.FrameInterval)
	assert.Equal(t, 250*time.Millisecond, got.MonitorInterval)
}

func TestSurfaceOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Surface.Backend = config.SurfaceBackendHeadless
	cfg.Surface.BridgeName = "shop"
	cfg.Surface.CompleteURLs = []string{"myapp://done"}
	cfg.Surface.Chromium.Flags = []string{"disable-gpu"}
	cfg.Surface.Chromium.WindowOriginX = 40

	viewport := port.ViewportFunc(func() entity.Size { return entity.Size{W: 800, H: 600} })
	opts := SurfaceOptions(cfg, nil, zerolog.Nop(), viewport)

	assert.Equal(t, surface.BackendHeadless, opts.Backend)
	assert.Equal(t, "shop", opts.BridgeName)
	assert.Equal(t, []string{"myapp://done"}, opts.DeepLinks.Complete)
	assert.Equal(t, []string{"disable-gpu"}, opts.Chromium.Flags)
	assert.Equal(t, 40, opts.Chromium.OriginX)

	cfg.Surface.CompleteURLs[0] = "changed://"
	assert.Equal(t, "myapp://done", opts.DeepLinks.Complete[0])
}

func TestPlatform(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, surface.Detect(), Platform(cfg))

	cfg.Surface.Platform = "mobile"
	assert.Equal(t, port.PlatformMobile, Platform(cfg))
}

func TestNewAppAt(t *testing.T) {
	dir := t.TempDir()
	app, err := NewAppAt(dir)
	require.NoError(t, err)

	assert.NotNil(t, app.Theme)
	assert.Equal(t, config.DefaultConfig().Layout, app.Config.Layout)
	assert.FileExists(t, app.Manager.GetConfigFile())
	assert.NotNil(t, app.Ctx())
	assert.NoError(t, app.Close())
}
