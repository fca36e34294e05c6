package cli

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/component"
	"github.com/bnema/paysurface/internal/ui/coordinator"
)

// LayoutConfig converts the layout section to modal sizing tunables.
func LayoutConfig(cfg *config.Config) component.ModalSizeConfig {
	l := cfg.Layout
	return component.ModalSizeConfig{
		MaxWidthPct:         l.MaxWidthFraction,
		FixedChrome:         l.FixedChrome,
		TallHeightThreshold: l.TallHeightThreshold,
		CloseSizePct:        l.CloseSizeFraction,
		CloseMinSize:        l.CloseMinSize,
		CloseMaxSize:        l.CloseMaxSize,
		CloseMargin:         l.CloseMargin,
		ReferenceShortSide:  l.ReferenceShortSide,
	}
}

// CoordinatorSettings converts the config to the tunables a coordinator
// accepts at construction and on reload.
func CoordinatorSettings(cfg *config.Config) coordinator.Settings {
	return coordinator.Settings{
		Layout: LayoutConfig(cfg),
		Animation: coordinator.AnimationConfig{
			Duration:      time.Duration(cfg.Animation.DurationMs) * time.Millisecond,
			FrameInterval: time.Duration(cfg.Animation.FrameIntervalMs) * time.Millisecond,
			ScrimOpacity:  cfg.Animation.ScrimOpacity,
			StartScale:    cfg.Animation.StartScale,
		},
		MonitorInterval: time.Duration(cfg.Monitor.IntervalMs) * time.Millisecond,
	}
}

// Platform resolves the configured platform, detecting it for "auto".
func Platform(cfg *config.Config) port.Platform {
	return surface.ParsePlatform(cfg.Surface.Platform)
}

// DeepLinks returns the configured terminal URL prefixes.
func DeepLinks(cfg *config.Config) bridge.DeepLinks {
	return bridge.DeepLinks{
		Complete: append([]string(nil), cfg.Surface.CompleteURLs...),
		Error:    append([]string(nil), cfg.Surface.ErrorURLs...),
	}
}

// SurfaceOptions converts the surface section to factory options.
func SurfaceOptions(cfg *config.Config, post func(func()), logger zerolog.Logger, viewport port.Viewport) surface.Options {
	s := cfg.Surface
	return surface.Options{
		Post:       post,
		Logger:     logger,
		Viewport:   viewport,
		Backend:    string(s.Backend),
		BridgeName: s.BridgeName,
		DeepLinks:  DeepLinks(cfg),
		Chromium: surface.ChromiumOptions{
			ExecPath:    s.Chromium.ExecPath,
			UserDataDir: s.Chromium.UserDataDir,
			OriginX:     s.Chromium.WindowOriginX,
			OriginY:     s.Chromium.WindowOriginY,
			Flags:       append([]string(nil), s.Chromium.Flags...),
		},
	}
}
