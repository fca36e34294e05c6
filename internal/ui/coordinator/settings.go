package coordinator

import (
	"time"

	"github.com/bnema/paysurface/internal/ui/component"
)

// AnimationConfig controls the show and hide transitions.
type AnimationConfig struct {
	Duration      time.Duration
	FrameInterval time.Duration
	ScrimOpacity  float64 // scrim alpha when fully shown
	StartScale    float64 // panel scale when fully hidden
}

// Settings are the tunables a config reload may replace.
type Settings struct {
	Layout          component.ModalSizeConfig
	Animation       AnimationConfig
	MonitorInterval time.Duration
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{
		Layout: component.PaymentModalSizeDefaults,
		Animation: AnimationConfig{
			Duration:      250 * time.Millisecond,
			FrameInterval: 16 * time.Millisecond,
			ScrimOpacity:  0.6,
			StartScale:    0.92,
		},
		MonitorInterval: 100 * time.Millisecond,
	}
}

// normalized fills zero values from the defaults.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.Layout == (component.ModalSizeConfig{}) {
		s.Layout = def.Layout
	}
	if s.Animation == (AnimationConfig{}) {
		s.Animation = def.Animation
	}
	if s.Animation.FrameInterval <= 0 {
		s.Animation.FrameInterval = def.Animation.FrameInterval
	}
	if s.Animation.Duration < 0 {
		s.Animation.Duration = 0
	}
	if s.MonitorInterval <= 0 {
		s.MonitorInterval = def.MonitorInterval
	}
	return s
}
