package coordinator

import (
	"math"
	"time"
)

// easeOutCubic decelerates towards the end of the transition.
func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// animate moves s.progress towards target one frame at a time and calls done
// on the loop once it arrives. A running animation for s is replaced.
// Frames of a cancelled session never touch the UI.
func (c *CheckoutCoordinator) animate(s *session, target float64, done func()) {
	if s.stopAnim != nil {
		s.stopAnim()
		s.stopAnim = nil
	}
	cfg := c.Settings().Animation

	step := 1.0
	if cfg.Duration > 0 {
		frames := math.Ceil(float64(cfg.Duration) / float64(cfg.FrameInterval))
		step = 1 / math.Max(frames, 1)
	}
	delay := cfg.FrameInterval
	if cfg.Duration <= 0 {
		delay = 0
	}

	var frame func()
	schedule := func() {
		s.stopAnim = c.loop.AfterFunc(delay, func() {
			c.guard(s, "animation frame", frame)
		})
	}
	frame = func() {
		if !c.live(s) {
			return
		}
		s.stopAnim = nil
		if s.progress < target {
			s.progress = math.Min(target, s.progress+step)
		} else {
			s.progress = math.Max(target, s.progress-step)
		}
		if !c.applyFrame(s) {
			return
		}
		if s.progress == target {
			done()
			return
		}
		schedule()
	}
	schedule()
}

// applyFrame writes the eased animation values for s.progress.
func (c *CheckoutCoordinator) applyFrame(s *session) bool {
	cfg := c.Settings().Animation
	e := easeOutCubic(s.progress)

	return c.mutate(s, "animate scrim", func() error {
		return s.scrim.SetOpacity(e * cfg.ScrimOpacity)
	}) && c.mutate(s, "animate panel", func() error {
		if err := s.panel.SetOpacity(e); err != nil {
			return err
		}
		return s.panel.SetScale(cfg.StartScale + (1-cfg.StartScale)*e)
	}) && c.mutate(s, "animate close control", func() error {
		return s.control.SetOpacity(e)
	})
}

// animationLength returns how long a full transition takes with the
// current settings, rounded up to whole frames.
func (c *CheckoutCoordinator) animationLength() time.Duration {
	cfg := c.Settings().Animation
	if cfg.Duration <= 0 {
		return 0
	}
	frames := math.Ceil(float64(cfg.Duration) / float64(cfg.FrameInterval))
	return time.Duration(frames) * cfg.FrameInterval
}
