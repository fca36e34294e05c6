package coordinator

import (
	"errors"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// scheduleMonitor arms the next viewport poll for s.
func (c *CheckoutCoordinator) scheduleMonitor(s *session) {
	if !c.live(s) {
		return
	}
	s.stopMonitor = c.loop.AfterFunc(c.Settings().MonitorInterval, func() {
		c.monitorTick(s)
	})
}

// monitorTick polls the viewport and element liveness. A tick that faults
// is logged and the monitor stops; the session itself stays up.
func (c *CheckoutCoordinator) monitorTick(s *session) {
	if !c.live(s) || s.state != entity.ModalOpen {
		return
	}
	s.stopMonitor = nil

	err := capture(func() error {
		if !s.elementsAlive() {
			c.forceRecovery(s, errors.New("overlay element destroyed"))
			return nil
		}
		if c.viewport.Size() != s.geometry.Viewport {
			c.scheduleRelayout(s, false)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("viewport monitor failed, stopping")
		c.metrics.MonitorFault()
		return
	}
	c.scheduleMonitor(s)
}

// scheduleRelayout coalesces relayout requests for s into one per loop turn.
func (c *CheckoutCoordinator) scheduleRelayout(s *session, force bool) {
	s.relayouts.Post(relayoutKey, func() {
		c.guard(s, "relayout", func() { c.relayout(s, force) })
	})
}

// relayout recomputes geometry and applies it to every element and the surface.
func (c *CheckoutCoordinator) relayout(s *session, force bool) {
	if !c.live(s) || s.state == entity.ModalClosing {
		return
	}
	geo := c.layout()
	if !force && geo == s.geometry {
		return
	}
	s.geometry = geo
	c.publishGeometry(s)

	ok := c.mutate(s, "relayout scrim", func() error {
		return s.scrim.SetRect(geo.Scrim())
	}) && c.mutate(s, "relayout panel", func() error {
		return s.panel.SetRect(geo.Modal)
	}) && c.mutate(s, "relayout close control", func() error {
		return s.control.SetRect(geo.Close)
	})
	if !ok {
		return
	}
	c.placeSurface(s)
	c.metrics.Relayout()
	s.logger.Debug().Stringer("viewport", geo.Viewport).Int("width", geo.Modal.W).Int("height", geo.Modal.H).Msg("relayout")
}
