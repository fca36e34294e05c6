package coordinator

import "github.com/bnema/paysurface/internal/domain/entity"

// handleSurfaceEvent reacts to an event from the session's surface.
// Events from a finished or replaced session are dropped.
func (c *CheckoutCoordinator) handleSurfaceEvent(s *session, ev entity.SurfaceEvent) {
	if !c.live(s) {
		s.logger.Debug().Str("event", ev.Kind.String()).Msg("stale surface event dropped")
		return
	}
	s.logger.Debug().Str("event", ev.Kind.String()).Msg("surface event")

	switch ev.Kind {
	case entity.SurfacePageLoaded:
		if c.callbacks.OnPageLoaded != nil {
			c.notify(s, "on_page_loaded", func() { c.callbacks.OnPageLoaded(ev.URL) })
		}

	case entity.SurfacePaymentComplete:
		c.forwardOutcome(s, func() {
			if c.callbacks.OnPaymentComplete != nil {
				c.callbacks.OnPaymentComplete(ev.Payload)
			}
		})
		c.beginClose(s, entity.CloseCompleted)

	case entity.SurfaceError:
		c.forwardError(s, ev.Message)
		c.beginClose(s, entity.CloseFailed)

	case entity.SurfaceInitFailed:
		s.logger.Error().Str("message", ev.Message).Msg("surface initialization failed")
		c.forwardError(s, ev.Message)
		c.end(s, entity.CloseInitFailed)

	case entity.SurfaceCloseRequested:
		c.beginClose(s, entity.CloseUser)

	case entity.SurfaceClosed:
		s.logger.Warn().Msg("surface closed underneath the overlay")
		c.end(s, entity.CloseBackend)
	}
}

// forwardOutcome delivers at most one payment outcome per session.
func (c *CheckoutCoordinator) forwardOutcome(s *session, deliver func()) {
	if s.outcome {
		return
	}
	s.outcome = true
	c.notify(s, "outcome", deliver)
}

func (c *CheckoutCoordinator) forwardError(s *session, message string) {
	c.forwardOutcome(s, func() {
		if c.callbacks.OnPaymentError != nil {
			c.callbacks.OnPaymentError(message)
		}
	})
}

// closeClicked is the close control handler: a close while Opening or Open.
func (c *CheckoutCoordinator) closeClicked(s *session) {
	if !c.live(s) {
		return
	}
	switch s.state {
	case entity.ModalOpening, entity.ModalOpen:
		c.beginClose(s, entity.CloseUser)
	}
}
