package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/logging"
	"github.com/bnema/paysurface/internal/ui/component"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

const relayoutKey = "relayout"

var errNoSurface = errors.New("factory returned no surface")

// session is one open-to-closed lifetime of the overlay.
type session struct {
	id     string
	gen    uint64
	url    string
	ctx    context.Context
	cancel context.CancelFunc
	logger *zerolog.Logger

	state       entity.ModalState
	closeReason entity.CloseReason // set when Closing starts
	geometry    entity.Geometry
	progress    float64 // 0 hidden, 1 fully shown; linear animation time
	outcome     bool    // payment outcome already forwarded

	scrim   port.Element
	panel   port.Element
	control port.Element

	surface     port.Surface
	unsubscribe func()

	relayouts   *mainloop.Coalescer
	stopMonitor func()
	stopAnim    func()
	ended       bool
}

func (s *session) elements() []port.Element {
	out := make([]port.Element, 0, 3)
	for _, el := range []port.Element{s.scrim, s.panel, s.control} {
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}

// elementsAlive reports whether every created element still exists.
func (s *session) elementsAlive() (alive bool) {
	defer func() {
		if recover() != nil {
			alive = false
		}
	}()
	for _, el := range s.elements() {
		if !el.Alive() {
			return false
		}
	}
	return true
}

func (s *session) stopTimers() {
	if s.stopMonitor != nil {
		s.stopMonitor()
		s.stopMonitor = nil
	}
	if s.stopAnim != nil {
		s.stopAnim()
		s.stopAnim = nil
	}
}

// live reports whether s is the current, unfinished session.
func (c *CheckoutCoordinator) live(s *session) bool {
	return s != nil && !s.ended && c.session == s && s.ctx.Err() == nil
}

func (c *CheckoutCoordinator) open(url string) {
	if url == "" {
		c.logger.Debug().Msg("open ignored: empty url")
		return
	}
	if c.shutdown {
		c.logger.Warn().Msg("open ignored: coordinator shut down")
		return
	}

	c.openSeq++
	seq := c.openSeq

	s := c.session
	if s == nil {
		c.begin(url)
		return
	}

	// Reopen: drop the current session without animation, then start fresh
	// one loop turn later.
	reason := entity.CloseSuperseded
	if s.state == entity.ModalClosing && s.closeReason != "" {
		reason = s.closeReason
	}
	s.logger.Debug().Str("next_url", url).Msg("reopening checkout")
	c.setState(s, entity.ModalClosing)
	c.end(s, reason)

	c.loop.Post(func() {
		c.guard(nil, "reopen", func() {
			if seq != c.openSeq || c.shutdown {
				return
			}
			c.begin(url)
		})
	})
}

func (c *CheckoutCoordinator) begin(url string) {
	gen := c.generation.Add(1)
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(logging.WithSession(c.baseCtx, id, gen))
	ctx = logging.WithURL(ctx, url)

	s := &session{
		id:        id,
		gen:       gen,
		url:       url,
		ctx:       ctx,
		cancel:    cancel,
		logger:    logging.FromContext(ctx),
		relayouts: mainloop.NewCoalescer(c.loop.Post),
	}
	c.session = s
	c.setState(s, entity.ModalOpening)

	if err := capture(func() error {
		s.geometry = c.layout()
		return nil
	}); err != nil {
		c.initFailed(s, fmt.Errorf("layout: %w", err))
		return
	}
	c.publishGeometry(s)

	if !c.createElements(s) {
		return
	}

	if err := capture(func() error { return c.attachSurface(s) }); err != nil {
		c.initFailed(s, fmt.Errorf("create surface: %w", err))
		return
	}
	c.metrics.SessionOpened(s.surface.Backend())
	s.logger.Info().Str("backend", s.surface.Backend()).Stringer("viewport", s.geometry.Viewport).Msg("opening checkout")

	if err := capture(func() error {
		s.surface.Hide()
		c.placeSurface(s)
		s.surface.Load(url)
		return nil
	}); err != nil {
		c.initFailed(s, fmt.Errorf("load: %w", err))
		return
	}
	if !c.live(s) {
		return
	}

	c.animate(s, 1, func() {
		c.setState(s, entity.ModalOpen)
		s.surface.Show()
		c.scheduleMonitor(s)
	})
}

// attachSurface creates the session's surface and subscribes to its events.
func (c *CheckoutCoordinator) attachSurface(s *session) error {
	surf := c.factory.Create(s.ctx)
	if surf == nil {
		return errNoSurface
	}
	s.surface = surf
	s.unsubscribe = surf.Subscribe(func(ev entity.SurfaceEvent) {
		c.guard(s, "surface event", func() { c.handleSurfaceEvent(s, ev) })
	})
	return nil
}

// initFailed ends s the way a backend init failure does: payment error,
// then Closed without animation.
func (c *CheckoutCoordinator) initFailed(s *session, err error) {
	if !c.live(s) {
		return
	}
	s.logger.Error().Err(err).Msg("surface initialization failed")
	c.forwardError(s, err.Error())
	c.end(s, entity.CloseInitFailed)
}

func (c *CheckoutCoordinator) layout() entity.Geometry {
	return component.CalculatePaymentModal(c.viewport.Size(), c.Settings().Layout)
}

func (c *CheckoutCoordinator) publishGeometry(s *session) {
	geo := s.geometry
	c.geometry.Store(&geo)
}

// createElements builds scrim, panel and close control. A failure ends the
// session as a forced recovery.
func (c *CheckoutCoordinator) createElements(s *session) bool {
	var err error
	if s.scrim, err = c.host.CreateScrim(); err == nil {
		if s.panel, err = c.host.CreatePanel(); err == nil {
			s.control, err = c.host.CreateCloseControl(func() {
				c.guard(s, "close click", func() { c.closeClicked(s) })
			})
		}
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("creating overlay elements failed")
		c.end(s, entity.CloseForced)
		return false
	}

	geo, anim := s.geometry, c.Settings().Animation
	return c.mutate(s, "init scrim", func() error {
		if err := s.scrim.SetRect(geo.Scrim()); err != nil {
			return err
		}
		if err := s.scrim.SetOpacity(0); err != nil {
			return err
		}
		return s.scrim.SetActive(true)
	}) && c.mutate(s, "init panel", func() error {
		if err := s.panel.SetRect(geo.Modal); err != nil {
			return err
		}
		if err := s.panel.SetOpacity(0); err != nil {
			return err
		}
		return s.panel.SetScale(anim.StartScale)
	}) && c.mutate(s, "init close control", func() error {
		if err := s.control.SetRect(geo.Close); err != nil {
			return err
		}
		if err := s.control.SetOpacity(0); err != nil {
			return err
		}
		return s.control.SetActive(true)
	})
}

func (c *CheckoutCoordinator) placeSurface(s *session) {
	if s.surface == nil {
		return
	}
	m := s.geometry.Modal
	s.surface.SetPosition(m.X, m.Y)
	s.surface.SetSize(m.W, m.H)
}

func (c *CheckoutCoordinator) close() {
	s := c.session
	if s == nil {
		// Cancels a reopen still waiting for its loop turn.
		c.openSeq++
		return
	}
	switch s.state {
	case entity.ModalOpening, entity.ModalOpen:
		c.beginClose(s, entity.CloseUser)
	default:
		s.logger.Debug().Stringer("state", s.state).Msg("close ignored")
	}
}

// beginClose hides the surface and plays the hide animation before teardown.
func (c *CheckoutCoordinator) beginClose(s *session, reason entity.CloseReason) {
	if !c.live(s) || s.state == entity.ModalClosing {
		return
	}
	s.closeReason = reason
	c.setState(s, entity.ModalClosing)
	if s.stopMonitor != nil {
		s.stopMonitor()
		s.stopMonitor = nil
	}
	s.relayouts.Destroy()
	if s.surface != nil {
		s.surface.Hide()
	}
	if !c.mutate(s, "deactivate close control", func() error { return s.control.SetActive(false) }) {
		return
	}
	c.animate(s, 0, func() {
		c.end(s, reason)
	})
}

// end tears the session down immediately. Only the first call per session
// has any effect.
func (c *CheckoutCoordinator) end(s *session, reason entity.CloseReason) {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	s.cancel()
	s.stopTimers()
	s.relayouts.Destroy()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}

	if s.surface != nil {
		c.bestEffort(s, "dispose surface", func() {
			s.surface.Hide()
			s.surface.Dispose()
		})
	}
	for _, el := range s.elements() {
		c.bestEffort(s, "destroy "+string(el.Role()), func() {
			if err := el.Destroy(); err != nil {
				s.logger.Debug().Err(err).Str("role", string(el.Role())).Msg("destroy element")
			}
		})
	}

	if c.session == s {
		c.session = nil
		c.setState(s, entity.ModalClosed)
		c.geometry.Store(&entity.Geometry{})
	}
	c.metrics.SessionClosed(reason)
	s.logger.Info().Str("reason", string(reason)).Msg("checkout closed")

	if reason.Notifies() {
		c.notify(s, "on_closed", func() {
			if c.callbacks.OnClosed != nil {
				c.callbacks.OnClosed()
			}
		})
	}
}

// forceRecovery ends a session whose UI was destroyed underneath it.
func (c *CheckoutCoordinator) forceRecovery(s *session, cause error) {
	if s == nil || s.ended {
		return
	}
	s.logger.Warn().Err(cause).Stringer("state", s.state).Msg("overlay lost, forcing recovery")
	c.end(s, entity.CloseForced)
}
