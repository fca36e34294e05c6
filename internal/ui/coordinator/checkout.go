// Package coordinator drives the checkout overlay: it owns the modal
// session, its host UI elements and the embedded surface, and reacts to
// viewport changes and surface events on a single loop.
package coordinator

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/logging"
)

// Callbacks receive checkout outcomes. They run on the loop; a panicking
// callback is logged and does not affect the overlay.
type Callbacks struct {
	OnPaymentComplete func(payload string)
	OnPaymentError    func(message string)
	// OnClosed fires once per session, except for sessions replaced by a reopen.
	OnClosed func()
	// OnPageLoaded is optional.
	OnPageLoaded func(url string)
}

// Options wires a CheckoutCoordinator. Loop, Factory, Host and Viewport are required.
type Options struct {
	Loop      port.Loop
	Factory   port.SurfaceFactory
	Host      port.HostUI
	Viewport  port.Viewport
	Callbacks Callbacks
	Settings  Settings
	Metrics   port.Metrics
	Logger    zerolog.Logger
}

// CheckoutCoordinator shows a checkout URL in a centered modal overlay.
//
// Public methods may be called from any goroutine: they post onto the loop
// and return immediately. All session state is owned by the loop.
type CheckoutCoordinator struct {
	loop      port.Loop
	factory   port.SurfaceFactory
	host      port.HostUI
	viewport  port.Viewport
	callbacks Callbacks
	metrics   port.Metrics
	logger    zerolog.Logger
	baseCtx   context.Context

	settings atomic.Pointer[Settings]

	// Snapshots readable from any goroutine.
	state      atomic.Int32
	generation atomic.Uint64
	geometry   atomic.Pointer[entity.Geometry]

	// Loop owned.
	session  *session
	openSeq  uint64
	shutdown bool
}

// New creates a coordinator in the Closed state.
func New(opts Options) (*CheckoutCoordinator, error) {
	switch {
	case opts.Loop == nil:
		return nil, errors.New("coordinator: loop is required")
	case opts.Factory == nil:
		return nil, errors.New("coordinator: surface factory is required")
	case opts.Host == nil:
		return nil, errors.New("coordinator: host UI is required")
	case opts.Viewport == nil:
		return nil, errors.New("coordinator: viewport is required")
	}
	if opts.Metrics == nil {
		opts.Metrics = port.NopMetrics{}
	}

	logger := opts.Logger.With().Str("component", "checkout").Logger()
	c := &CheckoutCoordinator{
		loop:      opts.Loop,
		factory:   opts.Factory,
		host:      opts.Host,
		viewport:  opts.Viewport,
		callbacks: opts.Callbacks,
		metrics:   opts.Metrics,
		logger:    logger,
		baseCtx:   logging.WithContext(context.Background(), logger),
	}
	settings := opts.Settings.normalized()
	c.settings.Store(&settings)
	c.geometry.Store(&entity.Geometry{})
	return c, nil
}

// Open shows url in the overlay. An empty url is ignored. Opening while a
// session is live replaces it with a fresh session for url.
func (c *CheckoutCoordinator) Open(url string) {
	c.loop.Post(func() {
		c.guard(nil, "open", func() { c.open(url) })
	})
}

// Close dismisses the overlay with the hide animation. Idempotent.
func (c *CheckoutCoordinator) Close() {
	c.loop.Post(func() {
		c.guard(c.session, "close", c.close)
	})
}

// Relayout recomputes and reapplies the geometry for the current viewport.
// Ignored while Closed or Closing.
func (c *CheckoutCoordinator) Relayout() {
	c.loop.Post(func() {
		c.guard(c.session, "relayout", func() {
			if s := c.session; s != nil && s.state != entity.ModalClosing {
				c.scheduleRelayout(s, true)
			}
		})
	})
}

// ExecuteScript runs code in the checkout page. Ignored while Closed.
func (c *CheckoutCoordinator) ExecuteScript(code string) {
	c.loop.Post(func() {
		s := c.session
		if s == nil || s.surface == nil {
			c.logger.Debug().Msg("execute_script ignored: no session")
			return
		}
		c.guard(s, "execute_script", func() { s.surface.ExecuteScript(code) })
	})
}

// Shutdown tears down any session without animation and refuses further
// opens. Safe to call more than once.
func (c *CheckoutCoordinator) Shutdown() {
	c.loop.Post(func() {
		c.shutdown = true
		c.openSeq++
		if s := c.session; s != nil {
			c.end(s, entity.CloseShutdown)
		}
	})
}

// SetConfig swaps the tunables. Layout changes apply at once to a live
// session; animation and monitor changes apply to the next step.
func (c *CheckoutCoordinator) SetConfig(settings Settings) {
	settings = settings.normalized()
	c.settings.Store(&settings)
	c.Relayout()
}

// Settings returns the current tunables.
func (c *CheckoutCoordinator) Settings() Settings {
	return *c.settings.Load()
}

// State returns the current modal state.
func (c *CheckoutCoordinator) State() entity.ModalState {
	return entity.ModalState(c.state.Load())
}

// Generation returns the generation of the newest session, 0 before the first open.
func (c *CheckoutCoordinator) Generation() uint64 {
	return c.generation.Load()
}

// Geometry returns the geometry applied to the live session, or the zero
// value while Closed.
func (c *CheckoutCoordinator) Geometry() entity.Geometry {
	return *c.geometry.Load()
}

func (c *CheckoutCoordinator) setState(s *session, st entity.ModalState) {
	if s != nil {
		s.state = st
		s.logger.Debug().Stringer("state", st).Msg("checkout state")
	}
	c.state.Store(int32(st))
}
