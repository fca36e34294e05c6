package coordinator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/hostui/memory"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

// trackedSurface counts the calls the coordinator makes on a real surface.
type trackedSurface struct {
	port.Surface
	loads    []string
	shows    int
	disposes int
}

func (t *trackedSurface) Load(url string) {
	t.loads = append(t.loads, url)
	t.Surface.Load(url)
}

func (t *trackedSurface) Show() {
	t.shows++
	t.Surface.Show()
}

func (t *trackedSurface) Dispose() {
	t.disposes++
	t.Surface.Dispose()
}

type recordingFactory struct {
	inner    *surface.Factory
	surfaces []*trackedSurface
}

func (f *recordingFactory) Create(ctx context.Context) port.Surface {
	s := &trackedSurface{Surface: f.inner.Create(ctx)}
	f.surfaces = append(f.surfaces, s)
	return s
}

func (f *recordingFactory) Platform() port.Platform { return f.inner.Platform() }

func (f *recordingFactory) last() *trackedSurface {
	if len(f.surfaces) == 0 {
		return nil
	}
	return f.surfaces[len(f.surfaces)-1]
}

type countingMetrics struct {
	opened    []string
	closed    []entity.CloseReason
	relayouts int
	monitor   int
	transient int
}

func (m *countingMetrics) SessionOpened(backend string)            { m.opened = append(m.opened, backend) }
func (m *countingMetrics) SessionClosed(reason entity.CloseReason) { m.closed = append(m.closed, reason) }
func (m *countingMetrics) Relayout()                               { m.relayouts++ }
func (m *countingMetrics) MonitorFault()                           { m.monitor++ }
func (m *countingMetrics) TransientFault()                         { m.transient++ }

type harness struct {
	t       *testing.T
	loop    *mainloop.Manual
	host    *memory.Host
	factory *recordingFactory
	metrics *countingMetrics
	c       *CheckoutCoordinator

	mu       sync.Mutex
	viewport entity.Size
	panicky  bool

	events []string // callbacks in arrival order
	closed int
}

type harnessOption func(*Options, *surface.Options)

func withBackend(name string) harnessOption {
	return func(_ *Options, so *surface.Options) { so.Backend = name }
}

func withCallbacks(cb Callbacks) harnessOption {
	return func(o *Options, _ *surface.Options) { o.Callbacks = cb }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		loop:     mainloop.NewManual(),
		metrics:  &countingMetrics{},
		viewport: entity.Size{W: 1920, H: 1080},
	}
	h.host = memory.NewHost(h.loop.Post)

	viewport := port.ViewportFunc(h.size)
	surfaceOpts := surface.Options{
		Post:     h.loop.Post,
		Logger:   zerolog.Nop(),
		Viewport: viewport,
		Backend:  surface.BackendHeadless,
	}
	coordOpts := Options{
		Loop:     h.loop,
		Host:     h.host,
		Viewport: viewport,
		Metrics:  h.metrics,
		Logger:   zerolog.Nop(),
		Callbacks: Callbacks{
			OnPaymentComplete: func(p string) { h.events = append(h.events, "complete:"+p) },
			OnPaymentError:    func(m string) { h.events = append(h.events, "error:"+m) },
			OnClosed: func() {
				h.closed++
				h.events = append(h.events, "closed")
			},
			OnPageLoaded: func(u string) { h.events = append(h.events, "loaded:"+u) },
		},
	}
	for _, opt := range opts {
		opt(&coordOpts, &surfaceOpts)
	}

	h.factory = &recordingFactory{inner: surface.NewFactory(port.PlatformDesktop, surfaceOpts)}
	coordOpts.Factory = h.factory

	c, err := New(coordOpts)
	require.NoError(t, err)
	h.c = c
	return h
}

func (h *harness) size() entity.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.panicky {
		panic("viewport query failed")
	}
	return h.viewport
}

func (h *harness) resize(w, hgt int) {
	h.mu.Lock()
	h.viewport = entity.Size{W: w, H: hgt}
	h.mu.Unlock()
}

func (h *harness) breakViewport() {
	h.mu.Lock()
	h.panicky = true
	h.mu.Unlock()
}

// settle runs queued work and lets animations finish.
func (h *harness) settle() {
	h.loop.RunPending()
	h.loop.Advance(h.c.animationLength() + 50*time.Millisecond)
}

// openAndSettle opens url and waits until the overlay is fully shown.
func (h *harness) openAndSettle(url string) {
	h.t.Helper()
	h.c.Open(url)
	h.settle()
	require.Equal(h.t, entity.ModalOpen, h.c.State(), "events: %v", h.events)
}

func (h *harness) headless() *surface.Headless {
	h.t.Helper()
	s := h.factory.last()
	require.NotNil(h.t, s)
	hs, ok := s.Surface.(*surface.Headless)
	require.True(h.t, ok, fmt.Sprintf("backend %s", s.Backend()))
	return hs
}
