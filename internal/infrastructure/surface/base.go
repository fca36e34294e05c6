package surface

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

// base carries the bookkeeping every backend shares: requested placement,
// visibility, subscribers and the disposed latch.
type base struct {
	name   string
	logger zerolog.Logger
	events *emitter

	mu      sync.Mutex
	visible bool
	bounds  entity.Rect

	disposed atomic.Bool
}

func newBase(name string, opts Options) *base {
	return &base{
		name:   name,
		logger: opts.Logger.With().Str("component", "surface").Str("backend", name).Logger(),
		events: newEmitter(opts.Post),
	}
}

// Backend implements port.Surface.
func (b *base) Backend() string { return b.name }

// Visible implements port.Surface.
func (b *base) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Bounds implements port.Surface.
func (b *base) Bounds() entity.Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bounds
}

// Subscribe implements port.Surface.
func (b *base) Subscribe(handler port.SurfaceHandler) func() {
	return b.events.subscribe(handler)
}

func (b *base) isDisposed() bool {
	return b.disposed.Load()
}

// recordSize stores the requested size and returns the full placement,
// or false once disposed.
func (b *base) recordSize(w, h int) (entity.Rect, bool) {
	if b.isDisposed() {
		return entity.Rect{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bounds.W, b.bounds.H = max(w, 0), max(h, 0)
	return b.bounds, true
}

func (b *base) recordPosition(x, y int) (entity.Rect, bool) {
	if b.isDisposed() {
		return entity.Rect{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bounds.X, b.bounds.Y = x, y
	return b.bounds, true
}

func (b *base) recordVisible(v bool) bool {
	if b.isDisposed() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = v
	return true
}

// canRunScript reports whether a script may run, logging why not.
func (b *base) canRunScript(initialized bool) bool {
	switch {
	case b.isDisposed():
		return false
	case !initialized:
		b.logger.Warn().Msg("execute_script ignored: surface not initialized")
		return false
	case !b.Visible():
		b.logger.Warn().Msg("execute_script ignored: surface hidden")
		return false
	}
	return true
}

// markDisposed flips the latch and drops subscribers. Only the first call returns true.
func (b *base) markDisposed() bool {
	if !b.disposed.CompareAndSwap(false, true) {
		return false
	}
	b.events.close()
	b.mu.Lock()
	b.visible = false
	b.mu.Unlock()
	return true
}

func (b *base) emit(event entity.SurfaceEvent) {
	if b.isDisposed() {
		return
	}
	b.events.emit(event)
}
