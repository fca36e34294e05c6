package surface

import (
	"sort"
	"sync"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

// emitter fans surface events out to subscribers on the loop.
type emitter struct {
	mu       sync.Mutex
	handlers map[uint64]port.SurfaceHandler
	nextID   uint64
	post     func(func())
	closed   bool
}

func newEmitter(post func(func())) *emitter {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &emitter{
		handlers: make(map[uint64]port.SurfaceHandler),
		post:     post,
	}
}

func (e *emitter) subscribe(handler port.SurfaceHandler) func() {
	if handler == nil {
		return func() {}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.handlers[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.handlers, id)
			e.mu.Unlock()
		})
	}
}

// emit posts delivery onto the loop. Handlers are resolved at delivery time,
// so a handler removed before the loop runs never sees the event.
func (e *emitter) emit(event entity.SurfaceEvent) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return
	}

	e.post(func() {
		for _, h := range e.snapshot() {
			h(event)
		}
	})
}

func (e *emitter) snapshot() []port.SurfaceHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || len(e.handlers) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(e.handlers))
	for id := range e.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]port.SurfaceHandler, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.handlers[id])
	}
	return out
}

func (e *emitter) close() {
	e.mu.Lock()
	e.closed = true
	clear(e.handlers)
	e.mu.Unlock()
}
