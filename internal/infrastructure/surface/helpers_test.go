package surface

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

type recorder struct {
	mu     sync.Mutex
	events []entity.SurfaceEvent
}

func (r *recorder) handle(ev entity.SurfaceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []entity.SurfaceEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.SurfaceEventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (r *recorder) last() entity.SurfaceEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return entity.SurfaceEvent{}
	}
	return r.events[len(r.events)-1]
}

// queuedPost collects posted deliveries so tests can run them explicitly.
type queuedPost struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *queuedPost) post(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

func (q *queuedPost) drain() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

func testOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Viewport: port.ViewportFunc(func() entity.Size { return entity.Size{W: 1000, H: 800} }),
	}
}
