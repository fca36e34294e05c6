package mainloop

import (
	"sort"
	"sync"
	"time"
)

// maxManualSteps bounds RunPending so a task that keeps re-posting itself
// fails loudly instead of hanging a test.
const maxManualSteps = 100000

// Manual is a deterministic loop driven by the caller, with a virtual clock.
// Post and AfterFunc are safe from any goroutine; RunPending and Advance must
// be called from a single goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	queue  []func()
	timers []*manualTimer
	seq    uint64
}

type manualTimer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewManual creates a Manual loop at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Post queues fn for the next RunPending.
func (m *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

// AfterFunc queues fn once the virtual clock reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) (stop func()) {
	m.mu.Lock()
	m.seq++
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		t.stopped = true
		m.mu.Unlock()
	}
}

// RunPending runs queued tasks, including tasks they post, until the queue
// is empty. It returns the number of tasks run.
func (m *Manual) RunPending() int {
	ran := 0
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.mu.Unlock()
			return ran
		}
		fn := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()

		fn()
		ran++
		if ran > maxManualSteps {
			panic("mainloop.Manual: task queue did not settle")
		}
	}
}

// Advance moves the virtual clock forward by d, firing due timers in order
// and draining the queue after each one.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	m.RunPending()
	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
		m.RunPending()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) popDue(target time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
	if len(m.timers) == 0 {
		return nil
	}

	sort.Slice(m.timers, func(i, j int) bool {
		if m.timers[i].due == m.timers[j].due {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].due < m.timers[j].due
	})
	next := m.timers[0]
	if next.due > target {
		return nil
	}
	m.timers = m.timers[1:]
	m.now = next.due
	return next
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// PendingTimers returns the number of armed, unfired timers.
func (m *Manual) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
