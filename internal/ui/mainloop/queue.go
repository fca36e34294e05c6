// Package mainloop provides the single cooperative loop the checkout
// coordinator runs on, plus helpers for scheduling work onto it.
package mainloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Queue is a loop backed by one goroutine draining an unbounded FIFO.
// Post never blocks, so tasks may post follow-up work from inside the loop.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	running atomic.Bool
	logger  zerolog.Logger
}

// NewQueue creates an idle Queue. Call Run to start draining it.
func NewQueue(logger zerolog.Logger) *Queue {
	return &Queue{
		wake:   make(chan struct{}, 1),
		logger: logger.With().Str("component", "mainloop").Logger(),
	}
}

// Post schedules fn to run on the loop goroutine.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// AfterFunc runs fn on the loop after d. The timer fires on its own
// goroutine and only posts; stop prevents a posted-but-not-run fn as well.
func (q *Queue) AfterFunc(d time.Duration, fn func()) (stop func()) {
	var stopped atomic.Bool
	timer := time.AfterFunc(d, func() {
		q.Post(func() {
			if !stopped.Load() {
				fn()
			}
		})
	})
	return func() {
		stopped.Store(true)
		timer.Stop()
	}
}

// Run drains tasks until ctx is cancelled. A panicking task is logged and
// the loop keeps going.
func (q *Queue) Run(ctx context.Context) error {
	if !q.running.CompareAndSwap(false, true) {
		return nil
	}
	defer q.running.Store(false)

	for {
		for {
			fn := q.next()
			if fn == nil {
				break
			}
			q.runTask(fn)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

func (q *Queue) next() func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil
	}
	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return fn
}

func (q *Queue) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("loop task panicked")
		}
	}()
	fn()
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
