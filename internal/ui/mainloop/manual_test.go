package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_RunPendingDrainsNestedPosts(t *testing.T) {
	m := NewManual()
	var order []string

	m.Post(func() {
		order = append(order, "a")
		m.Post(func() { order = append(order, "c") })
	})
	m.Post(func() { order = append(order, "b") })

	assert.Equal(t, 3, m.RunPending())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestManual_AdvanceFiresTimersInDueOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "late") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "early-2") })

	m.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-2"}, order)
	assert.Equal(t, 150*time.Millisecond, m.Now())

	m.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-2", "late"}, order)
}

func TestManual_RepeatingTimerChain(t *testing.T) {
	m := NewManual()
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(100*time.Millisecond, tick)
	}
	m.AfterFunc(100*time.Millisecond, tick)

	m.Advance(time.Second)
	assert.Equal(t, 10, ticks)
	assert.Equal(t, 1, m.PendingTimers())
}

func TestManual_StoppedTimerNeverFires(t *testing.T) {
	m := NewManual()
	fired := false

	stop := m.AfterFunc(50*time.Millisecond, func() { fired = true })
	stop()
	stop()
	m.Advance(time.Second)

	assert.False(t, fired)
	assert.Zero(t, m.PendingTimers())
}
