package mainloop

import "testing"

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	width := 0
	for i := 1; i <= 5; i++ {
		w := i * 100
		c.Post("relayout", func() { width = w })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	if !c.Pending("relayout") {
		t.Fatalf("expected relayout to be pending")
	}
	queue[0]()

	if width != 500 {
		t.Fatalf("expected latest callback to run, got %d", width)
	}
	if c.Pending("relayout") {
		t.Fatalf("expected relayout to be drained")
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("relayout", func() {})
	c.Post("script", func() {})

	if len(queue) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(queue))
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("relayout", func() { ran = true })
	c.Destroy()
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("relayout", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer(nil)
}
