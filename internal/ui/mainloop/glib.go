//go:build webkit_cgo

package mainloop

import (
	"sync/atomic"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// GLib schedules onto the default GLib main context, the loop GTK and
// WebKitGTK already dispatch their signals on.
type GLib struct{}

// Post runs fn from an idle source.
func (GLib) Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false // Remove the idle handler after execution
	})
}

// AfterFunc runs fn from a one-shot timeout source.
func (GLib) AfterFunc(d time.Duration, fn func()) (stop func()) {
	var done atomic.Bool
	ms := uint(d.Milliseconds())
	handle := glib.TimeoutAdd(ms, func() bool {
		if done.CompareAndSwap(false, true) {
			fn()
		}
		return false
	})
	return func() {
		// Removing a source that already fired triggers a GLib critical.
		if done.CompareAndSwap(false, true) {
			glib.SourceRemove(handle)
		}
	}
}
