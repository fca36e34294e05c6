//go:build webkit_cgo

package surface

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

func addWebKit(m map[string]Constructor) {
	m[BackendWebKit] = NewWebKitBackend(nil)
}

// NewWebKitBackend returns a constructor placing views inside overlay.
// A nil overlay gives each surface its own undecorated window sized to the viewport.
func NewWebKitBackend(overlay *gtk.Overlay) Constructor {
	return func(ctx context.Context, opts Options) port.Surface {
		return NewWebKit(opts, overlay)
	}
}

// WebKit embeds a WebKitGTK view as a full-size overlay child and places it
// with margins, the same way floating panes are laid out. GTK calls are
// marshalled onto the GLib main context.
type WebKit struct {
	*base
	gtkLoop  mainloop.GLib
	links    bridge.DeepLinks
	viewport func() entity.Size
	handler  string

	// Owned by the GLib main context.
	overlay *gtk.Overlay
	window  *gtk.Window
	view    *webkit.WebView
	loaded  bool
}

// NewWebKit schedules view creation and returns at once.
func NewWebKit(opts Options, overlay *gtk.Overlay) *WebKit {
	w := &WebKit{
		base:     newBase(BackendWebKit, opts),
		links:    opts.DeepLinks,
		viewport: opts.viewportSize,
		handler:  opts.bridgeName(),
		overlay:  overlay,
	}
	w.gtkLoop.Post(func() { w.create(opts.bridgeName()) })
	return w
}

func (w *WebKit) create(bridgeName string) {
	if w.isDisposed() {
		return
	}
	view := webkit.NewWebView()
	if view == nil {
		w.emit(initFailed("webkit: failed to create web view"))
		return
	}
	w.view = view

	ucm := view.UserContentManager()
	if ucm == nil {
		w.emit(initFailed("webkit: no user content manager"))
		return
	}
	ucm.AddScript(webkit.NewUserScript(
		bridge.BootstrapScript(bridgeName, bridge.WebKitTransport(w.handler)),
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		w.receive(value.ToString())
	})
	if !ucm.RegisterScriptMessageHandler(w.handler, "") {
		w.logger.Warn().Str("handler", w.handler).Msg("RegisterScriptMessageHandler returned false")
	}

	view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event == webkit.LoadFinished {
			w.loaded = true
			w.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: view.URI()})
		}
	})
	view.Connect("notify::uri", func() {
		if ev, ok := w.links.Match(view.URI()); ok {
			w.emit(ev)
		}
	})
	view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		if ev, ok := w.links.Match(failingURI); ok {
			w.emit(ev)
			return true
		}
		w.emit(entity.SurfaceEvent{Kind: entity.SurfaceError, Message: fmt.Sprintf("load %s: %v", failingURI, err)})
		return true
	})
	view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		w.logger.Warn().Str("reason", reason.String()).Msg("web process terminated")
		w.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
	})
	view.ConnectClose(func() {
		w.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
	})

	view.SetHExpand(true)
	view.SetVExpand(true)
	view.SetVisible(w.Visible())

	if w.overlay == nil {
		w.overlay = gtk.NewOverlay()
		w.window = gtk.NewWindow()
		w.window.SetDecorated(false)
		if size := w.viewport(); size.Valid() {
			w.window.SetDefaultSize(size.W, size.H)
		}
		w.window.SetChild(w.overlay)
		w.window.ConnectCloseRequest(func() bool {
			if !w.isDisposed() {
				w.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
			}
			return false
		})
		w.window.Present()
	}
	w.overlay.AddOverlay(view)
	w.applyMargins()
}

func (w *WebKit) receive(raw string) {
	ev, err := bridge.Decode(raw)
	if err != nil {
		w.logger.Warn().Err(err).Msg("bridge message rejected")
		return
	}
	w.emit(ev)
}

func (w *WebKit) Load(url string) {
	if w.isDisposed() {
		return
	}
	if ev, ok := w.links.Match(url); ok {
		w.emit(ev)
		return
	}
	w.gtkLoop.Post(func() {
		if w.view == nil || w.isDisposed() {
			return
		}
		w.loaded = false
		w.view.LoadURI(url)
	})
}

func (w *WebKit) ExecuteScript(code string) {
	w.gtkLoop.Post(func() {
		if !w.canRunScript(w.view != nil && w.loaded) {
			return
		}
		w.view.EvaluateJavascript(context.Background(), code, -1, "", "", nil)
	})
}

func (w *WebKit) SetSize(width, height int) {
	if _, ok := w.recordSize(width, height); ok {
		w.gtkLoop.Post(w.applyMargins)
	}
}

func (w *WebKit) SetPosition(x, y int) {
	if _, ok := w.recordPosition(x, y); ok {
		w.gtkLoop.Post(w.applyMargins)
	}
}

// applyMargins shrinks the full-size overlay child to the requested rectangle.
func (w *WebKit) applyMargins() {
	if w.view == nil || w.isDisposed() {
		return
	}
	viewport := w.viewport()
	if !viewport.Valid() {
		return
	}
	left, top, right, bottom := w.Bounds().Insets(viewport)
	w.view.SetMarginStart(left)
	w.view.SetMarginTop(top)
	w.view.SetMarginEnd(right)
	w.view.SetMarginBottom(bottom)
}

func (w *WebKit) Show() {
	if w.recordVisible(true) {
		w.gtkLoop.Post(func() { w.setVisible(true) })
	}
}

func (w *WebKit) Hide() {
	if w.recordVisible(false) {
		w.gtkLoop.Post(func() { w.setVisible(false) })
	}
}

func (w *WebKit) setVisible(v bool) {
	if w.view != nil && !w.isDisposed() {
		w.view.SetVisible(v)
	}
}

// Dispose detaches and drops the view. Idempotent.
func (w *WebKit) Dispose() {
	if !w.markDisposed() {
		return
	}
	w.gtkLoop.Post(func() {
		if w.view == nil {
			return
		}
		w.view.StopLoading()
		if w.overlay != nil {
			w.overlay.RemoveOverlay(w.view)
		}
		if w.window != nil {
			w.window.Destroy()
			w.window = nil
		}
		w.view = nil
	})
}
