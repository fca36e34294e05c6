//go:build js && wasm

package surface

import (
	"fmt"
	"syscall/js"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
)

// popupPollMillis is how often the popup's closed flag is checked.
const popupPollMillis = 500

// Popup shows the checkout in a browser popup window opened from the host
// page. Geometry maps to the popup's screen position and size where the
// browser allows it. The checkout page reports back with postMessage using
// the opener transport of the bridge script.
type Popup struct {
	*base
	links bridge.DeepLinks

	window   js.Value
	popup    js.Value
	onMsg    js.Func
	onPoll   js.Func
	pollID   js.Value
	hasFuncs bool
}

// NewPopup creates a popup surface; the window opens on Load.
func NewPopup(opts Options) *Popup {
	return &Popup{
		base:   newBase(BackendPopup, opts),
		links:  opts.DeepLinks,
		window: js.Global().Get("window"),
	}
}

func (p *Popup) opened() bool {
	return !p.popup.IsUndefined() && !p.popup.IsNull() && p.popup.Truthy()
}

func (p *Popup) Load(url string) {
	if p.isDisposed() {
		return
	}
	if ev, ok := p.links.Match(url); ok {
		p.emit(ev)
		return
	}
	if p.opened() {
		p.popup.Get("location").Set("href", url)
		p.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: url})
		return
	}

	r := p.Bounds()
	features := fmt.Sprintf("popup=yes,left=%d,top=%d,width=%d,height=%d", r.X, r.Y, max(r.W, 1), max(r.H, 1))
	p.popup = p.window.Call("open", url, "paysurface_checkout", features)
	if !p.opened() {
		p.emit(initFailed("popup blocked by the browser"))
		return
	}
	p.listen()
	if !p.Visible() {
		p.popup.Call("blur")
		p.window.Call("focus")
	}
	p.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: url})
}

func (p *Popup) listen() {
	if p.hasFuncs {
		return
	}
	p.onMsg = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		event := args[0]
		if !event.Get("source").Equal(p.popup) {
			return nil
		}
		data := event.Get("data")
		if data.Type() != js.TypeObject || data.Get("paysurface").Type() != js.TypeString {
			return nil
		}
		ev, err := bridge.Decode(data.Get("paysurface").String())
		if err != nil {
			p.logger.Warn().Err(err).Msg("bridge message rejected")
			return nil
		}
		p.emit(ev)
		return nil
	})
	p.onPoll = js.FuncOf(func(js.Value, []js.Value) any {
		if p.opened() && p.popup.Get("closed").Bool() && !p.isDisposed() {
			p.stopListening()
			p.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
		}
		return nil
	})
	p.hasFuncs = true
	p.window.Call("addEventListener", "message", p.onMsg)
	p.pollID = p.window.Call("setInterval", p.onPoll, popupPollMillis)
}

func (p *Popup) stopListening() {
	if !p.hasFuncs {
		return
	}
	p.hasFuncs = false
	p.window.Call("removeEventListener", "message", p.onMsg)
	p.window.Call("clearInterval", p.pollID)
	p.onMsg.Release()
	p.onPoll.Release()
}

// ExecuteScript only works while the popup is same-origin.
func (p *Popup) ExecuteScript(code string) {
	if !p.canRunScript(p.opened()) {
		return
	}
	if err := p.try(func() { p.popup.Call("eval", code) }); err != nil {
		p.logger.Warn().Err(err).Msg("script failed")
	}
}

func (p *Popup) SetSize(w, h int) {
	if _, ok := p.recordSize(w, h); ok && p.opened() {
		p.geometry(func() { p.popup.Call("resizeTo", w, h) })
	}
}

func (p *Popup) SetPosition(x, y int) {
	if _, ok := p.recordPosition(x, y); ok && p.opened() {
		p.geometry(func() { p.popup.Call("moveTo", x, y) })
	}
}

// geometry applies a window change; cross-origin popups refuse it.
func (p *Popup) geometry(fn func()) {
	if err := p.try(fn); err != nil {
		p.logger.Debug().Err(err).Msg("popup geometry change refused")
	}
}

func (p *Popup) Show() {
	if p.recordVisible(true) && p.opened() {
		p.popup.Call("focus")
	}
}

func (p *Popup) Hide() {
	if p.recordVisible(false) && p.opened() {
		p.popup.Call("blur")
		p.window.Call("focus")
	}
}

// Dispose closes the popup. Idempotent.
func (p *Popup) Dispose() {
	if !p.markDisposed() {
		return
	}
	p.stopListening()
	if p.opened() {
		p.popup.Call("close")
	}
	p.popup = js.Undefined()
}

// try converts a JavaScript exception raised by fn into an error.
func (p *Popup) try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
