package surface

import (
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
)

// NativeWebView is implemented by the host app around the platform WebView
// (android.webkit.WebView or WKWebView). It uses only gomobile-friendly types.
// The view covers the whole host viewport and is shrunk with margins.
type NativeWebView interface {
	// Bind registers the callbacks the view reports through.
	Bind(callbacks NativeCallbacks)
	// InjectBridge installs script at document start and routes page
	// messages posted to handler into NativeCallbacks.OnMessage.
	InjectBridge(script, handler string)
	LoadURL(url string)
	EvaluateJavascript(code string)
	SetMargins(left, top, right, bottom int)
	SetVisible(visible bool)
	Destroy()
}

// NativeCallbacks receives notifications from a NativeWebView.
// Methods may be called from any thread.
type NativeCallbacks interface {
	OnPageLoaded(url string)
	OnNavigation(url string)
	OnMessage(json string)
	OnError(message string)
	OnInitFailed(message string)
	OnClosed()
}

// Mobile drives a host-provided native WebView.
type Mobile struct {
	*base
	native   NativeWebView
	viewport func() entity.Size
	links    bridge.DeepLinks
	loaded   bool
}

// NewMobile binds native and installs the bridge.
func NewMobile(opts Options, native NativeWebView) *Mobile {
	m := &Mobile{
		base:     newBase(BackendMobile, opts),
		native:   native,
		viewport: opts.viewportSize,
		links:    opts.DeepLinks,
	}
	handler := opts.bridgeName() + "Native"
	native.Bind(&mobileCallbacks{m: m})
	native.InjectBridge(bridge.BootstrapScript(opts.bridgeName(), bridge.NativeTransport(handler)), handler)
	native.SetVisible(false)
	return m
}

func (m *Mobile) Load(url string) {
	if m.isDisposed() {
		return
	}
	if ev, ok := m.links.Match(url); ok {
		m.emit(ev)
		return
	}
	m.mu.Lock()
	m.loaded = false
	m.mu.Unlock()
	m.native.LoadURL(url)
}

func (m *Mobile) ExecuteScript(code string) {
	m.mu.Lock()
	loaded := m.loaded
	m.mu.Unlock()
	if !m.canRunScript(loaded) {
		return
	}
	m.native.EvaluateJavascript(code)
}

func (m *Mobile) SetSize(w, h int) {
	if r, ok := m.recordSize(w, h); ok {
		m.applyMargins(r)
	}
}

func (m *Mobile) SetPosition(x, y int) {
	if r, ok := m.recordPosition(x, y); ok {
		m.applyMargins(r)
	}
}

// applyMargins converts the requested rectangle into insets from the
// viewport edges.
func (m *Mobile) applyMargins(r entity.Rect) {
	viewport := m.viewport()
	if !viewport.Valid() {
		return
	}
	left, top, right, bottom := r.Insets(viewport)
	m.native.SetMargins(left, top, right, bottom)
}

func (m *Mobile) Show() {
	if m.recordVisible(true) {
		m.native.SetVisible(true)
	}
}

func (m *Mobile) Hide() {
	if m.recordVisible(false) {
		m.native.SetVisible(false)
	}
}

func (m *Mobile) Dispose() {
	if !m.markDisposed() {
		return
	}
	m.native.SetVisible(false)
	m.native.Destroy()
}

// mobileCallbacks keeps the callback methods off Mobile's public API.
type mobileCallbacks struct {
	m *Mobile
}

func (c *mobileCallbacks) OnPageLoaded(url string) {
	c.m.mu.Lock()
	c.m.loaded = true
	c.m.mu.Unlock()
	c.m.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: url})
}

func (c *mobileCallbacks) OnNavigation(url string) {
	if ev, ok := c.m.links.Match(url); ok {
		c.m.emit(ev)
	}
}

func (c *mobileCallbacks) OnMessage(json string) {
	ev, err := bridge.Decode(json)
	if err != nil {
		c.m.logger.Warn().Err(err).Msg("bridge message rejected")
		return
	}
	c.m.emit(ev)
}

func (c *mobileCallbacks) OnError(message string) {
	c.m.emit(entity.SurfaceEvent{Kind: entity.SurfaceError, Message: message})
}

func (c *mobileCallbacks) OnInitFailed(message string) {
	c.m.emit(initFailed(message))
}

func (c *mobileCallbacks) OnClosed() {
	c.m.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
}
