package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/domain/entity"
)

type fakeNative struct {
	callbacks NativeCallbacks
	script    string
	handler   string
	urls      []string
	scripts   []string
	margins   [4]int
	visible   bool
	destroyed int
}

func (f *fakeNative) Bind(cb NativeCallbacks)             { f.callbacks = cb }
func (f *fakeNative) InjectBridge(script, handler string) { f.script, f.handler = script, handler }
func (f *fakeNative) LoadURL(url string)                  { f.urls = append(f.urls, url) }
func (f *fakeNative) EvaluateJavascript(code string)      { f.scripts = append(f.scripts, code) }
func (f *fakeNative) SetMargins(l, t, r, b int)           { f.margins = [4]int{l, t, r, b} }
func (f *fakeNative) SetVisible(v bool)                   { f.visible = v }
func (f *fakeNative) Destroy()                            { f.destroyed++ }

func TestMobile_InstallsBridge(t *testing.T) {
	native := &fakeNative{}
	NewMobile(testOptions(), native)

	require.NotNil(t, native.callbacks)
	assert.Equal(t, "paysurfaceNative", native.handler)
	assert.Contains(t, native.script, `window["paysurface"]`)
	assert.False(t, native.visible)
}

func TestMobile_MarginMath(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)

	m.SetPosition(100, 150)
	m.SetSize(600, 400)

	// viewport 1000x800
	assert.Equal(t, [4]int{100, 150, 300, 250}, native.margins)
	assert.Equal(t, entity.Rect{X: 100, Y: 150, W: 600, H: 400}, m.Bounds())
}

func TestMobile_MarginsClampedToViewport(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)

	m.SetPosition(-20, 700)
	m.SetSize(1200, 300)

	assert.Equal(t, [4]int{0, 700, 0, 0}, native.margins)
}

func TestMobile_CallbacksBecomeEvents(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)
	var rec recorder
	m.Subscribe(rec.handle)

	native.callbacks.OnPageLoaded("https://pay.example.com")
	native.callbacks.OnMessage(`{"type":"complete","payload":"ok"}`)
	native.callbacks.OnMessage(`garbage`)
	native.callbacks.OnError("net::ERR_FAILED")
	native.callbacks.OnInitFailed("no webview")
	native.callbacks.OnClosed()

	assert.Equal(t, []entity.SurfaceEventKind{
		entity.SurfacePageLoaded,
		entity.SurfacePaymentComplete,
		entity.SurfaceError,
		entity.SurfaceInitFailed,
		entity.SurfaceClosed,
	}, rec.kinds())
}

func TestMobile_ExecuteScriptRequiresLoadedAndVisible(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)

	m.Show()
	m.ExecuteScript("1")
	assert.Empty(t, native.scripts)

	native.callbacks.OnPageLoaded("https://pay.example.com")
	m.ExecuteScript("2")
	m.Hide()
	m.ExecuteScript("3")
	assert.Equal(t, []string{"2"}, native.scripts)
}

func TestMobile_LoadWaitsForNewDocument(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)
	m.Show()

	native.callbacks.OnPageLoaded("https://pay.example.com/a")
	m.ExecuteScript("old")

	m.Load("https://pay.example.com/b")
	m.ExecuteScript("mid-navigation")

	native.callbacks.OnPageLoaded("https://pay.example.com/b")
	m.ExecuteScript("new")

	assert.Equal(t, []string{"https://pay.example.com/b"}, native.urls)
	assert.Equal(t, []string{"old", "new"}, native.scripts)
}

func TestMobile_DisposeIdempotent(t *testing.T) {
	native := &fakeNative{}
	m := NewMobile(testOptions(), native)
	var rec recorder
	m.Subscribe(rec.handle)
	m.Show()

	m.Dispose()
	m.Dispose()
	m.Load("https://pay.example.com")
	m.Show()
	native.callbacks.OnClosed()

	assert.Equal(t, 1, native.destroyed)
	assert.False(t, native.visible)
	assert.Empty(t, native.urls)
	assert.Empty(t, rec.kinds())
}
