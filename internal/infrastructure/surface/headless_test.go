package surface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
)

func TestHeadless_LoadEmitsPageLoaded(t *testing.T) {
	h := NewHeadless(testOptions())
	var rec recorder
	h.Subscribe(rec.handle)

	h.Load("https://pay.example.com/c/1")

	require.Equal(t, []entity.SurfaceEventKind{entity.SurfacePageLoaded}, rec.kinds())
	assert.Equal(t, "https://pay.example.com/c/1", rec.last().URL)
	assert.Equal(t, "https://pay.example.com/c/1", h.URL())
}

func TestHeadless_BridgeComplete(t *testing.T) {
	h := NewHeadless(testOptions())
	var rec recorder
	h.Subscribe(rec.handle)
	h.Load("https://pay.example.com")
	h.Show()

	h.ExecuteScript(`window.paysurface.complete({id: "pi_1"})`)

	ev := rec.last()
	assert.Equal(t, entity.SurfacePaymentComplete, ev.Kind)
	assert.JSONEq(t, `{"id":"pi_1"}`, ev.Payload)
}

func TestHeadless_BridgeFailAndClose(t *testing.T) {
	opts := testOptions()
	opts.BridgeName = "checkout"
	h := NewHeadless(opts)
	var rec recorder
	h.Subscribe(rec.handle)
	h.Load("https://pay.example.com")
	h.Show()

	h.ExecuteScript(`checkout.fail("card declined")`)
	assert.Equal(t, entity.SurfaceEvent{Kind: entity.SurfaceError, Message: "card declined"}, rec.last())

	h.ExecuteScript(`checkout.close()`)
	assert.Equal(t, entity.SurfaceCloseRequested, rec.last().Kind)
}

func TestHeadless_ExecuteScriptIgnoredWhenHiddenOrUnloaded(t *testing.T) {
	h := NewHeadless(testOptions())
	var rec recorder
	h.Subscribe(rec.handle)

	h.Show()
	h.ExecuteScript(`window.paysurface.close()`)
	assert.Empty(t, rec.kinds(), "not loaded")

	h.Load("https://pay.example.com")
	h.Hide()
	h.ExecuteScript(`window.paysurface.close()`)
	assert.Equal(t, []entity.SurfaceEventKind{entity.SurfacePageLoaded}, rec.kinds(), "hidden")
}

func TestHeadless_ScriptErrorIsSwallowed(t *testing.T) {
	h := NewHeadless(testOptions())
	h.Load("https://pay.example.com")
	h.Show()

	assert.NotPanics(t, func() { h.ExecuteScript(`throw new Error("boom")`) })
	assert.NotPanics(t, func() { h.ExecuteScript(`this is not javascript`) })
}

func TestHeadless_DeepLinks(t *testing.T) {
	opts := testOptions()
	opts.DeepLinks = bridge.DeepLinks{Complete: []string{"shop://done"}}
	h := NewHeadless(opts)
	var rec recorder
	h.Subscribe(rec.handle)

	h.Load("shop://done?order=7")
	assert.Equal(t, entity.SurfaceEvent{Kind: entity.SurfacePaymentComplete, Payload: "shop://done?order=7"}, rec.last())

	h.Load("https://pay.example.com")
	h.Show()
	h.ExecuteScript(`location.assign("shop://done?order=8")`)
	assert.Equal(t, "shop://done?order=8", rec.last().Payload)
}

func TestHeadless_ConsoleCaptured(t *testing.T) {
	h := NewHeadless(testOptions())
	h.Load("https://pay.example.com")
	h.Show()

	h.ExecuteScript(`console.log("hello", 42)`)

	assert.Equal(t, []string{"log: hello 42"}, h.Console())
}

func TestHeadless_DisposeIdempotent(t *testing.T) {
	h := NewHeadless(testOptions())
	var rec recorder
	h.Subscribe(rec.handle)
	h.Load("https://pay.example.com")
	h.Show()

	h.Dispose()
	h.Dispose()

	assert.NotPanics(t, func() {
		h.Load("https://other.example.com")
		h.ExecuteScript(`window.paysurface.close()`)
		h.SetSize(10, 10)
		h.SetPosition(1, 1)
		h.Show()
		h.Hide()
	})
	assert.False(t, h.Visible())
	assert.Equal(t, []entity.SurfaceEventKind{entity.SurfacePageLoaded}, rec.kinds())
}

func TestHeadless_DisposeInterruptsRunningScript(t *testing.T) {
	h := NewHeadless(testOptions())
	h.Load("https://pay.example.com")
	h.Show()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		h.ExecuteScript(`for (;;) {}`)
	}()
	time.Sleep(20 * time.Millisecond)

	disposed := make(chan struct{})
	go func() {
		defer close(disposed)
		h.Dispose()
	}()

	select {
	case <-disposed:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispose blocked behind a running script")
	}
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("running script was not interrupted")
	}
}

func TestHeadless_EmptyURL(t *testing.T) {
	h := NewHeadless(testOptions())
	var rec recorder
	h.Subscribe(rec.handle)

	h.Load("")

	assert.Equal(t, entity.SurfaceError, rec.last().Kind)
}
