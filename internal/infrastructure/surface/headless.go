package surface

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/grafana/sobek"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
)

// headlessPostFn is the native function the bootstrap script posts through.
const headlessPostFn = "__paysurface_post"

// Headless is an in-process surface with no pixels. Each Load starts a fresh
// JavaScript VM with the bridge installed, so scripts run through
// ExecuteScript can complete, fail or close the checkout like a real page.
type Headless struct {
	*base
	bridgeName string
	links      bridge.DeepLinks

	vmMu    sync.Mutex // serializes scripts and document swaps
	vm      atomic.Pointer[sobek.Runtime]
	url     string
	console []string
}

// NewHeadless creates a headless surface.
func NewHeadless(opts Options) *Headless {
	return &Headless{
		base:       newBase(BackendHeadless, opts),
		bridgeName: opts.bridgeName(),
		links:      opts.DeepLinks,
	}
}

// Load navigates to url. Deep-link URLs end the session without loading.
func (h *Headless) Load(url string) {
	if h.isDisposed() {
		return
	}
	if url == "" {
		h.emit(entity.SurfaceEvent{Kind: entity.SurfaceError, Message: "empty url"})
		return
	}
	if ev, ok := h.links.Match(url); ok {
		h.logger.Debug().Str("url", url).Str("event", ev.Kind.String()).Msg("deep link navigation")
		h.emit(ev)
		return
	}

	vm, err := h.newDocument(url)
	if err != nil {
		h.emit(entity.SurfaceEvent{Kind: entity.SurfaceError, Message: fmt.Sprintf("load %s: %v", url, err)})
		return
	}

	h.vmMu.Lock()
	if h.isDisposed() {
		h.vmMu.Unlock()
		return
	}
	h.vm.Store(vm)
	h.url = url
	h.console = nil
	h.vmMu.Unlock()

	h.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: url})
}

func (h *Headless) newDocument(url string) (*sobek.Runtime, error) {
	vm := sobek.New()
	global := vm.GlobalObject()

	if err := vm.Set("window", global); err != nil {
		return nil, err
	}

	location := vm.NewObject()
	_ = location.Set("href", url)
	_ = location.Set("assign", func(call sobek.FunctionCall) sobek.Value {
		h.navigate(call.Argument(0).String())
		return sobek.Undefined()
	})
	if err := vm.Set("location", location); err != nil {
		return nil, err
	}

	console := vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error"} {
		_ = console.Set(level, h.consoleFunc(level))
	}
	if err := vm.Set("console", console); err != nil {
		return nil, err
	}

	if err := vm.Set(headlessPostFn, func(call sobek.FunctionCall) sobek.Value {
		h.receive(call.Argument(0).String())
		return sobek.Undefined()
	}); err != nil {
		return nil, err
	}

	if _, err := vm.RunString(bridge.BootstrapScript(h.bridgeName, bridge.BindingTransport(headlessPostFn))); err != nil {
		return nil, fmt.Errorf("install bridge: %w", err)
	}
	return vm, nil
}

// navigate handles location.assign from page scripts. It runs while the VM
// lock is held by ExecuteScript, so only deep links are honoured here.
func (h *Headless) navigate(url string) {
	if ev, ok := h.links.Match(url); ok {
		h.emit(ev)
		return
	}
	h.logger.Debug().Str("url", url).Msg("headless navigation ignored")
}

func (h *Headless) receive(raw string) {
	ev, err := bridge.Decode(raw)
	if err != nil {
		h.logger.Warn().Err(err).Msg("bridge message rejected")
		return
	}
	h.emit(ev)
}

func (h *Headless) consoleFunc(level string) func(sobek.FunctionCall) sobek.Value {
	return func(call sobek.FunctionCall) sobek.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		line := strings.Join(parts, " ")
		h.console = append(h.console, level+": "+line)
		h.logger.Debug().Str("level", level).Str("message", line).Msg("page console")
		return sobek.Undefined()
	}
}

// ExecuteScript runs code in the current document.
func (h *Headless) ExecuteScript(code string) {
	h.vmMu.Lock()
	defer h.vmMu.Unlock()

	vm := h.vm.Load()
	if !h.canRunScript(vm != nil) {
		return
	}
	if _, err := vm.RunString(code); err != nil {
		h.logger.Warn().Err(err).Msg("script failed")
	}
}

// URL returns the loaded document URL.
func (h *Headless) URL() string {
	h.vmMu.Lock()
	defer h.vmMu.Unlock()
	return h.url
}

// Console returns the page console output since the last Load.
func (h *Headless) Console() []string {
	h.vmMu.Lock()
	defer h.vmMu.Unlock()
	return append([]string(nil), h.console...)
}

func (h *Headless) SetSize(w, hgt int)   { h.recordSize(w, hgt) }
func (h *Headless) SetPosition(x, y int) { h.recordPosition(x, y) }
func (h *Headless) Show()                { h.recordVisible(true) }
func (h *Headless) Hide()                { h.recordVisible(false) }

// Dispose drops the VM and interrupts any script still running on it.
// It does not wait for that script to return. Idempotent.
func (h *Headless) Dispose() {
	if !h.markDisposed() {
		return
	}
	if vm := h.vm.Swap(nil); vm != nil {
		vm.Interrupt("disposed")
	}
}
