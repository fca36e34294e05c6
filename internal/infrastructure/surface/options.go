// Package surface implements the embedded browser surfaces the checkout
// overlay shows, and the factory that picks one for the running platform.
package surface

import (
	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
)

// Backend names.
const (
	BackendAuto     = "auto"
	BackendChromium = "chromium"
	BackendWebKit   = "webkit"
	BackendMobile   = "mobile"
	BackendPopup    = "popup"
	BackendHeadless = "headless"
	BackendNone     = "none"
)

// Options configures surfaces built by the factory.
type Options struct {
	// Post marshals backend events onto the coordinator loop.
	// Nil delivers synchronously, which only tests should rely on.
	Post func(func())

	Logger zerolog.Logger

	// Viewport is the host area the surface is placed in. Margin based
	// backends derive their insets from it.
	Viewport port.Viewport

	// Backend forces a backend by name; empty or "auto" picks per platform.
	Backend string

	// BridgeName is the page global exposing complete/fail/close.
	BridgeName string

	// DeepLinks end the checkout when the page navigates to a matching URL.
	DeepLinks bridge.DeepLinks

	Chromium ChromiumOptions

	// Native is the host-provided mobile WebView. Required by the mobile backend.
	Native NativeWebView
}

func (o Options) bridgeName() string {
	if o.BridgeName == "" {
		return bridge.DefaultName
	}
	return o.BridgeName
}

func (o Options) viewportSize() entity.Size {
	if o.Viewport == nil {
		return entity.Size{}
	}
	return o.Viewport.Size()
}

// ChromiumOptions configures the Chromium backend.
type ChromiumOptions struct {
	ExecPath    string   // empty searches the usual install locations
	UserDataDir string   // empty uses a throwaway profile
	OriginX     int      // screen position of the host viewport's top-left corner
	OriginY     int
	Flags       []string // extra command-line switches, "name" or "name=value"
}

func initFailed(message string) entity.SurfaceEvent {
	return entity.SurfaceEvent{Kind: entity.SurfaceInitFailed, Message: message}
}
