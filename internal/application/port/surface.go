// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the checkout coordinator to
// remain independent of the embedded browser backend and the host UI toolkit.
package port

import (
	"context"

	"github.com/bnema/paysurface/internal/domain/entity"
)

//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// SurfaceHandler receives surface events.
// Backends must deliver events through the Loop they were created with,
// never from a native thread directly.
type SurfaceHandler func(event entity.SurfaceEvent)

// Surface is one live embedded-browser handle showing the checkout page.
//
// Every method is non-blocking and never fails across the boundary: problems
// are reported through SurfaceHandler as error events. After Dispose, every
// method is a no-op.
type Surface interface {
	// Backend names the implementation (chromium, webkit, mobile, popup, headless, unavailable).
	Backend() string

	// Load begins navigation. An uninitialized handle reports an error event.
	Load(url string)

	// ExecuteScript runs code in the document. Hidden or uninitialized
	// surfaces ignore the call and log a warning.
	ExecuteScript(code string)

	// SetSize and SetPosition place the visible region of the surface.
	SetSize(w, h int)
	SetPosition(x, y int)

	// Show and Hide toggle visibility without destroying the handle.
	Show()
	Hide()

	// Visible reports the last requested visibility.
	Visible() bool

	// Bounds returns the last requested placement.
	Bounds() entity.Rect

	// Subscribe registers a handler and returns the matching unsubscribe.
	// Calling unsubscribe more than once is safe.
	Subscribe(handler SurfaceHandler) (unsubscribe func())

	// Dispose releases the native handle. Idempotent.
	Dispose()
}

// SurfaceFactory constructs the Surface for the running platform.
type SurfaceFactory interface {
	// Create never returns nil: platforms without a backend get a fallback
	// surface that reports an init failure on Load.
	Create(ctx context.Context) Surface

	// Platform returns the platform identifier consumed at construction.
	Platform() Platform
}

// Platform identifies the host platform for backend selection.
type Platform string

const (
	PlatformDesktop Platform = "desktop"
	PlatformMobile  Platform = "mobile"
	PlatformBrowser Platform = "browser"
	PlatformUnknown Platform = "unknown"
)
