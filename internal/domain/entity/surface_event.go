package entity

// SurfaceEventKind identifies what a surface reported.
type SurfaceEventKind int

const (
	// SurfacePageLoaded fires when a navigation finished loading.
	SurfacePageLoaded SurfaceEventKind = iota
	// SurfacePaymentComplete carries the checkout result payload.
	SurfacePaymentComplete
	// SurfaceError carries a backend or page reported error message.
	SurfaceError
	// SurfaceInitFailed means the native handle could not be created.
	SurfaceInitFailed
	// SurfaceClosed means the surface went away without the orchestrator asking.
	SurfaceClosed
	// SurfaceCloseRequested means the page asked to be dismissed.
	SurfaceCloseRequested
)

// String returns a human-readable representation of the event kind.
func (k SurfaceEventKind) String() string {
	switch k {
	case SurfacePageLoaded:
		return "page_loaded"
	case SurfacePaymentComplete:
		return "payment_complete"
	case SurfaceError:
		return "error"
	case SurfaceInitFailed:
		return "init_failed"
	case SurfaceClosed:
		return "closed"
	case SurfaceCloseRequested:
		return "close_requested"
	default:
		return "unknown"
	}
}

// SurfaceEvent is a single notification from a surface backend.
type SurfaceEvent struct {
	Kind    SurfaceEventKind
	URL     string // page-loaded
	Payload string // payment-complete
	Message string // error, init-failed
}

// Terminal reports whether the event ends the checkout session.
func (e SurfaceEvent) Terminal() bool {
	return e.Kind != SurfacePageLoaded
}
