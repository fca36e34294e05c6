package port

import (
	"errors"

	"github.com/bnema/paysurface/internal/domain/entity"
)

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// ErrElementGone reports that a host UI element was destroyed out of band,
// for example by the host tearing down its scene.
var ErrElementGone = errors.New("host element gone")

// Viewport reports the current host viewport in logical pixels.
// Size must be cheap and safe to call at any time from the loop.
type Viewport interface {
	Size() entity.Size
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() entity.Size

// Size implements Viewport.
func (f ViewportFunc) Size() entity.Size {
	return f()
}

// ElementRole identifies which overlay part an element renders.
type ElementRole string

const (
	RoleScrim ElementRole = "scrim"
	RolePanel ElementRole = "panel"
	RoleClose ElementRole = "close"
)

// Element is one host UI node owned by a modal session.
//
// Methods return ErrElementGone (possibly wrapped) once the host destroyed
// the node; any other error is treated as transient.
type Element interface {
	Role() ElementRole

	// Alive reports whether the host node still exists.
	Alive() bool

	SetRect(r entity.Rect) error
	SetOpacity(alpha float64) error
	// SetScale scales the element around its center.
	SetScale(scale float64) error
	SetActive(active bool) error

	// Destroy removes the node. Destroying a gone element is not an error.
	Destroy() error
}

// HostUI creates the overlay elements for a session.
type HostUI interface {
	CreateScrim() (Element, error)
	CreatePanel() (Element, error)
	// CreateCloseControl wires onClick so that it runs on the loop.
	CreateCloseControl(onClick func()) (Element, error)
}
