//go:build webkit_cgo

package gtkhost

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

const overlayCSS = `
.paysurface-scrim { background-color: #000000; }
.paysurface-panel { background-color: #ffffff; border-radius: 12px; box-shadow: 0 12px 48px rgba(0, 0, 0, 0.45); }
.paysurface-close { min-width: 0; min-height: 0; padding: 0; border-radius: 9999px; font-weight: bold; }
`

// Host creates overlay elements inside one gtk.Overlay.
type Host struct {
	overlay  *gtk.Overlay
	post     func(func())
	fallback entity.Size
	css      *gtk.CSSProvider
}

var _ port.HostUI = (*Host)(nil)

// NewHost creates a host on overlay. Close clicks are delivered through post.
// fallback is reported as the viewport until the overlay is allocated.
func NewHost(overlay *gtk.Overlay, post func(func()), fallback entity.Size) *Host {
	h := &Host{overlay: overlay, post: post, fallback: fallback}
	h.installCSS()
	return h
}

func (h *Host) installCSS() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	h.css = gtk.NewCSSProvider()
	h.css.LoadFromData(overlayCSS)
	gtk.StyleContextAddProviderForDisplay(display, h.css, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
}

// Viewport reports the overlay allocation.
func (h *Host) Viewport() port.Viewport {
	return port.ViewportFunc(func() entity.Size {
		size := entity.Size{W: h.overlay.Width(), H: h.overlay.Height()}
		if !size.Valid() {
			return h.fallback
		}
		return size
	})
}

func (h *Host) CreateScrim() (port.Element, error) {
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	if box == nil {
		return nil, fmt.Errorf("gtkhost: failed to create scrim: %w", port.ErrElementGone)
	}
	box.AddCSSClass("paysurface-scrim")
	return h.attach(port.RoleScrim, &box.Widget), nil
}

func (h *Host) CreatePanel() (port.Element, error) {
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	if box == nil {
		return nil, fmt.Errorf("gtkhost: failed to create panel: %w", port.ErrElementGone)
	}
	box.AddCSSClass("paysurface-panel")
	box.SetCanTarget(false)
	return h.attach(port.RolePanel, &box.Widget), nil
}

func (h *Host) CreateCloseControl(onClick func()) (port.Element, error) {
	button := gtk.NewButtonWithLabel("✕")
	if button == nil {
		return nil, fmt.Errorf("gtkhost: failed to create close control: %w", port.ErrElementGone)
	}
	button.AddCSSClass("paysurface-close")
	button.AddCSSClass("circular")
	button.SetTooltipText("Close checkout")
	button.ConnectClicked(func() {
		if onClick != nil {
			h.post(onClick)
		}
	})
	return h.attach(port.RoleClose, &button.Widget), nil
}

func (h *Host) attach(role port.ElementRole, w *gtk.Widget) *Element {
	w.SetHAlign(gtk.AlignStart)
	w.SetVAlign(gtk.AlignStart)
	w.SetOpacity(0)
	h.overlay.AddOverlay(w)
	return &Element{role: role, widget: w, overlay: h.overlay, scale: 1}
}

// Element is one overlay child.
type Element struct {
	role    port.ElementRole
	widget  *gtk.Widget
	overlay *gtk.Overlay

	rect      entity.Rect
	scale     float64
	destroyed bool
}

var _ port.Element = (*Element)(nil)

func (e *Element) Role() port.ElementRole { return e.role }

// Alive is false once destroyed or removed from the overlay by someone else.
func (e *Element) Alive() bool {
	return !e.destroyed && e.widget.Parent() != nil
}

func (e *Element) check() error {
	if !e.Alive() {
		return fmt.Errorf("gtkhost %s: %w", e.role, port.ErrElementGone)
	}
	return nil
}

func (e *Element) SetRect(r entity.Rect) error {
	if err := e.check(); err != nil {
		return err
	}
	e.rect = r
	e.place()
	return nil
}

func (e *Element) SetOpacity(alpha float64) error {
	if err := e.check(); err != nil {
		return err
	}
	e.widget.SetOpacity(alpha)
	return nil
}

// SetScale shrinks the placed rectangle around its center.
func (e *Element) SetScale(scale float64) error {
	if err := e.check(); err != nil {
		return err
	}
	e.scale = scale
	e.place()
	return nil
}

func (e *Element) SetActive(active bool) error {
	if err := e.check(); err != nil {
		return err
	}
	e.widget.SetCanTarget(active)
	e.widget.SetSensitive(active)
	return nil
}

func (e *Element) place() {
	r := e.rect.ScaledAround(e.scale)
	e.widget.SetMarginStart(r.X)
	e.widget.SetMarginTop(r.Y)
	e.widget.SetSizeRequest(r.W, r.H)
}

func (e *Element) Destroy() error {
	if e.destroyed {
		return nil
	}
	e.destroyed = true
	if e.widget.Parent() != nil {
		e.overlay.RemoveOverlay(e.widget)
	}
	return nil
}
