// Package memory is an in-process host UI: overlay elements are plain
// records. It backs the terminal preview and the coordinator tests.
package memory

import (
	"fmt"
	"sync"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

// Host creates and tracks elements.
type Host struct {
	mu         sync.Mutex
	post       func(func())
	nextID     int
	elements   []*Element
	failCreate map[port.ElementRole]error
}

var _ port.HostUI = (*Host)(nil)

// NewHost creates a host whose close-control clicks are delivered through post.
// A nil post runs clicks synchronously.
func NewHost(post func(func())) *Host {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Host{post: post, failCreate: make(map[port.ElementRole]error)}
}

func (h *Host) CreateScrim() (port.Element, error) {
	return h.create(port.RoleScrim, nil)
}

func (h *Host) CreatePanel() (port.Element, error) {
	return h.create(port.RolePanel, nil)
}

func (h *Host) CreateCloseControl(onClick func()) (port.Element, error) {
	return h.create(port.RoleClose, onClick)
}

func (h *Host) create(role port.ElementRole, onClick func()) (port.Element, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err, ok := h.failCreate[role]; ok {
		delete(h.failCreate, role)
		return nil, err
	}
	h.nextID++
	el := &Element{
		id:      h.nextID,
		role:    role,
		alive:   true,
		scale:   1,
		onClick: onClick,
	}
	h.elements = append(h.elements, el)
	return el, nil
}

// FailNextCreate makes the next creation of role fail with err.
func (h *Host) FailNextCreate(role port.ElementRole, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failCreate[role] = err
}

// Elements returns every element ever created, oldest first.
func (h *Host) Elements() []*Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Element(nil), h.elements...)
}

// Live returns the elements that still exist.
func (h *Host) Live() []*Element {
	var out []*Element
	for _, el := range h.Elements() {
		if el.Alive() {
			out = append(out, el)
		}
	}
	return out
}

// Find returns the newest live element with role, or nil.
func (h *Host) Find(role port.ElementRole) *Element {
	live := h.Live()
	for i := len(live) - 1; i >= 0; i-- {
		if live[i].role == role {
			return live[i]
		}
	}
	return nil
}

// Click presses the newest live close control. It reports whether one existed.
func (h *Host) Click() bool {
	el := h.Find(port.RoleClose)
	if el == nil || el.onClick == nil {
		return false
	}
	h.post(el.onClick)
	return true
}

// TearDown destroys every live element out of band, as a host scene
// change would.
func (h *Host) TearDown() {
	for _, el := range h.Live() {
		el.ExternallyDestroy()
	}
}

// Snapshot returns the state of live elements for rendering.
func (h *Host) Snapshot() []State {
	live := h.Live()
	out := make([]State, 0, len(live))
	for _, el := range live {
		out = append(out, el.State())
	}
	return out
}

// State is a copy of an element's rendered properties.
type State struct {
	ID      int
	Role    port.ElementRole
	Rect    entity.Rect
	Opacity float64
	Scale   float64
	Active  bool
}

// Element is one in-memory overlay node.
type Element struct {
	mu       sync.Mutex
	id       int
	role     port.ElementRole
	alive    bool
	external bool
	rect     entity.Rect
	opacity  float64
	scale    float64
	active   bool
	writes   int
	attempts int
	failNext error
	onClick  func()
}

var _ port.Element = (*Element)(nil)

func (e *Element) Role() port.ElementRole { return e.role }

// ID returns the creation sequence number.
func (e *Element) ID() int { return e.id }

func (e *Element) Alive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.alive
}

func (e *Element) SetRect(r entity.Rect) error {
	return e.write(func() { e.rect = r })
}

func (e *Element) SetOpacity(alpha float64) error {
	return e.write(func() { e.opacity = alpha })
}

func (e *Element) SetScale(scale float64) error {
	return e.write(func() { e.scale = scale })
}

func (e *Element) SetActive(active bool) error {
	return e.write(func() { e.active = active })
}

func (e *Element) write(apply func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attempts++
	if !e.alive {
		return fmt.Errorf("%s element %d: %w", e.role, e.id, port.ErrElementGone)
	}
	if err := e.failNext; err != nil {
		e.failNext = nil
		return err
	}
	apply()
	e.writes++
	return nil
}

func (e *Element) Destroy() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alive = false
	return nil
}

// ExternallyDestroy removes the element without its owner asking.
func (e *Element) ExternallyDestroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.alive {
		e.alive = false
		e.external = true
	}
}

// DestroyedExternally reports whether ExternallyDestroy removed the element.
func (e *Element) DestroyedExternally() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.external
}

// FailNext makes the next mutation return err once.
func (e *Element) FailNext(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext = err
}

// Writes counts successful mutations.
func (e *Element) Writes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.writes
}

// Attempts counts every mutation call, including failed ones.
func (e *Element) Attempts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempts
}

// State returns a copy of the rendered properties.
func (e *Element) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{ID: e.id, Role: e.role, Rect: e.rect, Opacity: e.opacity, Scale: e.scale, Active: e.active}
}
