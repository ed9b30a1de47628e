package termhost

import (
	"fmt"
	"sync"

	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/layout"
	"github.com/grindlemire/go-boxflow/internal/measure"
)

var (
	_ boxflow.Host           = (*Host)(nil)
	_ boxflow.ResizeNotifier = (*Host)(nil)
)

// Default window size in cells when a window style gives none.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ButtonFace is the fill of buttons without a background.
var ButtonFace = layout.SolidBrush(layout.RGB(0xe1, 0xe1, 0xe1))

type element struct {
	spec     boxflow.NativeSpec
	rect     layout.Rect // Relative to the parent's client area
	children []boxflow.Handle
}

// Host keeps native controls in memory and paints them into cell buffers.
// It is safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	measurer boxflow.Measurer
	size     layout.Size
	next     boxflow.Handle
	elements map[boxflow.Handle]*element
	resize   map[boxflow.Handle]func(layout.Rect)
}

// Option configures a Host.
type Option func(*Host)

// WithMeasurer replaces the cell measurer.
func WithMeasurer(m boxflow.Measurer) Option {
	return func(h *Host) {
		if m != nil {
			h.measurer = m
		}
	}
}

// WithSize sets the size of windows whose style gives no pixel width or height.
func WithSize(width, height int) Option {
	return func(h *Host) {
		h.size = layout.Size{Width: width, Height: height}
	}
}

// New creates an empty host.
func New(opts ...Option) *Host {
	h := &Host{
		measurer: measure.Cells{},
		size:     layout.Size{Width: DefaultWidth, Height: DefaultHeight},
		elements: make(map[boxflow.Handle]*element),
		resize:   make(map[boxflow.Handle]func(layout.Rect)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// MeasureText delegates to the configured measurer.
func (h *Host) MeasureText(text string) (int, int) {
	return h.measurer.MeasureText(text)
}

// Create registers a control. Windows are sized from their style, falling
// back to the host size.
func (h *Host) Create(spec boxflow.NativeSpec) (boxflow.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var parent *element
	e := &element{spec: spec}
	if spec.Kind == boxflow.KindWindow {
		w, ht := h.size.Width, h.size.Height
		if spec.Style.Width.Unit == layout.UnitPixels {
			w = spec.Style.Width.Resolve(0)
		}
		if spec.Style.Height.Unit == layout.UnitPixels {
			ht = spec.Style.Height.Resolve(0)
		}
		e.rect = layout.NewRect(0, 0, w, ht)
	} else {
		var ok bool
		if parent, ok = h.elements[spec.Parent]; !ok {
			return 0, fmt.Errorf("termhost: unknown parent handle %d", spec.Parent)
		}
	}

	h.next++
	h.elements[h.next] = e
	if parent != nil {
		parent.children = append(parent.children, h.next)
	}
	return h.next, nil
}

// ApplyRect stores the rect of a control relative to its parent.
func (h *Host) ApplyRect(id boxflow.Handle, r layout.Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.elements[id]; ok && e.spec.Kind != boxflow.KindWindow {
		e.rect = r
	}
}

// Destroy releases a control and everything inside it.
func (h *Host) Destroy(id boxflow.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.elements[id]
	if !ok {
		return
	}
	if parent, ok := h.elements[e.spec.Parent]; ok {
		for i, c := range parent.children {
			if c == id {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	}
	h.destroyLocked(id)
}

func (h *Host) destroyLocked(id boxflow.Handle) {
	e, ok := h.elements[id]
	if !ok {
		return
	}
	for _, c := range e.children {
		h.destroyLocked(c)
	}
	delete(h.elements, id)
	delete(h.resize, id)
}

// ClientRect returns the client area of a control, origin at (0, 0).
func (h *Host) ClientRect(id boxflow.Handle) layout.Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.elements[id]; ok {
		return e.rect.Normalized()
	}
	return layout.Rect{}
}

// NotifyResize registers fn to run whenever Resize changes a window.
func (h *Host) NotifyResize(id boxflow.Handle, fn func(layout.Rect)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resize[id] = fn
}

// Resize changes the size of a window and notifies its listener.
func (h *Host) Resize(id boxflow.Handle, width, height int) {
	h.mu.Lock()
	e, ok := h.elements[id]
	if !ok || e.spec.Kind != boxflow.KindWindow {
		h.mu.Unlock()
		return
	}
	e.rect = layout.NewRect(0, 0, max(width, 0), max(height, 0))
	fn := h.resize[id]
	rect := e.rect
	h.mu.Unlock()

	if fn != nil {
		fn(rect)
	}
}

// Len returns the number of live controls.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.elements)
}

// Spec returns the creation spec of a control.
func (h *Host) Spec(id boxflow.Handle) (boxflow.NativeSpec, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.elements[id]
	if !ok {
		return boxflow.NativeSpec{}, false
	}
	return e.spec, true
}

// Bounds returns the rect of a control in the coordinates of its window.
func (h *Host) Bounds(id boxflow.Handle) (layout.Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.elements[id]
	if !ok {
		return layout.Rect{}, false
	}
	r := e.rect
	for p, ok := h.elements[e.spec.Parent]; ok && p.spec.Kind != boxflow.KindWindow; p, ok = h.elements[p.spec.Parent] {
		r = r.Translate(p.rect.Left, p.rect.Top)
	}
	return r, true
}

// Click presses the topmost button under (x, y) in window coordinates and
// reports whether one was hit.
func (h *Host) Click(window boxflow.Handle, x, y int) bool {
	h.mu.Lock()
	var hit func()
	var walk func(id boxflow.Handle, ox, oy int)
	walk = func(id boxflow.Handle, ox, oy int) {
		e := h.elements[id]
		abs := e.rect.Translate(ox, oy)
		if !abs.Contains(x, y) {
			return
		}
		if e.spec.Kind == boxflow.KindButton && e.spec.OnActivate != nil {
			hit = e.spec.OnActivate
		}
		for _, c := range e.children {
			walk(c, abs.Left, abs.Top)
		}
	}
	if _, ok := h.elements[window]; ok {
		walk(window, 0, 0)
	}
	h.mu.Unlock()

	if hit == nil {
		return false
	}
	hit()
	return true
}
