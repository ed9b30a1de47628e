package layout

import "fmt"

// Rect is an axis-aligned rectangle in device pixels.
// Right and Bottom are exclusive edges. A rect with Right < Left or
// Bottom < Top is representable and means "no space available".
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect creates a Rect from its four edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Normalized returns a copy translated so its origin is (0, 0).
// Children of a native container are positioned relative to it, so a
// container flows its children against its normalized rect.
func (r Rect) Normalized() Rect {
	return Rect{Right: r.Width(), Bottom: r.Height()}
}

// Update copies the edges of other into r.
func (r *Rect) Update(other Rect) {
	r.Left = other.Left
	r.Top = other.Top
	r.Right = other.Right
	r.Bottom = other.Bottom
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inset returns a new Rect shrunk by the given Edges.
// Negative values expand it.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns the zero Rect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// String formats the rect as "(left, top, right, bottom)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Size is a width/height pair, used for intrinsic content extents.
type Size struct {
	Width, Height int
}
