package layout

import "strings"

// Shorthand holds a padding or margin declaration in CSS shorthand form:
// one, two, three or four values. The zero Shorthand is unset.
type Shorthand struct {
	values [4]Value
	n      int
}

// Sides builds a Shorthand from one to four values in CSS order.
// Any other count yields an unset Shorthand.
func Sides(values ...Value) Shorthand {
	if len(values) == 0 || len(values) > 4 {
		return Shorthand{}
	}
	var s Shorthand
	s.n = copy(s.values[:], values)
	return s
}

// SidesPx is Sides for plain pixel values.
func SidesPx(values ...int) Shorthand {
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = Pixels(v)
	}
	return Sides(vs...)
}

// IsSet returns true if the declaration was provided.
func (s Shorthand) IsSet() bool {
	return s.n > 0
}

// Len returns the number of declared values (0 when unset).
func (s Shorthand) Len() int {
	return s.n
}

// Values returns the declared values.
func (s Shorthand) Values() []Value {
	return s.values[:s.n]
}

// Resolve expands the shorthand into per-side pixels. Vertical sides resolve
// against ref's height and horizontal sides against its width.
//
//	1 value  (a)          -> top=right=bottom=left=a
//	2 values (v, h)       -> top=bottom=v, right=left=h
//	3 values (t, h, b)    -> top=t, right=left=h, bottom=b
//	4 values (t, r, b, l) -> as given
func (s Shorthand) Resolve(ref Rect) Edges {
	w, h := ref.Width(), ref.Height()
	v := s.values
	switch s.n {
	case 1:
		return Edges{Top: v[0].Resolve(h), Right: v[0].Resolve(w), Bottom: v[0].Resolve(h), Left: v[0].Resolve(w)}
	case 2:
		return Edges{Top: v[0].Resolve(h), Right: v[1].Resolve(w), Bottom: v[0].Resolve(h), Left: v[1].Resolve(w)}
	case 3:
		return Edges{Top: v[0].Resolve(h), Right: v[1].Resolve(w), Bottom: v[2].Resolve(h), Left: v[1].Resolve(w)}
	case 4:
		return Edges{Top: v[0].Resolve(h), Right: v[1].Resolve(w), Bottom: v[2].Resolve(h), Left: v[3].Resolve(w)}
	default:
		return Edges{}
	}
}

// String formats the declared values separated by spaces.
func (s Shorthand) String() string {
	if s.n == 0 {
		return "unset"
	}
	parts := make([]string, s.n)
	for i, v := range s.Values() {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// ResolvePadding expands style's padding against ref.
func ResolvePadding(style Style, ref Rect) Edges {
	return style.Padding.Resolve(ref)
}

// ResolveMargin expands style's margin against ref.
func ResolveMargin(style Style, ref Rect) Edges {
	return style.Margin.Resolve(ref)
}
