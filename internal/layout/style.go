package layout

// Align specifies vertical placement of text within its rect.
type Align uint8

const (
	AlignUnset  Align = iota
	AlignStart        // Top (default)
	AlignCenter       // Vertically centered
	AlignEnd          // Bottom
)

// Justify specifies horizontal placement of text within its rect.
type Justify uint8

const (
	JustifyUnset  Justify = iota
	JustifyStart          // Left (default)
	JustifyCenter         // Horizontally centered
	JustifyEnd            // Right
)

// Border selects the frame drawn around a node.
type Border uint8

const (
	BorderUnset Border = iota
	BorderNone
	BorderSingle
	BorderThick
)

// ZOrder selects whether a window stays above others.
type ZOrder uint8

const (
	ZOrderUnset ZOrder = iota
	ZOrderDefault
	ZOrderOnTop
)

// Overflow selects how text that does not fit is handled.
// Unset and OverflowNone both mean the node grows to its intrinsic width.
type Overflow uint8

const (
	OverflowUnset    Overflow = iota
	OverflowNone              // Never truncate; width floors at the intrinsic size
	OverflowBreak             // Wrap on word boundaries
	OverflowEllipsis          // Cut with a trailing ellipsis
)

// OnOpen selects the initial state of a window.
type OnOpen uint8

const (
	OnOpenUnset OnOpen = iota
	OnOpenNormal
	OnOpenMinimize
	OnOpenMaximize
)

// Style contains every style key a node or window understands.
// Each field has an explicit unset state, so "not provided" is never
// confused with a provided zero.
type Style struct {
	// Text placement
	Align   Align
	Justify Justify

	// Spacing
	Gap     Value // Space between flowed children (containers only)
	Padding Shorthand
	Margin  Shorthand

	// Sizing
	Width  Value
	Height Value

	// Anchors
	Left   Value
	Right  Value
	Top    Value
	Bottom Value

	// Visual
	Border     Border
	Background Brush
	Color      Color
	ZOrder     ZOrder
	Overflow   Overflow
	OnOpen     OnOpen
}

// TextFormat is the effective set of text drawing flags for a style.
type TextFormat struct {
	Justify  Justify
	Align    Align
	Overflow Overflow
}

// TextFormat derives how text should be drawn. Justify and align default to
// start. Align only applies when the text is not wrapping, since vertical
// placement of a wrapped paragraph is always top.
func (s Style) TextFormat() TextFormat {
	f := TextFormat{Justify: s.Justify, Align: AlignStart, Overflow: s.Overflow}
	if f.Justify == JustifyUnset {
		f.Justify = JustifyStart
	}
	if f.Overflow != OverflowBreak && s.Align != AlignUnset {
		f.Align = s.Align
	}
	return f
}

// HasBorder returns true if a visible border is requested.
func (s Style) HasBorder() bool {
	return s.Border == BorderSingle || s.Border == BorderThick
}
