// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxflow

import "github.com/grindlemire/go-boxflow/internal/layout"

// Rect is a rectangle given by its four edges in pixels.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Frame pairs a resolved rect with its style.
type Frame = layout.Frame

// Value is a style dimension (pixels, percentage, or unset).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUnset   = layout.UnitUnset
	UnitPixels  = layout.UnitPixels
	UnitPercent = layout.UnitPercent
)

// Shorthand is a 1-4 value padding or margin declaration.
type Shorthand = layout.Shorthand

// Style holds every style key a node or window understands.
type Style = layout.Style

// TextFormat is the effective set of text drawing flags for a style.
type TextFormat = layout.TextFormat

// Align specifies vertical text placement.
type Align = layout.Align

const (
	AlignUnset  = layout.AlignUnset
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Justify specifies horizontal text placement.
type Justify = layout.Justify

const (
	JustifyUnset  = layout.JustifyUnset
	JustifyStart  = layout.JustifyStart
	JustifyCenter = layout.JustifyCenter
	JustifyEnd    = layout.JustifyEnd
)

// Border selects the frame drawn around a node.
type Border = layout.Border

const (
	BorderUnset  = layout.BorderUnset
	BorderNone   = layout.BorderNone
	BorderSingle = layout.BorderSingle
	BorderThick  = layout.BorderThick
)

// ZOrder selects whether a window stays above others.
type ZOrder = layout.ZOrder

const (
	ZOrderUnset   = layout.ZOrderUnset
	ZOrderDefault = layout.ZOrderDefault
	ZOrderOnTop   = layout.ZOrderOnTop
)

// Overflow selects how text that does not fit is handled.
type Overflow = layout.Overflow

const (
	OverflowUnset    = layout.OverflowUnset
	OverflowNone     = layout.OverflowNone
	OverflowBreak    = layout.OverflowBreak
	OverflowEllipsis = layout.OverflowEllipsis
)

// OnOpen selects the initial state of a window.
type OnOpen = layout.OnOpen

const (
	OnOpenUnset    = layout.OnOpenUnset
	OnOpenNormal   = layout.OnOpenNormal
	OnOpenMinimize = layout.OnOpenMinimize
	OnOpenMaximize = layout.OnOpenMaximize
)

// Color is a 24-bit RGB color.
type Color = layout.Color

// Brush describes a background fill.
type Brush = layout.Brush

// BrushKind specifies how a background is filled.
type BrushKind = layout.BrushKind

const (
	BrushUnset       = layout.BrushUnset
	BrushSolid       = layout.BrushSolid
	BrushHatch       = layout.BrushHatch
	BrushTransparent = layout.BrushTransparent
)

// HatchPattern selects the lines drawn by a hatch brush.
type HatchPattern = layout.HatchPattern

const (
	HatchDiagCross        = layout.HatchDiagCross
	HatchCross            = layout.HatchCross
	HatchVertical         = layout.HatchVertical
	HatchHorizontal       = layout.HatchHorizontal
	HatchForwardDiagonal  = layout.HatchForwardDiagonal
	HatchBackwardDiagonal = layout.HatchBackwardDiagonal
)

// IntrinsicPad is added to measured text width to form the width floor.
const IntrinsicPad = layout.IntrinsicPad

// NewRect creates a Rect from its edges.
func NewRect(left, top, right, bottom int) Rect {
	return layout.NewRect(left, top, right, bottom)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Pixels creates a Value with an absolute pixel count.
func Pixels(n int) Value {
	return layout.Pixels(n)
}

// Percent creates a Value representing a fraction (0-1) of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Unset creates a Value that was not provided.
func Unset() Value {
	return layout.Unset()
}

// Sides creates a padding or margin Shorthand from 1-4 values.
func Sides(values ...Value) Shorthand {
	return layout.Sides(values...)
}

// SidesPx is Sides for plain pixel values.
func SidesPx(values ...int) Shorthand {
	return layout.SidesPx(values...)
}

// RGB creates a Color from its components.
func RGB(r, g, b uint8) Color {
	return layout.RGB(r, g, b)
}

// HexColor parses "RGB" or "RRGGBB" with an optional leading "#".
func HexColor(hex string) (Color, error) {
	return layout.HexColor(hex)
}

// SolidBrush fills with a flat color.
func SolidBrush(c Color) Brush {
	return layout.SolidBrush(c)
}

// HatchBrush draws pattern lines in c.
func HatchBrush(c Color, p HatchPattern) Brush {
	return layout.HatchBrush(c, p)
}

// TransparentBrush paints nothing.
func TransparentBrush() Brush {
	return layout.TransparentBrush()
}

// ResolveSize converts v to pixels given the available space.
func ResolveSize(v Value, available int) int {
	return layout.ResolveSize(v, available)
}

// ResolvePadding expands style's padding against ref.
func ResolvePadding(style Style, ref Rect) Edges {
	return layout.ResolvePadding(style, ref)
}

// ResolveMargin expands style's margin against ref.
func ResolveMargin(style Style, ref Rect) Edges {
	return layout.ResolveMargin(style, ref)
}

// Calculate resolves the rect of a node with the given style and intrinsic
// content size, placed after previous inside parent.
func Calculate(own Style, intrinsic Size, previous, parent Frame) Rect {
	return layout.Calculate(own, intrinsic, previous, parent)
}
