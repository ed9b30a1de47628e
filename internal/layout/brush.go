package layout

// BrushKind specifies how a background is filled.
type BrushKind uint8

const (
	BrushUnset       BrushKind = iota
	BrushSolid                 // Flat fill
	BrushHatch                 // Pattern lines over the color
	BrushTransparent           // No fill
)

// HatchPattern selects the lines drawn by a hatch brush.
type HatchPattern uint8

const (
	HatchDiagCross        HatchPattern = iota // "dcross" (default)
	HatchCross                                // "cross"
	HatchVertical                             // "vertical"
	HatchHorizontal                           // "horizontal"
	HatchForwardDiagonal                      // "tangent"
	HatchBackwardDiagonal                     // "diagonal"
)

// Brush describes a background fill. The zero Brush is unset.
type Brush struct {
	Kind    BrushKind
	Color   Color
	Pattern HatchPattern
}

// SolidBrush fills with a flat color.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// HatchBrush draws pattern lines in c.
func HatchBrush(c Color, p HatchPattern) Brush {
	return Brush{Kind: BrushHatch, Color: c, Pattern: p}
}

// TransparentBrush paints nothing.
func TransparentBrush() Brush {
	return Brush{Kind: BrushTransparent}
}

// IsSet returns true if the brush was provided.
func (b Brush) IsSet() bool {
	return b.Kind != BrushUnset
}

// Or returns b if it is set, fallback otherwise.
func (b Brush) Or(fallback Brush) Brush {
	if b.IsSet() {
		return b
	}
	return fallback
}
