package layout

import (
	"errors"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. The zero Color is unset.
type Color struct {
	set     bool
	r, g, b uint8
}

// RGB returns a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{set: true, r: r, g: g, b: b}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "RGB", "RRGGBB", each with an optional leading "#".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, errors.New("invalid hex color format: expected RGB or RRGGBB")
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, errors.New("invalid hex color: " + hex)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustHex is HexColor for literals known to be valid.
func MustHex(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSet returns true if the color was provided.
func (c Color) IsSet() bool {
	return c.set
}

// Or returns c if it is set, fallback otherwise.
func (c Color) Or(fallback Color) Color {
	if c.set {
		return c
	}
	return fallback
}

// RGB returns the red, green, and blue components.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex formats the color as "#rrggbb". Unset colors format as "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}.Hex()
}

// NRGBA converts to an opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Defaults used when a style leaves colors unset.
var (
	DefaultTextColor  = RGB(0, 0, 0)
	DefaultBackground = SolidBrush(RGB(0xff, 0xff, 0xff))
)
