// Package measure provides intrinsic text measurement for layout.
//
// Width is the width of the longest line and height covers every line, so
// multi-line labels measure the same way in both collaborators.
package measure

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Cells measures text in terminal cells. East Asian wide runes count as two.
type Cells struct{}

// MeasureText returns the cell width of the longest line and the line count.
// Empty text measures (0, 0).
func (Cells) MeasureText(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w, len(lines)
}

// Face measures text in pixels using a font face.
type Face struct {
	face font.Face
}

// NewFace returns a Face measurer. A nil face uses basicfont.Face7x13.
func NewFace(face font.Face) *Face {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Face{face: face}
}

// MeasureText returns the advance of the longest line and the total line
// height in pixels.
func (f *Face) MeasureText(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(f.face, line).Ceil())
	}
	return w, len(lines) * f.face.Metrics().Height.Ceil()
}
