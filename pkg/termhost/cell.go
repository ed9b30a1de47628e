package termhost

import (
	"github.com/grindlemire/go-boxflow/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Paint holds the colors of a cell. Unset colors use the terminal default.
type Paint struct {
	Fg layout.Color
	Bg layout.Color
}

// Cell represents a single character cell in the buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune
	Paint Paint
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, p Paint) Cell {
	return Cell{Rune: r, Paint: p, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in cells, never less than 1.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}
