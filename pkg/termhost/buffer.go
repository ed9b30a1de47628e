package termhost

import (
	"strings"

	"github.com/grindlemire/go-boxflow/internal/layout"
)

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{cells: make([]Cell, width*height), width: width, height: height}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds.
func (b *Buffer) Rect() layout.Rect {
	return layout.NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out of bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune sets a rune at (x, y), keeping wide characters consistent: any
// wide character it overlaps is cleared, and a wide character that does not
// fit at the last column becomes a space.
func (b *Buffer) SetRune(x, y int, r rune, p Paint) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)
	if current.IsContinuation() {
		b.clearWideCharAt(x, y)
	}
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' ', current.Paint))
	}
	if width == 2 && x+1 < b.width {
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', p))
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Paint: p, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Paint: p, Width: 0})
	}
}

// clearWideCharAt clears the wide character covering (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	blank := NewCell(' ', cell.Paint)
	switch {
	case cell.IsContinuation():
		if x > 0 {
			b.SetCell(x-1, y, blank)
		}
		b.SetCell(x, y, blank)
	case cell.Width == 2:
		b.SetCell(x, y, blank)
		if x+1 < b.width {
			b.SetCell(x+1, y, blank)
		}
	}
}

// SetStringClipped writes s starting at (x, y), drawing only the characters
// inside clip. Returns the display width of the characters drawn.
func (b *Buffer) SetStringClipped(x, y int, s string, p Paint, clip layout.Rect) int {
	if y < clip.Top || y >= clip.Bottom {
		return 0
	}

	drawn := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right {
			break
		}
		if curX >= clip.Left && !(width == 2 && curX+1 >= clip.Right) {
			b.SetRune(curX, y, r, p)
			drawn += width
		}
		curX += width
	}
	return drawn
}

// Fill fills the part of rect inside the buffer with r.
func (b *Buffer) Fill(rect layout.Rect, r rune, p Paint) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	width := RuneWidth(r)
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; {
			if width == 2 && x+1 >= rect.Right {
				b.SetRune(x, y, ' ', p)
				x++
				continue
			}
			b.SetRune(x, y, r, p)
			x += width
		}
	}
}

// Clear resets every cell to an unpainted space.
func (b *Buffer) Clear() {
	blank := NewCell(' ', Paint{})
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the buffer dimensions, preserving the overlapping region.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	next := NewBuffer(width, height)
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			next.cells[y*width+x] = b.cells[y*b.width+x]
		}
	}
	*b = *next
}

// Row returns the cells of row y, skipping continuation cells.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Cell, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if !c.IsContinuation() {
			row = append(row, c)
		}
	}
	return row
}

// String renders the buffer as text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for _, c := range b.Row(y) {
			sb.WriteRune(printable(c.Rune))
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer content with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func printable(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}
