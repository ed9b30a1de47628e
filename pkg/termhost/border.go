package termhost

import "github.com/grindlemire/go-boxflow/internal/layout"

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for a border, and false when the
// border draws nothing.
func Chars(b layout.Border) (BorderChars, bool) {
	switch b {
	case layout.BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}, true
	case layout.BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}, true
	default:
		return BorderChars{}, false
	}
}

// DrawBox draws a border around rect. Positions come from the full rect but
// only characters inside clip are drawn. Rects smaller than 2x2 draw nothing.
func DrawBox(buf *Buffer, rect layout.Rect, border layout.Border, p Paint, clip layout.Rect) {
	chars, ok := Chars(border)
	if !ok || rect.Width() < 2 || rect.Height() < 2 {
		return
	}

	left, right := rect.Left, rect.Right-1
	top, bottom := rect.Top, rect.Bottom-1
	put := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			buf.SetRune(x, y, r, p)
		}
	}

	put(left, top, chars.TopLeft)
	put(right, top, chars.TopRight)
	put(left, bottom, chars.BottomLeft)
	put(right, bottom, chars.BottomRight)
	for x := left + 1; x < right; x++ {
		put(x, top, chars.Top)
		put(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, chars.Left)
		put(right, y, chars.Right)
	}
}

// hatchRune returns the character that draws a hatch pattern.
func hatchRune(p layout.HatchPattern) rune {
	switch p {
	case layout.HatchCross:
		return '┼'
	case layout.HatchVertical:
		return '│'
	case layout.HatchHorizontal:
		return '─'
	case layout.HatchForwardDiagonal:
		return '╱'
	case layout.HatchBackwardDiagonal:
		return '╲'
	default:
		return '╳'
	}
}
