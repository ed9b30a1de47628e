package termhost

import (
	"strings"

	"github.com/grindlemire/go-boxflow/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to text cut by OverflowEllipsis.
const Ellipsis = "…"

// FormatLines splits text into the lines drawn inside a box width cells wide.
// Break wraps on word boundaries, ellipsis cuts each line with a trailing
// ellipsis, and anything else leaves lines to be clipped when drawn.
func FormatLines(text string, f layout.TextFormat, width int) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		switch f.Overflow {
		case layout.OverflowBreak:
			lines = append(lines, Wrap(para, width)...)
		case layout.OverflowEllipsis:
			lines = append(lines, runewidth.Truncate(para, max(width, 0), Ellipsis))
		default:
			lines = append(lines, para)
		}
	}
	return lines
}

// Wrap breaks s into lines no wider than width, splitting between words.
// A word wider than width is split across lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if curW > 0 {
				flush()
			}
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
			ww = runewidth.StringWidth(word)
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		flush()
	}
	return lines
}

// drawText places lines inside box according to f. The cells keep their
// existing background so text never erases a fill.
func drawText(buf *Buffer, box layout.Rect, lines []string, f layout.TextFormat, fg layout.Color, clip layout.Rect) {
	clip = box.Intersect(clip)
	if clip.IsEmpty() || len(lines) == 0 {
		return
	}

	y := box.Top
	switch f.Align {
	case layout.AlignCenter:
		y += (box.Height() - len(lines)) / 2
	case layout.AlignEnd:
		y += box.Height() - len(lines)
	}

	for _, line := range lines {
		lw := runewidth.StringWidth(line)
		x := box.Left
		switch f.Justify {
		case layout.JustifyCenter:
			x += (box.Width() - lw) / 2
		case layout.JustifyEnd:
			x += box.Width() - lw
		}
		bg := buf.Cell(max(x, clip.Left), y).Paint.Bg
		buf.SetStringClipped(x, y, line, Paint{Fg: fg, Bg: bg}, clip)
		y++
	}
}
