package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/layout"
)

// Paint draws a window and every control inside it into a new buffer.
// Unknown handles paint an empty buffer.
func (h *Host) Paint(window boxflow.Handle) *Buffer {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.elements[window]
	if !ok {
		return NewBuffer(0, 0)
	}
	buf := NewBuffer(e.rect.Width(), e.rect.Height())
	h.paintLocked(buf, window, 0, 0, buf.Rect())
	return buf
}

// Render returns the painted window as plain text with trailing spaces
// trimmed.
func (h *Host) Render(window boxflow.Handle) string {
	return h.Paint(window).StringTrimmed()
}

// RenderANSI returns the painted window with colors applied through
// lipgloss. Runs of cells sharing a paint are styled together.
func (h *Host) RenderANSI(window boxflow.Handle) string {
	buf := h.Paint(window)
	var sb strings.Builder
	for y := 0; y < buf.Height(); y++ {
		row := buf.Row(y)
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].Paint == row[i].Paint {
				run.WriteRune(printable(row[j].Rune))
				j++
			}
			sb.WriteString(paintStyle(row[i].Paint).Render(run.String()))
			i = j
		}
		if y < buf.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func paintStyle(p Paint) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.Fg.IsSet() {
		s = s.Foreground(lipgloss.Color(p.Fg.Hex()))
	}
	if p.Bg.IsSet() {
		s = s.Background(lipgloss.Color(p.Bg.Hex()))
	}
	return s
}

// paintLocked draws one control, then its children in creation order.
// (ox, oy) is the absolute origin of the parent's client area.
func (h *Host) paintLocked(buf *Buffer, id boxflow.Handle, ox, oy int, clip layout.Rect) {
	e, ok := h.elements[id]
	if !ok {
		return
	}
	abs := e.rect.Translate(ox, oy)
	clip = abs.Intersect(clip)
	if clip.IsEmpty() {
		return
	}

	style := e.spec.Style
	fg := style.Color.Or(layout.DefaultTextColor)
	format := style.TextFormat()
	content := abs

	switch e.spec.Kind {
	case boxflow.KindWindow:
		fillBrush(buf, clip, style.Background.Or(layout.DefaultBackground))
	case boxflow.KindButton:
		fillBrush(buf, clip, style.Background.Or(ButtonFace))
		// Native push buttons center their label
		if style.Justify == layout.JustifyUnset {
			format.Justify = layout.JustifyCenter
		}
		if style.Align == layout.AlignUnset && format.Overflow != layout.OverflowBreak {
			format.Align = layout.AlignCenter
		}
	default:
		fillBrush(buf, clip, style.Background)
	}

	switch {
	case style.HasBorder():
		DrawBox(buf, abs, style.Border, Paint{Fg: fg, Bg: buf.Cell(abs.Left, abs.Top).Paint.Bg}, clip)
		content = abs.Inset(layout.EdgeAll(1))
	case e.spec.Kind == boxflow.KindButton && style.Border == layout.BorderUnset:
		if abs.Height() >= 3 {
			DrawBox(buf, abs, layout.BorderSingle, Paint{Fg: fg, Bg: buf.Cell(abs.Left, abs.Top).Paint.Bg}, clip)
			content = abs.Inset(layout.EdgeAll(1))
		} else if abs.Width() >= 2 {
			mid := abs.Top + abs.Height()/2
			bg := buf.Cell(abs.Left, mid).Paint.Bg
			if clip.Contains(abs.Left, mid) {
				buf.SetRune(abs.Left, mid, '[', Paint{Fg: fg, Bg: bg})
			}
			if clip.Contains(abs.Right-1, mid) {
				buf.SetRune(abs.Right-1, mid, ']', Paint{Fg: fg, Bg: bg})
			}
			content = abs.Inset(layout.EdgeTRBL(0, 1, 0, 1))
		}
	}

	if e.spec.Kind != boxflow.KindWindow && e.spec.Text != "" {
		drawText(buf, content, FormatLines(e.spec.Text, format, content.Width()), format, fg, clip)
	}

	for _, c := range e.children {
		h.paintLocked(buf, c, abs.Left, abs.Top, clip)
	}
}

// fillBrush paints a background. Solid brushes set the cell background,
// hatch brushes draw pattern lines in the brush color.
func fillBrush(buf *Buffer, r layout.Rect, b layout.Brush) {
	switch b.Kind {
	case layout.BrushSolid:
		buf.Fill(r, ' ', Paint{Bg: b.Color})
	case layout.BrushHatch:
		buf.Fill(r, hatchRune(b.Pattern), Paint{Fg: b.Color})
	}
}
