package fynehost

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/layout"
)

var (
	_ boxflow.Host           = (*Host)(nil)
	_ boxflow.ResizeNotifier = (*Host)(nil)
)

// Default window size in pixels when a window style gives none.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type control struct {
	kind   boxflow.Kind
	parent boxflow.Handle

	// obj is what the parent holds. For buttons it is the widget itself,
	// everything else is a box holding a background and its content.
	obj fyne.CanvasObject
	box *fyne.Container
	bg  *canvas.Rectangle

	text  *canvas.Text  // Single line text
	label *widget.Label // Wrapped or truncated text

	format layout.TextFormat

	// Windows only
	win    fyne.Window
	client *clientLayout
}

// Host creates Fyne objects for boxflow nodes.
type Host struct {
	app      fyne.App
	textSize float32

	mu       sync.Mutex
	next     boxflow.Handle
	controls map[boxflow.Handle]*control
	closers  map[boxflow.Handle]func()
}

// Option configures a Host.
type Option func(*Host)

// WithTextSize overrides the theme text size used for measuring and drawing.
func WithTextSize(size float32) Option {
	return func(h *Host) {
		if size > 0 {
			h.textSize = size
		}
	}
}

// New creates a host whose windows belong to app.
func New(app fyne.App, opts ...Option) *Host {
	h := &Host{
		app:      app,
		controls: make(map[boxflow.Handle]*control),
		closers:  make(map[boxflow.Handle]func()),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) size() float32 {
	if h.textSize > 0 {
		return h.textSize
	}
	return theme.TextSize()
}

// MeasureText returns the pixel width of the widest line and the height of
// all lines, rounded up.
func (h *Host) MeasureText(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	var w, ht float32
	for _, line := range strings.Split(text, "\n") {
		s := fyne.MeasureText(line, h.size(), fyne.TextStyle{})
		w = max(w, s.Width)
		ht += s.Height
	}
	return ceil(w), ceil(ht)
}

// Create builds the Fyne object for spec. Fyne calls happen outside the
// host lock since some of them lay out synchronously.
func (h *Host) Create(spec boxflow.NativeSpec) (boxflow.Handle, error) {
	var parent *control
	if spec.Kind != boxflow.KindWindow {
		h.mu.Lock()
		p, ok := h.controls[spec.Parent]
		h.mu.Unlock()
		if !ok {
			return 0, fmt.Errorf("fynehost: unknown parent handle %d", spec.Parent)
		}
		if p.box == nil {
			return 0, fmt.Errorf("fynehost: %s %d cannot hold children", p.kind, spec.Parent)
		}
		parent = p
	}

	var c *control
	switch spec.Kind {
	case boxflow.KindWindow:
		c = h.newWindow(spec)
	case boxflow.KindButton:
		btn := widget.NewButton(spec.Text, spec.OnActivate)
		c = &control{obj: btn}
	case boxflow.KindPanel, boxflow.KindText:
		c = h.newBox(spec)
	default:
		return 0, fmt.Errorf("fynehost: unsupported kind %s", spec.Kind)
	}
	c.kind = spec.Kind
	c.parent = spec.Parent

	if parent != nil {
		parent.container().Add(c.obj)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.controls[h.next] = c
	if c.win != nil {
		id := h.next
		c.win.SetCloseIntercept(func() { h.requestClose(id) })
	}
	return h.next, nil
}

func (h *Host) newWindow(spec boxflow.NativeSpec) *control {
	w, ht := DefaultWidth, DefaultHeight
	if spec.Style.Width.Unit == layout.UnitPixels {
		w = spec.Style.Width.Resolve(0)
	}
	if spec.Style.Height.Unit == layout.UnitPixels {
		ht = spec.Style.Height.Resolve(0)
	}

	bg := canvas.NewRectangle(brushColor(spec.Style.Background.Or(layout.DefaultBackground)))
	box := container.NewWithoutLayout(bg)
	client := &clientLayout{size: fyne.NewSize(float32(w), float32(ht))}

	win := h.app.NewWindow(spec.Text)
	win.SetPadded(false)
	win.SetContent(container.New(client, box))
	win.Resize(fyne.NewSize(float32(w), float32(ht)))
	if spec.Style.OnOpen == layout.OnOpenMaximize {
		win.SetFullScreen(true)
	}
	return &control{obj: box, box: box, bg: bg, win: win, client: client}
}

func (h *Host) newBox(spec boxflow.NativeSpec) *control {
	style := spec.Style
	bg := canvas.NewRectangle(brushColor(style.Background))
	switch style.Border {
	case layout.BorderSingle:
		bg.StrokeWidth = 1
	case layout.BorderThick:
		bg.StrokeWidth = 2
	}
	bg.StrokeColor = style.Color.Or(layout.DefaultTextColor).NRGBA()

	c := &control{bg: bg, format: style.TextFormat()}
	objects := []fyne.CanvasObject{bg}
	if spec.Kind == boxflow.KindText && spec.Text != "" {
		switch c.format.Overflow {
		case layout.OverflowBreak, layout.OverflowEllipsis:
			c.label = widget.NewLabel(spec.Text)
			c.label.Alignment = textAlign(c.format.Justify)
			if c.format.Overflow == layout.OverflowBreak {
				c.label.Wrapping = fyne.TextWrapWord
			} else {
				c.label.Truncation = fyne.TextTruncateEllipsis
			}
			objects = append(objects, c.label)
		default:
			c.text = canvas.NewText(spec.Text, style.Color.Or(layout.DefaultTextColor).NRGBA())
			c.text.TextSize = h.size()
			objects = append(objects, c.text)
		}
	}
	c.box = container.NewWithoutLayout(objects...)
	c.obj = c.box
	return c
}

// container returns where children of c are placed.
func (c *control) container() *fyne.Container {
	return c.box
}

// ApplyRect moves and resizes a control within its parent.
func (h *Host) ApplyRect(id boxflow.Handle, r layout.Rect) {
	h.mu.Lock()
	c, ok := h.controls[id]
	h.mu.Unlock()
	if !ok || c.kind == boxflow.KindWindow {
		return
	}

	size := fyne.NewSize(float32(r.Width()), float32(r.Height()))
	c.obj.Move(fyne.NewPos(float32(r.Left), float32(r.Top)))
	c.obj.Resize(size)
	if c.bg != nil {
		c.bg.Resize(size)
	}
	switch {
	case c.label != nil:
		c.label.Move(fyne.NewPos(0, 0))
		c.label.Resize(size)
	case c.text != nil:
		c.text.Resize(c.text.MinSize())
		c.text.Move(place(c.text.MinSize(), size, c.format))
	}
	c.obj.Refresh()
}

// place positions content of the given size inside a box.
func place(content, box fyne.Size, f layout.TextFormat) fyne.Position {
	var pos fyne.Position
	switch f.Justify {
	case layout.JustifyCenter:
		pos.X = (box.Width - content.Width) / 2
	case layout.JustifyEnd:
		pos.X = box.Width - content.Width
	}
	switch f.Align {
	case layout.AlignCenter:
		pos.Y = (box.Height - content.Height) / 2
	case layout.AlignEnd:
		pos.Y = box.Height - content.Height
	}
	return pos
}

// Destroy removes a control and everything inside it. Destroying a window
// closes it.
func (h *Host) Destroy(id boxflow.Handle) {
	h.mu.Lock()
	c, ok := h.controls[id]
	if !ok {
		h.mu.Unlock()
		return
	}
	parent := h.controls[c.parent]
	h.destroyLocked(id)
	h.mu.Unlock()

	if parent != nil {
		parent.container().Remove(c.obj)
	}
	if c.win != nil {
		c.win.Close()
	}
}

func (h *Host) destroyLocked(id boxflow.Handle) {
	delete(h.controls, id)
	delete(h.closers, id)
	for child, c := range h.controls {
		if c.parent == id {
			h.destroyLocked(child)
		}
	}
}

// ClientRect returns the client area of a control, origin at (0, 0).
func (h *Host) ClientRect(id boxflow.Handle) layout.Rect {
	h.mu.Lock()
	c, ok := h.controls[id]
	h.mu.Unlock()
	if !ok {
		return layout.Rect{}
	}
	var size fyne.Size
	if c.client != nil {
		size = c.client.current()
	} else {
		size = c.obj.Size()
	}
	return layout.NewRect(0, 0, int(size.Width), int(size.Height))
}

// NotifyResize registers fn to run whenever a window's client area changes.
func (h *Host) NotifyResize(id boxflow.Handle, fn func(layout.Rect)) {
	h.mu.Lock()
	c, ok := h.controls[id]
	h.mu.Unlock()
	if ok && c.client != nil {
		c.client.notify(fn)
	}
}

// NotifyClose registers fn to run when the user asks to close a window.
// Without one the window closes immediately.
func (h *Host) NotifyClose(id boxflow.Handle, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closers[id] = fn
}

func (h *Host) requestClose(id boxflow.Handle) {
	h.mu.Lock()
	fn := h.closers[id]
	c := h.controls[id]
	h.mu.Unlock()

	switch {
	case fn != nil:
		fn()
	case c != nil:
		h.Destroy(id)
	}
}

// Show shows a window.
func (h *Host) Show(id boxflow.Handle) error {
	win, ok := h.Window(id)
	if !ok {
		return fmt.Errorf("fynehost: %d is not a window", id)
	}
	win.Show()
	return nil
}

// Window returns the Fyne window behind a window handle.
func (h *Host) Window(id boxflow.Handle) (fyne.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[id]
	if !ok || c.win == nil {
		return nil, false
	}
	return c.win, true
}

// Object returns the Fyne object placed for a control. Buttons return their
// *widget.Button.
func (h *Host) Object(id boxflow.Handle) (fyne.CanvasObject, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[id]
	if !ok {
		return nil, false
	}
	return c.obj, true
}

// Len returns the number of live controls.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.controls)
}

func brushColor(b layout.Brush) color.Color {
	switch b.Kind {
	case layout.BrushSolid:
		return b.Color.NRGBA()
	case layout.BrushHatch:
		// No pattern fills in canvas; a half transparent tint stands in
		c := b.Color.NRGBA()
		c.A = 0x80
		return c
	default:
		return color.Transparent
	}
}

func textAlign(j layout.Justify) fyne.TextAlign {
	switch j {
	case layout.JustifyCenter:
		return fyne.TextAlignCenter
	case layout.JustifyEnd:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

func ceil(f float32) int {
	return int(math.Ceil(float64(f)))
}
