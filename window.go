package boxflow

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Window is the root container. It owns an ordered list of nodes; insertion
// order is flow order and paint order.
//
// A single mutex guards the child list and every flow pass, so resize
// notifications may arrive from a host goroutine.
type Window struct {
	mu sync.Mutex

	host   Host
	tree   *tree
	id     ContainerID
	logger *log.Logger

	title     string
	style     Style
	onClose   func() bool
	onDestroy func()

	handle   Handle
	rect     Rect
	children []Node
	open     bool
	closed   bool
}

// NewWindow creates a window backed by host. The native window is not created
// until Open.
func NewWindow(host Host, opts ...WindowOption) *Window {
	t := newTree(host)
	w := &Window{
		host:   host,
		tree:   t,
		id:     t.add(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Handle returns the native window handle, or 0 before Open.
func (w *Window) Handle() Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handle
}

// Rect returns the client rect used by the last flow pass.
func (w *Window) Rect() Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rect
}

// Style returns the window style.
func (w *Window) Style() Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// Children returns a copy of the child list.
func (w *Window) Children() []Node {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Node, len(w.children))
	copy(out, w.children)
	return out
}

// IsOpen returns true between a successful Open and Close.
func (w *Window) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open && !w.closed
}

// Append attaches nodes to the window. On an open window the nodes are
// initialized and the whole window is flowed again.
func (w *Window) Append(nodes ...Node) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrDestroyed
	}

	var (
		errs  []error
		added []Node
	)
	for i, n := range nodes {
		if err := n.attach(w.tree, w.id); err != nil {
			errs = append(errs, fmt.Errorf("append node %d: %w", i, err))
			continue
		}
		w.children = append(w.children, n)
		added = append(added, n)
	}

	if w.open {
		errs = append(errs, w.initLocked(added))
		w.flowLocked()
	}
	return errors.Join(errs...)
}

// Open creates the native window, initializes every child and runs the first
// flow pass. Children that fail to initialize are reported and left without
// native resources; the rest of the window still opens.
func (w *Window) Open() error {
	w.mu.Lock()

	if w.closed {
		w.mu.Unlock()
		return ErrDestroyed
	}
	if w.open {
		w.mu.Unlock()
		return ErrAlreadyOpen
	}

	h, err := w.host.Create(NativeSpec{Kind: KindWindow, Text: w.title, Style: w.style})
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("create window: %w", err)
	}
	w.handle = h
	w.tree.setHandle(w.id, h)
	w.rect = w.host.ClientRect(h)
	w.open = true
	w.logger.Debug("window opened", "title", w.title, "rect", w.rect, "children", len(w.children))

	initErr := w.initLocked(w.children)
	w.flowLocked()
	w.mu.Unlock()

	// Registered outside the lock since the callback takes it
	if rn, ok := w.host.(ResizeNotifier); ok {
		rn.NotifyResize(h, w.Resize)
	}
	return initErr
}

// Update re-runs the full flow with a new client rect and style.
func (w *Window) Update(rect Rect, style Style) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rect = rect
	w.style = style
	w.flowLocked()
}

// Resize re-runs the full flow with a new client rect.
func (w *Window) Resize(rect Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rect != rect {
		w.logger.Debug("window resized", "from", w.rect, "to", rect)
	}
	w.rect = rect
	w.flowLocked()
}

// Refresh reads the client rect from the host and re-runs the full flow.
func (w *Window) Refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.open || w.closed {
		return
	}
	w.rect = w.host.ClientRect(w.handle)
	w.flowLocked()
}

// Close asks the close handler for permission, then destroys every child and
// the native window. It reports whether the window is closed.
func (w *Window) Close() bool {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return true
	}

	// Consulted unlocked so the handler may inspect the window
	if w.onClose != nil && !w.onClose() {
		w.logger.Debug("window close vetoed", "title", w.title)
		return false
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return true
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		w.children[i].Destroy()
	}
	if w.handle != 0 {
		w.host.Destroy(w.handle)
	}
	w.tree.setHandle(w.id, 0)
	w.handle = 0
	w.closed = true
	w.mu.Unlock()

	w.logger.Debug("window destroyed", "title", w.title)
	if w.onDestroy != nil {
		w.onDestroy()
	}
	return true
}

func (w *Window) initLocked(nodes []Node) error {
	var errs []error
	for i, n := range nodes {
		if err := n.Init(); err != nil {
			w.logger.Warn("node init failed", "index", i, "err", err)
			errs = append(errs, fmt.Errorf("init node %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (w *Window) flowLocked() {
	if w.closed {
		return
	}
	flow(w.children, Frame{Rect: w.rect, Style: w.style})
	w.logger.Debug("flow", "rect", w.rect, "children", len(w.children))
}
