package boxflow

import "github.com/charmbracelet/log"

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(w *Window) {
		w.title = title
	}
}

// WithStyle sets the window style. Width and height size the native window
// when given in pixels; padding and gap apply to the window's children.
func WithStyle(style Style) WindowOption {
	return func(w *Window) {
		w.style = style
	}
}

// WithLogger sets the logger used for flow and lifecycle diagnostics.
func WithLogger(logger *log.Logger) WindowOption {
	return func(w *Window) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithOnClose sets a handler consulted before the window closes.
// Returning false keeps the window open.
func WithOnClose(fn func() bool) WindowOption {
	return func(w *Window) {
		w.onClose = fn
	}
}

// WithOnDestroy sets a handler invoked after the window is destroyed.
func WithOnDestroy(fn func()) WindowOption {
	return func(w *Window) {
		w.onDestroy = fn
	}
}
