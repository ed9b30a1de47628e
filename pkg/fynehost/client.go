package fynehost

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/grindlemire/go-boxflow/internal/layout"
)

var _ fyne.Layout = (*clientLayout)(nil)

// clientLayout stretches a window's client box over the whole canvas and
// reports size changes. It never calls back into the host, so it is safe to
// trigger while the host is creating the window.
type clientLayout struct {
	mu   sync.Mutex
	size fyne.Size
	fn   func(layout.Rect)
}

func (l *clientLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
		if box, ok := o.(*fyne.Container); ok && len(box.Objects) > 0 {
			// First object is the window background
			box.Objects[0].Resize(size)
		}
	}

	l.mu.Lock()
	changed := l.size != size
	l.size = size
	fn := l.fn
	l.mu.Unlock()

	if changed && fn != nil {
		fn(layout.NewRect(0, 0, int(size.Width), int(size.Height)))
	}
}

// MinSize is zero. Windows may shrink below their content.
func (l *clientLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

func (l *clientLayout) current() fyne.Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

func (l *clientLayout) notify(fn func(layout.Rect)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fn = fn
}
