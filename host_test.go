package boxflow

import (
	"errors"
	"sync"
	"unicode/utf8"
)

var errCreate = errors.New("create failed")

type applyCall struct {
	handle Handle
	rect   Rect
}

// fakeHost records every call. Text measures 7px per rune and 13px per line.
type fakeHost struct {
	mu        sync.Mutex
	next      Handle
	specs     map[Handle]NativeSpec
	applied   []applyCall
	destroyed []Handle
	client    map[Handle]Rect
	resize    map[Handle]func(Rect)
	failKind  Kind
	fail      bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		specs:  make(map[Handle]NativeSpec),
		client: make(map[Handle]Rect),
		resize: make(map[Handle]func(Rect)),
	}
}

func (h *fakeHost) failOn(k Kind) *fakeHost {
	h.fail = true
	h.failKind = k
	return h
}

func (h *fakeHost) MeasureText(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	return 7 * utf8.RuneCountInString(text), 13
}

func (h *fakeHost) Create(spec NativeSpec) (Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fail && spec.Kind == h.failKind {
		return 0, errCreate
	}
	h.next++
	h.specs[h.next] = spec
	if spec.Kind == KindWindow {
		w, ht := 400, 300
		if spec.Style.Width.Unit == UnitPixels {
			w = int(spec.Style.Width.Amount)
		}
		if spec.Style.Height.Unit == UnitPixels {
			ht = int(spec.Style.Height.Amount)
		}
		h.client[h.next] = NewRect(0, 0, w, ht)
	}
	return h.next, nil
}

func (h *fakeHost) ApplyRect(handle Handle, r Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applied = append(h.applied, applyCall{handle: handle, rect: r})
	if h.specs[handle].Kind != KindWindow {
		h.client[handle] = r.Normalized()
	}
}

func (h *fakeHost) Destroy(handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.destroyed = append(h.destroyed, handle)
	delete(h.specs, handle)
}

func (h *fakeHost) ClientRect(handle Handle) Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.client[handle]
}

func (h *fakeHost) NotifyResize(handle Handle, fn func(Rect)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resize[handle] = fn
}

// setClient changes a window's client rect and fires its resize callback.
func (h *fakeHost) setClient(handle Handle, r Rect) {
	h.mu.Lock()
	h.client[handle] = r
	fn := h.resize[handle]
	h.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}

func (h *fakeHost) appliedTo(handle Handle) []Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Rect
	for _, c := range h.applied {
		if c.handle == handle {
			out = append(out, c.rect)
		}
	}
	return out
}

func (h *fakeHost) applyCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.applied)
}

func (h *fakeHost) spec(handle Handle) (NativeSpec, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.specs[handle]
	return s, ok
}

// plainHost exposes only the Host methods of a fakeHost.
type plainHost struct{ Host }
