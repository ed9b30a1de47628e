package boxflow

import (
	"errors"
	"testing"
)

func TestInit_MissingParent(t *testing.T) {
	type tc struct {
		node Node
		kind Kind
	}

	tests := map[string]tc{
		"button": {node: NewButton("OK", Style{}), kind: KindButton},
		"text":   {node: NewText("label", Style{}), kind: KindText},
		"panel":  {node: NewPanel(Style{}), kind: KindPanel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.node.Init()
			if !errors.Is(err, ErrMissingParent) {
				t.Fatalf("Init() error = %v, want ErrMissingParent", err)
			}
			var mpe *MissingParentError
			if !errors.As(err, &mpe) {
				t.Fatalf("Init() error = %T, want *MissingParentError", err)
			}
			if mpe.Kind != tt.kind {
				t.Errorf("MissingParentError.Kind = %v, want %v", mpe.Kind, tt.kind)
			}
			if tt.node.State() != StateUnattached {
				t.Errorf("State() = %v, want %v", tt.node.State(), StateUnattached)
			}
			if tt.node.Handle() != 0 {
				t.Errorf("Handle() = %d, want 0", tt.node.Handle())
			}
		})
	}
}

func TestInit_ContainerNotInitialized(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host)
	child := NewText("inner", Style{})
	if err := w.Append(NewPanel(Style{}, child)); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	// The panel has not been created yet, so its child has no native parent
	if err := child.Init(); !errors.Is(err, ErrMissingParent) {
		t.Errorf("Init() error = %v, want ErrMissingParent", err)
	}
}

func TestAttach_Twice(t *testing.T) {
	host := newFakeHost()
	a := NewWindow(host)
	b := NewWindow(host)
	n := NewText("shared", Style{})

	if err := a.Append(n); err != nil {
		t.Fatalf("first Append() unexpected error: %v", err)
	}
	if err := b.Append(n); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("second Append() error = %v, want ErrAlreadyAttached", err)
	}
	if len(b.Children()) != 0 {
		t.Errorf("second window has %d children, want 0", len(b.Children()))
	}
}

func TestLifecycle_Transitions(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host)
	n := NewText("hello", Style{})

	if n.State() != StateUnattached {
		t.Fatalf("new node State() = %v, want unattached", n.State())
	}
	if err := w.Append(n); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	if n.State() != StateAttached {
		t.Fatalf("after Append State() = %v, want attached", n.State())
	}
	if n.Container().IsZero() {
		t.Fatal("after Append Container() is zero")
	}
	if err := w.Open(); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if n.State() != StateLive {
		t.Fatalf("after Open State() = %v, want live", n.State())
	}

	h := n.Handle()
	n.Destroy()
	if n.State() != StateDestroyed {
		t.Fatalf("after Destroy State() = %v, want destroyed", n.State())
	}
	if _, ok := host.spec(h); ok {
		t.Error("Destroy() did not release the native handle")
	}
	if err := n.Init(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Init() after Destroy error = %v, want ErrDestroyed", err)
	}

	// Update on a destroyed node is a no-op
	before := host.applyCount()
	n.Update(Frame{}, Frame{Rect: NewRect(0, 0, 999, 999)})
	if host.applyCount() != before {
		t.Error("Update() after Destroy pushed a rect")
	}
}

func TestInit_Twice(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host)
	n := NewText("once", Style{})
	_ = w.Append(n)
	if err := w.Open(); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if err := n.Init(); err == nil {
		t.Error("second Init() error = nil, want error")
	}
}

func TestUpdate_SkipsIdenticalRect(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host)
	n := NewText("steady", Style{Width: Percent(0.5), Height: Pixels(20)})
	_ = w.Append(n)
	if err := w.Open(); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}

	w.Refresh()
	w.Refresh()
	if got := len(host.appliedTo(n.Handle())); got != 1 {
		t.Errorf("ApplyRect called %d times for an unchanged rect, want 1", got)
	}

	w.Resize(NewRect(0, 0, 300, 300))
	if got := len(host.appliedTo(n.Handle())); got != 2 {
		t.Errorf("ApplyRect called %d times after a resize, want 2", got)
	}
}

func TestUpdate_BeforeInitRecordsRect(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host)
	n := NewText("dry", Style{})
	_ = w.Append(n)

	w.Update(NewRect(0, 0, 200, 100), Style{})
	if want := NewRect(0, 0, 29, 21); n.Rect() != want {
		t.Errorf("Rect() = %v, want %v", n.Rect(), want)
	}
	if host.applyCount() != 0 {
		t.Errorf("ApplyRect called %d times before Init, want 0", host.applyCount())
	}
}
