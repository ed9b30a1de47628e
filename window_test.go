package boxflow

import (
	"errors"
	"testing"
)

func openWindow(t *testing.T, host Host, opts []WindowOption, nodes ...Node) *Window {
	t.Helper()
	w := NewWindow(host, opts...)
	if err := w.Append(nodes...); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	if err := w.Open(); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	return w
}

func TestWindow_SequentialFlow(t *testing.T) {
	host := newFakeHost()
	style := Style{Height: Pixels(20)}
	a, b, c := NewText("a", style), NewText("b", style), NewText("c", style)
	openWindow(t, host, nil, a, b, c)

	for i, n := range []Node{a, b, c} {
		if got, want := n.Rect().Top, i*20; got != want {
			t.Errorf("child %d top = %d, want %d", i, got, want)
		}
		if rects := host.appliedTo(n.Handle()); len(rects) != 1 || rects[0] != n.Rect() {
			t.Errorf("child %d applied rects = %v, want [%v]", i, rects, n.Rect())
		}
	}
}

func TestWindow_PaddingAndGap(t *testing.T) {
	type tc struct {
		style Style
		tops  []int
		left  int
	}

	tests := map[string]tc{
		"no spacing": {
			style: Style{},
			tops:  []int{0, 20, 40},
		},
		"padding offsets the first child only": {
			style: Style{Padding: SidesPx(10)},
			tops:  []int{10, 30, 50},
			left:  10,
		},
		"gap separates flowed children": {
			style: Style{Padding: SidesPx(10), Gap: Pixels(5)},
			tops:  []int{10, 35, 60},
			left:  10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			nodes := []Node{
				NewText("a", Style{Height: Pixels(20)}),
				NewText("b", Style{Height: Pixels(20)}),
				NewText("c", Style{Height: Pixels(20)}),
			}
			openWindow(t, newFakeHost(), []WindowOption{WithStyle(tt.style)}, nodes...)
			for i, n := range nodes {
				if n.Rect().Top != tt.tops[i] {
					t.Errorf("child %d top = %d, want %d", i, n.Rect().Top, tt.tops[i])
				}
				if n.Rect().Left != tt.left {
					t.Errorf("child %d left = %d, want %d", i, n.Rect().Left, tt.left)
				}
			}
		})
	}
}

func TestWindow_SizedFromStyle(t *testing.T) {
	host := newFakeHost()
	w := openWindow(t, host, []WindowOption{
		WithTitle("Sized"),
		WithStyle(Style{Width: Pixels(640), Height: Pixels(480)}),
	})

	if want := NewRect(0, 0, 640, 480); w.Rect() != want {
		t.Errorf("Rect() = %v, want %v", w.Rect(), want)
	}
	spec, ok := host.spec(w.Handle())
	if !ok {
		t.Fatal("window handle not created")
	}
	if spec.Kind != KindWindow || spec.Text != "Sized" {
		t.Errorf("window spec = {%v %q}, want {window %q}", spec.Kind, spec.Text, "Sized")
	}
}

func TestWindow_ResizeNotification(t *testing.T) {
	host := newFakeHost()
	half := NewText("half", Style{Width: Percent(0.5)})
	pinned := NewText("pinned", Style{Bottom: Pixels(0), Height: Pixels(20)})
	w := openWindow(t, host, nil, half, pinned)

	if half.Rect().Right != 200 {
		t.Fatalf("initial right = %d, want 200", half.Rect().Right)
	}

	host.setClient(w.Handle(), NewRect(0, 0, 200, 100))

	if w.Rect() != NewRect(0, 0, 200, 100) {
		t.Errorf("Rect() after resize = %v, want (0, 0, 200, 100)", w.Rect())
	}
	if half.Rect().Right != 100 {
		t.Errorf("right after resize = %d, want 100", half.Rect().Right)
	}
	if want := 80; pinned.Rect().Top != want {
		t.Errorf("bottom-anchored top after resize = %d, want %d", pinned.Rect().Top, want)
	}
}

func TestWindow_HostWithoutNotifier(t *testing.T) {
	fake := newFakeHost()
	n := NewText("static", Style{Width: Percent(1.0)})
	w := openWindow(t, plainHost{fake}, nil, n)

	if len(fake.resize) != 0 {
		t.Errorf("registered %d resize callbacks, want 0", len(fake.resize))
	}

	fake.client[w.Handle()] = NewRect(0, 0, 120, 90)
	w.Refresh()
	if n.Rect().Right != 120 {
		t.Errorf("right after Refresh = %d, want 120", n.Rect().Right)
	}
}

func TestWindow_AppendAfterOpen(t *testing.T) {
	host := newFakeHost()
	first := NewText("first", Style{Height: Pixels(30)})
	w := openWindow(t, host, nil, first)

	late := NewText("late", Style{Height: Pixels(10)})
	if err := w.Append(late); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	if late.State() != StateLive {
		t.Errorf("late State() = %v, want live", late.State())
	}
	if late.Rect().Top != 30 {
		t.Errorf("late top = %d, want 30", late.Rect().Top)
	}
	if len(w.Children()) != 2 {
		t.Errorf("Children() has %d nodes, want 2", len(w.Children()))
	}
}

func TestWindow_OpenErrors(t *testing.T) {
	host := newFakeHost()
	w := openWindow(t, host, nil)

	if err := w.Open(); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second Open() error = %v, want ErrAlreadyOpen", err)
	}
	w.Close()
	if err := w.Open(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Open() after Close error = %v, want ErrDestroyed", err)
	}
	if err := w.Append(NewText("x", Style{})); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Append() after Close error = %v, want ErrDestroyed", err)
	}
}

func TestWindow_CreateWindowFails(t *testing.T) {
	w := NewWindow(newFakeHost().failOn(KindWindow))
	if err := w.Open(); !errors.Is(err, errCreate) {
		t.Errorf("Open() error = %v, want %v", err, errCreate)
	}
	if w.IsOpen() {
		t.Error("IsOpen() = true after a failed Open")
	}
}

func TestWindow_ChildInitFailure(t *testing.T) {
	host := newFakeHost().failOn(KindText)
	label := NewText("broken", Style{Height: Pixels(20)})
	button := NewButton("OK", Style{Height: Pixels(20)})

	w := NewWindow(host)
	_ = w.Append(label, button)
	err := w.Open()
	if !errors.Is(err, errCreate) {
		t.Fatalf("Open() error = %v, want %v", err, errCreate)
	}
	if !w.IsOpen() {
		t.Fatal("IsOpen() = false, want the window open despite a failed child")
	}
	if label.State() != StateAttached {
		t.Errorf("failed child State() = %v, want attached", label.State())
	}
	if button.State() != StateLive {
		t.Errorf("healthy child State() = %v, want live", button.State())
	}
	// The failed child still takes its place in the flow
	if button.Rect().Top != 20 {
		t.Errorf("button top = %d, want 20", button.Rect().Top)
	}
}

func TestWindow_Close(t *testing.T) {
	host := newFakeHost()
	allow := false
	destroyed := 0
	n := NewText("bye", Style{})
	w := openWindow(t, host, []WindowOption{
		WithOnClose(func() bool { return allow }),
		WithOnDestroy(func() { destroyed++ }),
	}, n)
	wh, nh := w.Handle(), n.Handle()

	if w.Close() {
		t.Fatal("Close() = true, want veto")
	}
	if !w.IsOpen() || n.State() != StateLive {
		t.Fatal("vetoed Close() tore the window down")
	}
	if destroyed != 0 {
		t.Fatalf("destroy handler ran %d times after a veto", destroyed)
	}

	allow = true
	if !w.Close() {
		t.Fatal("Close() = false, want closed")
	}
	if w.IsOpen() {
		t.Error("IsOpen() = true after Close")
	}
	if n.State() != StateDestroyed {
		t.Errorf("child State() = %v, want destroyed", n.State())
	}
	if want := []Handle{nh, wh}; !equalHandles(host.destroyed, want) {
		t.Errorf("destroy order = %v, want %v", host.destroyed, want)
	}

	if !w.Close() {
		t.Error("second Close() = false, want true")
	}
	if destroyed != 1 {
		t.Errorf("destroy handler ran %d times, want 1", destroyed)
	}
}

func TestFlow_DryRun(t *testing.T) {
	nodes := []Node{
		NewText("a", Style{Height: Pixels(20)}),
		NewText("b", Style{Height: Pixels(20), Margin: SidesPx(5, 0)}),
		NewText("c", Style{Height: Pixels(20)}),
	}
	rects := Flow(nodes, Frame{Rect: NewRect(0, 0, 100, 100)})

	// Unattached nodes measure as empty: width floor is IntrinsicPad
	want := []Rect{
		NewRect(0, 0, 8, 20),
		NewRect(0, 25, 8, 45),
		NewRect(0, 50, 8, 70),
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %v, want %v", i, rects[i], want[i])
		}
	}
	for i, n := range nodes {
		if n.Rect() != (Rect{}) {
			t.Errorf("Flow() modified node %d rect to %v", i, n.Rect())
		}
	}
}

func equalHandles(a, b []Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
