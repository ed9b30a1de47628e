package boxflow

import "testing"

func TestButton_NativeControls(t *testing.T) {
	host := newFakeHost()
	label := NewText("a", Style{})
	clicks := 0
	btn := NewButton("OK", Style{}, WithOnClick(func() { clicks++ }))
	w := openWindow(t, host, nil, label, btn)

	wrapper, ok := host.spec(btn.Handle())
	if !ok {
		t.Fatal("wrapper not created")
	}
	if wrapper.Kind != KindPanel || wrapper.Parent != w.Handle() {
		t.Errorf("wrapper spec = {%v parent=%d}, want {panel parent=%d}", wrapper.Kind, wrapper.Parent, w.Handle())
	}
	if wrapper.Style.Background.Kind != BrushTransparent {
		t.Errorf("wrapper background = %v, want transparent", wrapper.Style.Background.Kind)
	}

	inner, ok := host.spec(btn.Inner())
	if !ok {
		t.Fatal("inner button not created")
	}
	if inner.Kind != KindButton || inner.Parent != btn.Handle() || inner.Text != "OK" {
		t.Errorf("inner spec = {%v parent=%d %q}, want {button parent=%d %q}",
			inner.Kind, inner.Parent, inner.Text, btn.Handle(), "OK")
	}

	// "OK" measures 14x13: width floor 22, default height 21, below the label
	if want := NewRect(0, 21, 22, 42); btn.Rect() != want {
		t.Errorf("Rect() = %v, want %v", btn.Rect(), want)
	}
	if got := host.appliedTo(btn.Inner()); len(got) != 1 || got[0] != NewRect(0, 0, 22, 21) {
		t.Errorf("inner applied rects = %v, want [(0, 0, 22, 21)]", got)
	}

	inner.OnActivate()
	if clicks != 1 {
		t.Errorf("click handler ran %d times, want 1", clicks)
	}
}

func TestButton_InnerCreateFailureReleasesWrapper(t *testing.T) {
	host := newFakeHost().failOn(KindButton)
	btn := NewButton("OK", Style{})
	w := NewWindow(host)
	_ = w.Append(btn)

	if err := w.Open(); err == nil {
		t.Fatal("Open() error = nil, want inner button failure")
	}
	if btn.Handle() != 0 || btn.Inner() != 0 {
		t.Errorf("handles = (%d, %d), want (0, 0)", btn.Handle(), btn.Inner())
	}
	if len(host.destroyed) != 1 {
		t.Errorf("destroyed %d handles, want the wrapper only", len(host.destroyed))
	}
}

func TestButton_DestroyOrder(t *testing.T) {
	host := newFakeHost()
	btn := NewButton("Go", Style{})
	openWindow(t, host, nil, btn)
	wrapper, inner := btn.Handle(), btn.Inner()

	btn.Destroy()
	if want := []Handle{inner, wrapper}; !equalHandles(host.destroyed, want) {
		t.Errorf("destroy order = %v, want %v", host.destroyed, want)
	}

	// Clicks after destroy are ignored
	called := false
	btn.onClick = func() { called = true }
	btn.Click()
	if called {
		t.Error("Click() ran the handler on a destroyed button")
	}
}

func TestButton_AnchorsAndOverflow(t *testing.T) {
	type tc struct {
		style    Style
		expected Rect
	}

	// Window client area is 400x300; "Submit" measures 42x13
	tests := map[string]tc{
		"right anchor": {
			style:    Style{Right: Pixels(10)},
			expected: NewRect(340, 0, 390, 21),
		},
		"left beats right": {
			style:    Style{Left: Pixels(10), Right: Pixels(10)},
			expected: NewRect(10, 0, 60, 21),
		},
		"full bleed ignores right": {
			style:    Style{Width: Percent(1.0), Right: Pixels(10)},
			expected: NewRect(0, 0, 400, 21),
		},
		"width floors at text": {
			style:    Style{Width: Pixels(20)},
			expected: NewRect(0, 0, 50, 21),
		},
		"ellipsis allows narrower": {
			style:    Style{Width: Pixels(20), Overflow: OverflowEllipsis},
			expected: NewRect(0, 0, 20, 21),
		},
		"bottom percentage": {
			style:    Style{Bottom: Percent(0.1), Height: Pixels(30)},
			expected: NewRect(0, 240, 50, 270),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			btn := NewButton("Submit", tt.style)
			openWindow(t, newFakeHost(), nil, btn)
			if btn.Rect() != tt.expected {
				t.Errorf("Rect() = %v, want %v", btn.Rect(), tt.expected)
			}
		})
	}
}
