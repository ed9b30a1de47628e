package layout

import "testing"

func TestShorthand_Resolve(t *testing.T) {
	type tc struct {
		shorthand Shorthand
		ref       Rect
		expected  Edges
	}

	ref := NewRect(0, 0, 100, 50)

	tests := map[string]tc{
		"unset is zero": {
			shorthand: Shorthand{},
			ref:       ref,
			expected:  Edges{},
		},
		"single pixel value": {
			shorthand: SidesPx(7),
			ref:       ref,
			expected:  EdgeTRBL(7, 7, 7, 7),
		},
		"single percent resolves per axis": {
			shorthand: Sides(Percent(0.1)),
			ref:       ref,
			expected:  EdgeTRBL(5, 10, 5, 10),
		},
		"vertical horizontal pair": {
			shorthand: SidesPx(5, 10),
			ref:       ref,
			expected:  EdgeTRBL(5, 10, 5, 10),
		},
		"pair of percentages": {
			shorthand: Sides(Percent(0.1), Percent(0.2)),
			ref:       ref,
			expected:  EdgeTRBL(5, 20, 5, 20),
		},
		"three values share horizontal": {
			shorthand: SidesPx(1, 2, 3),
			ref:       ref,
			expected:  EdgeTRBL(1, 2, 3, 2),
		},
		"four values in css order": {
			shorthand: SidesPx(1, 2, 3, 4),
			ref:       ref,
			expected:  EdgeTRBL(1, 2, 3, 4),
		},
		"mixed four values": {
			shorthand: Sides(Percent(0.5), Pixels(3), Pixels(4), Percent(0.25)),
			ref:       ref,
			expected:  EdgeTRBL(25, 3, 4, 25),
		},
		"too many values is unset": {
			shorthand: SidesPx(1, 2, 3, 4, 5),
			ref:       ref,
			expected:  Edges{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.shorthand.Resolve(tt.ref); got != tt.expected {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolvePaddingAndMargin(t *testing.T) {
	style := Style{Padding: SidesPx(5, 10), Margin: SidesPx(1, 2, 3)}
	ref := NewRect(0, 0, 100, 50)

	if got := ResolvePadding(style, ref); got != EdgeTRBL(5, 10, 5, 10) {
		t.Errorf("ResolvePadding() = %+v, want {5 10 5 10}", got)
	}
	if got := ResolveMargin(style, ref); got != EdgeTRBL(1, 2, 3, 2) {
		t.Errorf("ResolveMargin() = %+v, want {1 2 3 2}", got)
	}
	if got := ResolveMargin(Style{}, ref); !got.IsZero() {
		t.Errorf("ResolveMargin() of empty style = %+v, want zero", got)
	}
}

func TestShorthand_String(t *testing.T) {
	if got := Sides(Pixels(5), Percent(0.5)).String(); got != "5px 50%" {
		t.Errorf("String() = %q, want %q", got, "5px 50%")
	}
	if got := (Shorthand{}).String(); got != "unset" {
		t.Errorf("String() = %q, want %q", got, "unset")
	}
}
