package stylesheet

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-boxflow/internal/layout"
)

func TestParse_Dimensions(t *testing.T) {
	type tc struct {
		raw      any
		expected layout.Value
	}

	tests := map[string]tc{
		"int is pixels":          {raw: 40, expected: layout.Pixels(40)},
		"int64 is pixels":        {raw: int64(40), expected: layout.Pixels(40)},
		"float is fraction":      {raw: 0.5, expected: layout.Percent(0.5)},
		"one is full":            {raw: 1.0, expected: layout.Percent(1)},
		"percent string":         {raw: "25%", expected: layout.Percent(0.25)},
		"px string":              {raw: "12px", expected: layout.Pixels(12)},
		"bare numeric string":    {raw: "7", expected: layout.Pixels(7)},
		"typed value passthrough": {raw: layout.Percent(0.3), expected: layout.Percent(0.3)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(map[string]any{"width": tt.raw})
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if s.Width != tt.expected {
				t.Errorf("Parse() width = %v, want %v", s.Width, tt.expected)
			}
		})
	}
}

func TestParse_Shorthand(t *testing.T) {
	ref := layout.NewRect(0, 0, 200, 100)

	type tc struct {
		raw      any
		expected layout.Edges
	}

	tests := map[string]tc{
		"scalar":       {raw: 5, expected: layout.EdgeAll(5)},
		"two values":   {raw: []any{int64(5), int64(10)}, expected: layout.EdgeTRBL(5, 10, 5, 10)},
		"three values": {raw: []any{1, 2, 3}, expected: layout.EdgeTRBL(1, 2, 3, 2)},
		"four values":  {raw: []int{1, 2, 3, 4}, expected: layout.EdgeTRBL(1, 2, 3, 4)},
		"percentages":  {raw: []any{0.1, "10%"}, expected: layout.EdgeTRBL(10, 20, 10, 20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(map[string]any{"padding": tt.raw, "margin": tt.raw})
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got := layout.ResolvePadding(s, ref); got != tt.expected {
				t.Errorf("padding = %+v, want %+v", got, tt.expected)
			}
			if got := layout.ResolveMargin(s, ref); got != tt.expected {
				t.Errorf("margin = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParse_Enums(t *testing.T) {
	s, err := Parse(map[string]any{
		"align":    "center",
		"justify":  "end",
		"border":   "thick",
		"z-order":  "on-top",
		"overflow": "ellipse",
		"on-open":  "maximize",
	})
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if s.Align != layout.AlignCenter {
		t.Errorf("Align = %v, want %v", s.Align, layout.AlignCenter)
	}
	if s.Justify != layout.JustifyEnd {
		t.Errorf("Justify = %v, want %v", s.Justify, layout.JustifyEnd)
	}
	if s.Border != layout.BorderThick {
		t.Errorf("Border = %v, want %v", s.Border, layout.BorderThick)
	}
	if s.ZOrder != layout.ZOrderOnTop {
		t.Errorf("ZOrder = %v, want %v", s.ZOrder, layout.ZOrderOnTop)
	}
	if s.Overflow != layout.OverflowEllipsis {
		t.Errorf("Overflow = %v, want %v", s.Overflow, layout.OverflowEllipsis)
	}
	if s.OnOpen != layout.OnOpenMaximize {
		t.Errorf("OnOpen = %v, want %v", s.OnOpen, layout.OnOpenMaximize)
	}
}

func TestParse_Colors(t *testing.T) {
	type tc struct {
		raw      any
		expected layout.Color
	}

	tests := map[string]tc{
		"short hex": {raw: "F0F", expected: layout.RGB(255, 0, 255)},
		"long hex":  {raw: "#e3e3e3", expected: layout.RGB(227, 227, 227)},
		"rgb list":  {raw: []any{int64(244), int64(12), int64(153)}, expected: layout.RGB(244, 12, 153)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(map[string]any{"color": tt.raw})
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !s.Color.Equal(tt.expected) {
				t.Errorf("Color = %v, want %v", s.Color.Hex(), tt.expected.Hex())
			}
		})
	}
}

func TestParse_Background(t *testing.T) {
	type tc struct {
		raw      any
		expected layout.Brush
	}

	tests := map[string]tc{
		"hex string": {
			raw:      "FFF",
			expected: layout.SolidBrush(layout.RGB(255, 255, 255)),
		},
		"rgb list": {
			raw:      []any{1, 2, 3},
			expected: layout.SolidBrush(layout.RGB(1, 2, 3)),
		},
		"solid tuple": {
			raw:      []any{"solid", "#e3e3e3"},
			expected: layout.SolidBrush(layout.RGB(227, 227, 227)),
		},
		"hatch default pattern": {
			raw:      []any{"hatch", "F0F"},
			expected: layout.HatchBrush(layout.RGB(255, 0, 255), layout.HatchDiagCross),
		},
		"hatch with rgb color and pattern": {
			raw:      []any{"hatch", []any{0, 0, 255}, "diagnol"},
			expected: layout.HatchBrush(layout.RGB(0, 0, 255), layout.HatchBackwardDiagonal),
		},
		"transparent": {
			raw:      "transparent",
			expected: layout.TransparentBrush(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(map[string]any{"background": tt.raw})
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if s.Background != tt.expected {
				t.Errorf("Background = %+v, want %+v", s.Background, tt.expected)
			}
		})
	}
}

func TestParse_Fallbacks(t *testing.T) {
	type tc struct {
		dict    map[string]any
		badKeys []string
	}

	tests := map[string]tc{
		"unknown key": {
			dict:    map[string]any{"flex": 1},
			badKeys: []string{"flex"},
		},
		"bad enum": {
			dict:    map[string]any{"align": "middle"},
			badKeys: []string{"align"},
		},
		"percentage out of range": {
			dict:    map[string]any{"width": "150%"},
			badKeys: []string{"width"},
		},
		"negative fraction": {
			dict:    map[string]any{"height": -0.5},
			badKeys: []string{"height"},
		},
		"whole float above one": {
			dict:    map[string]any{"width": 2.0},
			badKeys: []string{"width"},
		},
		"five padding values": {
			dict:    map[string]any{"padding": []any{1, 2, 3, 4, 5}},
			badKeys: []string{"padding"},
		},
		"color component out of range": {
			dict:    map[string]any{"color": []any{0, 0, 300}},
			badKeys: []string{"color"},
		},
		"bad hatch pattern": {
			dict:    map[string]any{"background": []any{"hatch", "FFF", "zigzag"}},
			badKeys: []string{"background"},
		},
		"several at once": {
			dict:    map[string]any{"border": true, "top": "x", "gap": 4},
			badKeys: []string{"border", "top"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(tt.dict)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			for _, key := range tt.badKeys {
				if !hasKeyError(err, key) {
					t.Errorf("Parse() error %q does not report key %q", err, key)
				}
			}
			// Offending keys fall back to unset
			if s.Align != layout.AlignUnset || s.Width.IsSet() || s.Height.IsSet() || s.Padding.IsSet() ||
				s.Color.IsSet() || s.Background.IsSet() || s.Border != layout.BorderUnset || s.Top.IsSet() {
				t.Errorf("Parse() kept an invalid value: %+v", s)
			}
		})
	}
}

func TestParse_GoodKeysSurviveBadOnes(t *testing.T) {
	s, err := Parse(map[string]any{"width": 50, "align": 3})
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}
	if s.Width != layout.Pixels(50) {
		t.Errorf("Width = %v, want 50px", s.Width)
	}
}

// hasKeyError reports whether err (possibly joined) contains a
// StyleResolutionError for key.
func hasKeyError(err error, key string) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if hasKeyError(e, key) {
				return true
			}
		}
		return false
	}
	var sre *StyleResolutionError
	return errors.As(err, &sre) && sre.Key == key
}
