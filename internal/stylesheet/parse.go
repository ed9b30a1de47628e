package stylesheet

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxflow/internal/layout"
)

// Keys lists every style key Parse understands.
var Keys = []string{
	"align", "justify", "gap", "padding", "margin",
	"width", "height", "left", "right", "top", "bottom",
	"border", "background", "color", "z-order", "overflow", "on-open",
}

var (
	alignNames = map[string]layout.Align{
		"start":  layout.AlignStart,
		"center": layout.AlignCenter,
		"end":    layout.AlignEnd,
	}
	justifyNames = map[string]layout.Justify{
		"start":  layout.JustifyStart,
		"center": layout.JustifyCenter,
		"end":    layout.JustifyEnd,
	}
	borderNames = map[string]layout.Border{
		"none":    layout.BorderNone,
		"default": layout.BorderNone,
		"single":  layout.BorderSingle,
		"thick":   layout.BorderThick,
	}
	zOrderNames = map[string]layout.ZOrder{
		"default": layout.ZOrderDefault,
		"on-top":  layout.ZOrderOnTop,
	}
	overflowNames = map[string]layout.Overflow{
		"none":     layout.OverflowNone,
		"break":    layout.OverflowBreak,
		"ellipsis": layout.OverflowEllipsis,
		"ellipse":  layout.OverflowEllipsis,
	}
	onOpenNames = map[string]layout.OnOpen{
		"default":  layout.OnOpenNormal,
		"normal":   layout.OnOpenNormal,
		"minimize": layout.OnOpenMinimize,
		"maximize": layout.OnOpenMaximize,
	}
	patternNames = map[string]layout.HatchPattern{
		"dcross":     layout.HatchDiagCross,
		"cross":      layout.HatchCross,
		"vertical":   layout.HatchVertical,
		"horizontal": layout.HatchHorizontal,
		"tangent":    layout.HatchForwardDiagonal,
		"diagonal":   layout.HatchBackwardDiagonal,
		"diagnol":    layout.HatchBackwardDiagonal,
	}
)

// Parse converts dict into a Style. The returned style is always usable: any
// key that fails to resolve is left unset and reported in the returned error,
// which joins one *StyleResolutionError per offending key.
func Parse(dict map[string]any) (layout.Style, error) {
	var (
		s    layout.Style
		errs []error
	)

	// Sorted for stable error ordering
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := apply(&s, key, dict[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return s, errors.Join(errs...)
}

func apply(s *layout.Style, key string, raw any) error {
	var err error
	switch key {
	case "align":
		s.Align, err = enum(key, raw, alignNames)
	case "justify":
		s.Justify, err = enum(key, raw, justifyNames)
	case "border":
		s.Border, err = enum(key, raw, borderNames)
	case "z-order":
		s.ZOrder, err = enum(key, raw, zOrderNames)
	case "overflow":
		s.Overflow, err = enum(key, raw, overflowNames)
	case "on-open":
		s.OnOpen, err = enum(key, raw, onOpenNames)
	case "gap":
		s.Gap, err = dimension(key, raw)
	case "width":
		s.Width, err = dimension(key, raw)
	case "height":
		s.Height, err = dimension(key, raw)
	case "left":
		s.Left, err = dimension(key, raw)
	case "right":
		s.Right, err = dimension(key, raw)
	case "top":
		s.Top, err = dimension(key, raw)
	case "bottom":
		s.Bottom, err = dimension(key, raw)
	case "padding":
		s.Padding, err = shorthand(key, raw)
	case "margin":
		s.Margin, err = shorthand(key, raw)
	case "color":
		s.Color, err = color(key, raw)
	case "background":
		s.Background, err = brush(key, raw)
	default:
		return newError(key, raw, "unknown key")
	}
	return err
}

func enum[T any](key string, raw any, names map[string]T) (T, error) {
	var zero T
	str, ok := raw.(string)
	if !ok {
		return zero, newError(key, raw, "expected a string")
	}
	v, ok := names[strings.ToLower(strings.TrimSpace(str))]
	if !ok {
		return zero, newError(key, raw, "unknown value, want one of %s", choices(names))
	}
	return v, nil
}

func choices[T any](names map[string]T) string {
	out := make([]string, 0, len(names))
	for k := range names {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, "|")
}

// dimension resolves a single size value.
//
//	int             -> pixels
//	float in (0, 1] -> fraction of the available space
//	"50%"           -> fraction 0.5
//	"12px", "12"    -> pixels
func dimension(key string, raw any) (layout.Value, error) {
	switch v := raw.(type) {
	case layout.Value:
		return v, nil
	case int:
		return pixels(key, raw, int64(v))
	case int64:
		return pixels(key, raw, v)
	case uint64:
		if v > math.MaxInt32 {
			return layout.Unset(), newError(key, raw, "out of range")
		}
		return layout.Pixels(int(v)), nil
	case float64:
		return fraction(key, raw, v)
	case string:
		str := strings.TrimSpace(v)
		if p, ok := strings.CutSuffix(str, "%"); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return layout.Unset(), newError(key, raw, "malformed percentage")
			}
			if f < 0 || f > 100 {
				return layout.Unset(), newError(key, raw, "percentage must be within 0-100%%")
			}
			return layout.Percent(f / 100), nil
		}
		str = strings.TrimSuffix(str, "px")
		n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
		if err != nil {
			return layout.Unset(), newError(key, raw, "malformed size")
		}
		return pixels(key, raw, n)
	default:
		return layout.Unset(), newError(key, raw, "expected a number or string, got %T", raw)
	}
}

func pixels(key string, raw any, n int64) (layout.Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return layout.Unset(), newError(key, raw, "out of range")
	}
	return layout.Pixels(int(n)), nil
}

func fraction(key string, raw any, f float64) (layout.Value, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return layout.Unset(), newError(key, raw, "not a finite number")
	case f < 0 || f > 1:
		return layout.Unset(), newError(key, raw, "percentage must be within 0-100%%")
	}
	return layout.Percent(f), nil
}

// shorthand resolves padding and margin: a scalar or a list of 1-4 sizes.
func shorthand(key string, raw any) (layout.Shorthand, error) {
	items, isList := list(raw)
	if !isList {
		v, err := dimension(key, raw)
		if err != nil {
			return layout.Shorthand{}, err
		}
		return layout.Sides(v), nil
	}
	if len(items) == 0 || len(items) > 4 {
		return layout.Shorthand{}, newError(key, raw, "expected 1 to 4 values, got %d", len(items))
	}
	values := make([]layout.Value, len(items))
	for i, item := range items {
		v, err := dimension(key, item)
		if err != nil {
			return layout.Shorthand{}, newError(key, raw, "item %d: %s", i, err.(*StyleResolutionError).Reason)
		}
		values[i] = v
	}
	return layout.Sides(values...), nil
}

// color resolves "F0F", "#e3e3e3" or [r, g, b].
func color(key string, raw any) (layout.Color, error) {
	if str, ok := raw.(string); ok {
		c, err := layout.HexColor(str)
		if err != nil {
			return layout.Color{}, newError(key, raw, "%v", err)
		}
		return c, nil
	}
	items, ok := list(raw)
	if !ok {
		return layout.Color{}, newError(key, raw, "expected a hex string or [r, g, b]")
	}
	if len(items) != 3 {
		return layout.Color{}, newError(key, raw, "expected 3 components, got %d", len(items))
	}
	var rgb [3]uint8
	for i, item := range items {
		n, ok := integer(item)
		if !ok || n < 0 || n > 255 {
			return layout.Color{}, newError(key, raw, "component %d must be an integer 0-255", i)
		}
		rgb[i] = uint8(n)
	}
	return layout.RGB(rgb[0], rgb[1], rgb[2]), nil
}

// brush resolves a background:
//
//	"F0F" | [r, g, b]              -> solid
//	["solid", color]               -> solid
//	["hatch", color]               -> hatch, dcross pattern
//	["hatch", color, pattern]      -> hatch
//	"transparent"                  -> no fill
func brush(key string, raw any) (layout.Brush, error) {
	if str, ok := raw.(string); ok {
		if strings.EqualFold(strings.TrimSpace(str), "transparent") {
			return layout.TransparentBrush(), nil
		}
		c, err := color(key, raw)
		if err != nil {
			return layout.Brush{}, err
		}
		return layout.SolidBrush(c), nil
	}

	items, ok := list(raw)
	if !ok || len(items) == 0 {
		return layout.Brush{}, newError(key, raw, "expected a color or [kind, color, pattern]")
	}
	kind, ok := items[0].(string)
	if !ok {
		// Bare [r, g, b]
		c, err := color(key, raw)
		if err != nil {
			return layout.Brush{}, err
		}
		return layout.SolidBrush(c), nil
	}
	if len(items) < 2 || len(items) > 3 {
		return layout.Brush{}, newError(key, raw, "expected [kind, color] or [kind, color, pattern]")
	}
	c, err := color(key, items[1])
	if err != nil {
		return layout.Brush{}, err
	}

	switch strings.ToLower(kind) {
	case "solid":
		if len(items) == 3 {
			return layout.Brush{}, newError(key, raw, "solid brushes take no pattern")
		}
		return layout.SolidBrush(c), nil
	case "hatch":
		pattern := layout.HatchDiagCross
		if len(items) == 3 {
			pattern, err = enum(key, items[2], patternNames)
			if err != nil {
				return layout.Brush{}, err
			}
		}
		return layout.HatchBrush(c, pattern), nil
	default:
		return layout.Brush{}, newError(key, raw, "unknown brush kind %q, want solid|hatch", kind)
	}
}

// list normalizes the slice shapes produced by TOML, YAML and Go literals.
func list(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []int64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []float64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

func integer(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), v <= math.MaxInt64
	case float64:
		return int64(v), v == math.Trunc(v)
	}
	return 0, false
}

// MustParse is Parse for literals known to be valid.
func MustParse(dict map[string]any) layout.Style {
	s, err := Parse(dict)
	if err != nil {
		panic(fmt.Sprintf("stylesheet: %v", err))
	}
	return s
}
