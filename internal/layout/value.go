package layout

import (
	"math"
	"strconv"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUnset   Unit = iota // Key not provided; callers fall back to a default
	UnitPixels              // Absolute device pixels
	UnitPercent             // Fraction (0, 1] of the available space
)

// Value is a style dimension: absolute pixels, a fraction of the available
// space, or unset. The zero Value is unset, which is distinct from Pixels(0).
type Value struct {
	Amount float64
	Unit   Unit
}

// Unset returns a Value that was not provided.
func Unset() Value {
	return Value{Unit: UnitUnset}
}

// Pixels returns a Value representing an absolute pixel count.
func Pixels(n int) Value {
	return Value{Amount: float64(n), Unit: UnitPixels}
}

// Percent returns a Value representing a fraction of the available space.
// The value is on a 0-1 scale (0.5 = half).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsSet returns true if the value was provided.
func (v Value) IsSet() bool {
	return v.Unit != UnitUnset
}

// Or returns v if it is set, fallback otherwise.
func (v Value) Or(fallback Value) Value {
	if v.IsSet() {
		return v
	}
	return fallback
}

// Resolve is shorthand for ResolveSize(v, available).
func (v Value) Resolve(available int) int {
	return ResolveSize(v, available)
}

// String formats pixels as "12px", percentages as "50%" and unset as "unset".
func (v Value) String() string {
	switch v.Unit {
	case UnitPixels:
		return strconv.Itoa(int(v.Amount)) + "px"
	case UnitPercent:
		return strconv.FormatFloat(v.Amount*100, 'f', -1, 64) + "%"
	default:
		return "unset"
	}
}

// ResolveSize converts v to pixels given the available space.
//
// A percentage is multiplied by available, rounded half-to-even, and clamped
// so it never exceeds available. Pixels are returned as-is; callers clamp
// where they need to. Unset resolves to 0.
func ResolveSize(v Value, available int) int {
	switch v.Unit {
	case UnitPercent:
		s := int(math.RoundToEven(float64(available) * v.Amount))
		if s >= available {
			s = available
		}
		return s
	case UnitPixels:
		return int(v.Amount)
	default:
		return 0
	}
}
