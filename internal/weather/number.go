package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind records how a Number was originally represented.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Number is a numeric value tagged with the representation it arrived in.
//
// The aggregation rules depend on that representation (a mean over strings is
// rounded differently from a mean over floats), so the tag travels with the
// value instead of being lost in a plain []float64.
type Number struct {
	kind  Kind
	value float64
	raw   string
}

// Int wraps an integer value.
func Int(v int64) Number {
	return Number{kind: KindInt, value: float64(v)}
}

// Float wraps a floating-point value.
func Float(v float64) Number {
	return Number{kind: KindFloat, value: v}
}

// ParseNumber wraps a numeric string. Surrounding whitespace is ignored.
//
// Returns:
//   - Number: tagged KindString, holding the parsed value.
//   - error: wraps ErrInvalidNumericInput when s is not a number.
func ParseNumber(s string) (Number, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumericInput, s)
	}
	return Number{kind: KindString, value: v, raw: s}, nil
}

// Ints builds a series of KindInt numbers.
func Ints(vs ...int) []Number {
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Int(int64(v))
	}
	return out
}

// Floats builds a series of KindFloat numbers.
func Floats(vs ...float64) []Number {
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

func (n Number) Kind() Kind { return n.kind }

func (n Number) Float64() float64 { return n.value }

// IsWhole reports whether the value has no fractional part.
func (n Number) IsWhole() bool {
	return !math.IsInf(n.value, 0) && !math.IsNaN(n.value) && n.value == math.Trunc(n.value)
}

func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatFloat(n.value, 'f', 0, 64)
	case KindString:
		return n.raw
	default:
		return strconv.FormatFloat(n.value, 'f', -1, 64)
	}
}

// roundTo rounds v to the given number of decimal places.
//
// The rounding is done on the exact binary value with ties to even, which is
// what strconv does when formatting with a fixed precision.
func roundTo(v float64, places int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}
