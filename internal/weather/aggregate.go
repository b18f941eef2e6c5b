package weather

import "math"

// Extremum is an extreme value of a series and the position it was found at.
type Extremum struct {
	Value float64
	Index int
}

// FindMin returns the minimum of series and its index.
//
// Ties resolve to the last matching index. The boolean is false for an empty
// series, which is a normal outcome rather than an error.
func FindMin(series []Number) (Extremum, bool) {
	if len(series) == 0 {
		return Extremum{}, false
	}
	best := Extremum{Value: math.Inf(1), Index: -1}
	for i, n := range series {
		if v := n.Float64(); v <= best.Value {
			best = Extremum{Value: v, Index: i}
		}
	}
	return best, true
}

// FindMax returns the maximum of series and its index, ties resolving to the last index.
func FindMax(series []Number) (Extremum, bool) {
	if len(series) == 0 {
		return Extremum{}, false
	}
	best := Extremum{Value: math.Inf(-1), Index: -1}
	for i, n := range series {
		if v := n.Float64(); v >= best.Value {
			best = Extremum{Value: v, Index: i}
		}
	}
	return best, true
}

// CalculateMean returns the arithmetic mean of series.
//
// The precision of the result depends on how the inputs were represented:
//  1. A whole mean is returned as KindInt.
//  2. If every element is a string, or every element is negative, the mean is rounded to 1 decimal.
//  3. Else if any element is a float, the mean is rounded to 5 decimals.
//  4. Otherwise the mean is returned unrounded.
//
// An empty series yields Int(0).
func CalculateMean(series []Number) Number {
	if len(series) == 0 {
		return Int(0)
	}

	allStrings, allNegative, anyFloat := true, true, false
	sum := 0.0
	for _, n := range series {
		if n.Kind() != KindString {
			allStrings = false
		}
		if !(n.Float64() < 0) {
			allNegative = false
		}
		if n.Kind() == KindFloat {
			anyFloat = true
		}
		sum += n.Float64()
	}
	mean := sum / float64(len(series))

	switch {
	case Float(mean).IsWhole():
		return Number{kind: KindInt, value: mean}
	case allStrings || allNegative:
		return Float(roundTo(mean, 1))
	case anyFloat:
		return Float(roundTo(mean, 5))
	default:
		return Float(mean)
	}
}
