// Package slicing implements index normalization and slice resolution with
// Python sequence semantics.
//
// Every accessor in tint goes through this package, so negative indices,
// omitted bounds and extended (non-unit step) slices behave the same way for
// colors and color lists.
package slicing

import (
	"errors"
	"math"
)

// Omit marks an omitted slice bound, like a missing start or stop in s[:n].
const Omit = math.MinInt

// ErrZeroStep is returned by Resolve when the slice step is zero.
var ErrZeroStep = errors.New("slicing: slice step cannot be zero")

// FixKey normalizes a possibly negative index against a sequence of the
// given size. Negative keys count from the end. The normalized key is
// returned together with whether it lies in [0, size).
func FixKey(key, size int) (int, bool) {
	if key < 0 {
		key += size
	}
	return key, key >= 0 && key < size
}

// Clamp normalizes key like FixKey and then clamps it into [0, size].
// It is used by insertion, which never fails on an out-of-range index.
func Clamp(key, size int) int {
	key, ok := FixKey(key, size)
	if ok {
		return key
	}
	return max(0, min(size, key))
}

// Resolve computes concrete begin and end indices for a slice over a
// sequence of the given size. start and stop may be Omit.
//
// For a positive step the bounds are clamped to [0, size]; for a negative
// step they are clamped to [-1, size-1], so that iterating from begin
// towards end by step never leaves the sequence.
func Resolve(start, stop, step, size int) (begin, end int, err error) {
	if step == 0 {
		return 0, 0, ErrZeroStep
	}
	lower, upper := 0, size
	if step < 0 {
		lower, upper = -1, size-1
	}

	bound := func(v, omitted int) int {
		if v == Omit {
			return omitted
		}
		if v < 0 {
			v += size
			if v < lower {
				return lower
			}
			return v
		}
		if v > upper {
			return upper
		}
		return v
	}

	if step > 0 {
		return bound(start, lower), bound(stop, upper), nil
	}
	return bound(start, upper), bound(stop, lower), nil
}

// Length returns the number of elements a resolved slice selects.
// It is zero when the range is empty or the step points away from end.
func Length(begin, end, step int) int {
	switch {
	case step > 0 && begin < end:
		return (end-begin-1)/step + 1
	case step < 0 && end < begin:
		return (begin-end-1)/(-step) + 1
	default:
		return 0
	}
}
