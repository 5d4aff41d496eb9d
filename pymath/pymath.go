// Package pymath provides the numeric policies used by tint for channel
// arithmetic.
//
// A policy decides what division, modulo, power and rounding mean for a
// single channel value. [Python] follows Python float semantics: division or
// modulo by zero and fractional powers of negative numbers are errors, modulo
// takes the sign of the divisor, and rounding is round-half-to-even. [IEEE]
// follows plain Go float64 semantics and never fails.
package pymath

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Python policy.
var (
	// ErrZeroDivision is returned for division or modulo by zero, and for
	// raising zero to a negative power.
	ErrZeroDivision = errors.New("pymath: division by zero")

	// ErrDomain is returned when a result would be complex, such as a
	// fractional power of a negative number.
	ErrDomain = errors.New("pymath: math domain error")

	// ErrOverflow is returned when finite operands produce an infinite result.
	ErrOverflow = errors.New("pymath: numerical result out of range")
)

// Python implements Python float semantics.
// The zero value is ready to use.
type Python struct{}

// Round rounds v to the given number of decimal digits using
// round-half-to-even, like Python's round(v, digits).
func (Python) Round(v float64, digits int) float64 {
	return Round(v, digits)
}

// TrueDiv returns a / b, failing with ErrZeroDivision when b is zero.
func (Python) TrueDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDivision
	}
	return a / b, nil
}

// Mod returns the floored modulo a % b, whose sign follows b.
func (Python) Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDivision
	}
	return Mod(a, b), nil
}

// Pow returns a ** b.
func (Python) Pow(a, b float64) (float64, error) {
	if a == 0 && b < 0 {
		return 0, ErrZeroDivision
	}
	if a < 0 && !math.IsInf(a, 0) && b != math.Trunc(b) && !math.IsNaN(b) {
		return 0, ErrDomain
	}
	r := math.Pow(a, b)
	if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return 0, ErrOverflow
	}
	return r, nil
}

// IEEE implements plain Go float64 semantics: division by zero yields an
// infinity or NaN and no operation fails.
type IEEE struct{}

// Round rounds half away from zero, like math.Round.
func (IEEE) Round(v float64, digits int) float64 {
	if digits == 0 {
		return math.Round(v)
	}
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

// TrueDiv returns a / b.
func (IEEE) TrueDiv(a, b float64) (float64, error) { return a / b, nil }

// Mod returns math.Mod(a, b), whose sign follows a.
func (IEEE) Mod(a, b float64) (float64, error) { return math.Mod(a, b), nil }

// Pow returns math.Pow(a, b).
func (IEEE) Pow(a, b float64) (float64, error) { return math.Pow(a, b), nil }

// Round rounds v to digits decimal places with round-half-to-even.
// Negative digits round to tens, hundreds and so on.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if digits == 0 {
		return math.RoundToEven(v)
	}
	if digits > 0 {
		p := math.Pow10(digits)
		y := v * p
		if math.IsInf(y, 0) {
			return v
		}
		return math.RoundToEven(y) / p
	}
	p := math.Pow10(-digits)
	if math.IsInf(p, 0) {
		return math.Copysign(0, v)
	}
	return math.RoundToEven(v/p) * p
}

// Mod returns the floored modulo of a and b. The result has the sign of b.
func Mod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	if r == 0 {
		r = math.Copysign(0, b)
	}
	return r
}
