package pymath

import (
	"math"
	"math/bits"
)

// Parameters of CPython's numeric hash on 64-bit platforms.
const (
	hashBits    = 61
	hashModulus = uint64(1)<<hashBits - 1
	hashInf     = 314159
)

// Hash returns the value of Python's hash() for a float. Integral floats hash
// to their integer value, so Hash(1.0) == 1.
func Hash(v float64) int64 {
	switch {
	case math.IsInf(v, 1):
		return hashInf
	case math.IsInf(v, -1):
		return -hashInf
	case math.IsNaN(v):
		return 0
	}

	m, e := math.Frexp(v)
	sign := int64(1)
	if m < 0 {
		sign = -1
		m = -m
	}

	var x uint64
	for m != 0 {
		x = ((x << 28) & hashModulus) | x>>(hashBits-28)
		m *= 1 << 28
		e -= 28
		y := uint64(m)
		m -= float64(y)
		x += y
		if x >= hashModulus {
			x -= hashModulus
		}
	}

	if e >= 0 {
		e %= hashBits
	} else {
		e = hashBits - 1 - ((-1 - e) % hashBits)
	}
	x = ((x << uint(e)) & hashModulus) | x>>(hashBits-uint(e))

	h := int64(x) * sign
	if h == -1 {
		h = -2
	}
	return h
}

// xxHash constants used by CPython's tuple hash.
const (
	xxPrime1 = 11400714785074694791
	xxPrime2 = 14029467366897019727
	xxPrime5 = 2870177450012600261
)

// HashTuple returns Python's hash() of a tuple of floats.
func HashTuple(vs ...float64) int64 {
	acc := uint64(xxPrime5)
	for _, v := range vs {
		lane := uint64(Hash(v))
		acc += lane * xxPrime2
		acc = bits.RotateLeft64(acc, 31)
		acc *= xxPrime1
	}
	acc += uint64(len(vs)) ^ (xxPrime5 ^ 3527539)
	if acc == math.MaxUint64 {
		return 1546275796
	}
	return int64(acc)
}
