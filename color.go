package tint

import (
	"cmp"
	"math"

	"github.com/gogpu/tint/codec"
	"github.com/gogpu/tint/internal/slicing"
	"github.com/gogpu/tint/pymath"
)

// Color is a fixed-size tuple of three channel values, typically red, green
// and blue. Channels are never clamped implicitly; use LimitMin and LimitMax.
//
// Colors are values: every operation returns a new Color.
type Color[T Channel[T]] [3]T

// Common normalized colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)

// FromUnit builds a color from normalized channels in [0, 1], scaling them
// to T's range.
func FromUnit[T Channel[T]](u [3]float64) Color[T] {
	r := float64(rangeOf[T]())
	return Color[T]{T(u[0] * r), T(u[1] * r), T(u[2] * r)}
}

// FromHex builds a color from a packed 0xRRGGBB integer.
func FromHex[T Channel[T]](hex uint32) Color[T] {
	return FromUnit[T](codec.FromHex(hex))
}

// Parse decodes a color name, hex string or channel tuple. Tuple channels are
// normalized, so "(1, 0.5, 0)" is orange for every channel type.
func Parse[T Channel[T]](text string) (Color[T], error) {
	u, err := codec.Decode(text)
	if err != nil {
		return Color[T]{}, err
	}
	return FromUnit[T](u), nil
}

// ColorNames returns every color name Parse understands, alphabetically.
func ColorNames() []string {
	return codec.ColorNames()
}

// Unscale returns the channels normalized to [0, 1].
func (c Color[T]) Unscale() [3]float64 {
	r := float64(rangeOf[T]())
	return [3]float64{float64(c[0]) / r, float64(c[1]) / r, float64(c[2]) / r}
}

// Hex packs the color into 0xRRGGBB, clamping out-of-range channels.
func (c Color[T]) Hex() uint32 {
	return codec.ToHex(c.Unscale())
}

// String returns the color's name if it has one, else "#rrggbb" if every
// channel sits on an 8-bit level, else a tuple of normalized channels.
func (c Color[T]) String() string {
	return codec.Encode(c.Unscale())
}

// Hash returns Python's hash of the tuple of normalized channels.
func (c Color[T]) Hash() int64 {
	u := c.Unscale()
	return pymath.HashTuple(u[0], u[1], u[2])
}

// At returns channel i. Negative indices count from the last channel.
func (c Color[T]) At(i int) (T, error) {
	k, ok := slicing.FixKey(i, len(c))
	if !ok {
		return 0, &IndexError{Op: "color index", Index: i, Size: len(c)}
	}
	return c[k], nil
}

// Map applies f to every channel.
func (c Color[T]) Map(f func(T) T) Color[T] {
	return Color[T]{f(c[0]), f(c[1]), f(c[2])}
}

// zip combines c and o channel by channel.
func (c Color[T]) zip(o Color[T], f func(a, b T) T) Color[T] {
	return Color[T]{f(c[0], o[0]), f(c[1], o[1]), f(c[2], o[2])}
}

// zipErr combines c and o channel by channel through a fallible float64
// kernel, stopping at the first failure.
func (c Color[T]) zipErr(o Color[T], f func(a, b float64) (float64, error)) (Color[T], error) {
	var out Color[T]
	for i := range c {
		v, err := f(float64(c[i]), float64(o[i]))
		if err != nil {
			return Color[T]{}, err
		}
		out[i] = T(v)
	}
	return out, nil
}

// Abs returns the absolute value of every channel.
func (c Color[T]) Abs() Color[T] {
	return c.Map(func(v T) T { return T(math.Abs(float64(v))) })
}

// Ceil rounds every channel up.
func (c Color[T]) Ceil() Color[T] {
	return c.Map(func(v T) T { return T(math.Ceil(float64(v))) })
}

// Floor rounds every channel down.
func (c Color[T]) Floor() Color[T] {
	return c.Map(func(v T) T { return T(math.Floor(float64(v))) })
}

// Trunc rounds every channel towards zero.
func (c Color[T]) Trunc() Color[T] {
	return c.Map(func(v T) T { return T(math.Trunc(float64(v))) })
}

// Neg negates every channel.
func (c Color[T]) Neg() Color[T] {
	return c.Map(func(v T) T { return -v })
}

// Invert reflects every channel against the channel range: v becomes R - v.
func (c Color[T]) Invert() Color[T] {
	r := rangeOf[T]()
	return c.Map(func(v T) T { return r - v })
}

// Round rounds every channel to digits decimal places, half to even.
func (c Color[T]) Round(digits int) Color[T] {
	return c.Map(func(v T) T { return T(pymath.Round(float64(v), digits)) })
}

// Add returns c + o channel by channel.
func (c Color[T]) Add(o Color[T]) Color[T] {
	return c.zip(o, func(a, b T) T { return a + b })
}

// Sub returns c - o channel by channel.
func (c Color[T]) Sub(o Color[T]) Color[T] {
	return c.zip(o, func(a, b T) T { return a - b })
}

// Mul returns c * o channel by channel.
func (c Color[T]) Mul(o Color[T]) Color[T] {
	return c.zip(o, func(a, b T) T { return a * b })
}

// Div divides channel by channel with Python semantics; a zero divisor
// channel fails with pymath.ErrZeroDivision.
func (c Color[T]) Div(o Color[T]) (Color[T], error) {
	return c.zipErr(o, pymath.Python{}.TrueDiv)
}

// Mod takes the floored modulo channel by channel.
func (c Color[T]) Mod(o Color[T]) (Color[T], error) {
	return c.zipErr(o, pymath.Python{}.Mod)
}

// Pow raises c to o channel by channel.
func (c Color[T]) Pow(o Color[T]) (Color[T], error) {
	return c.zipErr(o, pymath.Python{}.Pow)
}

// PowMod computes (c ** exp) % mod channel by channel, the three-argument
// form of Python's pow.
func (c Color[T]) PowMod(exp, mod Color[T]) (Color[T], error) {
	p, err := c.Pow(exp)
	if err != nil {
		return Color[T]{}, err
	}
	return p.Mod(mod)
}

// LimitMin raises every channel to at least the matching floor channel.
func (c Color[T]) LimitMin(floor Color[T]) Color[T] {
	return c.zip(floor, func(a, b T) T { return max(a, b) })
}

// LimitMax lowers every channel to at most the matching ceiling channel.
func (c Color[T]) LimitMax(ceil Color[T]) Color[T] {
	return c.zip(ceil, func(a, b T) T { return min(a, b) })
}

// Rotated returns the channels rotated forward by pos, so that
// {r, g, b}.Rotated(1) is {b, r, g}.
func (c Color[T]) Rotated(pos int) Color[T] {
	n := len(c)
	pos %= n
	if pos < 0 {
		pos += n
	}
	var out Color[T]
	for i := range c {
		out[(i+pos)%n] = c[i]
	}
	return out
}

// Lerp blends linearly from c (t = 0) to o (t = 1).
func (c Color[T]) Lerp(o Color[T], t float64) Color[T] {
	return c.zip(o, func(a, b T) T {
		return T(float64(a) + (float64(b)-float64(a))*t)
	})
}

// Distance2 returns the squared Euclidean distance between c and o.
func (c Color[T]) Distance2(o Color[T]) T {
	var total T
	for i := range c {
		d := c[i] - o[i]
		total += d * d
	}
	return total
}

// Distance returns the Euclidean distance between c and o.
func (c Color[T]) Distance(o Color[T]) float64 {
	return math.Sqrt(float64(c.Distance2(o)))
}

// Compare orders colors lexicographically by channel. It returns -1, 0 or
// +1. NaN channels sort before all other values.
func (c Color[T]) Compare(o Color[T]) int {
	for i := range c {
		if r := cmp.Compare(c[i], o[i]); r != 0 {
			return r
		}
	}
	return 0
}

// Less reports whether c sorts before o.
func (c Color[T]) Less(o Color[T]) bool {
	return c.Compare(o) < 0
}
