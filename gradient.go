package tint

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// ExtendMode defines how sampling treats positions outside [0, 1].
type ExtendMode int

const (
	// ExtendPad clamps to the first and last colors (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the list.
	ExtendRepeat
	// ExtendReflect mirrors the list on every repetition.
	ExtendReflect
)

// apply normalizes t to [0, 1]. NaN maps to 0, and so do infinities
// when repeating or reflecting, which have no position within a period.
func (m ExtendMode) apply(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	if math.IsInf(t, 0) && m != ExtendPad {
		return 0
	}
	switch m {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default:
		t = min(max(t, 0), 1)
	}
	return t
}

// Sample treats l as a gradient with its colors evenly spaced from 0 to 1
// and returns the color at t, interpolating between neighbors channel by
// channel. It fails with ErrEmpty on an empty list.
func (l *List[T]) Sample(t float64, mode ExtendMode) (Color[T], error) {
	return l.sample(t, mode, Color[T].Lerp)
}

// SampleLinear is Sample with interpolation in linear light, which keeps
// mixes of saturated colors from darkening.
func (l *List[T]) SampleLinear(t float64, mode ExtendMode) (Color[T], error) {
	return l.sample(t, mode, lerpLinear[T])
}

func lerpLinear[T Channel[T]](a, b Color[T], t float64) Color[T] {
	return a.ToLinear().Lerp(b.ToLinear(), t).ToSRGB()
}

func (l *List[T]) sample(t float64, mode ExtendMode, lerp func(a, b Color[T], t float64) Color[T]) (Color[T], error) {
	n := len(l.colors)
	switch n {
	case 0:
		return Color[T]{}, ErrEmpty
	case 1:
		return l.colors[0], nil
	}

	pos := mode.apply(t) * float64(n-1)
	if !(pos < float64(n-1)) {
		return l.colors[n-1], nil
	}
	i := max(int(pos), 0)
	f := pos - float64(i)
	if f == 0 {
		return l.colors[i], nil
	}
	return lerp(l.colors[i], l.colors[i+1], f), nil
}

// Resample returns n colors sampled at even positions from the first to
// the last color of l. With linear set, neighbors are mixed in linear light.
func (l *List[T]) Resample(n int, linear bool) (*List[T], error) {
	if len(l.colors) == 0 {
		return nil, ErrEmpty
	}
	out := &List[T]{opts: l.config()}
	if n <= 0 {
		return out, nil
	}
	if n == 1 {
		out.colors = append(out.colors, l.colors[0])
		return out, nil
	}

	sample := l.Sample
	if linear {
		sample = l.SampleLinear
	}
	out.colors = make([]Color[T], 0, n)
	for _, t := range vec.Linspace(0, 1, n) {
		c, err := sample(t, ExtendPad)
		if err != nil {
			return nil, err
		}
		out.colors = append(out.colors, c)
	}
	return out, nil
}
