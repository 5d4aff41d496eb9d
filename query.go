package tint

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

// Count returns the number of colors in l equal to c.
func (l *List[T]) Count(c Color[T]) int {
	n := 0
	for _, x := range l.colors {
		if x == c {
			n++
		}
	}
	return n
}

// Index returns the index of the first color equal to c, or ErrNotFound.
func (l *List[T]) Index(c Color[T]) (int, error) {
	if k := slices.Index(l.colors, c); k >= 0 {
		return k, nil
	}
	return -1, ErrNotFound
}

// Contains reports whether some color in l equals c.
func (l *List[T]) Contains(c Color[T]) bool {
	return slices.Contains(l.colors, c)
}

// Min returns the channelwise minimum of l: channel i of the result is the
// smallest channel i of any color. It fails with ErrEmpty on an empty list.
func (l *List[T]) Min() (Color[T], error) {
	lo, _, err := l.bounds()
	return lo, err
}

// Max returns the channelwise maximum of l. It fails with ErrEmpty on an
// empty list.
func (l *List[T]) Max() (Color[T], error) {
	_, hi, err := l.bounds()
	return hi, err
}

// bounds computes the channelwise minimum and maximum of l.
func (l *List[T]) bounds() (lo, hi Color[T], err error) {
	if len(l.colors) == 0 {
		return lo, hi, ErrEmpty
	}
	xs := make([]float64, len(l.colors))
	for ch := range lo {
		for i, c := range l.colors {
			xs[i] = float64(c[ch])
		}
		mn, mx := stats.Bounds(xs)
		lo[ch], hi[ch] = T(mn), T(mx)
	}
	return lo, hi, nil
}

// Distance2 returns the squared Euclidean distance between l and o, treating
// each list as one flat vector of channels.
func (l *List[T]) Distance2(o *List[T]) (T, error) {
	if len(o.colors) != len(l.colors) {
		return 0, &LengthMismatchError{Op: "distance", Got: len(o.colors), Want: len(l.colors)}
	}
	var total T
	for i, c := range l.colors {
		total += c.Distance2(o.colors[i])
	}
	return total, nil
}

// Distance returns the Euclidean distance between l and o.
func (l *List[T]) Distance(o *List[T]) (float64, error) {
	d2, err := l.Distance2(o)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(float64(d2)), nil
}

// Compare orders lists lexicographically: the first unequal pair of colors
// decides, and a list that is a prefix of the other sorts first.
func (l *List[T]) Compare(o *List[T]) int {
	return slices.CompareFunc(l.colors, o.colors, Color[T].Compare)
}

// Equal reports whether l and o hold equal colors in the same order.
func (l *List[T]) Equal(o *List[T]) bool {
	return slices.Equal(l.colors, o.colors)
}
