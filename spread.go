package tint

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Anchor is a color placed in a spread, preceded by Steps interpolation
// steps from the previous anchor.
type Anchor[T Channel[T]] struct {
	Steps int
	Color Color[T]
}

// SpreadAppend appends size colors interpolated linearly from the last color
// of l towards end, followed by end itself, so size+1 colors are added in
// all. On an empty list only end is appended.
func (l *List[T]) SpreadAppend(size int, end Color[T]) {
	if len(l.colors) == 0 || size <= 0 {
		l.colors = append(l.colors, end)
		return
	}
	start := l.colors[len(l.colors)-1]
	// Linspace includes both endpoints; only the interior fractions are
	// interpolated so that end lands exactly.
	ts := vec.Linspace(0, 1, size+2)
	for _, t := range ts[1 : size+1] {
		l.colors = append(l.colors, start.Lerp(end, t))
	}
	l.colors = append(l.colors, end)
}

// Spread builds a gradient from anchors. Each anchor after the first is
// reached in Steps steps from the one before it: Steps-1 interpolated colors
// are inserted between them. Steps of 0 or 1 place the anchor right after
// its predecessor. The first anchor's Steps has nothing to interpolate from
// and is ignored; negative Steps count as 0.
//
// For example
//
//	tint.Spread(tint.Anchor[tint.Unit]{Color: tint.Red}, tint.Anchor[tint.Unit]{Steps: 2, Color: tint.Blue})
//
// is [Red, (0.5, 0, 0.5), Blue].
func Spread[T Channel[T]](anchors ...Anchor[T]) *List[T] {
	l := New[T]()
	l.spread(anchors)
	return l
}

func (l *List[T]) spread(anchors []Anchor[T]) {
	for i, a := range anchors {
		if i == 0 || a.Steps <= 1 {
			l.Append(a.Color)
			continue
		}
		l.SpreadAppend(a.Steps-1, a.Color)
	}
}

// SpreadTokens builds a gradient from a flat token sequence mixing weights
// and colors, such as []any{2, "red", 2, "blue"}.
//
// Weights are non-negative whole numbers of any numeric type; consecutive
// weights add up, and the total becomes the Steps of the next color. Colors
// are anything List.Extend accepts. Weights after the last color are
// discarded.
func SpreadTokens[T Channel[T]](tokens []any, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	c := l.config().codec

	var (
		anchors []Anchor[T]
		pending int
	)
	for _, tok := range tokens {
		if w, ok, err := weight(tok); ok {
			if err != nil {
				return nil, err
			}
			pending += w
			continue
		}
		color, err := toColor[T](tok, c)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, Anchor[T]{Steps: pending, Color: color})
		pending = 0
	}
	if pending > 0 {
		Logger().Debug("tint: spread discards trailing weight", "weight", pending)
	}

	l.spread(anchors)
	return l, nil
}

// weight interprets tok as a spread weight. ok reports whether tok is a
// number at all; err is set when it is a number but not a valid weight.
// uint32 values are hex colors, not weights.
func weight(tok any) (w int, ok bool, err error) {
	var f float64
	switch v := tok.(type) {
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	default:
		return 0, false, nil
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, true, &ConversionError{Value: tok, Err: fmt.Errorf("spread weight must be a non-negative whole number")}
	}
	return int(f), true, nil
}
