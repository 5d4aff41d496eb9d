package tint

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/gogpu/tint/internal/slicing"
)

// List is an ordered, growable sequence of colors.
//
// A List owns its colors: slicing and cloning copy them, and no two lists
// share storage after a mutating operation. Methods with a pointer receiver
// mutate the list in place; the free functions ending in Over return a new
// list and leave their operands alone.
//
// The zero value is an empty list with the default options. A List is not
// safe for concurrent use, and must not be copied by value after first use;
// use Clone.
type List[T Channel[T]] struct {
	colors []Color[T]
	opts   options
}

// New returns an empty list configured by opts.
func New[T Channel[T]](opts ...Option) *List[T] {
	return &List[T]{opts: buildOptions(opts)}
}

// NewList returns a list holding a copy of colors.
func NewList[T Channel[T]](colors ...Color[T]) *List[T] {
	return &List[T]{colors: slices.Clone(colors), opts: defaultOptions()}
}

// NewListOptions is NewList with options.
func NewListOptions[T Channel[T]](opts []Option, colors ...Color[T]) *List[T] {
	return &List[T]{colors: slices.Clone(colors), opts: buildOptions(opts)}
}

// Convert builds a list from loose values, accepting anything Extend does.
// If any item fails to convert, Convert returns a *ConversionError and no
// list.
func Convert[T Channel[T]](items []any, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.Extend(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// config returns the list's options, filling in defaults for a zero List.
func (l *List[T]) config() options {
	if l.opts.policy == nil || l.opts.codec == nil {
		return buildOptions([]Option{WithNumericPolicy(l.opts.policy), WithCodec(l.opts.codec)})
	}
	return l.opts
}

// Clone returns an independent copy of l with the same options.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{colors: slices.Clone(l.colors), opts: l.config()}
}

// Len returns the number of colors in l.
func (l *List[T]) Len() int {
	return len(l.colors)
}

// Colors returns a copy of the colors in l.
func (l *List[T]) Colors() []Color[T] {
	return slices.Clone(l.colors)
}

// All returns an iterator over indices and colors of l.
func (l *List[T]) All() iter.Seq2[int, Color[T]] {
	return slices.All(l.colors)
}

// Get returns the color at index i. Negative indices count from the end.
func (l *List[T]) Get(i int) (Color[T], error) {
	k, err := l.key("get", i)
	if err != nil {
		return Color[T]{}, err
	}
	return l.colors[k], nil
}

// Set replaces the color at index i.
func (l *List[T]) Set(i int, c Color[T]) error {
	k, err := l.key("set", i)
	if err != nil {
		return err
	}
	l.colors[k] = c
	return nil
}

// key normalizes i against the list and reports an *IndexError for op when
// it is out of range.
func (l *List[T]) key(op string, i int) (int, error) {
	k, ok := slicing.FixKey(i, len(l.colors))
	if !ok {
		return 0, &IndexError{Op: op, Index: i, Size: len(l.colors)}
	}
	return k, nil
}

// GetSlice returns a new list holding the colors selected by s, in slice
// order. A negative step walks backwards.
func (l *List[T]) GetSlice(s Span) (*List[T], error) {
	begin, _, n, err := s.resolve(len(l.colors))
	if err != nil {
		return nil, err
	}
	out := &List[T]{colors: make([]Color[T], n), opts: l.config()}
	for i, k := 0, begin; i < n; i, k = i+1, k+s.Step {
		out.colors[i] = l.colors[k]
	}
	return out, nil
}

// SetSlice assigns src to the colors selected by s.
//
// With a step of 1 the selected range is replaced by src, growing or
// shrinking l and shifting the colors after it. With any other step src
// must have exactly as many colors as s selects, or SetSlice fails with a
// *LengthMismatchError and l is unchanged.
func (l *List[T]) SetSlice(s Span, src *List[T]) error {
	begin, end, n, err := s.resolve(len(l.colors))
	if err != nil {
		return err
	}
	colors := src.colors
	if src == l {
		colors = slices.Clone(colors)
	}

	if s.Step == 1 {
		end = max(begin, end)
		if len(colors) != end-begin {
			Logger().Debug("tint: slice assignment resizes list",
				"begin", begin, "end", end, "len", len(l.colors), "src", len(colors))
		}
		l.colors = slices.Replace(l.colors, begin, end, colors...)
		return nil
	}

	if len(colors) != n {
		return &LengthMismatchError{Op: "extended slice assignment", Got: len(colors), Want: n}
	}
	for i, k := 0, begin; i < n; i, k = i+1, k+s.Step {
		l.colors[k] = colors[i]
	}
	return nil
}

// Insert inserts c before index i. Unlike Get and Set, an out-of-range
// index never fails: it clamps to the nearest end of the list.
func (l *List[T]) Insert(i int, c Color[T]) {
	l.colors = slices.Insert(l.colors, slicing.Clamp(i, len(l.colors)), c)
}

// Pop removes and returns the color at index i.
func (l *List[T]) Pop(i int) (Color[T], error) {
	k, err := l.key("pop", i)
	if err != nil {
		return Color[T]{}, err
	}
	c := l.colors[k]
	l.colors = slices.Delete(l.colors, k, k+1)
	return c, nil
}

// Remove removes the first color equal to c, failing with ErrNotFound if
// there is none.
func (l *List[T]) Remove(c Color[T]) error {
	k, err := l.Index(c)
	if err != nil {
		return err
	}
	_, err = l.Pop(k)
	return err
}

// Append adds colors to the end of l.
func (l *List[T]) Append(colors ...Color[T]) {
	l.colors = append(l.colors, colors...)
}

// ExtendList appends a copy of the colors of o, which may be l itself.
func (l *List[T]) ExtendList(o *List[T]) {
	l.colors = append(l.colors, o.colors...)
}

// Extend converts items to colors and appends them. Items may be colors of
// any channel type, [3]float64 or []float64 channel values in l's scale,
// strings understood by the list's codec, uint32 or int 0xRRGGBB values,
// and image/color values.
//
// Extend is atomic: if any item fails to convert, l is restored to its
// previous length and a *ConversionError is returned.
func (l *List[T]) Extend(items ...any) error {
	size := len(l.colors)
	c := l.config().codec
	for _, item := range items {
		color, err := toColor[T](item, c)
		if err != nil {
			l.colors = l.colors[:size]
			Logger().Debug("tint: extend rolled back", "size", size, "error", err)
			return err
		}
		l.colors = append(l.colors, color)
	}
	return nil
}

// Resize grows l with black colors or truncates it to n colors. A negative
// n empties the list.
func (l *List[T]) Resize(n int) {
	n = max(n, 0)
	if n <= len(l.colors) {
		l.colors = l.colors[:n]
		return
	}
	l.colors = append(l.colors, make([]Color[T], n-len(l.colors))...)
}

// Rotate rotates l forward by pos, so that the last pos colors move to the
// front. Negative pos rotates backward. Rotating an empty list does nothing.
func (l *List[T]) Rotate(pos int) {
	n := len(l.colors)
	if n == 0 {
		return
	}
	pos %= n
	if pos < 0 {
		pos += n
	}
	slices.Reverse(l.colors)
	slices.Reverse(l.colors[:pos])
	slices.Reverse(l.colors[pos:])
}

// Reverse reverses l in place.
func (l *List[T]) Reverse() {
	slices.Reverse(l.colors)
}

// Duplicate replaces l with count concatenated copies of itself. A count of
// zero or less empties the list.
func (l *List[T]) Duplicate(count int) {
	if count <= 0 {
		l.colors = l.colors[:0]
		return
	}
	l.colors = slices.Repeat(l.colors, count)
}

// Sort sorts l by channel, lexicographically, keeping equal colors in their
// original order. With reverse set the order is descending, still stable.
func (l *List[T]) Sort(reverse bool) {
	sign := 1
	if reverse {
		sign = -1
	}
	slices.SortStableFunc(l.colors, func(a, b Color[T]) int {
		return sign * a.Compare(b)
	})
}

// SortBy stably sorts l by the key of each color. key is called once per
// color.
func SortBy[T Channel[T], K cmp.Ordered](l *List[T], key func(Color[T]) K, reverse bool) {
	type keyed struct {
		k K
		c Color[T]
	}
	ks := make([]keyed, len(l.colors))
	for i, c := range l.colors {
		ks[i] = keyed{key(c), c}
	}
	sign := 1
	if reverse {
		sign = -1
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return sign * cmp.Compare(a.k, b.k)
	})
	for i := range ks {
		l.colors[i] = ks[i].c
	}
}

// Concat returns a new list holding the colors of a followed by those of b.
// The result takes a's options.
func Concat[T Channel[T]](a, b *List[T]) *List[T] {
	out := &List[T]{colors: make([]Color[T], 0, len(a.colors)+len(b.colors)), opts: a.config()}
	out.colors = append(out.colors, a.colors...)
	out.colors = append(out.colors, b.colors...)
	return out
}

// String formats l as "[c0, c1, ...]" using the list's codec.
func (l *List[T]) String() string {
	c := l.config().codec
	var b strings.Builder
	b.WriteByte('[')
	for i, color := range l.colors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Encode(color.Unscale()))
	}
	b.WriteByte(']')
	return b.String()
}
