package tint

import "math"

// mutate replaces every channel v of every color in l with f(v).
func (l *List[T]) mutate(f func(T) T) {
	for i := range l.colors {
		for ch := range l.colors[i] {
			l.colors[i][ch] = f(l.colors[i][ch])
		}
	}
}

// mutateF is mutate for float64 functions from package math.
func (l *List[T]) mutateF(f func(float64) float64) {
	l.mutate(func(v T) T { return T(f(float64(v))) })
}

// Abs replaces every channel with its absolute value.
func (l *List[T]) Abs() { l.mutateF(math.Abs) }

// Floor rounds every channel down.
func (l *List[T]) Floor() { l.mutateF(math.Floor) }

// Ceil rounds every channel up.
func (l *List[T]) Ceil() { l.mutateF(math.Ceil) }

// Trunc rounds every channel towards zero.
func (l *List[T]) Trunc() { l.mutateF(math.Trunc) }

// Neg negates every channel.
func (l *List[T]) Neg() { l.mutate(func(v T) T { return -v }) }

// Invert reflects every channel against the channel range, so that black
// becomes white.
func (l *List[T]) Invert() {
	r := rangeOf[T]()
	l.mutate(func(v T) T { return r - v })
}

// Round rounds every channel to digits decimal places using the list's
// numeric policy.
func (l *List[T]) Round(digits int) {
	p := l.config().policy
	l.mutateF(func(v float64) float64 { return p.Round(v, digits) })
}

// Zero sets every color to black, keeping the length of l.
func (l *List[T]) Zero() {
	clear(l.colors)
}

// Clear removes every color from l.
func (l *List[T]) Clear() {
	l.colors = l.colors[:0]
}
