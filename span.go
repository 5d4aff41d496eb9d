package tint

import "github.com/gogpu/tint/internal/slicing"

// Omit marks an omitted Span bound.
const Omit = slicing.Omit

// Span describes a slice of a list the way Python's start:stop:step does.
// Start and Stop may be Omit; negative values count from the end. A zero
// Step is invalid.
//
//	tint.All()                           // [:]
//	tint.Slice(1, tint.Omit, 2)          // [1::2]
//	tint.Slice(tint.Omit, tint.Omit, -1) // [::-1]
type Span struct {
	Start, Stop, Step int
}

// All returns the span covering a whole list.
func All() Span {
	return Span{Start: Omit, Stop: Omit, Step: 1}
}

// Slice returns the span start:stop:step.
func Slice(start, stop, step int) Span {
	return Span{Start: start, Stop: stop, Step: step}
}

// resolve computes concrete bounds of s over a sequence of the given size
// and the number of elements it selects.
func (s Span) resolve(size int) (begin, end, n int, err error) {
	begin, end, err = slicing.Resolve(s.Start, s.Stop, s.Step, size)
	if err != nil {
		return 0, 0, 0, err
	}
	return begin, end, slicing.Length(begin, end, s.Step), nil
}
