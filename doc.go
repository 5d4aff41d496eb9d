// Package tint provides colors and ordered color lists with broadcasting
// arithmetic, Python-style slicing and gradient construction.
//
// # Overview
//
// A [Color] is three channel values. The channel type fixes the scale:
// [Unit] channels run from 0 to 1 and [Byte] channels from 0 to 255. Both
// are floats, so arithmetic never truncates.
//
// A [List] is a growable sequence of colors that it owns. Every list
// operation comes in one of two shapes:
//   - methods such as [List.Add] or [List.Rotate] mutate the receiver in
//     place and allocate nothing proportional to the list
//   - functions such as [AddOver] return a new list and leave their operands
//     untouched
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	l := tint.NewList(tint.Red, tint.Green, tint.Blue)
//
//	// Halve every channel in place
//	_ = l.Mul(tint.Scalar[tint.Unit](0.5))
//
//	// Python slicing: every other color, reversed
//	s, _ := l.GetSlice(tint.Slice(tint.Omit, tint.Omit, -2))
//
//	// A five-step gradient from red to blue
//	g, _ := tint.SpreadTokens[tint.Unit]([]any{"red", 4, "blue"})
//
// # Indexing
//
// Indices follow Python: -1 is the last color. [List.Get], [List.Set] and
// [List.Pop] fail with an [*IndexError] outside the list, while
// [List.Insert] clamps. A [Span] describes start:stop:step; assigning to an
// extended slice (step other than 1) requires a source of exactly the
// selected length.
//
// # Arithmetic
//
// The right-hand side of every arithmetic operation is an [Operand]: a
// [Scalar] broadcast to every channel, or a list wrapped with [Of] and
// combined index by index. Lists of different lengths never broadcast;
// combining them fails with [ErrLengthMismatch]. The reflected forms
// ([List.RSub], [List.RDiv], [List.RPow]) put the operand on the left.
//
// Division, modulo, power and rounding follow a [NumericPolicy]. The default
// [pymath.Python] policy reports division by zero and complex results as
// errors, and an in-place operation that would fail leaves the list
// unchanged.
//
// # Gradients
//
// [SpreadTokens] and [Spread] expand sparse (steps, color) anchors into a
// list by linear interpolation. [List.Sample] reads a list back as a
// continuous gradient, and [List.Resample] changes its resolution.
//
// # Errors
//
// Errors match the sentinels [ErrIndex], [ErrLengthMismatch],
// [ErrConversion], [ErrEmpty], [ErrNotFound], [ErrFormat] and [ErrZeroStep]
// with errors.Is.
//
// # Concurrency
//
// Lists are plain values with a single owner. Callers that share one between
// goroutines must serialize access themselves.
package tint
