package tint

import (
	"errors"
	"fmt"

	"github.com/gogpu/tint/codec"
	"github.com/gogpu/tint/internal/slicing"
)

// Sentinel errors for tint. Typed errors below match them with errors.Is.
var (
	// ErrIndex is returned for a single-element access outside the list.
	ErrIndex = errors.New("tint: index out of range")

	// ErrLengthMismatch is returned when two lists of different lengths are
	// combined, or an extended slice is assigned a list of the wrong length.
	ErrLengthMismatch = errors.New("tint: length mismatch")

	// ErrConversion is returned when a value cannot be interpreted as a
	// color or an operand.
	ErrConversion = errors.New("tint: cannot convert to color")

	// ErrEmpty is returned by aggregate queries on an empty list.
	ErrEmpty = errors.New("tint: empty list")

	// ErrNotFound is returned by Index and Remove when the color is absent.
	ErrNotFound = errors.New("tint: color not in list")

	// ErrFormat is returned when text cannot be decoded as a color.
	ErrFormat = codec.ErrFormat

	// ErrZeroStep is returned for a slice with a zero step.
	ErrZeroStep = slicing.ErrZeroStep
)

// IndexError reports an out-of-range index.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("tint: %s: index %d out of range for length %d", e.Op, e.Index, e.Size)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// LengthMismatchError reports operands whose lengths disagree.
type LengthMismatchError struct {
	Op   string
	Got  int
	Want int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("tint: %s: length %d does not match %d", e.Op, e.Got, e.Want)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// ConversionError reports a value that could not be converted to a color.
// Err holds the underlying cause, such as a codec format error.
type ConversionError struct {
	Value any
	Err   error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tint: cannot convert %v (%T) to a color: %v", e.Value, e.Value, e.Err)
	}
	return fmt.Sprintf("tint: cannot convert %v (%T) to a color", e.Value, e.Value)
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error { return e.Err }
