package tint

// Channel is the constraint satisfied by channel value types. The type
// carries its own scale convention: Range reports the value of a full
// channel, which is what Invert reflects against and what Unscale divides
// by. The receiver's value is ignored.
type Channel[T any] interface {
	~float32 | ~float64
	Range() T
}

// Unit is a normalized channel value; a full channel is 1.0.
type Unit float64

// Range returns 1.
func (Unit) Range() Unit { return 1 }

// Byte is a channel value on the 8-bit scale; a full channel is 255.
// Values are stored as floats, so arithmetic keeps fractional results.
type Byte float64

// Range returns 255.
func (Byte) Range() Byte { return 255 }

// Common color and list types.
type (
	// RGB is a color with normalized channels.
	RGB = Color[Unit]
	// RGB255 is a color with channels on the 8-bit scale.
	RGB255 = Color[Byte]
	// UnitList is a list of normalized colors.
	UnitList = List[Unit]
	// ByteList is a list of colors on the 8-bit scale.
	ByteList = List[Byte]
)

// rangeOf returns the full-channel value for T.
func rangeOf[T Channel[T]]() T {
	var z T
	return z.Range()
}
