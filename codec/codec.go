// Package codec converts colors to and from text and packed hex integers.
//
// Colors handled by this package are normalized: each channel is a float64
// in [0, 1]. Callers with other channel ranges scale before encoding and
// after decoding.
//
// Decode accepts:
//   - SVG/CSS color names ("red", "Light Gray", "dark_slate_blue")
//   - hex strings: "#rgb", "#rrggbb", "0xrrggbb"
//   - tuples of normalized channels: "(1, 0.5, 0)" or "1, 0.5, 0"
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrFormat is matched by every decode failure.
var ErrFormat = errors.New("codec: invalid color format")

// FormatError describes text that could not be decoded as a color.
type FormatError struct {
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("codec: cannot decode %q as a color: %s", e.Text, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Names is the default codec. It understands color names, hex strings and
// channel tuples. The zero value is ready to use.
type Names struct{}

// Decode parses text into a normalized color.
func (Names) Decode(text string) ([3]float64, error) {
	return Decode(text)
}

// Encode formats a normalized color, preferring a color name, then a
// "#rrggbb" string, then a channel tuple.
func (Names) Encode(c [3]float64) string {
	return Encode(c)
}

// FromHex unpacks a 0xRRGGBB integer.
func (Names) FromHex(hex uint32) [3]float64 {
	return FromHex(hex)
}

// ToHex packs a normalized color into 0xRRGGBB, clamping each channel.
func (Names) ToHex(c [3]float64) uint32 {
	return ToHex(c)
}

// Decode parses text into a normalized color.
func Decode(text string) ([3]float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return [3]float64{}, &FormatError{Text: text, Reason: "empty string"}
	}

	switch {
	case s[0] == '#':
		if len(s) != 4 && len(s) != 7 {
			return [3]float64{}, &FormatError{Text: text, Reason: "hex string must be #rgb or #rrggbb"}
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return [3]float64{}, &FormatError{Text: text, Reason: "bad hex string"}
		}
		return [3]float64{c.R, c.G, c.B}, nil

	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil || v > 0xFFFFFF {
			return [3]float64{}, &FormatError{Text: text, Reason: "bad hex integer"}
		}
		return FromHex(safecast.MustConv[uint32](v)), nil

	case strings.ContainsRune(s, ','):
		return decodeTuple(text, s)
	}

	if c, ok := Lookup(s); ok {
		return c, nil
	}
	return [3]float64{}, &FormatError{Text: text, Reason: "unknown color name"}
}

// decodeTuple parses "(r, g, b)" with optional parentheses.
func decodeTuple(text, s string) ([3]float64, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, &FormatError{Text: text, Reason: "tuple must have three channels"}
	}

	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, &FormatError{Text: text, Reason: "bad channel " + strconv.Quote(p)}
		}
		c[i] = v
	}
	return c, nil
}

// Encode formats a normalized color, preferring a color name, then a
// "#rrggbb" string, then a channel tuple.
func Encode(c [3]float64) string {
	if !is8Bit(c) {
		return fmt.Sprintf("(%g, %g, %g)", c[0], c[1], c[2])
	}
	if name, ok := NameOf(c); ok {
		return name
	}
	return colorful.Color{R: c[0], G: c[1], B: c[2]}.Hex()
}

// FromHex unpacks a 0xRRGGBB integer into a normalized color.
// Bits above the low 24 are ignored.
func FromHex(hex uint32) [3]float64 {
	r := safecast.MustConv[uint8]((hex >> 16) & 0xFF)
	g := safecast.MustConv[uint8]((hex >> 8) & 0xFF)
	b := safecast.MustConv[uint8](hex & 0xFF)
	return [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// ToHex packs a normalized color into 0xRRGGBB, clamping each channel to
// [0, 1] and rounding to the nearest 8-bit level.
func ToHex(c [3]float64) uint32 {
	var hex uint32
	for _, v := range c {
		hex = hex<<8 | uint32(level(v))
	}
	return hex
}

// level maps a normalized channel to its nearest 8-bit level.
func level(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

// is8Bit reports whether every channel is exactly representable as an 8-bit
// level, so hex or name encoding loses nothing.
func is8Bit(c [3]float64) bool {
	for _, v := range c {
		if !(v >= 0 && v <= 1) {
			return false
		}
		if math.Abs(v*255-math.Round(v*255)) > 1e-9 {
			return false
		}
	}
	return true
}
