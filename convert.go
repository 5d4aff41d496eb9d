package tint

import (
	"fmt"
	"image/color"
)

// unscaler is implemented by colors of every channel type.
type unscaler interface {
	Unscale() [3]float64
}

// toColor converts a loose value to a color, decoding strings and hex
// integers with c.
func toColor[T Channel[T]](v any, c ColorCodec) (Color[T], error) {
	switch x := v.(type) {
	case Color[T]:
		return x, nil
	case [3]T:
		return Color[T](x), nil
	case unscaler:
		return FromUnit[T](x.Unscale()), nil
	case [3]float64:
		return Color[T]{T(x[0]), T(x[1]), T(x[2])}, nil
	case []float64:
		if len(x) != 3 {
			return Color[T]{}, &ConversionError{Value: v, Err: fmt.Errorf("want 3 channels, have %d", len(x))}
		}
		return Color[T]{T(x[0]), T(x[1]), T(x[2])}, nil
	case string:
		u, err := c.Decode(x)
		if err != nil {
			return Color[T]{}, &ConversionError{Value: v, Err: err}
		}
		return FromUnit[T](u), nil
	case uint32:
		return FromUnit[T](c.FromHex(x)), nil
	case int:
		if x < 0 || x > 0xFFFFFF {
			return Color[T]{}, &ConversionError{Value: v, Err: fmt.Errorf("hex value out of range")}
		}
		return FromUnit[T](c.FromHex(uint32(x))), nil
	case color.Color:
		n := color.NRGBA64Model.Convert(x).(color.NRGBA64)
		return FromUnit[T]([3]float64{
			float64(n.R) / 0xFFFF,
			float64(n.G) / 0xFFFF,
			float64(n.B) / 0xFFFF,
		}), nil
	}
	return Color[T]{}, &ConversionError{Value: v}
}

// ToColor converts a loose value to a color using the default codec. It
// accepts the same values as List.Extend.
func ToColor[T Channel[T]](v any) (Color[T], error) {
	return toColor[T](v, defaultOptions().codec)
}

// NRGBA converts c to a non-premultiplied 8-bit image color, clamping
// out-of-range channels.
func (c Color[T]) NRGBA() color.NRGBA {
	hex := c.Hex()
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}

// RGBA implements image/color.Color. Channels are clamped to [0, 1] and
// the color is opaque.
func (c Color[T]) RGBA() (r, g, b, a uint32) {
	u := c.Unscale()
	return level16(u[0]), level16(u[1]), level16(u[2]), 0xFFFF
}

// level16 maps a normalized channel to a 16-bit color level.
func level16(v float64) uint32 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 1:
		return 0xFFFF
	}
	return uint32(v*0xFFFF + 0.5)
}
