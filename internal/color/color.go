// Package color provides per-channel color space kernels for tint.
//
// All functions work on normalized float64 channels in [0, 1]; callers scale
// channel ranges before and after. Hue is normalized too: 0 and 1 are both
// red, 1/3 is green and 2/3 is blue.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts an RGB triple to hue, saturation and value.
// Achromatic colors get hue 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	h, s, v = colorful.Color{R: r, G: g, B: b}.Hsv()
	return h / 360, s, v
}

// HSVToRGB converts hue, saturation and value to an RGB triple.
// Hue wraps, so -0.25 and 0.75 name the same hue.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h -= math.Floor(h)
	c := colorful.Hsv(h*360, s, v)
	return c.R, c.G, c.B
}
