package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Negative input mirrors the curve, as in extended sRGB.
func SRGBToLinear(s float64) float64 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}
