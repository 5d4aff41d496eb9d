package tint

import icolor "github.com/gogpu/tint/internal/color"

// ToHSV reinterprets an RGB color as hue, saturation and value, each scaled
// to the channel range. Hue 0 and a full channel are both red.
func (c Color[T]) ToHSV() Color[T] {
	u := c.Unscale()
	h, s, v := icolor.RGBToHSV(u[0], u[1], u[2])
	return FromUnit[T]([3]float64{h, s, v})
}

// ToRGB is the inverse of ToHSV.
func (c Color[T]) ToRGB() Color[T] {
	u := c.Unscale()
	r, g, b := icolor.HSVToRGB(u[0], u[1], u[2])
	return FromUnit[T]([3]float64{r, g, b})
}

// ToLinear applies the sRGB decoding curve to every channel.
func (c Color[T]) ToLinear() Color[T] {
	u := c.Unscale()
	return FromUnit[T]([3]float64{
		icolor.SRGBToLinear(u[0]),
		icolor.SRGBToLinear(u[1]),
		icolor.SRGBToLinear(u[2]),
	})
}

// ToSRGB applies the sRGB encoding curve to every channel.
func (c Color[T]) ToSRGB() Color[T] {
	u := c.Unscale()
	return FromUnit[T]([3]float64{
		icolor.LinearToSRGB(u[0]),
		icolor.LinearToSRGB(u[1]),
		icolor.LinearToSRGB(u[2]),
	})
}

// each replaces every color of l with f of it.
func (l *List[T]) each(f func(Color[T]) Color[T]) {
	for i, c := range l.colors {
		l.colors[i] = f(c)
	}
}

// RGBToHSV converts every color of l from RGB to HSV in place.
func (l *List[T]) RGBToHSV() { l.each(Color[T].ToHSV) }

// HSVToRGB converts every color of l from HSV to RGB in place.
func (l *List[T]) HSVToRGB() { l.each(Color[T].ToRGB) }

// ToLinear converts every color of l from sRGB to linear light in place.
func (l *List[T]) ToLinear() { l.each(Color[T].ToLinear) }

// ToSRGB converts every color of l from linear light to sRGB in place.
func (l *List[T]) ToSRGB() { l.each(Color[T].ToSRGB) }
