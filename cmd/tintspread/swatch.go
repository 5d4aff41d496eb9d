package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tint"
)

// labelHeight is the strip under each cell holding its hex label.
const labelHeight = 16

// swatch renders l as a row of square cells, each labelled with its hex
// value. Out-of-range channels are clamped.
func swatch[T tint.Channel[T]](l *tint.List[T], cell int) *image.NRGBA {
	n := l.Len()
	if cell < 1 {
		cell = 1
	}

	// One pixel per color, scaled up to cells.
	strip := image.NewNRGBA(image.Rect(0, 0, max(n, 1), 1))
	for i, c := range l.All() {
		strip.SetNRGBA(i, 0, c.NRGBA())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, max(n, 1)*cell, cell+labelHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if n == 0 {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, n*cell, cell), strip, strip.Bounds(), draw.Src, nil)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for i, c := range l.All() {
		label := fmt.Sprintf("#%06x", c.Hex())
		width := d.MeasureString(label).Ceil()
		x := i*cell + max((cell-width)/2, 0)
		d.Dot = fixed.P(x, cell+face.Ascent+1)
		d.DrawString(label)
	}
	return dst
}

// writeSwatch renders l and writes it to path as PNG.
func writeSwatch[T tint.Channel[T]](path string, l *tint.List[T], cell int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, swatch(l, cell)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
