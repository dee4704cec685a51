// Package fbimage adapts the mmapped kernel frame buffer into a
// draw.Image so the rest of the program can stay pixel format
// agnostic.
package fbimage

import (
	"image"
	"image/color"
)

// BGR565 is a 16 bits per pixel frame buffer with blue in the low
// bits of the low byte. Pix aliases the device mmap, so a Set is
// visible on screen immediately.
type BGR565 struct {
	Pix    []byte
	Rect   image.Rectangle
	Stride int
}

func (i *BGR565) Bounds() image.Rectangle { return i.Rect }
func (i *BGR565) ColorModel() color.Model { return color.NRGBAModel }

func (i *BGR565) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return color.NRGBA{}
	}

	pix := i.Pix[i.PixOffset(x, y):]
	return color.NRGBA{
		R: (pix[1] >> 3) << 3,
		G: (pix[1] << 5) | ((pix[0] >> 5) << 2),
		B: pix[0] << 3,
		A: 255,
	}
}

func (i *BGR565) Set(x, y int, c color.Color) {
	i.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

func (i *BGR565) SetNRGBA(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}

	pix := i.Pix[i.PixOffset(x, y):]
	pix[0] = (c.B >> 3) | ((c.G >> 2) << 5)
	pix[1] = (c.G >> 5) | ((c.R >> 3) << 3)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (i *BGR565) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*2
}
