// Package blit copies the RGB565 working frame to the kernel
// framebuffer image once per rendered frame.
package blit

import (
	"image"
	"image/draw"

	"github.com/drummonds/tftgfx/internal/fbimage"
	"github.com/drummonds/tftgfx/internal/rgb565"
)

// RGB565ToBGR565 copies the frame into the device mmap. Both sides
// store 5-6-5 with blue in the low byte, so each row copies byte for
// byte; only the strides differ.
func RGB565ToBGR565(dst *fbimage.BGR565, src *rgb565.Image) {
	bounds := src.Bounds().Intersect(dst.Rect)
	w := bounds.Dx() * 2
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		s := src.Pix[src.PixOffset(bounds.Min.X, y):]
		d := dst.Pix[dst.PixOffset(bounds.Min.X, y):]
		copy(d[:w], s[:w])
	}
}

// RGB565ToRGBA is an inlined version of the hot pixel copying loop
// for the special case of an *image.RGBA destination. It skips the
// color.Model round trip that draw.Draw would take per pixel.
func RGB565ToRGBA(dst *image.RGBA, src *rgb565.Image) {
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			// Small cap improves performance, see https://golang.org/issue/27857
			s := src.Pix[i : i+2 : i+2]
			c := rgb565.Color(uint16(s[0]) | uint16(s[1])<<8)
			r, g, b := c.To888()

			d := dst.Pix[dst.PixOffset(x, y):]
			d[0] = r
			d[1] = g
			d[2] = b
			d[3] = 0xFF
		}
	}
}

// ToImage copies the frame to an arbitrary destination, taking the
// fast path when the destination type allows it.
func ToImage(dst draw.Image, src *rgb565.Image) {
	switch d := dst.(type) {
	case *fbimage.BGR565:
		RGB565ToBGR565(d, src)
	case *image.RGBA:
		RGB565ToRGBA(d, src)
	default:
		draw.Draw(dst, src.Bounds(), src, image.Point{}, draw.Src)
	}
}
