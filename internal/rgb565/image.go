package rgb565

import (
	"image"
	"image/color"
)

// Image is an in-memory RGB565 frame, two bytes per pixel, little
// endian. It satisfies image.Image and draw.Image so the standard
// library and the text renderer can target it directly, and SetPixel
// satisfies the pixel-sink contract of the rasterizer: writes outside
// the frame are silently dropped.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage returns a w by h frame with its origin at (0, 0),
// initialised to black.
func NewImage(w, h int) *Image {
	return &Image{
		Pix:    make([]byte, w*h*2),
		Stride: w * 2,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }
func (i *Image) ColorModel() color.Model { return Model }

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (i *Image) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*2
}

func (i *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Black
	}
	return i.packedAt(x, y)
}

func (i *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	i.setPacked(x, y, Model.Convert(c).(Color))
}

// SetPixel commits one pixel to the frame. Any int16 coordinate is
// accepted; off-frame writes are a no-op.
func (i *Image) SetPixel(x, y int16, c Color) {
	if !(image.Point{int(x), int(y)}.In(i.Rect)) {
		return
	}
	i.setPacked(int(x), int(y), c)
}

// Pixel reads back one packed pixel; off-frame reads return Black.
func (i *Image) Pixel(x, y int16) Color {
	if !(image.Point{int(x), int(y)}.In(i.Rect)) {
		return Black
	}
	return i.packedAt(int(x), int(y))
}

func (i *Image) setPacked(x, y int, c Color) {
	pix := i.Pix[i.PixOffset(x, y):]
	pix[0] = byte(c)
	pix[1] = byte(c >> 8)
}

func (i *Image) packedAt(x, y int) Color {
	pix := i.Pix[i.PixOffset(x, y):]
	return Color(uint16(pix[0]) | uint16(pix[1])<<8)
}
