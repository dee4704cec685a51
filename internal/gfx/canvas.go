// Package gfx rasterises lines, circles, rectangles and triangles one
// pixel at a time onto a pixel sink. The algorithms are the classic
// integer forms: Bresenham error accumulation for lines, the midpoint
// iteration for circles and scanline spans for filled triangles, so
// nothing here needs floating point or trigonometry.
//
// The rasterizer never clips: it emits whatever coordinates the shape
// produces and relies on the sink to drop off-frame pixels.
package gfx

import "github.com/drummonds/tftgfx/internal/rgb565"

// PixelSink commits a single pixel to a physical or virtual frame.
// Implementations must accept any int16 coordinate and silently
// ignore writes outside their bounds.
type PixelSink interface {
	SetPixel(x, y int16, c rgb565.Color)
}

// Canvas couples a pixel sink with the panel geometry. Geometry is
// fixed at construction and changes only through SetRotation; drawing
// calls never mutate it.
type Canvas struct {
	sink PixelSink

	width, height      int16
	rotation           uint8
	xstart, ystart     int16
	colstart, rowstart int16
}

// New returns a canvas of the given size in rotation 0 with zero
// start offsets.
func New(sink PixelSink, width, height int16) *Canvas {
	return &Canvas{sink: sink, width: width, height: height}
}

// NewWithOffsets is for panels whose glass sits offset inside the
// controller's address window, e.g. 128x160 glass on a 132x162
// controller. Every pixel is translated by the active offsets before
// it reaches the sink.
func NewWithOffsets(sink PixelSink, width, height, colstart, rowstart int16) *Canvas {
	return &Canvas{
		sink:     sink,
		width:    width,
		height:   height,
		colstart: colstart,
		rowstart: rowstart,
		xstart:   colstart,
		ystart:   rowstart,
	}
}

func (c *Canvas) Width() int16    { return c.width }
func (c *Canvas) Height() int16   { return c.height }
func (c *Canvas) Rotation() uint8 { return c.rotation }

// SetRotation reinterprets the geometry for rotations 0..3 (quarter
// turns). Odd rotations swap width with height and the start offsets
// follow the turned glass.
func (c *Canvas) SetRotation(r uint8) {
	r &= 3
	if r&1 != c.rotation&1 {
		c.width, c.height = c.height, c.width
	}
	c.rotation = r
	if r&1 == 0 {
		c.xstart, c.ystart = c.colstart, c.rowstart
	} else {
		c.xstart, c.ystart = c.rowstart, c.colstart
	}
}

// DrawPixel commits one pixel through the sink, translated by the
// panel start offsets. No bounds check: that is the sink's job.
func (c *Canvas) DrawPixel(x, y int16, color rgb565.Color) {
	c.sink.SetPixel(x+c.xstart, y+c.ystart, color)
}

// FillScreen floods the whole surface with one colour.
func (c *Canvas) FillScreen(color rgb565.Color) {
	c.FillRect(0, 0, c.width, c.height, color)
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
