package gfx

import "github.com/drummonds/tftgfx/internal/rgb565"

// Corner masks for DrawCircleHelper and FillCircleHelper. Each bit
// selects one quadrant of the circle around (x0, y0).
const (
	CornerTopLeft     uint8 = 0x1
	CornerTopRight    uint8 = 0x2
	CornerBottomRight uint8 = 0x4
	CornerBottomLeft  uint8 = 0x8
)

// DrawCircle draws the outline of a circle of radius r centred on
// (x0, y0): the four cardinal points first, then the midpoint
// iteration emitting eight symmetric points per step until the octant
// closes at x >= y.
func (c *Canvas) DrawCircle(x0, y0, r int16, color rgb565.Color) {
	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r

	c.DrawPixel(x0, y0+r, color)
	c.DrawPixel(x0, y0-r, color)
	c.DrawPixel(x0+r, y0, color)
	c.DrawPixel(x0-r, y0, color)

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		c.DrawPixel(x0+x, y0+y, color)
		c.DrawPixel(x0-x, y0+y, color)
		c.DrawPixel(x0+x, y0-y, color)
		c.DrawPixel(x0-x, y0-y, color)
		c.DrawPixel(x0+y, y0+x, color)
		c.DrawPixel(x0-y, y0+x, color)
		c.DrawPixel(x0+y, y0-x, color)
		c.DrawPixel(x0-y, y0-x, color)
	}
}

// DrawCircleHelper runs the same midpoint iteration but only emits
// the point pairs for the quadrants selected by corners. Used to put
// individual rounded corners on rectangles without retracing the full
// circle.
func (c *Canvas) DrawCircleHelper(x0, y0, r int16, corners uint8, color rgb565.Color) {
	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		if corners&CornerBottomRight != 0 {
			c.DrawPixel(x0+x, y0+y, color)
			c.DrawPixel(x0+y, y0+x, color)
		}
		if corners&CornerTopRight != 0 {
			c.DrawPixel(x0+x, y0-y, color)
			c.DrawPixel(x0+y, y0-x, color)
		}
		if corners&CornerBottomLeft != 0 {
			c.DrawPixel(x0-y, y0+x, color)
			c.DrawPixel(x0-x, y0+y, color)
		}
		if corners&CornerTopLeft != 0 {
			c.DrawPixel(x0-y, y0-x, color)
			c.DrawPixel(x0-x, y0-y, color)
		}
	}
}

// FillCircleHelper fills the right (corners bit 0) and/or left
// (corners bit 1) half of a circle with vertical spans, each of
// height 2*y + delta + 1. Spans are only emitted when the minor
// coordinate moves, so a column is never drawn twice; that matters
// for sinks with an inverting draw mode.
func (c *Canvas) FillCircleHelper(x0, y0, r int16, corners uint8, delta int16, color rgb565.Color) {
	f := 1 - r
	ddfx := int16(1)
	ddfy := -2 * r
	x := int16(0)
	y := r
	px := x
	py := y

	delta++ // avoids the +1 on every span height below

	for x < y {
		if f >= 0 {
			y--
			ddfy += 2
			f += ddfy
		}
		x++
		ddfx += 2
		f += ddfx

		if x < y+1 {
			if corners&1 != 0 {
				c.DrawFastVLine(x0+x, y0-y, 2*y+delta, color)
			}
			if corners&2 != 0 {
				c.DrawFastVLine(x0-x, y0-y, 2*y+delta, color)
			}
		}
		if y != py {
			if corners&1 != 0 {
				c.DrawFastVLine(x0+py, y0-px, 2*px+delta, color)
			}
			if corners&2 != 0 {
				c.DrawFastVLine(x0-py, y0-px, 2*px+delta, color)
			}
			py = y
		}
		px = x
	}
}

// FillCircle fills a circle of radius r centred on (x0, y0): the full
// centre column plus both sides from FillCircleHelper.
func (c *Canvas) FillCircle(x0, y0, r int16, color rgb565.Color) {
	c.DrawFastVLine(x0, y0-r, 2*r+1, color)
	c.FillCircleHelper(x0, y0, r, 3, 0, color)
}
