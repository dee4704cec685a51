package gfx

import "github.com/drummonds/tftgfx/internal/rgb565"

// writeLine walks a Bresenham line between two arbitrary points.
// Steep lines (|dy| > |dx|) are transposed so the loop always steps
// along the major axis, and the endpoints are normalised so it runs
// low to high. The error term starts at dx/2 and loses dy per step;
// when it goes negative the minor coordinate advances one unit and dx
// is added back. Exactly max(|dx|,|dy|)+1 pixels come out, each
// adjacent to the previous in both axes.
func (c *Canvas) writeLine(x0, y0, x1, y1 int16, color rgb565.Color) {
	steep := abs16(y1-y0) > abs16(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs16(y1 - y0)
	err := dx / 2
	ystep := int16(-1)
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			c.DrawPixel(y0, x0, color)
		} else {
			c.DrawPixel(x0, y0, color)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawFastVLine draws a vertical line of height h downward from (x, y).
func (c *Canvas) DrawFastVLine(x, y, h int16, color rgb565.Color) {
	for i := int16(0); i < h; i++ {
		c.DrawPixel(x, y+i, color)
	}
}

// DrawFastHLine draws a horizontal line of width w rightward from (x, y).
func (c *Canvas) DrawFastHLine(x, y, w int16, color rgb565.Color) {
	for i := int16(0); i < w; i++ {
		c.DrawPixel(x+i, y, color)
	}
}

// DrawLine draws a line between two points, taking the fast
// axis-aligned paths when the segment allows it.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int16, color rgb565.Color) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		c.DrawFastVLine(x0, y0, y1-y0+1, color)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		c.DrawFastHLine(x0, y0, x1-x0+1, color)
	default:
		c.writeLine(x0, y0, x1, y1, color)
	}
}
