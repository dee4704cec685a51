package gfx

import "github.com/drummonds/tftgfx/internal/rgb565"

// DrawTriangle outlines the triangle with the given vertices.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, color rgb565.Color) {
	c.DrawLine(x0, y0, x1, y1, color)
	c.DrawLine(x1, y1, x2, y2, color)
	c.DrawLine(x2, y2, x0, y0, color)
}

// FillTriangle fills the triangle with the given vertices using two
// scanline passes. The vertices are sorted so y0 <= y1 <= y2; each
// row's boundary x values come from integer slope accumulators so
// there is one division per row and no floating point.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int16, color rgb565.Color) {
	// Sort by y, carrying x alongside.
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	if y0 == y2 { // all three on one row
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		c.DrawFastHLine(a, y0, b-a+1, color)
		return
	}

	dx01 := int32(x1 - x0)
	dy01 := int32(y1 - y0)
	dx02 := int32(x2 - x0)
	dy02 := int32(y2 - y0)
	dx12 := int32(x2 - x1)
	dy12 := int32(y2 - y1)
	var sa, sb int32

	// The first pass covers rows y0..y1 along edges 0-1 and 0-2. A
	// flat-bottomed triangle (y1 == y2) includes the y1 row here and
	// skips the second pass, otherwise y1 belongs to the second pass;
	// either way neither pass ever divides by a zero edge height.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + int16(sa/dy01)
		b := x0 + int16(sb/dy02)
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		c.DrawFastHLine(a, y, b-a+1, color)
	}

	// Second pass: rows y1..y2 along edges 1-2 and 0-2.
	sa = dx12 * int32(y-y1)
	sb = dx02 * int32(y-y0)
	for ; y <= y2; y++ {
		a := x1 + int16(sa/dy12)
		b := x0 + int16(sb/dy02)
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		c.DrawFastHLine(a, y, b-a+1, color)
	}
}
