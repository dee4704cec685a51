package gfx

import "github.com/drummonds/tftgfx/internal/rgb565"

// DrawRect outlines the w by h rectangle whose top-left corner is
// (x, y).
func (c *Canvas) DrawRect(x, y, w, h int16, color rgb565.Color) {
	c.DrawFastHLine(x, y, w, color)
	c.DrawFastHLine(x, y+h-1, w, color)
	c.DrawFastVLine(x, y, h, color)
	c.DrawFastVLine(x+w-1, y, h, color)
}

// FillRect fills the w by h rectangle whose top-left corner is (x, y),
// one column at a time.
func (c *Canvas) FillRect(x, y, w, h int16, color rgb565.Color) {
	for i := x; i < x+w; i++ {
		c.DrawFastVLine(i, y, h, color)
	}
}

// DrawRoundRect outlines a rectangle with corners rounded to radius
// r. The radius is clamped to half the shorter side; the edges are
// inset by r and the corners come from DrawCircleHelper.
func (c *Canvas) DrawRoundRect(x, y, w, h, r int16, color rgb565.Color) {
	if maxRadius := min(w, h) / 2; r > maxRadius {
		r = maxRadius
	}
	c.DrawFastHLine(x+r, y, w-2*r, color)
	c.DrawFastHLine(x+r, y+h-1, w-2*r, color)
	c.DrawFastVLine(x, y+r, h-2*r, color)
	c.DrawFastVLine(x+w-1, y+r, h-2*r, color)

	c.DrawCircleHelper(x+r, y+r, r, CornerTopLeft, color)
	c.DrawCircleHelper(x+w-r-1, y+r, r, CornerTopRight, color)
	c.DrawCircleHelper(x+w-r-1, y+h-r-1, r, CornerBottomRight, color)
	c.DrawCircleHelper(x+r, y+h-r-1, r, CornerBottomLeft, color)
}

// FillRoundRect fills a rounded rectangle: a full-height centre slab
// narrowed by 2r, capped left and right by filled half circles.
func (c *Canvas) FillRoundRect(x, y, w, h, r int16, color rgb565.Color) {
	if maxRadius := min(w, h) / 2; r > maxRadius {
		r = maxRadius
	}
	c.FillRect(x+r, y, w-2*r, h, color)
	c.FillCircleHelper(x+w-r-1, y+r, r, 1, h-2*r-1, color)
	c.FillCircleHelper(x+r, y+r, r, 2, h-2*r-1, color)
}
