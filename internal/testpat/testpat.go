// Package testpat holds the deterministic self-test sequences that
// exercise every drawing primitive across the whole surface. The cmd
// demos use them as a render reel and the package tests use them as
// regression fixtures: same canvas size in, same pixels out.
package testpat

import (
	"github.com/drummonds/tftgfx/internal/gfx"
	"github.com/drummonds/tftgfx/internal/rgb565"
)

// Lines fans generic lines from each corner in 6-pixel steps.
func Lines(c *gfx.Canvas, color rgb565.Color) {
	w, h := c.Width(), c.Height()

	c.FillScreen(rgb565.Black)
	x1, y1 := int16(0), int16(0)
	y2 := h - 1
	for x2 := int16(0); x2 < w; x2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}
	x2 := w - 1
	for y2 := int16(0); y2 < h; y2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}

	c.FillScreen(rgb565.Black)
	x1, y1 = w-1, 0
	y2 = h - 1
	for x2 := int16(0); x2 < w; x2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}
	x2 = 0
	for y2 := int16(0); y2 < h; y2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}

	c.FillScreen(rgb565.Black)
	x1, y1 = 0, h-1
	y2 = 0
	for x2 := int16(0); x2 < w; x2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}
	x2 = w - 1
	for y2 := int16(0); y2 < h; y2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}

	c.FillScreen(rgb565.Black)
	x1, y1 = w-1, h-1
	y2 = 0
	for x2 := int16(0); x2 < w; x2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}
	x2 = 0
	for y2 := int16(0); y2 < h; y2 += 6 {
		c.DrawLine(x1, y1, x2, y2, color)
	}
}

// FastLines rules the surface with horizontal then vertical lines.
func FastLines(c *gfx.Canvas, color1, color2 rgb565.Color) {
	w, h := c.Width(), c.Height()
	c.FillScreen(rgb565.Black)
	for y := int16(0); y < h; y += 5 {
		c.DrawFastHLine(0, y, w, color1)
	}
	for x := int16(0); x < w; x += 5 {
		c.DrawFastVLine(x, 0, h, color2)
	}
}

// Rects draws concentric square outlines growing by 6 pixels.
func Rects(c *gfx.Canvas, color rgb565.Color) {
	cx, cy := c.Width()/2, c.Height()/2
	c.FillScreen(rgb565.Black)
	n := min(c.Width(), c.Height())
	for i := int16(2); i < n; i += 6 {
		i2 := i / 2
		c.DrawRect(cx-i2, cy-i2, i, i, color)
	}
}

// FilledRects draws shrinking filled squares, each outlined in a
// second colour.
func FilledRects(c *gfx.Canvas, color1, color2 rgb565.Color) {
	cx, cy := c.Width()/2-1, c.Height()/2-1
	c.FillScreen(rgb565.Black)
	n := min(c.Width(), c.Height())
	for i := n; i > 0; i -= 6 {
		i2 := i / 2
		c.FillRect(cx-i2, cy-i2, i, i, color1)
		c.DrawRect(cx-i2, cy-i2, i, i, color2)
	}
}

// FilledCircles tiles the surface with filled circles on a 2r grid.
func FilledCircles(c *gfx.Canvas, radius int16, color rgb565.Color) {
	w, h := c.Width(), c.Height()
	r2 := radius * 2
	c.FillScreen(rgb565.Black)
	for x := radius; x < w; x += r2 {
		for y := radius; y < h; y += r2 {
			c.FillCircle(x, y, radius, color)
		}
	}
}

// Circles overlays circle outlines on a 2r grid, running one radius
// past the edges. The screen is deliberately not cleared so it
// composes over FilledCircles.
func Circles(c *gfx.Canvas, radius int16, color rgb565.Color) {
	r2 := radius * 2
	w := c.Width() + radius
	h := c.Height() + radius
	for x := int16(0); x < w; x += r2 {
		for y := int16(0); y < h; y += r2 {
			c.DrawCircle(x, y, radius, color)
		}
	}
}

// Triangles draws concentric triangle outlines in a deepening blue.
func Triangles(c *gfx.Canvas) {
	cx, cy := c.Width()/2-1, c.Height()/2-1
	c.FillScreen(rgb565.Black)
	n := min(cx, cy)
	for i := int16(0); i < n; i += 5 {
		c.DrawTriangle(
			cx, cy-i, // peak
			cx-i, cy+i, // bottom left
			cx+i, cy+i, // bottom right
			rgb565.From888(0, 0, uint8(i)))
	}
}

// FilledTriangles draws shrinking filled triangles, outlined in a
// contrasting ramp.
func FilledTriangles(c *gfx.Canvas) {
	cx, cy := c.Width()/2-1, c.Height()/2-1
	c.FillScreen(rgb565.Black)
	for i := min(cx, cy); i > 10; i -= 5 {
		c.FillTriangle(cx, cy-i, cx-i, cy+i, cx+i, cy+i,
			rgb565.From888(0, uint8(i), uint8(i)))
		c.DrawTriangle(cx, cy-i, cx-i, cy+i, cx+i, cy+i,
			rgb565.From888(uint8(i), uint8(i), 0))
	}
}

// RoundRects draws concentric rounded outlines with a reddening ramp.
func RoundRects(c *gfx.Canvas) {
	cx, cy := c.Width()/2-1, c.Height()/2-1
	c.FillScreen(rgb565.Black)
	w := min(c.Width(), c.Height())
	red := int16(0)
	step := (256 * 6) / w
	for i := int16(0); i < w; i += 6 {
		i2 := i / 2
		red += step
		c.DrawRoundRect(cx-i2, cy-i2, i, i, i/8, rgb565.From888(uint8(red), 0, 0))
	}
}

// FilledRoundRects draws shrinking filled rounded rectangles with a
// fading green ramp.
func FilledRoundRects(c *gfx.Canvas) {
	cx, cy := c.Width()/2-1, c.Height()/2-1
	c.FillScreen(rgb565.Black)
	green := int16(256)
	step := (256 * 6) / min(c.Width(), c.Height())
	for i := min(c.Width(), c.Height()); i > 20; i -= 6 {
		i2 := i / 2
		green -= step
		c.FillRoundRect(cx-i2, cy-i2, i, i, i/8, rgb565.From888(0, uint8(green), 0))
	}
}

// Screens cycles full-surface fills, ending on black.
func Screens(c *gfx.Canvas) {
	c.FillScreen(rgb565.Black)
	c.FillScreen(rgb565.Red)
	c.FillScreen(rgb565.Green)
	c.FillScreen(rgb565.Blue)
	c.FillScreen(rgb565.Black)
}

// All runs the whole reel in the canonical order.
func All(c *gfx.Canvas) {
	Screens(c)
	Lines(c, rgb565.Cyan)
	FastLines(c, rgb565.Red, rgb565.Blue)
	Rects(c, rgb565.Green)
	FilledRects(c, rgb565.Yellow, rgb565.Magenta)
	FilledCircles(c, 10, rgb565.Magenta)
	Circles(c, 10, rgb565.White)
	Triangles(c)
	FilledTriangles(c)
	RoundRects(c)
	FilledRoundRects(c)
}
