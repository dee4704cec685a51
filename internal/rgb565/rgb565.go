// Package rgb565 implements the packed 16-bit colour model used by
// small TFT panels (5 bits red, 6 bits green, 5 bits blue) together
// with an in-memory RGB565 frame that can stand in for the panel.
//
// This is the only package that takes colours apart into channels;
// everywhere else a Color is an opaque scalar.
package rgb565

import "image/color"

// Color is a packed RGB565 value, red in the high bits.
type Color uint16

// Standard panel palette. The bit patterns matter: they are written
// to the display controller verbatim.
const (
	Black   Color = 0x0000
	Blue    Color = 0x001F
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	White   Color = 0xFFFF
	Orange  Color = 0xFD20
	Gray    Color = 0x8410
)

// Pack builds a Color from raw channel values: r and b in 0..31,
// g in 0..63.
func Pack(r, g, b uint8) Color {
	return Color(uint16(r)<<11 | uint16(g)<<5 | uint16(b))
}

// Channels splits a Color into its raw 5/6/5 channel values.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c>>11) & 0x1F, uint8(c>>5) & 0x3F, uint8(c) & 0x1F
}

// From888 converts 8-bit-per-channel RGB to the nearest RGB565 value.
func From888(r, g, b uint8) Color {
	return Pack(r>>3, g>>2, b>>3)
}

// To888 widens each channel back to 8 bits by bit replication, so
// full-scale 5/6-bit channels map to 0xFF rather than 0xF8/0xFC.
func (c Color) To888() (r, g, b uint8) {
	cr, cg, cb := c.Channels()
	return cr<<3 | cr>>2, cg<<2 | cg>>4, cb<<3 | cb>>2
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.To888()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

// Model converts arbitrary colours to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return From888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Interpolate linearly blends each channel from start to end by t,
// truncating toward zero. Neither t nor the resulting channels are
// clamped: t outside [0,1] pushes channels out of range and the
// excess bits bleed into the neighbouring channel when repacked,
// exactly as the fixed-function panels render it. Callers wanting a
// clean gradient keep t in [0,1].
func Interpolate(start, end Color, t float64) Color {
	rs, gs, bs := start.Channels()
	re, ge, be := end.Channels()

	r := int(rs) + int(float64(int(re)-int(rs))*t)
	g := int(gs) + int(float64(int(ge)-int(gs))*t)
	b := int(bs) + int(float64(int(be)-int(bs))*t)

	return Color(uint16(r<<11 | g<<5 | b))
}
