package blit

import (
	"bytes"
	"image"
	"image/draw"
	"testing"

	"github.com/drummonds/tftgfx/internal/fbimage"
	"github.com/drummonds/tftgfx/internal/rgb565"
)

func testFrame() *rgb565.Image {
	frame := rgb565.NewImage(16, 8)
	colors := []rgb565.Color{
		rgb565.Black, rgb565.White, rgb565.Red, rgb565.Green,
		rgb565.Blue, rgb565.Cyan, rgb565.Magenta, rgb565.Yellow,
	}
	for y := int16(0); y < 8; y++ {
		for x := int16(0); x < 16; x++ {
			frame.SetPixel(x, y, colors[(int(x)+int(y))%len(colors)])
		}
	}
	return frame
}

// The fast path must match what the generic draw.Draw path produces.
func TestFastPathMatchesGeneric(t *testing.T) {
	frame := testFrame()

	fast := image.NewRGBA(frame.Bounds())
	RGB565ToRGBA(fast, frame)

	slow := image.NewRGBA(frame.Bounds())
	ToImage(slow, frame) // *image.RGBA still takes the fast path
	generic := image.NewRGBA(frame.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			generic.Set(x, y, frame.At(x, y))
		}
	}

	if !bytes.Equal(fast.Pix, generic.Pix) {
		t.Fatalf("fast path differs from per-pixel Set")
	}
	if !bytes.Equal(slow.Pix, fast.Pix) {
		t.Fatalf("ToImage dispatch differs from RGB565ToRGBA")
	}
}

// The frame and a 5-6-5 device share the packed layout, so the row
// copy must land the same bytes as the color model round trip.
func TestBGR565RowCopyMatchesGeneric(t *testing.T) {
	frame := testFrame()

	newDevice := func() *fbimage.BGR565 {
		// A device wider than the frame, with a padded stride.
		return &fbimage.BGR565{
			Pix:    make([]byte, 8*48),
			Rect:   image.Rect(0, 0, 20, 8),
			Stride: 48,
		}
	}

	fast := newDevice()
	RGB565ToBGR565(fast, frame)

	generic := newDevice()
	draw.Draw(generic, frame.Bounds(), frame, image.Point{}, draw.Src)

	if !bytes.Equal(fast.Pix, generic.Pix) {
		t.Fatalf("row copy differs from draw.Draw")
	}

	viaDispatch := newDevice()
	ToImage(viaDispatch, frame)
	if !bytes.Equal(viaDispatch.Pix, fast.Pix) {
		t.Fatalf("ToImage dispatch differs from RGB565ToBGR565")
	}
}

func TestFullScaleChannels(t *testing.T) {
	frame := rgb565.NewImage(1, 1)
	frame.SetPixel(0, 0, rgb565.White)
	dst := image.NewRGBA(frame.Bounds())
	RGB565ToRGBA(dst, frame)
	if dst.Pix[0] != 0xFF || dst.Pix[1] != 0xFF || dst.Pix[2] != 0xFF || dst.Pix[3] != 0xFF {
		t.Fatalf("White widened to %v, want 0xFF everywhere", dst.Pix[:4])
	}
}
