package text

import (
	"testing"

	"github.com/drummonds/tftgfx/internal/rgb565"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, *rgb565.Image) {
	t.Helper()
	frame := rgb565.NewImage(w, h)
	r, err := NewRenderer(frame)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, frame
}

func TestWriteStringPaintsCell(t *testing.T) {
	r, frame := newTestRenderer(t, 100, 40)
	r.WriteString(4, 4, "Hi", FontSmall, rgb565.Green, rgb565.Black)

	w, h := r.Measure("Hi", FontSmall)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure = %dx%d", w, h)
	}

	var fg int
	for y := 4; y < 4+h; y++ {
		for x := 4; x < 4+w; x++ {
			if frame.Pixel(int16(x), int16(y)) == rgb565.Green {
				fg++
			}
		}
	}
	if fg == 0 {
		t.Fatalf("no foreground pixels drawn")
	}
}

func TestWriteStringBlanksBackground(t *testing.T) {
	r, frame := newTestRenderer(t, 100, 40)
	// Dirty the area first, then write a space over it: the whole
	// cell must come back as the background colour.
	for y := int16(0); y < 40; y++ {
		for x := int16(0); x < 100; x++ {
			frame.SetPixel(x, y, rgb565.Magenta)
		}
	}
	r.WriteString(10, 10, " ", FontSmall, rgb565.White, rgb565.Black)

	w, h := r.Measure(" ", FontSmall)
	for y := 10; y < 10+h; y++ {
		for x := 10; x < 10+w; x++ {
			if got := frame.Pixel(int16(x), int16(y)); got != rgb565.Black {
				t.Fatalf("cell pixel (%d,%d) = %#04x, want Black", x, y, uint16(got))
			}
		}
	}
	if got := frame.Pixel(9, 10); got != rgb565.Magenta {
		t.Fatalf("pixel left of cell was touched")
	}
}

// Writing a fixed-width run of spaces must cover any shorter string
// previously drawn at the same position.
func TestFixedWidthOverwrite(t *testing.T) {
	r, frame := newTestRenderer(t, 120, 40)
	r.WriteString(0, 0, "88.88C", FontSmall, rgb565.White, rgb565.Black)
	r.WriteString(0, 0, "       ", FontSmall, rgb565.White, rgb565.Black)

	w, h := r.Measure("88.88C", FontSmall)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := frame.Pixel(int16(x), int16(y)); got != rgb565.Black {
				t.Fatalf("stale glyph pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestLargeFaceRenders(t *testing.T) {
	r, frame := newTestRenderer(t, 200, 60)
	r.WriteString(2, 2, "Temp: 21.5", FontLarge, rgb565.White, rgb565.Blue)

	w, h := r.Measure("Temp: 21.5", FontLarge)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure = %dx%d", w, h)
	}
	var nonBg int
	for y := 2; y < 2+h && y < 60; y++ {
		for x := 2; x < 2+w && x < 200; x++ {
			if frame.Pixel(int16(x), int16(y)) != rgb565.Blue {
				nonBg++
			}
		}
	}
	if nonBg == 0 {
		t.Fatalf("large face drew nothing")
	}
}
