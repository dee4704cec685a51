package gfx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drummonds/tftgfx/internal/rgb565"
)

func TestCircleRadiusTolerance(t *testing.T) {
	const cx, cy = 40, 40
	for r := int16(1); r <= 12; r++ {
		rec := newRecorder()
		New(rec, 160, 128).DrawCircle(cx, cy, r, rgb565.White)

		for _, p := range []point{{cx, cy + r}, {cx, cy - r}, {cx + r, cy}, {cx - r, cy}} {
			if !rec.has(p.x, p.y) {
				t.Errorf("r=%d: missing cardinal point %v", r, p)
			}
		}
		for p := range rec.pixels {
			d := math.Round(math.Hypot(float64(p.x-cx), float64(p.y-cy)))
			if d < float64(r-1) || d > float64(r+1) {
				t.Errorf("r=%d: point %v at rounded distance %v", r, p, d)
			}
		}
	}
}

func TestCircleHelperUnionMatchesFullCircle(t *testing.T) {
	const cx, cy, r = 30, 30, 9
	full := newRecorder()
	New(full, 160, 128).DrawCircle(cx, cy, r, rgb565.White)

	parts := newRecorder()
	c := New(parts, 160, 128)
	mask := CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
	c.DrawCircleHelper(cx, cy, r, mask, rgb565.White)
	// The helper leaves the four cardinal seeds to the caller.
	c.DrawPixel(cx, cy+r, rgb565.White)
	c.DrawPixel(cx, cy-r, rgb565.White)
	c.DrawPixel(cx+r, cy, rgb565.White)
	c.DrawPixel(cx-r, cy, rgb565.White)

	if diff := cmp.Diff(full.pixels, parts.pixels, cmp.AllowUnexported(point{})); diff != "" {
		t.Fatalf("helper union differs from full circle:\n%s", diff)
	}
}

func TestFillCircleCoverage(t *testing.T) {
	const cx, cy, r = 20, 20, 7
	rec := newRecorder()
	New(rec, 160, 128).FillCircle(cx, cy, r, rgb565.Blue)

	// Everything comfortably inside the disc is painted, nothing
	// beyond the midpoint tolerance band is.
	for y := int16(cy - r - 2); y <= cy+r+2; y++ {
		for x := int16(cx - r - 2); x <= cx+r+2; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			switch {
			case d <= float64(r-1) && !rec.has(x, y):
				t.Errorf("interior point (%d,%d) at distance %.2f not filled", x, y, d)
			case d > float64(r+1) && rec.has(x, y):
				t.Errorf("exterior point (%d,%d) at distance %.2f filled", x, y, d)
			}
		}
	}

	// Each painted column is a contiguous vertical span.
	for x := int16(cx - r); x <= cx+r; x++ {
		var ys []int16
		for y := int16(cy - r); y <= cy+r; y++ {
			if rec.has(x, y) {
				ys = append(ys, y)
			}
		}
		for i := 1; i < len(ys); i++ {
			if ys[i] != ys[i-1]+1 {
				t.Errorf("column %d has a gap between %d and %d", x, ys[i-1], ys[i])
			}
		}
	}
}
