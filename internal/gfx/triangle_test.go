package gfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drummonds/tftgfx/internal/rgb565"
)

func TestFillTriangleDegenerate(t *testing.T) {
	rec := newRecorder()
	New(rec, 160, 128).FillTriangle(0, 5, 10, 5, 5, 5, rgb565.White)

	if len(rec.pixels) != 11 {
		t.Fatalf("collinear triangle painted %d pixels, want 11", len(rec.pixels))
	}
	for x := int16(0); x <= 10; x++ {
		if !rec.has(x, 5) {
			t.Fatalf("missing pixel (%d,5)", x)
		}
	}
}

func TestFillTriangleRowCoverage(t *testing.T) {
	cases := []struct {
		name                   string
		x0, y0, x1, y1, x2, y2 int16
	}{
		{"general", 10, 2, 50, 30, 25, 60},
		{"flat top", 10, 5, 40, 5, 25, 40},
		{"flat bottom", 25, 3, 10, 30, 40, 30},
		{"thin sliver", 0, 0, 1, 50, 2, 100},
		{"right angle", 5, 5, 5, 45, 60, 45},
	}
	for _, tc := range cases {
		rec := newRecorder()
		New(rec, 160, 128).FillTriangle(tc.x0, tc.y0, tc.x1, tc.y1, tc.x2, tc.y2, rgb565.White)

		minY := min(tc.y0, tc.y1, tc.y2)
		maxY := max(tc.y0, tc.y1, tc.y2)
		for y := minY; y <= maxY; y++ {
			var xs []int16
			for x := int16(-5); x < 160; x++ {
				if rec.has(x, y) {
					xs = append(xs, x)
				}
			}
			if len(xs) == 0 {
				t.Errorf("%s: row %d empty", tc.name, y)
				continue
			}
			for i := 1; i < len(xs); i++ {
				if xs[i] != xs[i-1]+1 {
					t.Errorf("%s: row %d not contiguous at %d..%d", tc.name, y, xs[i-1], xs[i])
				}
			}
		}
		// Nothing outside the vertical extent.
		for p := range rec.pixels {
			if p.y < minY || p.y > maxY {
				t.Errorf("%s: stray pixel %v", tc.name, p)
			}
		}
	}
}

func TestFillTriangleVertexOrderInvariance(t *testing.T) {
	v := [3][2]int16{{12, 4}, {70, 25}, {30, 55}}
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	base := newRecorder()
	New(base, 160, 128).FillTriangle(v[0][0], v[0][1], v[1][0], v[1][1], v[2][0], v[2][1], rgb565.White)

	for _, p := range perms[1:] {
		rec := newRecorder()
		a, b, c := v[p[0]], v[p[1]], v[p[2]]
		New(rec, 160, 128).FillTriangle(a[0], a[1], b[0], b[1], c[0], c[1], rgb565.White)
		if diff := cmp.Diff(base.pixels, rec.pixels, cmp.AllowUnexported(point{})); diff != "" {
			t.Errorf("permutation %v changes the pixel set:\n%s", p, diff)
		}
	}
}

func TestDrawTriangleIsThreeLines(t *testing.T) {
	rec := newRecorder()
	New(rec, 160, 128).DrawTriangle(5, 5, 30, 10, 15, 40, rgb565.White)

	want := newRecorder()
	c := New(want, 160, 128)
	c.DrawLine(5, 5, 30, 10, rgb565.White)
	c.DrawLine(30, 10, 15, 40, rgb565.White)
	c.DrawLine(15, 40, 5, 5, rgb565.White)

	if diff := cmp.Diff(want.pixels, rec.pixels, cmp.AllowUnexported(point{})); diff != "" {
		t.Fatalf("outline differs from its three edges:\n%s", diff)
	}
}
