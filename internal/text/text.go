// Package text renders strings for the widgets. Glyph rasterisation
// stays outside the drawing engine: this package paints straight into
// the frame image with an opaque background cell, the way TFT text
// drivers do, so a shorter replacement string never leaves stale
// glyph fragments behind.
package text

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/drummonds/tftgfx/internal/rgb565"
)

// Font selects one of the two panel type sizes.
type Font uint8

const (
	// FontSmall is the fixed 7x13 bitmap face used for field labels.
	FontSmall Font = iota
	// FontLarge is Go Regular at 18px, used for headline values.
	FontLarge
)

const largePointSize = 18

// Renderer draws strings onto a destination frame.
type Renderer struct {
	dst   draw.Image
	small font.Face
	large font.Face
}

// NewRenderer builds the two faces over the given destination. The
// large face is parsed from the embedded Go Regular TrueType data.
func NewRenderer(dst draw.Image) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		dst:   dst,
		small: basicfont.Face7x13,
		large: truetype.NewFace(f, &truetype.Options{Size: largePointSize}),
	}, nil
}

func (r *Renderer) face(f Font) font.Face {
	if f == FontLarge {
		return r.large
	}
	return r.small
}

// Measure returns the cell size WriteString would paint for s.
func (r *Renderer) Measure(s string, f Font) (w, h int) {
	face := r.face(f)
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// WriteString renders s with the top-left corner of its cell at
// (x, y). The cell is blanked with bg first, then the glyphs are
// drawn in fg from the baseline.
func (r *Renderer) WriteString(x, y int16, s string, f Font, fg, bg rgb565.Color) {
	face := r.face(f)
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := m.Height.Ceil()

	cell := image.Rect(int(x), int(y), int(x)+w, int(y)+h)
	draw.Draw(r.dst, cell, image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(int(x), int(y)+m.Ascent.Ceil()),
	}
	d.DrawString(s)
}
