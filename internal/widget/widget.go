// Package widget composes the drawing primitives and the text
// collaborator into the weather display: gradient backgrounds, the
// animated value bar and the framed temperature/humidity screen.
package widget

import (
	"fmt"

	"github.com/drummonds/tftgfx/internal/gfx"
	"github.com/drummonds/tftgfx/internal/rgb565"
	"github.com/drummonds/tftgfx/internal/text"
)

// Animated value bar geometry.
const (
	barWidth  = 140
	barHeight = 50
	barRadius = 10
	barStep   = 10
)

// Fixed layout of the temperature/humidity screen.
const (
	labelY = 30
	valueY = labelY + 20

	// Value fields are blanked to this fixed width before each
	// rewrite so a shorter reading leaves no stale glyphs.
	fieldBlank = "       "
)

// TextWriter renders a string at a position. Glyph rasterisation is
// outside the engine; *text.Renderer is the usual implementation.
type TextWriter interface {
	WriteString(x, y int16, s string, f text.Font, fg, bg rgb565.Color)
}

// Panel owns the widgets for one canvas.
type Panel struct {
	canvas *gfx.Canvas
	text   TextWriter
}

func NewPanel(canvas *gfx.Canvas, tw TextWriter) *Panel {
	return &Panel{canvas: canvas, text: tw}
}

// GradientBackground paints a vertical black-to-blue wash, one
// interpolated row at a time.
func (p *Panel) GradientBackground() {
	h := p.canvas.Height()
	for i := int16(0); i < h; i++ {
		color := rgb565.Interpolate(rgb565.Black, rgb565.Blue, float64(i)/float64(h+1))
		p.canvas.DrawFastHLine(0, i, p.canvas.Width(), color)
	}
}

// AnimatedValue grows a rounded bar to its full width in fixed steps,
// then overlays "label: value". Every call replays the whole growth
// sequence, so repeated calls cost the same writes and converge on
// the same final frame.
func (p *Panel) AnimatedValue(x, y int16, label string, value float64, color rgb565.Color) {
	for w := int16(0); w <= barWidth; w += barStep {
		p.canvas.FillRoundRect(x, y, w, barHeight, barRadius, color)
	}
	s := fmt.Sprintf("%s: %.1f", label, value)
	p.text.WriteString(x+10, y+10, s, text.FontLarge, rgb565.White, color)
}

func (p *Panel) tempX() int16  { return 10 }
func (p *Panel) humidX() int16 { return p.canvas.Width()/2 + 10 }

// TechyInterface draws the static frame of the weather screen:
// border rules, corner circles and the two field labels.
func (p *Panel) TechyInterface() {
	c := p.canvas
	w, h := c.Width(), c.Height()

	c.FillScreen(rgb565.Cyan)
	c.FillScreen(rgb565.Black)

	c.DrawFastHLine(0, 20, w, rgb565.Cyan)
	c.DrawFastHLine(0, h-20, w, rgb565.Cyan)
	c.DrawFastVLine(w/2, 20, h-80, rgb565.Cyan)
	c.DrawFastHLine(0, h-60, w, rgb565.Cyan)

	c.DrawCircle(10, 10, 8, rgb565.Yellow)
	c.DrawCircle(w-10, 10, 8, rgb565.Yellow)
	c.DrawCircle(10, h-10, 8, rgb565.Yellow)
	c.DrawCircle(w-10, h-10, 8, rgb565.Yellow)

	p.text.WriteString(p.tempX(), labelY, "Temp:", text.FontSmall, rgb565.Green, rgb565.Black)
	p.text.WriteString(p.humidX(), labelY, "Humid:", text.FontSmall, rgb565.Green, rgb565.Black)
}

// UpdateTemperatureAndHumidity rewrites the two value fields below
// their labels. Each field is blanked to its fixed width first.
func (p *Panel) UpdateTemperatureAndHumidity(temp, humid float64) {
	p.text.WriteString(p.tempX(), valueY, fieldBlank, text.FontSmall, rgb565.White, rgb565.Black)
	p.text.WriteString(p.tempX(), valueY, fmt.Sprintf("%.2fC", temp), text.FontSmall, rgb565.White, rgb565.Black)

	p.text.WriteString(p.humidX(), valueY, fieldBlank, text.FontSmall, rgb565.White, rgb565.Black)
	p.text.WriteString(p.humidX(), valueY, fmt.Sprintf("%.2f%%", humid), text.FontSmall, rgb565.White, rgb565.Black)
}
