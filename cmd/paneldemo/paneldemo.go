// Renders the self-test reel and the weather screen offscreen, then
// composes each frame onto a picture-frame styled background and
// writes one PNG per pattern into ./out. Useful for eyeballing the
// rasterizer without a panel attached.
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/drummonds/tftgfx/internal/gfx"
	"github.com/drummonds/tftgfx/internal/rgb565"
	"github.com/drummonds/tftgfx/internal/testpat"
	"github.com/drummonds/tftgfx/internal/text"
	"github.com/drummonds/tftgfx/internal/widget"
)

const (
	panelWidth  = 160
	panelHeight = 128
	scale       = 3
	margin      = 24
)

type pattern struct {
	name string
	draw func()
}

func main() {
	frame := rgb565.NewImage(panelWidth, panelHeight)
	canvas := gfx.New(frame, panelWidth, panelHeight)
	tr, err := text.NewRenderer(frame)
	if err != nil {
		log.Fatal(err)
	}
	panel := widget.NewPanel(canvas, tr)

	patterns := []pattern{
		{"lines", func() { testpat.Lines(canvas, rgb565.Cyan) }},
		{"fastlines", func() { testpat.FastLines(canvas, rgb565.Red, rgb565.Blue) }},
		{"rects", func() { testpat.Rects(canvas, rgb565.Green) }},
		{"filledrects", func() { testpat.FilledRects(canvas, rgb565.Yellow, rgb565.Magenta) }},
		{"circles", func() {
			testpat.FilledCircles(canvas, 10, rgb565.Magenta)
			testpat.Circles(canvas, 10, rgb565.White)
		}},
		{"triangles", func() { testpat.Triangles(canvas) }},
		{"filledtriangles", func() { testpat.FilledTriangles(canvas) }},
		{"roundrects", func() { testpat.RoundRects(canvas) }},
		{"filledroundrects", func() { testpat.FilledRoundRects(canvas) }},
		{"gradient", func() { panel.GradientBackground() }},
		{"animatedvalue", func() {
			canvas.FillScreen(rgb565.Black)
			panel.AnimatedValue(10, 40, "Temp", 21.5, rgb565.Blue)
		}},
		{"weather", func() {
			panel.TechyInterface()
			panel.UpdateTemperatureAndHumidity(21.53, 55.80)
		}},
	}

	if err := os.MkdirAll("out", 0o755); err != nil {
		log.Fatal(err)
	}
	for i, p := range patterns {
		p.draw()
		name := fmt.Sprintf("out/%02d-%s.png", i, p.name)
		if err := compose(frame, p.name, name); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", name)
	}
}

// compose scales the panel frame up and mounts it on a dark card
// with a border and caption.
func compose(frame *rgb565.Image, caption, path string) error {
	w := panelWidth * scale
	h := panelHeight * scale
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	dc := gg.NewContext(w+2*margin, h+2*margin+16)
	dc.SetRGB(0.10, 0.11, 0.13)
	dc.Clear()
	dc.DrawRoundedRectangle(margin-6, margin-6, float64(w)+12, float64(h)+12, 8)
	dc.SetRGB(0.33, 0.72, 0.78)
	dc.SetLineWidth(3)
	dc.Stroke()
	dc.DrawImage(scaled, margin, margin)
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.DrawString(caption, margin, float64(h+2*margin+6))
	return dc.SavePNG(path)
}
