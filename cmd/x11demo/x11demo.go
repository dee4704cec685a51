// Shows the rasterizer self-test reel and the weather screen in an
// X11 window, scaled up so the 160x128 panel is watchable on a
// desktop. Press any key to advance to the next pattern, close the
// window to quit.
package main

import (
	"image"
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

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

	windowWidth  = panelWidth * scale
	windowHeight = panelHeight * scale
)

func handleExposeEvent(X *xgb.Conn, wid xproto.Window, img image.Image) {
	gc, _ := xproto.NewGcontextId(X)
	xproto.CreateGC(X, gc, xproto.Drawable(wid), 0, nil)

	for y := 0; y < windowHeight; y++ {
		for x := 0; x < windowWidth; x++ {
			c := img.At(x/scale, y/scale)
			r, g, b, _ := c.RGBA()
			color := (r >> 8 << 16) | (g >> 8 << 8) | (b >> 8)
			xproto.ChangeGC(X, gc, xproto.GcForeground, []uint32{uint32(color)})
			xproto.PolyPoint(X, xproto.CoordModeOrigin, xproto.Drawable(wid), gc, []xproto.Point{{X: int16(x), Y: int16(y)}})
		}
	}
}

func NewX(width, height int) (*xgb.Conn, xproto.Window, xproto.Atom, xproto.Atom, error) {
	X, err := xgb.NewConn()
	if err != nil {
		return nil, 0, 0, 0, err
	}

	screen := xproto.Setup(X).DefaultScreen(X)
	wid, _ := xproto.NewWindowId(X)
	xproto.CreateWindow(X, screen.RootDepth, wid, screen.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			0xffffffff,
			xproto.EventMaskExposure | xproto.EventMaskKeyPress | xproto.EventMaskStructureNotify,
		})

	// Set WM_PROTOCOLS to handle window close
	atomWmDeleteWindow, _ := xproto.InternAtom(X, false, uint16(len("WM_DELETE_WINDOW")), "WM_DELETE_WINDOW").Reply()
	atomWmProtocols, _ := xproto.InternAtom(X, false, uint16(len("WM_PROTOCOLS")), "WM_PROTOCOLS").Reply()
	xproto.ChangeProperty(X, xproto.PropModeReplace, wid, atomWmProtocols.Atom, xproto.AtomAtom, 32, 1, []byte{byte(atomWmDeleteWindow.Atom), 0, 0, 0})

	xproto.MapWindow(X, wid)
	return X, wid, atomWmDeleteWindow.Atom, atomWmProtocols.Atom, nil
}

// reel builds the sequence of frames the demo steps through.
func reel(frame *rgb565.Image) []func() {
	canvas := gfx.New(frame, panelWidth, panelHeight)
	tr, err := text.NewRenderer(frame)
	if err != nil {
		log.Fatal(err)
	}
	panel := widget.NewPanel(canvas, tr)

	return []func(){
		func() { testpat.Lines(canvas, rgb565.Cyan) },
		func() { testpat.FastLines(canvas, rgb565.Red, rgb565.Blue) },
		func() { testpat.Rects(canvas, rgb565.Green) },
		func() { testpat.FilledRects(canvas, rgb565.Yellow, rgb565.Magenta) },
		func() {
			testpat.FilledCircles(canvas, 10, rgb565.Magenta)
			testpat.Circles(canvas, 10, rgb565.White)
		},
		func() { testpat.Triangles(canvas) },
		func() { testpat.FilledTriangles(canvas) },
		func() { testpat.RoundRects(canvas) },
		func() { testpat.FilledRoundRects(canvas) },
		func() { panel.GradientBackground() },
		func() {
			canvas.FillScreen(rgb565.Black)
			panel.AnimatedValue(10, 40, "Temp", 21.5, rgb565.Blue)
		},
		func() {
			panel.TechyInterface()
			panel.UpdateTemperatureAndHumidity(21.53, 55.80)
		},
	}
}

func main() {
	X, wid, atomWmDeleteWindow, atomWmProtocols, err := NewX(windowWidth, windowHeight)
	if err != nil {
		log.Fatal(err)
	}
	defer X.Close()

	frame := rgb565.NewImage(panelWidth, panelHeight)
	frames := reel(frame)
	step := 0
	frames[step]()

	for {
		ev, err := X.WaitForEvent()
		if err != nil {
			log.Println(err)
			continue
		}

		switch e := ev.(type) {
		case xproto.ExposeEvent:
			handleExposeEvent(X, wid, frame)
		case xproto.ClientMessageEvent:
			if e.Type == atomWmProtocols && e.Data.Data32[0] == uint32(atomWmDeleteWindow) {
				return
			}
		case xproto.KeyPressEvent:
			step++
			if step >= len(frames) {
				return
			}
			frames[step]()
			handleExposeEvent(X, wid, frame)
		}
	}
}
