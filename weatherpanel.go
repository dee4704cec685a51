// Program weatherpanel renders a temperature/humidity dashboard to
// the Linux frame buffer, typically available via HDMI or a small
// SPI TFT when running on a Raspberry Pi.
//
// The sensor itself is outside this program; a deterministic
// oscillator stands in for it so the panel can be exercised on any
// machine with a frame buffer. A live preview of the frame is served
// on :8080.
package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bfanger/framebuffer"

	"github.com/drummonds/tftgfx/internal/blit"
	"github.com/drummonds/tftgfx/internal/fbimage"
	"github.com/drummonds/tftgfx/internal/gfx"
	"github.com/drummonds/tftgfx/internal/rgb565"
	"github.com/drummonds/tftgfx/internal/text"
	"github.com/drummonds/tftgfx/internal/web"
	"github.com/drummonds/tftgfx/internal/widget"
)

const (
	panelWidth  = 160
	panelHeight = 128

	fbDevice    = "/dev/fb0"
	previewAddr = ":8080"
)

type weatherPanel struct {
	// config
	frameBuffer draw.Image    // what is output to the screen
	frame       *rgb565.Image // what the engine draws on
	panel       *widget.Panel

	// state
	mu                   sync.Mutex // excludes the preview goroutine while the frame is drawn
	slowPathNotified     bool
	lastRender, lastCopy time.Duration
	renderCount          int
}

// Called once to set up the panel on the device frame buffer.
func newWeatherPanel(devFrameBuffer draw.Image) (*weatherPanel, error) {
	wp := &weatherPanel{frameBuffer: devFrameBuffer}
	wp.frame = rgb565.NewImage(panelWidth, panelHeight)

	canvas := gfx.New(wp.frame, panelWidth, panelHeight)
	tr, err := text.NewRenderer(wp.frame)
	if err != nil {
		return nil, err
	}
	wp.panel = widget.NewPanel(canvas, tr)
	wp.panel.TechyInterface()
	return wp, nil
}

// readings stands in for the sensor: a slow oscillation around
// plausible room values.
func readings(t time.Time) (temp, humid float64) {
	phase := float64(t.Unix()%120) * math.Pi / 60
	return 21.5 + 3*math.Sin(phase), 55 + 10*math.Cos(phase)
}

// render one frame to the working buffer and copy it to the screen
func (wp *weatherPanel) render(ctx context.Context) error {
	wp.renderCount++

	t2 := time.Now()
	temp, humid := readings(time.Now())
	wp.mu.Lock()
	wp.panel.UpdateTemperatureAndHumidity(temp, humid)
	wp.mu.Unlock()
	wp.lastRender = time.Since(t2)

	t3 := time.Now()
	switch x := wp.frameBuffer.(type) {
	case *fbimage.BGR565:
		if wp.renderCount < 3 {
			log.Printf("framebuffer using pixel format BGR565")
		}
		blit.RGB565ToBGR565(x, wp.frame)
	case *image.RGBA:
		if wp.renderCount < 3 {
			log.Printf("framebuffer using pixel format RGBA")
		}
		blit.RGB565ToRGBA(x, wp.frame)
	default:
		if !wp.slowPathNotified {
			log.Printf("framebuffer type %T, falling back to slow copy path", wp.frameBuffer)
			wp.slowPathNotified = true
		}
		draw.Draw(wp.frameBuffer, wp.frame.Bounds(), wp.frame, image.Point{}, draw.Src)
	}
	wp.lastCopy = time.Since(t3)
	return nil
}

// snapshot clones the working frame for the preview server. The
// render loop keeps drawing while the encoder reads, so the preview
// gets its own copy.
func (wp *weatherPanel) snapshot() image.Image {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	snap := rgb565.NewImage(panelWidth, panelHeight)
	copy(snap.Pix, wp.frame.Pix)
	return snap
}

func weatherpanel(ctx context.Context) error {
	fb, err := framebuffer.Open(fbDevice)
	if err != nil {
		return err
	}
	defer fb.Close()

	if info, err := fb.VarScreenInfo(); err == nil {
		log.Printf("framebuffer screeninfo: %dx%d, %d bpp", info.Xres, info.Yres, info.BitsPerPixel)
	}

	devFrameBuffer, err := fbimage.FromDevice(fb)
	if err != nil {
		return err
	}

	wp, err := newWeatherPanel(devFrameBuffer)
	if err != nil {
		return err
	}

	srv := web.NewServer(wp.snapshot, fbDevice)
	go func() {
		if err := srv.ListenAndServe(previewAddr); err != nil {
			log.Print(err)
		}
	}()

	// Event loop, render every second
	tick := time.Tick(1 * time.Second)
	for {
		if err := wp.render(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}

func main() {
	fmt.Printf("WeatherPanel V0.1.0\n")
	ctx := context.Background()

	// Cancel the context instead of exiting the program:
	ctx, canc := signal.NotifyContext(ctx, os.Interrupt)
	defer canc()
	if err := weatherpanel(ctx); err != nil {
		log.Fatal(err)
	}
}
