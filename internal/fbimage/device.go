package fbimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/bfanger/framebuffer"
)

// FromDevice wraps an opened frame buffer device in a draw.Image
// backed by the device mmap. The kernel reports the geometry and
// pixel format; only 16 bit 5-6-5 devices are supported.
func FromDevice(dev *framebuffer.Device) (draw.Image, error) {
	info, err := dev.VarScreenInfo()
	if err != nil {
		return nil, err
	}
	return wrap(dev.Buffer, int(dev.FixScreenInfo.LineLength), info)
}

func wrap(buf []byte, stride int, info *framebuffer.VarScreenInfo) (draw.Image, error) {
	if info.PixelFormat() != framebuffer.BGR565 {
		return nil, fmt.Errorf("unsupported frame buffer pixel format: %d bpp, red %d/%d green %d/%d blue %d/%d",
			info.BitsPerPixel,
			info.Red.Offset, info.Red.Length,
			info.Green.Offset, info.Green.Length,
			info.Blue.Offset, info.Blue.Length)
	}
	return &BGR565{
		Pix:    buf,
		Rect:   image.Rect(0, 0, int(info.Xres), int(info.Yres)),
		Stride: stride,
	}, nil
}
