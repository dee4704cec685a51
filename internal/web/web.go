// Package web serves a live preview of the working frame so the
// panel can be watched from a browser while the device renders.
package web

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Snapshot returns the frame to encode for the next preview request.
// The renderer is single threaded; the caller decides whether the
// snapshot needs to copy.
type Snapshot func() image.Image

type Server struct {
	snap  Snapshot
	fbdev string
}

func NewServer(snap Snapshot, fbdev string) *Server {
	return &Server{snap: snap, fbdev: fbdev}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/frame.png", s.handleFrame)
	mux.HandleFunc("/fbinfo", s.handleFBInfo)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	log.Printf("frame preview listening on %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "<title>tftgfx frame</title>")
	fmt.Fprintf(w, "<meta http-equiv='refresh' content='1'>")
	fmt.Fprintf(w, "<h1>tftgfx frame preview</h1>")
	fmt.Fprintf(w, "<img src='frame.png' style='width:480px;image-rendering:pixelated;'>")
	fmt.Fprintf(w, "<p><a href='fbinfo'>framebuffer info</a></p>")
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, s.snap()); err != nil {
		log.Printf("encoding frame: %v", err)
	}
}

// FBIOGET_VSCREENINFO ioctl request code
const fbioGetVScreeninfo = 0x4600

type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// Mirrors struct fb_var_screeninfo from <linux/fb.h>
type fbVarScreeninfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// Get the frame buffer device geometry and add it to the string builder
func (s *Server) addFrameBufferInfo(sb *strings.Builder) {
	sb.WriteString("<hr><h2>Frame buffer info</h2>")

	fd, err := unix.Open(s.fbdev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		sb.WriteString(fmt.Sprintf("<p>Error opening %s: %v</p>", s.fbdev, err))
		return
	}
	defer unix.Close(fd)

	var info fbVarScreeninfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), fbioGetVScreeninfo, uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		sb.WriteString(fmt.Sprintf("<p>Error in VSCREENINFO ioctl: %v</p>", errno))
		return
	}

	sb.WriteString(fmt.Sprintf("<p>resolution: %dx%d (virtual %dx%d)</p>",
		info.Xres, info.Yres, info.XresVirtual, info.YresVirtual))
	sb.WriteString(fmt.Sprintf("<p>bits per pixel: %d</p>", info.BitsPerPixel))
	sb.WriteString(fmt.Sprintf("<p>red %d:%d green %d:%d blue %d:%d</p>",
		info.Red.Offset, info.Red.Length,
		info.Green.Offset, info.Green.Length,
		info.Blue.Offset, info.Blue.Length))
}

func (s *Server) handleFBInfo(w http.ResponseWriter, r *http.Request) {
	var sb strings.Builder
	sb.WriteString("<title>tftgfx fbinfo</title>")
	s.addFrameBufferInfo(&sb)
	fmt.Fprint(w, sb.String())
}
