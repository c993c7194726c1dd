//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"lcdtris/render"
)

// hostFramebuffer is an RGB565 panel in memory, laid out like the LCD's
// frame memory. The window backend copies it to the screen.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents uint64
}

var _ render.Panel = (*hostFramebuffer)(nil)

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(int(x), int(y), rgb565(c.R, c.G, c.B))
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(c.R, c.G, c.B)
	x0, y0 := clamp(int(x), f.width), clamp(int(y), f.height)
	x1, y1 := clamp(int(x)+int(width), f.width), clamp(int(y)+int(height), f.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.put(px, py, pixel)
		}
	}
	return nil
}

// Display marks a frame as complete.
func (f *hostFramebuffer) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

func (f *hostFramebuffer) put(x, y int, pixel uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
