package system

import (
	"image"
	"image/color"
	"sync"

	"github.com/nf/ch8/chip8"
)

// Frame is a monochrome image of the display.
type Frame [chip8.Height][chip8.Width]bool

// Framebuffer implements chip8.Display. The machine draws into a back
// buffer; Present copies it to the front buffer that front ends read with
// Snapshot from other goroutines.
type Framebuffer struct {
	back Frame

	mu     sync.Mutex
	front  Frame
	frames int // count of presented frames that differed from the last
}

func (f *Framebuffer) Clear() { f.back = Frame{} }

func (f *Framebuffer) Toggle(x, y int) bool {
	p := &f.back[wrap(y, chip8.Height)][wrap(x, chip8.Width)]
	*p = !*p
	return *p
}

// Pixel reports whether the pixel at (x, y) of the back buffer is on.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.back[wrap(y, chip8.Height)][wrap(x, chip8.Width)]
}

// Present publishes the back buffer and reports whether it changed since
// it was last presented.
func (f *Framebuffer) Present() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.front == f.back {
		return false
	}
	f.front = f.back
	f.frames++
	return true
}

// Snapshot copies the last presented frame into dst and returns the number
// of distinct frames presented so far.
func (f *Framebuffer) Snapshot(dst *Frame) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = f.front
	return f.frames
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

var (
	pixelOn  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pixelOff = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Draw renders fr into m, which must be chip8.Width by chip8.Height.
func (fr *Frame) Draw(m *image.RGBA) {
	for y := range fr {
		for x, on := range fr[y] {
			c := pixelOff
			if on {
				c = pixelOn
			}
			m.SetRGBA(x, y, c)
		}
	}
}

// newImage returns an image the size of the display.
func newImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, chip8.Width, chip8.Height))
}
