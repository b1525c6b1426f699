package system

import (
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/nf/ch8/chip8"
)

// Window is a Frontend that shows the display in a window, scaled up by an
// integer factor.
type Window struct {
	devs  *Devices
	title string
	scale int

	quit     chan bool
	quitOnce sync.Once
}

// NewWindow returns a Window presenting devs.
func NewWindow(devs *Devices, title string, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	devs.Bell.SetRing(func() { os.Stderr.Write([]byte{'\a'}) })
	return &Window{
		devs:  devs,
		title: title,
		scale: scale,
		quit:  make(chan bool),
	}
}

func (g *Window) Poll() bool {
	select {
	case <-g.quit:
		return true
	default:
		return false
	}
}

func (g *Window) Render() { g.devs.Screen.Present() }

// Run must be called from the main goroutine.
func (g *Window) Run(exit <-chan bool) (err error) {
	defer g.quitOnce.Do(func() { close(g.quit) })
	driver.Main(func(s screen.Screen) {
		sz := image.Point{chip8.Width * g.scale, chip8.Height * g.scale}
		w, e := s.NewWindow(&screen.NewWindowOptions{
			Title:  g.title,
			Width:  sz.X,
			Height: sz.Y,
		})
		if e != nil {
			err = e
			return
		}
		defer w.Release()

		v := &windowView{Window: g, src: newImage(), frames: -1}
		if err = v.alloc(s, sz); err != nil {
			return
		}
		defer v.release()

		type update struct{}
		go func() {
			t := time.NewTicker(time.Second / 60)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					w.Send(update{})
				case <-exit:
					w.Send(update{}) // wake the event loop
					return
				}
			}
		}()

		var winSize size.Event
		for {
			e := w.NextEvent()

			select {
			case <-exit:
				return
			default:
			}

			switch e := e.(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				winSize = e
				if winSize.WidthPx+winSize.HeightPx == 0 {
					return
				}
				v.frames = -1

			case paint.Event:
				v.frames = -1

			case mouse.Event:

			case key.Event:
				if e.Code == key.CodeEscape {
					return
				}
				if k, ok := keyForCode(e.Code); ok {
					switch e.Direction {
					case key.DirPress:
						g.devs.Keys.Press(k)
					case key.DirRelease:
						g.devs.Keys.Release(k)
					}
				}

			case update:
				if v.update() {
					w.Scale(winSize.Bounds(), v.tex, v.tex.Bounds(), draw.Src, nil)
					w.Publish()
				}

			case error:
				log.Print(e)

			default:
				format := "gui: unhandled event %#v"
				if _, ok := e.(fmt.Stringer); ok {
					format = "gui: unhandled event %v"
				}
				log.Printf(format, e)
			}
		}
	})
	return err
}

type windowView struct {
	*Window

	frame  Frame
	frames int // Framebuffer frame count at the last upload
	src    *image.RGBA
	buf    screen.Buffer
	tex    screen.Texture
}

func (v *windowView) alloc(s screen.Screen, sz image.Point) (err error) {
	if v.buf, err = s.NewBuffer(sz); err != nil {
		return
	}
	v.tex, err = s.NewTexture(sz)
	return
}

// update uploads the latest presented frame to the texture and reports
// whether it did so.
func (v *windowView) update() bool {
	n := v.devs.Screen.Snapshot(&v.frame)
	if n == v.frames {
		return false
	}
	v.frames = n
	v.frame.Draw(v.src)
	draw.NearestNeighbor.Scale(v.buf.RGBA(), v.buf.Bounds(), v.src, v.src.Bounds(), draw.Src, nil)
	v.tex.Upload(image.Point{}, v.buf, v.buf.Bounds())
	return true
}

func (v *windowView) release() {
	if v.tex != nil {
		v.tex.Release()
	}
	if v.buf != nil {
		v.buf.Release()
	}
}
