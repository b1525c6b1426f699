package system

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nf/ch8/chip8"
)

// termKeyHold is how long a key stays down after the terminal last
// reported it. Terminals repeat held keys but never report their release.
const termKeyHold = 250 * time.Millisecond

// Terminal is a Frontend that draws the display with half-block characters.
type Terminal struct {
	devs  *Devices
	clock Clock

	screen tcell.Screen
	view   *screenView
	log    *tview.TextView
	rows   *tview.Flex
	app    *tview.Application

	quit     chan bool
	quitOnce sync.Once
}

// NewTerminal returns a Terminal presenting devs. The title is shown above
// the display.
func NewTerminal(devs *Devices, title string) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	t := &Terminal{
		devs:   devs,
		clock:  NewClock(),
		screen: s,
		view:   newScreenView(&devs.Screen),
		log: tview.NewTextView().
			SetMaxLines(1000),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app:  tview.NewApplication().SetScreen(s),
		quit: make(chan bool),
	}
	t.view.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", title))
	t.log.SetChangedFunc(func() { t.app.Draw() })
	t.rows.
		AddItem(t.view, screenRows+2, 0, false).
		AddItem(t.log, 0, 1, false)
	t.app.SetRoot(t.rows, true)
	t.app.SetInputCapture(t.input)

	devs.Bell.SetRing(func() { s.Beep() })
	return t, nil
}

// Log returns a writer that appends to the log pane.
func (t *Terminal) Log() io.Writer { return t.log }

func (t *Terminal) input(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.app.Stop()
		return nil
	case tcell.KeyRune:
		if k, ok := keyForRune(ev.Rune()); ok {
			t.devs.Keys.PressAt(k, t.clock.Now())
			return nil
		}
	}
	return ev
}

func (t *Terminal) Poll() bool {
	t.devs.Keys.Expire(t.clock.Now(), termKeyHold)
	select {
	case <-t.quit:
		return true
	default:
		return false
	}
}

func (t *Terminal) Render() {
	if t.devs.Screen.Present() {
		t.app.Draw()
	}
}

func (t *Terminal) Run(exit <-chan bool) error {
	defer t.quitOnce.Do(func() { close(t.quit) })
	go func() {
		select {
		case <-exit:
			t.app.QueueUpdate(t.app.Stop)
		case <-t.quit:
		}
	}()
	return t.app.Run()
}

// screenRows is the number of terminal rows used to show the display,
// two pixels per cell.
const screenRows = (chip8.Height + 1) / 2

// screenView is a tview primitive showing the presented frame.
type screenView struct {
	*tview.Box
	fb    *Framebuffer
	frame Frame
}

func newScreenView(fb *Framebuffer) *screenView {
	return &screenView{Box: tview.NewBox(), fb: fb}
}

func (v *screenView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x0, y0, w, h := v.GetInnerRect()
	v.fb.Snapshot(&v.frame)
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack)
	for row := 0; row < screenRows && row < h; row++ {
		for x := 0; x < chip8.Width && x < w; x++ {
			top := v.frame[2*row][x]
			bottom := 2*row+1 < chip8.Height && v.frame[2*row+1][x]
			r := ' '
			switch {
			case top && bottom:
				r = '█'
			case top:
				r = '▀'
			case bottom:
				r = '▄'
			}
			screen.SetContent(x0+x, y0+row, r, nil, style)
		}
	}
}
