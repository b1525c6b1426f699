package system

import (
	"log"

	"github.com/nf/ch8/chip8"
)

// Devices are the peripherals a machine is attached to. They outlive any
// one machine, so a front end keeps working across resets.
type Devices struct {
	Screen Framebuffer
	Keys   Keypad
	Bell   Beeper
}

// Attach connects m to the devices.
func (d *Devices) Attach(m *chip8.Machine) {
	m.Display = &d.Screen
	m.Keys = &d.Keys
	m.Tone = &d.Bell
}

// A Frontend presents Devices to the user.
type Frontend interface {
	Host
	// Run drives the user interface until exit is closed or the user
	// quits. It may need to be called from the main goroutine.
	Run(exit <-chan bool) error
}

// Runner runs machines on a Frontend.
type Runner struct {
	fe    Frontend
	devs  *Devices
	rates Rates
	clock Clock
	dev   bool

	reset     chan *chip8.Machine
	resetDone chan bool
	quit      chan bool
	done      chan bool // closed once Run has stopped running machines
}

// NewRunner returns a Runner that presents machines on fe. In dev mode a
// machine that halts is logged and the front end stays up until the next
// Reset; otherwise a halt ends Run.
func NewRunner(fe Frontend, devs *Devices, rates Rates, devMode bool) *Runner {
	return &Runner{
		fe:        fe,
		devs:      devs,
		rates:     rates,
		clock:     NewClock(),
		dev:       devMode,
		reset:     make(chan *chip8.Machine),
		resetDone: make(chan bool),
		quit:      make(chan bool),
		done:      make(chan bool),
	}
}

// Reset replaces the running machine with m. It returns false, and does
// nothing, if Run has already returned or is returning.
func (r *Runner) Reset(m *chip8.Machine) bool {
	if !r.dev {
		panic("Reset called while not running in dev mode")
	}
	select {
	case r.reset <- m:
		<-r.resetDone
		return true
	case <-r.done:
		return false
	}
}

// Run attaches m to the devices and runs it until the user quits or, if not
// in dev mode, the machine halts. It returns the error that halted the
// machine, if any.
func (r *Runner) Run(m *chip8.Machine) error {
	var (
		exit   = make(chan bool)
		result error
	)
	go func() {
		defer close(exit)
		defer close(r.done)
		var (
			execErr = make(chan error)
			stop    chan bool
			running bool
		)
		start := func() {
			r.devs.Attach(m)
			r.devs.Screen.Clear()
			s := NewScheduler(m, r.clock, r.fe, r.rates)
			stop = make(chan bool)
			running = true
			go func(stop <-chan bool) { execErr <- s.Run(stop) }(stop)
		}
		halt := func() {
			if running {
				close(stop)
				<-execErr
				running = false
			}
		}
		start()
		for {
			select {
			case newM := <-r.reset:
				halt()
				m = newM
				start()
				r.resetDone <- true
			case err := <-execErr:
				running = false
				if err == ErrQuit {
					return
				}
				if r.dev {
					log.Printf("halt: %v", err)
					continue
				}
				result = err
				return
			case <-r.quit:
				halt()
				return
			}
		}
	}()

	err := r.fe.Run(exit)
	select {
	case r.quit <- true:
	case <-exit:
	}
	<-exit
	if err != nil {
		return err
	}
	return result
}
