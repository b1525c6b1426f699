// Package system runs a CHIP-8 machine against a host: it provides the
// scheduler that paces the machine, the display, keypad and tone devices it
// is attached to, and terminal and window front ends that present them.
package system

import (
	"errors"
	"time"

	"github.com/nf/ch8/chip8"
)

// Clock is a monotonic clock. Now never decreases.
type Clock interface {
	Now() time.Duration
}

type wallClock struct{ start time.Time }

// NewClock returns a Clock that reports the time elapsed since it was
// created.
func NewClock() Clock { return wallClock{start: time.Now()} }

func (c wallClock) Now() time.Duration { return time.Since(c.start) }

// Host is polled and rendered by the Scheduler.
type Host interface {
	// Poll processes pending input and reports whether the user has
	// asked to quit.
	Poll() (quit bool)
	// Render presents the current frame.
	Render()
}

// Rates holds the frequencies, in Hz, of the three cadences the
// Scheduler drives.
type Rates struct {
	CPU     int
	Display int
	Timers  int
}

// DefaultRates runs the CPU at 700 instructions per second and the display
// and timers at 60Hz.
var DefaultRates = Rates{CPU: 700, Display: 60, Timers: 60}

func (r Rates) valid() bool { return r.CPU > 0 && r.Display > 0 && r.Timers > 0 }

// ErrQuit is returned by Scheduler.Run when the host asks to quit.
var ErrQuit = errors.New("quit")

// Scheduler steps a Machine, renders frames and ticks timers, each at its
// own rate, against a Clock.
type Scheduler struct {
	m     *chip8.Machine
	clock Clock
	host  Host

	cycle, frame, timer             time.Duration // intervals
	nextCycle, nextFrame, nextTimer time.Duration // due times
}

// NewScheduler returns a Scheduler for m whose three cadences are all due
// immediately.
func NewScheduler(m *chip8.Machine, c Clock, h Host, r Rates) *Scheduler {
	if !r.valid() {
		panic("system: invalid rates")
	}
	now := c.Now()
	return &Scheduler{
		m:         m,
		clock:     c,
		host:      h,
		cycle:     time.Second / time.Duration(r.CPU),
		frame:     time.Second / time.Duration(r.Display),
		timer:     time.Second / time.Duration(r.Timers),
		nextCycle: now,
		nextFrame: now,
		nextTimer: now,
	}
}

// Iterate runs one iteration of the scheduling loop: it polls the host and
// then, for each cadence that is due, executes one instruction, renders a
// frame or ticks the timers, advancing that cadence's due time by its
// interval. It returns ErrQuit if the host asked to quit, and the machine's
// error if it halted.
func (s *Scheduler) Iterate() error {
	if s.host.Poll() {
		return ErrQuit
	}
	now := s.clock.Now()
	if now >= s.nextCycle {
		if err := s.m.Step(); err != nil {
			return err
		}
		s.nextCycle += s.cycle
	}
	if now >= s.nextFrame {
		s.host.Render()
		s.nextFrame += s.frame
	}
	if now >= s.nextTimer {
		s.m.TickTimers()
		s.nextTimer += s.timer
	}
	return nil
}

// idle returns how long until the next cadence is due.
func (s *Scheduler) idle() time.Duration {
	next := s.nextCycle
	if s.nextFrame < next {
		next = s.nextFrame
	}
	if s.nextTimer < next {
		next = s.nextTimer
	}
	return next - s.clock.Now()
}

// Run iterates until the host quits, the machine halts, or stop is closed,
// in which case it returns nil. Between iterations it sleeps until the next
// cadence is due.
func (s *Scheduler) Run(stop <-chan bool) error {
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		if err := s.Iterate(); err != nil {
			return err
		}
		if d := s.idle(); d > 0 {
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			t.Reset(d)
			select {
			case <-stop:
				return nil
			case <-t.C:
			}
		}
	}
}
