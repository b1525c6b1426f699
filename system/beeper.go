package system

import "sync"

// Beeper implements chip8.Tone by ringing a bell each time the tone
// switches on.
type Beeper struct {
	mu   sync.Mutex
	ring func()
	on   bool
}

// SetRing sets the function called when the tone switches on.
func (b *Beeper) SetRing(ring func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring = ring
}

func (b *Beeper) SetTone(on bool) {
	b.mu.Lock()
	ring := on && !b.on
	b.on = on
	f := b.ring
	b.mu.Unlock()
	if ring && f != nil {
		f()
	}
}

// On reports whether the tone is on.
func (b *Beeper) On() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.on
}
