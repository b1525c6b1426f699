// Package chip8 provides an implementation of the CHIP-8 virtual machine,
// called Machine, that can be used to execute CHIP-8 programs.
package chip8

import (
	"math/bits"
	"math/rand"
	"time"
)

// Machine is an implementation of the CHIP-8 virtual machine.
type Machine struct {
	Mem    Memory
	V      Registers
	I      uint16
	PC     uint16
	Stack  CallStack
	Timers Timers

	Quirks Quirks
	Rand   *rand.Rand

	// Display and Keys must be set before executing an instruction that
	// uses them; Step halts with NoDevice otherwise. Tone is optional.
	Display Display
	Keys    Keypad
	Tone    Tone

	wait   keyWait
	toneOn bool
}

// keyWait tracks the keypad while an FX0A instruction is pending.
type keyWait struct {
	active  bool
	prev    uint16 // keys down at the previous step
	tracked uint16 // keys that went down during the wait
}

// NewMachine returns a CHIP-8 machine with the font loaded at FontStart and
// the given rom loaded at ProgramStart. The caller should set Display and
// Keys before calling Step.
func NewMachine(rom []byte, q Quirks) (*Machine, error) {
	if len(rom) > MaxROMSize {
		return nil, ErrROMTooLarge
	}
	m := &Machine{
		PC:     ProgramStart,
		Quirks: q,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	copy(m.Mem[FontStart:], font[:])
	copy(m.Mem[ProgramStart:], rom)
	return m, nil
}

// Waiting reports whether the machine is stalled on an FX0A instruction.
func (m *Machine) Waiting() bool { return m.wait.active }

// Step fetches and executes the instruction at m.PC. It only returns a
// non-nil error, always a HaltError, if it encounters a halt condition.
func (m *Machine) Step() (err error) {
	var (
		op   Op
		opPC = m.PC
	)
	defer func() {
		if e := recover(); e != nil {
			if code, ok := e.(HaltCode); ok {
				err = HaltError{
					Addr:     opPC,
					Op:       op,
					HaltCode: code,
				}
			} else {
				panic(e)
			}
		}
	}()

	b := m.Mem.span(int(m.PC), 2)
	op = Op(short(b[0], b[1]))
	m.PC += 2

	m.exec(op)
	return nil
}

// TickTimers decrements the delay and sound timers and updates the tone.
func (m *Machine) TickTimers() {
	m.Timers.Tick()
	m.updateTone()
}

func (m *Machine) updateTone() {
	on := m.Timers.Sound > 0
	if on == m.toneOn {
		return
	}
	m.toneOn = on
	if m.Tone != nil {
		m.Tone.SetTone(on)
	}
}

func (m *Machine) skipIf(b bool) {
	if b {
		m.PC += 2
	}
}

func (m *Machine) exec(op Op) {
	var (
		v    = &m.V
		x, y = op.X(), op.Y()
	)
	switch op.Kind() {
	case CLS:
		m.display().Clear()
	case RET:
		m.PC = m.Stack.pop()
	case JP:
		m.PC = op.NNN()
	case CALL:
		m.Stack.push(m.PC)
		m.PC = op.NNN()
	case SEB:
		m.skipIf(v[x] == op.NN())
	case SNEB:
		m.skipIf(v[x] != op.NN())
	case SE:
		m.skipIf(v[x] == v[y])
	case LDB:
		v[x] = op.NN()
	case ADDB:
		v[x] += op.NN()
	case MOV:
		v[x] = v[y]
	case OR:
		v[x] |= v[y]
	case AND:
		v[x] &= v[y]
	case XOR:
		v[x] ^= v[y]
	case ADD:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = byte(sum)
		v.setFlag(sum > 0xff)
	case SUB:
		noBorrow := v[x] >= v[y]
		v[x] -= v[y]
		v.setFlag(noBorrow)
	case SUBN:
		noBorrow := v[y] >= v[x]
		v[x] = v[y] - v[x]
		v.setFlag(noBorrow)
	case SHR:
		if m.Quirks.ShiftCopiesY {
			v[x] = v[y]
		}
		b := v[x]
		v[x] = b >> 1
		v[VF] = b & 0x01
	case SHL:
		if m.Quirks.ShiftCopiesY {
			v[x] = v[y]
		}
		b := v[x]
		v[x] = b << 1
		v[VF] = b >> 7
	case SNE:
		m.skipIf(v[x] != v[y])
	case LDI:
		m.I = op.NNN()
	case JPO:
		m.PC = op.NNN() + uint16(v[0])
	case RND:
		v[x] = byte(m.Rand.Intn(0x100)) & op.NN()
	case DRW:
		m.draw(int(v[x]), int(v[y]), m.Mem.span(int(m.I), int(op.N())))
	case SKP:
		m.skipIf(m.keys().IsPressed(v[x]))
	case SKNP:
		m.skipIf(!m.keys().IsPressed(v[x]))
	case GDT:
		v[x] = m.Timers.Delay
	case WKEY:
		if !m.awaitKey(x) {
			m.PC -= 2
		}
	case SDT:
		m.Timers.Delay = v[x]
	case SST:
		m.Timers.Sound = v[x]
		m.updateTone()
	case ADDI:
		sum := int(m.I) + int(v[x])
		if sum > 0xffff {
			panic(OutOfBounds)
		}
		m.I = uint16(sum)
		if m.Quirks.IndexOverflowFlag {
			v.setFlag(sum > 0xfff)
		}
	case FONT:
		m.I = FontStart + uint16(v[x])*GlyphSize
	case BCD:
		b := m.Mem.span(int(m.I), 3)
		b[0] = v[x] / 100
		b[1] = v[x] / 10 % 10
		b[2] = v[x] % 10
	case STM:
		copy(m.Mem.span(int(m.I), int(x)+1), v[:x+1])
	case LDM:
		copy(v[:x+1], m.Mem.span(int(m.I), int(x)+1))
	default:
		panic(UnsupportedOpcode)
	}
}

// draw XORs sprite onto the display with its top-left corner at (x, y),
// setting VF if any pixel is turned off.
func (m *Machine) draw(x, y int, sprite []byte) {
	d := m.display()
	m.V[VF] = 0
	for row, b := range sprite {
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			if !d.Toggle((x+col)%Width, (y+row)%Height) {
				m.V[VF] = 1
			}
		}
	}
}

// awaitKey advances the FX0A wait state and reports whether the wait is
// over, in which case the key is stored in V[x].
func (m *Machine) awaitKey(x byte) bool {
	var (
		w   = &m.wait
		cur = m.keys().Pressed()
	)
	if !w.active {
		*w = keyWait{active: true, prev: cur}
		return false
	}
	down := cur &^ w.prev
	w.tracked |= down
	w.prev = cur

	var done uint16
	switch m.Quirks.KeyWait {
	case KeyWaitPress:
		done = down
	default:
		done = w.tracked &^ cur
	}
	if done == 0 {
		return false
	}
	m.V[x] = byte(bits.TrailingZeros16(done))
	*w = keyWait{}
	return true
}

func (m *Machine) display() Display {
	if m.Display == nil {
		panic(NoDevice)
	}
	return m.Display
}

func (m *Machine) keys() Keypad {
	if m.Keys == nil {
		panic(NoDevice)
	}
	return m.Keys
}

func short(hi, lo byte) uint16 {
	return uint16(hi)<<8 + uint16(lo)
}
