package chip8

// Memory layout.
const (
	MemSize      = 0x1000
	FontStart    = 0x000
	GlyphSize    = 5
	ProgramStart = 0x200
	MaxROMSize   = MemSize - ProgramStart
)

// Memory is the machine's addressable memory.
type Memory [MemSize]byte

// span returns n bytes of memory starting at addr, panicking with
// OutOfBounds if any of them lie outside memory.
func (m *Memory) span(addr, n int) []byte {
	if addr < 0 || n < 0 || addr+n > len(m) {
		panic(OutOfBounds)
	}
	return m[addr : addr+n]
}

// Registers holds V0 through VF.
type Registers [16]byte

// VF is the index of the flag register. Operations that report a carry,
// borrow, shifted-out bit or collision write it after writing their result,
// so the flag wins if VF was also the destination.
const VF = 0xf

func (r *Registers) setFlag(b bool) {
	if b {
		r[VF] = 1
	} else {
		r[VF] = 0
	}
}

// Timers holds the delay and sound timers, which count down to zero
// at 60Hz.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements each non-zero timer.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// font holds the glyphs for the hex digits 0-F, loaded at FontStart.
var font = [16 * GlyphSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
