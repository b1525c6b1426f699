package chip8

// Display resolution in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is a monochrome framebuffer the machine draws into.
type Display interface {
	// Clear turns every pixel off.
	Clear()
	// Toggle flips the pixel at (x, y), wrapping coordinates at
	// Width and Height, and returns its new state.
	Toggle(x, y int) (on bool)
}

// Keypad reports the state of the 16 keys of the hex keypad.
type Keypad interface {
	IsPressed(key byte) bool
	// Pressed returns the set of keys that are down, with key k at bit k.
	Pressed() uint16
}

// Tone is switched on while the sound timer is non-zero.
type Tone interface {
	SetTone(on bool)
}
