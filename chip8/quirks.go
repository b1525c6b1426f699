package chip8

// Quirks selects between behaviours that differ across historical
// interpreters. They are fixed when the Machine is created.
type Quirks struct {
	// ShiftCopiesY makes 8XY6 and 8XYE set VX to VY before shifting.
	ShiftCopiesY bool

	// KeyWait selects when FX0A completes.
	KeyWait KeyWaitMode

	// IndexOverflowFlag makes FX1E set VF to 1 if I exceeds 0xFFF and to
	// 0 otherwise. If false FX1E leaves VF alone.
	IndexOverflowFlag bool
}

// DefaultQuirks matches the behaviour most ROMs expect.
var DefaultQuirks = Quirks{
	KeyWait:           KeyWaitRelease,
	IndexOverflowFlag: true,
}

// KeyWaitMode selects the key transition that ends an FX0A wait.
type KeyWaitMode byte

const (
	// KeyWaitRelease completes when a key that went down during the wait
	// is released, as on the COSMAC VIP.
	KeyWaitRelease KeyWaitMode = iota
	// KeyWaitPress completes as soon as a key goes down.
	KeyWaitPress
)

func (m KeyWaitMode) String() string {
	switch m {
	case KeyWaitRelease:
		return "release"
	case KeyWaitPress:
		return "press"
	}
	return "unknown"
}
