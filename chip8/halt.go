package chip8

import (
	"errors"
	"fmt"
)

// ErrROMTooLarge is returned by NewMachine if the rom does not fit between
// ProgramStart and the end of memory.
var ErrROMTooLarge = errors.New("rom too large")

// HaltError is returned by Step if the instruction at Addr cannot be
// executed. The machine should not be stepped again.
type HaltError struct {
	HaltCode
	Op   Op
	Addr uint16
}

func (e HaltError) Error() string {
	return fmt.Sprintf("%s executing %.4x (%s) at %.3x", e.HaltCode, uint16(e.Op), e.Op, e.Addr)
}

// HaltCode signifies the type of condition that halted execution.
type HaltCode byte

const (
	UnsupportedOpcode HaltCode = 0x01
	StackUnderflow    HaltCode = 0x02
	StackOverflow     HaltCode = 0x03
	OutOfBounds       HaltCode = 0x04
	NoDevice          HaltCode = 0x05
)

func (c HaltCode) String() string {
	if s, ok := map[HaltCode]string{
		UnsupportedOpcode: "unsupported opcode",
		StackUnderflow:    "stack underflow",
		StackOverflow:     "stack overflow",
		OutOfBounds:       "memory access out of bounds",
		NoDevice:          "no device attached",
	}[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%.2x)", byte(c))
}
