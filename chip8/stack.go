package chip8

import (
	"fmt"
	"strings"
)

// StackDepth is the number of return addresses a CallStack can hold.
const StackDepth = 16

// CallStack holds subroutine return addresses.
type CallStack struct {
	Addrs [StackDepth]uint16
	Ptr   byte
}

func (s *CallStack) push(addr uint16) {
	if int(s.Ptr) == len(s.Addrs) {
		panic(StackOverflow)
	}
	s.Addrs[s.Ptr] = addr
	s.Ptr++
}

func (s *CallStack) pop() uint16 {
	if s.Ptr == 0 {
		panic(StackUnderflow)
	}
	s.Ptr--
	return s.Addrs[s.Ptr]
}

// Len returns the number of addresses on the stack.
func (s *CallStack) Len() int { return int(s.Ptr) }

func (s CallStack) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, v := range s.Addrs[:s.Ptr] {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%.3x", v)
	}
	b.WriteByte(' ')
	b.WriteByte(')')
	return b.String()
}
