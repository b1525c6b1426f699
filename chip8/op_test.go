package chip8

import "testing"

func TestOpFields(t *testing.T) {
	o := Op(0xd12a)
	if o.X() != 0x1 || o.Y() != 0x2 || o.N() != 0xa || o.NN() != 0x2a || o.NNN() != 0x12a {
		t.Errorf("fields of %.4x: X=%x Y=%x N=%x NN=%.2x NNN=%.3x",
			uint16(o), o.X(), o.Y(), o.N(), o.NN(), o.NNN())
	}
}

func TestOpKind(t *testing.T) {
	for op, want := range map[Op]Kind{
		0x00e0: CLS,
		0x00ee: RET,
		0x0000: Unsupported,
		0x0123: Unsupported,
		0x1234: JP,
		0x2234: CALL,
		0x3a12: SEB,
		0x4a12: SNEB,
		0x5ab0: SE,
		0x5ab1: Unsupported,
		0x6a12: LDB,
		0x7a12: ADDB,
		0x8ab0: MOV,
		0x8ab1: OR,
		0x8ab2: AND,
		0x8ab3: XOR,
		0x8ab4: ADD,
		0x8ab5: SUB,
		0x8ab6: SHR,
		0x8ab7: SUBN,
		0x8ab8: Unsupported,
		0x8abe: SHL,
		0x9ab0: SNE,
		0x9ab1: Unsupported,
		0xa123: LDI,
		0xb123: JPO,
		0xca12: RND,
		0xdab5: DRW,
		0xea9e: SKP,
		0xeaa1: SKNP,
		0xea00: Unsupported,
		0xfa07: GDT,
		0xfa0a: WKEY,
		0xfa15: SDT,
		0xfa18: SST,
		0xfa1e: ADDI,
		0xfa29: FONT,
		0xfa33: BCD,
		0xfa55: STM,
		0xfa65: LDM,
		0xfa75: Unsupported,
	} {
		if got := op.Kind(); got != want {
			t.Errorf("Op(%.4x).Kind() returned %v, want %v", uint16(op), got, want)
		}
	}
}

// Check that every operation is reachable by some opcode and that every
// opcode has a mnemonic.
func TestOpString(t *testing.T) {
	seen := map[Kind]bool{}
	for i := 0; i <= 0xffff; i++ {
		o := Op(i)
		k := o.Kind()
		seen[k] = true
		if o.String() == "" {
			t.Errorf("Op(%.4x).String() is empty", i)
		}
		if k.String() == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
	}
	for k := Kind(0); k < numKinds; k++ {
		if !seen[k] {
			t.Errorf("no opcode decodes to %v", k)
		}
	}
	for o, want := range map[Op]string{
		0x00e0: "CLS",
		0x8124: "ADD V1, V2",
		0x6a0a: "LD VA, 0a",
		0xd125: "DRW V1, V2, 5",
		0xf355: "LD [I], V3",
		0x0123: "DW 0123",
	} {
		if got := o.String(); got != want {
			t.Errorf("Op(%.4x).String() returned %q, want %q", uint16(o), got, want)
		}
	}
}

func TestCallStackString(t *testing.T) {
	var s CallStack
	s.push(0x202)
	s.push(0x30a)
	if got, want := s.String(), "( 202 30a )"; got != want {
		t.Errorf("String() returned %q, want %q", got, want)
	}
}
