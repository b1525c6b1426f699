package chip8

import "fmt"

// Op represents a CHIP-8 opcode.
type Op uint16

// X returns the register index in bits 8-11.
func (o Op) X() byte { return byte(o>>8) & 0xf }

// Y returns the register index in bits 4-7.
func (o Op) Y() byte { return byte(o>>4) & 0xf }

// N returns the 4-bit constant in bits 0-3.
func (o Op) N() byte { return byte(o) & 0xf }

// NN returns the 8-bit constant in bits 0-7.
func (o Op) NN() byte { return byte(o) }

// NNN returns the 12-bit address in bits 0-11.
func (o Op) NNN() uint16 { return uint16(o) & 0xfff }

// Kind identifies one of the operations of the instruction set.
type Kind byte

const (
	Unsupported Kind = iota

	CLS  // 00E0 clear display
	RET  // 00EE return from subroutine
	JP   // 1NNN jump
	CALL // 2NNN call subroutine
	SEB  // 3XNN skip if VX == NN
	SNEB // 4XNN skip if VX != NN
	SE   // 5XY0 skip if VX == VY
	LDB  // 6XNN VX = NN
	ADDB // 7XNN VX += NN
	MOV  // 8XY0 VX = VY
	OR   // 8XY1
	AND  // 8XY2
	XOR  // 8XY3
	ADD  // 8XY4 with carry
	SUB  // 8XY5 VX -= VY
	SHR  // 8XY6
	SUBN // 8XY7 VX = VY - VX
	SHL  // 8XYE
	SNE  // 9XY0 skip if VX != VY
	LDI  // ANNN I = NNN
	JPO  // BNNN jump to NNN + V0
	RND  // CXNN
	DRW  // DXYN
	SKP  // EX9E skip if key VX down
	SKNP // EXA1 skip if key VX up
	GDT  // FX07 VX = delay
	WKEY // FX0A wait for key
	SDT  // FX15 delay = VX
	SST  // FX18 sound = VX
	ADDI // FX1E I += VX
	FONT // FX29 I = glyph address of VX
	BCD  // FX33
	STM  // FX55 store V0..VX at I
	LDM  // FX65 load V0..VX from I

	numKinds
)

// Kind decodes the operation class of o.
func (o Op) Kind() Kind {
	switch o >> 12 {
	case 0x0:
		switch o {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEB
	case 0x4:
		return SNEB
	case 0x5:
		if o.N() == 0 {
			return SE
		}
	case 0x6:
		return LDB
	case 0x7:
		return ADDB
	case 0x8:
		switch o.N() {
		case 0x0:
			return MOV
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADD
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if o.N() == 0 {
			return SNE
		}
	case 0xa:
		return LDI
	case 0xb:
		return JPO
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch o.NN() {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
	case 0xf:
		switch o.NN() {
		case 0x07:
			return GDT
		case 0x0a:
			return WKEY
		case 0x15:
			return SDT
		case 0x18:
			return SST
		case 0x1e:
			return ADDI
		case 0x29:
			return FONT
		case 0x33:
			return BCD
		case 0x55:
			return STM
		case 0x65:
			return LDM
		}
	}
	return Unsupported
}

// String returns the assembler mnemonic for o, for example "ADD V1, V2".
func (o Op) String() string {
	x, y := o.X(), o.Y()
	switch o.Kind() {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JP:
		return fmt.Sprintf("JP %.3x", o.NNN())
	case CALL:
		return fmt.Sprintf("CALL %.3x", o.NNN())
	case SEB:
		return fmt.Sprintf("SE V%X, %.2x", x, o.NN())
	case SNEB:
		return fmt.Sprintf("SNE V%X, %.2x", x, o.NN())
	case SE:
		return fmt.Sprintf("SE V%X, V%X", x, y)
	case LDB:
		return fmt.Sprintf("LD V%X, %.2x", x, o.NN())
	case ADDB:
		return fmt.Sprintf("ADD V%X, %.2x", x, o.NN())
	case MOV:
		return fmt.Sprintf("LD V%X, V%X", x, y)
	case OR:
		return fmt.Sprintf("OR V%X, V%X", x, y)
	case AND:
		return fmt.Sprintf("AND V%X, V%X", x, y)
	case XOR:
		return fmt.Sprintf("XOR V%X, V%X", x, y)
	case ADD:
		return fmt.Sprintf("ADD V%X, V%X", x, y)
	case SUB:
		return fmt.Sprintf("SUB V%X, V%X", x, y)
	case SHR:
		return fmt.Sprintf("SHR V%X, V%X", x, y)
	case SUBN:
		return fmt.Sprintf("SUBN V%X, V%X", x, y)
	case SHL:
		return fmt.Sprintf("SHL V%X, V%X", x, y)
	case SNE:
		return fmt.Sprintf("SNE V%X, V%X", x, y)
	case LDI:
		return fmt.Sprintf("LD I, %.3x", o.NNN())
	case JPO:
		return fmt.Sprintf("JP V0, %.3x", o.NNN())
	case RND:
		return fmt.Sprintf("RND V%X, %.2x", x, o.NN())
	case DRW:
		return fmt.Sprintf("DRW V%X, V%X, %X", x, y, o.N())
	case SKP:
		return fmt.Sprintf("SKP V%X", x)
	case SKNP:
		return fmt.Sprintf("SKNP V%X", x)
	case GDT:
		return fmt.Sprintf("LD V%X, DT", x)
	case WKEY:
		return fmt.Sprintf("LD V%X, K", x)
	case SDT:
		return fmt.Sprintf("LD DT, V%X", x)
	case SST:
		return fmt.Sprintf("LD ST, V%X", x)
	case ADDI:
		return fmt.Sprintf("ADD I, V%X", x)
	case FONT:
		return fmt.Sprintf("LD F, V%X", x)
	case BCD:
		return fmt.Sprintf("LD B, V%X", x)
	case STM:
		return fmt.Sprintf("LD [I], V%X", x)
	case LDM:
		return fmt.Sprintf("LD V%X, [I]", x)
	}
	return fmt.Sprintf("DW %.4x", uint16(o))
}

var kindNames = [numKinds]string{
	Unsupported: "???",
	CLS:         "CLS",
	RET:         "RET",
	JP:          "JP",
	CALL:        "CALL",
	SEB:         "SEB",
	SNEB:        "SNEB",
	SE:          "SE",
	LDB:         "LDB",
	ADDB:        "ADDB",
	MOV:         "MOV",
	OR:          "OR",
	AND:         "AND",
	XOR:         "XOR",
	ADD:         "ADD",
	SUB:         "SUB",
	SHR:         "SHR",
	SUBN:        "SUBN",
	SHL:         "SHL",
	SNE:         "SNE",
	LDI:         "LDI",
	JPO:         "JPO",
	RND:         "RND",
	DRW:         "DRW",
	SKP:         "SKP",
	SKNP:        "SKNP",
	GDT:         "GDT",
	WKEY:        "WKEY",
	SDT:         "SDT",
	SST:         "SST",
	ADDI:        "ADDI",
	FONT:        "FONT",
	BCD:         "BCD",
	STM:         "STM",
	LDM:         "LDM",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}
