// Package disassemble renders the instruction at a given address as a
// mnemonic/operand string, for host tooling that wants to show guest code
// without executing it. It never follows jumps or loads memory itself; it
// only reads through the public Bus surface.
//
// Restricted, like the interpreter it describes, to the documented opcode
// set: unknown bytes render as "???" rather than guessing at undocumented
// behavior.
package disassemble

import "fmt"

// Reader is the minimal memory surface Step needs. *mem.Bus satisfies it
// directly; callers wrapping a cpu.CPU can adapt its ReadMemory method.
type Reader interface {
	Read(addr uint16) byte
}

type addressingMode int

const (
	modeImplied addressingMode = iota
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

type entry struct {
	mnemonic string
	mode     addressingMode
}

// table mirrors cpu's decode table one-for-one for the documented opcode
// set (plus BRK, which cpu handles outside its table); it exists separately
// so this package depends on neither cpu nor mem.
var table = buildTable()

func buildTable() [256]entry {
	var t [256]entry
	set := func(opcode byte, mnemonic string, mode addressingMode) {
		t[opcode] = entry{mnemonic: mnemonic, mode: mode}
	}

	set(0x00, "BRK", modeImplied)
	set(0x69, "ADC", modeImmediate)
	set(0x65, "ADC", modeZeroPage)
	set(0x75, "ADC", modeZeroPageX)
	set(0x6D, "ADC", modeAbsolute)
	set(0x7D, "ADC", modeAbsoluteX)
	set(0x79, "ADC", modeAbsoluteY)
	set(0x61, "ADC", modeIndirectX)
	set(0x71, "ADC", modeIndirectY)
	set(0x29, "AND", modeImmediate)
	set(0x25, "AND", modeZeroPage)
	set(0x35, "AND", modeZeroPageX)
	set(0x2D, "AND", modeAbsolute)
	set(0x3D, "AND", modeAbsoluteX)
	set(0x39, "AND", modeAbsoluteY)
	set(0x21, "AND", modeIndirectX)
	set(0x31, "AND", modeIndirectY)
	set(0x0A, "ASL", modeImplied)
	set(0x06, "ASL", modeZeroPage)
	set(0x16, "ASL", modeZeroPageX)
	set(0x0E, "ASL", modeAbsolute)
	set(0x1E, "ASL", modeAbsoluteX)
	set(0x24, "BIT", modeZeroPage)
	set(0x2C, "BIT", modeAbsolute)
	set(0x10, "BPL", modeRelative)
	set(0x30, "BMI", modeRelative)
	set(0x50, "BVC", modeRelative)
	set(0x70, "BVS", modeRelative)
	set(0x90, "BCC", modeRelative)
	set(0xB0, "BCS", modeRelative)
	set(0xD0, "BNE", modeRelative)
	set(0xF0, "BEQ", modeRelative)
	set(0x18, "CLC", modeImplied)
	set(0x38, "SEC", modeImplied)
	set(0x58, "CLI", modeImplied)
	set(0x78, "SEI", modeImplied)
	set(0xB8, "CLV", modeImplied)
	set(0xD8, "CLD", modeImplied)
	set(0xF8, "SED", modeImplied)
	set(0xC9, "CMP", modeImmediate)
	set(0xC5, "CMP", modeZeroPage)
	set(0xD5, "CMP", modeZeroPageX)
	set(0xCD, "CMP", modeAbsolute)
	set(0xDD, "CMP", modeAbsoluteX)
	set(0xD9, "CMP", modeAbsoluteY)
	set(0xC1, "CMP", modeIndirectX)
	set(0xD1, "CMP", modeIndirectY)
	set(0xE0, "CPX", modeImmediate)
	set(0xE4, "CPX", modeZeroPage)
	set(0xEC, "CPX", modeAbsolute)
	set(0xC0, "CPY", modeImmediate)
	set(0xC4, "CPY", modeZeroPage)
	set(0xCC, "CPY", modeAbsolute)
	set(0xC6, "DEC", modeZeroPage)
	set(0xD6, "DEC", modeZeroPageX)
	set(0xCE, "DEC", modeAbsolute)
	set(0xDE, "DEC", modeAbsoluteX)
	set(0xCA, "DEX", modeImplied)
	set(0x88, "DEY", modeImplied)
	set(0x49, "EOR", modeImmediate)
	set(0x45, "EOR", modeZeroPage)
	set(0x55, "EOR", modeZeroPageX)
	set(0x4D, "EOR", modeAbsolute)
	set(0x5D, "EOR", modeAbsoluteX)
	set(0x59, "EOR", modeAbsoluteY)
	set(0x41, "EOR", modeIndirectX)
	set(0x51, "EOR", modeIndirectY)
	set(0xE6, "INC", modeZeroPage)
	set(0xF6, "INC", modeZeroPageX)
	set(0xEE, "INC", modeAbsolute)
	set(0xFE, "INC", modeAbsoluteX)
	set(0xE8, "INX", modeImplied)
	set(0xC8, "INY", modeImplied)
	set(0x4C, "JMP", modeAbsolute)
	set(0x6C, "JMP", modeIndirect)
	set(0x20, "JSR", modeAbsolute)
	set(0xA9, "LDA", modeImmediate)
	set(0xA5, "LDA", modeZeroPage)
	set(0xB5, "LDA", modeZeroPageX)
	set(0xAD, "LDA", modeAbsolute)
	set(0xBD, "LDA", modeAbsoluteX)
	set(0xB9, "LDA", modeAbsoluteY)
	set(0xA1, "LDA", modeIndirectX)
	set(0xB1, "LDA", modeIndirectY)
	set(0xA2, "LDX", modeImmediate)
	set(0xA6, "LDX", modeZeroPage)
	set(0xB6, "LDX", modeZeroPageY)
	set(0xAE, "LDX", modeAbsolute)
	set(0xBE, "LDX", modeAbsoluteY)
	set(0xA0, "LDY", modeImmediate)
	set(0xA4, "LDY", modeZeroPage)
	set(0xB4, "LDY", modeZeroPageX)
	set(0xAC, "LDY", modeAbsolute)
	set(0xBC, "LDY", modeAbsoluteX)
	set(0x4A, "LSR", modeImplied)
	set(0x46, "LSR", modeZeroPage)
	set(0x56, "LSR", modeZeroPageX)
	set(0x4E, "LSR", modeAbsolute)
	set(0x5E, "LSR", modeAbsoluteX)
	set(0xEA, "NOP", modeImplied)
	set(0x09, "ORA", modeImmediate)
	set(0x05, "ORA", modeZeroPage)
	set(0x15, "ORA", modeZeroPageX)
	set(0x0D, "ORA", modeAbsolute)
	set(0x1D, "ORA", modeAbsoluteX)
	set(0x19, "ORA", modeAbsoluteY)
	set(0x01, "ORA", modeIndirectX)
	set(0x11, "ORA", modeIndirectY)
	set(0x48, "PHA", modeImplied)
	set(0x08, "PHP", modeImplied)
	set(0x68, "PLA", modeImplied)
	set(0x28, "PLP", modeImplied)
	set(0x2A, "ROL", modeImplied)
	set(0x26, "ROL", modeZeroPage)
	set(0x36, "ROL", modeZeroPageX)
	set(0x2E, "ROL", modeAbsolute)
	set(0x3E, "ROL", modeAbsoluteX)
	set(0x6A, "ROR", modeImplied)
	set(0x66, "ROR", modeZeroPage)
	set(0x76, "ROR", modeZeroPageX)
	set(0x6E, "ROR", modeAbsolute)
	set(0x7E, "ROR", modeAbsoluteX)
	set(0x40, "RTI", modeImplied)
	set(0x60, "RTS", modeImplied)
	set(0xE9, "SBC", modeImmediate)
	set(0xE5, "SBC", modeZeroPage)
	set(0xF5, "SBC", modeZeroPageX)
	set(0xED, "SBC", modeAbsolute)
	set(0xFD, "SBC", modeAbsoluteX)
	set(0xF9, "SBC", modeAbsoluteY)
	set(0xE1, "SBC", modeIndirectX)
	set(0xF1, "SBC", modeIndirectY)
	set(0x85, "STA", modeZeroPage)
	set(0x95, "STA", modeZeroPageX)
	set(0x8D, "STA", modeAbsolute)
	set(0x9D, "STA", modeAbsoluteX)
	set(0x99, "STA", modeAbsoluteY)
	set(0x81, "STA", modeIndirectX)
	set(0x91, "STA", modeIndirectY)
	set(0x86, "STX", modeZeroPage)
	set(0x96, "STX", modeZeroPageY)
	set(0x8E, "STX", modeAbsolute)
	set(0x84, "STY", modeZeroPage)
	set(0x94, "STY", modeZeroPageX)
	set(0x8C, "STY", modeAbsolute)
	set(0xAA, "TAX", modeImplied)
	set(0xA8, "TAY", modeImplied)
	set(0xBA, "TSX", modeImplied)
	set(0x8A, "TXA", modeImplied)
	set(0x9A, "TXS", modeImplied)
	set(0x98, "TYA", modeImplied)

	return t
}

func width(mode addressingMode) int {
	switch mode {
	case modeImplied:
		return 1
	case modeImmediate, modeZeroPage, modeZeroPageX, modeZeroPageY,
		modeIndirectX, modeIndirectY, modeRelative:
		return 2
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 3
	default:
		return 1
	}
}

// Step renders the instruction at pc and reports how many bytes it
// occupies. It reads at most two bytes past pc, regardless of whether the
// instruction actually uses them, so pc+2 must be a valid address.
func Step(pc uint16, mem Reader) (string, int) {
	opcode := mem.Read(pc)
	e := table[opcode]
	if e.mnemonic == "" {
		return fmt.Sprintf("%04X  %02X       ???", pc, opcode), 1
	}

	n := width(e.mode)
	operand1 := mem.Read(pc + 1)
	operand2 := mem.Read(pc + 2)

	var operand string
	switch e.mode {
	case modeImplied:
		operand = ""
	case modeImmediate:
		operand = fmt.Sprintf("#$%02X", operand1)
	case modeZeroPage:
		operand = fmt.Sprintf("$%02X", operand1)
	case modeZeroPageX:
		operand = fmt.Sprintf("$%02X,X", operand1)
	case modeZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", operand1)
	case modeAbsolute:
		operand = fmt.Sprintf("$%02X%02X", operand2, operand1)
	case modeAbsoluteX:
		operand = fmt.Sprintf("$%02X%02X,X", operand2, operand1)
	case modeAbsoluteY:
		operand = fmt.Sprintf("$%02X%02X,Y", operand2, operand1)
	case modeIndirect:
		operand = fmt.Sprintf("($%02X%02X)", operand2, operand1)
	case modeIndirectX:
		operand = fmt.Sprintf("($%02X,X)", operand1)
	case modeIndirectY:
		operand = fmt.Sprintf("($%02X),Y", operand1)
	case modeRelative:
		target := uint16(int32(pc) + 2 + int32(int8(operand1)))
		operand = fmt.Sprintf("$%02X ($%04X)", operand1, target)
	}

	return fmt.Sprintf("%04X  %s %s", pc, e.mnemonic, operand), n
}
