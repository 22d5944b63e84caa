package cpu

// decodeEntry is what the decode table maps an opcode byte to: its base
// cycle cost, the addressing-mode routine that resolves its operand, and
// the operate routine that does the work. Per the design notes, this is a
// compile-time-initialised 256-entry array rather than a map, so decode
// never allocates.
type decodeEntry struct {
	cycles  byte
	mode    addressingMode
	operate operate
}

// decodeTable maps every opcode byte to its decode entry. Entries with a
// nil operate (everything not set below, plus $00/BRK which Step
// intercepts before ever consulting this table) are undocumented or
// illegal opcodes; Step reports them via DecodeError rather than executing
// anything.
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]decodeEntry {
	var t [256]decodeEntry
	set := func(opcode byte, cycles byte, mode addressingMode, op operate) {
		t[opcode] = decodeEntry{cycles: cycles, mode: mode, operate: op}
	}

	set(0x69, 2, modeImmediate, opADC)
	set(0x65, 3, modeZeroPage, opADC)
	set(0x75, 4, modeZeroPageX, opADC)
	set(0x6D, 4, modeAbsolute, opADC)
	set(0x7D, 4, modeAbsoluteX, opADC)
	set(0x79, 4, modeAbsoluteY, opADC)
	set(0x61, 6, modeIndirectX, opADC)
	set(0x71, 5, modeIndirectY, opADC)

	set(0x29, 2, modeImmediate, opAND)
	set(0x25, 3, modeZeroPage, opAND)
	set(0x35, 4, modeZeroPageX, opAND)
	set(0x2D, 4, modeAbsolute, opAND)
	set(0x3D, 4, modeAbsoluteX, opAND)
	set(0x39, 4, modeAbsoluteY, opAND)
	set(0x21, 6, modeIndirectX, opAND)
	set(0x31, 5, modeIndirectY, opAND)

	set(0x0A, 2, modeImplied, opASL)
	set(0x06, 5, modeZeroPage, opASL)
	set(0x16, 6, modeZeroPageX, opASL)
	set(0x0E, 6, modeAbsolute, opASL)
	set(0x1E, 7, modeAbsoluteX, opASL)

	set(0x24, 3, modeZeroPage, opBIT)
	set(0x2C, 4, modeAbsolute, opBIT)

	set(0xC9, 2, modeImmediate, opCMP)
	set(0xC5, 3, modeZeroPage, opCMP)
	set(0xD5, 4, modeZeroPageX, opCMP)
	set(0xCD, 4, modeAbsolute, opCMP)
	set(0xDD, 4, modeAbsoluteX, opCMP)
	set(0xD9, 4, modeAbsoluteY, opCMP)
	set(0xC1, 6, modeIndirectX, opCMP)
	set(0xD1, 5, modeIndirectY, opCMP)

	set(0xE0, 2, modeImmediate, opCPX)
	set(0xE4, 3, modeZeroPage, opCPX)
	set(0xEC, 4, modeAbsolute, opCPX)

	set(0xC0, 2, modeImmediate, opCPY)
	set(0xC4, 3, modeZeroPage, opCPY)
	set(0xCC, 4, modeAbsolute, opCPY)

	set(0xC6, 5, modeZeroPage, opDEC)
	set(0xD6, 6, modeZeroPageX, opDEC)
	set(0xCE, 6, modeAbsolute, opDEC)
	set(0xDE, 7, modeAbsoluteX, opDEC)

	set(0x49, 2, modeImmediate, opEOR)
	set(0x45, 3, modeZeroPage, opEOR)
	set(0x55, 4, modeZeroPageX, opEOR)
	set(0x4D, 4, modeAbsolute, opEOR)
	set(0x5D, 4, modeAbsoluteX, opEOR)
	set(0x59, 4, modeAbsoluteY, opEOR)
	set(0x41, 6, modeIndirectX, opEOR)
	set(0x51, 5, modeIndirectY, opEOR)

	set(0xE6, 5, modeZeroPage, opINC)
	set(0xF6, 6, modeZeroPageX, opINC)
	set(0xEE, 6, modeAbsolute, opINC)
	set(0xFE, 7, modeAbsoluteX, opINC)

	set(0x4C, 3, modeAbsolute, opJMP)
	set(0x6C, 5, modeIndirect, opJMP)
	set(0x20, 6, modeAbsolute, opJSR)

	set(0xA9, 2, modeImmediate, opLDA)
	set(0xA5, 3, modeZeroPage, opLDA)
	set(0xB5, 4, modeZeroPageX, opLDA)
	set(0xAD, 4, modeAbsolute, opLDA)
	set(0xBD, 4, modeAbsoluteX, opLDA)
	set(0xB9, 4, modeAbsoluteY, opLDA)
	set(0xA1, 6, modeIndirectX, opLDA)
	set(0xB1, 5, modeIndirectY, opLDA)

	set(0xA2, 2, modeImmediate, opLDX)
	set(0xA6, 3, modeZeroPage, opLDX)
	set(0xB6, 4, modeZeroPageY, opLDX)
	set(0xAE, 4, modeAbsolute, opLDX)
	set(0xBE, 4, modeAbsoluteY, opLDX)

	set(0xA0, 2, modeImmediate, opLDY)
	set(0xA4, 3, modeZeroPage, opLDY)
	set(0xB4, 4, modeZeroPageX, opLDY)
	set(0xAC, 4, modeAbsolute, opLDY)
	set(0xBC, 4, modeAbsoluteX, opLDY)

	set(0x4A, 2, modeImplied, opLSR)
	set(0x46, 5, modeZeroPage, opLSR)
	set(0x56, 6, modeZeroPageX, opLSR)
	set(0x4E, 6, modeAbsolute, opLSR)
	set(0x5E, 7, modeAbsoluteX, opLSR)

	set(0xEA, 2, modeImplied, opNOP)

	set(0x09, 2, modeImmediate, opORA)
	set(0x05, 3, modeZeroPage, opORA)
	set(0x15, 4, modeZeroPageX, opORA)
	set(0x0D, 4, modeAbsolute, opORA)
	set(0x1D, 4, modeAbsoluteX, opORA)
	set(0x19, 4, modeAbsoluteY, opORA)
	set(0x01, 6, modeIndirectX, opORA)
	set(0x11, 5, modeIndirectY, opORA)

	set(0x2A, 2, modeImplied, opROL)
	set(0x26, 5, modeZeroPage, opROL)
	set(0x36, 6, modeZeroPageX, opROL)
	set(0x2E, 6, modeAbsolute, opROL)
	set(0x3E, 7, modeAbsoluteX, opROL)

	set(0x6A, 2, modeImplied, opROR)
	set(0x66, 5, modeZeroPage, opROR)
	set(0x76, 6, modeZeroPageX, opROR)
	set(0x6E, 6, modeAbsolute, opROR)
	set(0x7E, 7, modeAbsoluteX, opROR)

	set(0x40, 6, modeImplied, opRTI)
	set(0x60, 6, modeImplied, opRTS)

	set(0xE9, 2, modeImmediate, opSBC)
	set(0xE5, 3, modeZeroPage, opSBC)
	set(0xF5, 4, modeZeroPageX, opSBC)
	set(0xED, 4, modeAbsolute, opSBC)
	set(0xFD, 4, modeAbsoluteX, opSBC)
	set(0xF9, 4, modeAbsoluteY, opSBC)
	set(0xE1, 6, modeIndirectX, opSBC)
	set(0xF1, 5, modeIndirectY, opSBC)

	set(0x85, 3, modeZeroPage, opSTA)
	set(0x95, 4, modeZeroPageX, opSTA)
	set(0x8D, 4, modeAbsolute, opSTA)
	set(0x9D, 5, modeAbsoluteX, opSTA)
	set(0x99, 5, modeAbsoluteY, opSTA)
	set(0x81, 6, modeIndirectX, opSTA)
	set(0x91, 6, modeIndirectY, opSTA)

	set(0x86, 3, modeZeroPage, opSTX)
	set(0x96, 4, modeZeroPageY, opSTX)
	set(0x8E, 4, modeAbsolute, opSTX)

	set(0x84, 3, modeZeroPage, opSTY)
	set(0x94, 4, modeZeroPageX, opSTY)
	set(0x8C, 4, modeAbsolute, opSTY)

	set(0x18, 2, modeImplied, opCLC)
	set(0x38, 2, modeImplied, opSEC)
	set(0x58, 2, modeImplied, opCLI)
	set(0x78, 2, modeImplied, opSEI)
	set(0xB8, 2, modeImplied, opCLV)
	set(0xD8, 2, modeImplied, opCLD)
	set(0xF8, 2, modeImplied, opSED)

	set(0xAA, 2, modeImplied, opTAX)
	set(0x8A, 2, modeImplied, opTXA)
	set(0xCA, 2, modeImplied, opDEX)
	set(0xE8, 2, modeImplied, opINX)
	set(0xA8, 2, modeImplied, opTAY)
	set(0x98, 2, modeImplied, opTYA)
	set(0x88, 2, modeImplied, opDEY)
	set(0xC8, 2, modeImplied, opINY)

	set(0x10, 2, modeRelative, opBPL)
	set(0x30, 2, modeRelative, opBMI)
	set(0x50, 2, modeRelative, opBVC)
	set(0x70, 2, modeRelative, opBVS)
	set(0x90, 2, modeRelative, opBCC)
	set(0xB0, 2, modeRelative, opBCS)
	set(0xD0, 2, modeRelative, opBNE)
	set(0xF0, 2, modeRelative, opBEQ)

	set(0x9A, 2, modeImplied, opTXS)
	set(0xBA, 2, modeImplied, opTSX)
	set(0x48, 3, modeImplied, opPHA)
	set(0x68, 4, modeImplied, opPLA)
	set(0x08, 3, modeImplied, opPHP)
	set(0x28, 4, modeImplied, opPLP)

	return t
}
