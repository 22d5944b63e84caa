package cpu

// An addressingMode resolves the operand for the instruction currently
// being decoded: it either sets c.implied (operand is A) or advances PC
// past the operand bytes and sets c.addressed to the effective address.
// PC advancement is centralized here rather than duplicated per opcode.
type addressingMode func(c *CPU)

func modeImplied(c *CPU) {
	c.implied = true
}

func modeImmediate(c *CPU) {
	c.addressed = c.PC
	c.PC++
}

func modeZeroPage(c *CPU) {
	c.addressed = uint16(c.bus.Read(c.PC))
	c.PC++
}

func modeZeroPageX(c *CPU) {
	c.addressed = uint16(c.bus.Read(c.PC) + c.X)
	c.PC++
}

func modeZeroPageY(c *CPU) {
	c.addressed = uint16(c.bus.Read(c.PC) + c.Y)
	c.PC++
}

func modeAbsolute(c *CPU) {
	c.addressed = c.bus.ReadWord(c.PC)
	c.PC += 2
}

func modeAbsoluteX(c *CPU) {
	c.addressed = c.bus.ReadWord(c.PC) + uint16(c.X)
	c.PC += 2
}

func modeAbsoluteY(c *CPU) {
	c.addressed = c.bus.ReadWord(c.PC) + uint16(c.Y)
	c.PC += 2
}

// modeIndirect reads a pointer at PC and dereferences it for the effective
// address. Used only by JMP. The famous $xxFF page-boundary wraparound bug
// of real silicon is not reproduced; Bus.ReadWord always does the
// arithmetically correct thing.
func modeIndirect(c *CPU) {
	ptr := c.bus.ReadWord(c.PC)
	c.PC += 2
	c.addressed = c.bus.ReadWord(ptr)
}

// modeIndirectX computes the zero-page pointer (operand + X) mod 256, then
// dereferences it. Both bytes of the pointer are read from zero page, so the
// high byte wraps at $FF back to $00 rather than spilling into page one.
func modeIndirectX(c *CPU) {
	zp := c.bus.Read(c.PC) + c.X
	c.PC++
	c.addressed = c.readWordZeroPage(zp)
}

// modeIndirectY dereferences the zero-page pointer at the operand byte,
// then adds Y to the result. The pointer's two bytes wrap within zero page;
// the addition of Y is allowed to cross a page boundary.
func modeIndirectY(c *CPU) {
	zp := c.bus.Read(c.PC)
	c.PC++
	c.addressed = c.readWordZeroPage(zp) + uint16(c.Y)
}

// modeRelative resolves a branch target from a signed 8-bit operand,
// relative to PC after the operand has been consumed. Only the branch
// instructions use it; whether the branch is actually taken is decided by
// the operate routine, which reads addressed itself.
func modeRelative(c *CPU) {
	offset := int8(c.bus.Read(c.PC))
	c.PC++
	c.addressed = uint16(int32(c.PC) + int32(offset))
}

// readWordZeroPage reads a little-endian word whose two bytes both live in
// zero page, wrapping addr+1 back to $00 rather than into page one — the
// behavior of the indexed-indirect and indirect-indexed addressing modes.
func (c *CPU) readWordZeroPage(addr byte) uint16 {
	lo := c.bus.Read(uint16(addr))
	hi := c.bus.Read(uint16(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}
