// Package cpu implements an interpreting emulator for the MOS 6502: the
// fetch/decode/execute loop, all twelve addressing modes, and the arithmetic
// and flag semantics of the documented instruction set. Decimal-mode
// arithmetic, undocumented opcodes, cycle-accurate timing, and interrupt
// lines beyond BRK are out of scope; see the decode table in opcodes.go.
package cpu

import (
	"fmt"

	"m6502/mem"
)

// loadBase is where Load places the first byte of a program image, and
// where Reset points PC absent any other instruction.
const loadBase uint16 = 0x8000

// resetVector is the address of the little-endian word Reset reads PC from.
const resetVector uint16 = 0xFFFC

// maxProgram is the largest payload Load accepts: the program region runs
// from loadBase up to (but not including) the reset vector.
const maxProgram = int(resetVector - loadBase)

// CPU is the full architectural state of a MOS 6502: the registers, the
// memory it executes against, and the two fields the instruction engine
// threads between an addressing-mode routine and the operate routine for
// whichever instruction is currently executing.
type CPU struct {
	A, X, Y, SP, P byte
	PC             uint16

	bus *mem.Bus

	// addressed is the effective address the most recent addressing-mode
	// routine resolved. Meaningful only when implied is false.
	addressed uint16
	// implied is true iff the current instruction's operand is the
	// accumulator rather than a memory cell. Cleared before every fetch.
	implied bool

	// Cycles is the running total of base cycle counts charged against
	// executed instructions. Purely observational: nothing in the engine
	// depends on its value.
	Cycles uint64
}

// New returns a CPU wired to bus, with zeroed registers and default status
// flags. Load and Reset must run before Step or Run produce anything
// meaningful.
func New(bus *mem.Bus) *CPU {
	return &CPU{bus: bus, P: defaultStatus}
}

// DecodeError reports an opcode with no entry in the decode table. Step and
// Run return it rather than panicking; it always terminates the run.
type DecodeError struct {
	Opcode byte
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: opcode %#02x at %#04x has no decode table entry", e.Opcode, e.PC)
}

// Load copies program into memory starting at $8000 and points the reset
// vector at $8000. Payloads that would run into the reset vector are
// rejected rather than truncated.
func (c *CPU) Load(program []byte) error {
	if len(program) > maxProgram {
		return fmt.Errorf("cpu: program of %d bytes exceeds the %d-byte region starting at %#04x", len(program), maxProgram, loadBase)
	}
	for i, b := range program {
		c.bus.Write(loadBase+uint16(i), b)
	}
	c.bus.WriteWord(resetVector, loadBase)
	return nil
}

// Reset zeroes A, X, Y and SP, restores the default status flags, and loads
// PC from the reset vector. Memory, including any previously Load-ed
// program, is untouched.
func (c *CPU) Reset() {
	c.A, c.X, c.Y, c.SP = 0, 0, 0, 0
	c.P = defaultStatus
	c.PC = c.bus.ReadWord(resetVector)
	c.implied = false
	c.addressed = 0
}

// Step executes exactly one instruction: fetch, decode, run the addressing
// mode, run the operate routine. It reports halted=true when the
// instruction was BRK (which also sets I) or when the opcode had no decode
// table entry, in which case err is a *DecodeError. Neither Step nor Run
// push an interrupt frame for BRK: the run ends immediately, so no handler
// could ever observe one.
func (c *CPU) Step() (halted bool, err error) {
	opcode := c.bus.Read(c.PC)
	if opcode == 0x00 {
		c.SetInterruptDisable(true)
		return true, nil
	}

	entry := decodeTable[opcode]
	if entry.operate == nil {
		return true, &DecodeError{Opcode: opcode, PC: c.PC}
	}

	c.PC++
	c.implied = false

	entry.mode(c)
	entry.operate(c)
	c.Cycles += uint64(entry.cycles)

	return false, nil
}

// Run steps the CPU until BRK or a decode failure halts it.
func (c *CPU) Run() error {
	for {
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// LoadAndRun loads program, resets, and runs to completion.
func (c *CPU) LoadAndRun(program []byte) error {
	if err := c.Load(program); err != nil {
		return err
	}
	c.Reset()
	return c.Run()
}

// ReadMemory returns the byte at addr, for host inspection after Run
// returns.
func (c *CPU) ReadMemory(addr uint16) byte {
	return c.bus.Read(addr)
}

// WriteMemory stores val at addr. Intended for host test fixtures that seed
// memory before Load/Run, not for use while a run is in progress.
func (c *CPU) WriteMemory(addr uint16, val byte) {
	c.bus.Write(addr, val)
}

// push stores val at the current stack address and decrements SP, wrapping
// modulo 256.
func (c *CPU) push(val byte) {
	c.bus.Write(0x0100|uint16(c.SP), val)
	c.SP--
}

// pull increments SP, wrapping modulo 256, and returns the byte at the new
// stack address.
func (c *CPU) pull() byte {
	c.SP++
	return c.bus.Read(0x0100 | uint16(c.SP))
}

// pushWord pushes val high-byte-first, so the matching pull order is
// low-then-high, per JSR/RTS.
func (c *CPU) pushWord(val uint16) {
	c.push(byte(val >> 8))
	c.push(byte(val & 0xFF))
}

// pullWord pulls a little-endian word: low byte first, then high.
func (c *CPU) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// operand returns the current instruction's source value: A when implied,
// else the byte at the resolved effective address.
func (c *CPU) operand() byte {
	if c.implied {
		return c.A
	}
	return c.bus.Read(c.addressed)
}

// storeOperand writes val back to wherever operand last read from: A when
// implied, else the resolved effective address. Used by the read-modify-write
// instructions (ASL, LSR, ROL, ROR, INC, DEC).
func (c *CPU) storeOperand(val byte) {
	if c.implied {
		c.A = val
		return
	}
	c.bus.Write(c.addressed, val)
}
