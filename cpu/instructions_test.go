package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m6502/mem"
)

func newTestCPU() *CPU {
	c := New(&mem.Bus{})
	c.addressed = 0x0000
	return c
}

func TestADCCarryAndOverflow(t *testing.T) {
	tests := []struct {
		name       string
		a, m       byte
		carryIn    bool
		wantA      byte
		wantCarry  bool
		wantOflow  bool
		wantNegat  bool
		wantZeroFl bool
	}{
		{"no carry, no overflow", 0x10, 0x20, false, 0x30, false, false, false, false},
		{"unsigned carry out", 0xFF, 0x01, false, 0x00, true, false, false, true},
		{"signed overflow, positive+positive=negative", 0x40, 0x40, false, 0x80, false, true, true, false},
		{"signed overflow, negative+negative=positive", 0x80, 0x80, false, 0x00, true, true, false, true},
		{"carry in propagates", 0x00, 0x00, true, 0x01, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU()
			c.A = tt.a
			c.SetCarry(tt.carryIn)
			c.WriteMemory(0x0000, tt.m)

			opADC(c)

			assert.Equal(t, tt.wantA, c.A)
			assert.Equal(t, tt.wantCarry, c.Carry(), "carry")
			assert.Equal(t, tt.wantOflow, c.Overflow(), "overflow")
			assert.Equal(t, tt.wantNegat, c.Negative(), "negative")
			assert.Equal(t, tt.wantZeroFl, c.Zero(), "zero")
		})
	}
}

func TestSBCCarryIsNoBorrow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x10
	c.SetCarry(true) // no incoming borrow
	c.WriteMemory(0x0000, 0x05)

	opSBC(c)

	assert.Equal(t, byte(0x0B), c.A)
	assert.True(t, c.Carry(), "no borrow occurred")
}

func TestSBCCarryClearBorrows(t *testing.T) {
	c := newTestCPU()
	c.A = 0x10
	c.SetCarry(false) // incoming borrow
	c.WriteMemory(0x0000, 0x05)

	opSBC(c)

	assert.Equal(t, byte(0x0A), c.A)
	assert.True(t, c.Carry(), "still no borrow out: 0x10 - 0x05 - 1 >= 0")
}

func TestShiftsAndRotates(t *testing.T) {
	tests := []struct {
		name      string
		op        operate
		m         byte
		carryIn   bool
		wantM     byte
		wantCarry bool
	}{
		{"ASL carries out bit 7", opASL, 0x81, false, 0x02, true},
		{"LSR carries out bit 0", opLSR, 0x01, false, 0x00, true},
		{"ROL rotates carry into bit 0", opROL, 0x80, true, 0x01, true},
		{"ROR rotates carry into bit 7", opROR, 0x01, true, 0x80, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU()
			c.implied = true
			c.A = tt.m
			c.SetCarry(tt.carryIn)

			tt.op(c)

			assert.Equal(t, tt.wantM, c.A)
			assert.Equal(t, tt.wantCarry, c.Carry())
		})
	}
}

func TestCompareInstructions(t *testing.T) {
	c := newTestCPU()
	c.A = 0x10
	c.WriteMemory(0x0000, 0x20)

	opCMP(c)

	assert.True(t, c.Negative(), "0x10 - 0x20 wraps to a value with bit 7 set")
	assert.False(t, c.Carry(), "A < M: borrow, no carry")
	assert.False(t, c.Zero())
}

func TestBranchesConsumeOperandEvenWhenNotTaken(t *testing.T) {
	c := newTestCPU()
	c.PC = loadBase
	c.WriteMemory(loadBase, 0x05)
	modeRelative(c)
	target := c.addressed
	pcAfterOperand := c.PC

	c.SetCarry(true) // BCC not taken
	opBCC(c)
	assert.Equal(t, pcAfterOperand, c.PC, "not-taken branch leaves PC just past the operand")

	c.PC = pcAfterOperand
	c.SetCarry(false) // BCC taken
	opBCC(c)
	assert.Equal(t, target, c.PC)
}

func TestBITDoesNotTouchAccumulator(t *testing.T) {
	c := newTestCPU()
	c.A = 0x0F
	c.WriteMemory(0x0000, 0xC0) // bits 7 and 6 set

	opBIT(c)

	assert.Equal(t, byte(0x0F), c.A)
	assert.True(t, c.Negative())
	assert.True(t, c.Overflow())
	assert.True(t, c.Zero(), "0x0F & 0xC0 == 0")
}
