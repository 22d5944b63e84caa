package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m6502/mem"
)

func newCPU() *CPU {
	return New(&mem.Bus{})
}

func TestLoadPlacesProgramAtLoadBaseAndSetsResetVector(t *testing.T) {
	c := newCPU()
	program := []byte{0xA9, 0x20, 0x00}
	require.NoError(t, c.Load(program))

	for i, b := range program {
		assert.Equal(t, b, c.ReadMemory(loadBase+uint16(i)), "byte %d", i)
	}
	assert.Equal(t, loadBase, uint16(c.ReadMemory(resetVector))|uint16(c.ReadMemory(resetVector+1))<<8)
}

func TestLoadRejectsOversizedProgram(t *testing.T) {
	c := newCPU()
	err := c.Load(make([]byte, maxProgram+1))
	assert.Error(t, err)
}

func TestResetLoadsPCFromVectorAndZeroesRegisters(t *testing.T) {
	c := newCPU()
	c.A, c.X, c.Y, c.SP = 1, 2, 3, 4
	require.NoError(t, c.Load([]byte{0xEA}))

	c.Reset()

	assert.Equal(t, loadBase, c.PC)
	assert.Zero(t, c.A)
	assert.Zero(t, c.X)
	assert.Zero(t, c.Y)
	assert.Zero(t, c.SP)
	assert.Equal(t, defaultStatus, c.P, "spew dump:\n%s", spew.Sdump(c))
}

// End-to-end scenarios: load the bytes, reset, run, observe.

func TestLDAImmediate(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0x20, 0x00}))
	assert.Equal(t, byte(0x20), c.A)
	assert.False(t, c.Zero())
	assert.False(t, c.Negative())
}

func TestLDASetsZero(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0x00, 0x00}))
	assert.Zero(t, c.A)
	assert.True(t, c.Zero())
}

func TestLDASetsNegative(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0x80, 0x00}))
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Negative())
}

func TestTAX(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0x01, 0xAA, 0x00}))
	assert.Equal(t, byte(0x01), c.X)
}

func TestADCSetsOverflowAndNegative(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0x40, 0x69, 0x40, 0x00}))
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Overflow())
	assert.True(t, c.Negative())
}

func TestSBCBorrowsWithDefaultCarryClear(t *testing.T) {
	c := newCPU()
	// Carry defaults clear, so this is F0 - 08 - 1 = E7.
	require.NoError(t, c.LoadAndRun([]byte{0xA9, 0xF0, 0xE9, 0x08, 0x00}))
	assert.Equal(t, byte(0xE7), c.A)
}

func TestIndirectXLoad(t *testing.T) {
	c := newCPU()
	c.WriteMemory(0x40FF, 0x42)
	require.NoError(t, c.Load([]byte{0xA2, 0x06, 0xA1, 0x20, 0x00}))
	c.bus.WriteWord(0x0026, 0x40FF)
	c.Reset()
	require.NoError(t, c.Run())
	assert.Equal(t, byte(0x42), c.A)
}

func TestJSRThenRTSReturnsToInstructionAfterJSR(t *testing.T) {
	c := newCPU()
	program := []byte{
		0x20, 0x06, 0x80, // $8000 JSR $8006
		0x00,       // $8003 BRK (resumed here after RTS)
		0xEA, 0xEA, // $8004-8005 unreached filler
		0xA9, 0x99, // $8006 LDA #$99
		0x60, // $8008 RTS
	}
	require.NoError(t, c.LoadAndRun(program))
	assert.Equal(t, byte(0x99), c.A)
	assert.Equal(t, loadBase+3, c.PC, "PC should have resumed just past the JSR and then halted on BRK")
}

func TestWrappingLaws(t *testing.T) {
	c := newCPU()
	c.X = 0xFF
	opINX(c)
	assert.Zero(t, c.X)
	assert.True(t, c.Zero())

	c.X = 0x00
	opDEX(c)
	assert.Equal(t, byte(0xFF), c.X)
	assert.True(t, c.Negative())
}

func TestStackIsLIFOModuloSPWrap(t *testing.T) {
	c := newCPU()
	c.SP = 0xFF
	c.push(0x11)
	c.push(0x22)
	assert.Equal(t, byte(0x22), c.pull())
	assert.Equal(t, byte(0x11), c.pull())
	assert.Equal(t, byte(0xFF), c.SP)
}

func TestCompareLeavesRegisterUnchanged(t *testing.T) {
	c := newCPU()
	c.A = 0x10
	c.WriteMemory(0x0000, 0x10)
	c.addressed = 0x0000
	opCMP(c)

	assert.Equal(t, byte(0x10), c.A, "CMP must not mutate the compared register")
	assert.True(t, c.Carry())
	assert.True(t, c.Zero())
}

// TestPLPRestoresRegistersUntouched confirms PHP/PLP round-trips the C and N
// flags (PHP also sets B in the pushed byte, which PLP keeps) without
// disturbing A, X or Y, using deep.Equal to diff a snapshot of those three
// registers.
func TestPLPRestoresRegistersUntouched(t *testing.T) {
	c := newCPU()
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	c.SetCarry(true)
	c.SetNegative(true)
	before := struct{ A, X, Y byte }{c.A, c.X, c.Y}

	opPHP(c)
	c.SetCarry(false)
	c.SetNegative(false)
	opPLP(c)

	after := struct{ A, X, Y byte }{c.A, c.X, c.Y}
	if diff := deep.Equal(before, after); diff != nil {
		t.Fatalf("PHP/PLP disturbed non-flag registers: %v\n%s", diff, spew.Sdump(c))
	}
	assert.True(t, c.Carry())
	assert.True(t, c.Negative())
}

func TestDecodeErrorOnUnknownOpcode(t *testing.T) {
	c := newCPU()
	// $FF has no decode table entry.
	require.NoError(t, c.Load([]byte{}))
	c.Reset()
	c.WriteMemory(loadBase, 0xFF)

	err := c.Run()
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestBRKSetsInterruptDisableAndHalts(t *testing.T) {
	c := newCPU()
	require.NoError(t, c.LoadAndRun([]byte{0x00}))
	assert.True(t, c.InterruptDisable())
}
