package cpu

import "m6502/mask"

// Bit positions of P, expressed as mask.byteIndex values (1-indexed from the
// MSB, per mask's convention): bit 7 of P is N, bit 0 is C.
const (
	bitN = mask.I1
	bitV = mask.I2
	bitU = mask.I3
	bitB = mask.I4
	bitD = mask.I5
	bitI = mask.I6
	bitZ = mask.I7
	bitC = mask.I8
)

// defaultStatus is P immediately after reset: U and I set, everything else
// clear.
const defaultStatus byte = 0x24

// Carry reports the state of the C flag.
func (c *CPU) Carry() bool { return mask.IsSet(c.P, bitC) }

// SetCarry sets or clears C.
func (c *CPU) SetCarry(v bool) {
	if v {
		c.P = mask.Set(c.P, bitC)
	} else {
		c.P = mask.Unset(c.P, bitC, bitC)
	}
}

// Zero reports the state of the Z flag.
func (c *CPU) Zero() bool { return mask.IsSet(c.P, bitZ) }

// SetZero sets or clears Z.
func (c *CPU) SetZero(v bool) {
	if v {
		c.P = mask.Set(c.P, bitZ)
	} else {
		c.P = mask.Unset(c.P, bitZ, bitZ)
	}
}

// InterruptDisable reports the state of the I flag.
func (c *CPU) InterruptDisable() bool { return mask.IsSet(c.P, bitI) }

// SetInterruptDisable sets or clears I.
func (c *CPU) SetInterruptDisable(v bool) {
	if v {
		c.P = mask.Set(c.P, bitI)
	} else {
		c.P = mask.Unset(c.P, bitI, bitI)
	}
}

// Decimal reports the state of the D flag. Settable and clearable, but
// honoured by nothing: ADC/SBC never branch on it, matching the
// documented-opcode-only scope of this build.
func (c *CPU) Decimal() bool { return mask.IsSet(c.P, bitD) }

// SetDecimal sets or clears D.
func (c *CPU) SetDecimal(v bool) {
	if v {
		c.P = mask.Set(c.P, bitD)
	} else {
		c.P = mask.Unset(c.P, bitD, bitD)
	}
}

// Overflow reports the state of the V flag.
func (c *CPU) Overflow() bool { return mask.IsSet(c.P, bitV) }

// SetOverflow sets or clears V.
func (c *CPU) SetOverflow(v bool) {
	if v {
		c.P = mask.Set(c.P, bitV)
	} else {
		c.P = mask.Unset(c.P, bitV, bitV)
	}
}

// Negative reports the state of the N flag.
func (c *CPU) Negative() bool { return mask.IsSet(c.P, bitN) }

// SetNegative sets or clears N.
func (c *CPU) SetNegative(v bool) {
	if v {
		c.P = mask.Set(c.P, bitN)
	} else {
		c.P = mask.Unset(c.P, bitN, bitN)
	}
}

// setNZ sets N and Z from the final 8-bit result of an operation, per the
// engine-wide rule that both flags derive solely from the result byte.
func (c *CPU) setNZ(result byte) {
	c.SetNegative(result&0x80 != 0)
	c.SetZero(result == 0)
}

// packStatus returns P with B and U forced to 1, the form PHP and BRK push.
func packStatus(p byte) byte {
	p = mask.Set(p, bitB)
	p = mask.Set(p, bitU)
	return p
}

// unpackStatus returns p as PLP restores it. Hardware makes B meaningless
// once popped; this build only guarantees U never drifts from 1.
func unpackStatus(p byte) byte {
	return mask.Set(p, bitU)
}
