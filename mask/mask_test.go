package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, I1))
	assert.True(t, IsSet(0b1101_1000, I2))
	assert.False(t, IsSet(0b1101_1000, I3))
	assert.True(t, IsSet(0b1101_1000, I4))
	assert.False(t, IsSet(0b1101_1000, I8))
}

func TestSet(t *testing.T) {
	assert.Equal(t, byte(0b1000_0000), Set(0b0000_0000, I1))
	assert.Equal(t, byte(0b0100_0000), Set(0b0000_0000, I2))
	assert.Equal(t, byte(0b0000_0001), Set(0b0000_0000, I8))
	assert.Equal(t, byte(0b1111_1111), Set(0b1111_1111, I1))
}

func TestUnset(t *testing.T) {
	assert.Equal(t, byte(0b1111_0000), Unset(0b1111_0000, I5, I8))
	assert.Equal(t, byte(0b1111_0000), Unset(0b1111_1111, I5, I8))
	assert.Equal(t, byte(0b0000_0000), Unset(0b1111_1111, I1, I8))
}

func TestUnsetPanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { Unset(0b0000_0000, I5, I1) })
}
