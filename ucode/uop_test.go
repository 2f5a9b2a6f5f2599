package ucode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvenOddParity(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0), EvenOddParity64(0))
	assert.Equal(uint64(3), EvenOddParity64(3))
	assert.Equal(uint64(0), EvenOddParity64(0xf))
	assert.Equal(uint64(1), EvenOddParity64(1<<44))

	assert.Equal(uint32(0), EvenOddParity32(0))
	assert.Equal(uint32(3), EvenOddParity32(0x01842900))
}

func TestUopFields(t *testing.T) {
	assert := assert.New(t)

	uop := Uop(0x256) << 32
	assert.Equal(uint16(0x256), uop.Opcode())

	_, ok := uop.Src1Imm()
	assert.False(ok)

	// The immediate scatters and gathers losslessly.
	for _, imm := range []uint16{0, 1, 0xff, 0x1f00, 0xe000, 0x7c00, 0xffff} {
		enc := Src1ImmEncode(imm)
		dec, ok := (uop | enc).Src1Imm()
		assert.True(ok)
		assert.Equal(imm, dec)
	}
}

func TestUopCrc(t *testing.T) {
	assert := assert.New(t)

	word := Uop(0x256)<<32 | Src1ImmEncode(0x7c00)
	parity := EvenOddParity64(uint64(word))

	assert.False((word | Uop(parity^3)<<UOP_CRC_SHIFT).CrcValid())
	assert.True((word | Uop(parity)<<UOP_CRC_SHIFT).CrcValid())
	assert.Equal(parity, (word | Uop(parity)<<UOP_CRC_SHIFT).Crc())
}

func TestDecodeUop(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", DecodeUop(0, 0))
	// Parity bits are not part of the encoding.
	assert.Equal("NOP", DecodeUop(3<<UOP_CRC_SHIFT, 0))

	assert.Equal("unk_256()", DecodeUop(Uop(0x256)<<32, 0))
	assert.Equal("unk_256(0x7c00)", DecodeUop(Uop(0x256)<<32|Src1ImmEncode(0x7c00), 0))

	// Total and deterministic over arbitrary words.
	weird := Uop(0xffff_ffff_ffff)
	assert.NotEmpty(DecodeUop(weird, 0x7bfe))
	assert.Equal(DecodeUop(weird, 0x7bfe), DecodeUop(weird, 0x7bfe))
}
