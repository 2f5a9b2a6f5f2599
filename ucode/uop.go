package ucode

import (
	"fmt"
)

const (
	UOP_MASK      = Uop(0x3fff_ffff_ffff) // The 46 encoding bits of a micro-op word.
	UOP_CRC_SHIFT = 46                    // Parity bits sit above the encoding bits.

	UOP_IMM_MARK = Uop(1 << 9) // Set when source 1 is an immediate.
)

// Uop is a raw 48-bit micro-op word. The low 46 bits encode the operation;
// the top two bits carry an even/odd parity of the rest.
type Uop uint64

// Opcode returns the 12-bit opcode field.
func (u Uop) Opcode() uint16 {
	return uint16((u >> 32) & 0xfff)
}

// Crc returns the stored parity bits.
func (u Uop) Crc() uint64 {
	return uint64(u) >> UOP_CRC_SHIFT & 0x3
}

// CrcValid returns true if the stored parity matches the encoding bits.
// ROM words are stored without parity and report false unless the
// encoding's parity happens to be zero.
func (u Uop) CrcValid() bool {
	return u.Crc() == EvenOddParity64(uint64(u&UOP_MASK))
}

// Src1Imm returns the immediate encoded as source 1 and whether the
// immediate marker bit is set. The 16 immediate bits are scattered over the
// word: bits [0,8) at 24, bits [8,13) at 18, bits [13,16) at 6.
func (u Uop) Src1Imm() (imm uint16, ok bool) {
	ok = u&UOP_IMM_MARK != 0
	if ok {
		imm = uint16(u>>24)&0x00ff | uint16(u>>10)&0x1f00 | uint16(u<<7)&0xe000
	}
	return
}

// Src1ImmEncode scatters a 16-bit immediate into the source 1 field of a
// micro-op word and sets the immediate marker bit.
func Src1ImmEncode(imm uint16) Uop {
	return Uop(imm&0x00ff)<<24 | Uop(imm&0x1f00)<<10 | Uop(imm&0xe000)>>7 | UOP_IMM_MARK
}

// EvenOddParity64 returns the two-bit even/odd parity of value: the XOR of
// all its two-bit groups.
func EvenOddParity64(value uint64) (parity uint64) {
	for value > 0 {
		parity ^= value & 3
		value >>= 2
	}
	return
}

// EvenOddParity32 returns the two-bit even/odd parity of value.
func EvenOddParity32(value uint32) (parity uint32) {
	for value > 0 {
		parity ^= value & 3
		value >>= 2
	}
	return
}

// UopDecoder renders the micro-op word at an address as mnemonic text.
// Implementations must be pure, deterministic and total.
type UopDecoder func(uop Uop, addr Addr) string

// DecodeUop renders a micro-op word as mnemonic text. Parity bits are
// ignored. The zero word is NOP; any other word is named by its opcode
// field, unk_NNN when the encoding table does not classify it, with the
// source 1 immediate rendered as the argument when present.
func DecodeUop(uop Uop, addr Addr) string {
	uop &= UOP_MASK
	if uop == 0 {
		return "NOP"
	}

	name := fmt.Sprintf("unk_%03x", uop.Opcode())

	imm, ok := uop.Src1Imm()
	if !ok {
		return name + "()"
	}

	return fmt.Sprintf("%v(%#x)", name, imm)
}
