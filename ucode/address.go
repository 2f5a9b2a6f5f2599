package ucode

import (
	"fmt"
	"iter"

	"github.com/0xCCF4/udump/internal"
)

const (
	ROM_SIZE   = Addr(0x7c00) // One micro-op slot per address in the microcode ROM.
	TRIAD_SIZE = 4            // Slots per triad; the fourth slot holds no micro-op.
)

// Addr is a linear address in the microcode instruction space.
type Addr int

// Valid returns true if the address lies inside the ROM.
func (a Addr) Valid() bool {
	return a >= 0 && a < ROM_SIZE
}

// TriadBase returns the base address of the triad containing a.
func (a Addr) TriadBase() Addr {
	return a &^ (TRIAD_SIZE - 1)
}

// TriadOffset returns the offset of a within its triad (0-3).
func (a Addr) TriadOffset() int {
	return int(a & (TRIAD_SIZE - 1))
}

// Unused returns true if a is the structurally unused fourth slot of its triad.
func (a Addr) Unused() bool {
	return a.TriadOffset() == TRIAD_SIZE-1
}

func (a Addr) String() string {
	return fmt.Sprintf("U%04x", int(a))
}

// Addresses iterates the disassembled addresses of [0, limit) in ascending
// order, skipping the unused fourth slot of every triad.
func Addresses(limit Addr) iter.Seq[Addr] {
	all := func(yield func(a Addr) bool) {
		for a := Addr(0); a < limit; a++ {
			if !yield(a) {
				return
			}
		}
	}

	return internal.IterSeqFilter(all, func(a Addr) bool { return !a.Unused() })
}
