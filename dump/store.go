package dump

import (
	"github.com/0xCCF4/udump/ucode"
)

// Rom holds the micro-op and sequence word stores of one CPU variant,
// loaded once and read-only afterwards.
//
// Uops carries one word per address. Seqwords carries one word per triad,
// indexed by triad; per-address lookups resolve to the entry of the
// address's triad base.
type Rom struct {
	CPUID    string
	Uops     []ucode.Uop
	Seqwords []uint64
}

// Uop returns the micro-op word at addr.
func (rom *Rom) Uop(addr ucode.Addr) (uop ucode.Uop, ok bool) {
	if !addr.Valid() || int(addr) >= len(rom.Uops) {
		return
	}

	return rom.Uops[addr], true
}

// Seqword returns the sequence word shared by addr's triad.
func (rom *Rom) Seqword(addr ucode.Addr) (seqword uint64, ok bool) {
	index := int(addr.TriadBase()) / ucode.TRIAD_SIZE
	if !addr.Valid() || index >= len(rom.Seqwords) {
		return
	}

	return rom.Seqwords[index], true
}

// Triad is the joint view of one triad: its three micro-op words and the
// sequence word they share.
type Triad struct {
	Base    ucode.Addr
	Uops    [ucode.TRIAD_SIZE - 1]ucode.Uop
	Seqword uint64
}

// Triad returns the triad containing addr.
func (rom *Rom) Triad(addr ucode.Addr) (triad Triad, ok bool) {
	triad.Base = addr.TriadBase()

	triad.Seqword, ok = rom.Seqword(addr)
	if !ok {
		return
	}

	for n := range triad.Uops {
		triad.Uops[n], ok = rom.Uop(triad.Base + ucode.Addr(n))
		if !ok {
			return
		}
	}

	return
}
