// Package trace renders a linear disassembly of a loaded microcode ROM.
//
// The driver walks the address space in ascending order, one data line per
// micro-op slot, a blank line between triads, and label lines in front of
// labeled addresses:
//
//	rdrand_xlat:
//	U0490: 03124c000200 LFNCEWAIT-> unk_312(0x4c) SEQW GOTO U0afc
//
// Decoding goes through the capability functions of package ucode, so all
// addressing, grouping and lookup rules live here, independent of any
// concrete encoding table.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/0xCCF4/udump/dump"
	"github.com/0xCCF4/udump/ucode"
)

// Tracer holds the read-only stores and decode capabilities of one
// disassembly run.
type Tracer struct {
	Rom    *dump.Rom   // Micro-op and sequence word stores.
	Labels dump.Labels // Optional symbolic names.

	DecodeUop     ucode.UopDecoder     // Micro-op decode capability.
	DecodeSeqword ucode.SeqwordDecoder // Sequence word decode capability.

	Limit  ucode.Addr // Exclusive address bound; 0 means the full ROM.
	Output io.Writer
}

// Run walks [0, Limit) in ascending order and writes the disassembly.
// The walk is strictly sequential; the stores are never mutated.
func (tr *Tracer) Run() (err error) {
	limit := tr.Limit
	if limit == 0 {
		limit = ucode.ROM_SIZE
	}
	if limit < 0 || limit > ucode.ROM_SIZE {
		return ErrAddressRange(limit)
	}

	out := bufio.NewWriter(tr.Output)

	for addr := range ucode.Addresses(limit) {
		uop, ok := tr.Rom.Uop(addr)
		if !ok {
			return ErrAddressRange(addr)
		}
		seqword, ok := tr.Rom.Seqword(addr)
		if !ok {
			return ErrAddressRange(addr)
		}

		// A blank line separates triads.
		if addr.TriadOffset() == 0 && addr > 0 {
			fmt.Fprintln(out)
		}

		before := strings.TrimSpace(tr.DecodeSeqword(addr, uop, seqword, ucode.PHASE_BEFORE))
		if len(before) != 0 {
			before += " "
		}
		mnemonic := strings.TrimSpace(tr.DecodeUop(uop, addr))
		after := strings.TrimSpace(tr.DecodeSeqword(addr, uop, seqword, ucode.PHASE_AFTER))

		if label, ok := tr.Labels[addr]; ok {
			fmt.Fprintf(out, "%v:\n", label)
		}
		fmt.Fprintf(out, "%v: %012x %v%v %v\n", addr, uint64(uop), before, mnemonic, after)
	}

	return out.Flush()
}
