package ucode

import (
	"fmt"
	"strings"
)

// SeqControl is a sequence word execution flow operation, applied after its
// micro-op has run.
type SeqControl int

//go:generate go tool stringer -type=SeqControl
const (
	URET0 = SeqControl(0x2) // Return from microcode subroutine.
	URET1 = SeqControl(0x3) // Return from microcode subroutine.

	SAVEUPIP0 = SeqControl(0x4) // Save the current micro instruction pointer.
	SAVEUPIP1 = SeqControl(0x5) // Save the current micro instruction pointer.

	ROVR_SAVEUPIP0 = SeqControl(0x6) // Save the micro instruction pointer with register override.
	ROVR_SAVEUPIP1 = SeqControl(0x7) // Save the micro instruction pointer with register override.

	WRTAGW = SeqControl(0x8)
	MSLOOP = SeqControl(0x9)
	MSSTOP = SeqControl(0xb)

	UEND0 = SeqControl(0xc) // End microcode execution, fetch the next x86 instruction.
	UEND1 = SeqControl(0xd) // End microcode execution, raise an exception.
	UEND2 = SeqControl(0xe)
	UEND3 = SeqControl(0xf)
)

// valid returns true if c is an encodable control operation. 0x0, 0x1 and
// 0xa carry no operation.
func (c SeqControl) valid() bool {
	return (c >= URET0 && c <= MSLOOP) || (c >= MSSTOP && c <= UEND3)
}

// SeqSync is a sequence word synchronization operation, applied before its
// micro-op runs.
type SeqSync int

//go:generate go tool stringer -type=SeqSync
const (
	LFNCEWAIT  = SeqSync(0x1) // Wait until all loads in the current frame complete.
	LFNCEMARK  = SeqSync(0x2) // Start a new load frame.
	LFNCEWTMRK = SeqSync(0x3) // Wait, then start a new load frame.
	SYNCFULL   = SeqSync(0x4) // Wait until all prior micro-ops have executed.
	SYNCWAIT   = SeqSync(0x5) // Wait until all prior micro-ops in the frame have executed.
	SYNCMARK   = SeqSync(0x6) // Start a new synwait frame.
	SYNCWTMRK  = SeqSync(0x7) // Wait, then start a new synwait frame.
)

// SeqPart is one operation of a sequence word, applied to the micro-op at
// triad offset Index (0-2).
type SeqPart[T any] struct {
	Index int
	Value T
}

// Seqword is the decoded form of a triad's shared sequence word.
//
// Raw layout, low 30 bits of the word:
//
//	 29  28    25 24 23                8   6       2   0
//	-+---+-------+--+--+----------------+---+-------+---+
//	 |crc| sync  | up2 |     target     |up1| eflow |up0|
//	-+---+-------+--+--+----------------+---+-------+---+
//	   2     3      2          15          2     4     2
//
// An index field of 3 marks its operation absent; the goto is absent when
// the target is zero.
type Seqword struct {
	Control *SeqPart[SeqControl] // Execution flow operation, after its micro-op.
	Sync    *SeqPart[SeqSync]    // Synchronization, before its micro-op.
	Goto    *SeqPart[Addr]       // Jump taken after its micro-op.
}

const (
	SEQWORD_MASK      = uint64(0x3fffffff) // The 30 significant bits of a sequence word.
	SEQWORD_CRC_SHIFT = 28                 // Parity bits of the low 28 bits, RAM words only.

	SEQWORD_TARGET_MAX = Addr(0x7eff) // Largest encodable jump target.
)

// DisassembleSeqword decodes a raw sequence word, without checking the
// parity bits. ROM sequence words are stored without parity.
func DisassembleSeqword(raw uint64) (sw Seqword, err error) {
	if raw&^SEQWORD_MASK != 0 {
		err = ErrSeqwordLength
		return
	}

	syncOp := SeqSync(raw >> 25 & 0x7)
	syncIdx := int(raw >> 23 & 0x3)
	target := Addr(raw >> 8 & 0x7fff)
	targetIdx := int(raw >> 6 & 0x3)
	eflowOp := SeqControl(raw >> 2 & 0xf)
	eflowIdx := int(raw & 0x3)

	if target != 0 {
		if target > SEQWORD_TARGET_MAX {
			err = ErrSeqwordGoto
			return
		}
		sw.Goto = &SeqPart[Addr]{Index: targetIdx, Value: target}
	}

	if syncIdx == 3 || syncOp == 0 {
		if syncOp != 0 {
			err = ErrSeqwordSync
			return
		}
	} else {
		sw.Sync = &SeqPart[SeqSync]{Index: syncIdx, Value: syncOp}
	}

	if eflowIdx == 3 {
		err = ErrSeqwordControl
		return
	}
	if eflowOp != 0 || eflowIdx != 0 {
		if !eflowOp.valid() {
			err = ErrSeqwordControl
			return
		}
		sw.Control = &SeqPart[SeqControl]{Index: eflowIdx, Value: eflowOp}
	}

	return
}

// DisassembleSeqwordCrc decodes a raw sequence word, requiring a valid
// parity field as stored in microcode RAM.
func DisassembleSeqwordCrc(raw uint64) (sw Seqword, err error) {
	if raw&^SEQWORD_MASK != 0 {
		err = ErrSeqwordLength
		return
	}
	crc := uint32(raw >> SEQWORD_CRC_SHIFT & 0x3)
	if crc != EvenOddParity32(uint32(raw&(SEQWORD_MASK>>2))) {
		err = ErrSeqwordCrc
		return
	}

	return DisassembleSeqword(raw &^ (0x3 << SEQWORD_CRC_SHIFT))
}

// Assemble encodes the sequence word without parity, as stored in the ROM.
func (sw Seqword) Assemble() (raw uint64) {
	syncOp, syncIdx := uint64(0), uint64(0x3)
	if sw.Sync != nil {
		syncOp, syncIdx = uint64(sw.Sync.Value), uint64(sw.Sync.Index)
	}

	target, targetIdx := uint64(0), uint64(0x3)
	if sw.Goto != nil {
		target, targetIdx = uint64(sw.Goto.Value)&0x7fff, uint64(sw.Goto.Index)
	}

	eflowOp, eflowIdx := uint64(0), uint64(0)
	if sw.Control != nil {
		eflowOp, eflowIdx = uint64(sw.Control.Value), uint64(sw.Control.Index)
	}

	return syncOp<<25 | syncIdx<<23 | target<<8 | targetIdx<<6 | eflowOp<<2 | eflowIdx
}

// AssembleCrc encodes the sequence word with parity, as stored in
// microcode RAM.
func (sw Seqword) AssembleCrc() (raw uint64) {
	raw = sw.Assemble()
	return raw | uint64(EvenOddParity32(uint32(raw)))<<SEQWORD_CRC_SHIFT
}

// Phase selects which side of a micro-op's mnemonic a sequence word
// annotation is rendered on.
type Phase int

const (
	PHASE_BEFORE = Phase(0)
	PHASE_AFTER  = Phase(1)
)

// SeqwordDecoder renders the annotation a triad's raw sequence word
// attaches to the micro-op at an address, for one phase. Implementations
// must be pure, deterministic and total.
type SeqwordDecoder func(addr Addr, uop Uop, seqword uint64, phase Phase) string

// DecodeSeqword renders the sequencing annotations for the micro-op at
// addr. The before phase carries the synchronization prefix, "LFNCEMARK->";
// the after phase carries the flow suffix, "SEQW UEND0, GOTO U7c00". Either
// phase is empty when no operation applies at addr's triad offset. Raw
// words that do not decode, bits above the significant 30 included, degrade
// to a seqw_NNNNNNNN placeholder on the after phase.
func DecodeSeqword(addr Addr, uop Uop, seqword uint64, phase Phase) string {
	sw, err := DisassembleSeqword(seqword)
	if err != nil {
		if phase == PHASE_AFTER {
			return fmt.Sprintf("seqw_%08x", seqword)
		}
		return ""
	}

	offset := addr.TriadOffset()

	switch phase {
	case PHASE_BEFORE:
		if sw.Sync != nil && sw.Sync.Index == offset {
			return sw.Sync.Value.String() + "->"
		}
	case PHASE_AFTER:
		var parts []string
		if sw.Control != nil && sw.Control.Index == offset {
			parts = append(parts, sw.Control.Value.String())
		}
		if sw.Goto != nil && sw.Goto.Index == offset {
			parts = append(parts, "GOTO "+sw.Goto.Value.String())
		}
		if len(parts) != 0 {
			return "SEQW " + strings.Join(parts, ", ")
		}
	}

	return ""
}
