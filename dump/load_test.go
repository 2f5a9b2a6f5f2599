package dump

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/0xCCF4/udump/ucode"
)

// arrayText renders a full-size word array dump, four words per record.
func arrayText(word func(addr ucode.Addr) uint64) string {
	text := &strings.Builder{}
	for base := ucode.Addr(0); base < ucode.ROM_SIZE; base += ucode.TRIAD_SIZE {
		fmt.Fprintf(text, "%04x: ", int(base))
		for n := ucode.Addr(0); n < ucode.TRIAD_SIZE; n++ {
			fmt.Fprintf(text, " %014x", word(base+n))
		}
		fmt.Fprintln(text)
	}
	return text.String()
}

func romFS(uop, seqword func(addr ucode.Addr) uint64) fstest.MapFS {
	return fstest.MapFS{
		"0x000506CA/ms_array0.txt": &fstest.MapFile{Data: []byte(arrayText(uop))},
		"0x000506CA/ms_array1.txt": &fstest.MapFile{Data: []byte(arrayText(seqword))},
	}
}

func TestLoadRom(t *testing.T) {
	assert := assert.New(t)

	fsys := romFS(
		func(addr ucode.Addr) uint64 { return uint64(addr) },
		// The dump repeats the triad's word on every slot.
		func(addr ucode.Addr) uint64 { return uint64(addr.TriadBase()) | 0x1000000 },
	)

	rom, err := LoadRom(fsys, "0x000506CA")
	assert.NoError(err)
	assert.Equal("0x000506CA", rom.CPUID)
	assert.Len(rom.Uops, int(ucode.ROM_SIZE))
	assert.Len(rom.Seqwords, int(ucode.ROM_SIZE)/ucode.TRIAD_SIZE)

	uop, ok := rom.Uop(0x7bfe)
	assert.True(ok)
	assert.Equal(ucode.Uop(0x7bfe), uop)

	// Every address of a triad resolves to the triad base's sequence word.
	for _, addr := range []ucode.Addr{0x428, 0x429, 0x42a, 0x42b} {
		seqword, ok := rom.Seqword(addr)
		assert.True(ok)
		assert.Equal(uint64(0x1000428), seqword)
	}

	_, ok = rom.Uop(ucode.ROM_SIZE)
	assert.False(ok)
	_, ok = rom.Seqword(-1)
	assert.False(ok)

	triad, ok := rom.Triad(0x42a)
	assert.True(ok)
	assert.Equal(ucode.Addr(0x428), triad.Base)
	assert.Equal([3]ucode.Uop{0x428, 0x429, 0x42a}, triad.Uops)
	assert.Equal(uint64(0x1000428), triad.Seqword)
}

func TestLoadRomMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadRom(fstest.MapFS{}, "0x000506CA")
	var load ErrDataLoad
	if assert.ErrorAs(err, &load) {
		assert.Equal("0x000506CA/ms_array0.txt", load.Source)
	}
}

func TestParseArrayRecords(t *testing.T) {
	assert := assert.New(t)

	words := make([]uint64, 8)

	// Comments, blank lines and short records are fine.
	err := parseArray(strings.NewReader(strings.Join([]string{
		"# dumped 2024-11-02",
		"0000:  000000000001 000000000002",
		"",
		"0002:  000000000003 000000000004  # triad 0",
		"0004:  000000000005 000000000006 000000000007 000000000008",
	}, "\n")), words)
	assert.NoError(err)
	assert.Equal([]uint64{1, 2, 3, 4, 5, 6, 7, 8}, words)

	for text, expect := range map[string]error{
		"0000: 000000000001":  ErrTruncated(1), // all other words missing
		"000000000001":        ErrAddressSyntax,
		"xyz: 000000000001":   ErrAddressSyntax,
		"0000: 1 2 3 4 5 6 7": ErrAddressRange,
		"0000: zz":            ErrWordSyntax,
		"0000: 1000000000000": ErrWordSyntax, // 49 bits
		"0000: 1\n0000: 2":    ErrAddressDuplicate,
	} {
		err := parseArray(strings.NewReader(text), make([]uint64, 4))
		assert.ErrorIs(err, expect, text)
	}

	// Malformed records name their line.
	err = parseArray(strings.NewReader("0000: 1 2 3 4\nbroken"), make([]uint64, 4))
	var record ErrRecord
	if assert.ErrorAs(err, &record) {
		assert.Equal(2, record.LineNo)
		assert.Equal("broken", record.Line)
	}
}

func TestVariants(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"0x000506CA/ms_array0.txt": &fstest.MapFile{},
		"0x000506C9/ms_array0.txt": &fstest.MapFile{},
		"0x000506F0/notes.txt":     &fstest.MapFile{}, // no dump inside
		"labels.csv":               &fstest.MapFile{},
		"scratch/ms_array0.txt":    &fstest.MapFile{}, // not a cpuid
	}

	cpuids, err := Variants(fsys)
	assert.NoError(err)
	assert.Equal([]string{"0x000506C9", "0x000506CA"}, cpuids)
}
