package dump

import (
	"bufio"
	"io"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/0xCCF4/udump/ucode"
)

const (
	UOP_ARRAY     = "ms_array0.txt" // Micro-op word array dump.
	SEQWORD_ARRAY = "ms_array1.txt" // Sequence word array dump.
	LABEL_FILE    = "labels.csv"    // Label table, shared across variants.
)

// parseArray reads a word array dump into words, which must be pre-sized to
// the full array. Records are lines of the form
//
//	0010:  00000000000000 00004800001000 00012000405600 00000000000000
//
// a hex base address, a colon, and up to four 48-bit hex words for the
// consecutive addresses from the base. '#' comments and blank lines are
// ignored. Every index of words must be covered exactly once.
func parseArray[T ~uint64](r io.Reader, words []T) (err error) {
	seen := make([]bool, len(words))

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if n := strings.IndexByte(line, '#'); n >= 0 {
			line = line[:n]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		fail := func(_err error) error {
			return ErrRecord{LineNo: lineno, Line: strings.TrimSpace(line), Err: _err}
		}

		addr, ok := strings.CutSuffix(fields[0], ":")
		if !ok {
			return fail(ErrAddressSyntax)
		}
		base, _err := strconv.ParseUint(addr, 16, 32)
		if _err != nil {
			return fail(ErrAddressSyntax)
		}

		for n, field := range fields[1:] {
			value, _err := strconv.ParseUint(field, 16, 48)
			if _err != nil {
				return fail(ErrWordSyntax)
			}

			index := int(base) + n
			if index >= len(words) {
				return fail(ErrAddressRange)
			}
			if seen[index] {
				return fail(ErrAddressDuplicate)
			}

			words[index] = T(value)
			seen[index] = true
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if missing := slices.Index(seen, false); missing >= 0 {
		return ErrTruncated(missing)
	}

	return
}

// loadArray loads one word array dump from fsys.
func loadArray[T ~uint64](fsys fs.FS, name string, words []T) (err error) {
	file, err := fsys.Open(name)
	if err != nil {
		return ErrDataLoad{Source: name, Err: err}
	}
	defer file.Close()

	err = parseArray(file, words)
	if err != nil {
		err = ErrDataLoad{Source: name, Err: err}
	}

	return
}

// LoadRom loads the micro-op and sequence word arrays of one CPU variant
// from the cpuid subdirectory of fsys. The sequence word array is dumped
// with one word per address; only the entry at each triad base is kept,
// since the hardware shares it across the triad.
func LoadRom(fsys fs.FS, cpuid string) (rom *Rom, err error) {
	uops := make([]ucode.Uop, ucode.ROM_SIZE)
	err = loadArray(fsys, path.Join(cpuid, UOP_ARRAY), uops)
	if err != nil {
		return
	}

	raw := make([]uint64, ucode.ROM_SIZE)
	err = loadArray(fsys, path.Join(cpuid, SEQWORD_ARRAY), raw)
	if err != nil {
		return
	}

	seqwords := make([]uint64, int(ucode.ROM_SIZE)/ucode.TRIAD_SIZE)
	for n := range seqwords {
		seqwords[n] = raw[n*ucode.TRIAD_SIZE]
	}

	rom = &Rom{
		CPUID:    cpuid,
		Uops:     uops,
		Seqwords: seqwords,
	}

	return
}

// Variants lists the cpuid subdirectories of fsys that carry a micro-op
// array dump, sorted.
func Variants(fsys fs.FS) (cpuids []string, err error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		ok, _err := regexp.MatchString("(?i)^0x[0-9a-f]+$", name)
		if _err != nil || !ok {
			continue
		}
		_, _err = fs.Stat(fsys, path.Join(name, UOP_ARRAY))
		if _err != nil {
			continue
		}
		cpuids = append(cpuids, name)
	}

	slices.Sort(cpuids)

	return
}
