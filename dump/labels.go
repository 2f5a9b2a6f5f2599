package dump

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/0xCCF4/udump/ucode"
)

// Labels is the sparse mapping from address to symbolic name. It only
// annotates output and never affects decoding.
type Labels map[ucode.Addr]string

// evalAddress does compile-time evaluation of a label address field.
// Plain literals ("0x0190") are the common case, but any integer
// expression is accepted ("0x0190 + 2*4").
func evalAddress(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "addr", prog, nil)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrAddressExpr(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrAddressExpr(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok || value < 0 {
		err = ErrAddressExpr(expr)
	}
	return
}

// LoadLabels reads "address,name" records from a CSV source in fsys.
// A record with a duplicated address replaces the earlier one: the label
// sources concatenate generations of annotations, and the newest wins.
func LoadLabels(fsys fs.FS, name string) (labels Labels, err error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, ErrDataLoad{Source: name, Err: err}
	}
	defer file.Close()

	labels = Labels{}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	for {
		record, _err := reader.Read()
		if errors.Is(_err, io.EOF) {
			break
		}
		if _err != nil {
			return nil, ErrDataLoad{Source: name, Err: _err}
		}
		lineno, _ := reader.FieldPos(0)

		fail := func(_err error) (Labels, error) {
			return nil, ErrDataLoad{
				Source: name,
				Err:    ErrRecord{LineNo: lineno, Line: record[0] + "," + record[1], Err: _err},
			}
		}

		value, _err := evalAddress(record[0])
		if _err != nil {
			return fail(_err)
		}
		if len(record[1]) == 0 {
			return fail(ErrLabelEmpty)
		}

		labels[ucode.Addr(value)] = record[1]
	}

	return
}
