package dump

import (
	"errors"

	"github.com/0xCCF4/udump/translate"
	"github.com/0xCCF4/udump/ucode"
)

var f = translate.From

var (
	// Array loader errors
	ErrAddressSyntax    = errors.New(f("record must start with an address field"))
	ErrAddressRange     = errors.New(f("address out of range"))
	ErrAddressDuplicate = errors.New(f("address duplicated"))
	ErrWordSyntax       = errors.New(f("not a 48-bit hex word"))

	// Label loader errors
	ErrLabelEmpty = errors.New(f("label name empty"))
)

// ErrDataLoad wraps a failure to load a data source with the source name.
// Nothing of a failed source is exposed; loading is all-or-nothing.
type ErrDataLoad struct {
	Source string
	Err    error
}

func (err ErrDataLoad) Error() string {
	return f("%v: %v", err.Source, err.Err)
}

func (err ErrDataLoad) Unwrap() error {
	return err.Err
}

// ErrRecord locates a malformed record within a data source.
type ErrRecord struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrRecord) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrRecord) Unwrap() error {
	return err.Err
}

// ErrTruncated reports the first address a word array carries no word for.
type ErrTruncated ucode.Addr

func (et ErrTruncated) Error() string {
	return f("no word for %v", ucode.Addr(et))
}

func (et ErrTruncated) Is(err error) (ok bool) {
	_, ok = err.(ErrTruncated)
	return
}

// ErrAddressExpr reports a label address field that does not evaluate to an
// integer.
type ErrAddressExpr string

func (err ErrAddressExpr) Error() string {
	return f("'%v' is not an address", string(err))
}
