package trace

import (
	"github.com/0xCCF4/udump/translate"
	"github.com/0xCCF4/udump/ucode"
)

var f = translate.From

// ErrAddressRange reports that the driver reached an address outside the
// loaded stores. This is a driver defect, never a recoverable condition.
type ErrAddressRange ucode.Addr

func (ea ErrAddressRange) Error() string {
	return f("invariant violated: %v outside the loaded rom", ucode.Addr(ea))
}

func (ea ErrAddressRange) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressRange)
	return
}
