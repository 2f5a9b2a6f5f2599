package ucode

import (
	"errors"

	"github.com/0xCCF4/udump/translate"
)

var f = translate.From

var (
	// Sequence word decode errors
	ErrSeqwordLength  = errors.New(f("seqword length"))
	ErrSeqwordCrc     = errors.New(f("seqword crc"))
	ErrSeqwordGoto    = errors.New(f("seqword goto address"))
	ErrSeqwordSync    = errors.New(f("seqword sync"))
	ErrSeqwordControl = errors.New(f("seqword control"))
)
