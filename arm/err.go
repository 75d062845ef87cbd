package arm

import (
	"github.com/ezrec/riscgen/risc"
	"github.com/ezrec/riscgen/translate"
)

var f = translate.From

// ErrImmediate is a data processing immediate that no rotation encodes.
type ErrImmediate int64

func (err ErrImmediate) Error() string {
	return f("immediate 0x%08x has no rotated encoding", uint32(err))
}

func (err ErrImmediate) Unwrap() error {
	return risc.ErrRange
}
