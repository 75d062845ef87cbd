package bits

import (
	"github.com/ezrec/riscgen/translate"
)

var f = translate.From

// ErrPosition is raised (as a panic) for a range that does not fit the word.
type ErrPosition struct {
	Order Order
	First int
	Last  int
}

func (err *ErrPosition) Error() string {
	return f("bit range %d..%d (%v) outside of %d bit word", err.First, err.Last, err.Order, WORD_WIDTH)
}

// ErrGrain is raised (as a panic) for a non-positive test value grain.
type ErrGrain int64

func (err ErrGrain) Error() string {
	return f("grain %d is not positive", int64(err))
}
