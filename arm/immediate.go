package arm

import (
	"slices"

	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// ror rotates a word right.
func ror(value uint32, count int) uint32 {
	count &= 31
	return value>>count | value<<(32-count)
}

// EncodeImmediate returns the rotation and the 8 bit value that encode a
// data processing immediate, preferring the smallest rotation.
func EncodeImmediate(value uint32) (rotate int, immed8 uint32, ok bool) {
	for rotate = 0; rotate < 16; rotate++ {
		immed8 = ror(value, 32-2*rotate)
		if immed8 <= 0xff {
			ok = true
			return
		}
	}
	rotate, immed8 = 0, 0
	return
}

// DecodeImmediate returns the value of a rotated 8 bit immediate.
func DecodeImmediate(rotate int, immed8 uint32) uint32 {
	return ror(immed8&0xff, 2*rotate)
}

// immediateBytes are the byte patterns rotated into the legal test
// arguments of the immediate shifter operand.
var immediateBytes = []uint32{0, 1, 31, 32, 33, 63, 64, 65, 127, 128, 129, 254, 255}

// immediateLegalValues returns every byte pattern at every even rotation.
func immediateLegalValues() (values []int64) {
	for _, b := range immediateBytes {
		for rotate := 0; rotate < 16; rotate++ {
			value := int64(ror(b, 2*rotate))
			if !slices.Contains(values, value) {
				values = append(values, value)
			}
		}
	}
	return
}

// Immediate shifter operand: a 32 bit argument, stored as an 8 bit value
// rotated right by twice a 4 bit rotation.
var (
	immediate = risc.NewImmediateField("imm", bits.Omitted()).
			BeSignedOrUnsigned().
			WithRange(-1<<31, 1<<32-1).
			WithLegalTestArguments(immediateLegalValues()...)

	immediateIn = risc.NewInputField(immediate, func(word uint32) int64 {
		return int64(DecodeImmediate(int(word>>8&0xf), word&0xff))
	})

	rotateImm = risc.NewImmediateField("rotate_imm", bits.Descending(11, 8)).
			BindTo(risc.ExpressionFunc(func(t *risc.Template, args []risc.Argument) (value int64, err error) {
			rotate, _, err := encodeArgument(t, args)
			value = int64(rotate)
			return
		}))

	immedByte = risc.NewImmediateField("immed_8", bits.Descending(7, 0)).
			BindTo(risc.ExpressionFunc(func(t *risc.Template, args []risc.Argument) (value int64, err error) {
			_, b, err := encodeArgument(t, args)
			value = int64(b)
			return
		}))

	immediateEncodable = risc.Require("imm is encodable", func(t *risc.Template, args []risc.Argument) bool {
		_, _, err := encodeArgument(t, args)
		return err == nil
	})
)

// encodeArgument encodes the immediate argument of a template.
func encodeArgument(t *risc.Template, args []risc.Argument) (rotate int, immed8 uint32, err error) {
	arg, err := t.Argument(args, immediateIn)
	if err != nil {
		return
	}
	rotate, immed8, ok := EncodeImmediate(uint32(arg.Value()))
	if !ok {
		err = ErrImmediate(arg.Value())
	}
	return
}
