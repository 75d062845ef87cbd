package risc

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/riscgen/bits"
)

// ImmediateField is a numeric operand.
//
// An aligned immediate (zeroes > 0) stores argument/grain, where grain is
// 2^zeroes: the low zero bits of the argument are implied and the argument
// must be a multiple of the grain.
//
// An immediate bound to an Expression is not supplied by the caller; its
// value is computed from the other operands when a template is assembled.
type ImmediateField struct {
	field
	sign       bits.Sign
	zeroes     int
	ranged     bool
	min, max   int64
	legal      []int64
	expression Expression
}

// NewImmediateField creates an unsigned immediate operand.
func NewImmediateField(name string, r bits.Range) ImmediateField {
	return ImmediateField{
		field: field{name: name, bits: r},
		sign:  bits.SIGN_UNSIGNED,
	}
}

// NewAlignedImmediateField creates an unsigned immediate operand whose low
// zeroes bits are implied.
func NewAlignedImmediateField(name string, r bits.Range, zeroes int) ImmediateField {
	return NewImmediateField(name, r).Aligned(zeroes)
}

func (ImmediateField) templatePart() {}

// Sign returns the storage discipline of the operand.
func (fl ImmediateField) Sign() bits.Sign {
	return fl.sign
}

// Zeroes returns the number of implied low zero bits.
func (fl ImmediateField) Zeroes() int {
	return fl.zeroes
}

// Grain returns the smallest difference between two encodable arguments.
func (fl ImmediateField) Grain() int64 {
	return int64(1) << fl.zeroes
}

// Expression returns the expression the operand is bound to, or nil.
func (fl ImmediateField) Expression() Expression {
	return fl.expression
}

// Bound returns true if the operand is computed by an expression.
func (fl ImmediateField) Bound() bool {
	return fl.expression != nil
}

// MinArgumentValue returns the smallest legal argument.
func (fl ImmediateField) MinArgumentValue() int64 {
	if fl.ranged {
		return fl.min
	}
	return fl.sign.MinArgumentValue(fl.bits) * fl.Grain()
}

// MaxArgumentValue returns the largest legal argument.
func (fl ImmediateField) MaxArgumentValue() int64 {
	if fl.ranged {
		return fl.max
	}
	return fl.sign.MaxArgumentValue(fl.bits) * fl.Grain()
}

func (fl ImmediateField) ArgumentRange() (ArgumentRange, bool) {
	return ArgumentRange{
		Field: fl,
		Min:   fl.MinArgumentValue(),
		Max:   fl.MaxArgumentValue(),
	}, true
}

// check validates an argument against range and alignment.
func (fl ImmediateField) check(arg Argument) (value int64, err error) {
	imm, ok := arg.(Immediate)
	if !ok {
		err = ErrArgumentKind
		return
	}
	value = int64(imm)

	min, max := fl.MinArgumentValue(), fl.MaxArgumentValue()
	if value < min || value > max {
		err = &ErrArgumentRange{Value: value, Min: min, Max: max}
		return
	}

	grain := fl.Grain()
	if value%grain != 0 {
		err = &ErrArgumentAlignment{Value: value, Grain: grain}
		return
	}

	return
}

func (fl ImmediateField) Assemble(arg Argument) (word uint32, err error) {
	value, err := fl.check(arg)
	if err != nil {
		return
	}

	word = fl.sign.Assemble(fl.bits, value/fl.Grain())
	return
}

func (fl ImmediateField) Disassemble(word uint32) Argument {
	return Immediate(fl.sign.Extract(fl.bits, word) * fl.Grain())
}

func (fl ImmediateField) Parse(text string) (arg Argument, err error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}
	arg = Immediate(value)
	return
}

func (fl ImmediateField) LegalTestArguments() []Argument {
	if fl.legal != nil {
		return immediates(fl.legal)
	}
	return immediates(fl.sign.LegalTestArgumentValues(fl.MinArgumentValue(), fl.MaxArgumentValue(), fl.Grain()))
}

// IllegalTestArguments returns min-1, the smallest int64, max+1 and the
// largest int64, leaving out values that would wrap back into range. Aligned
// operands also get a misaligned value.
func (fl ImmediateField) IllegalTestArguments() []Argument {
	min, max := fl.MinArgumentValue(), fl.MaxArgumentValue()

	var values []int64
	add := func(value int64) {
		if !slices.Contains(values, value) {
			values = append(values, value)
		}
	}

	if min > math.MinInt64 {
		add(min - 1)
		add(math.MinInt64)
	}
	if max < math.MaxInt64 {
		add(max + 1)
		add(math.MaxInt64)
	}
	if fl.Grain() > 1 && max-1 >= min {
		add(max - 1)
	}

	return immediates(values)
}

func (fl ImmediateField) String() string {
	return fl.field.String()
}

// WithSign returns a copy of the operand with another sign discipline.
func (fl ImmediateField) WithSign(sign bits.Sign) ImmediateField {
	fl.sign = sign
	fl.checkRange()
	return fl
}

// BeSigned returns a two's complement copy of the operand.
func (fl ImmediateField) BeSigned() ImmediateField {
	return fl.WithSign(bits.SIGN_SIGNED)
}

// BeSignedOrUnsigned returns a copy of the operand that accepts both signed
// and unsigned arguments.
func (fl ImmediateField) BeSignedOrUnsigned() ImmediateField {
	return fl.WithSign(bits.SIGN_SIGNED_OR_UNSIGNED)
}

// Aligned returns a copy of the operand with zeroes implied low bits.
func (fl ImmediateField) Aligned(zeroes int) ImmediateField {
	if zeroes < 0 || zeroes >= bits.WORD_WIDTH {
		definitionf(fl.name, "alignment of %d zeroes", zeroes)
	}
	fl.zeroes = zeroes
	return fl
}

// WithRange returns a copy of the operand whose legal domain is [min, max].
// The domain must be storable in the bits of the operand, if it has any.
func (fl ImmediateField) WithRange(min, max int64) ImmediateField {
	if min > max {
		definitionf(fl.name, "range [%d, %d] is empty", min, max)
	}
	fl.ranged = true
	fl.min, fl.max = min, max
	fl.checkRange()
	return fl
}

// checkRange panics if a declared range is not storable with the sign of
// the operand.
func (fl ImmediateField) checkRange() {
	if !fl.ranged || fl.bits.Omitted() {
		return
	}
	grain := fl.Grain()
	lowest := fl.sign.MinArgumentValue(fl.bits) * grain
	highest := fl.sign.MaxArgumentValue(fl.bits) * grain
	if fl.min < lowest || fl.max > highest {
		definitionf(fl.name, "%v range [%d, %d] does not fit in %v", fl.sign, fl.min, fl.max, fl.bits)
	}
}

// WithLegalTestArguments returns a copy of the operand that tests with the
// given values instead of the boundary values of its range.
func (fl ImmediateField) WithLegalTestArguments(values ...int64) ImmediateField {
	fl.legal = slices.Clone(values)
	if fl.legal == nil {
		fl.legal = []int64{}
	}
	return fl
}

// WithExcludedExternalTestArguments returns a copy of the operand that skips
// the arguments when testing against target.
func (fl ImmediateField) WithExcludedExternalTestArguments(target TestTarget, args ...Argument) ImmediateField {
	fl.excluded = fl.excluded.with(target, args...)
	return fl
}

// BindTo returns a copy of the operand computed by an expression.
func (fl ImmediateField) BindTo(expression Expression) ImmediateField {
	if fl.bits.Omitted() {
		definitionf(fl.name, "bound operand has no bits")
	}
	fl.expression = expression
	return fl
}
