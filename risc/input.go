package risc

import (
	"github.com/ezrec/riscgen/bits"
)

// Decoder recovers the argument of an input operand from a word.
type Decoder func(word uint32) int64

// InputField is a virtual operand. It occupies no bits of the word; its
// argument is only read by the expressions of bound operands. The argument
// range and the test arguments are those of the immediate it stands in for.
type InputField struct {
	field
	source ImmediateField
	decode Decoder
}

// NewInputField creates an input operand standing in for source, which
// also names it. decode recovers the argument for disassembly.
func NewInputField(source ImmediateField, decode Decoder) InputField {
	if decode == nil {
		definitionf(source.Name(), "input operand without a decoder")
	}
	return InputField{
		field: field{
			name:     source.Name(),
			bits:     bits.Omitted(),
			excluded: source.excluded,
		},
		source: source,
		decode: decode,
	}
}

func (InputField) templatePart() {}

// Source returns the immediate the operand stands in for.
func (fl InputField) Source() ImmediateField {
	return fl.source
}

func (fl InputField) ArgumentRange() (ar ArgumentRange, ok bool) {
	ar, ok = fl.source.ArgumentRange()
	ar.Field = fl
	return
}

// Assemble checks the argument and contributes no bits.
func (fl InputField) Assemble(arg Argument) (word uint32, err error) {
	_, err = fl.source.check(arg)
	return
}

func (fl InputField) Disassemble(word uint32) Argument {
	return Immediate(fl.decode(word))
}

func (fl InputField) Parse(text string) (Argument, error) {
	return fl.source.Parse(text)
}

func (fl InputField) LegalTestArguments() []Argument {
	return fl.source.LegalTestArguments()
}

func (fl InputField) IllegalTestArguments() []Argument {
	return fl.source.IllegalTestArguments()
}

// WithExcludedExternalTestArguments returns a copy of the operand that skips
// the arguments when testing against target.
func (fl InputField) WithExcludedExternalTestArguments(target TestTarget, args ...Argument) InputField {
	fl.excluded = fl.excluded.with(target, args...)
	return fl
}

func (fl InputField) String() string {
	return fl.field.String()
}
