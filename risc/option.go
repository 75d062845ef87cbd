package risc

import (
	"fmt"
	"slices"

	"github.com/ezrec/riscgen/bits"
)

// Option is one named alternative of an OptionField.
type Option struct {
	Field    string // Name of the option field.
	Name     string // Name of the option, empty for the default.
	Value    int64  // Value placed in the option field bits.
	External string // Text appended to the mnemonic.
}

func (opt Option) String() string {
	return fmt.Sprintf("%v=%q", opt.Field, opt.Name)
}

// OptionField is a closed set of named alternatives. The option with the
// empty name is the default, used when an assembly does not choose one.
type OptionField struct {
	field
	options []Option
}

// NewOptionField creates an option field without any options.
func NewOptionField(name string, r bits.Range) OptionField {
	return OptionField{
		field: field{name: name, bits: r},
	}
}

func (OptionField) templatePart() {}

// WithOption returns a copy of the field with one more option. Duplicate
// names or values panic.
func (fl OptionField) WithOption(name string, value int64, external string) OptionField {
	if value < 0 || value > int64(fl.bits.ValueMask()) {
		definitionf(fl.name, "option %q value %d does not fit in %v", name, value, fl.bits)
	}
	for _, opt := range fl.options {
		if opt.Name == name {
			definitionf(fl.name, "option %q duplicated", name)
		}
		if opt.Value == value {
			definitionf(fl.name, "option %q value %d duplicates option %q", name, value, opt.Name)
		}
	}

	fl.options = append(slices.Clip(fl.options), Option{
		Field:    fl.name,
		Name:     name,
		Value:    value,
		External: external,
	})
	return fl
}

// Options returns the options in declaration order.
func (fl OptionField) Options() []Option {
	return slices.Clone(fl.options)
}

// Option returns the option with a name.
func (fl OptionField) Option(name string) (opt Option, ok bool) {
	for _, opt = range fl.options {
		if opt.Name == name {
			ok = true
			return
		}
	}
	opt = Option{}
	return
}

// DefaultOption returns the option with the empty name.
func (fl OptionField) DefaultOption() (opt Option, ok bool) {
	return fl.Option("")
}

// Lookup returns the option with a value.
func (fl OptionField) Lookup(value int64) (opt Option, ok bool) {
	for _, opt = range fl.options {
		if opt.Value == value {
			ok = true
			return
		}
	}
	opt = Option{}
	return
}

// Assemble returns the bits of an option of this field.
func (fl OptionField) Assemble(opt Option) (word uint32, err error) {
	known, ok := fl.Option(opt.Name)
	if !ok || opt.Field != fl.name || known != opt {
		err = ErrOptionUnknown
		return
	}
	word = fl.bits.AssembleUnsignedInt(opt.Value)
	return
}

// Disassemble returns the option held in a word.
func (fl OptionField) Disassemble(word uint32) (opt Option, ok bool) {
	return fl.Lookup(fl.bits.ExtractUnsignedInt(word))
}

func (fl OptionField) String() string {
	return fl.field.String()
}
