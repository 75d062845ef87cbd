package risc

import (
	"slices"
	"strings"

	"github.com/ezrec/riscgen/bits"
)

// SymbolicField is an operand whose arguments are the symbols of a
// Symbolizer. It has no numeric argument range.
type SymbolicField struct {
	field
	symbolizer     *Symbolizer
	textDefault    Symbol
	hasTextDefault bool
}

// NewSymbolicField creates a symbolic operand. Every symbol must fit in the
// bits of the operand.
func NewSymbolicField(name string, r bits.Range, symbolizer *Symbolizer) SymbolicField {
	if int64(symbolizer.Len()-1) > int64(r.ValueMask()) {
		definitionf(name, "%d %v symbols do not fit in %v", symbolizer.Len(), symbolizer.Name(), r)
	}
	return SymbolicField{
		field:      field{name: name, bits: r},
		symbolizer: symbolizer,
	}
}

func (SymbolicField) templatePart() {}

// Symbolizer returns the symbol set of the operand.
func (fl SymbolicField) Symbolizer() *Symbolizer {
	return fl.symbolizer
}

// TextDefault returns the symbol that is left out of assembler text.
func (fl SymbolicField) TextDefault() (sym Symbol, ok bool) {
	return fl.textDefault, fl.hasTextDefault
}

// WithTextDefault returns a copy of the operand that renders sym as empty
// text, and parses empty text as sym. Used for mnemonic suffixes such as
// the ARM 'always' condition.
func (fl SymbolicField) WithTextDefault(sym Symbol) SymbolicField {
	if !fl.symbolizer.Contains(sym) {
		definitionf(fl.name, "text default %v is not a %v symbol", sym, fl.symbolizer.Name())
	}
	fl.textDefault = sym
	fl.hasTextDefault = true
	return fl
}

// WithExcludedExternalTestArguments returns a copy of the operand that skips
// the arguments when testing against target.
func (fl SymbolicField) WithExcludedExternalTestArguments(target TestTarget, args ...Argument) SymbolicField {
	fl.excluded = fl.excluded.with(target, args...)
	return fl
}

func (fl SymbolicField) ArgumentRange() (ar ArgumentRange, ok bool) {
	return
}

func (fl SymbolicField) Assemble(arg Argument) (word uint32, err error) {
	sym, ok := arg.(Symbol)
	if !ok {
		err = ErrArgumentKind
		return
	}
	if !fl.symbolizer.Contains(sym) {
		err = ErrParseSymbol(sym.String())
		return
	}

	word = fl.bits.AssembleUnsignedInt(sym.Value())
	return
}

// Disassemble returns the symbol held in a word. A bit pattern without a
// symbol means the symbolizer of the operand is incomplete, and panics.
func (fl SymbolicField) Disassemble(word uint32) Argument {
	value := fl.bits.ExtractUnsignedInt(word)
	sym, ok := fl.symbolizer.Lookup(value)
	if !ok {
		panic(&ErrInternal{
			What:   fl.name,
			Detail: f("no %v symbol for value %v", fl.symbolizer.Name(), value),
		})
	}
	return sym
}

func (fl SymbolicField) Parse(text string) (arg Argument, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 && fl.hasTextDefault {
		arg = fl.textDefault
		return
	}
	sym, ok := fl.symbolizer.Parse(text)
	if !ok {
		err = ErrParseSymbol(text)
		return
	}
	arg = sym
	return
}

// Text returns the assembler text of an argument.
func (fl SymbolicField) Text(arg Argument) string {
	if fl.hasTextDefault && arg == Argument(fl.textDefault) {
		return ""
	}
	return arg.String()
}

func (fl SymbolicField) LegalTestArguments() (args []Argument) {
	for sym := range fl.symbolizer.Symbols() {
		args = append(args, sym)
	}
	return
}

func (fl SymbolicField) IllegalTestArguments() []Argument {
	return nil
}

func (fl SymbolicField) String() string {
	return fl.field.String()
}

// Symbols returns the symbols of the operand.
func (fl SymbolicField) Symbols() []Symbol {
	return slices.Collect(fl.symbolizer.Symbols())
}
