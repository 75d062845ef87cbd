package risc

import (
	"iter"
	"maps"
	"strconv"
	"strings"
)

// Argument is a value supplied for an operand of a template.
type Argument interface {
	Value() int64   // Numeric value placed in the operand bits.
	String() string // Text of the argument in assembler syntax.
}

// Immediate is a numeric argument.
type Immediate int64

func (imm Immediate) Value() int64 {
	return int64(imm)
}

func (imm Immediate) String() string {
	return strconv.FormatInt(int64(imm), 10)
}

// Symbol is an enumerated argument, such as a register or a condition code.
// Symbols are created by a Symbolizer.
type Symbol struct {
	name  string
	value int64
}

func (sym Symbol) Name() string {
	return sym.name
}

func (sym Symbol) Value() int64 {
	return sym.value
}

func (sym Symbol) String() string {
	return sym.name
}

// Symbolizer maps between the bit patterns of a symbolic operand and its
// symbols. Values are dense, starting from zero.
type Symbolizer struct {
	name    string
	byValue []Symbol
	byName  map[string]Symbol
}

// NewSymbolizer creates a symbolizer whose n-th name has the value n.
// Names are matched without regard to case.
func NewSymbolizer(name string, names ...string) (s *Symbolizer) {
	s = &Symbolizer{
		name:    name,
		byValue: make([]Symbol, 0, len(names)),
		byName:  make(map[string]Symbol, len(names)),
	}

	for n, sym_name := range names {
		key := strings.ToLower(sym_name)
		if len(key) == 0 {
			definitionf(name, "symbol %d has no name", n)
		}
		if _, ok := s.byName[key]; ok {
			definitionf(name, "symbol %q duplicated", sym_name)
		}
		sym := Symbol{name: sym_name, value: int64(n)}
		s.byValue = append(s.byValue, sym)
		s.byName[key] = sym
	}

	return
}

// Alias returns a copy of the symbolizer that also parses alias as the
// symbol with the given value.
func (s *Symbolizer) Alias(alias string, value int64) *Symbolizer {
	sym, ok := s.Lookup(value)
	if !ok {
		definitionf(s.name, "alias %q for unknown value %d", alias, value)
	}
	key := strings.ToLower(alias)
	if _, ok := s.byName[key]; ok {
		definitionf(s.name, "alias %q duplicated", alias)
	}

	clone := &Symbolizer{
		name:    s.name,
		byValue: s.byValue,
		byName:  maps.Clone(s.byName),
	}
	clone.byName[key] = sym

	return clone
}

// Name returns the name of the symbol set.
func (s *Symbolizer) Name() string {
	return s.name
}

// Len returns the number of symbols.
func (s *Symbolizer) Len() int {
	return len(s.byValue)
}

// Lookup returns the symbol for a value.
func (s *Symbolizer) Lookup(value int64) (sym Symbol, ok bool) {
	if value < 0 || value >= int64(len(s.byValue)) {
		return
	}
	sym, ok = s.byValue[value], true
	return
}

// At returns the symbol for a value, which must exist.
func (s *Symbolizer) At(value int64) Symbol {
	sym, ok := s.Lookup(value)
	if !ok {
		definitionf(s.name, "no symbol for %d", value)
	}
	return sym
}

// Parse returns the symbol with the name or alias.
func (s *Symbolizer) Parse(name string) (sym Symbol, ok bool) {
	sym, ok = s.byName[strings.ToLower(name)]
	return
}

// Contains returns true if the symbol belongs to this symbolizer.
func (s *Symbolizer) Contains(sym Symbol) bool {
	known, ok := s.Lookup(sym.value)
	return ok && known == sym
}

// Symbols iterates over the symbols in value order.
func (s *Symbolizer) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, sym := range s.byValue {
			if !yield(sym) {
				return
			}
		}
	}
}
