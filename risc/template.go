// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package risc

import (
	"fmt"
	"slices"
	"strings"
)

// Part is an element of a template definition: an operand, a constant, an
// option field, a bound immediate, literal syntax, a mnemonic suffix, or a
// constraint.
type Part interface {
	templatePart()
}

// Syntax is literal assembler text between operands, ie ", [" or "]!".
// Whitespace in syntax is not significant when parsing.
type Syntax string

func (Syntax) templatePart() {}

// suffix is a symbolic operand rendered as part of the mnemonic.
type suffix struct {
	operand SymbolicField
}

func (suffix) templatePart() {}

// Suffix places a symbolic operand at the end of the mnemonic, ie the
// condition of an ARM instruction.
func Suffix(operand SymbolicField) Part {
	return suffix{operand: operand}
}

// Template is the encoding of one form of an instruction.
//
// The mnemonic identifies the template; several templates may share an
// external name, the mnemonic text used in assembler syntax, and be told
// apart by their operand syntax alone.
type Template struct {
	mnemonic  string
	external  string
	reference string

	parts       []Part
	operands    []Operand
	bound       []ImmediateField
	options     []OptionField
	constants   []Constant
	constraints []Constraint
	suffixes    []Part // suffix and OptionField, in order
	body        []Part // Syntax and non-suffix operands, in order

	pattern uint32 // constant bits
	mask    uint32 // positions of constant bits
}

// NewTemplate builds a template from its parts.
//
// The parts must account for every bit of the word exactly once: the bits
// of operands, bound operands, option fields and constants may not overlap,
// and together they must cover the word. Any violation panics.
func NewTemplate(mnemonic string, parts ...Part) (t *Template) {
	t = &Template{
		mnemonic: mnemonic,
		external: mnemonic,
		parts:    slices.Clone(parts),
	}

	var used uint32
	claim := func(fl Field) {
		r := fl.BitRange()
		if r.Omitted() {
			return
		}
		m := r.InstructionMask()
		if used&m != 0 {
			definitionf(mnemonic, "%v %v overlaps bits 0x%08x", fl.Name(), r, used&m)
		}
		used |= m
	}

	addOperand := func(op Operand) {
		for _, other := range t.operands {
			if other.Name() == op.Name() {
				definitionf(mnemonic, "operand %v duplicated", op.Name())
			}
		}
		claim(op)
		t.operands = append(t.operands, op)
	}

	for n, part := range parts {
		switch p := part.(type) {
		case nil:
			definitionf(mnemonic, "part %d is nil", n)
		case Constant:
			claim(p.Field)
			t.constants = append(t.constants, p)
			t.pattern |= p.Bits()
			t.mask |= p.Field.BitRange().InstructionMask()
		case ImmediateField:
			if p.Bound() {
				claim(p)
				t.bound = append(t.bound, p)
				continue
			}
			addOperand(p)
			t.body = append(t.body, p)
		case InputField:
			addOperand(p)
			t.body = append(t.body, p)
		case SymbolicField:
			addOperand(p)
			t.body = append(t.body, p)
		case suffix:
			addOperand(p.operand)
			t.suffixes = append(t.suffixes, p)
		case OptionField:
			if len(p.options) == 0 {
				definitionf(mnemonic, "option field %v has no options", p.Name())
			}
			claim(p)
			t.options = append(t.options, p)
			t.suffixes = append(t.suffixes, p)
		case Constraint:
			t.constraints = append(t.constraints, p)
		case Syntax:
			t.body = append(t.body, p)
		default:
			definitionf(mnemonic, "part %d of unknown kind %T", n, part)
		}
	}

	if used != 0xffffffff {
		definitionf(mnemonic, "bits 0x%08x not covered", ^used)
	}

	return
}

// WithExternalName returns a copy of the template with another external name.
func (t *Template) WithExternalName(name string) *Template {
	clone := *t
	clone.external = name
	return &clone
}

// WithReference returns a copy of the template with a manual cross reference.
func (t *Template) WithReference(reference string) *Template {
	clone := *t
	clone.reference = reference
	return &clone
}

// Mnemonic returns the unique name of the template.
func (t *Template) Mnemonic() string {
	return t.mnemonic
}

// ExternalName returns the mnemonic text of the template in assembler syntax.
func (t *Template) ExternalName() string {
	return t.external
}

// Reference returns the manual cross reference of the template.
func (t *Template) Reference() string {
	return t.reference
}

// Parts returns the parts of the template.
func (t *Template) Parts() []Part {
	return slices.Clone(t.parts)
}

// Operands returns the operands in argument order.
func (t *Template) Operands() []Operand {
	return slices.Clone(t.operands)
}

// Bound returns the operands computed by expressions.
func (t *Template) Bound() []ImmediateField {
	return slices.Clone(t.bound)
}

// Options returns the option fields.
func (t *Template) Options() []OptionField {
	return slices.Clone(t.options)
}

// Constants returns the constant parts.
func (t *Template) Constants() []Constant {
	return slices.Clone(t.constants)
}

// Constraints returns the hard and test only constraints.
func (t *Template) Constraints() []Constraint {
	return slices.Clone(t.constraints)
}

// Pattern returns the bits fixed by the constants and the default options,
// and the mask of those bits.
func (t *Template) Pattern() (value, mask uint32) {
	value, mask = t.pattern, t.mask
	for _, fl := range t.options {
		opt, ok := fl.DefaultOption()
		if !ok {
			continue
		}
		value |= fl.BitRange().AssembleUnsignedInt(opt.Value)
		mask |= fl.BitRange().InstructionMask()
	}
	return
}

// Matches returns true if the word has the constant bits of the template,
// and a known option in each option field.
func (t *Template) Matches(word uint32) bool {
	if word&t.mask != t.pattern {
		return false
	}
	for _, fl := range t.options {
		if _, ok := fl.Disassemble(word); !ok {
			return false
		}
	}
	return true
}

// OperandIndex returns the argument position of an operand, or -1.
func (t *Template) OperandIndex(operand Field) int {
	return slices.IndexFunc(t.operands, func(op Operand) bool {
		return SameField(op, operand)
	})
}

// Argument returns the argument for an operand from an argument list.
func (t *Template) Argument(args []Argument, operand Field) (arg Argument, err error) {
	n := t.OperandIndex(operand)
	if n < 0 || n >= len(args) {
		err = &ErrOperand{Template: t.mnemonic, Operand: operand.Name(), Err: ErrOperandUnknown}
		return
	}
	arg = args[n]
	return
}

// Check returns the first hard constraint the arguments violate.
func (t *Template) Check(args []Argument) (err error) {
	for _, c := range t.constraints {
		if c.testOnly {
			continue
		}
		if !c.Check(t, args) {
			err = &ErrConstraintFailed{Template: t.mnemonic, Constraint: c.name}
			return
		}
	}
	return
}

// CheckAll returns true if the arguments satisfy all constraints, test only
// constraints included.
func (t *Template) CheckAll(args []Argument) bool {
	for _, c := range t.constraints {
		if !c.Check(t, args) {
			return false
		}
	}
	return true
}

// Assemble encodes an instruction word.
//
// There must be one argument per operand, in operand order. Options that
// are not given take the default of their option field.
func (t *Template) Assemble(args []Argument, opts ...Option) (word uint32, err error) {
	if len(args) != len(t.operands) {
		err = &ErrArguments{Template: t.mnemonic, Want: len(t.operands), Got: len(args)}
		return
	}

	word = t.pattern

	for n, op := range t.operands {
		var bits uint32
		bits, err = op.Assemble(args[n])
		if err != nil {
			err = &ErrOperand{Template: t.mnemonic, Operand: op.Name(), Err: err}
			word = 0
			return
		}
		word |= bits
	}

	err = t.Check(args)
	if err != nil {
		word = 0
		return
	}

	for _, fl := range t.bound {
		var value int64
		var bits uint32
		value, err = fl.expression.Evaluate(t, args)
		if err == nil {
			bits, err = fl.Assemble(Immediate(value))
		}
		if err != nil {
			err = &ErrOperand{Template: t.mnemonic, Operand: fl.Name(), Err: err}
			word = 0
			return
		}
		word |= bits
	}

	for _, opt := range opts {
		if !slices.ContainsFunc(t.options, func(fl OptionField) bool { return fl.Name() == opt.Field }) {
			err = &ErrOperand{Template: t.mnemonic, Operand: opt.Field, Err: ErrOptionUnknown}
			word = 0
			return
		}
	}

	for _, fl := range t.options {
		opt, ok := fl.DefaultOption()
		for _, chosen := range opts {
			if chosen.Field == fl.Name() {
				opt, ok = chosen, true
			}
		}
		if !ok {
			err = &ErrOperand{Template: t.mnemonic, Operand: fl.Name(), Err: ErrOptionMissing}
			word = 0
			return
		}
		var bits uint32
		bits, err = fl.Assemble(opt)
		if err != nil {
			err = &ErrOperand{Template: t.mnemonic, Operand: fl.Name(), Err: err}
			word = 0
			return
		}
		word |= bits
	}

	return
}

// Disassemble decodes the arguments and options of a word matching the
// template.
func (t *Template) Disassemble(word uint32) (args []Argument, opts []Option, err error) {
	if !t.Matches(word) {
		err = ErrWord(word)
		return
	}

	args = make([]Argument, len(t.operands))
	for n, op := range t.operands {
		args[n] = op.Disassemble(word)
	}

	for _, fl := range t.options {
		opt, _ := fl.Disassemble(word)
		opts = append(opts, opt)
	}

	return
}

// String describes the template, ie "addlsl(add) cond rd rn rm shift".
func (t *Template) String() string {
	var b strings.Builder
	b.WriteString(t.mnemonic)
	if t.external != t.mnemonic {
		fmt.Fprintf(&b, "(%v)", t.external)
	}
	for _, op := range t.operands {
		b.WriteByte(' ')
		b.WriteString(op.Name())
	}
	return b.String()
}
