package risc

import (
	"errors"
	"fmt"

	"github.com/ezrec/riscgen/translate"
)

var f = translate.From

var (
	// Assembly errors
	ErrRange          = errors.New(f("argument out of range"))
	ErrAlignment      = errors.New(f("argument misaligned"))
	ErrConstraint     = errors.New(f("constraint violated"))
	ErrArgumentCount  = errors.New(f("wrong number of arguments"))
	ErrArgumentKind   = errors.New(f("wrong kind of argument"))
	ErrSymbol         = errors.New(f("symbol unknown"))
	ErrOptionMissing  = errors.New(f("option missing"))
	ErrOptionUnknown  = errors.New(f("option unknown"))
	ErrOperandUnknown = errors.New(f("operand unknown"))
	ErrExpression     = errors.New(f("expression invalid"))

	// Disassembly errors
	ErrNoMatch = errors.New(f("no template matches"))

	// Text errors
	ErrSyntaxMismatch = errors.New(f("syntax mismatch"))

	// Assembler errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrMacroSyntax      = errors.New(f(".macro syntax"))
	ErrMacroNesting     = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate   = errors.New(f(".macro duplicated"))
	ErrMacroLonely      = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm  = errors.New(f(".endm without .macro"))
	ErrMacroRecursion   = errors.New(f(".macro expands itself"))
	ErrMnemonicUnknown  = errors.New(f("mnemonic unknown"))
	ErrOperandsInvalid  = errors.New(f("operands invalid"))
	ErrDirectiveUnknown = errors.New(f("directive unknown"))
)

// ErrArgumentRange is an argument outside of the range of its operand.
type ErrArgumentRange struct {
	Value int64
	Min   int64
	Max   int64
}

func (err *ErrArgumentRange) Error() string {
	return f("%v not in [%v, %v]", fmt.Sprint(err.Value), fmt.Sprint(err.Min), fmt.Sprint(err.Max))
}

func (err *ErrArgumentRange) Unwrap() error {
	return ErrRange
}

// ErrArgumentAlignment is an argument that is not a multiple of the grain
// of its operand.
type ErrArgumentAlignment struct {
	Value int64
	Grain int64
}

func (err *ErrArgumentAlignment) Error() string {
	return f("%v is not a multiple of %v", fmt.Sprint(err.Value), fmt.Sprint(err.Grain))
}

func (err *ErrArgumentAlignment) Unwrap() error {
	return ErrAlignment
}

// ErrConstraintFailed names the constraint that rejected an argument list.
type ErrConstraintFailed struct {
	Template   string
	Constraint string
}

func (err *ErrConstraintFailed) Error() string {
	return f("%v: %v", err.Template, err.Constraint)
}

func (err *ErrConstraintFailed) Unwrap() error {
	return ErrConstraint
}

// ErrOperand locates an error in a single operand of a template.
type ErrOperand struct {
	Template string
	Operand  string
	Err      error
}

func (err *ErrOperand) Error() string {
	return f("%v %v: %v", err.Template, err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrArguments is an argument list whose length does not match the
// operands of a template.
type ErrArguments struct {
	Template string
	Want     int
	Got      int
}

func (err *ErrArguments) Error() string {
	return f("%v: want %v arguments, got %v", err.Template, fmt.Sprint(err.Want), fmt.Sprint(err.Got))
}

func (err *ErrArguments) Unwrap() error {
	return ErrArgumentCount
}

// ErrWord is an instruction word that no template could disassemble.
type ErrWord uint32

func (err ErrWord) Error() string {
	return f("0x%08x: %v", uint32(err), ErrNoMatch)
}

func (err ErrWord) Unwrap() error {
	return ErrNoMatch
}

// ErrDefinition is the panic value for a malformed instruction table.
type ErrDefinition struct {
	What   string
	Detail string
}

func (err *ErrDefinition) Error() string {
	return f("definition of %v: %v", err.What, err.Detail)
}

// ErrInternal is the panic value for an inconsistency that an instruction
// table should have made impossible, such as an unmapped symbol.
type ErrInternal struct {
	What   string
	Detail string
}

func (err *ErrInternal) Error() string {
	return f("internal error in %v: %v", err.What, err.Detail)
}

// definitionf panics with an ErrDefinition.
func definitionf(what string, format string, args ...any) {
	panic(&ErrDefinition{What: what, Detail: fmt.Sprintf(format, args...)})
}

// ErrSyntax locates an assembler error in its source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseSymbol string

func (err ErrParseSymbol) Error() string {
	return f("'%v' is not a known symbol", string(err))
}

func (err ErrParseSymbol) Unwrap() error {
	return ErrSymbol
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Unwrap() error {
	return ErrExpression
}

// ErrMacro locates an error inside a macro expansion.
type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
