package corpus

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/riscgen/risc"
	"github.com/ezrec/riscgen/translate"
)

var f = translate.From

var (
	ErrAssemble     = translate.Error("legal arguments rejected")
	ErrRoundTrip    = translate.Error("round trip mismatch")
	ErrText         = translate.Error("text round trip mismatch")
	ErrDisassembler = translate.Error("disassembler mismatch")
	ErrAccepted     = translate.Error("illegal arguments accepted")
	ErrNoTestCases  = translate.Error("no legal test case")
	ErrReference    = translate.Error("reference mismatch")
)

// Failure is a test case of a template that did not pass a check.
type Failure struct {
	Template  string          // Mnemonic of the template.
	Check     error           // Check that failed.
	Arguments []risc.Argument // Arguments of the test case.
	Word      uint32          // Instruction word, if one was assembled.
	Text      string          // Assembler text, if any was rendered.
	Err       error           // Underlying error, if any.
}

func (err *Failure) Error() string {
	detail := ""
	if err.Err != nil {
		detail = err.Err.Error()
	}
	return f("%v: %v (0x%08x %q) %v\n%v", err.Template, err.Check, err.Word, err.Text, detail,
		spew.Sdump(err.Arguments))
}

func (err *Failure) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Check}
	}
	return []error{err.Check, err.Err}
}

// String is a short description of the failure without the argument dump.
func (err *Failure) String() string {
	return fmt.Sprintf("%v: %v %v", err.Template, err.Check, err.Arguments)
}
