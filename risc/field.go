package risc

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ezrec/riscgen/bits"
)

// Field is a named occupant of a bit range of the instruction word.
type Field interface {
	Name() string
	BitRange() bits.Range
}

// Operand is a field whose value is supplied by the caller of Assemble, and
// recovered by Disassemble.
type Operand interface {
	Field
	Part

	// Assemble returns the operand bits for an argument, or an error if the
	// argument is out of range, misaligned, or of the wrong kind.
	Assemble(arg Argument) (uint32, error)
	// Disassemble returns the argument held in a word.
	Disassemble(word uint32) Argument
	// Parse reads an argument from its assembler text.
	Parse(text string) (Argument, error)
	// ArgumentRange returns the numeric domain of the operand, if it has one.
	ArgumentRange() (ArgumentRange, bool)

	LegalTestArguments() []Argument
	IllegalTestArguments() []Argument
	ExcludedTestArguments(target TestTarget) []Argument
}

// SameField returns true if both fields occupy the same bits. Fields without
// bits (input operands) are the same field if they have the same name.
func SameField(a, b Field) bool {
	ra, rb := a.BitRange(), b.BitRange()
	if ra.Omitted() && rb.Omitted() {
		return a.Name() == b.Name()
	}
	return ra.Equal(rb)
}

// ArgumentRange is the inclusive numeric domain of an operand.
type ArgumentRange struct {
	Field Field
	Min   int64
	Max   int64
}

// Contains returns true if the value is in the range.
func (ar ArgumentRange) Contains(value int64) bool {
	return value >= ar.Min && value <= ar.Max
}

func (ar ArgumentRange) String() string {
	return fmt.Sprintf("%v[%d..%d]", ar.Field.Name(), ar.Min, ar.Max)
}

// TestTarget names a consumer of the test corpus.
type TestTarget int

//go:generate go tool stringer -linecomment -type=TestTarget
const (
	TARGET_DISASSEMBLER          = TestTarget(0) // disassembler
	TARGET_EXTERNAL_ASSEMBLER    = TestTarget(1) // external assembler
	TARGET_EXTERNAL_DISASSEMBLER = TestTarget(2) // external disassembler
)

// exclusions are the test arguments skipped per test target.
type exclusions map[TestTarget][]Argument

// with returns a copy of the exclusions with more arguments for target.
func (ex exclusions) with(target TestTarget, args ...Argument) exclusions {
	clone := maps.Clone(ex)
	if clone == nil {
		clone = exclusions{}
	}
	clone[target] = append(slices.Clone(ex[target]), args...)
	return clone
}

// field holds what every field kind has in common.
type field struct {
	name     string
	bits     bits.Range
	excluded exclusions
}

func (fl field) Name() string {
	return fl.name
}

func (fl field) BitRange() bits.Range {
	return fl.bits
}

// ExcludedTestArguments returns the arguments to skip when testing target.
func (fl field) ExcludedTestArguments(target TestTarget) []Argument {
	return slices.Clone(fl.excluded[target])
}

func (fl field) String() string {
	return fmt.Sprintf("%v<%v>", fl.name, fl.bits)
}

// immediates converts values into arguments.
func immediates(values []int64) (args []Argument) {
	args = make([]Argument, len(values))
	for n, value := range values {
		args[n] = Immediate(value)
	}
	return
}
