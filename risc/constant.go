package risc

import (
	"fmt"

	"github.com/ezrec/riscgen/bits"
)

// ConstantField is a field whose value is fixed by each template using it.
type ConstantField struct {
	field
}

// NewConstantField creates a constant field.
func NewConstantField(name string, r bits.Range) ConstantField {
	if r.Omitted() {
		definitionf(name, "constant without bits")
	}
	return ConstantField{field: field{name: name, bits: r}}
}

// Set returns the template part fixing the field to value. Negative values
// are stored in two's complement; values that do not fit panic.
func (fl ConstantField) Set(value int64) Constant {
	min := bits.SIGN_SIGNED_OR_UNSIGNED.MinArgumentValue(fl.bits)
	max := bits.SIGN_SIGNED_OR_UNSIGNED.MaxArgumentValue(fl.bits)
	if value < min || value > max {
		definitionf(fl.name, "constant %d does not fit in %v", value, fl.bits)
	}
	return Constant{Field: fl, Value: value}
}

// Constant is a constant field with its value.
type Constant struct {
	Field ConstantField
	Value int64
}

func (Constant) templatePart() {}

// Bits returns the constant in its word position.
func (c Constant) Bits() uint32 {
	return bits.SIGN_SIGNED_OR_UNSIGNED.Assemble(c.Field.BitRange(), c.Value)
}

func (c Constant) String() string {
	return fmt.Sprintf("%v=%d", c.Field, c.Value)
}
