// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arm

import (
	"fmt"
	"slices"

	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// Kind is the operand layout of a data processing instruction:
//
//	KIND_NORMAL   op{s}{cond} rd, rn, shifter
//	KIND_MOVE     op{s}{cond} rd, shifter
//	KIND_COMPARE  op{cond} rn, shifter
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NORMAL  = Kind(0) // normal
	KIND_MOVE    = Kind(1) // move
	KIND_COMPARE = Kind(2) // compare
)

// Shifter operand fields.
var (
	shifter      = risc.NewConstantField("shifter", bits.Descending(11, 4))
	shiftType    = risc.NewConstantField("shift_type", bits.Descending(6, 4))
	regShiftType = risc.NewConstantField("shift_type", bits.Descending(7, 4))

	// lsl #0 is the register shape.
	shiftLsl = risc.NewImmediateField("shift", bits.Descending(11, 7)).
			WithExcludedExternalTestArguments(risc.TARGET_DISASSEMBLER, risc.Immediate(0)).
			WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_DISASSEMBLER, risc.Immediate(0))

	// lsr and asr shift by 1 to 32, where 32 is stored as 0.
	shiftLong    = risc.NewImmediateField("shift", bits.Omitted()).WithRange(1, 32)
	shiftLongImm = risc.NewImmediateField("shift_imm", bits.Descending(11, 7)).BindTo(risc.Script("shift % 32"))
	shiftLongIn  = risc.NewInputField(shiftLong, func(word uint32) int64 {
		shift := int64(word >> 7 & 31)
		if shift == 0 {
			shift = 32
		}
		return shift
	})

	// ror #0 is rrx.
	shiftRor = risc.NewImmediateField("shift", bits.Descending(11, 7)).WithRange(1, 31)
)

// shape is a shifter operand addressing mode.
type shape struct {
	reference string
	immediate bool
	parts     []risc.Part
	registers []risc.Field // Shifter registers that may not be pc.
}

// Shapes are the decorations of the data processing mnemonics, one per
// shifter operand addressing mode, in table order.
var Shapes = []string{"i", "", "lsl", "lsr", "asr", "ror", "lslr", "lsrr", "asrr", "rorr", "rrx"}

var shapes = map[string]shape{
	"i": {
		reference: "A5.1.3",
		immediate: true,
		parts:     []risc.Part{risc.Syntax("#"), immediateIn, rotateImm, immedByte, immediateEncodable},
	},
	"": {
		reference: "A5.1.4",
		parts:     []risc.Part{rm, shifter.Set(0)},
	},
	"lsl": {
		reference: "A5.1.5",
		parts:     []risc.Part{rm, risc.Syntax(", lsl #"), shiftLsl, shiftType.Set(0)},
	},
	"lsr": {
		reference: "A5.1.7",
		parts:     []risc.Part{rm, risc.Syntax(", lsr #"), shiftLongIn, shiftLongImm, shiftType.Set(2)},
	},
	"asr": {
		reference: "A5.1.9",
		parts:     []risc.Part{rm, risc.Syntax(", asr #"), shiftLongIn, shiftLongImm, shiftType.Set(4)},
	},
	"ror": {
		reference: "A5.1.11",
		parts:     []risc.Part{rm, risc.Syntax(", ror #"), shiftRor, shiftType.Set(6)},
	},
	"lslr": {
		reference: "A5.1.6",
		parts:     []risc.Part{rm, risc.Syntax(", lsl "), rs, regShiftType.Set(1)},
		registers: []risc.Field{rm, rs},
	},
	"lsrr": {
		reference: "A5.1.8",
		parts:     []risc.Part{rm, risc.Syntax(", lsr "), rs, regShiftType.Set(3)},
		registers: []risc.Field{rm, rs},
	},
	"asrr": {
		reference: "A5.1.10",
		parts:     []risc.Part{rm, risc.Syntax(", asr "), rs, regShiftType.Set(5)},
		registers: []risc.Field{rm, rs},
	},
	"rorr": {
		reference: "A5.1.12",
		parts:     []risc.Part{rm, risc.Syntax(", ror "), rs, regShiftType.Set(7)},
		registers: []risc.Field{rm, rs},
	},
	"rrx": {
		reference: "A5.1.13",
		parts:     []risc.Part{rm, risc.Syntax(", rrx"), shifter.Set(6)},
	},
}

// notPC is a test only constraint keeping pc out of registers.
func notPC(registers ...risc.Field) risc.Constraint {
	return risc.TestOnly("no pc", func(t *risc.Template, args []risc.Argument) bool {
		for _, reg := range registers {
			if !risc.NotSymbol(reg, PC)(t, args) {
				return false
			}
		}
		return true
	})
}

// DataProcessingShape returns the template of a data processing mnemonic
// with one shifter operand shape. An unknown kind or shape panics.
func DataProcessingShape(mnemonic string, op int64, kind Kind, name string) *risc.Template {
	sh, ok := shapes[name]
	if !ok {
		panic(&risc.ErrDefinition{What: mnemonic, Detail: fmt.Sprintf("unknown shifter shape %q", name)})
	}

	var parts []risc.Part
	var registers []risc.Field

	switch kind {
	case KIND_NORMAL:
		parts = []risc.Part{s, risc.Suffix(cond), rd, risc.Syntax(", "), rn, risc.Syntax(", ")}
		registers = []risc.Field{rd, rn}
	case KIND_MOVE:
		parts = []risc.Part{s, risc.Suffix(cond), sbzRn.Set(0), rd, risc.Syntax(", ")}
		registers = []risc.Field{rd}
	case KIND_COMPARE:
		parts = []risc.Part{risc.Suffix(cond), sbit.Set(1), sbzRd.Set(0), rn, risc.Syntax(", ")}
		registers = []risc.Field{rn}
	default:
		panic(&risc.ErrDefinition{What: mnemonic, Detail: fmt.Sprintf("unknown data processing %v", kind)})
	}

	i := int64(0)
	if sh.immediate {
		i = 1
	}

	parts = append(parts, group.Set(i), opcode.Set(op))
	parts = append(parts, sh.parts...)
	if len(sh.registers) != 0 {
		parts = append(parts, notPC(append(slices.Clone(registers), sh.registers...)...))
	}

	return risc.NewTemplate(mnemonic+name, parts...).
		WithExternalName(mnemonic).
		WithReference(sh.reference)
}

// DataProcessing returns the templates of a data processing mnemonic, one
// per shape.
func DataProcessing(mnemonic string, op int64, kind Kind) (templates []*risc.Template) {
	for _, name := range Shapes {
		templates = append(templates, DataProcessingShape(mnemonic, op, kind, name))
	}
	return
}

var dataProcessing = []struct {
	mnemonic string
	opcode   int64
	kind     Kind
}{
	{"and", 0, KIND_NORMAL},
	{"eor", 1, KIND_NORMAL},
	{"sub", 2, KIND_NORMAL},
	{"rsb", 3, KIND_NORMAL},
	{"add", 4, KIND_NORMAL},
	{"adc", 5, KIND_NORMAL},
	{"sbc", 6, KIND_NORMAL},
	{"rsc", 7, KIND_NORMAL},
	{"tst", 8, KIND_COMPARE},
	{"teq", 9, KIND_COMPARE},
	{"cmp", 10, KIND_COMPARE},
	{"cmn", 11, KIND_COMPARE},
	{"orr", 12, KIND_NORMAL},
	{"mov", 13, KIND_MOVE},
	{"bic", 14, KIND_NORMAL},
	{"mvn", 15, KIND_MOVE},
}
