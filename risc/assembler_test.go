package risc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := NewAssembler(testTemplates()...)

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0x0", asm.Equate["ADDR"])
}

func words(prog *Program) (out []uint32) {
	for _, word := range prog.Codes() {
		out = append(out, word)
	}
	return
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := NewAssembler(testTemplates()...)

	program := []string{
		"; sample",
		".equ COUNT 3",
		".macro twice reg",
		"  add reg, reg, reg",
		"  add reg, reg, reg",
		".endm",
		"start:",
		"  add r1, r2, r3 ; trailing comment",
		"  twice r4",
		"loop: swi COUNT",
		"  b $(loop - ADDR)",
		"  swi 'A'",
		"  movs r0, r1, lsr #$(COUNT * 2)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]uint32{
		0xE0821003,
		0xE0844004,
		0xE0844004,
		0xEF000003,
		0xEAFFFFFF,
		0xEF000041,
		0xE1B00321,
	}, words(prog))

	assert.Equal(uint32(0), asm.Label["start"])
	assert.Equal(uint32(12), asm.Label["loop"])

	assert.Equal(8, prog.Opcodes[0].LineNo)
	assert.Equal([]string{"add", "r1,", "r2,", "r3"}, prog.Opcodes[0].Words)
	assert.Equal("add", prog.Opcodes[0].Template.Mnemonic())
	assert.Equal([]string{"add", "r4,", "r4,", "r4"}, prog.Opcodes[1].Words)
	assert.Equal(uint32(16), prog.Opcodes[4].Addr)
	assert.Equal("movlsr", prog.Opcodes[6].Template.Mnemonic())
}

func TestAssemblerMacroLabels(t *testing.T) {
	assert := assert.New(t)

	asm := NewAssembler(testTemplates()...)

	program := []string{
		".macro spin",
		"@top: b $(@top - ADDR)",
		".endm",
		"spin",
		"spin",
		"b $(first - ADDR)",
		"first: swi 0",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]uint32{0xEA000000, 0xEA000000, 0xEA000001, 0xEF000000}, words(prog))
	assert.Len(asm.Label, 3)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := NewAssembler(testTemplates()...)
	asm.Predefine("VECTOR", "0x42")

	prog, err := asm.Parse(strings.NewReader("swi VECTOR\nswi $(VECTOR + LINENO)"))
	assert.NoError(err)
	assert.Equal([]uint32{0xEF000042, 0xEF000044}, words(prog))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		program []string
		lineno  int
		err     error
	}{
		{[]string{"swi 0", "frob r1"}, 2, ErrMnemonicUnknown},
		{[]string{"add r1, r2"}, 1, ErrOperandsInvalid},
		{[]string{"swi 0x1000000"}, 1, ErrRange},
		{[]string{"b 6"}, 1, ErrAlignment},
		{[]string{"x: swi 0", "x: swi 1"}, 2, ErrLabelDuplicate},
		{[]string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{[]string{".equ A"}, 1, ErrEquateSyntax},
		{[]string{".word 5"}, 1, ErrDirectiveUnknown},
		{[]string{".macro m", "swi 0"}, 2, ErrMacroLonely},
		{[]string{"swi 0", ".endm"}, 2, ErrMacroLonelyEndm},
		{[]string{".macro m", ".macro n"}, 2, ErrMacroNesting},
		{[]string{".macro m", ".endm", ".macro m", ".endm"}, 3, ErrMacroDuplicate},
		{[]string{".macro m a", "swi a", ".endm", "m"}, 4, ErrMacroSyntax},
		{[]string{".macro m", "m", ".endm", "m"}, 4, ErrMacroRecursion},
		{[]string{"swi $(1 +)"}, 1, ErrExpression},
		{[]string{"b $(nowhere - ADDR)"}, 1, ErrExpression},
	}

	for _, test := range tests {
		asm := NewAssembler(testTemplates()...)
		_, err := asm.Parse(strings.NewReader(strings.Join(test.program, "\n")))
		assert.ErrorIs(err, test.err, "%v", test.program)

		var syntaxErr *ErrSyntax
		if assert.True(errors.As(err, &syntaxErr), "%v", test.program) {
			assert.Equal(test.lineno, syntaxErr.LineNo, "%v", test.program)
		}
	}
}

func TestAssemblerMacroError(t *testing.T) {
	assert := assert.New(t)

	asm := NewAssembler(testTemplates()...)

	program := []string{
		".macro bad",
		"frob",
		".endm",
		"bad",
	}

	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrMnemonicUnknown)
	var syntaxErr *ErrSyntax
	assert.True(errors.As(err, &syntaxErr))
	assert.Equal(2, syntaxErr.LineNo)

	program = []string{
		".macro bad",
		".equ X",
		".endm",
		"bad",
	}
	_, err = asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	var macroErr *ErrMacro
	assert.True(errors.As(err, &macroErr))
	assert.Equal("bad", macroErr.Macro)
	assert.Equal(2, macroErr.Line)
	assert.ErrorIs(err, ErrEquateSyntax)
}
