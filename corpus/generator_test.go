package corpus

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

func TestMode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("sparse", MODE_SPARSE.String())
	assert.Equal("exhaustive", MODE_EXHAUSTIVE.String())
	assert.Equal("Mode(7)", Mode(7).String())
}

func TestLegalArguments(t *testing.T) {
	assert := assert.New(t)

	r0, r3 := testRegisters.At(0), testRegisters.At(3)
	rd := testRd.WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_ASSEMBLER, r3)

	assert.Len(LegalArguments(rd, risc.TARGET_DISASSEMBLER), 4)

	args := LegalArguments(rd, risc.TARGET_EXTERNAL_ASSEMBLER)
	assert.Len(args, 3)
	assert.Contains(args, risc.Argument(r0))
	assert.NotContains(args, risc.Argument(r3))

	assert.Equal([]risc.Argument{
		risc.Immediate(0), risc.Immediate(1), risc.Immediate(62), risc.Immediate(63),
	}, LegalArguments(testImm, risc.TARGET_DISASSEMBLER))

	assert.Equal([]risc.Argument{
		risc.Immediate(-1), risc.Immediate(math.MinInt64), risc.Immediate(64), risc.Immediate(math.MaxInt64),
	}, IllegalArguments(testImm, risc.TARGET_DISASSEMBLER))

	assert.Empty(IllegalArguments(testRd, risc.TARGET_DISASSEMBLER))

	imm := testImm.WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_ASSEMBLER, risc.Immediate(math.MaxInt64))
	assert.Len(IllegalArguments(imm, risc.TARGET_DISASSEMBLER), 4)
	assert.Equal([]risc.Argument{
		risc.Immediate(-1), risc.Immediate(math.MinInt64), risc.Immediate(64),
	}, IllegalArguments(imm, risc.TARGET_EXTERNAL_ASSEMBLER))
}

func TestTestCases_Sparse(t *testing.T) {
	assert := assert.New(t)

	gen := &Generator{}

	cases := slices.Collect(gen.TestCases(testLd(), risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 7)
	assert.Equal([]risc.Argument{testRegisters.At(0), risc.Immediate(0)}, cases[0])
	assert.Equal([]risc.Argument{testRegisters.At(1), risc.Immediate(0)}, cases[1])
	assert.Equal([]risc.Argument{testRegisters.At(0), risc.Immediate(63)}, cases[6])

	cases = slices.Collect(gen.TestCases(testJmp(), risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 7)

	mv := testMv()
	cases = slices.Collect(gen.TestCases(mv, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 7)
	assert.Equal([]risc.Argument{testRegisters.At(0), testRegisters.At(1)}, cases[0])
	for _, args := range cases {
		assert.True(mv.CheckAll(args), "%v", args)
	}
	// rd = r1 collides with the base rs, so another rs is found.
	assert.Equal([]risc.Argument{testRegisters.At(1), testRegisters.At(0)}, cases[1])
}

func TestTestCases_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	gen := &Generator{Mode: MODE_EXHAUSTIVE}

	assert.Len(slices.Collect(gen.TestCases(testLd(), risc.TARGET_DISASSEMBLER)), 16)
	assert.Len(slices.Collect(gen.TestCases(testJmp(), risc.TARGET_DISASSEMBLER)), 7)

	mv := testMv()
	cases := slices.Collect(gen.TestCases(mv, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 12)
	for _, args := range cases {
		assert.NotEqual(args[0], args[1])
	}

	gen.Limit = 5
	assert.Len(slices.Collect(gen.TestCases(testLd(), risc.TARGET_DISASSEMBLER)), 5)
}

func TestTestCases_TestOnly(t *testing.T) {
	assert := assert.New(t)

	gen := &Generator{Mode: MODE_EXHAUSTIVE}

	ld := risc.NewTemplate("ld",
		testTop.Set(1), testRd, risc.Syntax(", "), testImm,
		risc.TestOnlyScript("imm != 1"),
	)

	cases := slices.Collect(gen.TestCases(ld, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 12)
	for _, args := range cases {
		assert.NotEqual(risc.Immediate(1), args[1])
	}

	// Test only constraints do not stop assembly.
	_, err := ld.Assemble([]risc.Argument{testRegisters.At(0), risc.Immediate(1)})
	assert.NoError(err)
}

func TestTestCases_None(t *testing.T) {
	assert := assert.New(t)

	never := risc.NewTemplate("never",
		testMvTop.Set(3), testMvRd, risc.Syntax(", "), testMvRs,
		risc.Require("never", func(*risc.Template, []risc.Argument) bool { return false }),
	)

	for _, mode := range []Mode{MODE_SPARSE, MODE_EXHAUSTIVE} {
		gen := &Generator{Mode: mode}
		assert.Empty(slices.Collect(gen.TestCases(never, risc.TARGET_DISASSEMBLER)), "%v", mode)
		assert.Empty(slices.Collect(gen.IllegalCases(never, risc.TARGET_DISASSEMBLER)), "%v", mode)
	}
}

func TestIllegalCases(t *testing.T) {
	assert := assert.New(t)

	gen := &Generator{}

	ld := testLd()
	cases := slices.Collect(gen.IllegalCases(ld, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 4)
	for _, args := range cases {
		assert.Equal(testRegisters.At(0), args[0])
		_, err := ld.Assemble(args)
		assert.ErrorIs(err, risc.ErrRange)
	}

	jmp := testJmp()
	cases = slices.Collect(gen.IllegalCases(jmp, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 5)
	assert.Equal([]risc.Argument{risc.Immediate(507)}, cases[4])
	_, err := jmp.Assemble(cases[4])
	assert.ErrorIs(err, risc.ErrAlignment)

	assert.Empty(slices.Collect(gen.IllegalCases(testMv(), risc.TARGET_DISASSEMBLER)))

	imm := testImm.WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_ASSEMBLER, risc.Immediate(math.MaxInt64))
	ld = risc.NewTemplate("ld", testTop.Set(1), testRd, risc.Syntax(", "), imm)
	assert.Len(slices.Collect(gen.IllegalCases(ld, risc.TARGET_DISASSEMBLER)), 4)
	cases = slices.Collect(gen.IllegalCases(ld, risc.TARGET_EXTERNAL_ASSEMBLER))
	assert.Len(cases, 3)
	for _, args := range cases {
		assert.NotEqual(risc.Immediate(math.MaxInt64), args[1])
	}
}

func TestTestCases_Bound(t *testing.T) {
	assert := assert.New(t)

	// A 4 bit count, stored minus one.
	count := risc.NewImmediateField("count", bits.Omitted()).WithRange(1, 16)
	stored := risc.NewImmediateField("stored", bits.Descending(3, 0)).BindTo(risc.Script("count - 1"))
	input := risc.NewInputField(count, func(word uint32) int64 { return int64(word&15) + 1 })

	rep := risc.NewTemplate("rep", testMvTop.Set(4), input, stored)

	gen := &Generator{Mode: MODE_EXHAUSTIVE}
	cases := slices.Collect(gen.TestCases(rep, risc.TARGET_DISASSEMBLER))
	assert.Len(cases, 16)
	assert.Equal([]risc.Argument{risc.Immediate(1)}, cases[0])
	assert.Equal([]risc.Argument{risc.Immediate(16)}, cases[15])

	word, err := rep.Assemble(cases[15])
	assert.NoError(err)
	assert.Equal(uint32(0x4f), word)
}
