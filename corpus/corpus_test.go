package corpus

//go:generate mockgen -destination=mock_reference_test.go -package=$GOPACKAGE github.com/ezrec/riscgen/corpus Reference

import (
	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// A tiny instruction set: a load immediate, a relative jump and a register
// move that may not move a register to itself.

var testRegisters = risc.NewSymbolizer("register", "r0", "r1", "r2", "r3")

var (
	testTop  = risc.NewConstantField("top", bits.Descending(31, 8))
	testRd   = risc.NewSymbolicField("rd", bits.Descending(7, 6), testRegisters)
	testImm  = risc.NewImmediateField("imm", bits.Descending(5, 0))
	testJump = risc.NewAlignedImmediateField("offset", bits.Descending(7, 0), 2).BeSigned()

	testMvTop = risc.NewConstantField("top", bits.Descending(31, 4))
	testMvRd  = risc.NewSymbolicField("rd", bits.Descending(3, 2), testRegisters)
	testMvRs  = risc.NewSymbolicField("rs", bits.Descending(1, 0), testRegisters)
)

// ld rd, imm
func testLd() *risc.Template {
	return risc.NewTemplate("ld", testTop.Set(1), testRd, risc.Syntax(", "), testImm)
}

// jmp offset
func testJmp() *risc.Template {
	return risc.NewTemplate("jmp", testTop.Set(2), testJump)
}

// mv rd, rs
func testMv() *risc.Template {
	return risc.NewTemplate("mv",
		testMvTop.Set(3),
		testMvRd, risc.Syntax(", "), testMvRs,
		risc.Require("rd is not rs", risc.NotEqual(testMvRd, testMvRs)),
	)
}

// nop
func testNop() *risc.Template {
	return risc.NewTemplate("nop", risc.NewConstantField("zero", bits.Descending(31, 0)).Set(0))
}

func testTemplates() []*risc.Template {
	return []*risc.Template{testLd(), testJmp(), testMv()}
}
