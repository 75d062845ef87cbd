package risc

import (
	"github.com/ezrec/riscgen/bits"
)

// A small ARM flavoured instruction set for the tests.

var testConditions = NewSymbolizer("condition",
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
).Alias("hs", 2).Alias("lo", 3)

var testRegisters = NewSymbolizer("register",
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "sp", "lr", "pc",
)

var (
	testCond   = NewSymbolicField("cond", bits.Descending(31, 28), testConditions).WithTextDefault(testConditions.At(14))
	testS      = NewOptionField("s", bits.Bit(20)).WithOption("", 0, "").WithOption("s", 1, "s")
	testRn     = NewSymbolicField("rn", bits.Descending(19, 16), testRegisters)
	testRd     = NewSymbolicField("rd", bits.Descending(15, 12), testRegisters)
	testRm     = NewSymbolicField("rm", bits.Descending(3, 0), testRegisters)
	testOp     = NewConstantField("op", bits.Descending(27, 21))
	testSbn    = NewConstantField("sbn", bits.Descending(19, 16))
	testSbz    = NewConstantField("sbz", bits.Descending(11, 4))
	testShape  = NewConstantField("shape", bits.Descending(6, 4))
	testGroup  = NewConstantField("group", bits.Descending(27, 24))
	testImm24  = NewImmediateField("imm24", bits.Descending(23, 0))
	testOffset = NewAlignedImmediateField("offset", bits.Descending(23, 0), 2).BeSigned()

	testShift    = NewImmediateField("shift", bits.Omitted()).WithRange(1, 32)
	testShiftImm = NewImmediateField("shift_imm", bits.Descending(11, 7)).BindTo(Script("shift % 32"))
	testShiftIn  = NewInputField(testShift, func(word uint32) int64 {
		value := int64((word >> 7) & 31)
		if value == 0 {
			value = 32
		}
		return value
	})
)

// swi{cond} imm24
func testSwi() *Template {
	return NewTemplate("swi",
		Suffix(testCond),
		testGroup.Set(15),
		testImm24,
	)
}

// b{cond} offset
func testB() *Template {
	return NewTemplate("b",
		Suffix(testCond),
		testGroup.Set(10),
		testOffset,
	)
}

// add{s}{cond} rd, rn, rm
func testAdd() *Template {
	return NewTemplate("add",
		testS,
		Suffix(testCond),
		testOp.Set(4),
		testRd, Syntax(", "), testRn, Syntax(", "), testRm,
		testSbz.Set(0),
	)
}

// mov{s}{cond} rd, rm, lsr #shift
func testMovLsr() *Template {
	return NewTemplate("movlsr",
		testS,
		Suffix(testCond),
		testOp.Set(13),
		testSbn.Set(0),
		testRd, Syntax(", "), testRm, Syntax(", lsr #"), testShiftIn,
		testShiftImm,
		testShape.Set(2),
	).WithExternalName("mov")
}

func testTemplates() []*Template {
	return []*Template{testSwi(), testB(), testAdd(), testMovLsr()}
}

// panicValue returns the value fn panics with, or nil.
func panicValue(fn func()) (value any) {
	defer func() { value = recover() }()
	fn()
	return
}
