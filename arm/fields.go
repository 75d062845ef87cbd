package arm

import (
	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// Fields shared by the instruction families.
var (
	// cond is omitted from the text when it is al. nv is not accepted by
	// current assemblers.
	cond = risc.NewSymbolicField("cond", bits.Descending(31, 28), Conditions).
		WithTextDefault(AL).
		WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_ASSEMBLER, NV).
		WithExcludedExternalTestArguments(risc.TARGET_EXTERNAL_DISASSEMBLER, NV)

	// s updates the condition flags.
	s = risc.NewOptionField("s", bits.Bit(20)).
		WithOption("", 0, "").
		WithOption("s", 1, "s")

	rn = risc.NewSymbolicField("rn", bits.Descending(19, 16), Registers)
	rd = risc.NewSymbolicField("rd", bits.Descending(15, 12), Registers)
	rs = risc.NewSymbolicField("rs", bits.Descending(11, 8), Registers)
	rm = risc.NewSymbolicField("rm", bits.Descending(3, 0), Registers)

	group  = risc.NewConstantField("group", bits.Descending(27, 25))
	opcode = risc.NewConstantField("opcode", bits.Descending(24, 21))
	sbit   = risc.NewConstantField("s", bits.Bit(20))
	sbzRn  = risc.NewConstantField("rn", bits.Descending(19, 16))
	sbzRd  = risc.NewConstantField("rd", bits.Descending(15, 12))
)
