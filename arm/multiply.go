package arm

import (
	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// Multiply fields. The destination is in the rn position of data
// processing, and the accumulator in the rd position.
var (
	mulOpcode    = risc.NewConstantField("opcode", bits.Descending(27, 21))
	mulSignature = risc.NewConstantField("signature", bits.Descending(7, 4))
	mulRd        = risc.NewSymbolicField("rd", bits.Descending(19, 16), Registers)
	mulRn        = risc.NewSymbolicField("rn", bits.Descending(15, 12), Registers)
)

// Multiply returns the templates of mul and mla.
//
// The results are unpredictable when rd is rm or when any register is pc,
// so those are left out of the test cases.
func Multiply() []*risc.Template {
	mul := risc.NewTemplate("mul",
		s, risc.Suffix(cond),
		mulOpcode.Set(0), sbzRd.Set(0), mulSignature.Set(9),
		mulRd, risc.Syntax(", "), rm, risc.Syntax(", "), rs,
		risc.TestOnly("rd is not rm", risc.NotEqual(mulRd, rm)),
		notPC(mulRd, rm, rs),
	).WithReference("MUL")

	mla := risc.NewTemplate("mla",
		s, risc.Suffix(cond),
		mulOpcode.Set(1), mulSignature.Set(9),
		mulRd, risc.Syntax(", "), rm, risc.Syntax(", "), rs, risc.Syntax(", "), mulRn,
		risc.TestOnly("rd is not rm", risc.NotEqual(mulRd, rm)),
		notPC(mulRd, rm, rs, mulRn),
	).WithReference("MLA")

	return []*risc.Template{mul, mla}
}
