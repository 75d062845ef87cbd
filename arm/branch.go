package arm

import (
	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

var (
	link = risc.NewConstantField("l", bits.Bit(24))

	// offset24 is the byte offset of the target from pc, which reads as the
	// address of the branch plus 8.
	offset24 = risc.NewAlignedImmediateField("offset", bits.Descending(23, 0), 2).BeSigned()

	bxOpcode = risc.NewConstantField("opcode", bits.Descending(27, 4))

	swiGroup = risc.NewConstantField("group", bits.Descending(27, 24))
	swiImm24 = risc.NewImmediateField("imm24", bits.Descending(23, 0))
)

// Branch returns the templates of b, bl and bx.
func Branch() []*risc.Template {
	return []*risc.Template{
		risc.NewTemplate("b", risc.Suffix(cond), group.Set(5), link.Set(0), offset24).
			WithReference("B, BL"),
		risc.NewTemplate("bl", risc.Suffix(cond), group.Set(5), link.Set(1), offset24).
			WithReference("B, BL"),
		risc.NewTemplate("bx", risc.Suffix(cond), bxOpcode.Set(0x12fff1), rm).
			WithReference("BX"),
	}
}

// SoftwareInterrupt returns the template of swi.
func SoftwareInterrupt() *risc.Template {
	return risc.NewTemplate("swi", risc.Suffix(cond), swiGroup.Set(15), swiImm24).
		WithReference("SWI")
}
