package arm

import (
	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// Single data transfer fields, for the immediate offset addressing modes.
var (
	transferGroup = risc.NewConstantField("group", bits.Descending(27, 24))
	transferBWL   = risc.NewConstantField("bwl", bits.Descending(22, 20))

	offset = risc.NewImmediateField("offset", bits.Omitted()).WithRange(-4095, 4095)

	// The sign of the offset is the u bit, its magnitude offset_12.
	offsetIn = risc.NewInputField(offset, func(word uint32) int64 {
		value := int64(word & 0xfff)
		if word&(1<<23) == 0 {
			value = -value
		}
		return value
	})
	offsetUp = risc.NewImmediateField("u", bits.Bit(23)).BindTo(risc.Script("1 if offset >= 0 else 0"))
	offset12 = risc.NewImmediateField("offset_12", bits.Descending(11, 0)).BindTo(risc.Script("offset if offset >= 0 else -offset"))
)

// SingleDataTransfer returns the templates of a load or store mnemonic,
// one per indexing mode. The mnemonics of the pre and post indexed
// templates are decorated with pre and post.
//
// Writeback with rn equal to rd or pc is unpredictable, so those are left
// out of the test cases.
func SingleDataTransfer(mnemonic string, byteSize bool, load bool) (templates []*risc.Template) {
	bwl := int64(0)
	if byteSize {
		bwl |= 4
	}
	if load {
		bwl |= 1
	}

	writeback := []risc.Part{
		risc.TestOnly("rn is not rd", risc.NotEqual(rn, rd)),
		risc.TestOnly("rn is not pc", risc.NotSymbol(rn, PC)),
	}

	common := []risc.Part{risc.Suffix(cond), offsetUp, offset12, rd, risc.Syntax(", [")}

	offsetParts := append(append([]risc.Part{}, common...),
		transferGroup.Set(5), transferBWL.Set(bwl),
		rn, risc.Syntax(", #"), offsetIn, risc.Syntax("]"))
	templates = append(templates, risc.NewTemplate(mnemonic, offsetParts...).
		WithReference("A5.2.2"))

	preParts := append(append([]risc.Part{}, common...),
		transferGroup.Set(5), transferBWL.Set(bwl|2),
		rn, risc.Syntax(", #"), offsetIn, risc.Syntax("]!"))
	preParts = append(preParts, writeback...)
	templates = append(templates, risc.NewTemplate(mnemonic+"pre", preParts...).
		WithExternalName(mnemonic).
		WithReference("A5.2.5"))

	postParts := append(append([]risc.Part{}, common...),
		transferGroup.Set(4), transferBWL.Set(bwl),
		rn, risc.Syntax("], #"), offsetIn)
	postParts = append(postParts, writeback...)
	templates = append(templates, risc.NewTemplate(mnemonic+"post", postParts...).
		WithExternalName(mnemonic).
		WithReference("A5.2.8"))

	return
}

var singleDataTransfer = []struct {
	mnemonic string
	byteSize bool
	load     bool
}{
	{"ldr", false, true},
	{"str", false, false},
	{"ldrb", true, true},
	{"strb", true, false},
}
