package arm

import (
	"encoding/binary"
	"sync"

	"github.com/ezrec/riscgen/risc"
)

// ByteOrder is the order of the bytes of an instruction word in memory.
var ByteOrder binary.AppendByteOrder = binary.LittleEndian

// Templates returns the instruction table, in disassembly preference order.
var Templates = sync.OnceValue(func() (templates []*risc.Template) {
	for _, dp := range dataProcessing {
		templates = append(templates, DataProcessing(dp.mnemonic, dp.opcode, dp.kind)...)
	}
	templates = append(templates, Multiply()...)
	for _, sdt := range singleDataTransfer {
		templates = append(templates, SingleDataTransfer(sdt.mnemonic, sdt.byteSize, sdt.load)...)
	}
	templates = append(templates, Branch()...)
	templates = append(templates, SoftwareInterrupt())
	return
})
