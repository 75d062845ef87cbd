package risc

import (
	"encoding/binary"
	"iter"
)

// Opcode is a single assembled line.
type Opcode struct {
	LineNo   int       // Source line number.
	Addr     uint32    // Byte address of the instruction.
	Words    []string  // Source words, after macro and equate expansion.
	Word     uint32    // Instruction word.
	Template *Template // Template that encoded the word.
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Offset int // Byte offset into the instruction.
}

// Debug returns the opcode at a byte address.
func (prog *Program) Debug(addr uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+INSTRUCTION_SIZE {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Offset: int(addr - op.Addr),
			}
			break
		}
	}

	return
}

// Binary returns the instruction words in a byte order.
func (prog *Program) Binary(order binary.AppendByteOrder) (bins []byte) {
	for _, word := range prog.Codes() {
		bins = order.AppendUint32(bins, word)
	}

	return
}

// Codes iterates over the addresses and words of the program.
func (prog *Program) Codes() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, word uint32) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Word) {
				return
			}
		}
	}
}
