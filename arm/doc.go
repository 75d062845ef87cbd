// Package arm is the instruction table of the 32 bit ARM instruction set
// (ARM state, version 5), built on package risc.
//
// Each generator returns the templates of one instruction family. Data
// processing instructions get one template per shifter operand shape; the
// mnemonic of each is decorated with the shape (addlsl, addi), while the
// external name stays the mnemonic of the assembler syntax (add).
package arm
