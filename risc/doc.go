// Package risc declares the instruction templates of a fixed width RISC
// instruction set, and derives an assembler and a disassembler from them.
//
// A Template is built from parts: operands (immediate, symbolic and input
// fields), constants, option fields, immediates bound to an Expression,
// literal Syntax, and Constraints over the arguments. The same template
// assembles arguments into a word, disassembles a word into arguments, and
// renders or parses its assembler text.
//
// A malformed template is a programming error and panics with an
// *ErrDefinition when it is built. Arguments that are out of range,
// misaligned or that violate a constraint are returned as errors.
//
// The Assembler accepts source text with labels, equates, macros, and
// compile-time $() expressions.
package risc
