// Package bits describes the placement of values inside a fixed width
// instruction word.
//
// A Range names a contiguous run of bit positions, and a Sign selects how a
// value is stored in that run: unsigned, two's complement signed, or either
// (signed-or-unsigned, where the sign of the argument picks the encoder).
//
// Range arithmetic never validates its input. Callers range-check values
// with a Sign (or with the operand fields built on top of it) before
// assembling them.
package bits
