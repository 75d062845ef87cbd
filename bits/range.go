// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bits

import (
	"fmt"
)

// WORD_WIDTH is the width of an instruction word, in bits.
const WORD_WIDTH = 32

// Order is the enumeration order of the bit positions handed to New.
type Order int

//go:generate go tool stringer -linecomment -type=Order
const (
	ORDER_DESCENDING = Order(0) // descending
	ORDER_ASCENDING  = Order(1) // ascending
)

// Range is a contiguous set of bit positions in an instruction word.
//
// The positions are held as a normalized (low, high) pair; the order only
// records how the range was written down. The zero Range is the omitted
// range: it has no positions and a width of zero.
type Range struct {
	low   int
	high  int
	width int
	order Order
}

// New creates a range from its first and last bit positions.
//
// With ORDER_DESCENDING, first is the most significant position and must
// not be below last (ARM style, 31:28). With ORDER_ASCENDING, first is the
// least significant position and must not be above last.
//
// Positions outside of the word, or given against the order, are a
// programming error in an instruction table and panic.
func New(order Order, first, last int) (r Range) {
	var low, high int
	switch order {
	case ORDER_DESCENDING:
		high, low = first, last
	case ORDER_ASCENDING:
		low, high = first, last
	default:
		panic(&ErrPosition{Order: order, First: first, Last: last})
	}

	if low < 0 || high >= WORD_WIDTH || low > high {
		panic(&ErrPosition{Order: order, First: first, Last: last})
	}

	r = Range{
		low:   low,
		high:  high,
		width: high - low + 1,
		order: order,
	}
	return
}

// Descending creates a range whose most significant position is given first.
func Descending(first, last int) Range {
	return New(ORDER_DESCENDING, first, last)
}

// Ascending creates a range whose least significant position is given first.
func Ascending(first, last int) Range {
	return New(ORDER_ASCENDING, first, last)
}

// Bit creates a single bit range.
func Bit(position int) Range {
	return New(ORDER_DESCENDING, position, position)
}

// Omitted returns the range with no positions.
func Omitted() Range {
	return Range{}
}

// Omitted returns true if the range has no positions.
func (r Range) Omitted() bool {
	return r.width == 0
}

// Width returns the number of positions in the range.
func (r Range) Width() int {
	return r.width
}

// Low returns the least significant position of the range.
func (r Range) Low() int {
	return r.low
}

// High returns the most significant position of the range.
func (r Range) High() int {
	return r.high
}

// Order returns the order the range was declared in.
func (r Range) Order() Order {
	return r.order
}

// Equal returns true if both ranges cover the same positions.
func (r Range) Equal(other Range) bool {
	if r.Omitted() || other.Omitted() {
		return r.Omitted() == other.Omitted()
	}
	return r.low == other.low && r.high == other.high
}

// ValueMask returns a mask of Width() low bits.
func (r Range) ValueMask() uint32 {
	return uint32((uint64(1) << r.width) - 1)
}

// InstructionMask returns the mask of the range in its word position.
func (r Range) InstructionMask() uint32 {
	return r.ValueMask() << r.low
}

// AssembleUnsignedInt shifts an unsigned value into position.
// Bits of value above Width() are dropped.
func (r Range) AssembleUnsignedInt(value int64) uint32 {
	return (uint32(value) & r.ValueMask()) << r.low
}

// AssembleSignedInt shifts the two's complement form of a value into position.
// Bits of value above Width() are dropped.
func (r Range) AssembleSignedInt(value int64) uint32 {
	return (uint32(uint64(value)) & r.ValueMask()) << r.low
}

// ExtractUnsignedInt returns the unsigned value held by the range.
func (r Range) ExtractUnsignedInt(word uint32) int64 {
	return int64((word >> r.low) & r.ValueMask())
}

// ExtractSignedInt returns the value held by the range, sign extended
// from its most significant position.
func (r Range) ExtractSignedInt(word uint32) (value int64) {
	value = r.ExtractUnsignedInt(word)
	if r.width == 0 {
		return
	}
	if value&(int64(1)<<(r.width-1)) != 0 {
		value -= int64(1) << r.width
	}
	return
}

// String returns the range as written, ie "31:28".
func (r Range) String() string {
	switch {
	case r.Omitted():
		return "-"
	case r.width == 1:
		return fmt.Sprintf("%d", r.low)
	case r.order == ORDER_ASCENDING:
		return fmt.Sprintf("%d:%d", r.low, r.high)
	default:
		return fmt.Sprintf("%d:%d", r.high, r.low)
	}
}
