package bits

import (
	"slices"
)

// Sign is the storage discipline of a value in a Range.
type Sign int

//go:generate go tool stringer -linecomment -type=Sign
const (
	SIGN_UNSIGNED           = Sign(0) // unsigned
	SIGN_SIGNED             = Sign(1) // signed
	SIGN_SIGNED_OR_UNSIGNED = Sign(2) // signed or unsigned
)

// EXHAUSTIVE_LIMIT is the largest number of representable values that
// LegalTestArgumentValues enumerates completely.
const EXHAUSTIVE_LIMIT = 32

// MinArgumentValue returns the smallest value storable in the range.
func (sign Sign) MinArgumentValue(r Range) int64 {
	switch sign {
	case SIGN_UNSIGNED:
		return 0
	case SIGN_SIGNED, SIGN_SIGNED_OR_UNSIGNED:
		if r.Width() == 0 {
			return 0
		}
		return -(int64(1) << (r.Width() - 1))
	}
	panic("unreachable")
}

// MaxArgumentValue returns the largest value storable in the range.
func (sign Sign) MaxArgumentValue(r Range) int64 {
	switch sign {
	case SIGN_UNSIGNED, SIGN_SIGNED_OR_UNSIGNED:
		return int64(r.ValueMask())
	case SIGN_SIGNED:
		return int64(r.ValueMask() >> 1)
	}
	panic("unreachable")
}

// Assemble places a value in the range.
// The value must already be between MinArgumentValue and MaxArgumentValue.
func (sign Sign) Assemble(r Range, value int64) uint32 {
	switch sign {
	case SIGN_UNSIGNED:
		return r.AssembleUnsignedInt(value)
	case SIGN_SIGNED:
		return r.AssembleSignedInt(value)
	case SIGN_SIGNED_OR_UNSIGNED:
		if value < 0 {
			return r.AssembleSignedInt(value)
		}
		return r.AssembleUnsignedInt(value)
	}
	panic("unreachable")
}

// Extract reads a value from the range.
//
// SIGN_SIGNED_OR_UNSIGNED always reads back the unsigned form: a negative
// argument cannot be told apart from its two's complement reading once it
// has been encoded.
func (sign Sign) Extract(r Range, word uint32) int64 {
	switch sign {
	case SIGN_UNSIGNED, SIGN_SIGNED_OR_UNSIGNED:
		return r.ExtractUnsignedInt(word)
	case SIGN_SIGNED:
		return r.ExtractSignedInt(word)
	}
	panic("unreachable")
}

// LegalTestArgumentValues returns the values a test corpus uses for a
// [min, max] domain with the given grain.
func (sign Sign) LegalTestArgumentValues(min, max, grain int64) []int64 {
	switch sign {
	case SIGN_UNSIGNED, SIGN_SIGNED, SIGN_SIGNED_OR_UNSIGNED:
		return LegalTestArgumentValues(min, max, grain)
	}
	panic("unreachable")
}

// LegalTestArgumentValues enumerates every multiple of grain in [min, max]
// if there are no more than EXHAUSTIVE_LIMIT of them. Otherwise it returns
// the boundary set {min, min+grain, -grain, 0, grain, max-grain, max},
// restricted to the domain and without duplicates.
func LegalTestArgumentValues(min, max, grain int64) (values []int64) {
	if grain <= 0 {
		panic(ErrGrain(grain))
	}
	if max < min {
		return
	}

	count := (max-min)/grain + 1
	if count <= EXHAUSTIVE_LIMIT {
		values = make([]int64, 0, count)
		for value := min; value <= max; value += grain {
			values = append(values, value)
		}
		return
	}

	for _, value := range []int64{min, min + grain, -grain, 0, grain, max - grain, max} {
		if value < min || value > max {
			continue
		}
		if slices.Contains(values, value) {
			continue
		}
		values = append(values, value)
	}

	return
}
