package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterProduct yields every combination taking one element from each set, in
// odometer order (the last set varies fastest). Each yielded slice is a
// fresh copy. No combinations are yielded if any set is empty; a single
// empty combination is yielded for no sets.
func IterProduct[T any](sets ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, set := range sets {
			if len(set) == 0 {
				return
			}
		}

		index := make([]int, len(sets))
		current := make([]T, len(sets))
		for n, set := range sets {
			current[n] = set[0]
		}

		for {
			if !yield(slices.Clone(current)) {
				return
			}

			n := len(sets) - 1
			for ; n >= 0; n-- {
				index[n]++
				if index[n] < len(sets[n]) {
					current[n] = sets[n][index[n]]
					break
				}
				index[n] = 0
				current[n] = sets[n][0]
			}
			if n < 0 {
				return
			}
		}
	}
}

// IterLimit stops a sequence after limit elements. A limit of zero or less
// does not limit the sequence.
func IterLimit[T any](seq iter.Seq[T], limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		for val := range seq {
			if limit > 0 && count >= limit {
				return
			}
			count++
			if !yield(val) {
				return
			}
		}
	}
}
