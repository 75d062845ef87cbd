// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package corpus

import (
	"iter"
	"slices"

	"github.com/ezrec/riscgen/internal"
	"github.com/ezrec/riscgen/risc"
)

// Mode selects how many argument combinations a Generator produces.
//
// MODE_SPARSE varies one operand at a time around a base case that
// satisfies the constraints. MODE_EXHAUSTIVE yields every combination.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_SPARSE     = Mode(0) // sparse
	MODE_EXHAUSTIVE = Mode(1) // exhaustive
)

// REPAIR_LIMIT is the number of combinations searched for one that
// satisfies the constraints of a template around a pinned argument.
const REPAIR_LIMIT = 4096

// Generator produces test cases for templates.
type Generator struct {
	Mode    Mode // Combination mode.
	Limit   int  // Largest number of test cases per template, or 0 for all.
	Workers int  // Largest number of templates checked at once, or 0 for one per template.
	Verbose bool // If set, logs the progress of checks.
}

// LegalArguments returns the legal test arguments of an operand, without
// those excluded for the target.
func LegalArguments(op risc.Operand, target risc.TestTarget) []risc.Argument {
	return without(op.LegalTestArguments(), op.ExcludedTestArguments(target))
}

// IllegalArguments returns the illegal test arguments of an operand,
// without those excluded for the target.
func IllegalArguments(op risc.Operand, target risc.TestTarget) []risc.Argument {
	return without(op.IllegalTestArguments(), op.ExcludedTestArguments(target))
}

func without(args []risc.Argument, excluded []risc.Argument) (kept []risc.Argument) {
	for _, arg := range args {
		if slices.Contains(excluded, arg) {
			continue
		}
		kept = append(kept, arg)
	}
	return
}

// legalSets returns the legal arguments of every operand of a template.
func legalSets(t *risc.Template, target risc.TestTarget) (sets [][]risc.Argument) {
	for _, op := range t.Operands() {
		sets = append(sets, LegalArguments(op, target))
	}
	return
}

// valid returns true if the arguments satisfy all constraints of the
// template. Arguments that still fail to assemble are left for the checks
// to report.
func valid(t *risc.Template, args []risc.Argument) bool {
	return t.CheckAll(args)
}

// base returns the first valid combination of the sets, searching at most
// REPAIR_LIMIT combinations.
func base(t *risc.Template, sets [][]risc.Argument) (args []risc.Argument, ok bool) {
	for args = range internal.IterLimit(internal.IterProduct(sets...), REPAIR_LIMIT) {
		if valid(t, args) {
			ok = true
			return
		}
	}
	args = nil
	return
}

// TestCases yields legal argument lists for a template, as seen by a
// target. Every list satisfies the hard and test only constraints of the
// template.
func (gen *Generator) TestCases(t *risc.Template, target risc.TestTarget) iter.Seq[[]risc.Argument] {
	sets := legalSets(t, target)

	var seq iter.Seq[[]risc.Argument]
	switch gen.Mode {
	case MODE_EXHAUSTIVE:
		seq = func(yield func([]risc.Argument) bool) {
			for args := range internal.IterProduct(sets...) {
				if !valid(t, args) {
					continue
				}
				if !yield(args) {
					return
				}
			}
		}
	default:
		seq = func(yield func([]risc.Argument) bool) {
			first, ok := base(t, sets)
			if !ok {
				return
			}
			if !yield(first) {
				return
			}
			for n, set := range sets {
				for _, arg := range set {
					if arg == first[n] {
						continue
					}
					args := slices.Clone(first)
					args[n] = arg
					if !valid(t, args) {
						pinned := slices.Clone(sets)
						pinned[n] = []risc.Argument{arg}
						args, ok = base(t, pinned)
						if !ok {
							continue
						}
					}
					if !yield(args) {
						return
					}
				}
			}
		}
	}

	return internal.IterLimit(seq, gen.Limit)
}

// IllegalCases yields argument lists for a template that hold exactly one
// illegal argument, substituted into the first legal test case, as seen by
// a target.
func (gen *Generator) IllegalCases(t *risc.Template, target risc.TestTarget) iter.Seq[[]risc.Argument] {
	return func(yield func([]risc.Argument) bool) {
		first, ok := base(t, legalSets(t, target))
		if !ok {
			return
		}
		for n, op := range t.Operands() {
			for _, arg := range IllegalArguments(op, target) {
				args := slices.Clone(first)
				args[n] = arg
				if !yield(args) {
					return
				}
			}
		}
	}
}
