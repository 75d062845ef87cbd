// Package corpus generates test cases for instruction templates, and checks
// templates against themselves and against a reference toolchain.
//
// A Generator draws legal arguments for each operand of a template from its
// legal test arguments, and combines them either sparsely (one operand
// varied at a time around a base case) or exhaustively. Combinations that
// break a constraint of the template are never produced.
package corpus
