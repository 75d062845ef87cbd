package corpus

import (
	"context"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/riscgen/bits"
	"github.com/ezrec/riscgen/risc"
)

// sameArguments compares decoded arguments against the assembled ones.
// Negative arguments of sign-agnostic operands decode as their unsigned
// alias, so they are not compared.
func sameArguments(t *risc.Template, want, got []risc.Argument) bool {
	if len(want) != len(got) {
		return false
	}
	for n, op := range t.Operands() {
		if want[n] == got[n] {
			continue
		}
		if want[n].Value() < 0 && signAgnostic(op) {
			continue
		}
		return false
	}
	return true
}

func signAgnostic(op risc.Operand) bool {
	switch fl := op.(type) {
	case risc.ImmediateField:
		return fl.Sign() == bits.SIGN_SIGNED_OR_UNSIGNED
	case risc.InputField:
		return fl.Source().Sign() == bits.SIGN_SIGNED_OR_UNSIGNED
	}
	return false
}

// checkCase runs one legal test case of a template through the assembler,
// the template decoder, the text round trip, and the disassembler.
func checkCase(t *risc.Template, dis *risc.Disassembler, args []risc.Argument, opts ...risc.Option) (err error) {
	fail := &Failure{Template: t.Mnemonic(), Arguments: args}

	fail.Word, err = t.Assemble(args, opts...)
	if err != nil {
		fail.Check, fail.Err = ErrAssemble, err
		return fail
	}

	decoded, _, err := t.Disassemble(fail.Word)
	if err != nil || !sameArguments(t, args, decoded) {
		fail.Check, fail.Err = ErrRoundTrip, err
		return fail
	}

	fail.Text, err = t.Text(args, opts...)
	if err != nil {
		fail.Check, fail.Err = ErrText, err
		return fail
	}

	parsed, parsedOpts, err := t.Parse(fail.Text)
	if err != nil || !sameArguments(t, args, parsed) {
		fail.Check, fail.Err = ErrText, err
		return fail
	}
	word, err := t.Assemble(parsed, parsedOpts...)
	if err != nil || word != fail.Word {
		fail.Check, fail.Err = ErrText, err
		return fail
	}

	in, err := dis.Disassemble(fail.Word)
	if err != nil || in.Template.Mnemonic() != t.Mnemonic() {
		fail.Check, fail.Err = ErrDisassembler, err
		return fail
	}

	return nil
}

// checkTemplate runs every test case of a template, and returns the number
// of cases run.
func (gen *Generator) checkTemplate(ctx context.Context, t *risc.Template, dis *risc.Disassembler) (cases int, err error) {
	var first []risc.Argument
	found := false

	for args := range gen.TestCases(t, risc.TARGET_DISASSEMBLER) {
		if err = ctx.Err(); err != nil {
			return
		}
		if !found {
			first, found = args, true
		}
		cases++
		err = checkCase(t, dis, args)
		if err != nil {
			return
		}
	}

	if !found {
		err = &Failure{Template: t.Mnemonic(), Check: ErrNoTestCases}
		return
	}

	for _, fl := range t.Options() {
		for _, opt := range fl.Options() {
			cases++
			err = checkCase(t, dis, first, opt)
			if err != nil {
				return
			}
		}
	}

	for args := range gen.IllegalCases(t, risc.TARGET_DISASSEMBLER) {
		if err = ctx.Err(); err != nil {
			return
		}
		cases++
		word, aerr := t.Assemble(args)
		if aerr == nil {
			err = &Failure{Template: t.Mnemonic(), Check: ErrAccepted, Arguments: args, Word: word}
			return
		}
	}

	return
}

// SelfCheck checks the templates against themselves: every legal test case
// must assemble, decode to the same arguments, survive a text round trip,
// and be claimed by the same template when disassembled among all
// templates. Every illegal test case must be rejected.
//
// Templates are checked concurrently; the first failure cancels the rest.
func (gen *Generator) SelfCheck(ctx context.Context, templates ...*risc.Template) (cases int, err error) {
	dis := risc.NewDisassembler(templates...)

	var total atomic.Int64

	group, ctx := errgroup.WithContext(ctx)
	if gen.Workers > 0 {
		group.SetLimit(gen.Workers)
	}

	for _, t := range templates {
		group.Go(func() error {
			count, err := gen.checkTemplate(ctx, t, dis)
			total.Add(int64(count))
			if gen.Verbose {
				if err != nil {
					log.Printf("%v: %v cases, %v", t, count, err)
				} else {
					log.Printf("%v: %v cases", t, count)
				}
			}
			return err
		})
	}

	err = group.Wait()
	cases = int(total.Load())
	return
}
