package corpus

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/riscgen/risc"
)

// Reference is an external toolchain to validate templates against.
type Reference interface {
	// Assemble returns the word assembled from one line of assembler text.
	Assemble(ctx context.Context, text string) (uint32, error)
	// Disassemble returns the assembler text of a word.
	Disassemble(ctx context.Context, word uint32) (string, error)
}

// validateAssembler checks that the reference assembles the text of every
// external assembler test case of a template into the same word.
func (gen *Generator) validateAssembler(ctx context.Context, ref Reference, t *risc.Template) (cases int, err error) {
	for args := range gen.TestCases(t, risc.TARGET_EXTERNAL_ASSEMBLER) {
		if err = ctx.Err(); err != nil {
			return
		}
		cases++

		fail := &Failure{Template: t.Mnemonic(), Check: ErrReference, Arguments: args}
		fail.Word, err = t.Assemble(args)
		if err != nil {
			fail.Check, fail.Err = ErrAssemble, err
			err = fail
			return
		}
		fail.Text, err = t.Text(args)
		if err != nil {
			fail.Check, fail.Err = ErrText, err
			err = fail
			return
		}

		var word uint32
		word, err = ref.Assemble(ctx, fail.Text)
		if err != nil || word != fail.Word {
			if err == nil {
				err = risc.ErrWord(word)
			}
			fail.Err = err
			err = fail
			return
		}
	}
	return
}

// validateDisassembler checks that the text the reference disassembles from
// the word of every external disassembler test case parses back into the
// same word.
func (gen *Generator) validateDisassembler(ctx context.Context, ref Reference, t *risc.Template) (cases int, err error) {
	for args := range gen.TestCases(t, risc.TARGET_EXTERNAL_DISASSEMBLER) {
		if err = ctx.Err(); err != nil {
			return
		}
		cases++

		fail := &Failure{Template: t.Mnemonic(), Check: ErrReference, Arguments: args}
		fail.Word, err = t.Assemble(args)
		if err != nil {
			fail.Check, fail.Err = ErrAssemble, err
			err = fail
			return
		}

		fail.Text, err = ref.Disassemble(ctx, fail.Word)
		if err != nil {
			fail.Err = err
			err = fail
			return
		}

		var parsed []risc.Argument
		var opts []risc.Option
		parsed, opts, err = t.Parse(fail.Text)
		if err != nil {
			fail.Err = err
			err = fail
			return
		}
		var word uint32
		word, err = t.Assemble(parsed, opts...)
		if err != nil || word != fail.Word {
			if err == nil {
				err = risc.ErrWord(word)
			}
			fail.Err = err
			err = fail
			return
		}
	}
	return
}

// Validate checks the templates against a reference toolchain, in both
// directions. Templates are validated concurrently, and all failures are
// returned, joined in template order. A canceled context returns the
// context error alone.
func (gen *Generator) Validate(ctx context.Context, ref Reference, templates ...*risc.Template) (cases int, err error) {
	errs := make([]error, 2*len(templates))

	var total atomic.Int64

	var group errgroup.Group
	if gen.Workers > 0 {
		group.SetLimit(gen.Workers)
	}

	for n, t := range templates {
		group.Go(func() error {
			count, aerr := gen.validateAssembler(ctx, ref, t)
			total.Add(int64(count))
			errs[2*n] = aerr

			count, derr := gen.validateDisassembler(ctx, ref, t)
			total.Add(int64(count))
			errs[2*n+1] = derr

			if gen.Verbose {
				log.Printf("%v: validated", t)
			}
			return ctx.Err()
		})
	}

	err = group.Wait()
	cases = int(total.Load())
	if err != nil {
		return
	}

	err = errors.Join(errs...)
	return
}

// Loopback is a reference toolchain built from templates, for validating
// one set of templates against another. It is safe for concurrent use.
type Loopback struct {
	templates    []*risc.Template
	disassembler *risc.Disassembler
}

// NewLoopback creates a reference toolchain from templates.
func NewLoopback(templates ...*risc.Template) *Loopback {
	return &Loopback{
		templates:    templates,
		disassembler: risc.NewDisassembler(templates...),
	}
}

// Assemble assembles one line of text, with a fresh assembler.
func (lb *Loopback) Assemble(ctx context.Context, text string) (word uint32, err error) {
	prog, err := risc.NewAssembler(lb.templates...).Parse(strings.NewReader(text))
	if err != nil {
		return
	}
	if len(prog.Opcodes) != 1 {
		err = risc.ErrOperandsInvalid
		return
	}
	word = prog.Opcodes[0].Word
	return
}

func (lb *Loopback) Disassemble(ctx context.Context, word uint32) (text string, err error) {
	in, err := lb.disassembler.Disassemble(word)
	if err != nil {
		return
	}
	text, err = in.Text()
	return
}
