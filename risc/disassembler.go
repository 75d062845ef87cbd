package risc

import (
	"iter"
	"slices"
)

// Instruction is a template with its arguments and options.
type Instruction struct {
	Template  *Template
	Arguments []Argument
	Options   []Option
}

// Assemble encodes the instruction.
func (in Instruction) Assemble() (uint32, error) {
	return in.Template.Assemble(in.Arguments, in.Options...)
}

// Text renders the instruction in assembler syntax.
func (in Instruction) Text() (string, error) {
	return in.Template.Text(in.Arguments, in.Options...)
}

func (in Instruction) String() string {
	text, err := in.Text()
	if err != nil {
		return in.Template.Mnemonic() + " ?"
	}
	return text
}

// Disassembler finds the templates that explain an instruction word.
//
// A decoding is only accepted when its arguments assemble back to the same
// word. Words that the templates never produce, such as an ARM immediate
// stored with a larger rotation than needed (0xE3A00104 for mov r0, #1),
// are not matched and fail with ErrNoMatch.
type Disassembler struct {
	templates []*Template
}

// NewDisassembler creates a disassembler over templates. Earlier templates
// are preferred when more than one explains a word.
func NewDisassembler(templates ...*Template) *Disassembler {
	return &Disassembler{templates: slices.Clone(templates)}
}

// Templates returns the templates of the disassembler.
func (dis *Disassembler) Templates() []*Template {
	return slices.Clone(dis.templates)
}

// Candidates yields every decoding of a word: the template matches, the
// decoded arguments satisfy its hard constraints, and assembling them gives
// back the same word.
func (dis *Disassembler) Candidates(word uint32) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, t := range dis.templates {
			if !t.Matches(word) {
				continue
			}
			args, opts, err := t.Disassemble(word)
			if err != nil {
				continue
			}
			if t.Check(args) != nil {
				continue
			}
			again, err := t.Assemble(args, opts...)
			if err != nil || again != word {
				continue
			}
			if !yield(Instruction{Template: t, Arguments: args, Options: opts}) {
				return
			}
		}
	}
}

// Disassemble returns the first decoding of a word.
func (dis *Disassembler) Disassemble(word uint32) (in Instruction, err error) {
	for in = range dis.Candidates(word) {
		return
	}
	in = Instruction{}
	err = ErrWord(word)
	return
}
