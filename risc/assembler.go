// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package risc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"ADDR":   "0x0",
}

// INSTRUCTION_SIZE is the number of bytes each instruction occupies.
const INSTRUCTION_SIZE = 4

// Assembler is a two pass macro assembler over a set of templates.
//
// The first pass expands macros and equates and assigns addresses to labels.
// The second pass evaluates $() expressions, which may use labels, and
// assembles each line with the first template that accepts it.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Templates []*Template // Templates, in order of preference.
	Opcode    []Opcode    // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]uint32   // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expanding  []string // Macros being expanded.
	expansions int      // Number of macro expansions so far.
}

// NewAssembler creates an assembler for the templates.
func NewAssembler(templates ...*Template) *Assembler {
	return &Assembler{Templates: slices.Clone(templates)}
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdentifier = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

// parenEval does $(...) evaluations, with labels and integer equates
// predeclared.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeUint(uint(addr))
	}

	rc, err := scriptEval(expr, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	value, err = scriptInt(expr, rc)
	return
}

// expandCharacters replaces 'x' character literals by their value.
func expandCharacters(line string) string {
	return reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})
}

// expandExpressions replaces $() expressions by their value.
func (asm *Assembler) expandExpressions(line string) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	return
}

// cutWord splits the first word from a line.
func cutWord(line string) (word, rest string) {
	word = line
	if at := strings.IndexFunc(line, unicode.IsSpace); at >= 0 {
		word, rest = line[:at], line[at:]
	}
	return
}

// substituteEquates replaces identifiers that name equates.
func (asm *Assembler) substituteEquates(text string) string {
	return reIdentifier.ReplaceAllStringFunc(text, func(word string) string {
		equate, ok := asm.Equate[word]
		if ok {
			return equate
		}
		return word
	})
}

// expandEquates replaces equates after the mnemonic.
func (asm *Assembler) expandEquates(line string) string {
	mnemonic, rest := cutWord(line)
	return mnemonic + asm.substituteEquates(rest)
}

// currentAddr gets the address of the next opcode.
func (asm *Assembler) currentAddr() uint32 {
	return uint32(len(asm.Opcode) * INSTRUCTION_SIZE)
}

// parseLine runs the first pass over a single line.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Set line number and address.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)
	asm.Equate["ADDR"] = fmt.Sprintf("%#x", asm.currentAddr())

	line = strings.TrimSpace(expandCharacters(line))

	for {
		word, rest := cutWord(line)
		if !strings.HasSuffix(word, ":") {
			break
		}
		label := word[:len(word)-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddr()
		line = strings.TrimSpace(rest)
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) < 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		var value string
		value, err = asm.expandExpressions(asm.substituteEquates(strings.Join(words[2:], " ")))
		if err != nil {
			return
		}
		if len(strings.Fields(value)) != 1 {
			err = ErrEquateSyntax
			return
		}
		asm.Equate[words[1]] = value
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirectiveUnknown
		return
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		if slices.Contains(asm.expanding, name) {
			err = ErrMacroRecursion
			return
		}
		asm.expanding = append(asm.expanding, name)
		defer func() { asm.expanding = asm.expanding[:len(asm.expanding)-1] }()
		asm.expansions++
		mangle := fmt.Sprintf("%v_%v_", name, asm.expansions)

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = asm.substituteEquates(args[n])
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", mangle)
			err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		return
	}

	line = asm.expandEquates(line)
	opcode := Opcode{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Words:  strings.Fields(line),
	}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]uint32, 16)
	asm.Opcode = asm.Opcode[:0]
	asm.Macro = make(map[string](*Macro))
	asm.Equate = maps.Clone(sysEquate)
	asm.expanding = nil
	asm.expansions = 0
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Second pass: expressions and encoding.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		asm.Equate["LINENO"] = fmt.Sprintf("%v", op.LineNo)
		asm.Equate["ADDR"] = fmt.Sprintf("%#x", op.Addr)

		var text string
		text, err = asm.expandExpressions(line)
		if err != nil {
			return
		}

		err = asm.assemble(op, text)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("0x%08x: 0x%08x %v\n", op.Addr, op.Word, text)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// assemble encodes one line with the first template that accepts it.
func (asm *Assembler) assemble(op *Opcode, text string) (err error) {
	mnemonic, _ := cutWord(text)

	var assembleErr error
	known := false
	for _, t := range asm.Templates {
		if !hasPrefixFold(mnemonic, t.ExternalName()) {
			continue
		}
		known = true

		args, opts, perr := t.Parse(text)
		if perr != nil {
			continue
		}

		word, aerr := t.Assemble(args, opts...)
		if aerr != nil {
			if assembleErr == nil {
				assembleErr = aerr
			}
			continue
		}

		op.Word = word
		op.Template = t
		return
	}

	switch {
	case assembleErr != nil:
		err = assembleErr
	case known:
		err = ErrOperandsInvalid
	default:
		err = ErrMnemonicUnknown
	}

	return
}
