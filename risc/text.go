package risc

import (
	"strings"
	"unicode"
)

// Text renders an instruction in assembler syntax: the external name with
// its suffixes, then the operand syntax.
func (t *Template) Text(args []Argument, opts ...Option) (text string, err error) {
	if len(args) != len(t.operands) {
		err = &ErrArguments{Template: t.mnemonic, Want: len(t.operands), Got: len(args)}
		return
	}

	var b strings.Builder
	b.WriteString(t.external)

	for _, part := range t.suffixes {
		switch p := part.(type) {
		case suffix:
			var arg Argument
			arg, err = t.Argument(args, p.operand)
			if err != nil {
				return
			}
			b.WriteString(p.operand.Text(arg))
		case OptionField:
			opt, ok := p.DefaultOption()
			for _, chosen := range opts {
				if chosen.Field == p.Name() {
					opt, ok = chosen, true
				}
			}
			if !ok {
				err = &ErrOperand{Template: t.mnemonic, Operand: p.Name(), Err: ErrOptionMissing}
				return
			}
			b.WriteString(opt.External)
		}
	}

	var body strings.Builder
	for _, part := range t.body {
		switch p := part.(type) {
		case Syntax:
			body.WriteString(string(p))
		case Operand:
			var arg Argument
			arg, err = t.Argument(args, p)
			if err != nil {
				return
			}
			body.WriteString(arg.String())
		}
	}

	if body.Len() > 0 {
		b.WriteByte(' ')
		b.WriteString(body.String())
	}

	text = b.String()
	return
}

// Parse reads the arguments and options of an instruction from its
// assembler syntax. Whitespace around syntax literals is ignored, and
// mnemonics and symbols are matched without regard to case.
func (t *Template) Parse(text string) (args []Argument, opts []Option, err error) {
	text = strings.TrimSpace(text)
	word, rest := text, ""
	if at := strings.IndexFunc(text, unicode.IsSpace); at >= 0 {
		word, rest = text[:at], strings.TrimSpace(text[at:])
	}

	if len(word) < len(t.external) || !strings.EqualFold(word[:len(t.external)], t.external) {
		err = &ErrOperand{Template: t.mnemonic, Operand: word, Err: ErrSyntaxMismatch}
		return
	}

	args = make([]Argument, len(t.operands))

	var chosen []Option
	if !t.parseSuffixes(word[len(t.external):], t.suffixes, args, &chosen) {
		args = nil
		err = &ErrOperand{Template: t.mnemonic, Operand: word, Err: ErrSyntaxMismatch}
		return
	}

	err = t.parseBody(rest, args)
	if err != nil {
		args = nil
		return
	}

	opts = chosen
	return
}

// parseSuffixes matches the text after the external name against the
// suffix parts, backtracking over the symbols and options that may
// match a prefix of it.
func (t *Template) parseSuffixes(text string, parts []Part, args []Argument, opts *[]Option) bool {
	if len(parts) == 0 {
		return len(text) == 0
	}

	switch p := parts[0].(type) {
	case suffix:
		n := t.OperandIndex(p.operand)
		if sym, ok := p.operand.TextDefault(); ok {
			args[n] = sym
			if t.parseSuffixes(text, parts[1:], args, opts) {
				return true
			}
		}
		for sym := range p.operand.symbolizer.Symbols() {
			names := []string{sym.Name()}
			for alias, other := range p.operand.symbolizer.byName {
				if other == sym && !strings.EqualFold(alias, sym.Name()) {
					names = append(names, alias)
				}
			}
			for _, name := range names {
				if !hasPrefixFold(text, name) {
					continue
				}
				args[n] = sym
				if t.parseSuffixes(text[len(name):], parts[1:], args, opts) {
					return true
				}
			}
		}
		args[n] = nil
	case OptionField:
		for _, opt := range p.options {
			if !hasPrefixFold(text, opt.External) {
				continue
			}
			*opts = append(*opts, opt)
			if t.parseSuffixes(text[len(opt.External):], parts[1:], args, opts) {
				return true
			}
			*opts = (*opts)[:len(*opts)-1]
		}
	}

	return false
}

// parseBody matches the operand syntax of the template.
func (t *Template) parseBody(text string, args []Argument) (err error) {
	for n, part := range t.body {
		switch p := part.(type) {
		case Syntax:
			var ok bool
			text, ok = cutSyntax(text, string(p))
			if !ok {
				err = &ErrOperand{Template: t.mnemonic, Operand: string(p), Err: ErrSyntaxMismatch}
				return
			}
		case Operand:
			token := text
			text = ""
			if next, ok := nextSyntax(t.body[n+1:]); ok {
				at := indexFold(token, next)
				if at < 0 {
					err = &ErrOperand{Template: t.mnemonic, Operand: p.Name(), Err: ErrSyntaxMismatch}
					return
				}
				token, text = token[:at], token[at:]
			}
			var arg Argument
			arg, err = p.Parse(strings.TrimSpace(token))
			if err != nil {
				err = &ErrOperand{Template: t.mnemonic, Operand: p.Name(), Err: err}
				return
			}
			args[t.OperandIndex(p)] = arg
		}
	}

	if len(strings.TrimSpace(text)) != 0 {
		err = &ErrOperand{Template: t.mnemonic, Operand: text, Err: ErrSyntaxMismatch}
		return
	}

	return
}

// nextSyntax returns the first non-space character of the syntax literal
// that ends an operand token, if the operand is followed by one.
func nextSyntax(parts []Part) (next string, ok bool) {
	for _, part := range parts {
		s, is_syntax := part.(Syntax)
		if !is_syntax {
			return
		}
		trimmed := strings.TrimSpace(string(s))
		if len(trimmed) > 0 {
			next, ok = trimmed[:1], true
			return
		}
	}
	return
}

// cutSyntax removes a syntax literal from the front of the text, ignoring
// whitespace on both sides.
func cutSyntax(text string, syntax string) (rest string, ok bool) {
	rest = text
	for _, r := range syntax {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if unicode.IsSpace(r) {
			continue
		}
		if len(rest) == 0 || unicode.ToLower(rune(rest[0])) != unicode.ToLower(r) {
			return
		}
		rest = rest[1:]
	}
	ok = true
	return
}

func hasPrefixFold(text, prefix string) bool {
	return len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix)
}

func indexFold(text, substr string) int {
	return strings.Index(strings.ToLower(text), strings.ToLower(substr))
}
