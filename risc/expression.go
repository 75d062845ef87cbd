// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package risc

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Expression computes the value of a bound operand from the arguments of
// a template at assembly time.
type Expression interface {
	Evaluate(t *Template, args []Argument) (int64, error)
}

// ExpressionFunc adapts a function to an Expression.
type ExpressionFunc func(t *Template, args []Argument) (int64, error)

func (fn ExpressionFunc) Evaluate(t *Template, args []Argument) (int64, error) {
	return fn(t, args)
}

// ValueOf is the value of the argument of an operand.
func ValueOf(operand Field) Expression {
	return ExpressionFunc(func(t *Template, args []Argument) (value int64, err error) {
		arg, err := t.Argument(args, operand)
		if err != nil {
			return
		}
		value = arg.Value()
		return
	})
}

// Difference is the value of a minus the value of b.
func Difference(a, b Expression) Expression {
	return ExpressionFunc(func(t *Template, args []Argument) (value int64, err error) {
		va, err := a.Evaluate(t, args)
		if err != nil {
			return
		}
		vb, err := b.Evaluate(t, args)
		if err != nil {
			return
		}
		value = va - vb
		return
	})
}

// Script is a starlark expression over the operands of the template, which
// are predeclared by name with the values of their arguments.
//
//	shift_imm := risc.Script("shift % 32")
type Script string

func (src Script) Evaluate(t *Template, args []Argument) (value int64, err error) {
	rc, err := scriptEval(string(src), t.predeclare(args))
	if err != nil {
		return
	}
	value, err = scriptInt(string(src), rc)
	return
}

// predeclare returns the operand values of an argument list by name.
func (t *Template) predeclare(args []Argument) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for n, op := range t.operands {
		if n >= len(args) || args[n] == nil {
			continue
		}
		pred[op.Name()] = starlark.MakeInt64(args[n].Value())
	}
	return
}

// scriptEval evaluates a starlark expression.
func scriptEval(expr string, pred starlark.StringDict) (rc starlark.Value, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// scriptInt converts the result of an expression to an int64.
func scriptInt(expr string, rc starlark.Value) (value int64, err error) {
	st_int, ok := rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// scriptBool converts the result of an expression to a bool.
func scriptBool(expr string, rc starlark.Value) (value bool, err error) {
	st_bool, ok := rc.(starlark.Bool)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = bool(st_bool)
	return
}
