package risc

import (
	"fmt"
)

// Predicate checks the arguments of a template.
type Predicate func(t *Template, args []Argument) bool

// Constraint is a named predicate over the arguments of a template.
//
// Hard constraints are checked by every assembly. Test only constraints are
// never checked by Assemble; they prune the arguments a test corpus
// generates, ie to keep away from combinations a reference assembler
// rejects or warns about.
type Constraint struct {
	name      string
	predicate Predicate
	testOnly  bool
}

// Require creates a hard constraint.
func Require(name string, predicate Predicate) Constraint {
	return Constraint{name: name, predicate: predicate}
}

// TestOnly creates a constraint used only to prune test arguments.
func TestOnly(name string, predicate Predicate) Constraint {
	return Constraint{name: name, predicate: predicate, testOnly: true}
}

// RequireScript creates a hard constraint from a starlark boolean
// expression over the operand names.
func RequireScript(expr string) Constraint {
	return Require(expr, scriptPredicate(expr))
}

// TestOnlyScript creates a test only constraint from a starlark boolean
// expression over the operand names.
func TestOnlyScript(expr string) Constraint {
	return TestOnly(expr, scriptPredicate(expr))
}

func scriptPredicate(expr string) Predicate {
	return func(t *Template, args []Argument) bool {
		rc, err := scriptEval(expr, t.predeclare(args))
		if err != nil {
			return false
		}
		ok, err := scriptBool(expr, rc)
		return err == nil && ok
	}
}

func (Constraint) templatePart() {}

// Name returns the description of the constraint.
func (c Constraint) Name() string {
	return c.name
}

// IsTestOnly returns true if the constraint only prunes test arguments.
func (c Constraint) IsTestOnly() bool {
	return c.testOnly
}

// Check returns true if the arguments satisfy the constraint.
func (c Constraint) Check(t *Template, args []Argument) bool {
	return c.predicate(t, args)
}

func (c Constraint) String() string {
	if c.testOnly {
		return fmt.Sprintf("test only: %v", c.name)
	}
	return c.name
}

// NotEqual holds when two operands have different argument values.
func NotEqual(a, b Field) Predicate {
	return func(t *Template, args []Argument) bool {
		va, err := t.Argument(args, a)
		if err != nil {
			return false
		}
		vb, err := t.Argument(args, b)
		if err != nil {
			return false
		}
		return va.Value() != vb.Value()
	}
}

// NotSymbol holds when an operand is not the symbol.
func NotSymbol(operand Field, sym Symbol) Predicate {
	return func(t *Template, args []Argument) bool {
		arg, err := t.Argument(args, operand)
		if err != nil {
			return false
		}
		return arg != Argument(sym)
	}
}
