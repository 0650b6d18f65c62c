package parse

import (
	"fmt"

	"github.com/expr-lang/expr/ast"

	"github.com/mcpl-sympy/sympy/logic"
	"github.com/mcpl-sympy/sympy/q"
)

// Formula parses a proposition. Predicates are written Q.name, either bare
// (free) or applied to an expression. Connectives are && (and), || (or),
// ! (not) and the calls And, Or, Not, Implies and Equivalent.
func Formula(input string) (*logic.Formula, error) {
	n, err := parseTree(input)
	if err != nil {
		return nil, err
	}
	return toFormula(n)
}

func toFormula(node ast.Node) (*logic.Formula, error) {
	switch n := node.(type) {
	case *ast.BoolNode:
		return logic.Bool(n.Value), nil
	case *ast.IdentifierNode:
		switch n.Value {
		case "True":
			return logic.True(), nil
		case "False":
			return logic.False(), nil
		}
		return nil, fmt.Errorf("%w: %s is not a proposition", ErrParse, n.Value)
	case *ast.MemberNode:
		p, err := predicate(n)
		if err != nil {
			return nil, err
		}
		return p.Formula(), nil
	case *ast.UnaryNode:
		if n.Operator != "!" && n.Operator != "not" {
			return nil, fmt.Errorf("%w: unsupported unary operator %q in proposition", ErrParse, n.Operator)
		}
		f, err := toFormula(n.Node)
		if err != nil {
			return nil, err
		}
		return logic.Not(f), nil
	case *ast.BinaryNode:
		l, err := toFormula(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := toFormula(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "&&", "and":
			return logic.And(l, r), nil
		case "||", "or":
			return logic.Or(l, r), nil
		}
		return nil, fmt.Errorf("%w: unsupported operator %q in proposition", ErrParse, n.Operator)
	case *ast.CallNode:
		switch callee := n.Callee.(type) {
		case *ast.MemberNode:
			return applied(callee, n.Arguments)
		case *ast.IdentifierNode:
			return connective(callee.Value, n.Arguments)
		}
	}
	return nil, fmt.Errorf("%w: unsupported proposition node %T", ErrParse, node)
}

func predicate(m *ast.MemberNode) (*logic.Predicate, error) {
	id, ok := m.Node.(*ast.IdentifierNode)
	if !ok || id.Value != "Q" {
		return nil, fmt.Errorf("%w: predicates are written Q.name", ErrParse)
	}
	prop, ok := m.Property.(*ast.StringNode)
	if !ok {
		return nil, fmt.Errorf("%w: predicates are written Q.name", ErrParse)
	}
	p, ok := q.Lookup(prop.Value)
	if !ok {
		return nil, fmt.Errorf("%w: unknown predicate Q.%s", ErrParse, prop.Value)
	}
	return p, nil
}

func applied(m *ast.MemberNode, args []ast.Node) (*logic.Formula, error) {
	p, err := predicate(m)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes one argument, got %d", ErrParse, p, len(args))
	}
	x, err := toExpr(args[0])
	if err != nil {
		return nil, err
	}
	return p.Of(x), nil
}

func connective(name string, args []ast.Node) (*logic.Formula, error) {
	fs := make([]logic.Term, len(args))
	for i, arg := range args {
		f, err := toFormula(arg)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	switch name {
	case "And":
		return logic.And(fs...), nil
	case "Or":
		return logic.Or(fs...), nil
	case "Not":
		if len(fs) == 1 {
			return logic.Not(fs[0]), nil
		}
	case "Implies":
		if len(fs) == 2 {
			return logic.Implies(fs[0], fs[1]), nil
		}
	case "Equivalent":
		return logic.Equivalent(fs...), nil
	default:
		return nil, fmt.Errorf("%w: unknown connective %s", ErrParse, name)
	}
	return nil, fmt.Errorf("%w: wrong number of arguments to %s: %d", ErrParse, name, len(fs))
}
