// Package parse reads expressions and propositions written in a small
// Python-like syntax, using the expr-lang parser for the grammar.
//
//	x*y + 2**n - Abs(z)
//	Q.positive(x) && !Q.zero(y)
//	Implies(Q.even(n), Q.integer(n))
package parse

import (
	"fmt"
	"math/big"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/mcpl-sympy/sympy/debug"
	"github.com/mcpl-sympy/sympy/expr"
)

func parseTree(input string) (ast.Node, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parse %q: %T\n", input, tree.Node)
	}
	return tree.Node, nil
}

// Expr parses an expression. Identifiers are symbols except pi, E and I.
// Calls name expression classes: Add(x, y), Pow(x, 2), Abs(x),
// MatMul(A, B), whose symbol arguments become matrix symbols.
func Expr(input string) (*expr.Node, error) {
	n, err := parseTree(input)
	if err != nil {
		return nil, err
	}
	return toExpr(n)
}

func toExpr(node ast.Node) (*expr.Node, error) {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		return ident(n.Value), nil
	case *ast.IntegerNode:
		return expr.Int(int64(n.Value)), nil
	case *ast.FloatNode:
		return expr.Flt(n.Value), nil
	case *ast.UnaryNode:
		x, err := toExpr(n.Node)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "-":
			return neg(x), nil
		case "+":
			return x, nil
		}
		return nil, fmt.Errorf("%w: unsupported unary operator %q", ErrParse, n.Operator)
	case *ast.BinaryNode:
		return binary(n)
	case *ast.CallNode:
		id, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported call in expression", ErrParse)
		}
		return call(id.Value, n.Arguments)
	case *ast.BuiltinNode:
		return call(n.Name, n.Arguments)
	}
	return nil, fmt.Errorf("%w: unsupported expression node %T", ErrParse, node)
}

func ident(name string) *expr.Node {
	switch name {
	case "pi":
		return expr.Pi()
	case "E":
		return expr.E()
	case "I":
		return expr.I()
	}
	return expr.Sym(name)
}

func neg(x *expr.Node) *expr.Node {
	switch {
	case x.Rat != nil:
		return expr.FromRat(new(big.Rat).Neg(x.Rat))
	case x.Class == expr.Float:
		return expr.Flt(-x.Float)
	case x.Class == expr.Mul:
		return expr.NewMul(append([]*expr.Node{expr.Int(-1)}, x.Args...)...)
	}
	return expr.NewMul(expr.Int(-1), x)
}

// flat builds a c node from l and r, splicing in l's operands when l is
// already a c node, so chains like x+y+z have three operands.
func flat(c *expr.Class, l, r *expr.Node) *expr.Node {
	if l.Class == c {
		return expr.New(c, append(append([]*expr.Node{}, l.Args...), r)...)
	}
	return expr.New(c, l, r)
}

func binary(n *ast.BinaryNode) (*expr.Node, error) {
	l, err := toExpr(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := toExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "+":
		return flat(expr.Add, l, r), nil
	case "-":
		return flat(expr.Add, l, neg(r)), nil
	case "*":
		return flat(expr.Mul, l, r), nil
	case "/":
		if l.Rat != nil && r.Rat != nil {
			if r.Rat.Sign() == 0 {
				return nil, fmt.Errorf("%w: division by zero", ErrParse)
			}
			return expr.FromRat(new(big.Rat).Quo(l.Rat, r.Rat)), nil
		}
		return flat(expr.Mul, l, expr.NewPow(r, expr.Int(-1))), nil
	case "**", "^":
		return expr.NewPow(l, r), nil
	}
	return nil, fmt.Errorf("%w: unsupported operator %q", ErrParse, n.Operator)
}

var arity = map[*expr.Class]int{
	expr.Pow: 2,
	expr.Abs: 1,
}

func call(name string, args []ast.Node) (*expr.Node, error) {
	if name == "abs" {
		name = "Abs"
	}
	c, ok := expr.ClassByName(name)
	if !ok || c.IsSubclass(expr.Atom) {
		return nil, fmt.Errorf("%w: unknown function %s", ErrParse, name)
	}
	if want, ok := arity[c]; ok && want != len(args) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrParse, name, want, len(args))
	}
	xs := make([]*expr.Node, len(args))
	for i, arg := range args {
		x, err := toExpr(arg)
		if err != nil {
			return nil, err
		}
		if c.IsSubclass(expr.MatrixExpr) && x.Class == expr.Symbol {
			x = expr.MatSym(x.Name)
		}
		xs[i] = x
	}
	return expr.New(c, xs...), nil
}
