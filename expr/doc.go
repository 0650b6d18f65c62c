// Package expr provides the term layer reasoned about by the assumption
// engine.
//
// # Overview
//
// An expression is an immutable tree of *Node values. Every node carries a
// runtime *Class, an ordered operand list (Args) and, for atoms, a payload:
// a name for symbols and number symbols, an exact rational for integers and
// rationals, or a float64 for floats.
//
// Constructors never canonicalise: operand order is preserved exactly as
// given, so
//
//	expr.NewMul(expr.Sym("x"), expr.Sym("y"))
//
// has operands [x, y] in that order.
//
// # Classes
//
// Classes form a multiple-inheritance hierarchy mirroring the symbolic
// algebra core (Basic, Expr, Atom, Number, Integer, Add, Mul, Pow, ...).
// The ancestor chain of a class is computed once, when the class is
// created, so subclass tests and ancestor walks are cheap:
//
//	expr.Integer.IsSubclass(expr.Number) // true
//	expr.MatMul.IsSubclass(expr.Mul)     // true
//
// # Legacy attributes
//
// Numeric atoms know a handful of properties directly, as tri-state values
// (see Tri and LegacyFlag). These are the attributes the assumption engine
// bridges into its propositional facts.
//
// # Equality
//
// Nodes compare structurally (Compare, Equal). Key returns a canonical
// string that is equal for structurally equal nodes and is used wherever a
// node has to index a map.
package expr
