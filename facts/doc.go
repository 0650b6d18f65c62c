// Package facts compiles declarative facts about classes of expressions
// into propositional formulas over applied predicates.
//
// A fact is a free formula, possibly containing quantifier nodes such as
// AllArgs(Q.positive). Facts are stored in a Registry keyed by expression
// class. Applying a fact to a concrete expression binds every free
// predicate to it and lowers each quantifier over the expression's
// operands, yielding a formula in negation normal form with composite
// predicates expanded.
//
//	env := facts.DefaultEnv()
//	all, err := env.AllArgs(q.Positive)
//	...
//	lowered, err := env.Apply(logic.Implies(all, q.Positive), expr.NewMul(x, y))
//	// (Q.positive(x*y) | ~Q.positive(x) | ~Q.positive(y))
package facts
