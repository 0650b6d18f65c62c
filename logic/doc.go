// Package logic provides predicates and the boolean formulas built from them.
//
// # Predicates
//
// A *Predicate is an interned, named boolean tag such as "positive". Two
// predicates are the same exactly when they are the same pointer:
//
//	logic.Pred("positive") == logic.Pred("positive") // true
//
// Applying a predicate to an expression yields an applied predicate, a leaf
// formula asserting the property of that expression:
//
//	pos := logic.Pred("positive")
//	f := pos.Of(expr.NewMul(x, y)) // Q.positive(x*y)
//
// # Formulas
//
// Formula is a tagged union over Kind. Leaves are the constants, free
// predicates, applied predicates and Binder nodes; the connectives are Not,
// And, Or, Implies and Equivalent. Connective constructors accept any Term,
// which both *Predicate and *Formula implement, so templates read naturally:
//
//	logic.Implies(logic.And(pos, logic.Not(zero)), pos)
//
// And and Or flatten nested nodes of the same kind, fold constants, remove
// duplicates and order their operands canonically. An empty And is True and
// an empty Or is False. Formulas are immutable once built.
//
// A formula is free when it contains no applied predicates and singly
// applied when every applied predicate in it targets one expression.
// Rcall turns a free formula into a singly applied one.
//
// # Binders
//
// A Binder is an extension node that stays symbolic until it is bound to a
// concrete expression (see Rcall). Quantifiers over operands are binders.
//
// # Normal form
//
// ToNNF rewrites a formula into negation normal form, eliminating
// implications and equivalences and expanding composite predicates through
// a caller supplied table.
package logic
