package satask

import (
	"github.com/mcpl-sympy/sympy/logic"
	"github.com/mcpl-sympy/sympy/q"
)

// knownFacts relate predicates on a single expression. They hold for every
// expression and are applied to each one a query mentions.
func knownFacts() []*logic.Formula {
	not, and, imp := logic.Not, logic.And, logic.Implies
	exclusive := func(ps ...*logic.Predicate) []*logic.Formula {
		var res []*logic.Formula
		for i := range ps {
			for j := i + 1; j < len(ps); j++ {
				res = append(res, logic.Or(not(ps[i]), not(ps[j])))
			}
		}
		return res
	}
	res := []*logic.Formula{
		imp(q.Zero, q.Even),
		imp(q.Prime, and(q.Integer, q.Positive)),
		imp(q.Composite, and(q.Integer, q.Positive, not(q.Prime))),
		imp(q.Integer, q.Rational),
		imp(q.Rational, and(q.Real, q.Algebraic)),
		imp(q.Irrational, and(q.Real, not(q.Rational))),
		imp(q.Imaginary, and(q.Complex, not(q.Real))),
		imp(q.Real, q.Complex),
		imp(q.PositiveInfinite, not(q.Finite)),
		imp(q.NegativeInfinite, not(q.Finite)),
		imp(q.Complex, q.Finite),
		logic.Equivalent(q.Infinite, not(q.Finite)),
	}
	res = append(res, exclusive(q.NegativeInfinite, q.Negative, q.Zero, q.Positive, q.PositiveInfinite)...)
	res = append(res, exclusive(q.Even, q.Odd)...)
	res = append(res, exclusive(q.Algebraic, q.Transcendental)...)
	return res
}
