// Package q is the catalogue of known predicates, named after the Q
// namespace of the assumption system: q.Positive reads as Q.positive.
package q

import (
	"slices"

	"github.com/mcpl-sympy/sympy/logic"
)

var (
	Positive    = logic.Pred("positive")
	Negative    = logic.Pred("negative")
	Zero        = logic.Pred("zero")
	Nonpositive = logic.Pred("nonpositive")
	Nonzero     = logic.Pred("nonzero")
	Nonnegative = logic.Pred("nonnegative")

	Rational       = logic.Pred("rational")
	Irrational     = logic.Pred("irrational")
	Real           = logic.Pred("real")
	Complex        = logic.Pred("complex")
	Algebraic      = logic.Pred("algebraic")
	Transcendental = logic.Pred("transcendental")
	Imaginary      = logic.Pred("imaginary")

	Integer   = logic.Pred("integer")
	Even      = logic.Pred("even")
	Odd       = logic.Pred("odd")
	Prime     = logic.Pred("prime")
	Composite = logic.Pred("composite")

	Finite           = logic.Pred("finite")
	Infinite         = logic.Pred("infinite")
	PositiveInfinite = logic.Pred("positive_infinite")
	NegativeInfinite = logic.Pred("negative_infinite")

	ExtendedReal        = logic.Pred("extended_real")
	ExtendedPositive    = logic.Pred("extended_positive")
	ExtendedNegative    = logic.Pred("extended_negative")
	ExtendedNonzero     = logic.Pred("extended_nonzero")
	ExtendedNonpositive = logic.Pred("extended_nonpositive")
	ExtendedNonnegative = logic.Pred("extended_nonnegative")

	Commutative = logic.Pred("commutative")

	Square     = logic.Pred("square")
	Invertible = logic.Pred("invertible")
)

var all = []*logic.Predicate{
	Positive, Negative, Zero, Nonpositive, Nonzero, Nonnegative,
	Rational, Irrational, Real, Complex, Algebraic, Transcendental, Imaginary,
	Integer, Even, Odd, Prime, Composite,
	Finite, Infinite, PositiveInfinite, NegativeInfinite,
	ExtendedReal, ExtendedPositive, ExtendedNegative,
	ExtendedNonzero, ExtendedNonpositive, ExtendedNonnegative,
	Commutative, Square, Invertible,
}

var byName = func() map[string]*logic.Predicate {
	res := make(map[string]*logic.Predicate, len(all))
	for _, p := range all {
		res[p.Name()] = p
	}
	return res
}()

// All returns the catalogue.
func All() []*logic.Predicate {
	return slices.Clone(all)
}

// Lookup finds a catalogued predicate by name.
func Lookup(name string) (*logic.Predicate, bool) {
	p, ok := byName[name]
	return p, ok
}

// Composites returns the composite predicate table: each key is shorthand
// for the free formula it maps to. The map is fresh on every call.
func Composites() map[*logic.Predicate]*logic.Formula {
	return map[*logic.Predicate]*logic.Formula{
		Real:                logic.Or(Negative, Zero, Positive),
		Integer:             logic.Or(Even, Odd),
		Nonpositive:         logic.Or(Negative, Zero),
		Nonzero:             logic.Or(Negative, Positive),
		Nonnegative:         logic.Or(Zero, Positive),
		ExtendedReal:        logic.Or(NegativeInfinite, Negative, Zero, Positive, PositiveInfinite),
		ExtendedPositive:    logic.Or(Positive, PositiveInfinite),
		ExtendedNegative:    logic.Or(Negative, NegativeInfinite),
		ExtendedNonzero:     logic.Or(NegativeInfinite, Negative, Positive, PositiveInfinite),
		ExtendedNonpositive: logic.Or(NegativeInfinite, Negative, Zero),
		ExtendedNonnegative: logic.Or(Zero, Positive, PositiveInfinite),
		Complex:             logic.Or(Algebraic, Transcendental),
	}
}
