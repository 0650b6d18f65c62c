package facts

import (
	"sync"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
	"github.com/mcpl-sympy/sympy/q"
)

// Entry is one row of the knowledge base.
type Entry struct {
	Class *expr.Class
	Fact  *logic.Formula
}

// kbBuilder builds knowledge base rows, keeping the first error.
type kbBuilder struct {
	env     *Env
	entries []Entry
	err     error
}

func (b *kbBuilder) add(c *expr.Class, fact logic.Term) {
	if b.err != nil {
		return
	}
	b.entries = append(b.entries, Entry{Class: c, Fact: fact.Formula()})
}

func (b *kbBuilder) quant(s Strategy, arg logic.Term) *logic.Formula {
	if b.err != nil {
		return logic.False()
	}
	f, err := b.env.New(s, arg)
	if err != nil {
		b.err = err
		return logic.False()
	}
	return f
}

func (b *kbBuilder) all(arg logic.Term) *logic.Formula   { return b.quant(AllArgs, arg) }
func (b *kbBuilder) any(arg logic.Term) *logic.Formula   { return b.quant(AnyArgs, arg) }
func (b *kbBuilder) one(arg logic.Term) *logic.Formula   { return b.quant(ExactlyOneArg, arg) }
func (b *kbBuilder) old(arg logic.Term) *logic.Formula   { return b.quant(CheckOldAssump, arg) }
func (b *kbBuilder) prime(arg logic.Term) *logic.Formula { return b.quant(CheckIsPrime, arg) }

// KnowledgeBase returns the fact table, in registration order, built
// against e.
func (e *Env) KnowledgeBase() ([]Entry, error) {
	b := &kbBuilder{env: e}
	not := logic.Not
	imp := logic.Implies
	eqv := logic.Equivalent

	b.add(expr.Mul, eqv(q.Zero, b.any(q.Zero)))
	b.add(expr.MatMul, imp(b.all(q.Square), eqv(q.Invertible, b.all(q.Invertible))))
	b.add(expr.Add, imp(b.all(q.Positive), q.Positive))
	b.add(expr.Add, imp(b.all(q.Negative), q.Negative))
	b.add(expr.Mul, imp(b.all(q.Positive), q.Positive))
	b.add(expr.Mul, imp(b.all(q.Commutative), q.Commutative))
	b.add(expr.Mul, imp(b.all(q.Real), q.Commutative))

	b.add(expr.Pow, e.Custom("real_base_even_exp_nonnegative", func(p *expr.Node) logic.Term {
		return imp(logic.And(q.Real.Of(p.Base()), q.Even.Of(p.Exp()), q.Nonnegative.Of(p.Exp())), q.Nonnegative.Of(p))
	}))
	b.add(expr.Pow, e.Custom("nonnegative_base_odd_exp_nonnegative", func(p *expr.Node) logic.Term {
		return imp(logic.And(q.Nonnegative.Of(p.Base()), q.Odd.Of(p.Exp()), q.Nonnegative.Of(p.Exp())), q.Nonnegative.Of(p))
	}))
	b.add(expr.Pow, e.Custom("nonpositive_base_odd_exp_nonpositive", func(p *expr.Node) logic.Term {
		return imp(logic.And(q.Nonpositive.Of(p.Base()), q.Odd.Of(p.Exp()), q.Nonnegative.Of(p.Exp())), q.Nonpositive.Of(p))
	}))
	b.add(expr.Pow, e.Custom("zero_iff_zero_base_positive_exp", func(p *expr.Node) logic.Term {
		return eqv(q.Zero.Of(p), logic.And(q.Zero.Of(p.Base()), q.Positive.Of(p.Exp())))
	}))

	b.add(expr.Integer, b.prime(q.Prime))
	b.add(expr.Integer, b.old(q.Composite))
	// Mul has at least two operands, and 1 is not prime.
	b.add(expr.Mul, imp(b.all(q.Prime), not(q.Prime)))
	b.add(expr.Mul, imp(b.all(logic.Or(q.Imaginary, q.Real)), imp(b.one(q.Imaginary), q.Imaginary)))
	b.add(expr.Mul, imp(b.all(q.Real), q.Real))
	b.add(expr.Add, imp(b.all(q.Real), q.Real))
	b.add(expr.Mul, imp(b.all(q.Real), imp(b.one(q.Irrational), q.Irrational)))
	b.add(expr.Add, imp(b.all(q.Real), imp(b.one(q.Irrational), q.Irrational)))
	b.add(expr.Mul, imp(b.all(q.Rational), q.Rational))
	b.add(expr.Add, imp(b.all(q.Rational), q.Rational))

	b.add(expr.Abs, q.Nonnegative)
	b.add(expr.Abs, eqv(b.all(not(q.Zero)), not(q.Zero)))

	// Every integer is even or odd, so no separate odd fact is needed.
	b.add(expr.Mul, imp(b.all(q.Integer), eqv(b.any(q.Even), q.Even)))

	b.add(expr.Abs, imp(b.all(q.Even), q.Even))
	b.add(expr.Abs, imp(b.all(q.Odd), q.Odd))

	b.add(expr.Add, imp(b.all(q.Integer), q.Integer))
	b.add(expr.Add, imp(b.one(not(q.Integer)), not(q.Integer)))
	b.add(expr.Mul, imp(b.all(q.Integer), q.Integer))
	b.add(expr.Mul, imp(b.one(not(q.Rational)), not(q.Integer)))
	b.add(expr.Abs, imp(b.all(q.Integer), q.Integer))

	for _, p := range []*logic.Predicate{
		q.Negative, q.Zero, q.Positive, q.Nonnegative, q.Nonzero, q.Nonpositive,
		q.Rational, q.Irrational, q.Even, q.Odd, q.Integer, q.Imaginary,
	} {
		b.add(expr.Number, b.old(p))
	}
	// NumberSymbol does not derive from Number.
	for _, c := range []*expr.Class{expr.NumberSymbol, expr.ImaginaryUnit} {
		for _, p := range []*logic.Predicate{
			q.Negative, q.Zero, q.Positive, q.Nonnegative, q.Nonzero, q.Nonpositive,
			q.Rational, q.Irrational, q.Imaginary,
		} {
			b.add(c, b.old(p))
		}
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.entries, nil
}

// Load registers entries into r in order.
func Load(r *Registry, entries []Entry) {
	for _, ent := range entries {
		r.Register(ent.Class, ent.Fact)
	}
}

// NewKnowledgeRegistry returns a fresh registry holding e's knowledge base.
func NewKnowledgeRegistry(e *Env) (*Registry, error) {
	entries, err := e.KnowledgeBase()
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	Load(r, entries)
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns a process wide registry built from DefaultEnv on first
// use.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = NewKnowledgeRegistry(DefaultEnv())
	})
	return defaultReg, defaultErr
}
