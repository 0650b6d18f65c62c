package facts

import (
	"fmt"

	"github.com/mcpl-sympy/sympy/debug"
	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
)

// Strategy is the lowering applied when a quantifier is bound.
type Strategy int

const (
	// Unevaluated binds but never lowers.
	Unevaluated Strategy = iota
	AllArgs
	AnyArgs
	ExactlyOneArg
	// CheckOldAssump relates the argument to the legacy attributes of the
	// target.
	CheckOldAssump
	// CheckIsPrime relates the argument to the primality of the target.
	CheckIsPrime
	// Custom calls a rule function on the target.
	Custom
)

func (s Strategy) String() string {
	str, ok := map[Strategy]string{
		Unevaluated:    "UnevaluatedOnFree",
		AllArgs:        "AllArgs",
		AnyArgs:        "AnyArgs",
		ExactlyOneArg:  "ExactlyOneArg",
		CheckOldAssump: "CheckOldAssump",
		CheckIsPrime:   "CheckIsPrime",
		Custom:         "CustomRule",
	}[s]
	if ok {
		return str
	}
	return "<unknown strategy>"
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(d []byte) error {
	for c := Unevaluated; c <= Custom; c++ {
		if c.String() == string(d) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unrecognized strategy %q", d)
}

// RuleFunc produces a fact for a concrete expression.
type RuleFunc func(target *expr.Node) logic.Term

// Quantifier is a formula over predicates which is lowered once it is
// bound to a single expression. Unbound quantifiers hold a free formula
// and have a nil Target.
type Quantifier struct {
	env      *Env
	strategy Strategy
	arg      *logic.Formula
	pattern  *logic.Formula
	target   *expr.Node

	ruleName string
	rule     RuleFunc
}

func (q *Quantifier) Strategy() Strategy {
	return q.strategy
}

// Arg returns the formula the quantifier was constructed with, or nil for
// custom rules.
func (q *Quantifier) Arg() *logic.Formula {
	return q.arg
}

// Pattern returns the free form of the argument.
func (q *Quantifier) Pattern() *logic.Formula {
	return q.pattern
}

// Target returns the expression the quantifier is bound to, or nil.
func (q *Quantifier) Target() *expr.Node {
	return q.target
}

func (q *Quantifier) Key() string {
	if q.strategy == Custom {
		return "CustomRule(" + q.ruleName + ")"
	}
	return q.strategy.String() + "(" + q.arg.Key() + ")"
}

func (q *Quantifier) String() string {
	if q.strategy == Custom {
		return "CustomRule(" + q.ruleName + ")"
	}
	return q.strategy.String() + "(" + q.arg.String() + ")"
}

// Bind applies the quantifier to target. It is equivalent to constructing
// the quantifier over its argument applied to target.
func (q *Quantifier) Bind(target *expr.Node) (*logic.Formula, error) {
	if q.strategy == Custom {
		res := q.env.NNF(q.rule(target))
		if debug.Lower() {
			debug.Logf("lower %s on %s: %s\n", q, target, res)
		}
		return res, nil
	}
	applied, err := logic.Rcall(q.arg, target)
	if err != nil {
		return nil, err
	}
	return q.env.New(q.strategy, applied)
}

// Apply is Bind with the negation flag of the legacy bridges. The flag is
// accepted for compatibility and has no effect.
func (q *Quantifier) Apply(target *expr.Node, _ bool) (*logic.Formula, error) {
	return q.Bind(target)
}

// New constructs a quantifier with strategy s over arg. The argument must
// either contain no applied predicates, in which case the quantifier stays
// unbound, or contain no free predicates and apply every predicate to the
// same expression. In the latter case the quantifier is lowered at once
// and the lowered formula is returned in its place; strategies with no
// opinion return the bound quantifier node.
func (e *Env) New(s Strategy, arg logic.Term) (*logic.Formula, error) {
	if s == Custom {
		return nil, fmt.Errorf("%w: custom rules are built with Custom", ErrValidation)
	}
	f := arg.Formula()
	free := logic.FreePredicates(f)
	applied := logic.AppliedPredicates(f)
	if len(free) != 0 && len(applied) != 0 {
		return nil, fmt.Errorf("%w: %s must be either completely free or singly applied", ErrValidation, f)
	}
	qt := &Quantifier{env: e, strategy: s, arg: f}
	if len(applied) == 0 {
		qt.pattern = f
		return logic.Bound(qt), nil
	}
	targets := logic.Targets(f)
	if len(targets) > 1 {
		return nil, fmt.Errorf("%w: predicates in %s must be applied to a single expression, got %d", ErrValidation, f, len(targets))
	}
	qt.target = targets[0]
	qt.pattern = logic.Deapply(f)
	res, ok, err := e.lower(qt)
	if err != nil {
		return nil, err
	}
	if debug.Lower() {
		debug.Logf("lower %s: %s (ok=%t)\n", qt, res, ok)
	}
	if !ok {
		return logic.Bound(qt), nil
	}
	return res, nil
}

func (e *Env) AllArgs(arg logic.Term) (*logic.Formula, error) {
	return e.New(AllArgs, arg)
}

func (e *Env) AnyArgs(arg logic.Term) (*logic.Formula, error) {
	return e.New(AnyArgs, arg)
}

func (e *Env) ExactlyOneArg(arg logic.Term) (*logic.Formula, error) {
	return e.New(ExactlyOneArg, arg)
}

func (e *Env) CheckOldAssump(arg logic.Term) (*logic.Formula, error) {
	return e.New(CheckOldAssump, arg)
}

func (e *Env) CheckIsPrime(arg logic.Term) (*logic.Formula, error) {
	return e.New(CheckIsPrime, arg)
}

func (e *Env) Unevaluated(arg logic.Term) (*logic.Formula, error) {
	return e.New(Unevaluated, arg)
}

// Custom wraps fn as a fact. Rules are identified by name: two rules with
// the same name are the same fact. The output of fn is not validated.
func (e *Env) Custom(name string, fn RuleFunc) *logic.Formula {
	return logic.Bound(&Quantifier{env: e, strategy: Custom, ruleName: name, rule: fn})
}

// lower reports ok=false when the strategy has no opinion.
func (e *Env) lower(qt *Quantifier) (*logic.Formula, bool, error) {
	switch qt.strategy {
	case AllArgs, AnyArgs, ExactlyOneArg:
		lits := make([]*logic.Formula, len(qt.target.Args))
		for i, arg := range qt.target.Args {
			lit, err := logic.Rcall(qt.pattern, arg)
			if err != nil {
				return nil, false, err
			}
			lits[i] = lit
		}
		var res *logic.Formula
		switch qt.strategy {
		case AllArgs:
			res = logic.And(terms(lits)...)
		case AnyArgs:
			res = logic.Or(terms(lits)...)
		default:
			res = e.exactlyOne(lits)
		}
		return e.NNF(res), true, nil
	case CheckOldAssump:
		return e.NNF(logic.Equivalent(qt.arg, e.EvaluateOldAssump(qt.arg))), true, nil
	case CheckIsPrime:
		return e.NNF(logic.Equivalent(qt.arg, logic.Bool(e.isPrime(qt.target)))), true, nil
	}
	return nil, false, nil
}

func (e *Env) exactlyOne(lits []*logic.Formula) *logic.Formula {
	if e.ExactlyOne == Pairwise {
		clauses := []logic.Term{logic.Or(terms(lits)...)}
		for i := range lits {
			for j := i + 1; j < len(lits); j++ {
				clauses = append(clauses, logic.Or(logic.Not(lits[i]), logic.Not(lits[j])))
			}
		}
		return logic.And(clauses...)
	}
	disjuncts := make([]logic.Term, len(lits))
	for i, lit := range lits {
		conj := []logic.Term{lit}
		for j, other := range lits {
			if j != i {
				conj = append(conj, logic.Not(other))
			}
		}
		disjuncts[i] = logic.And(conj...)
	}
	return logic.Or(disjuncts...)
}

func terms(fs []*logic.Formula) []logic.Term {
	res := make([]logic.Term, len(fs))
	for i, f := range fs {
		res[i] = f
	}
	return res
}
