package facts

import (
	"fmt"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
	"github.com/mcpl-sympy/sympy/q"
)

// ExactlyOneForm selects how ExactlyOneArg is lowered.
type ExactlyOneForm int

const (
	// Disjunctive lowers to OR_i(L_i & ~L_j for j != i). At most one
	// disjunct can hold, which keeps the form compact on the left of an
	// implication.
	Disjunctive ExactlyOneForm = iota
	// Pairwise lowers to (L_0 | ... | L_n) & AND_{i<j}(~L_i | ~L_j).
	Pairwise
)

func (f ExactlyOneForm) String() string {
	s, ok := map[ExactlyOneForm]string{
		Disjunctive: "disjunctive",
		Pairwise:    "pairwise",
	}[f]
	if ok {
		return s
	}
	return "<unknown form>"
}

func (f ExactlyOneForm) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *ExactlyOneForm) UnmarshalText(d []byte) error {
	ff, ok := map[string]ExactlyOneForm{
		"disjunctive": Disjunctive,
		"pairwise":    Pairwise,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized exactly-one form %q", d)
	}
	*f = ff
	return nil
}

// FlagFunc reads a legacy tri-state attribute of an expression.
type FlagFunc func(name string, n *expr.Node) expr.Tri

// Env holds the collaborators lowering depends on. The zero value lowers
// without composite expansion and with the default legacy attributes and
// primality test.
type Env struct {
	// Composites maps composite predicates to their definitions.
	Composites map[*logic.Predicate]*logic.Formula
	Flag       FlagFunc
	IsPrime    func(n *expr.Node) bool
	ExactlyOne ExactlyOneForm
}

// DefaultEnv returns an Env using the full composite table.
func DefaultEnv() *Env {
	return &Env{
		Composites: q.Composites(),
		Flag:       expr.LegacyFlag,
		IsPrime:    expr.IsPrime,
	}
}

func (e *Env) flag(name string, n *expr.Node) expr.Tri {
	if e.Flag == nil {
		return expr.LegacyFlag(name, n)
	}
	return e.Flag(name, n)
}

func (e *Env) isPrime(n *expr.Node) bool {
	if e.IsPrime == nil {
		return expr.IsPrime(n)
	}
	return e.IsPrime(n)
}

// NNF normalises t to negation normal form, expanding composites.
func (e *Env) NNF(t logic.Term) *logic.Formula {
	return logic.ToNNF(t, e.Composites)
}

// Apply binds fact to target and normalises the result. Applying the same
// fact to the same target always yields an equal formula.
func (e *Env) Apply(fact logic.Term, target *expr.Node) (*logic.Formula, error) {
	f, err := logic.Rcall(fact, target)
	if err != nil {
		return nil, err
	}
	return e.NNF(f), nil
}
