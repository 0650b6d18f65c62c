package satask

import (
	"slices"

	"github.com/mcpl-sympy/sympy/logic"
)

// Assumptions is an ordered set of formulas assumed true for a query.
type Assumptions struct {
	keys map[string]bool
	list []*logic.Formula
}

func NewAssumptions(ts ...logic.Term) *Assumptions {
	a := &Assumptions{keys: map[string]bool{}}
	a.Add(ts...)
	return a
}

// Add adds each term; duplicates and True are dropped.
func (a *Assumptions) Add(ts ...logic.Term) {
	if a.keys == nil {
		a.keys = map[string]bool{}
	}
	for _, t := range ts {
		f := t.Formula()
		if f.Kind == logic.TrueKind || a.keys[f.Key()] {
			continue
		}
		a.keys[f.Key()] = true
		a.list = append(a.list, f)
	}
}

func (a *Assumptions) Formulas() []*logic.Formula {
	if a == nil {
		return nil
	}
	return slices.Clone(a.list)
}

func (a *Assumptions) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Formula returns the conjunction of the assumptions.
func (a *Assumptions) Formula() *logic.Formula {
	if a == nil {
		return logic.True()
	}
	ts := make([]logic.Term, len(a.list))
	for i, f := range a.list {
		ts[i] = f
	}
	return logic.And(ts...)
}
