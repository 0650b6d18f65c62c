package satask

import (
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	flogic "github.com/mcpl-sympy/sympy/logic"
)

// circuitBuilder encodes formulas as a gini circuit, one input per atom.
type circuitBuilder struct {
	c    *logic.C
	vars map[string]z.Lit // atom key → input
	err  error            // first error encountered
}

func newCircuitBuilder() *circuitBuilder {
	return &circuitBuilder{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (b *circuitBuilder) atom(f *flogic.Formula) z.Lit {
	if m, ok := b.vars[f.Key()]; ok {
		return m
	}
	m := b.c.Lit()
	b.vars[f.Key()] = m
	return m
}

func (b *circuitBuilder) build(f *flogic.Formula) z.Lit {
	if b.err != nil {
		return b.c.F
	}
	switch f.Kind {
	case flogic.TrueKind:
		return b.c.T
	case flogic.FalseKind:
		return b.c.F
	case flogic.PredicateKind, flogic.AppliedKind, flogic.BinderKind:
		return b.atom(f)
	case flogic.NotKind:
		return b.build(f.Args[0]).Not()
	case flogic.AndKind:
		return b.c.Ands(b.buildAll(f.Args)...)
	case flogic.OrKind:
		return b.c.Ors(b.buildAll(f.Args)...)
	case flogic.ImpliesKind:
		return b.c.Or(b.build(f.Args[0]).Not(), b.build(f.Args[1]))
	case flogic.EquivalentKind:
		lits := b.buildAll(f.Args)
		chain := make([]z.Lit, len(lits))
		for i := range lits {
			chain[i] = b.c.Or(lits[i].Not(), lits[(i+1)%len(lits)])
		}
		return b.c.Ands(chain...)
	default:
		b.err = fmt.Errorf("cannot encode formula kind %s", f.Kind)
		return b.c.F
	}
}

func (b *circuitBuilder) buildAll(fs []*flogic.Formula) []z.Lit {
	lits := make([]z.Lit, len(fs))
	for i, f := range fs {
		lits[i] = b.build(f)
	}
	return lits
}
