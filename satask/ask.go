package satask

import (
	"fmt"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/mcpl-sympy/sympy/debug"
	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/facts"
	"github.com/mcpl-sympy/sympy/logic"
)

// Engine answers queries from the facts of a registry.
type Engine struct {
	Env      *facts.Env
	Registry *facts.Registry
	known    []*logic.Formula
}

func NewEngine(env *facts.Env, reg *facts.Registry) *Engine {
	return &Engine{Env: env, Registry: reg, known: knownFacts()}
}

// RelevantFacts lowers every registered fact applicable to the targets and
// their subexpressions, together with the known facts about each of them.
// Expressions introduced by lowered facts are visited in turn. Trivially
// true facts are dropped.
func (e *Engine) RelevantFacts(targets []*expr.Node) ([]*logic.Formula, error) {
	var queue []*expr.Node
	seen := map[string]bool{}
	push := func(n *expr.Node) {
		for _, sub := range n.Subexpressions() {
			if !seen[sub.Key()] {
				seen[sub.Key()] = true
				queue = append(queue, sub)
			}
		}
	}
	for _, t := range targets {
		push(t)
	}

	var res []*logic.Formula
	have := map[string]bool{}
	add := func(f *logic.Formula) {
		if f.Kind == logic.TrueKind || have[f.Key()] {
			return
		}
		have[f.Key()] = true
		res = append(res, f)
		for _, t := range logic.Targets(f) {
			push(t)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, fact := range e.Registry.Lookup(n.Class) {
			f, err := e.Env.Apply(fact, n)
			if err != nil {
				return nil, fmt.Errorf("applying %s to %s: %w", fact, n, err)
			}
			add(f)
		}
		for _, fact := range e.known {
			f, err := e.Env.Apply(fact, n)
			if err != nil {
				return nil, err
			}
			add(f)
		}
	}
	if debug.Ask() {
		debug.Logf("relevant facts for %d targets: %d\n", len(targets), len(res))
	}
	return res, nil
}

// problem is an encoded query: facts are hard clauses, assumptions and the
// proposition are literals to assume.
type problem struct {
	g       *gini.Gini
	assumed []z.Lit
	sources []*logic.Formula
	prop    z.Lit
}

func (e *Engine) encode(prop *logic.Formula, assumptions []*logic.Formula) (*problem, error) {
	targets := logic.Targets(prop)
	for _, a := range assumptions {
		targets = append(targets, logic.Targets(a)...)
	}
	fs, err := e.RelevantFacts(targets)
	if err != nil {
		return nil, err
	}
	b := newCircuitBuilder()
	hard := make([]z.Lit, len(fs))
	for i, f := range fs {
		hard[i] = b.build(f)
	}
	p := &problem{sources: assumptions, prop: b.build(prop)}
	for _, a := range assumptions {
		p.assumed = append(p.assumed, b.build(a))
	}
	if b.err != nil {
		return nil, b.err
	}
	p.g = gini.New()
	b.c.ToCnf(p.g)
	for _, m := range hard {
		p.g.Add(m)
		p.g.Add(0)
	}
	return p, nil
}

// check solves under the assumptions plus extra.
func (p *problem) check(extra ...z.Lit) bool {
	p.g.Assume(p.assumed...)
	p.g.Assume(extra...)
	return p.g.Solve() == 1
}

// conflict names the assumptions responsible for the last unsatisfiable
// check.
func (p *problem) conflict() string {
	why := p.g.Why(nil)
	var names []string
	for _, m := range why {
		for i, a := range p.assumed {
			if a == m {
				names = append(names, p.sources[i].String())
				break
			}
		}
	}
	if len(names) == 0 {
		return "facts are contradictory"
	}
	return strings.Join(names, ", ")
}

// Ask decides prop under the assumptions: True if it follows, False if its
// negation follows, Unknown otherwise. ErrInconsistent is returned when
// the assumptions contradict the facts.
func (e *Engine) Ask(prop logic.Term, assumptions *Assumptions) (expr.Tri, error) {
	p := e.Env.NNF(prop)
	var as []*logic.Formula
	for _, a := range assumptions.Formulas() {
		as = append(as, e.Env.NNF(a))
	}
	pb, err := e.encode(p, as)
	if err != nil {
		return expr.Unknown, err
	}
	if !pb.check() {
		return expr.Unknown, fmt.Errorf("%w: %s", ErrInconsistent, pb.conflict())
	}
	canTrue := pb.check(pb.prop)
	canFalse := pb.check(pb.prop.Not())
	res := expr.Unknown
	switch {
	case canTrue && !canFalse:
		res = expr.True
	case canFalse && !canTrue:
		res = expr.False
	}
	if debug.Ask() {
		debug.Logf("ask %s under %d assumptions: %s\n", p, len(as), res)
	}
	return res, nil
}

// Satisfiable reports whether the formulas can hold together with the
// facts about every expression they mention.
func (e *Engine) Satisfiable(ts ...logic.Term) (bool, error) {
	var as []*logic.Formula
	for _, t := range ts {
		as = append(as, e.Env.NNF(t))
	}
	pb, err := e.encode(logic.True(), as)
	if err != nil {
		return false, err
	}
	return pb.check(), nil
}
