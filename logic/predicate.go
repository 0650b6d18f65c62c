package logic

import (
	"sync"

	"github.com/mcpl-sympy/sympy/expr"
)

// Predicate is an interned boolean property tag.
type Predicate struct {
	name string
	leaf *Formula
}

var (
	predMu sync.Mutex
	preds  = map[string]*Predicate{}
)

// Pred returns the predicate with the given name, creating it on first use.
func Pred(name string) *Predicate {
	predMu.Lock()
	defer predMu.Unlock()
	if p, ok := preds[name]; ok {
		return p
	}
	p := &Predicate{name: name}
	p.leaf = &Formula{Kind: PredicateKind, Pred: p, key: "Q." + name}
	preds[name] = p
	return p
}

func (p *Predicate) Name() string {
	return p.name
}

func (p *Predicate) String() string {
	return "Q." + p.name
}

// Formula returns p as a free formula leaf.
func (p *Predicate) Formula() *Formula {
	return p.leaf
}

// Of applies p to target.
func (p *Predicate) Of(target *expr.Node) *Formula {
	return &Formula{
		Kind:   AppliedKind,
		Pred:   p,
		Target: target,
		key:    "Q." + p.name + "(" + target.Key() + ")",
	}
}
