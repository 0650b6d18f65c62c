package facts

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mcpl-sympy/sympy/debug"
	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
)

// factSet is an insertion ordered set of formulas keyed by Formula.Key.
type factSet struct {
	keys map[string]bool
	list []*logic.Formula
}

func (s *factSet) add(f *logic.Formula) bool {
	if s.keys[f.Key()] {
		return false
	}
	s.keys[f.Key()] = true
	s.list = append(s.list, f)
	return true
}

// Registry maps expression classes to sets of facts. Lookup on a class
// includes the facts of every class it derives from.
type Registry struct {
	mu    sync.RWMutex
	facts map[*expr.Class]*factSet
}

func NewRegistry() *Registry {
	return &Registry{facts: make(map[*expr.Class]*factSet)}
}

// Register adds fact to the set for c. Registering a fact already present
// is a no-op.
func (r *Registry) Register(c *expr.Class, fact logic.Term) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.facts[c]
	if s == nil {
		s = &factSet{keys: map[string]bool{}}
		r.facts[c] = s
	}
	added := s.add(fact.Formula())
	if debug.Registry() {
		debug.Logf("register %s: %s (added=%t)\n", c, fact.Formula(), added)
	}
}

// Set replaces the facts registered for c.
func (r *Registry) Set(c *expr.Class, facts []*logic.Formula) {
	s := &factSet{keys: map[string]bool{}}
	for _, f := range facts {
		s.add(f)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facts[c] = s
}

// Get returns the facts registered for c itself.
func (r *Registry) Get(c *expr.Class) []*logic.Formula {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.facts[c]
	if s == nil {
		return nil
	}
	return slices.Clone(s.list)
}

// Lookup returns the union of the facts registered for c and its
// ancestors, nearest class first. Unregistered classes are not an error.
func (r *Registry) Lookup(c *expr.Class) []*logic.Formula {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*logic.Formula
	seen := map[string]bool{}
	for _, k := range c.Ancestors() {
		s := r.facts[k]
		if s == nil {
			continue
		}
		for _, f := range s.list {
			if seen[f.Key()] {
				continue
			}
			seen[f.Key()] = true
			res = append(res, f)
		}
	}
	if debug.Registry() {
		debug.Logf("lookup %s: %d facts\n", c, len(res))
	}
	return res
}

// Delete removes the facts registered for c itself.
func (r *Registry) Delete(c *expr.Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.facts, c)
}

// Classes returns the registered classes ordered by name.
func (r *Registry) Classes() []*expr.Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*expr.Class, 0, len(r.facts))
	for c := range r.facts {
		res = append(res, c)
	}
	slices.SortFunc(res, func(a, b *expr.Class) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.facts)
}

// LookupName is Lookup on the class with the given name.
func (r *Registry) LookupName(name string) ([]*logic.Formula, error) {
	c, ok := expr.ClassByName(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownClass, name)
	}
	return r.Lookup(c), nil
}
