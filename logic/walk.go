package logic

import (
	"github.com/mcpl-sympy/sympy/expr"
)

// FreePredicates returns the predicates occurring unapplied in t, in order
// of first occurrence. The predicate of an applied predicate is not free,
// and neither is anything in the expression it targets. Binder nodes are
// searched through their argument.
func FreePredicates(t Term) []*Predicate {
	var res []*Predicate
	seen := map[*Predicate]bool{}
	var walk func(f *Formula)
	walk = func(f *Formula) {
		switch f.Kind {
		case PredicateKind:
			if !seen[f.Pred] {
				seen[f.Pred] = true
				res = append(res, f.Pred)
			}
		case AppliedKind:
		case BinderKind:
			if arg := f.Binder.Arg(); arg != nil {
				walk(arg)
			}
		default:
			for _, arg := range f.Args {
				walk(arg)
			}
		}
	}
	walk(t.Formula())
	return res
}

// AppliedPredicates returns the distinct applied predicate leaves of t,
// including those inside binder arguments.
func AppliedPredicates(t Term) []*Formula {
	var res []*Formula
	seen := map[string]bool{}
	var walk func(f *Formula)
	walk = func(f *Formula) {
		switch f.Kind {
		case AppliedKind:
			if !seen[f.Key()] {
				seen[f.Key()] = true
				res = append(res, f)
			}
		case BinderKind:
			if arg := f.Binder.Arg(); arg != nil {
				walk(arg)
			}
		default:
			for _, arg := range f.Args {
				walk(arg)
			}
		}
	}
	walk(t.Formula())
	return res
}

// Targets returns the distinct expressions the applied predicates of t
// are applied to.
func Targets(t Term) []*expr.Node {
	var res []*expr.Node
	seen := map[string]bool{}
	for _, ap := range AppliedPredicates(t) {
		k := ap.Target.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, ap.Target)
	}
	return res
}

// Atoms returns the distinct non-constant leaves of t. Binder nodes are
// atoms.
func Atoms(t Term) []*Formula {
	var res []*Formula
	seen := map[string]bool{}
	var walk func(f *Formula)
	walk = func(f *Formula) {
		switch f.Kind {
		case TrueKind, FalseKind:
		case PredicateKind, AppliedKind, BinderKind:
			if !seen[f.Key()] {
				seen[f.Key()] = true
				res = append(res, f)
			}
		default:
			for _, arg := range f.Args {
				walk(arg)
			}
		}
	}
	walk(t.Formula())
	return res
}

// Replace rewrites t top-down: wherever fn reports a replacement the node
// is swapped and not descended into. Connectives over changed operands are
// rebuilt through their constructors. Binder nodes are opaque.
func Replace(t Term, fn func(f *Formula) (*Formula, bool)) *Formula {
	f := t.Formula()
	if r, ok := fn(f); ok {
		return r
	}
	if f.Kind.IsLeaf() {
		return f
	}
	var args []*Formula
	for i, arg := range f.Args {
		r := Replace(arg, fn)
		if r != arg && args == nil {
			args = make([]*Formula, len(f.Args))
			copy(args, f.Args[:i])
		}
		if args != nil {
			args[i] = r
		}
	}
	if args == nil {
		return f
	}
	return rebuild(f, args)
}

// Deapply replaces every applied predicate in t with its bare predicate.
func Deapply(t Term) *Formula {
	return Replace(t, func(f *Formula) (*Formula, bool) {
		if f.Kind != AppliedKind {
			return nil, false
		}
		return f.Pred.Formula(), true
	})
}

// bindLeaves applies every free predicate in t to target. Unlike Rcall it
// leaves binder nodes alone and so cannot fail.
func bindLeaves(t Term, target *expr.Node) *Formula {
	return Replace(t, func(f *Formula) (*Formula, bool) {
		if f.Kind != PredicateKind {
			return nil, false
		}
		return f.Pred.Of(target), true
	})
}

// Rcall binds t to target: free predicates become applied to target,
// binder nodes are bound, and connectives are rebuilt over the results.
// Applied predicates and constants are unchanged.
func Rcall(t Term, target *expr.Node) (*Formula, error) {
	f := t.Formula()
	switch f.Kind {
	case PredicateKind:
		return f.Pred.Of(target), nil
	case BinderKind:
		return f.Binder.Bind(target)
	case TrueKind, FalseKind, AppliedKind:
		return f, nil
	}
	args := make([]*Formula, len(f.Args))
	for i, arg := range f.Args {
		r, err := Rcall(arg, target)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return rebuild(f, args), nil
}
