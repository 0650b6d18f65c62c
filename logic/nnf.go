package logic

// ToNNF returns t in negation normal form: only And, Or and Not remain,
// and Not only wraps leaves. Applied predicates found in composites are
// replaced by their definition applied to the same target, recursively.
// Binder nodes are treated as leaves.
func ToNNF(t Term, composites map[*Predicate]*Formula) *Formula {
	f := t.Formula()
	switch f.Kind {
	case NotKind:
		return negate(ToNNF(f.Args[0], composites))
	case AndKind, OrKind:
		args := make([]*Formula, len(f.Args))
		for i, arg := range f.Args {
			args[i] = ToNNF(arg, composites)
		}
		return rebuild(f, args)
	case ImpliesKind:
		return Or(negate(ToNNF(f.Args[0], composites)), ToNNF(f.Args[1], composites))
	case EquivalentKind:
		n := len(f.Args)
		clauses := make([]Term, n)
		for i := range f.Args {
			a := ToNNF(f.Args[i], composites)
			b := ToNNF(f.Args[(i+1)%n], composites)
			clauses[i] = Or(negate(a), b)
		}
		return And(clauses...)
	case AppliedKind:
		if def, ok := composites[f.Pred]; ok {
			return ToNNF(bindLeaves(def, f.Target), composites)
		}
	}
	return f
}

// negate negates a formula already in negation normal form.
func negate(f *Formula) *Formula {
	switch f.Kind {
	case AndKind, OrKind:
		args := make([]Term, len(f.Args))
		for i, arg := range f.Args {
			args[i] = negate(arg)
		}
		if f.Kind == AndKind {
			return Or(args...)
		}
		return And(args...)
	}
	return Not(f)
}

// IsNNF reports whether t is in negation normal form.
func IsNNF(t Term) bool {
	f := t.Formula()
	switch f.Kind {
	case NotKind:
		return f.Args[0].Kind.IsLeaf()
	case AndKind, OrKind:
		for _, arg := range f.Args {
			if !IsNNF(arg) {
				return false
			}
		}
		return true
	case ImpliesKind, EquivalentKind:
		return false
	}
	return true
}
