package logic

import "fmt"

// Eval evaluates t under an assignment of atom keys to truth values.
func Eval(t Term, assign map[string]bool) (bool, error) {
	f := t.Formula()
	switch f.Kind {
	case TrueKind:
		return true, nil
	case FalseKind:
		return false, nil
	case PredicateKind, AppliedKind, BinderKind:
		v, ok := assign[f.Key()]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnassigned, f)
		}
		return v, nil
	case NotKind:
		v, err := Eval(f.Args[0], assign)
		return !v, err
	case AndKind, OrKind:
		short := f.Kind == OrKind
		for _, arg := range f.Args {
			v, err := Eval(arg, assign)
			if err != nil {
				return false, err
			}
			if v == short {
				return short, nil
			}
		}
		return !short, nil
	case ImpliesKind:
		a, err := Eval(f.Args[0], assign)
		if err != nil {
			return false, err
		}
		b, err := Eval(f.Args[1], assign)
		if err != nil {
			return false, err
		}
		return !a || b, nil
	case EquivalentKind:
		first, err := Eval(f.Args[0], assign)
		if err != nil {
			return false, err
		}
		for _, arg := range f.Args[1:] {
			v, err := Eval(arg, assign)
			if err != nil {
				return false, err
			}
			if v != first {
				return false, nil
			}
		}
		return true, nil
	}
	return false, fmt.Errorf("eval: unexpected kind %s", f.Kind)
}

// Assignments calls fn with every assignment of the given atoms, stopping
// early when fn returns false.
func Assignments(atoms []*Formula, fn func(assign map[string]bool) bool) {
	n := len(atoms)
	assign := make(map[string]bool, n)
	for bits := 0; bits < 1<<n; bits++ {
		for i, a := range atoms {
			assign[a.Key()] = bits&(1<<i) != 0
		}
		if !fn(assign) {
			return
		}
	}
}

// EquivalentByTruthTable reports whether a and b agree under every
// assignment of their atoms. It is exponential in the number of atoms.
func EquivalentByTruthTable(a, b Term) (bool, error) {
	atoms := Atoms(a)
	seen := map[string]bool{}
	for _, x := range atoms {
		seen[x.Key()] = true
	}
	for _, x := range Atoms(b) {
		if !seen[x.Key()] {
			atoms = append(atoms, x)
		}
	}
	res := true
	var evalErr error
	Assignments(atoms, func(assign map[string]bool) bool {
		va, err := Eval(a, assign)
		if err != nil {
			evalErr = err
			return false
		}
		vb, err := Eval(b, assign)
		if err != nil {
			evalErr = err
			return false
		}
		if va != vb {
			res = false
			return false
		}
		return true
	})
	return res, evalErr
}
