package logic

import (
	"slices"
	"strings"

	"github.com/mcpl-sympy/sympy/expr"
)

// Term is anything a connective accepts as an operand.
type Term interface {
	Formula() *Formula
}

// Binder is a formula node that remains symbolic until bound to an
// expression. Bind may yield a plain formula or another binder node.
type Binder interface {
	Bind(target *expr.Node) (*Formula, error)
	// Arg returns the formula the binder ranges over, or nil.
	Arg() *Formula
	Key() string
	String() string
}

// Formula is a boolean formula node. Which fields are set depends on Kind:
// Pred for predicate leaves, Pred and Target for applied predicates, Args
// for connectives and Binder for binder nodes.
type Formula struct {
	Kind   Kind
	Pred   *Predicate
	Target *expr.Node
	Args   []*Formula
	Binder Binder

	key string
}

var (
	trueFormula  = &Formula{Kind: TrueKind, key: "True"}
	falseFormula = &Formula{Kind: FalseKind, key: "False"}
)

func True() *Formula  { return trueFormula }
func False() *Formula { return falseFormula }

func Bool(b bool) *Formula {
	if b {
		return trueFormula
	}
	return falseFormula
}

// Formula returns f.
func (f *Formula) Formula() *Formula {
	return f
}

// Bound wraps b as a formula leaf.
func Bound(b Binder) *Formula {
	return &Formula{Kind: BinderKind, Binder: b, key: b.Key()}
}

// Applied returns p applied to target.
func Applied(p *Predicate, target *expr.Node) *Formula {
	return p.Of(target)
}

// Key returns a canonical encoding of f. Structurally equal formulas have
// equal keys.
func (f *Formula) Key() string {
	if f.key != "" {
		return f.key
	}
	return f.computeKey()
}

func (f *Formula) computeKey() string {
	switch f.Kind {
	case TrueKind:
		return "True"
	case FalseKind:
		return "False"
	case PredicateKind:
		return "Q." + f.Pred.name
	case AppliedKind:
		return "Q." + f.Pred.name + "(" + f.Target.Key() + ")"
	case BinderKind:
		return f.Binder.Key()
	}
	buf := &strings.Builder{}
	buf.WriteString(f.Kind.String())
	buf.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(arg.Key())
	}
	buf.WriteByte(')')
	return buf.String()
}

// Equal reports structural equality.
func Equal(a, b Term) bool {
	return a.Formula().Key() == b.Formula().Key()
}

func node(k Kind, args []*Formula) *Formula {
	f := &Formula{Kind: k, Args: args}
	f.key = f.computeKey()
	return f
}

// Not negates t, folding constants and double negation.
func Not(t Term) *Formula {
	f := t.Formula()
	switch f.Kind {
	case TrueKind:
		return falseFormula
	case FalseKind:
		return trueFormula
	case NotKind:
		return f.Args[0]
	}
	return node(NotKind, []*Formula{f})
}

// And is the conjunction of ts. It is True when ts is empty.
func And(ts ...Term) *Formula {
	return assoc(AndKind, ts)
}

// Or is the disjunction of ts. It is False when ts is empty.
func Or(ts ...Term) *Formula {
	return assoc(OrKind, ts)
}

func assoc(k Kind, ts []Term) *Formula {
	identity, absorbing := TrueKind, FalseKind
	if k == OrKind {
		identity, absorbing = FalseKind, TrueKind
	}
	seen := map[string]bool{}
	var args []*Formula
	var add func(f *Formula) bool
	add = func(f *Formula) bool {
		switch f.Kind {
		case identity:
			return true
		case absorbing:
			return false
		case k:
			for _, sub := range f.Args {
				if !add(sub) {
					return false
				}
			}
			return true
		}
		key := f.Key()
		if seen[key] {
			return true
		}
		seen[key] = true
		args = append(args, f)
		return true
	}
	for _, t := range ts {
		if !add(t.Formula()) {
			return Bool(absorbing == TrueKind)
		}
	}
	switch len(args) {
	case 0:
		return Bool(identity == TrueKind)
	case 1:
		return args[0]
	}
	sortArgs(args)
	return node(k, args)
}

func sortArgs(args []*Formula) {
	slices.SortFunc(args, func(a, b *Formula) int {
		return strings.Compare(a.Key(), b.Key())
	})
}

// Implies is a >> b.
func Implies(a, b Term) *Formula {
	fa, fb := a.Formula(), b.Formula()
	switch {
	case fa.Kind == FalseKind, fb.Kind == TrueKind:
		return trueFormula
	case fa.Kind == TrueKind:
		return fb
	case fb.Kind == FalseKind:
		return Not(fa)
	case fa.Key() == fb.Key():
		return trueFormula
	}
	return node(ImpliesKind, []*Formula{fa, fb})
}

// Equivalent holds when all of ts have the same truth value. A True
// operand turns it into the conjunction of the rest and a False operand
// into the conjunction of their negations.
func Equivalent(ts ...Term) *Formula {
	seen := map[string]bool{}
	var args []*Formula
	hasTrue, hasFalse := false, false
	for _, t := range ts {
		f := t.Formula()
		switch f.Kind {
		case TrueKind:
			hasTrue = true
			continue
		case FalseKind:
			hasFalse = true
			continue
		}
		if seen[f.Key()] {
			continue
		}
		seen[f.Key()] = true
		args = append(args, f)
	}
	switch {
	case hasTrue && hasFalse:
		return falseFormula
	case hasTrue:
		return And(terms(args)...)
	case hasFalse:
		neg := make([]Term, len(args))
		for i, arg := range args {
			neg[i] = Not(arg)
		}
		return And(neg...)
	case len(args) <= 1:
		return trueFormula
	}
	sortArgs(args)
	return node(EquivalentKind, args)
}

func terms(fs []*Formula) []Term {
	res := make([]Term, len(fs))
	for i, f := range fs {
		res[i] = f
	}
	return res
}

// rebuild creates a node of f's kind over new operands through the
// constructors, so constants fold again.
func rebuild(f *Formula, args []*Formula) *Formula {
	switch f.Kind {
	case NotKind:
		return Not(args[0])
	case AndKind:
		return And(terms(args)...)
	case OrKind:
		return Or(terms(args)...)
	case ImpliesKind:
		return Implies(args[0], args[1])
	case EquivalentKind:
		return Equivalent(terms(args)...)
	}
	return f
}
