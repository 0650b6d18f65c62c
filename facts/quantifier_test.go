package facts

import (
	"errors"
	"testing"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
	"github.com/mcpl-sympy/sympy/q"
)

func equivalent(t *testing.T, got, want logic.Term) {
	t.Helper()
	ok, err := logic.EquivalentByTruthTable(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("got %s, want equivalent of %s", got.Formula(), want.Formula())
	}
}

func TestNewValidation(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	env := DefaultEnv()
	tests := []struct {
		name string
		arg  logic.Term
	}{
		{"free and applied", logic.Or(q.Positive, q.Negative.Of(x))},
		{"two targets", logic.Or(q.Positive.Of(x), q.Negative.Of(y))},
		{"two targets nested", logic.And(q.Zero.Of(x), logic.Not(logic.Or(q.Zero.Of(x), q.Even.Of(y))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []Strategy{Unevaluated, AllArgs, AnyArgs, ExactlyOneArg, CheckOldAssump, CheckIsPrime} {
				_, err := env.New(s, tt.arg)
				if !errors.Is(err, ErrValidation) {
					t.Errorf("%s: got %v, want ErrValidation", s, err)
				}
			}
		})
	}
	if _, err := env.New(Custom, q.Positive); !errors.Is(err, ErrValidation) {
		t.Errorf("New(Custom) got %v", err)
	}
}

func TestNewUnbound(t *testing.T) {
	env := DefaultEnv()
	arg := logic.Or(q.Positive, q.Negative)
	f, err := env.AllArgs(arg)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind != logic.BinderKind {
		t.Fatalf("AllArgs(%s) = %s, want a binder node", arg, f)
	}
	qt := f.Binder.(*Quantifier)
	if qt.Target() != nil {
		t.Errorf("unbound quantifier has target %s", qt.Target())
	}
	if !logic.Equal(qt.Pattern(), arg) {
		t.Errorf("pattern %s, want %s", qt.Pattern(), arg)
	}
	if got, want := f.String(), "AllArgs(Q.negative | Q.positive)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewLowersEagerly(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	mul := expr.NewMul(x, y)
	env := &Env{}

	got, err := env.AllArgs(q.Positive.Of(mul))
	if err != nil {
		t.Fatal(err)
	}
	want := logic.And(q.Positive.Of(x), q.Positive.Of(y))
	if !logic.Equal(got, want) {
		t.Errorf("AllArgs(Q.positive(x*y)) = %s, want %s", got, want)
	}

	got, err = env.AnyArgs(logic.And(q.Positive.Of(mul), q.Negative.Of(mul)))
	if err != nil {
		t.Fatal(err)
	}
	want = logic.Or(logic.And(q.Positive.Of(x), q.Negative.Of(x)), logic.And(q.Positive.Of(y), q.Negative.Of(y)))
	if !logic.Equal(got, want) {
		t.Errorf("AnyArgs = %s, want %s", got, want)
	}
}

func TestUnevaluatedStaysBound(t *testing.T) {
	x := expr.Sym("x")
	env := DefaultEnv()
	free, err := env.Unevaluated(q.Positive)
	if err != nil {
		t.Fatal(err)
	}
	got, err := env.Apply(free, x)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != logic.BinderKind {
		t.Fatalf("got %s, want a bound node", got)
	}
	if tgt := got.Binder.(*Quantifier).Target(); tgt == nil || !expr.Equal(tgt, x) {
		t.Errorf("target %v, want x", tgt)
	}
}

func TestVacuousOperands(t *testing.T) {
	x := expr.Sym("x")
	env := DefaultEnv()
	tests := []struct {
		s    Strategy
		want *logic.Formula
	}{
		{AllArgs, logic.True()},
		{AnyArgs, logic.False()},
		{ExactlyOneArg, logic.False()},
	}
	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			f, err := env.New(tt.s, q.Positive)
			if err != nil {
				t.Fatal(err)
			}
			got, err := env.Apply(f, x)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("%s on an atom = %s, want %s", tt.s, got, tt.want)
			}
		})
	}
}

func TestExactlyOneArg(t *testing.T) {
	a, b, c := expr.Sym("a"), expr.Sym("b"), expr.Sym("c")
	pa, pb, pc := q.Positive.Of(a), q.Positive.Of(b), q.Positive.Of(c)
	not := logic.Not
	tests := []struct {
		name string
		args []*expr.Node
		want *logic.Formula
	}{
		{
			"two",
			[]*expr.Node{a, b},
			logic.Or(logic.And(pa, not(pb)), logic.And(not(pa), pb)),
		},
		{
			"three",
			[]*expr.Node{a, b, c},
			logic.Or(
				logic.And(pa, not(pb), not(pc)),
				logic.And(not(pa), pb, not(pc)),
				logic.And(not(pa), not(pb), pc)),
		},
		{
			"one",
			[]*expr.Node{a},
			pa.Formula(),
		},
	}
	for _, form := range []ExactlyOneForm{Disjunctive, Pairwise} {
		env := &Env{ExactlyOne: form}
		for _, tt := range tests {
			t.Run(form.String()+" "+tt.name, func(t *testing.T) {
				f, err := env.ExactlyOneArg(q.Positive)
				if err != nil {
					t.Fatal(err)
				}
				got, err := env.Apply(f, expr.NewAdd(tt.args...))
				if err != nil {
					t.Fatal(err)
				}
				if !logic.IsNNF(got) {
					t.Errorf("%s is not in NNF", got)
				}
				equivalent(t, got, tt.want)
			})
		}
	}
}

func TestExactlyOneFormText(t *testing.T) {
	var f ExactlyOneForm
	if err := f.UnmarshalText([]byte("pairwise")); err != nil || f != Pairwise {
		t.Errorf("UnmarshalText(pairwise) = %v, %v", f, err)
	}
	if err := f.UnmarshalText([]byte("xor")); err == nil {
		t.Errorf("UnmarshalText(xor) succeeded")
	}
	var s Strategy
	if err := s.UnmarshalText([]byte("ExactlyOneArg")); err != nil || s != ExactlyOneArg {
		t.Errorf("UnmarshalText(ExactlyOneArg) = %v, %v", s, err)
	}
}

func TestNestedQuantifiers(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	env := &Env{}
	inner, err := env.ExactlyOneArg(q.Imaginary)
	if err != nil {
		t.Fatal(err)
	}
	fact := logic.Implies(inner, q.Imaginary)
	mul := expr.NewMul(x, y)
	got, err := env.Apply(fact, mul)
	if err != nil {
		t.Fatal(err)
	}
	ix, iy := q.Imaginary.Of(x), q.Imaginary.Of(y)
	want := logic.Implies(logic.Or(logic.And(ix, logic.Not(iy)), logic.And(logic.Not(ix), iy)), q.Imaginary.Of(mul))
	equivalent(t, got, want)
}

func TestCheckIsPrime(t *testing.T) {
	env := DefaultEnv()
	fact, err := env.CheckIsPrime(q.Prime)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		n    int64
		want bool
	}{
		{4, false},
		{7, true},
		{1, false},
		{-7, false},
	}
	for _, tt := range tests {
		n := expr.Int(tt.n)
		got, err := env.Apply(fact, n)
		if err != nil {
			t.Fatal(err)
		}
		want := q.Prime.Of(n)
		if !tt.want {
			want = logic.Not(want)
		}
		if !logic.Equal(got, want) {
			t.Errorf("CheckIsPrime(Q.prime)(%d) = %s, want %s", tt.n, got, want)
		}
	}
}

func TestCheckOldAssump(t *testing.T) {
	x := expr.Sym("x")
	env := DefaultEnv()
	tests := []struct {
		name string
		pred *logic.Predicate
		n    *expr.Node
		want *logic.Formula
	}{
		{"negative int", q.Negative, expr.Int(-3), q.Negative.Of(expr.Int(-3))},
		{"not positive", q.Positive, expr.Int(-3), logic.Not(q.Positive.Of(expr.Int(-3)))},
		{
			"composite expanded",
			q.Nonnegative, expr.Int(2),
			logic.Or(q.Zero.Of(expr.Int(2)), q.Positive.Of(expr.Int(2))),
		},
		{"unknown symbol", q.Positive, x, logic.True()},
		{"pi irrational", q.Irrational, expr.Pi(), q.Irrational.Of(expr.Pi())},
		{"I not rational", q.Rational, expr.I(), logic.Not(q.Rational.Of(expr.I()))},
		{"non legacy predicate", q.Prime, expr.Int(5), logic.True()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fact, err := env.CheckOldAssump(tt.pred)
			if err != nil {
				t.Fatal(err)
			}
			got, err := env.Apply(fact, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			equivalent(t, got, tt.want)
		})
	}
}

func TestEvaluateOldAssump(t *testing.T) {
	x, two := expr.Sym("x"), expr.Int(2)
	f := logic.And(q.Positive.Of(two), q.Prime.Of(two), q.Negative.Of(x))
	got := EvaluateOldAssump(f, nil)
	want := logic.And(q.Prime.Of(two), q.Negative.Of(x))
	if !logic.Equal(got, want) {
		t.Errorf("EvaluateOldAssump(%s) = %s, want %s", f, got, want)
	}

	flag := func(name string, n *expr.Node) expr.Tri {
		if name == "negative" {
			return expr.False
		}
		return expr.Unknown
	}
	got = EvaluateOldAssump(logic.Or(q.Negative.Of(x), q.Zero.Of(x)), flag)
	if !logic.Equal(got, q.Zero.Of(x)) {
		t.Errorf("got %s, want Q.zero(x)", got)
	}
}

func TestCustomRule(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	env := DefaultEnv()
	calls := 0
	rule := env.Custom("zero_pow", func(p *expr.Node) logic.Term {
		calls++
		return logic.Equivalent(q.Zero.Of(p), logic.And(q.Zero.Of(p.Base()), q.Positive.Of(p.Exp())))
	})
	if got, want := rule.String(), "CustomRule(zero_pow)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	pow := expr.NewPow(x, y)
	got, err := env.Apply(rule, pow)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("rule called %d times", calls)
	}
	if !logic.IsNNF(got) {
		t.Errorf("%s is not in NNF", got)
	}
	equivalent(t, got, logic.Equivalent(q.Zero.Of(pow), logic.And(q.Zero.Of(x), q.Positive.Of(y))))

	bound, err := rule.Binder.(*Quantifier).Apply(pow, true)
	if err != nil {
		t.Fatal(err)
	}
	if !logic.Equal(bound, got) {
		t.Errorf("Apply with negation flag = %s, want %s", bound, got)
	}
}
