package expr

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	x, y, z := Sym("x"), Sym("y"), Sym("z")
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"symbol", x, "x"},
		{"integer", Int(4), "4"},
		{"negative integer", Int(-3), "-3"},
		{"rational", Rat(1, 2), "1/2"},
		{"whole rational", Rat(4, 2), "2"},
		{"float", Flt(2), "2.0"},
		{"mul", NewMul(x, y), "x*y"},
		{"add", NewAdd(x, y, z), "x + y + z"},
		{"add in mul", NewMul(NewAdd(x, y), z), "(x + y)*z"},
		{"negative in mul", NewMul(Int(-1), x), "(-1)*x"},
		{"pow", NewPow(x, Int(2)), "x**2"},
		{"pow of mul", NewPow(NewMul(x, y), Int(2)), "(x*y)**2"},
		{"abs", NewAbs(NewAdd(x, Int(1))), "Abs(x + 1)"},
		{"number symbols", NewMul(Pi(), E(), I()), "pi*E*I"},
		{"matmul", NewMatMul(MatSym("A"), MatSym("B")), "A*B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRatNormalizes(t *testing.T) {
	if got := Rat(4, 2); got.Class != Integer {
		t.Errorf("Rat(4, 2).Class = %s, want Integer", got.Class)
	}
	if got := Rat(2, 4); got.Class != Rational || got.Rat.RatString() != "1/2" {
		t.Errorf("Rat(2, 4) = %s %s, want Rational 1/2", got.Class, got)
	}
}

func TestCompare(t *testing.T) {
	x, y := Sym("x"), Sym("y")
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"same symbol", Sym("x"), Sym("x"), 0},
		{"symbol order", x, y, -1},
		{"int order", Int(1), Int(2), -1},
		{"int vs float", Int(1), Flt(1), 1},
		{"operand order matters", NewMul(x, y), NewMul(y, x), -1},
		{"structural equality", NewMul(x, NewAdd(x, y)), NewMul(Sym("x"), NewAdd(Sym("x"), Sym("y"))), 0},
		{"arity", NewAdd(x), NewAdd(x, y), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if back := Compare(tt.b, tt.a); back != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, back, -tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	a := NewMul(Sym("x"), Int(2))
	b := NewMul(Sym("x"), Int(2))
	if a.Key() != b.Key() {
		t.Errorf("equal nodes have keys %q and %q", a.Key(), b.Key())
	}
	if got, want := a.Key(), `Mul(Symbol("x"),Integer(2))`; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if Int(2).Key() == Flt(2).Key() {
		t.Errorf("Integer and Float share a key")
	}
}

func TestNegativeZero(t *testing.T) {
	pos, neg := Flt(0), Flt(math.Copysign(0, -1))
	if c := Compare(pos, neg); c != 0 {
		t.Errorf("Compare(0.0, -0.0) = %d, want 0", c)
	}
	if pos.Key() != neg.Key() {
		t.Errorf("keys differ: %q != %q", pos.Key(), neg.Key())
	}
	raw := &Node{Class: Float, Float: math.Copysign(0, -1)}
	if raw.Key() != pos.Key() {
		t.Errorf("key of unnormalized -0.0 = %q, want %q", raw.Key(), pos.Key())
	}
}

func TestPowAccessors(t *testing.T) {
	squared := NewClass("SquaredPow", Pow)
	x, two := Sym("x"), Int(2)
	for _, n := range []*Node{NewPow(x, two), New(squared, x, two)} {
		if !Equal(n.Base(), x) || !Equal(n.Exp(), two) {
			t.Errorf("%s: Base() = %v, Exp() = %v", n.Class, n.Base(), n.Exp())
		}
	}
	if b := NewMul(x, two).Base(); b != nil {
		t.Errorf("Mul Base() = %s, want nil", b)
	}
}
