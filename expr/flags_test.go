package expr

import "testing"

func TestLegacyFlag(t *testing.T) {
	tests := []struct {
		flag string
		node *Node
		want Tri
	}{
		{"positive", Int(2), True},
		{"negative", Int(2), False},
		{"zero", Int(0), True},
		{"nonnegative", Int(0), True},
		{"nonzero", Int(-1), True},
		{"even", Int(4), True},
		{"odd", Int(-3), True},
		{"even", Rat(1, 2), False},
		{"integer", Rat(1, 2), False},
		{"rational", Rat(1, 2), True},
		{"composite", Int(4), True},
		{"composite", Int(5), False},
		{"composite", Int(1), False},
		{"composite", Int(-4), False},
		{"positive", Flt(-1.5), False},
		{"rational", Flt(1.5), Unknown},
		{"integer", Flt(0), True},
		{"integer", Flt(2.0), Unknown},
		{"even", Flt(2.0), Unknown},
		{"odd", Flt(-3.0), Unknown},
		{"composite", Flt(4.0), Unknown},
		{"positive", Flt(2.0), True},
		{"integer", Flt(2.5), False},
		{"even", Flt(2.5), False},
		{"odd", Flt(2.5), False},
		{"composite", Flt(2.5), False},
		{"irrational", Pi(), True},
		{"positive", E(), True},
		{"imaginary", I(), True},
		{"nonzero", I(), False},
		{"positive", Sym("x"), Unknown},
		{"commutative", Sym("x"), True},
		{"commutative", MatSym("A"), False},
		{"commutative", NewMul(Sym("x"), MatSym("A")), False},
		{"commutative", NewMul(Sym("x"), Int(2)), True},
		{"prime", Int(2), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.flag+"/"+tt.node.String(), func(t *testing.T) {
			if got := LegacyFlag(tt.flag, tt.node); got != tt.want {
				t.Errorf("LegacyFlag(%q, %s) = %s, want %s", tt.flag, tt.node, got, tt.want)
			}
		})
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{Int(2), true},
		{Int(4), false},
		{Int(97), true},
		{Int(1), false},
		{Int(0), false},
		{Int(-7), false},
		{Rat(7, 2), false},
		{Sym("p"), false},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.node); got != tt.want {
			t.Errorf("IsPrime(%s) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestTri(t *testing.T) {
	if True.Not() != False || Unknown.Not() != Unknown {
		t.Errorf("Not() broken")
	}
	if True.And(Unknown) != Unknown || False.And(Unknown) != False {
		t.Errorf("And() broken")
	}
	var tri Tri
	if err := tri.UnmarshalText([]byte("True")); err != nil || tri != True {
		t.Errorf("UnmarshalText(True) = %v, %v", tri, err)
	}
}
