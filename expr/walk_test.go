package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubexpressions(t *testing.T) {
	x, y := Sym("x"), Sym("y")
	n := NewAdd(NewMul(x, y), NewMul(x, y), x)
	var got []string
	for _, sub := range n.Subexpressions() {
		got = append(got, sub.String())
	}
	want := []string{"x*y + x*y + x", "x*y", "x", "y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Subexpressions() mismatch (-want +got):\n%s", diff)
	}
}

func TestReplace(t *testing.T) {
	x, y := Sym("x"), Sym("y")
	n := NewAdd(NewMul(x, y), y)
	isX := func(m *Node) bool { return m.Class == Symbol && m.Name == "x" }
	got := Replace(n, isX, func(*Node) *Node { return Int(3) })
	if got.String() != "3*y + y" {
		t.Errorf("Replace() = %s, want 3*y + y", got)
	}
	if n.String() != "x*y + y" {
		t.Errorf("Replace mutated its input: %s", n)
	}
	if got.Args[1] != n.Args[1] {
		t.Errorf("untouched operand was copied")
	}
	same := Replace(n, func(*Node) bool { return false }, nil)
	if same != n {
		t.Errorf("Replace without matches allocated a new tree")
	}
}
