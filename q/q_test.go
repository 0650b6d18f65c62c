package q

import (
	"testing"

	"github.com/mcpl-sympy/sympy/logic"
)

func TestLookup(t *testing.T) {
	for _, p := range All() {
		got, ok := Lookup(p.Name())
		if !ok || got != p {
			t.Errorf("Lookup(%q) = %v, %v", p.Name(), got, ok)
		}
	}
	if _, ok := Lookup("purple"); ok {
		t.Errorf("Lookup(purple) succeeded")
	}
}

func TestCompositesAreAcyclic(t *testing.T) {
	composites := Composites()
	for p, def := range composites {
		for _, free := range logic.FreePredicates(def) {
			if free == p {
				t.Errorf("%s is defined in terms of itself", p)
			}
			if sub, ok := composites[free]; ok {
				for _, free2 := range logic.FreePredicates(sub) {
					if free2 == p {
						t.Errorf("%s and %s are mutually defined", p, free)
					}
				}
			}
		}
	}
}
