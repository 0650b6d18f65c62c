package expr

import (
	"cmp"
	"strings"
)

// Compare orders nodes by class name, then payload, then operands.
// It returns 0 exactly when a and b are structurally equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if c := strings.Compare(a.Class.Name, b.Class.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case a.Rat != nil && b.Rat != nil:
		if c := a.Rat.Cmp(b.Rat); c != 0 {
			return c
		}
	case a.Rat != nil:
		return 1
	case b.Rat != nil:
		return -1
	}
	if c := cmp.Compare(a.Float, b.Float); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Args), len(b.Args)); c != 0 {
		return c
	}
	for i := range a.Args {
		if c := Compare(a.Args[i], b.Args[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports structural equality.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
