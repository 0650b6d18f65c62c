package logic

import "fmt"

type Kind uint8

const (
	FalseKind Kind = iota
	TrueKind
	PredicateKind
	AppliedKind
	NotKind
	AndKind
	OrKind
	ImpliesKind
	EquivalentKind
	BinderKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		FalseKind:      "False",
		TrueKind:       "True",
		PredicateKind:  "Predicate",
		AppliedKind:    "Applied",
		NotKind:        "Not",
		AndKind:        "And",
		OrKind:         "Or",
		ImpliesKind:    "Implies",
		EquivalentKind: "Equivalent",
		BinderKind:     "Binder",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk := FalseKind; kk <= BinderKind; kk++ {
		if kk.String() == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

// IsLeaf reports whether formulas of kind k have no formula operands.
func (k Kind) IsLeaf() bool {
	switch k {
	case FalseKind, TrueKind, PredicateKind, AppliedKind, BinderKind:
		return true
	}
	return false
}
