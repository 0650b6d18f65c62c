package expr

import (
	"fmt"
	"math"
)

// Tri is a three valued truth value.
type Tri int8

const (
	Unknown Tri = iota
	False
	True
)

// TriOf converts a bool.
func TriOf(b bool) Tri {
	if b {
		return True
	}
	return False
}

// Bool returns the value and whether it is known.
func (t Tri) Bool() (v, ok bool) {
	return t == True, t != Unknown
}

// Not negates t; Unknown stays Unknown.
func (t Tri) Not() Tri {
	switch t {
	case True:
		return False
	case False:
		return True
	}
	return Unknown
}

// And is the three valued conjunction.
func (t Tri) And(u Tri) Tri {
	switch {
	case t == False || u == False:
		return False
	case t == True && u == True:
		return True
	}
	return Unknown
}

func (t Tri) String() string {
	s, ok := map[Tri]string{
		Unknown: "None",
		False:   "False",
		True:    "True",
	}[t]
	if ok {
		return s
	}
	return "<unknown tri>"
}

func (t Tri) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tri) UnmarshalText(d []byte) error {
	tt, ok := map[string]Tri{
		"None":  Unknown,
		"False": False,
		"True":  True,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized truth value %q", d)
	}
	*t = tt
	return nil
}

// LegacyFlagNames lists the attributes LegacyFlag understands.
var LegacyFlagNames = []string{
	"positive", "zero", "negative",
	"nonpositive", "nonzero", "nonnegative",
	"rational", "irrational",
	"even", "odd", "integer", "composite",
	"imaginary", "commutative",
}

// LegacyFlag returns the value of the named legacy attribute of n. Only
// numeric atoms, the number symbols pi and E and the imaginary unit know
// their attributes; everything else only knows whether it is commutative.
func LegacyFlag(name string, n *Node) Tri {
	if name == "commutative" {
		return commutative(n)
	}
	var tbl map[string]bool
	switch n.Class {
	case Integer, Rational:
		tbl = ratFlags(n)
	case Float:
		tbl = floatFlags(n.Float)
	case NumberSymbol:
		if n.Name != "pi" && n.Name != "E" {
			return Unknown
		}
		tbl = transcendentalFlags
	case ImaginaryUnit:
		tbl = imaginaryUnitFlags
	default:
		return Unknown
	}
	v, ok := tbl[name]
	if !ok {
		return Unknown
	}
	return TriOf(v)
}

func commutative(n *Node) Tri {
	switch {
	case n.Class.IsSubclass(MatrixExpr):
		return False
	case n.IsAtom():
		return True
	}
	res := True
	for _, arg := range n.Args {
		res = res.And(commutative(arg))
	}
	return res
}

func signFlags(sign int) map[string]bool {
	return map[string]bool{
		"positive":    sign > 0,
		"zero":        sign == 0,
		"negative":    sign < 0,
		"nonpositive": sign <= 0,
		"nonzero":     sign != 0,
		"nonnegative": sign >= 0,
		"imaginary":   false,
	}
}

func ratFlags(n *Node) map[string]bool {
	res := signFlags(n.Rat.Sign())
	res["rational"] = true
	res["irrational"] = false
	isInt := n.Rat.IsInt()
	res["integer"] = isInt
	res["even"] = false
	res["odd"] = false
	res["composite"] = false
	if isInt {
		num := n.Rat.Num()
		even := num.Bit(0) == 0
		res["even"] = even
		res["odd"] = !even
		res["composite"] = num.Cmp(one) > 0 && !IsPrime(n)
	}
	return res
}

// floatFlags follows the numeric core: a float is only known to be an
// integer when it is zero, and its rationality is never known. Other
// integral values leave integrality open; fractional ones are not integers.
func floatFlags(f float64) map[string]bool {
	sign := 0
	switch {
	case f > 0:
		sign = 1
	case f < 0:
		sign = -1
	}
	res := signFlags(sign)
	switch {
	case f == 0:
		res["integer"] = true
		res["even"] = true
		res["odd"] = false
		res["composite"] = false
	case f != math.Trunc(f):
		res["integer"] = false
		res["even"] = false
		res["odd"] = false
		res["composite"] = false
	}
	return res
}

var transcendentalFlags = map[string]bool{
	"positive":    true,
	"zero":        false,
	"negative":    false,
	"nonpositive": false,
	"nonzero":     true,
	"nonnegative": true,
	"rational":    false,
	"irrational":  true,
	"even":        false,
	"odd":         false,
	"integer":     false,
	"composite":   false,
	"imaginary":   false,
}

// nonzero, nonpositive and nonnegative all imply real, so I has none of them.
var imaginaryUnitFlags = map[string]bool{
	"positive":    false,
	"zero":        false,
	"negative":    false,
	"nonpositive": false,
	"nonzero":     false,
	"nonnegative": false,
	"rational":    false,
	"irrational":  false,
	"even":        false,
	"odd":         false,
	"integer":     false,
	"composite":   false,
	"imaginary":   true,
}
