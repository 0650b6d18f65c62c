package expr

import (
	"math/big"
	"slices"
)

// Node is an immutable expression tree node.
//
// Which payload field is meaningful depends on Class: Name for symbols,
// matrix symbols and number symbols, Rat for integers and rationals, Float
// for floats. Compound nodes use Args only.
type Node struct {
	Class *Class
	Args  []*Node

	Name  string
	Rat   *big.Rat
	Float float64
}

func newNode(c *Class, args []*Node) *Node {
	return &Node{Class: c, Args: slices.Clone(args)}
}

// Sym returns a scalar symbol.
func Sym(name string) *Node {
	return &Node{Class: Symbol, Name: name}
}

// Syms returns one symbol per name.
func Syms(names ...string) []*Node {
	res := make([]*Node, len(names))
	for i, name := range names {
		res[i] = Sym(name)
	}
	return res
}

// MatSym returns a matrix symbol.
func MatSym(name string) *Node {
	return &Node{Class: MatrixSymbol, Name: name}
}

// Int returns an integer.
func Int(v int64) *Node {
	return &Node{Class: Integer, Rat: new(big.Rat).SetInt64(v)}
}

// BigInt returns an integer of arbitrary size.
func BigInt(v *big.Int) *Node {
	return &Node{Class: Integer, Rat: new(big.Rat).SetInt(v)}
}

// Rat returns p/q, reduced. A whole result is an Integer.
// Rat panics if q is zero.
func Rat(p, q int64) *Node {
	return FromRat(big.NewRat(p, q))
}

// FromRat returns r as an Integer or Rational node.
func FromRat(r *big.Rat) *Node {
	v := new(big.Rat).Set(r)
	if v.IsInt() {
		return &Node{Class: Integer, Rat: v}
	}
	return &Node{Class: Rational, Rat: v}
}

// Flt returns a float. Negative zero is stored as zero.
func Flt(f float64) *Node {
	if f == 0 {
		f = 0
	}
	return &Node{Class: Float, Float: f}
}

var (
	pi       = &Node{Class: NumberSymbol, Name: "pi"}
	euler    = &Node{Class: NumberSymbol, Name: "E"}
	imagUnit = &Node{Class: ImaginaryUnit, Name: "I"}
)

// Pi returns the number symbol pi.
func Pi() *Node { return pi }

// E returns Euler's number.
func E() *Node { return euler }

// I returns the imaginary unit.
func I() *Node { return imagUnit }

func NewAdd(args ...*Node) *Node {
	return newNode(Add, args)
}

func NewMul(args ...*Node) *Node {
	return newNode(Mul, args)
}

func NewPow(base, exp *Node) *Node {
	return newNode(Pow, []*Node{base, exp})
}

func NewAbs(arg *Node) *Node {
	return newNode(Abs, []*Node{arg})
}

func NewMatMul(args ...*Node) *Node {
	return newNode(MatMul, args)
}

// New builds a node of an arbitrary compound class.
func New(c *Class, args ...*Node) *Node {
	return newNode(c, args)
}

// Base returns the base of a power.
func (n *Node) Base() *Node {
	if !n.Class.IsSubclass(Pow) {
		return nil
	}
	return n.Args[0]
}

// Exp returns the exponent of a power.
func (n *Node) Exp() *Node {
	if !n.Class.IsSubclass(Pow) {
		return nil
	}
	return n.Args[1]
}

// IsAtom reports whether n has no operands.
func (n *Node) IsAtom() bool {
	return len(n.Args) == 0
}

// IsNumber reports whether n is an Integer, Rational or Float.
func (n *Node) IsNumber() bool {
	return n.Class.IsSubclass(Number)
}
