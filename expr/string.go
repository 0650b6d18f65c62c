package expr

import (
	"strconv"
	"strings"
)

const (
	precAdd  = 10
	precMul  = 20
	precPow  = 30
	precAtom = 100
)

// Key returns a canonical, unambiguous encoding of n. Structurally equal
// nodes have equal keys.
func (n *Node) Key() string {
	buf := &strings.Builder{}
	n.writeKey(buf)
	return buf.String()
}

func (n *Node) writeKey(buf *strings.Builder) {
	buf.WriteString(n.Class.Name)
	buf.WriteByte('(')
	switch {
	case n.Rat != nil:
		buf.WriteString(n.Rat.RatString())
	case n.Class == Float:
		f := n.Float
		if f == 0 {
			f = 0
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case n.Name != "":
		buf.WriteString(strconv.Quote(n.Name))
	}
	for i, arg := range n.Args {
		if i > 0 || n.Rat != nil || n.Name != "" || n.Class == Float {
			buf.WriteByte(',')
		}
		arg.writeKey(buf)
	}
	buf.WriteByte(')')
}

// String renders n in conventional infix notation.
func (n *Node) String() string {
	buf := &strings.Builder{}
	n.write(buf)
	return buf.String()
}

func (n *Node) prec() int {
	switch n.Class {
	case Add:
		return precAdd
	case Mul, MatMul:
		return precMul
	case Pow:
		return precPow
	case Integer, Float:
		if n.sign() < 0 {
			return precMul
		}
	case Rational:
		return precMul
	}
	return precAtom
}

func (n *Node) sign() int {
	if n.Rat != nil {
		return n.Rat.Sign()
	}
	switch {
	case n.Float < 0:
		return -1
	case n.Float > 0:
		return 1
	}
	return 0
}

func (n *Node) writeChild(buf *strings.Builder, child *Node, min int) {
	if child.prec() < min {
		buf.WriteByte('(')
		child.write(buf)
		buf.WriteByte(')')
		return
	}
	child.write(buf)
}

func (n *Node) write(buf *strings.Builder) {
	switch n.Class {
	case Integer, Rational:
		buf.WriteString(n.Rat.RatString())
		return
	case Float:
		s := strconv.FormatFloat(n.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		buf.WriteString(s)
		return
	case Add:
		for i, arg := range n.Args {
			if i > 0 {
				buf.WriteString(" + ")
			}
			n.writeChild(buf, arg, precAdd+1)
		}
		return
	case Mul, MatMul:
		for i, arg := range n.Args {
			if i > 0 {
				buf.WriteByte('*')
			}
			n.writeChild(buf, arg, precMul+1)
		}
		return
	case Pow:
		n.writeChild(buf, n.Args[0], precPow+1)
		buf.WriteString("**")
		n.writeChild(buf, n.Args[1], precPow+1)
		return
	}
	if n.Name != "" {
		buf.WriteString(n.Name)
		return
	}
	buf.WriteString(n.Class.Name)
	buf.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		arg.write(buf)
	}
	buf.WriteByte(')')
}
