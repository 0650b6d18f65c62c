package expr

import (
	"slices"
	"sync"
)

// Class is the runtime type tag of a node.
type Class struct {
	Name  string
	Bases []*Class

	// self first, then ancestors; each class once
	mro []*Class
}

var (
	classesMu sync.RWMutex
	classes   = map[string]*Class{}
	classList []*Class
)

// NewClass creates and registers a class. The ancestor chain is fixed at
// this point; classes are never mutated afterwards.
func NewClass(name string, bases ...*Class) *Class {
	c := &Class{Name: name, Bases: slices.Clone(bases)}
	c.mro = linearize(c)

	classesMu.Lock()
	defer classesMu.Unlock()
	classes[name] = c
	classList = append(classList, c)
	return c
}

// linearize walks bases depth first and keeps the last occurrence of each
// class, so shared ancestors land after every class deriving from them.
func linearize(c *Class) []*Class {
	var walk []*Class
	var visit func(k *Class)
	visit = func(k *Class) {
		walk = append(walk, k)
		for _, b := range k.Bases {
			visit(b)
		}
	}
	visit(c)

	last := make(map[*Class]int, len(walk))
	for i, k := range walk {
		last[k] = i
	}
	res := make([]*Class, 0, len(last))
	for i, k := range walk {
		if last[k] == i {
			res = append(res, k)
		}
	}
	return res
}

func (c *Class) String() string {
	return c.Name
}

// Ancestors returns c followed by every class it derives from.
func (c *Class) Ancestors() []*Class {
	return slices.Clone(c.mro)
}

// IsSubclass reports whether c is k or derives from k.
func (c *Class) IsSubclass(k *Class) bool {
	return slices.Contains(c.mro, k)
}

// ClassByName returns the registered class with the given name.
func ClassByName(name string) (*Class, bool) {
	classesMu.RLock()
	defer classesMu.RUnlock()
	c, ok := classes[name]
	return c, ok
}

// Classes returns all registered classes in creation order.
func Classes() []*Class {
	classesMu.RLock()
	defer classesMu.RUnlock()
	return slices.Clone(classList)
}

var (
	Basic         = NewClass("Basic")
	Atom          = NewClass("Atom", Basic)
	ExprClass     = NewClass("Expr", Basic)
	AtomicExpr    = NewClass("AtomicExpr", Atom, ExprClass)
	Symbol        = NewClass("Symbol", AtomicExpr)
	Number        = NewClass("Number", AtomicExpr)
	Rational      = NewClass("Rational", Number)
	Integer       = NewClass("Integer", Rational)
	Float         = NewClass("Float", Number)
	NumberSymbol  = NewClass("NumberSymbol", AtomicExpr)
	ImaginaryUnit = NewClass("ImaginaryUnit", AtomicExpr)
	AssocOp       = NewClass("AssocOp", Basic)
	Add           = NewClass("Add", ExprClass, AssocOp)
	Mul           = NewClass("Mul", ExprClass, AssocOp)
	Pow           = NewClass("Pow", ExprClass)
	Function      = NewClass("Function", ExprClass)
	Abs           = NewClass("Abs", Function)
	MatrixExpr    = NewClass("MatrixExpr", ExprClass)
	MatrixSymbol  = NewClass("MatrixSymbol", MatrixExpr)
	MatMul        = NewClass("MatMul", MatrixExpr, Mul)
)
