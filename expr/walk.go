package expr

// Visit calls f on n and its descendants, pre-order with isPost false and
// again post-order with isPost true. Returning false from the pre-order
// call skips the node's operands; an error stops the walk.
func (n *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	descend, err := f(n, false)
	if err != nil {
		return err
	}
	if descend {
		for _, arg := range n.Args {
			if err := arg.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Subexpressions returns n and every node below it, pre-order, with
// structural duplicates removed.
func (n *Node) Subexpressions() []*Node {
	seen := map[string]bool{}
	var res []*Node
	_ = n.Visit(func(node *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		k := node.Key()
		if seen[k] {
			return false, nil
		}
		seen[k] = true
		res = append(res, node)
		return true, nil
	})
	return res
}

// Replace returns a copy of n in which every subtree satisfying match is
// replaced by repl applied to it. Matching is top-down: the operands of a
// replaced subtree are not visited. Untouched subtrees are shared.
func Replace(n *Node, match func(*Node) bool, repl func(*Node) *Node) *Node {
	if match(n) {
		return repl(n)
	}
	if len(n.Args) == 0 {
		return n
	}
	var args []*Node
	for i, arg := range n.Args {
		r := Replace(arg, match, repl)
		if r != arg && args == nil {
			args = make([]*Node, len(n.Args))
			copy(args, n.Args[:i])
		}
		if args != nil {
			args[i] = r
		}
	}
	if args == nil {
		return n
	}
	res := *n
	res.Args = args
	return &res
}
