package expr

import "math/big"

var one = big.NewInt(1)

// IsPrime reports whether n is an Integer holding a prime. The test is
// exact for every value below 2**64.
func IsPrime(n *Node) bool {
	if n.Class != Integer || n.Rat == nil {
		return false
	}
	v := n.Rat.Num()
	if v.Cmp(one) <= 0 {
		return false
	}
	return v.ProbablyPrime(20)
}
