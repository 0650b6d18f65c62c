package facts

import (
	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/logic"
)

// legacyNames maps predicates to the legacy attribute of the same meaning.
var legacyNames = func() map[*logic.Predicate]string {
	res := make(map[*logic.Predicate]string, len(expr.LegacyFlagNames))
	for _, name := range expr.LegacyFlagNames {
		res[logic.Pred(name)] = name
	}
	return res
}()

// EvaluateOldAssump replaces every applied predicate in t which has a
// legacy attribute by that attribute's value on its target, as read by
// flag. Unknown values leave the applied predicate in place. A nil flag
// reads expr.LegacyFlag.
func EvaluateOldAssump(t logic.Term, flag FlagFunc) *logic.Formula {
	if flag == nil {
		flag = expr.LegacyFlag
	}
	return logic.Replace(t, func(f *logic.Formula) (*logic.Formula, bool) {
		if f.Kind != logic.AppliedKind {
			return nil, false
		}
		name, ok := legacyNames[f.Pred]
		if !ok {
			return nil, false
		}
		v, known := flag(name, f.Target).Bool()
		if !known {
			return nil, false
		}
		return logic.Bool(v), true
	})
}

// EvaluateOldAssump is EvaluateOldAssump using e's legacy attributes.
func (e *Env) EvaluateOldAssump(t logic.Term) *logic.Formula {
	return EvaluateOldAssump(t, e.flag)
}
