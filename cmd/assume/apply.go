package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/parse"
	"github.com/mcpl-sympy/sympy/satask"
)

// lowered returns one line per fact applicable to x: the fact and what it
// lowers to.
func lowered(eng *satask.Engine, x *expr.Node) ([]string, error) {
	var res []string
	for _, f := range eng.Registry.Lookup(x.Class) {
		l, err := eng.Env.Apply(f, x)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", f, err)
		}
		res = append(res, f.String()+" => "+l.String())
	}
	return res, nil
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires an expression", cli.ErrUsage)
	}
	x, err := parse.Expr(strings.Join(args, " "))
	if err != nil {
		return err
	}
	eng, err := cfg.loadEngine()
	if err != nil {
		return err
	}
	lines, err := lowered(eng, x)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		theLog.Info("no facts", "class", x.Class)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}
