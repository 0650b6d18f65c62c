package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/parse"
	"github.com/mcpl-sympy/sympy/satask"
)

var triColors = map[expr.Tri]*color.Color{
	expr.True:    color.New(color.FgGreen),
	expr.False:   color.New(color.FgRed),
	expr.Unknown: color.New(color.FgYellow),
}

func ask(cfg *AskConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ask.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: ask requires a proposition", cli.ErrUsage)
	}
	prop, err := parse.Formula(strings.Join(args, " "))
	if err != nil {
		return err
	}
	assumptions := satask.NewAssumptions()
	if cfg.Assume != "" {
		a, err := parse.Formula(cfg.Assume)
		if err != nil {
			return fmt.Errorf("assumptions: %w", err)
		}
		assumptions.Add(a)
	}
	eng, err := cfg.loadEngine()
	if err != nil {
		return err
	}
	res, err := eng.Ask(prop, assumptions)
	if err != nil {
		return err
	}
	theLog.Debug("asked", "prop", prop.String(), "assumptions", assumptions.Len(), "result", res.String())
	out := res.String()
	if cfg.colors(cc.Out) {
		out = triColors[res].Sprint(out)
	}
	_, err = fmt.Fprintln(cc.Out, out)
	return err
}
