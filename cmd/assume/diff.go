package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mcpl-sympy/sympy/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 expressions, got %v", cli.ErrUsage, args)
	}
	eng, err := cfg.loadEngine()
	if err != nil {
		return err
	}
	var texts [2]string
	for i, arg := range args {
		x, err := parse.Expr(arg)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		lines, err := lowered(eng, x)
		if err != nil {
			return err
		}
		texts[i] = strings.Join(lines, "\n") + "\n"
	}
	differs, err := writeLineDiff(cc.Out, texts[0], texts[1], cfg.colors(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeLineDiff writes a line diff of from and to, each line prefixed by
// '-', '+' or ' ', and reports whether they differ.
func writeLineDiff(w io.Writer, from, to string, colored bool) (bool, error) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del, ins = color.New(color.FgRed).Sprint, color.New(color.FgGreen).Sprint
	}
	differs := false
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint, differs = "-", del, true
		case diffpatch.DiffInsert:
			prefix, paint, differs = "+", ins, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, paint(prefix+line)); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}
