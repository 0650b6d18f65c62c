package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/facts"
)

// classFacts is the facts registered for one class.
type classFacts struct {
	Class string   `yaml:"class"`
	Facts []string `yaml:"facts"`
}

// factsByClass lists the facts applying to c, grouped by the class they
// are registered for, nearest first.
func factsByClass(reg *facts.Registry, c *expr.Class) []classFacts {
	var res []classFacts
	for _, k := range c.Ancestors() {
		fs := reg.Get(k)
		if len(fs) == 0 {
			continue
		}
		cf := classFacts{Class: k.Name}
		for _, f := range fs {
			cf.Facts = append(cf.Facts, f.String())
		}
		res = append(res, cf)
	}
	return res
}

func listFacts(cfg *FactsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Facts.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: facts requires a class name, got %v", cli.ErrUsage, args)
	}
	c, ok := expr.ClassByName(args[0])
	if !ok {
		return fmt.Errorf("%w %q", facts.ErrUnknownClass, args[0])
	}
	eng, err := cfg.loadEngine()
	if err != nil {
		return err
	}
	groups := factsByClass(eng.Registry, c)
	if cfg.YAML {
		d, err := yaml.Marshal(groups)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	return writeFacts(cc.Out, groups, cfg.colors(cc.Out))
}

func writeFacts(w io.Writer, groups []classFacts, colored bool) error {
	head := fmt.Sprintf
	if colored {
		head = color.New(color.FgCyan, color.Bold).SprintfFunc()
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, head("%s:", g.Class)); err != nil {
			return err
		}
		for _, f := range g.Facts {
			if _, err := fmt.Fprintf(w, "  %s\n", f); err != nil {
				return err
			}
		}
	}
	return nil
}
