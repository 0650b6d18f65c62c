package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "assume").
		WithSynopsis("assume [opts] command [opts]").
		WithDescription("assume compiles and queries facts about symbolic expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return assumeMain(cfg, cc, args)
		}).
		WithSubs(
			FactsCommand(cfg),
			ApplyCommand(cfg),
			AskCommand(cfg),
			DiffCommand(cfg))
}

func FactsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FactsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Facts, "facts").
		WithAliases("f").
		WithSynopsis("facts [-yaml] <class>").
		WithDescription("list the facts registered for a class and its ancestors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return listFacts(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply <expr>").
		WithDescription("lower every fact applicable to an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func AskCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AskConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Ask, "ask").
		WithSynopsis("ask [-a assumptions] <proposition>").
		WithDescription("decide a proposition: True, False or None").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ask(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <expr> <expr>").
		WithDescription("diff the lowered facts of two expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
