package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mcpl-sympy/sympy/config"
	"github.com/mcpl-sympy/sympy/satask"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='engine configuration file (yaml)'"`
	Color      bool   `cli:"name=color desc='colour output'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Main *cli.Command

	engine *satask.Engine
}

// loadEngine builds the engine from -config once per run.
func (cfg *MainConfig) loadEngine() (*satask.Engine, error) {
	if cfg.engine != nil {
		return cfg.engine, nil
	}
	c := config.Default()
	if cfg.ConfigFile != "" {
		var err error
		c, err = config.Load(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		theLog.Info("loaded config", "path", cfg.ConfigFile, "exactlyOne", c.Engine.ExactlyOne)
	}
	env := c.Env()
	reg, err := c.Registry(env)
	if err != nil {
		return nil, err
	}
	theLog.Debug("engine ready", "classes", len(reg.Classes()), "exactlyOne", env.ExactlyOne.String())
	cfg.engine = satask.NewEngine(env, reg)
	return cfg.engine, nil
}

// colors reports whether output to w is coloured: always with -color,
// otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FactsConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml aliases=y desc='output yaml'"`

	Facts *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type AskConfig struct {
	*MainConfig
	Assume string `cli:"name=a aliases=assume desc='assumptions, as a proposition'"`

	Ask *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
