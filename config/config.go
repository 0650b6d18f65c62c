// Package config holds the engine configuration file.
//
//	engine:
//	  exactlyOne: pairwise
//	  expandComposites: true
//	exclude: [MatMul]
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/facts"
)

// Config represents the configuration file structure.
type Config struct {
	Engine EngineConfig `yaml:"engine"`

	// Exclude names classes whose own facts are not loaded. Facts of
	// their ancestors still apply to them.
	Exclude []string `yaml:"exclude,omitempty"`
}

// EngineConfig configures fact lowering.
type EngineConfig struct {
	ExactlyOne facts.ExactlyOneForm `yaml:"exactlyOne"`

	// ExpandComposites replaces composite predicates by their definitions
	// when facts are normalised.
	ExpandComposites bool `yaml:"expandComposites"`
}

// Default returns a Config with the defaults of facts.DefaultEnv.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			ExactlyOne:       facts.Disjunctive,
			ExpandComposites: true,
		},
	}
}

// Load reads a configuration file. Fields it leaves out keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Engine.ExactlyOne {
	case facts.Disjunctive, facts.Pairwise:
	default:
		return fmt.Errorf("%w: exactlyOne: unknown form %d", ErrConfig, c.Engine.ExactlyOne)
	}
	for _, name := range c.Exclude {
		if _, ok := expr.ClassByName(name); !ok {
			return fmt.Errorf("%w: exclude: %w %q", ErrConfig, facts.ErrUnknownClass, name)
		}
	}
	return nil
}

// YAML encodes c.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Env returns the lowering environment c describes.
func (c *Config) Env() *facts.Env {
	env := facts.DefaultEnv()
	env.ExactlyOne = c.Engine.ExactlyOne
	if !c.Engine.ExpandComposites {
		env.Composites = nil
	}
	return env
}

// Registry builds the knowledge base against env, leaving out the
// excluded classes.
func (c *Config) Registry(env *facts.Env) (*facts.Registry, error) {
	entries, err := env.KnowledgeBase()
	if err != nil {
		return nil, err
	}
	skip := map[string]bool{}
	for _, name := range c.Exclude {
		skip[name] = true
	}
	kept := entries[:0:0]
	for _, ent := range entries {
		if !skip[ent.Class.Name] {
			kept = append(kept, ent)
		}
	}
	reg := facts.NewRegistry()
	facts.Load(reg, kept)
	return reg, nil
}
