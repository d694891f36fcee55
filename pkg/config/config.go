// Package config loads Gumbel-MCTS hyperparameters from a TOML file,
// falling back to the compiled-in defaults from pkg/search, following the
// struct-with-toml-tags pattern FrankyGo uses for its engine configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gumbelchess/engine/pkg/search"
)

// Search mirrors search.Options with toml tags for file loading.
type Search struct {
	NConsider        int     `toml:"n_consider"`
	SimulationBudget int     `toml:"simulation_budget"`
	CVisit           float64 `toml:"c_visit"`
	CScale           float64 `toml:"c_scale"`
	Seed             int64   `toml:"seed"`
}

// Config is the top-level configuration document.
type Config struct {
	Search Search `toml:"search"`
}

// Default returns the compiled-in configuration, matching
// search.DefaultOptions with a zero (time-independent) seed.
func Default() Config {
	opts := search.DefaultOptions()
	return Config{
		Search: Search{
			NConsider:        opts.NConsider,
			SimulationBudget: opts.SimulationBudget,
			CVisit:           opts.CVisit,
			CScale:           opts.CScale,
			Seed:             0,
		},
	}
}

// Load reads a TOML configuration file, overlaying it on top of the
// compiled-in defaults. Fields absent from the file keep their default
// value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %v: %w", path, err)
	}
	return cfg, nil
}

// Options converts the loaded search configuration into search.Options.
func (c Config) Options() search.Options {
	return search.Options{
		NConsider:        c.Search.NConsider,
		SimulationBudget: c.Search.SimulationBudget,
		CVisit:           c.Search.CVisit,
		CScale:           c.Search.CScale,
	}
}
