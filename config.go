// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ballmachine

// config.go reduces Init's API footprint using functional options, the
// same pattern vu/config.go uses for NewEngine.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains the attributes that can be set before a simulation is
// started. It is also the shape persisted to and loaded from YAML, so a
// deployment's tuning can live in a file rather than in code.
type Config struct {
	NumBalls       int  `yaml:"num_balls"`
	ChambersPerRow int  `yaml:"chambers_per_row"`
	MaxChambers    int  `yaml:"max_chambers"`
	Constrained    bool `yaml:"constrained"`
}

// configDefaults mirrors the reference deployment split: 5 balls and 1
// chamber per row on constrained targets, 20 balls and 2 per row
// otherwise.
var configDefaults = Config{
	NumBalls:       20,
	ChambersPerRow: 2,
	MaxChambers:    64,
	Constrained:    false,
}

var constrainedDefaults = Config{
	NumBalls:       5,
	ChambersPerRow: 1,
	MaxChambers:    16,
	Constrained:    true,
}

// Attr is a configuration override, for use with Init.
//
//	sim := ballmachine.Init(seed,
//	    ballmachine.Balls(20),
//	    ballmachine.ChambersPerRow(2),
//	)
type Attr func(*Config)

// Balls overrides the number of balls created at simulation init.
func Balls(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.NumBalls = n
		}
	}
}

// ChambersPerRow overrides the grid width used to derive chamber topology.
func ChambersPerRow(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.ChambersPerRow = n
		}
	}
}

// MaxChambers overrides the deployment's chamber capacity limit.
func MaxChambers(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.MaxChambers = n
		}
	}
}

// Constrained selects the reduced-footprint defaults (5 balls, 1 per
// row) used on constrained targets, unless overridden by later Attrs.
func Constrained() Attr {
	return func(c *Config) {
		*c = constrainedDefaults
	}
}

// LoadConfig reads a YAML configuration file, layering it over the
// standard defaults. Missing fields in the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := configDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
