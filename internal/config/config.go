package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// BenchConfig holds the static definitions for a benchmark run: which
// strategies to exercise, over which number ranges, and how many trials
// per (strategy, range) pair.
type BenchConfig struct {
	Trials     int      `json:"trials"`
	MaxGuesses int      `json:"max_guesses"`
	Workers    int      `json:"workers"`
	Ranges     [][2]int `json:"ranges"`
	Strategies []string `json:"strategies"`
}

// Load reads, parses, and validates a benchmark configuration file.
func Load(path string) (*BenchConfig, error) {
	var cfg BenchConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in benchmark configuration: 500 trials over the
// classic set of nine ranges, exercising all four strategies sequentially.
func Default() *BenchConfig {
	return &BenchConfig{
		Trials:     500,
		MaxGuesses: 10000,
		Workers:    1,
		Ranges: [][2]int{
			{3, 5}, {10, 16}, {0, 10}, {-10, 5}, {100, 120},
			{-25, 0}, {1000, 1030}, {0, 40}, {-100, -50},
		},
		Strategies: []string{"random", "sequential", "signed", "binary"},
	}
}

// DeepCopy creates a new BenchConfig with all slices copied to prevent shared state.
func (c *BenchConfig) DeepCopy() *BenchConfig {
	newCfg := &BenchConfig{
		Trials:     c.Trials,
		MaxGuesses: c.MaxGuesses,
		Workers:    c.Workers,
	}
	newCfg.Ranges = make([][2]int, len(c.Ranges))
	copy(newCfg.Ranges, c.Ranges)
	newCfg.Strategies = make([]string, len(c.Strategies))
	copy(newCfg.Strategies, c.Strategies)
	return newCfg
}

// Validate checks the structural invariants of the configuration. Strategy
// names are resolved later, when the tester binds them to factories.
func (c *BenchConfig) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("max_guesses must be positive, got %d", c.MaxGuesses)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if len(c.Ranges) == 0 {
		return fmt.Errorf("at least one range is required")
	}
	for _, r := range c.Ranges {
		if r[0] >= r[1] {
			return fmt.Errorf("range <%d,%d) is empty: lower bound must be lower than upper bound", r[0], r[1])
		}
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	return nil
}
