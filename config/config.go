// Package config loads the scenario replayed by the cairn demo binary.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/cairn/network"
)

// ErrInvalid wraps every validation failure of a scenario.
var ErrInvalid = errors.New("invalid config")

// Transfer is one signed transaction the sender creates and broadcasts.
type Transfer struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount uint64 `yaml:"amount"`
}

// Round is a batch of transfers followed by a mining step. Every node drains
// its inbox after the transfers and again after the block is broadcast.
type Round struct {
	Transfers []Transfer `yaml:"transfers"`
	Miner     string     `yaml:"miner"`
}

// Config describes the nodes to start and the rounds they replay.
type Config struct {
	Nodes     []string `yaml:"nodes"`
	QueueSize int      `yaml:"queue_size"`
	LogLevel  string   `yaml:"log_level"`
	Rounds    []Round  `yaml:"rounds"`
	// Tamper makes the demo broadcast a forged copy of the last block to show
	// that every node rejects it.
	Tamper bool `yaml:"tamper"`
}

// Default returns the built-in scenario: alice sends three transfers to bob
// and mines them into one block.
func Default() *Config {
	return &Config{
		Nodes:     []string{"alice", "bob"},
		QueueSize: network.DefaultQueueSize,
		LogLevel:  "info",
		Rounds: []Round{
			{
				Transfers: []Transfer{
					{From: "alice", To: "bob", Amount: 10},
					{From: "alice", To: "bob", Amount: 20},
					{From: "alice", To: "bob", Amount: 30},
				},
				Miner: "alice",
			},
		},
		Tamper: true,
	}
}

// Load reads a YAML scenario from filename. Fields left out keep the values
// of Default; lists given in the file replace the default ones.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every transfer and miner names a declared node.
func (c *Config) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalid)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalid, c.QueueSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	known := make(map[string]bool, len(c.Nodes))
	for _, name := range c.Nodes {
		if name == "" {
			return fmt.Errorf("%w: empty node name", ErrInvalid)
		}
		if known[name] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalid, name)
		}
		known[name] = true
	}
	var errs []error
	for i, r := range c.Rounds {
		for j, t := range r.Transfers {
			if !known[t.From] {
				errs = append(errs, fmt.Errorf("%w: round %d transfer %d: unknown sender %q", ErrInvalid, i, j, t.From))
			}
			if !known[t.To] {
				errs = append(errs, fmt.Errorf("%w: round %d transfer %d: unknown receiver %q", ErrInvalid, i, j, t.To))
			}
		}
		if r.Miner != "" && !known[r.Miner] {
			errs = append(errs, fmt.Errorf("%w: round %d: unknown miner %q", ErrInvalid, i, r.Miner))
		}
	}
	return errors.Join(errs...)
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return level, nil
}
