// Package config loads the defaults of the bitree CLI from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/g-m-twostay/go-bitree/Trees"
)

// Config holds CLI defaults. Command line flags override every field.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Encoding is the serialization algorithm used for reading and writing tree files.
	Encoding string `env:"ENCODING" envDefault:"dfs"`
	// Strategy is the default search strategy.
	Strategy string `env:"STRATEGY" envDefault:"bfs"`
	// Order is the default traversal order of the walk command.
	Order string `env:"ORDER" envDefault:"inorder"`
	// MaxNodes caps the number of nodes of built or loaded trees, 0 for no cap.
	MaxNodes int `env:"MAX_NODES" envDefault:"0"`
}

// Prefix is prepended to every variable name, e.g. BITREE_ENCODING.
const Prefix = "BITREE_"

// Load reads the given .env files, skipping missing ones, then parses the
// process environment. Variables already set in the environment win over
// values from files.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the names against the engine's vocabulary.
func (c Config) Validate() error {
	if _, err := Trees.ParseEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%sENCODING: %w", Prefix, err)
	}
	if _, err := Trees.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%sSTRATEGY: %w", Prefix, err)
	}
	if _, err := Trees.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%sORDER: %w", Prefix, err)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%sMAX_NODES: %w: must not be negative", Prefix, Trees.ErrInvalidArgument)
	}
	return nil
}

// TreeOptions converts the node cap into engine options.
func (c Config) TreeOptions() []Trees.Option {
	if c.MaxNodes > 0 {
		return []Trees.Option{Trees.WithNodeLimit(c.MaxNodes)}
	}
	return nil
}
