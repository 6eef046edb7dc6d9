package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the user-facing settings of the checker.
type Config struct {
	// MinRatio is the minimum share of recognized words a sentence must
	// have to be treated as being in the checked language.
	MinRatio float64 `toml:"min_ratio"`

	// GrammarPath overrides the embedded grammar with a file on disk.
	GrammarPath string `toml:"grammar_path"`

	// LexiconDB is the path of the sqlite vocabulary; empty selects the
	// built-in vocabulary.
	LexiconDB string `toml:"lexicon_db"`

	// WatchGrammar rebuilds the parser when the grammar file changes.
	WatchGrammar bool `toml:"watch_grammar"`

	Color bool `toml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MinRatio: 0.5,
		Color:    true,
	}
}

// Load reads a TOML configuration file, filling unset fields with
// defaults.
func Load(path string) (Config, error) {
	cfg := Config{Color: true}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	// an explicit zero disables the language guard; only an absent key
	// falls back to the default
	if !md.IsDefined("min_ratio") {
		cfg.MinRatio = Default().MinRatio
	}
	return cfg, nil
}
