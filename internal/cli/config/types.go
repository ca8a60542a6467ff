// Package config provides layered configuration for the numquest CLI.
//
// Precedence (highest to lowest): flags > env vars > config file >
// defaults, matching the loader chain in loader.go.
package config

import (
	"fmt"

	"github.com/leapstack-labs/numquest/internal/game"
	"github.com/leapstack-labs/numquest/internal/leaderboard"
)

// DifficultyConfig is one preset as it appears in configuration.
type DifficultyConfig struct {
	Tries int `koanf:"tries"`
	Range int `koanf:"range"`
}

// Config holds all CLI configuration options.
type Config struct {
	ScoresFile   string                      `koanf:"scores_file"`
	Verbose      bool                        `koanf:"verbose"`
	NoColor      bool                        `koanf:"no_color"`
	Difficulties map[string]DifficultyConfig `koanf:"difficulties"`
}

// Default configuration values.
const (
	DefaultScoresFile = leaderboard.DefaultFileName

	ConfigFileName    = "numquest.yaml"
	ConfigFileNameAlt = "numquest.yml"
)

// DifficultyNames is the fixed preset order used in prompts and menus.
var DifficultyNames = []string{"easy", "medium", "hard"}

// DefaultDifficulties returns the three fixed presets.
func DefaultDifficulties() map[string]DifficultyConfig {
	return map[string]DifficultyConfig{
		"easy":   {Tries: 10, Range: 100},
		"medium": {Tries: 7, Range: 100},
		"hard":   {Tries: 5, Range: 100},
	}
}

// Default returns a Config carrying only default values.
func Default() *Config {
	return &Config{
		ScoresFile:   DefaultScoresFile,
		Difficulties: DefaultDifficulties(),
	}
}

// Validate checks that the three presets exist with positive bounds
// and that no unknown preset names were configured.
func (c *Config) Validate() error {
	for _, name := range DifficultyNames {
		d, ok := c.Difficulties[name]
		if !ok {
			return fmt.Errorf("missing difficulty preset %q", name)
		}
		if d.Tries <= 0 {
			return fmt.Errorf("difficulty %q: tries must be positive, got %d", name, d.Tries)
		}
		if d.Range <= 0 {
			return fmt.Errorf("difficulty %q: range must be positive, got %d", name, d.Range)
		}
	}
	for name := range c.Difficulties {
		if !isKnownDifficulty(name) {
			return fmt.Errorf("unknown difficulty preset %q (valid: easy, medium, hard)", name)
		}
	}
	return nil
}

// Presets returns the difficulty presets in menu order.
func (c *Config) Presets() []game.Difficulty {
	presets := make([]game.Difficulty, 0, len(DifficultyNames))
	for _, name := range DifficultyNames {
		d := c.Difficulties[name]
		presets = append(presets, game.Difficulty{
			Name:        name,
			MaxAttempts: d.Tries,
			NumberRange: d.Range,
		})
	}
	return presets
}

func isKnownDifficulty(name string) bool {
	for _, known := range DifficultyNames {
		if name == known {
			return true
		}
	}
	return false
}
