// Package config provides YAML-based configuration loading and difficulty
// presets for the brick game.
package config

import "fmt"

// TetrisConfig contains all configuration for a game session and its
// surroundings.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the tick loop and gravity pacing.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`       // Ticks per second
	SpeedThreshold int `yaml:"speed_threshold"` // Gravity threshold in ticks before level adjustment
}

// StorageConfig defines where the high score and history are kept.
type StorageConfig struct {
	Backend string `yaml:"backend"`  // "file" or "sqlite"
	DataDir string `yaml:"data_dir"` // Directory for highscore.txt and scores.db
}

// DifficultyConfig selects a named difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Validate reports the first setting that cannot drive a game.
func (c TetrisConfig) Validate() error {
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.SpeedThreshold <= 0 {
		return fmt.Errorf("timing.speed_threshold must be positive, got %d", c.Timing.SpeedThreshold)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Storage.Backend)
	}
	if _, err := ParseDifficultyPreset(string(c.Difficulty.Preset)); err != nil {
		return fmt.Errorf("difficulty.preset: %w", err)
	}
	return nil
}
