package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickRate:       25,
			SpeedThreshold: 20,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: "~/.brickgame",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
