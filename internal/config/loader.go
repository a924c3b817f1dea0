package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.brickgame/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeTetris(data)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tetrisFile); userCfgPath != "" {
		if c, ok := readConfig(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readConfig(filepath.Join("configs", tetrisFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	cfg, err := decodeTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeTetris parses a YAML document over the defaults. A file that names a
// difficulty preset but no speed_threshold gets the preset's threshold.
func decodeTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.SpeedThreshold = 0
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTetrisConfig(), err
	}
	if cfg.Timing.SpeedThreshold <= 0 {
		cfg.Timing.SpeedThreshold = SpeedThresholdForPreset(cfg.Difficulty.Preset)
	}
	return cfg, nil
}

// readConfig reads an optional config file. Missing or broken files are
// skipped so the next source in the search order is tried.
func readConfig(path string) (TetrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTetrisConfig(), false
	}
	cfg, err := decodeTetris(data)
	if err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickgame", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Timing.SpeedThreshold = SpeedThresholdForPreset(preset)
}
