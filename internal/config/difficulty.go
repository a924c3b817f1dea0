package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a flag or YAML value into a preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedThresholdForPreset returns the gravity threshold for a preset.
// Unknown presets get the normal threshold.
func SpeedThresholdForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 30
	case DifficultyHard:
		return 12
	default:
		return 20
	}
}
