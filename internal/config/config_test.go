package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "timing:\n  tick_rate: 30\n")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timing.TickRate)
	// Unset keys keep their defaults.
	assert.Equal(t, 20, cfg.Timing.SpeedThreshold)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)

	writeFile(t, filepath.Join(home, ".brickgame", "configs", "tetris.yaml"), "timing:\n  tick_rate: 50\n")

	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Timing.TickRate)

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "storage:\n  backend: sqlite\n")

	cfg, err = LoadTetris(custom)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 25, cfg.Timing.TickRate)
}

func TestLoadTetrisSkipsBrokenUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".brickgame", "configs", "tetris.yaml"), "timing: [oops\n")
	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "difficulty:\n  preset: hard\n")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)
}

func TestLoadTetrisPresetSetsThreshold(t *testing.T) {
	_, work := isolate(t)

	presetOnly := filepath.Join(work, "hard.yaml")
	writeFile(t, presetOnly, "difficulty:\n  preset: hard\n")
	cfg, err := LoadTetris(presetOnly)
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)
	assert.Equal(t, 12, cfg.Timing.SpeedThreshold)

	// An explicit threshold wins over the preset.
	explicit := filepath.Join(work, "explicit.yaml")
	writeFile(t, explicit, "timing:\n  speed_threshold: 25\ndifficulty:\n  preset: easy\n")
	cfg, err = LoadTetris(explicit)
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, cfg.Difficulty.Preset)
	assert.Equal(t, 25, cfg.Timing.SpeedThreshold)

	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "difficulty:\n  preset: easy\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timing.SpeedThreshold)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	_, err := LoadTetris(filepath.Join(work, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "timing: [oops\n")
	_, err = LoadTetris(broken)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		threshold int
	}{
		{DifficultyEasy, 30},
		{DifficultyNormal, 20},
		{DifficultyHard, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			assert.Equal(t, tt.threshold, cfg.Timing.SpeedThreshold)
			assert.Equal(t, tt.preset, cfg.Difficulty.Preset)
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	p, err := ParseDifficultyPreset(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr bool
	}{
		{"defaults", func(*TetrisConfig) {}, false},
		{"zero tick rate", func(c *TetrisConfig) { c.Timing.TickRate = 0 }, true},
		{"negative threshold", func(c *TetrisConfig) { c.Timing.SpeedThreshold = -1 }, true},
		{"unknown backend", func(c *TetrisConfig) { c.Storage.Backend = "redis" }, true},
		{"unknown preset", func(c *TetrisConfig) { c.Difficulty.Preset = "insane" }, true},
		{"sqlite backend", func(c *TetrisConfig) { c.Storage.Backend = BackendSQLite }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
