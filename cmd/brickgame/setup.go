package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/games/tetris"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// loadConfig loads the YAML config and applies command-line overrides.
// A --difficulty preset wins over speed_threshold from the file.
func loadConfig(cmd *cobra.Command, difficulty, backend string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset, err := config.ParseDifficultyPreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}

	if cmd.Flags().Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}
	if flagDataDir != "" {
		cfg.Storage.DataDir = flagDataDir
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// scoreStores holds the open persistence backends. history is nil unless
// the sqlite backend is active.
type scoreStores struct {
	high    tetris.HighScoreStore
	history *storage.Store
}

func (s scoreStores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}

// openStores opens the configured backend. Failures are returned so the
// caller can decide whether to play on without persistence.
func openStores(cfg config.StorageConfig) (scoreStores, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.Open(filepath.Join(cfg.DataDir, storage.DatabaseFile))
		if err != nil {
			return scoreStores{}, err
		}
		return scoreStores{high: db, history: db}, nil
	default:
		fs, err := storage.NewFileStore(filepath.Join(cfg.DataDir, storage.HighScoreFile))
		if err != nil {
			return scoreStores{}, err
		}
		return scoreStores{high: fs}, nil
	}
}

// scoreView is what the scores command reads: the high score from the
// configured backend and the game history, if a database exists.
type scoreView struct {
	high    tetris.HighScoreLoader
	history *storage.Store
}

// openScoreView opens the configured high score and any recorded history.
// With the file backend a missing database reads as an empty history and is
// not created.
func openScoreView(cfg config.StorageConfig) (scoreView, error) {
	dbPath, err := storage.ExpandHome(filepath.Join(cfg.DataDir, storage.DatabaseFile))
	if err != nil {
		return scoreView{}, err
	}

	var v scoreView
	if cfg.Backend == config.BackendSQLite || fileExists(dbPath) {
		db, err := storage.Open(dbPath)
		if err != nil {
			return scoreView{}, fmt.Errorf("opening scores database: %w", err)
		}
		v.history = db
		v.high = db
	}
	if cfg.Backend == config.BackendFile {
		file, err := storage.NewFileStore(filepath.Join(cfg.DataDir, storage.HighScoreFile))
		if err != nil {
			v.Close()
			return scoreView{}, err
		}
		v.high = file
	}
	return v, nil
}

func (v scoreView) Close() {
	if v.history != nil {
		v.history.Close()
	}
}

func (v scoreView) LoadHighScore() int {
	if v.high == nil {
		return 0
	}
	return v.high.LoadHighScore()
}

func (v scoreView) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if v.history == nil {
		return nil, nil
	}
	return v.history.TopScores(limit)
}

func (v scoreView) GetGameStats() (*storage.GameStats, error) {
	if v.history == nil {
		return &storage.GameStats{}, nil
	}
	return v.history.GetGameStats()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// tuiLogger returns the logger to hand to the TUI. While the alternate
// screen owns the terminal only file logging is safe.
func tuiLogger(logger *log.Logger) *log.Logger {
	if flagLogFile == "" {
		return nil
	}
	return logger
}
