package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/games/tetris"
	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/storage"
)

var (
	flagDifficulty string
	flagStore      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Enter      - Start
  Left/Right - Move
  Up         - Rotate
  Down       - Drop
  P          - Pause
  Q/Ctrl+C   - Quit
  Ctrl+S     - Screenshot

Difficulty options:
  easy   - Slow gravity
  normal - Classic pace
  hard   - Fast gravity

Examples:
  brickgame play
  brickgame play --difficulty easy
  brickgame play --store sqlite
  brickgame play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagStore, "store", "", "High score store: file, sqlite")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logFile, err := newLogger()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(cmd, flagDifficulty, flagStore)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tetris.ScreenW || h < tetris.ScreenH+1 {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, tetris.ScreenW, tetris.ScreenH+1)
		}
	}

	// Open score storage
	stores, err := openStores(cfg.Storage)
	if err != nil {
		logger.Warn("could not open score store, playing without one", "backend", cfg.Storage.Backend, "err", err)
	}
	defer stores.Close()

	rtCfg := core.RuntimeConfig{
		TickRate:       cfg.Timing.TickRate,
		Seed:           flagSeed,
		SpeedThreshold: cfg.Timing.SpeedThreshold,
	}
	session := tetris.New(stores.high, rtCfg)
	logger.Debug("starting game",
		"tick_rate", rtCfg.TickRate,
		"speed_threshold", rtCfg.SpeedThreshold,
		"preset", cfg.Difficulty.Preset,
		"high_score", session.Info().HighScore,
	)

	screenshots := ""
	if dir, err := storage.ExpandHome(cfg.Storage.DataDir); err == nil {
		screenshots = filepath.Join(dir, "screenshots")
	}

	if err := tui.Run(session, tui.Options{
		Config:        rtCfg,
		Logger:        tuiLogger(logger),
		ScreenshotDir: screenshots,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := session.Snapshot()
	if stores.high != nil {
		if err := session.SaveHighScore(stores.high); err != nil {
			logger.Warn("could not save high score", "err", err)
		}
	}
	if stores.history != nil && snap.Info.Score > 0 {
		if _, err := stores.history.SaveScore(snap.Info.Score, snap.Info.Level, snap.Lines); err != nil {
			logger.Warn("could not record game", "err", err)
		}
	}

	fmt.Printf("Game Over! Your score: %d\n", snap.Info.Score)
	fmt.Printf("High Score: %d\n", snap.Info.HighScore)
	logger.Debug("game finished", "pieces", snap.Pieces, "lines", snap.Lines, "level", snap.Info.Level)
	return nil
}
