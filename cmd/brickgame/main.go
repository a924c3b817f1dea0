// brickgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	brickgame play            - Play a game
//	brickgame scores          - Show the high score and recorded games
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--fps <rate>       - Set tick rate (default: 25)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--data-dir <path>  - Directory for the high score and history (default: ~/.brickgame)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDataDir string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - falling blocks in your terminal",
	Long: `Brick Game is the classic falling-block puzzle for the terminal.
Rotate and drop pieces to complete rows; more rows at once score more.

Available commands:
  play     - Play a game
  scores   - View the high score and game history

Examples:
  brickgame play
  brickgame play --difficulty hard
  brickgame play --store sqlite --seed 42
  brickgame scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 25, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for high score and history (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// stderr and the returned file is nil.
func newLogger() (*log.Logger, *os.File, error) {
	var w io.Writer = os.Stderr
	var f *os.File
	if flagLogFile != "" {
		var err error
		f, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickgame",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
