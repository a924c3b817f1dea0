package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and recorded games",
	Long: `Display the stored high score and the top 10 recorded games.
Games are recorded when playing with --store sqlite.

Examples:
  brickgame scores
  brickgame scores --tui
  brickgame scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show an interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game history (the high score is kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "", "")
	if err != nil {
		return err
	}

	view, err := openScoreView(cfg.Storage)
	if err != nil {
		return err
	}
	defer view.Close()

	if flagScoresClear {
		if view.history == nil {
			fmt.Println("No game history to clear.")
			return nil
		}
		if err := view.history.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Game history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(view, width, height)
	}

	scores, err := view.TopScores(10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Score: %d\n", view.LoadHighScore())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickgame play --store sqlite' to keep a history!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	if stats, err := view.GetGameStats(); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Lines: %d  Average: %.0f\n", stats.GamesCount, stats.TotalLines, stats.AvgScore)
	}
	return nil
}
