package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 runs for the given mode (default: dino).

Examples:
  dino scores
  dino scores dino_classic --all
  dino scores dino_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the mode's recorded runs (profile is kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := dino.ModeEnhanced
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'dino list' to see modes", mode)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		newLogger(os.Stderr).Info("scores cleared", "mode", mode)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(mode)
	} else {
		scores, err = store.TopScores(mode, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dino play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Coins", "Passed", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, e.Score, e.Coins, e.Passed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d", best)
	}
	if stats, err := store.GetGameStats(mode); err == nil {
		fmt.Printf("  Runs: %d  Average: %.0f  Cacti passed: %d",
			stats.GamesCount, stats.AvgScore, stats.TotalPassed)
	}
	fmt.Println()
	return nil
}
