package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a run",
	Long: `Start a run in the given mode (default: dino).

Modes:
  dino          - Uses your upgrades and earns coins
  dino_classic  - The original rules: one life, no upgrades, no coins

Controls (rebindable in the config keybinds section):
  Space/Up/W  - Jump (again mid-air with Air Jump)
  S           - Shield
  D           - Air dash
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Back
  Q/Ctrl+C    - Quit

Examples:
  dino play
  dino play dino_classic
  dino play --seed 42 --fps 30
  dino play --config ./my-dino.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
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

	logger, closeLog := tuiLogger()
	defer closeLog()

	// The game still runs without a database, it just cannot save.
	store, err := openStore()
	if err != nil {
		logger.Warn("playing without storage", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	out, err := tui.Run(game, store, runtimeConfig(), tui.Options{
		Keybinds: keybinds(logger),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if out.Score > 0 {
		fmt.Println(runSummary(out))
	}
	return nil
}

// runSummary describes the last finished run in one line.
func runSummary(out tui.Outcome) string {
	s := fmt.Sprintf("Last run: %d", out.Score)
	if out.Coins > 0 {
		s += fmt.Sprintf(" (+%d coins)", out.Coins)
	}
	if out.NewHigh {
		s += "  NEW HIGH SCORE!"
	}
	return s
}
