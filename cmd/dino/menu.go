package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/shop"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Dino Dash in interactive menu mode.

Pick a mode to play, visit the upgrade shop or browse high scores.
After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Esc/Q        - Quit

Examples:
  dino menu
  dino menu --fps 30
  dino menu --db ./dino.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := tuiLogger()
	defer closeLog()

	store, err := openStore()
	if err != nil {
		logger.Warn("menu without storage", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	keys := keybinds(logger)
	notice := ""
	lastMode := ""

	for {
		res, err := tui.RunMenu(store, cfg, notice)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceQuit, tui.ChoiceNone:
			return nil

		case tui.ChoiceShop:
			if store == nil {
				notice = "The shop needs the profile database"
				continue
			}
			goBack, err := tui.RunShop(shop.New(store, logger), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			notice = ""

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastMode)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			game, err := registry.Create(res.GameID)
			if err != nil {
				logger.Error("cannot create game", "mode", res.GameID, "error", err)
				continue
			}
			lastMode = res.GameID

			// Fresh seed per session unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			out, err := tui.Run(game, store, cfg, tui.Options{Keybinds: keys, Logger: logger})
			if err != nil {
				return err
			}
			if out.Quit {
				return nil
			}
			notice = ""
			if out.Score > 0 {
				notice = runSummary(out)
			}
		}
	}
}
