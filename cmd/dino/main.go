// dino is Dino Dash, an endless runner for the terminal with a coin shop
// and persistent upgrades.
//
// Usage:
//
//	dino play [mode]         - Play a run (dino or dino_classic)
//	dino menu                - Menu with play, shop and scores
//	dino shop                - List upgrades; dino shop buy <key> to buy
//	dino scores [mode]       - Show high scores for a mode
//	dino profile             - Show coins, high score and upgrades
//	dino list                - List game modes
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.dino/dino.db)
//	--config <path>     - Custom tuning/keybind YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Dash - an endless runner in your terminal",
	Long: `Dino Dash is a terminal endless runner. Jump cacti, earn coins and
spend them on upgrades: higher jumps, a shield, an air dash and more.

Available commands:
  play     - Play a run directly
  menu     - Interactive menu with shop and scores
  shop     - List or buy upgrades
  scores   - View high scores
  profile  - Show coins, high score and owned upgrades
  list     - Show game modes

Examples:
  dino menu
  dino play
  dino play dino_classic --seed 42
  dino shop buy jump_boost
  dino scores dino`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		dino.SetConfigPath(flagConfig)
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/dino.db", "Path to profile and scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
}

// newLogger builds the program logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// tuiLogger returns a logger for interactive sessions. The terminal belongs
// to the TUI, so logs go to ~/.dino/dino.log. The returned func closes the
// file.
func tuiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".dino")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dino.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// keybinds loads the configured keybinds, falling back to the stock layout.
func keybinds(logger *log.Logger) config.Keybinds {
	cfg, source, err := config.LoadDinoFrom(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		return config.DefaultKeybinds()
	}
	logger.Debug("config loaded", "source", source)
	return cfg.Keybinds
}

// openStore opens the profile database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", flagDBPath, err)
	}
	return store, nil
}
