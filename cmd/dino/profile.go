package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

var flagResetYes bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show coins, high score and owned upgrades",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset coins, high score and upgrades",
	Long: `Reset the profile to a fresh start: zero coins, no high score and no
upgrades. Recorded runs stay on the scoreboard.

Requires --yes.`,
	Args: cobra.NoArgs,
	RunE: runProfileReset,
}

var profileGrantCmd = &cobra.Command{
	Use:   "grant <coins>",
	Short: "Credit (or with a negative amount, debit) the coin wallet",
	Long: `Credit coins to the wallet. A negative amount debits it; put it after
"--" so it is not read as a flag. The balance never goes below zero.

Examples:
  dino profile grant 50
  dino profile grant -- -20`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileGrant,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <upgrade> <level>",
	Short: "Set an upgrade level directly, without charging coins",
	Long: `Set an upgrade level directly. Prerequisites and unlock thresholds are
not checked; use 'dino shop buy' for a normal purchase.

Examples:
  dino profile set jump_boost 3
  dino profile set shield 0`,
	Args: cobra.ExactArgs(2),
	RunE: runProfileSet,
}

func init() {
	profileResetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
	profileGrantCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (to debit, write the amount after --: dino profile grant -- -20)", err)
	})
	profileCmd.AddCommand(profileResetCmd, profileGrantCmd, profileSetCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := store.Profile()
	if err != nil {
		return err
	}
	levels, err := store.UpgradeLevels()
	if err != nil {
		return err
	}

	fmt.Printf("Coins:      %d\n", profile.Coins)
	fmt.Printf("High score: %d\n", profile.HighScore)
	fmt.Println()

	owned := levels.Owned()
	if len(owned) == 0 {
		fmt.Println("No upgrades yet. Run 'dino shop' to see what's for sale.")
		return nil
	}

	fmt.Println("Upgrades:")
	for _, k := range owned {
		it, _ := upgrades.Lookup(k)
		fmt.Printf("  %-18s  %d/%d\n", it.Name, levels.Get(k), it.MaxLevel)
	}
	return nil
}

func runProfileReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		return fmt.Errorf("refusing to reset without --yes")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ResetProfile(); err != nil {
		return err
	}
	newLogger(os.Stderr).Info("profile reset", "db", flagDBPath)
	return nil
}

func runProfileGrant(_ *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid coin amount %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.AddCoins(amount); err != nil {
		return err
	}
	profile, err := store.Profile()
	if err != nil {
		return err
	}
	fmt.Printf("Coins: %d\n", profile.Coins)
	return nil
}

func runProfileSet(_ *cobra.Command, args []string) error {
	it, ok := upgrades.Lookup(upgrades.Key(args[0]))
	if !ok {
		return fmt.Errorf("unknown upgrade %q, run 'dino shop' to see the catalog", args[0])
	}
	level, err := strconv.Atoi(args[1])
	if err != nil || level < 0 || level > it.MaxLevel {
		return fmt.Errorf("level for %s must be between 0 and %d", it.Key, it.MaxLevel)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetUpgradeLevel(it.Key, level); err != nil {
		return err
	}
	fmt.Printf("%s: %d/%d\n", it.Name, level, it.MaxLevel)
	return nil
}
