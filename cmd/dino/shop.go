package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/shop"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List upgrades and their prices",
	Long: `Show every upgrade with its level, next price and whether you can buy it.

Examples:
  dino shop
  dino shop buy jump_boost`,
	Args: cobra.NoArgs,
	RunE: runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <key>",
	Short: "Buy the next level of an upgrade",
	Long: `Spend coins on the next level of an upgrade.

Run 'dino shop' to see upgrade keys and prices.`,
	Args: cobra.ExactArgs(1),
	RunE: runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

func runShopList(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	offers, profile, err := shop.New(store, newLogger(os.Stderr)).Offers()
	if err != nil {
		return err
	}

	fmt.Printf("Upgrade Shop - %d coins, best score %d\n", profile.Coins, profile.HighScore)
	fmt.Println()
	fmt.Printf("  %-18s  %-18s  %-5s  %-5s  %s\n", "Key", "Name", "Level", "Cost", "Status")
	fmt.Printf("  %-18s  %-18s  %-5s  %-5s  %s\n", "---", "----", "-----", "----", "------")

	for _, o := range offers {
		cost := "-"
		if o.Status != shop.StatusMaxed {
			cost = fmt.Sprintf("%d", o.Cost)
		}
		status := o.Status.String()
		switch o.Status {
		case shop.StatusLocked:
			status = fmt.Sprintf("%s (best %d)", status, o.Item.UnlockScore)
		case shop.StatusNeedsParent:
			status = fmt.Sprintf("%s (%s)", status, o.Item.Requires)
		}
		fmt.Printf("  %-18s  %-18s  %d/%-3d  %-5s  %s\n",
			o.Item.Key, o.Item.Name, o.Level, o.Item.MaxLevel, cost, status)
	}
	return nil
}

func runShopBuy(_ *cobra.Command, args []string) error {
	key := upgrades.Key(args[0])

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := shop.New(store, newLogger(os.Stderr)).Buy(key)
	if errors.Is(err, shop.ErrUnknownUpgrade) {
		return fmt.Errorf("%w, run 'dino shop' to see keys", err)
	}
	if err != nil {
		return err
	}

	it, _ := upgrades.Lookup(key)
	fmt.Printf("Bought %s level %d for %d coins. %d coins left.\n", it.Name, r.Level, r.Cost, r.CoinsLeft)
	return nil
}
