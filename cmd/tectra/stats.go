package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored stats for a wallet",
	Long: `Display the high score, coin total and attendance days stored for
the given wallet.

Examples:
  tectra stats --wallet 0xabc`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	if flagWallet == "" {
		fmt.Fprintln(os.Stderr, "Error: stats needs a wallet identity (--wallet <id>)")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	fmt.Printf("Wallet %s\n", flagWallet)
	fmt.Println()
	fmt.Printf("  High score:  %d\n", store.GetInt(flagWallet, wallet.KeyHighScore, 0))
	fmt.Printf("  Total coins: %d\n", store.GetInt(flagWallet, wallet.KeyTotalCoins, 0))

	days := store.Keys(flagWallet, "attendance-")
	fmt.Printf("  Attendance:  %d day(s)\n", len(days))
	for _, day := range days {
		fmt.Printf("    %s\n", day)
	}
}
