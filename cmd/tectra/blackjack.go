package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tectra-games/tectra-arcade/internal/config"
	"github.com/tectra-games/tectra-arcade/internal/platform/tui"
)

var flagBlackjackConfig string

var blackjackCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Sit at the blackjack table",
	Long: `Play blackjack against the dealer with the coins collected in
Tectra Runner. A wallet identity is required; a wallet with no coins at all
receives a one-time starter grant.

Controls:
  +/-        - Adjust bet
  Enter      - Deal / next round
  H/Space    - Hit
  S          - Stand
  B/Esc      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  tectra blackjack --wallet 0xabc
  tectra blackjack --wallet 0xabc --config ./my-blackjack.yaml`,
	Run: runBlackjack,
}

func init() {
	blackjackCmd.Flags().StringVar(&flagBlackjackConfig, "config", "", "Path to custom game config YAML")
}

func runBlackjack(cmd *cobra.Command, args []string) {
	if flagWallet == "" {
		fmt.Fprintln(os.Stderr, "Error: blackjack needs a wallet identity (--wallet <id>)")
		os.Exit(1)
	}

	cfg, err := config.LoadBlackjack(flagBlackjackConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.RunBlackjack(cfg, store, flagWallet, flagSeed)
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running blackjack: %v\n", runErr)
		os.Exit(1)
	}
}
