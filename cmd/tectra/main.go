// tectra is a terminal arcade for the Tectra crypto games.
//
// Usage:
//
//	tectra list               - List available games
//	tectra play <game>        - Play a game
//	tectra blackjack          - Sit at the blackjack table
//	tectra menu               - Start menu to pick games interactively
//	tectra serve              - Start SSH server for remote play
//	tectra stats              - Show wallet stats
//	tectra migrate            - Migrate legacy unscoped wallet data
//
// Global flags:
//
//	--wallet <id>   - Wallet identity for persistence
//	--db <path>     - Wallet database path (default: ~/.tectra/wallet.db)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tectra-games/tectra-arcade/internal/wallet"

	// Import games to register them
	_ "github.com/tectra-games/tectra-arcade/internal/games/runner"
)

var (
	// Global flags
	flagWallet string
	flagDBPath string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tectra",
	Short: "Tectra Arcade - wallet-backed games in your terminal",
	Long: `Tectra Arcade is a terminal gaming platform. Runs are tied to a wallet
identity: the runner banks your high score and coins, and blackjack lets
you gamble the coins you collected.

Available commands:
  list       - Show all available games
  play       - Play a specific game directly
  blackjack  - Sit at the blackjack table (needs --wallet)
  menu       - Interactive game picker menu
  serve      - Start SSH server for remote play
  stats      - Show stored stats for a wallet
  migrate    - Fold legacy unscoped data into a wallet

Examples:
  tectra list
  tectra play runner --wallet 0xabc
  tectra blackjack --wallet 0xabc
  tectra menu --wallet 0xabc
  tectra serve`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagWallet, "wallet", "", "Wallet identity (empty = ephemeral play)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tectra/wallet.db", "Path to wallet database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(blackjackCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(migrateCmd)
}

// newLogger builds the CLI logger used for storage warnings.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "tectra"})
}

// openStore opens the wallet store and folds legacy data into the active
// wallet so every command sees a migrated view.
func openStore() *wallet.Store {
	store := wallet.Open(flagDBPath, newLogger())
	if flagWallet != "" {
		store.MigrateLegacy(flagWallet)
	}
	return store
}
