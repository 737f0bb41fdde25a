package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tectra-games/tectra-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := len("blackjack")
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "blackjack", "Tectra Blackjack (needs --wallet)")

	fmt.Println()
	fmt.Println("Run 'tectra play <id>' or 'tectra blackjack' to play.")
}
