package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	width := 2 // "ID" header
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Run 'mathheroes play <id>' to play a mode.")
}
