package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/registry"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the given mode.

Examples:
  mathheroes scores counting
  mathheroes scores addition --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'mathheroes list' to see modes", gameID)
	}

	store, err := storage.Open(current.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mathheroes play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Highest level: %d  Games: %d  Average: %.1f\n",
		stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
	return nil
}
