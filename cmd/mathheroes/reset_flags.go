package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/registry"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

var flagResetScores bool

var resetFlagsCmd = &cobra.Command{
	Use:   "reset-flags",
	Short: "Forget saved progress",
	Long: `Clear the saved progress flags: Owlbert's intro shows again and
addition is locked until a counting level is finished.

With --scores the high score tables are cleared as well.`,
	Args: cobra.NoArgs,
	RunE: runResetFlags,
}

func init() {
	resetFlagsCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear all high scores")
}

func runResetFlags(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(current.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ResetFlags(); err != nil {
		return err
	}
	fmt.Println("Progress cleared.")

	if !flagResetScores {
		return nil
	}
	for _, g := range registry.List() {
		if err := store.ClearScores(g.ID); err != nil {
			return err
		}
	}
	fmt.Println("High scores cleared.")
	return nil
}
