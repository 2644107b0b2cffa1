package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/platform/tui"
	"github.com/vovakirdan/math-heroes/internal/registry"
)

var menuFlags gameFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with Owlbert's intro and the mode picker",
	Long: `Start Math Heroes in interactive menu mode.

First-time players meet Owlbert. Use arrow keys or j/k to choose a mode
and Enter to play. When a game ends you come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  mathheroes menu
  mathheroes menu --fps 30
  mathheroes menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuFlags.register(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(current, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(current, logger)
	if store != nil {
		defer store.Close()
	}

	if err := menuFlags.configureGames(store, logger); err != nil {
		return err
	}

	cfg := runtimeConfig(current)
	for {
		result, err := tui.RunMenu(flagStore(store), cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("create game", "mode", result.GameID, "err", err)
			continue
		}

		if current.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		final, err := tui.Run(game, store, cfg,
			tui.WithPalette(palette(current)),
			tui.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		if final.Quit {
			return nil
		}
	}
}
