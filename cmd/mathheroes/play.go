package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/core"
	"github.com/vovakirdan/math-heroes/internal/games/mathheroes"
	"github.com/vovakirdan/math-heroes/internal/platform/tui"
	"github.com/vovakirdan/math-heroes/internal/registry"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play counting or addition",
	Long: `Start playing the given mode.

Controls:
  1/2/3      - Pick an answer
  H          - Count together with Owlbert
  Enter      - Leave counting help
  P/Esc      - Pause
  R          - Play again (after game over)
  B          - Leave (when paused or after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 hearts, slower shadows
  normal - 3 hearts
  hard   - 2 hearts, faster shadows
  fixed  - Questions stay at the easiest range

Addition unlocks after finishing a counting level.

Examples:
  mathheroes play counting
  mathheroes play addition --difficulty easy
  mathheroes play counting --level 3
  mathheroes play counting --config ./my-heroes.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(mathheroes.ModeCounting), string(mathheroes.ModeAddition)},
	RunE:      runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := mathheroes.ParseMode(args[0])
	if err != nil || !registry.Exists(args[0]) {
		return fmt.Errorf("unknown mode %q, run 'mathheroes list' to see modes", args[0])
	}

	logger, closer, err := newLogger(current, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(current, logger)
	if store != nil {
		defer store.Close()
	}

	flags := flagStore(store)
	if mode == mathheroes.ModeAddition && flags != nil && !core.AdditionUnlocked(flags) {
		return fmt.Errorf("addition is locked: finish a counting level first ('mathheroes play counting')")
	}

	if err := playFlags.configureGames(store, logger); err != nil {
		return err
	}

	game, err := registry.Create(args[0])
	if err != nil {
		return err
	}

	best := bestScore(store, game.ID(), logger)

	logger.Info("starting game", "mode", mode, "level", playFlags.level, "difficulty", playFlags.difficulty)
	final, err := tui.Run(game, store, runtimeConfig(current),
		tui.WithPalette(palette(current)),
		tui.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	if final.State.GameOver {
		fmt.Printf("Great effort, Hero! Score: %d  Level: %d\n", final.State.Score, final.State.Level)
		if store != nil && final.State.Score > best {
			fmt.Println("New best score!")
		}
	}
	return nil
}

// bestScore returns the mode's high score before this run, or 0.
func bestScore(store *storage.Store, gameID string, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("read high score", "mode", gameID, "err", err)
		return 0
	}
	return best
}
