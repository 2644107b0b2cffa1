// mathheroes is a terminal math game for young children: answer counting
// and addition questions to stop the Silly Shadows before they reach the
// castle.
//
// Usage:
//
//	mathheroes list               - List game modes
//	mathheroes play <mode>        - Play counting or addition
//	mathheroes menu               - Intro and mode picker
//	mathheroes serve              - Start SSH server for remote play
//	mathheroes scores <mode>      - Show high scores for a mode
//	mathheroes reset-flags        - Forget progress (intro, unlocks)
//
// Global flags (also read from MATHHEROES_* environment variables and .env):
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.mathheroes/mathheroes.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes.
	_ "github.com/vovakirdan/math-heroes/internal/games/mathheroes"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathheroes",
	Short: "Math Heroes - stop the shadows with counting and addition",
	Long: `Math Heroes is a terminal math game for young children.

Silly Shadows walk toward the castle. Answer Owlbert's question to stop
the one in front. Finish a counting level to unlock addition.

Available commands:
  list         - Show the game modes
  play         - Play a mode directly
  menu         - Intro and mode picker
  serve        - Start SSH server for remote play
  scores       - View high scores
  reset-flags  - Forget saved progress

Examples:
  mathheroes menu
  mathheroes play counting
  mathheroes play addition --difficulty easy
  mathheroes serve --ssh :2222
  mathheroes scores counting`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", storage.DefaultPath, "Path to the progress and scores database")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file (games log nowhere by default)")
	pf.Bool("no-color", false, "Disable colors")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetFlagsCmd)
}
