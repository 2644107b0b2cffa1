package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/math-heroes/internal/config"
	"github.com/vovakirdan/math-heroes/internal/core"
	"github.com/vovakirdan/math-heroes/internal/games/mathheroes"
	"github.com/vovakirdan/math-heroes/internal/platform/tui"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

// envPrefix is the prefix for environment overrides, e.g. MATHHEROES_FPS.
const envPrefix = "MATHHEROES"

// settings are the process-wide options after flags, environment and
// .env have been merged.
type settings struct {
	FPS      int
	Seed     int64
	DBPath   string
	LogLevel log.Level
	LogFile  string
	NoColor  bool
}

var (
	v       = viper.New()
	current settings
)

// loadSettings merges .env, MATHHEROES_* variables and flags. Flags set
// on the command line win.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	s, err := readSettings(v)
	if err != nil {
		return err
	}
	current = s
	return nil
}

// readSettings extracts and checks settings from a bound viper instance.
func readSettings(v *viper.Viper) (settings, error) {
	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return settings{}, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}

	s := settings{
		FPS:      v.GetInt("fps"),
		Seed:     v.GetInt64("seed"),
		DBPath:   v.GetString("db"),
		LogLevel: level,
		LogFile:  v.GetString("log-file"),
		NoColor:  v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
	}
	if s.FPS <= 0 || s.FPS > 240 {
		return settings{}, fmt.Errorf("fps must be between 1 and 240, got %d", s.FPS)
	}
	return s, nil
}

// newLogger builds the process logger. Interactive commands pass
// interactive=true so logs never hit the alternate screen; they go to
// --log-file or nowhere.
func newLogger(s settings, interactive bool) (*log.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch {
	case s.LogFile != "":
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathheroes",
		Level:           s.LogLevel,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the database, logging instead of failing so games
// still run without persistence.
func openStore(s settings, logger *log.Logger) *storage.Store {
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "path", s.DBPath, "err", err)
		return nil
	}
	return store
}

// flagStore returns store as a FlagStore, or nil without a database.
func flagStore(store *storage.Store) core.FlagStore {
	if store == nil {
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(s settings) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = s.FPS
	cfg.Seed = s.Seed
	return cfg
}

// palette picks the screen colors.
func palette(s settings) tui.Palette {
	if s.NoColor {
		return tui.MonoPalette()
	}
	return tui.DefaultPalette()
}

// gameFlags are the tuning flags shared by play, menu and serve.
type gameFlags struct {
	configPath string
	difficulty string
	level      int
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&f.level, "level", 1, "Level to start at")
}

// configureGames loads tuning and installs it for registry-created games.
func (f *gameFlags) configureGames(store *storage.Store, logger *log.Logger) error {
	cfg, err := loadGameConfig(f.configPath, f.difficulty)
	if err != nil {
		return err
	}
	if f.level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", f.level)
	}

	mathheroes.Configure(mathheroes.Options{
		Config:     &cfg,
		Flags:      flagStore(store),
		Logger:     logger.WithPrefix("game"),
		StartLevel: f.level,
	})
	return nil
}

// loadGameConfig reads the YAML config and applies the preset.
func loadGameConfig(path, difficulty string) (config.MathHeroesConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.MathHeroesConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	cfg, err := config.LoadMathHeroes(path)
	if err != nil {
		return config.MathHeroesConfig{}, err
	}
	config.ApplyMathHeroesPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.MathHeroesConfig{}, err
	}
	return cfg, nil
}
