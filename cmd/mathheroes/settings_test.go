package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func boundViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")
	fs.Int64("seed", 0, "")
	fs.String("db", "~/.mathheroes/mathheroes.db", "")
	fs.String("log-level", "info", "")
	fs.String("log-file", "", "")
	fs.Bool("no-color", false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		t.Fatalf("BindPFlags: %v", err)
	}
	return v
}

func TestReadSettingsDefaults(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	s, err := readSettings(boundViper(t))
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	if s.FPS != 60 || s.Seed != 0 || s.LogLevel != log.InfoLevel || s.NoColor {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestReadSettingsEnvironment(t *testing.T) {
	t.Setenv("MATHHEROES_FPS", "30")
	t.Setenv("MATHHEROES_LOG_LEVEL", "debug")
	t.Setenv("MATHHEROES_SEED", "42")

	s, err := readSettings(boundViper(t))
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	if s.FPS != 30 || s.Seed != 42 || s.LogLevel != log.DebugLevel {
		t.Errorf("environment not applied: %+v", s)
	}
}

func TestReadSettingsFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("MATHHEROES_FPS", "30")
	s, err := readSettings(boundViper(t, "--fps", "50"))
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	if s.FPS != 50 {
		t.Errorf("FPS = %d, want 50", s.FPS)
	}
}

func TestReadSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero fps", []string{"--fps", "0"}},
		{"huge fps", []string{"--fps", "1000"}},
		{"bad level", []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readSettings(boundViper(t, tt.args...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadGameConfigPresets(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	hard, err := loadGameConfig("", "hard")
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if hard.Player.StartingHearts != 2 {
		t.Errorf("hard starting hearts = %d, want 2", hard.Player.StartingHearts)
	}

	if _, err := loadGameConfig("", "impossible"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestLoadGameConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("lanes:\n  count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadGameConfig(path, ""); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestNewLoggerInteractiveDiscards(t *testing.T) {
	logger, closer, err := newLogger(settings{LogLevel: log.InfoLevel}, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closer.Close()
	if logger == nil {
		t.Fatal("nil logger")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heroes.log")
	logger, closer, err := newLogger(settings{LogLevel: log.InfoLevel, LogFile: path}, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello owlbert")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello owlbert") {
		t.Errorf("log file missing message: %q", data)
	}
}
