package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadMathHeroes("")
	if err != nil {
		t.Fatalf("LoadMathHeroes: %v", err)
	}
	if cfg != DefaultMathHeroesConfig() {
		t.Errorf("embedded yaml = %+v, want %+v", cfg, DefaultMathHeroesConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultMathHeroesConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "monsters:\n  spawn_delay: 1500ms\nscoring:\n  level_threshold: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMathHeroes(path)
	if err != nil {
		t.Fatalf("LoadMathHeroes: %v", err)
	}
	if cfg.Monsters.SpawnDelay != 1500*time.Millisecond {
		t.Errorf("SpawnDelay = %s, want 1.5s", cfg.Monsters.SpawnDelay)
	}
	if cfg.Scoring.LevelThreshold != 4 {
		t.Errorf("LevelThreshold = %d, want 4", cfg.Scoring.LevelThreshold)
	}
	if cfg.Monsters.BaseSpeed != 50 {
		t.Errorf("BaseSpeed = %g, want default 50", cfg.Monsters.BaseSpeed)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, err := LoadMathHeroes(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config: read") {
		t.Errorf("error = %q, want config: read prefix", err)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("questions:\n  easy_max: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMathHeroes(path); err == nil {
		t.Fatal("expected validation error for easy_max 2")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", configFile), []byte("lanes:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMathHeroes("")
	if err != nil {
		t.Fatalf("LoadMathHeroes: %v", err)
	}
	if cfg.Lanes.Count != 5 {
		t.Errorf("Lanes.Count = %d, want 5", cfg.Lanes.Count)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MathHeroesConfig)
		field  string
	}{
		{"no lanes", func(c *MathHeroesConfig) { c.Lanes.Count = 0 }, "lanes.count"},
		{"start before end", func(c *MathHeroesConfig) { c.Lanes.StartX = 50 }, "lanes.start_x"},
		{"zero speed", func(c *MathHeroesConfig) { c.Monsters.BaseSpeed = 0 }, "monsters.base_speed"},
		{"zero spawn delay", func(c *MathHeroesConfig) { c.Monsters.SpawnDelay = 0 }, "monsters.spawn_delay"},
		{"no cap", func(c *MathHeroesConfig) { c.Monsters.MaxAlive = 0 }, "monsters.max_alive"},
		{"starting above max", func(c *MathHeroesConfig) { c.Player.StartingHearts = 4 }, "player.starting_hearts"},
		{"zero threshold", func(c *MathHeroesConfig) { c.Scoring.LevelThreshold = 0 }, "scoring.level_threshold"},
		{"negative reveal", func(c *MathHeroesConfig) { c.Timing.HelpReveal = -time.Second }, "timing.help_reveal"},
		{"tiny easy domain", func(c *MathHeroesConfig) { c.Questions.EasyMax = 2 }, "questions.easy_max"},
		{"tiny hard domain", func(c *MathHeroesConfig) { c.Questions.HardMax = 1 }, "questions.hard_max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMathHeroesConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := DefaultMathHeroesConfig()
	cfg.Lanes.Count = 0
	cfg.Monsters.MaxAlive = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "lanes.count") || !strings.Contains(msg, "monsters.max_alive") {
		t.Errorf("joined error missing a field: %q", msg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		hearts  int
		mult    float64
		enabled bool
	}{
		{DifficultyEasy, 5, 0.75, true},
		{DifficultyNormal, 3, 1.0, true},
		{DifficultyHard, 2, 1.5, true},
		{DifficultyFixed, 3, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMathHeroesConfig()
			ApplyMathHeroesPreset(&cfg, tt.preset)
			if cfg.Player.StartingHearts != tt.hearts || cfg.Player.MaxHearts != tt.hearts {
				t.Errorf("hearts = %d/%d, want %d", cfg.Player.StartingHearts, cfg.Player.MaxHearts, tt.hearts)
			}
			if cfg.Difficulty.SpeedMultiplier != tt.mult {
				t.Errorf("SpeedMultiplier = %g, want %g", cfg.Difficulty.SpeedMultiplier, tt.mult)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"brutal", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
