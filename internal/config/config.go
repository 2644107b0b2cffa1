// Package config provides YAML-based game configuration loading and
// difficulty management for Math Heroes.
package config

import "time"

// MathHeroesConfig contains all tuning for the Math Heroes game.
type MathHeroesConfig struct {
	Lanes      LanesConfig      `yaml:"lanes"`
	Monsters   MonstersConfig   `yaml:"monsters"`
	Player     PlayerConfig     `yaml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Questions  QuestionsConfig  `yaml:"questions"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LanesConfig describes lane geometry in world units.
// Monsters enter at StartX and arrive at the castle once X <= EndX.
type LanesConfig struct {
	Count  int     `yaml:"count"`
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
}

// MonstersConfig defines monster movement and population.
type MonstersConfig struct {
	BaseSpeed  float64       `yaml:"base_speed"` // world units per second
	SpawnDelay time.Duration `yaml:"spawn_delay"`
	MaxAlive   int           `yaml:"max_alive"`
	Health     int           `yaml:"health"`
}

// PlayerConfig defines the player's hearts.
type PlayerConfig struct {
	MaxHearts      int `yaml:"max_hearts"`
	StartingHearts int `yaml:"starting_hearts"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	PointsPerCorrect int `yaml:"points_per_correct"`
	LevelThreshold   int `yaml:"level_threshold"` // monsters defeated to clear a level
}

// TimingConfig holds every fixed delay used by the game.
type TimingConfig struct {
	HelpReveal      time.Duration `yaml:"help_reveal"`
	Feedback        time.Duration `yaml:"feedback"`
	LevelTransition time.Duration `yaml:"level_transition"`
	GameOver        time.Duration `yaml:"game_over"`
	Message         time.Duration `yaml:"message"`
}

// QuestionsConfig sets the number domains for question generation.
type QuestionsConfig struct {
	EasyMax        int `yaml:"easy_max"` // max count/sum at difficulty 1
	HardMax        int `yaml:"hard_max"` // max count/sum above difficulty 1
	LevelsPerTier  int `yaml:"levels_per_tier"`
	DistractorSpan int `yaml:"distractor_span"` // choices range up to max+span
}

// DifficultyConfig defines how difficulty changes across levels.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`          // false keeps questions at tier 1
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // speed scale applied to base speed
	SpeedPerLevel   float64 `yaml:"speed_per_level"`  // extra fraction of base speed per level; 0 = constant
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
// Empty input maps to normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
