package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mathheroes.yaml
var defaultMathHeroesYAML []byte

// DefaultMathHeroesConfig returns the built-in Math Heroes configuration.
// It mirrors defaults/mathheroes.yaml and is used if the embedded file
// cannot be parsed.
func DefaultMathHeroesConfig() MathHeroesConfig {
	return MathHeroesConfig{
		Lanes: LanesConfig{
			Count:  3,
			StartX: 1230,
			EndX:   100,
		},
		Monsters: MonstersConfig{
			BaseSpeed:  50,
			SpawnDelay: 3 * time.Second,
			MaxAlive:   3,
			Health:     1,
		},
		Player: PlayerConfig{
			MaxHearts:      3,
			StartingHearts: 3,
		},
		Scoring: ScoringConfig{
			PointsPerCorrect: 10,
			LevelThreshold:   10,
		},
		Timing: TimingConfig{
			HelpReveal:      600 * time.Millisecond,
			Feedback:        1500 * time.Millisecond,
			LevelTransition: 3 * time.Second,
			GameOver:        4 * time.Second,
			Message:         2 * time.Second,
		},
		Questions: QuestionsConfig{
			EasyMax:        5,
			HardMax:        10,
			LevelsPerTier:  5,
			DistractorSpan: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpeedMultiplier: 1.0,
			SpeedPerLevel:   0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMathHeroesYAML
}
