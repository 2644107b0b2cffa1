package config

import "math"

// DifficultyManager derives per-level game parameters from configuration.
type DifficultyManager struct {
	cfg       DifficultyConfig
	questions QuestionsConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, questions QuestionsConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:       cfg,
		questions: questions,
	}
}

// IsEnabled returns whether question tiers rise with the level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Tier returns the question difficulty for a level: level/LevelsPerTier + 1.
// With progression disabled the tier stays at 1.
func (d *DifficultyManager) Tier(level int) int {
	if !d.cfg.Enabled {
		return 1
	}
	per := d.questions.LevelsPerTier
	if per <= 0 {
		per = 5
	}
	if level < 0 {
		level = 0
	}
	return level/per + 1
}

// Speed returns the monster speed for a level.
// The default per-level scaling is zero, so speed stays constant.
func (d *DifficultyManager) Speed(baseSpeed float64, level int) float64 {
	mult := d.cfg.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	extra := math.Max(0, d.cfg.SpeedPerLevel) * float64(max(level-1, 0))
	return baseSpeed * mult * (1 + extra)
}
