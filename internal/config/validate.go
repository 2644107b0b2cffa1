package config

import (
	"errors"
	"fmt"
)

// minQuestionMax is the smallest count/sum ceiling that still leaves room
// for two distinct distractors.
const minQuestionMax = 3

// Validate reports every invalid setting in the configuration.
func (c MathHeroesConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Lanes.Count >= 1, "lanes.count must be at least 1, got %d", c.Lanes.Count)
	check(c.Lanes.StartX > c.Lanes.EndX, "lanes.start_x (%g) must be greater than lanes.end_x (%g)", c.Lanes.StartX, c.Lanes.EndX)
	check(c.Monsters.BaseSpeed > 0, "monsters.base_speed must be positive, got %g", c.Monsters.BaseSpeed)
	check(c.Monsters.SpawnDelay > 0, "monsters.spawn_delay must be positive, got %s", c.Monsters.SpawnDelay)
	check(c.Monsters.MaxAlive >= 1, "monsters.max_alive must be at least 1, got %d", c.Monsters.MaxAlive)
	check(c.Monsters.Health >= 1, "monsters.health must be at least 1, got %d", c.Monsters.Health)
	check(c.Player.MaxHearts >= 1, "player.max_hearts must be at least 1, got %d", c.Player.MaxHearts)
	check(c.Player.StartingHearts >= 1 && c.Player.StartingHearts <= c.Player.MaxHearts,
		"player.starting_hearts must be in [1, %d], got %d", c.Player.MaxHearts, c.Player.StartingHearts)
	check(c.Scoring.PointsPerCorrect >= 0, "scoring.points_per_correct must not be negative, got %d", c.Scoring.PointsPerCorrect)
	check(c.Scoring.LevelThreshold >= 1, "scoring.level_threshold must be at least 1, got %d", c.Scoring.LevelThreshold)
	check(c.Timing.HelpReveal > 0, "timing.help_reveal must be positive, got %s", c.Timing.HelpReveal)
	check(c.Timing.Feedback > 0, "timing.feedback must be positive, got %s", c.Timing.Feedback)
	check(c.Timing.LevelTransition > 0, "timing.level_transition must be positive, got %s", c.Timing.LevelTransition)
	check(c.Timing.GameOver > 0, "timing.game_over must be positive, got %s", c.Timing.GameOver)
	check(c.Timing.Message > 0, "timing.message must be positive, got %s", c.Timing.Message)
	check(c.Questions.EasyMax >= minQuestionMax, "questions.easy_max must be at least %d, got %d", minQuestionMax, c.Questions.EasyMax)
	check(c.Questions.HardMax >= minQuestionMax, "questions.hard_max must be at least %d, got %d", minQuestionMax, c.Questions.HardMax)
	check(c.Questions.LevelsPerTier >= 1, "questions.levels_per_tier must be at least 1, got %d", c.Questions.LevelsPerTier)
	check(c.Questions.DistractorSpan >= 0, "questions.distractor_span must not be negative, got %d", c.Questions.DistractorSpan)
	check(c.Difficulty.SpeedMultiplier > 0, "difficulty.speed_multiplier must be positive, got %g", c.Difficulty.SpeedMultiplier)
	check(c.Difficulty.SpeedPerLevel >= 0, "difficulty.speed_per_level must not be negative, got %g", c.Difficulty.SpeedPerLevel)

	return errors.Join(errs...)
}
