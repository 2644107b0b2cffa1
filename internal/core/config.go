package core

import "time"

const (
	defaultScreenW  = 80
	defaultScreenH  = 24
	defaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset: terminal size,
// simulation rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // simulation steps per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  defaultScreenW,
		ScreenH:  defaultScreenH,
		TickRate: defaultTickRate,
	}
}

// Normalized fills zero or negative fields with defaults. Seed is kept.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = defaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = defaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = defaultTickRate
	}
	return c
}

// TickInterval returns the simulated time covered by one Step.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the summary a game reports to the platform after each
// Step. Exit asks the platform to leave the game (menu or quit).
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
	Exit     bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
