package mathheroes

import "github.com/vovakirdan/math-heroes/internal/config"

// ProgressionController owns level completion and game over.
type ProgressionController struct {
	threshold int
}

// NewProgressionController creates a controller.
func NewProgressionController(scoring config.ScoringConfig) ProgressionController {
	return ProgressionController{threshold: scoring.LevelThreshold}
}

// RecordDefeat counts a monster destroyed by a correct answer. It returns
// true exactly once per level, when the threshold is reached.
func (p ProgressionController) RecordDefeat(st *State) bool {
	if st.Phase != PhasePlaying {
		return false
	}
	st.Defeated++
	if st.Defeated < p.threshold {
		return false
	}
	st.Phase = PhaseLevelComplete
	st.Paused = true
	return true
}

// AdvanceLevel moves the state to the next level after completion.
func (p ProgressionController) AdvanceLevel(st *State) {
	st.Level++
	st.Defeated = 0
}

// ApplyArrivals charges one heart per arrival in order. Once hearts reach
// zero the remaining arrivals have no effect. It returns the number of
// hearts lost and whether the game just ended.
func (p ProgressionController) ApplyArrivals(st *State, arrivals []Monster) (lost int, over bool) {
	for range arrivals {
		if st.Phase != PhasePlaying || st.Hearts <= 0 {
			break
		}
		st.Hearts--
		lost++
		if st.Hearts == 0 {
			st.Phase = PhaseGameOver
			st.Paused = true
			over = true
		}
	}
	return lost, over
}
