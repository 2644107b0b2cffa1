package mathheroes

import "time"

// Phase is the top-level progression state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the complete mutable gameplay state for one level.
// A fresh State is swapped in whenever a level starts.
type State struct {
	Mode      Mode
	Phase     Phase
	Score     int
	Hearts    int
	MaxHearts int
	Streak    int
	Level     int
	Defeated  int // monsters destroyed by correct answers this level

	Question *Question
	Resolved bool // Question was answered correctly; waiting for the next one

	Monsters []Monster // spawn order

	Paused     bool
	HelpActive bool
	HelpUsed   bool
	Revealed   []RevealedObject

	Message   string // Owlbert's current line, empty when hidden
	HelpNudge bool   // help button is highlighted after a wrong answer

	nextMonsterID int
}

// newState returns the state a level starts from.
func newState(mode Mode, level, score, hearts, maxHearts int) State {
	return State{
		Mode:      mode,
		Phase:     PhasePlaying,
		Score:     score,
		Hearts:    hearts,
		MaxHearts: maxHearts,
		Level:     level,
		Monsters:  make([]Monster, 0, 4),
	}
}

// Snapshot is a read-only copy of State for the presentation layer.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Phase      Phase
	Score      int
	Hearts     int
	MaxHearts  int
	Streak     int
	Level      int
	Defeated   int
	Threshold  int
	Question   *Question
	Resolved   bool
	Monsters   []Monster
	Paused     bool
	HelpActive bool
	HelpUsed   bool
	HelpLabel  string
	Revealed   []RevealedObject
	Message    string
	HelpNudge  bool
	PlayTime   time.Duration // game clock; stands still while paused or helping
	Exit       bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	st := &g.state
	snap := Snapshot{
		Tick:       g.tick,
		Mode:       st.Mode,
		Phase:      st.Phase,
		Score:      st.Score,
		Hearts:     st.Hearts,
		MaxHearts:  st.MaxHearts,
		Streak:     st.Streak,
		Level:      st.Level,
		Defeated:   st.Defeated,
		Threshold:  g.cfg.Scoring.LevelThreshold,
		Question:   st.Question.clone(),
		Resolved:   st.Resolved,
		Monsters:   append([]Monster(nil), st.Monsters...),
		Paused:     st.Paused,
		HelpActive: st.HelpActive,
		HelpUsed:   st.HelpUsed,
		Revealed:   append([]RevealedObject(nil), st.Revealed...),
		Message:    st.Message,
		HelpNudge:  st.HelpNudge,
		PlayTime:   g.sched.GameNow(),
		Exit:       g.exit,
	}
	if st.Question != nil {
		snap.HelpLabel = st.Question.HelpLabel()
	}
	return snap
}
