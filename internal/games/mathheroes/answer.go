package mathheroes

import "github.com/vovakirdan/math-heroes/internal/config"

// Outcome is the result of submitting an answer.
type Outcome int

const (
	OutcomeNone Outcome = iota // submission ignored; nothing changed
	OutcomeCorrect
	OutcomeIncorrect
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Hit describes the monster struck by a correct answer.
type Hit struct {
	Monster   Monster
	Destroyed bool
}

// AnswerEvaluator scores submitted answers against the live question.
type AnswerEvaluator struct {
	points int
}

// NewAnswerEvaluator creates an evaluator.
func NewAnswerEvaluator(scoring config.ScoringConfig) AnswerEvaluator {
	return AnswerEvaluator{points: scoring.PointsPerCorrect}
}

// Accepts reports whether a submission would be scored right now.
func (e AnswerEvaluator) Accepts(st *State) bool {
	return st.Question != nil &&
		!st.Resolved &&
		!st.HelpActive &&
		!st.Paused &&
		st.Phase == PhasePlaying
}

// Submit scores choice against the current question.
// A correct answer damages the oldest monster; the returned Hit is nil when
// no monster was on the field.
func (e AnswerEvaluator) Submit(st *State, choice int) (Outcome, *Hit) {
	if !e.Accepts(st) {
		return OutcomeNone, nil
	}

	if choice != st.Question.Answer {
		st.Streak = 0
		return OutcomeIncorrect, nil
	}

	st.Score += e.points
	st.Streak++
	st.Resolved = true

	if len(st.Monsters) == 0 {
		return OutcomeCorrect, nil
	}
	st.Monsters[0].Health--
	hit := &Hit{Monster: st.Monsters[0]}
	if st.Monsters[0].Health <= 0 {
		hit.Destroyed = true
		st.Monsters = append(st.Monsters[:0], st.Monsters[1:]...)
	}
	return OutcomeCorrect, hit
}
