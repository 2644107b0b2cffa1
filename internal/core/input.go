package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionAnswer1         // 1, a - first answer choice
	ActionAnswer2         // 2, s - second answer choice
	ActionAnswer3         // 3, d - third answer choice
	ActionHelp            // h, ? - open the help session
	ActionContinue        // Enter, Space - leave the help session
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAnswer1:
		return "Answer1"
	case ActionAnswer2:
		return "Answer2"
	case ActionAnswer3:
		return "Answer3"
	case ActionHelp:
		return "Help"
	case ActionContinue:
		return "Continue"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// AnswerIndex returns the 0-based choice index for an answer action,
// or -1 when the action does not pick an answer.
func (a Action) AnswerIndex() int {
	switch a {
	case ActionAnswer1:
		return 0
	case ActionAnswer2:
		return 1
	case ActionAnswer3:
		return 2
	default:
		return -1
	}
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Answer returns the first answer index set in this frame, or -1.
func (f InputFrame) Answer() int {
	for _, a := range []Action{ActionAnswer1, ActionAnswer2, ActionAnswer3} {
		if f.Has(a) {
			return a.AnswerIndex()
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
