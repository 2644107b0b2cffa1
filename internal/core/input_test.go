package core

import "testing"

func TestInputFrameAnswer(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{"empty", nil, -1},
		{"first", []Action{ActionAnswer1}, 0},
		{"third", []Action{ActionAnswer3}, 2},
		{"lowest wins", []Action{ActionAnswer3, ActionAnswer2}, 1},
		{"non answer", []Action{ActionHelp, ActionPause}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Answer(); got != tc.expected {
				t.Errorf("Answer() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHelp)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionHelp) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionHelp) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionHelp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionAnswer2.String() != "Answer2" {
		t.Errorf("String() = %q", ActionAnswer2.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
