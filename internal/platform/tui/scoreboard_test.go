package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-heroes/internal/storage"
)

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "not being saved") {
		t.Errorf("missing no-store notice:\n%s", m.View())
	}
}

func TestScoreboardShowsScoresPerMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("counting", 70, 3); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if _, err := store.SaveScore("addition", 20, 1); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.modes) == 0 || m.modes[0].ID != "counting" {
		t.Fatalf("modes = %+v, want counting first", m.modes)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 70 {
		t.Fatalf("counting scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "Highest level: 3") {
		t.Errorf("stats line missing:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.modes[m.cursor].ID != "addition" {
		t.Fatalf("tab moved to %q, want addition", m.modes[m.cursor].ID)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 20 {
		t.Errorf("addition scores = %+v", m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.modes[m.cursor].ID != "counting" {
		t.Errorf("shift+tab moved to %q, want counting", m.modes[m.cursor].ID)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	back, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ScoreboardModel).IsGoingBack() || !isQuit(cmd) {
		t.Error("esc did not go back")
	}

	quit, _ := m.Update(runeKey('q'))
	if !quit.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit")
	}
}
