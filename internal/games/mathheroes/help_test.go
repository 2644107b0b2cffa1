package mathheroes

import (
	"testing"
	"time"
)

func additionQuestion(a, b int) *Question {
	sym := additionSymbols[0]
	return &Question{
		ID:      "test",
		Type:    ModeAddition,
		Prompt:  "test",
		GroupA:  ObjectGroup{Symbol: sym, Count: a},
		GroupB:  &ObjectGroup{Symbol: sym, Count: b},
		Answer:  a + b,
		Choices: [3]int{a + b, a + b + 1, a + b - 1},
	}
}

func TestHelpRevealOrder(t *testing.T) {
	g, _ := newTestGame(t, ModeAddition, nil)
	g.state.Question = additionQuestion(2, 1)

	if !g.ActivateHelp() {
		t.Fatal("ActivateHelp refused")
	}
	if len(g.state.Revealed) != 0 {
		t.Fatal("nothing should be revealed before the first interval")
	}

	g.Advance(599 * time.Millisecond)
	if len(g.state.Revealed) != 0 {
		t.Fatalf("revealed %d objects before 600ms", len(g.state.Revealed))
	}
	g.Advance(time.Millisecond)
	if len(g.state.Revealed) != 1 {
		t.Fatalf("revealed %d objects at 600ms, want 1", len(g.state.Revealed))
	}

	g.Advance(5 * time.Second)
	want := []RevealedObject{
		{Group: 0, Index: 0, Ordinal: 1},
		{Group: 0, Index: 1, Ordinal: 2},
		{Group: 1, Index: 0, Ordinal: 3},
	}
	if len(g.state.Revealed) != len(want) {
		t.Fatalf("revealed %d objects, want %d", len(g.state.Revealed), len(want))
	}
	for i, w := range want {
		got := g.state.Revealed[i]
		if got.Group != w.Group || got.Index != w.Index || got.Ordinal != w.Ordinal {
			t.Errorf("reveal %d = %+v, want %+v", i, got, w)
		}
	}
	if g.sched.Active(g.revealTimer) {
		t.Error("reveal timer should stop once every object is shown")
	}

	ordinals := 0
	for _, ev := range g.DrainEvents() {
		if ev.Kind == EventHelpReveal {
			ordinals++
			if ev.Ordinal != ordinals {
				t.Errorf("reveal event ordinal = %d, want %d", ev.Ordinal, ordinals)
			}
		}
	}
	if ordinals != 3 {
		t.Errorf("reveal events = %d, want 3", ordinals)
	}
}

func TestHelpSuspendsSimulation(t *testing.T) {
	g, _ := newTestGame(t, ModeCounting, nil)
	x := g.state.Monsters[0].X

	g.ActivateHelp()
	g.Advance(10 * time.Second)

	if len(g.state.Monsters) != 1 || g.state.Monsters[0].X != x {
		t.Fatalf("simulation ran during help: %+v", g.state.Monsters)
	}
	if g.TogglePause() {
		t.Error("manual pause should be ignored during help")
	}

	if !g.DeactivateHelp() {
		t.Fatal("DeactivateHelp refused")
	}
	if !g.state.HelpUsed || g.state.HelpActive || g.state.Revealed != nil {
		t.Errorf("unexpected state after help: used=%v active=%v revealed=%v",
			g.state.HelpUsed, g.state.HelpActive, g.state.Revealed)
	}

	g.Advance(time.Second)
	if g.state.Monsters[0].X >= x {
		t.Error("monsters should move again after help")
	}
}

func TestSubmitDuringHelpIsNoop(t *testing.T) {
	g, _ := newTestGame(t, ModeCounting, nil)
	g.state.Streak = 3
	g.state.Score = 30
	q := g.state.Question

	g.ActivateHelp()
	for _, c := range append(q.Choices[:], q.Answer) {
		if got := g.SubmitAnswer(c); got != OutcomeNone {
			t.Fatalf("SubmitAnswer(%d) during help = %s, want none", c, got)
		}
	}
	if g.state.Score != 30 || g.state.Streak != 3 || g.state.Hearts != 3 {
		t.Errorf("help submission changed state: score=%d streak=%d hearts=%d",
			g.state.Score, g.state.Streak, g.state.Hearts)
	}
}

func TestHelpEntryGuards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{"no question", func(g *Game) { g.state.Question = nil }},
		{"resolved", func(g *Game) { g.SubmitAnswer(g.state.Question.Answer) }},
		{"already active", func(g *Game) { g.ActivateHelp() }},
		{"paused", func(g *Game) { g.TogglePause() }},
		{"game over", func(g *Game) { g.state.Phase = PhaseGameOver }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, ModeCounting, nil)
			tt.setup(g)
			if g.ActivateHelp() {
				t.Error("ActivateHelp should refuse")
			}
		})
	}
}

func TestDeactivateWithoutHelp(t *testing.T) {
	g, _ := newTestGame(t, ModeCounting, nil)
	if g.DeactivateHelp() {
		t.Error("DeactivateHelp without an active session should be a no-op")
	}
	if g.state.HelpUsed {
		t.Error("HelpUsed set without a session")
	}
}

func TestHelpUsedResetsWithQuestion(t *testing.T) {
	g, _ := newTestGame(t, ModeCounting, nil)
	g.ActivateHelp()
	g.DeactivateHelp()

	g.SubmitAnswer(g.state.Question.Answer)
	g.Advance(g.cfg.Timing.Feedback)
	if g.state.HelpUsed {
		t.Error("HelpUsed should clear on the next question")
	}
}

func TestHelpPlan(t *testing.T) {
	q := Question{Type: ModeCounting, GroupA: ObjectGroup{Symbol: countingSymbols[0], Count: 4}}
	plan := helpPlan(&q)
	if len(plan) != 4 {
		t.Fatalf("plan length = %d, want 4", len(plan))
	}
	for i, obj := range plan {
		if obj.Ordinal != i+1 || obj.Group != 0 || obj.Index != i {
			t.Errorf("plan[%d] = %+v", i, obj)
		}
	}
}
