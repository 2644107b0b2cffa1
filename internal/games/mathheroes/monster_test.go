package mathheroes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/math-heroes/internal/config"
)

func TestSimulatorArrivalOrder(t *testing.T) {
	sim := NewMonsterSimulator(100)
	st := newState(ModeCounting, 1, 0, 3, 3)
	st.Monsters = []Monster{
		{ID: 1, Speed: 50, X: 105},
		{ID: 2, Speed: 50, X: 150},
		{ID: 3, Speed: 50, X: 101},
	}

	arrived := sim.Tick(&st, 200*time.Millisecond)

	if len(arrived) != 2 || arrived[0].ID != 1 || arrived[1].ID != 3 {
		t.Fatalf("arrivals = %+v, want IDs 1 then 3", arrived)
	}
	if len(st.Monsters) != 1 || st.Monsters[0].ID != 2 || st.Monsters[0].X != 140 {
		t.Fatalf("remaining = %+v, want monster 2 at 140", st.Monsters)
	}

	if again := sim.Tick(&st, 0); len(again) != 0 {
		t.Error("a zero tick must not report arrivals")
	}
}

func TestSimulatorSuspended(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
	}{
		{"paused", func(s *State) { s.Paused = true }},
		{"help", func(s *State) { s.HelpActive = true }},
		{"level complete", func(s *State) { s.Phase = PhaseLevelComplete }},
		{"game over", func(s *State) { s.Phase = PhaseGameOver }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(ModeCounting, 1, 0, 3, 3)
			st.Monsters = []Monster{{ID: 1, Speed: 50, X: 101}}
			tt.setup(&st)

			if arrived := NewMonsterSimulator(100).Tick(&st, time.Second); len(arrived) != 0 {
				t.Errorf("arrivals while suspended: %+v", arrived)
			}
			if st.Monsters[0].X != 101 {
				t.Errorf("monster moved to %g", st.Monsters[0].X)
			}
		})
	}
}

func TestSpawnControllerCap(t *testing.T) {
	cfg := config.DefaultMathHeroesConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Questions)
	sp := NewSpawnController(rand.New(rand.NewSource(5)), cfg.Lanes, cfg.Monsters, diff)
	st := newState(ModeCounting, 1, 0, 3, 3)

	for i := 0; i < 10; i++ {
		m, ok := sp.MaybeSpawn(&st)
		if i < cfg.Monsters.MaxAlive {
			if !ok {
				t.Fatalf("spawn %d refused under the cap", i)
			}
			if m.Lane < 0 || m.Lane >= cfg.Lanes.Count {
				t.Errorf("lane %d out of range", m.Lane)
			}
			if m.Speed != cfg.Monsters.BaseSpeed || m.Health != 1 || m.X != cfg.Lanes.StartX {
				t.Errorf("unexpected monster %+v", m)
			}
			if m.ID != i+1 {
				t.Errorf("ID = %d, want %d", m.ID, i+1)
			}
		} else if ok {
			t.Fatalf("spawn %d accepted above the cap", i)
		}
	}
	if len(st.Monsters) != cfg.Monsters.MaxAlive {
		t.Errorf("population = %d, want %d", len(st.Monsters), cfg.Monsters.MaxAlive)
	}
}

func TestSpawnControllerKinds(t *testing.T) {
	cfg := config.DefaultMathHeroesConfig()
	cfg.Monsters.MaxAlive = 1000
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Questions)
	sp := NewSpawnController(rand.New(rand.NewSource(8)), cfg.Lanes, cfg.Monsters, diff)
	st := newState(ModeCounting, 1, 0, 3, 3)

	kinds := map[MonsterKind]bool{}
	lanes := map[int]bool{}
	for i := 0; i < 200; i++ {
		m, _ := sp.MaybeSpawn(&st)
		kinds[m.Kind] = true
		lanes[m.Lane] = true
	}
	if len(kinds) != len(monsterKinds) {
		t.Errorf("kinds seen = %v", kinds)
	}
	if len(lanes) != cfg.Lanes.Count {
		t.Errorf("lanes seen = %v", lanes)
	}
}

func TestProgressionApplyArrivals(t *testing.T) {
	p := NewProgressionController(config.DefaultMathHeroesConfig().Scoring)
	st := newState(ModeCounting, 1, 0, 2, 3)
	arrivals := []Monster{{ID: 1}, {ID: 2}, {ID: 3}}

	lost, over := p.ApplyArrivals(&st, arrivals)

	if lost != 2 || !over {
		t.Errorf("lost, over = %d, %v; want 2, true", lost, over)
	}
	if st.Hearts != 0 || st.Phase != PhaseGameOver {
		t.Errorf("hearts/phase = %d/%s", st.Hearts, st.Phase)
	}

	lost, over = p.ApplyArrivals(&st, arrivals)
	if lost != 0 || over || st.Hearts != 0 {
		t.Error("arrivals after game over must have no effect")
	}
}

func TestProgressionRecordDefeat(t *testing.T) {
	scoring := config.DefaultMathHeroesConfig().Scoring
	scoring.LevelThreshold = 3
	p := NewProgressionController(scoring)
	st := newState(ModeCounting, 1, 0, 3, 3)

	fired := 0
	for i := 0; i < 6; i++ {
		if p.RecordDefeat(&st) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("level complete fired %d times", fired)
	}
	if st.Defeated != 3 {
		t.Errorf("Defeated = %d, want 3 (frozen after completion)", st.Defeated)
	}

	p.AdvanceLevel(&st)
	if st.Level != 2 || st.Defeated != 0 {
		t.Errorf("after advance level=%d defeated=%d", st.Level, st.Defeated)
	}
}
