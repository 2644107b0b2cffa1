package mathheroes

import "time"

// MonsterKind is the look of a monster.
type MonsterKind string

const (
	KindGiggleGhost   MonsterKind = "giggle_ghost"
	KindGrumpyGrowler MonsterKind = "grumpy_growler"
	KindPumpkinPuff   MonsterKind = "pumpkin_puff"
)

var monsterKinds = []MonsterKind{KindGiggleGhost, KindGrumpyGrowler, KindPumpkinPuff}

// Monster is a shadow walking a lane toward the castle.
type Monster struct {
	ID     int
	Lane   int
	Speed  float64 // world units per second
	Health int
	Kind   MonsterKind
	X      float64
}

// MonsterSimulator moves monsters and detects castle arrivals.
type MonsterSimulator struct {
	castleX float64
}

// NewMonsterSimulator creates a simulator with the castle at castleX.
func NewMonsterSimulator(castleX float64) MonsterSimulator {
	return MonsterSimulator{castleX: castleX}
}

// Tick advances every monster by elapsed and removes those that reached
// the castle. Arrivals are returned in spawn order. Nothing moves while the
// state is paused, helping or out of play.
func (s MonsterSimulator) Tick(st *State, elapsed time.Duration) []Monster {
	if st.Paused || st.HelpActive || st.Phase != PhasePlaying || elapsed <= 0 {
		return nil
	}

	secs := elapsed.Seconds()
	var arrived []Monster
	kept := st.Monsters[:0]
	for _, m := range st.Monsters {
		m.X -= m.Speed * secs
		if m.X <= s.castleX {
			arrived = append(arrived, m)
			continue
		}
		kept = append(kept, m)
	}
	st.Monsters = kept
	return arrived
}
