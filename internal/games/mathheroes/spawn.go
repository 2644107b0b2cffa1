package mathheroes

import "github.com/vovakirdan/math-heroes/internal/config"

// SpawnController decides where new monsters enter.
type SpawnController struct {
	src   Source
	lanes config.LanesConfig
	cfg   config.MonstersConfig
	diff  *config.DifficultyManager
}

// NewSpawnController creates a spawn controller.
func NewSpawnController(src Source, lanes config.LanesConfig, monsters config.MonstersConfig, diff *config.DifficultyManager) *SpawnController {
	return &SpawnController{
		src:   src,
		lanes: lanes,
		cfg:   monsters,
		diff:  diff,
	}
}

// MaybeSpawn adds a monster at the lane start unless the population cap is
// reached or the level is not in play.
func (s *SpawnController) MaybeSpawn(st *State) (Monster, bool) {
	if st.Phase != PhasePlaying || len(st.Monsters) >= s.cfg.MaxAlive {
		return Monster{}, false
	}

	st.nextMonsterID++
	m := Monster{
		ID:     st.nextMonsterID,
		Lane:   s.src.Intn(s.lanes.Count),
		Kind:   monsterKinds[s.src.Intn(len(monsterKinds))],
		Speed:  s.diff.Speed(s.cfg.BaseSpeed, st.Level),
		Health: s.cfg.Health,
		X:      s.lanes.StartX,
	}
	st.Monsters = append(st.Monsters, m)
	return m, true
}
