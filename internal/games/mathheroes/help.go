package mathheroes

// RevealedObject is one object lit up during a help session.
type RevealedObject struct {
	Group   int // 0 for GroupA, 1 for GroupB
	Index   int // position within the group
	Ordinal int // 1-based count spoken aloud
	Symbol  Symbol
}

// helpPlan lists every object of q in count-along order: GroupA then GroupB.
func helpPlan(q *Question) []RevealedObject {
	plan := make([]RevealedObject, 0, q.TotalObjects())
	for i := 0; i < q.GroupA.Count; i++ {
		plan = append(plan, RevealedObject{Group: 0, Index: i, Symbol: q.GroupA.Symbol})
	}
	if q.GroupB != nil {
		for i := 0; i < q.GroupB.Count; i++ {
			plan = append(plan, RevealedObject{Group: 1, Index: i, Symbol: q.GroupB.Symbol})
		}
	}
	for i := range plan {
		plan[i].Ordinal = i + 1
	}
	return plan
}

// HelpSession walks the player through counting the current question.
// While active the simulation and answer scoring are suspended.
type HelpSession struct {
	plan []RevealedObject
}

// CanEnter reports whether help may start: inactive, with a live unresolved
// question while the level is in play.
func (h *HelpSession) CanEnter(st *State) bool {
	return !st.HelpActive &&
		!st.Paused &&
		st.Question != nil &&
		!st.Resolved &&
		st.Phase == PhasePlaying
}

// Enter starts a session. It returns false if help cannot start.
func (h *HelpSession) Enter(st *State) bool {
	if !h.CanEnter(st) {
		return false
	}
	st.HelpActive = true
	st.Revealed = st.Revealed[:0]
	h.plan = helpPlan(st.Question)
	return true
}

// RevealNext lights the next object. It returns the revealed object and
// whether more remain.
func (h *HelpSession) RevealNext(st *State) (RevealedObject, bool) {
	if !st.HelpActive || len(st.Revealed) >= len(h.plan) {
		return RevealedObject{}, false
	}
	obj := h.plan[len(st.Revealed)]
	st.Revealed = append(st.Revealed, obj)
	return obj, len(st.Revealed) < len(h.plan)
}

// Exit ends the session and marks help as used for this question.
func (h *HelpSession) Exit(st *State) bool {
	if !st.HelpActive {
		return false
	}
	st.HelpActive = false
	st.HelpUsed = true
	st.Revealed = nil
	h.plan = nil
	return true
}
