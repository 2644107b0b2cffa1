package core

import "time"

// Clock selects the timeline a scheduled callback runs on.
type Clock int

const (
	// ClockGame timers stop accruing time while the scheduler is frozen
	// (pause, help, level transitions).
	ClockGame Clock = iota
	// ClockWall timers always run.
	ClockWall
)

// minInterval bounds periodic timers so a single Advance always terminates.
const minInterval = time.Millisecond

// Timer is a cancellation token returned for every scheduled callback.
// The zero Timer refers to nothing.
type Timer struct {
	id  uint64
	gen uint64
}

// IsZero reports whether the token was never issued.
func (t Timer) IsZero() bool {
	return t.id == 0
}

type timerEntry struct {
	id       uint64
	clock    Clock
	due      time.Duration // absolute time on its clock
	interval time.Duration // 0 for one-shot timers
	fn       func()
}

// Scheduler is a single-threaded virtual-time scheduler driven by the game
// tick. Nothing runs between calls to Advance, so callbacks may freely
// mutate game state without locking.
//
// Reset drops every pending callback and bumps the generation, so tokens
// and closures from a previous round can never fire against fresh state.
type Scheduler struct {
	gen     uint64
	nextID  uint64
	timers  map[uint64]*timerEntry
	frozen  bool
	wallNow time.Duration
	gameNow time.Duration
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		gen:    1,
		timers: make(map[uint64]*timerEntry),
	}
}

// After schedules fn to run once, d from now on the given clock.
func (s *Scheduler) After(clock Clock, d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return s.add(clock, d, 0, fn)
}

// Every schedules fn to run every d on the given clock, first after d.
func (s *Scheduler) Every(clock Clock, d time.Duration, fn func()) Timer {
	if d < minInterval {
		d = minInterval
	}
	return s.add(clock, d, d, fn)
}

func (s *Scheduler) add(clock Clock, delay, interval time.Duration, fn func()) Timer {
	s.nextID++
	e := &timerEntry{
		id:       s.nextID,
		clock:    clock,
		due:      s.now(clock) + delay,
		interval: interval,
		fn:       fn,
	}
	s.timers[e.id] = e
	return Timer{id: e.id, gen: s.gen}
}

// Cancel stops a pending timer. Returns false if it already fired (one-shot),
// was cancelled, or belongs to an earlier generation.
func (s *Scheduler) Cancel(t Timer) bool {
	if !s.Active(t) {
		return false
	}
	delete(s.timers, t.id)
	return true
}

// Active reports whether the timer is still pending.
func (s *Scheduler) Active(t Timer) bool {
	if t.IsZero() || t.gen != s.gen {
		return false
	}
	_, ok := s.timers[t.id]
	return ok
}

// Reset cancels everything and starts a new generation.
// Clock readings are kept.
func (s *Scheduler) Reset() {
	s.gen++
	s.timers = make(map[uint64]*timerEntry)
	s.frozen = false
}

// Generation returns the current generation counter.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Freeze stops the game clock. Wall timers keep running.
func (s *Scheduler) Freeze() {
	s.frozen = true
}

// Thaw resumes the game clock.
func (s *Scheduler) Thaw() {
	s.frozen = false
}

// Frozen reports whether the game clock is stopped.
func (s *Scheduler) Frozen() bool {
	return s.frozen
}

// Now returns elapsed wall time.
func (s *Scheduler) Now() time.Duration {
	return s.wallNow
}

// GameNow returns elapsed game time (excludes frozen spans).
func (s *Scheduler) GameNow() time.Duration {
	return s.gameNow
}

func (s *Scheduler) now(clock Clock) time.Duration {
	if clock == ClockGame {
		return s.gameNow
	}
	return s.wallNow
}

// Advance moves both clocks forward by dt and runs every callback that
// becomes due, in due-time order (ties in scheduling order). Callbacks may
// schedule, cancel, freeze, thaw or reset; the changes apply to the rest of
// the same Advance. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}

	startWall := s.wallNow
	var cursor time.Duration
	fired := 0

	for {
		e, at := s.nextDue(startWall, cursor, dt)
		if e == nil {
			break
		}

		if !s.frozen {
			s.gameNow += at - cursor
		}
		cursor = at
		s.wallNow = startWall + cursor

		if e.interval > 0 {
			e.due += e.interval
		} else {
			delete(s.timers, e.id)
		}

		e.fn()
		fired++
	}

	if !s.frozen {
		s.gameNow += dt - cursor
	}
	s.wallNow = startWall + dt
	return fired
}

// nextDue finds the earliest timer due within the current Advance window.
func (s *Scheduler) nextDue(startWall, cursor, dt time.Duration) (*timerEntry, time.Duration) {
	var best *timerEntry
	var bestAt time.Duration

	for _, e := range s.timers {
		var at time.Duration
		switch e.clock {
		case ClockWall:
			at = e.due - startWall
		default:
			if s.frozen {
				continue
			}
			at = cursor + (e.due - s.gameNow)
		}
		if at < cursor {
			at = cursor
		}
		if at > dt {
			continue
		}
		if best == nil || at < bestAt || (at == bestAt && e.id < best.id) {
			best = e
			bestAt = at
		}
	}
	return best, bestAt
}
