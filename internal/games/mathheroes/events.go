package mathheroes

// EventKind identifies something the presentation layer may react to.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventQuestion
	EventCorrect
	EventIncorrect
	EventHelpNudge // wrong answer; draw attention to the help button
	EventMonsterSpawned
	EventMonsterDefeated
	EventMonsterArrived
	EventHelpStarted
	EventHelpReveal
	EventHelpEnded
	EventLevelComplete
	EventGameOver
	EventMessage
	EventPaused
	EventResumed
	EventExit
)

var eventNames = map[EventKind]string{
	EventLevelStart:      "level_start",
	EventQuestion:        "question",
	EventCorrect:         "correct",
	EventIncorrect:       "incorrect",
	EventHelpNudge:       "help_nudge",
	EventMonsterSpawned:  "monster_spawned",
	EventMonsterDefeated: "monster_defeated",
	EventMonsterArrived:  "monster_arrived",
	EventHelpStarted:     "help_started",
	EventHelpReveal:      "help_reveal",
	EventHelpEnded:       "help_ended",
	EventLevelComplete:   "level_complete",
	EventGameOver:        "game_over",
	EventMessage:         "message",
	EventPaused:          "paused",
	EventResumed:         "resumed",
	EventExit:            "exit",
}

// String returns the event name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a notification queued for the presentation layer.
type Event struct {
	Kind      EventKind
	MonsterID int
	Ordinal   int // help reveal ordinal
	Level     int
	Score     int
	Text      string
}

// maxQueuedEvents bounds the queue when nobody drains it. The oldest
// events are dropped first.
const maxQueuedEvents = 256

func (g *Game) emit(ev Event) {
	if len(g.events) >= maxQueuedEvents {
		n := copy(g.events, g.events[1:])
		g.events = g.events[:n]
	}
	g.events = append(g.events, ev)
}

// DrainEvents returns queued events in order and clears the queue.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}
