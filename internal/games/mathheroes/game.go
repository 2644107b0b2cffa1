// Package mathheroes implements the Math Heroes gameplay: shadows walk the
// lanes toward the castle and the player stops them by answering counting
// and addition questions.
package mathheroes

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-heroes/internal/config"
	"github.com/vovakirdan/math-heroes/internal/core"
	"github.com/vovakirdan/math-heroes/internal/registry"
)

// Owlbert's lines.
const (
	MessageCorrect   = "Great job! That's correct!"
	MessageIncorrect = "Nice try! Let's count together."
	MessageArrival   = "Oh no! A shadow got through!"
)

// IntroLines is Owlbert's greeting on a player's first visit.
var IntroLines = []string{
	"Hi there, Hero! The Math Kingdom needs your help!",
	"Silly Shadows are trying to sneak into the castle.",
	"Use your math powers to help Captain Count and Wizard Plus!",
}

// Options configures games created through the registry.
type Options struct {
	Config     *config.MathHeroesConfig // nil uses DefaultMathHeroesConfig
	Flags      core.FlagStore           // nil uses a fresh core.MemoryFlags
	Logger     *log.Logger              // nil discards
	StartLevel int                      // 0 starts at level 1
}

var (
	optionsMu sync.RWMutex
	options   Options
)

// Configure sets the options used by registry-created games.
func Configure(opts Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	options = opts
}

func currentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return options
}

func init() {
	for _, mode := range []Mode{ModeCounting, ModeAddition} {
		registry.Register(registry.GameInfo{ID: string(mode), Title: modeTitle(mode)}, func() registry.Game {
			return New(mode, currentOptions())
		})
	}
}

func modeTitle(mode Mode) string {
	if mode == ModeAddition {
		return "Math Heroes: Addition"
	}
	return "Math Heroes: Counting"
}

// Game orchestrates one Math Heroes run. It is driven from a single
// goroutine: Step or Advance for time, the intent methods for input.
type Game struct {
	mode       Mode
	cfg        config.MathHeroesConfig
	flags      core.FlagStore
	logger     *log.Logger
	startLevel int

	runtime   core.RuntimeConfig
	rng       *rand.Rand
	sched     *core.Scheduler
	diff      *config.DifficultyManager
	questions *QuestionGenerator
	spawner   *SpawnController
	sim       MonsterSimulator
	eval      AnswerEvaluator
	progress  ProgressionController
	help      HelpSession

	state  State
	events []Event
	tick   uint64
	exit   bool

	spawnTimer    core.Timer
	feedbackTimer core.Timer
	revealTimer   core.Timer
	messageTimer  core.Timer
	nudgeTimer    core.Timer
}

// New creates a game in the given mode. Call Reset before use.
func New(mode Mode, opts Options) *Game {
	cfg := config.DefaultMathHeroesConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	flags := opts.Flags
	if flags == nil {
		flags = core.NewMemoryFlags(core.Flags{})
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		mode:       mode,
		cfg:        cfg,
		flags:      flags,
		logger:     logger,
		startLevel: max(opts.StartLevel, 1),
		runtime:    core.DefaultConfig(),
		sched:      core.NewScheduler(),
		diff:       config.NewDifficultyManager(cfg.Difficulty, cfg.Questions),
	}
}

// ID returns the game identifier, which is the mode name.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return modeTitle(g.mode)
}

// Reset seeds the game and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.setup(cfg)
	g.StartGame(g.mode)
}

func (g *Game) setup(cfg core.RuntimeConfig) {
	g.runtime = cfg.Normalized()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.questions = NewQuestionGenerator(g.rng, g.cfg.Questions)
	g.spawner = NewSpawnController(g.rng, g.cfg.Lanes, g.cfg.Monsters, g.diff)
	g.sim = NewMonsterSimulator(g.cfg.Lanes.EndX)
	g.eval = NewAnswerEvaluator(g.cfg.Scoring)
	g.progress = NewProgressionController(g.cfg.Scoring)
	g.tick = 0
	g.events = nil
	g.state = State{}
}

// StartGame begins a fresh run in mode and records that the player has
// played.
func (g *Game) StartGame(mode Mode) {
	if g.rng == nil {
		g.setup(g.runtime)
	}
	g.mode = mode
	g.exit = false
	g.updateFlags("has_played", func(f *core.Flags) bool {
		if f.HasPlayed {
			return false
		}
		f.HasPlayed = true
		return true
	})
	g.logger.Debug("game started", "mode", mode, "level", g.startLevel, "rising_tiers", g.diff.IsEnabled())
	g.beginLevel(g.startLevel, 0)
}

// beginLevel drops every pending timer and swaps in a fresh state.
func (g *Game) beginLevel(level, score int) {
	g.sched.Reset()
	g.spawnTimer = core.Timer{}
	g.feedbackTimer = core.Timer{}
	g.revealTimer = core.Timer{}
	g.messageTimer = core.Timer{}
	g.nudgeTimer = core.Timer{}

	nextID := g.state.nextMonsterID
	g.state = newState(g.mode, level, score, g.cfg.Player.StartingHearts, g.cfg.Player.MaxHearts)
	g.state.nextMonsterID = nextID
	g.help = HelpSession{}

	g.emit(Event{Kind: EventLevelStart, Level: level, Score: score})
	g.logger.Debug("level started", "level", level, "score", score, "generation", g.sched.Generation())
	g.spawnTimer = g.sched.Every(core.ClockGame, g.cfg.Monsters.SpawnDelay, g.spawn)
	g.spawn()
	g.nextQuestion()
}

func (g *Game) spawn() {
	if m, ok := g.spawner.MaybeSpawn(&g.state); ok {
		g.emit(Event{Kind: EventMonsterSpawned, MonsterID: m.ID})
	}
}

func (g *Game) nextQuestion() {
	if g.state.Phase != PhasePlaying {
		return
	}
	q := g.questions.Generate(g.state.Mode, g.diff.Tier(g.state.Level))
	g.state.Question = &q
	g.state.Resolved = false
	g.state.HelpUsed = false
	g.logger.Debug("question", "id", q.ID, "prompt", q.Prompt, "answer", q.Answer,
		"symbol", q.GroupA.Symbol.Name, "color", q.GroupA.Symbol.Color)
	g.emit(Event{Kind: EventQuestion, Text: q.Prompt})
}

// Step applies one frame of input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionHelp) {
		if g.state.HelpActive {
			g.DeactivateHelp()
		} else {
			g.ActivateHelp()
		}
	}
	if in.Has(core.ActionContinue) {
		g.DeactivateHelp()
	}
	if idx := in.Answer(); idx >= 0 {
		g.SubmitChoice(idx)
	}

	g.Advance(g.runtime.TickInterval())
	return core.StepResult{State: g.State()}
}

// Advance moves time forward by dt. Due timers fire first, then monsters
// move and arrivals are charged.
func (g *Game) Advance(dt time.Duration) {
	g.tick++
	g.sched.Advance(dt)

	arrivals := g.sim.Tick(&g.state, dt)
	if len(arrivals) == 0 {
		return
	}
	for _, m := range arrivals {
		g.emit(Event{Kind: EventMonsterArrived, MonsterID: m.ID})
	}
	lost, over := g.progress.ApplyArrivals(&g.state, arrivals)
	switch {
	case over:
		g.gameOver()
	case lost > 0:
		g.say(MessageArrival)
	}
}

// SubmitAnswer scores a numeric answer.
func (g *Game) SubmitAnswer(choice int) Outcome {
	outcome, hit := g.eval.Submit(&g.state, choice)
	switch outcome {
	case OutcomeIncorrect:
		g.emit(Event{Kind: EventIncorrect, Score: g.state.Score})
		g.nudge()
		g.say(MessageIncorrect)

	case OutcomeCorrect:
		g.emit(Event{Kind: EventCorrect, Score: g.state.Score})
		g.say(MessageCorrect)
		if hit != nil && hit.Destroyed {
			g.emit(Event{Kind: EventMonsterDefeated, MonsterID: hit.Monster.ID})
			if g.progress.RecordDefeat(&g.state) {
				g.completeLevel()
				return outcome
			}
		}
		g.feedbackTimer = g.sched.After(core.ClockGame, g.cfg.Timing.Feedback, g.nextQuestion)
	}
	return outcome
}

// SubmitChoice scores the choice at index (0..2) of the current question.
// Out-of-range indexes are ignored.
func (g *Game) SubmitChoice(index int) Outcome {
	q := g.state.Question
	if q == nil || index < 0 || index >= len(q.Choices) {
		return OutcomeNone
	}
	return g.SubmitAnswer(q.Choices[index])
}

// ActivateHelp starts a count-along session for the current question.
func (g *Game) ActivateHelp() bool {
	if !g.help.Enter(&g.state) {
		return false
	}
	g.clearNudge()
	g.syncClock()
	g.emit(Event{Kind: EventHelpStarted, Text: g.state.Question.HelpLabel()})
	g.revealTimer = g.sched.Every(core.ClockWall, g.cfg.Timing.HelpReveal, g.revealNext)
	g.logger.Debug("help started", "question", g.state.Question.ID, "objects", g.state.Question.TotalObjects())
	return true
}

func (g *Game) revealNext() {
	obj, more := g.help.RevealNext(&g.state)
	if obj.Ordinal > 0 {
		g.emit(Event{Kind: EventHelpReveal, Ordinal: obj.Ordinal})
	}
	if !more {
		g.sched.Cancel(g.revealTimer)
	}
}

// DeactivateHelp ends the help session and resumes play.
func (g *Game) DeactivateHelp() bool {
	if !g.help.Exit(&g.state) {
		return false
	}
	g.sched.Cancel(g.revealTimer)
	g.syncClock()
	g.emit(Event{Kind: EventHelpEnded})
	g.logger.Debug("help ended")
	return true
}

// TogglePause pauses or resumes play. Ignored during help and transitions.
func (g *Game) TogglePause() bool {
	if g.state.Phase != PhasePlaying || g.state.HelpActive {
		return false
	}
	g.state.Paused = !g.state.Paused
	g.syncClock()
	if g.state.Paused {
		g.emit(Event{Kind: EventPaused})
	} else {
		g.emit(Event{Kind: EventResumed})
	}
	return true
}

// syncClock freezes the game clock whenever play is suspended.
func (g *Game) syncClock() {
	if g.state.Paused || g.state.HelpActive {
		g.sched.Freeze()
		return
	}
	g.sched.Thaw()
}

func (g *Game) completeLevel() {
	st := &g.state
	g.sched.Cancel(g.spawnTimer)
	g.sched.Cancel(g.feedbackTimer)
	g.syncClock()

	if st.Mode == ModeCounting {
		g.updateFlags("addition_unlocked", func(f *core.Flags) bool {
			if f.AdditionUnlocked {
				return false
			}
			f.AdditionUnlocked = true
			return true
		})
	}

	completed := st.Level
	g.progress.AdvanceLevel(st)
	g.emit(Event{Kind: EventLevelComplete, Level: completed, Score: st.Score})
	g.logger.Debug("level complete", "mode", st.Mode, "level", completed, "score", st.Score)

	g.sched.After(core.ClockWall, g.cfg.Timing.LevelTransition, func() {
		g.beginLevel(g.state.Level, g.state.Score)
	})
}

func (g *Game) gameOver() {
	st := &g.state
	g.sched.Cancel(g.spawnTimer)
	g.sched.Cancel(g.feedbackTimer)
	g.syncClock()

	g.emit(Event{Kind: EventGameOver, Level: st.Level, Score: st.Score})
	g.logger.Debug("game over", "mode", st.Mode, "level", st.Level, "score", st.Score, "stopped", st.Defeated,
		"play_time", g.sched.GameNow().Round(time.Second))

	g.sched.After(core.ClockWall, g.cfg.Timing.GameOver, func() {
		g.exit = true
		g.emit(Event{Kind: EventExit})
	})
}

// nudge highlights the help button for as long as Owlbert's line shows.
func (g *Game) nudge() {
	g.state.HelpNudge = true
	g.sched.Cancel(g.nudgeTimer)
	g.nudgeTimer = g.sched.After(core.ClockWall, g.cfg.Timing.Message, func() {
		g.state.HelpNudge = false
	})
	g.emit(Event{Kind: EventHelpNudge})
}

func (g *Game) clearNudge() {
	g.state.HelpNudge = false
	g.sched.Cancel(g.nudgeTimer)
}

// say shows an Owlbert line, replacing any current one.
func (g *Game) say(text string) {
	g.state.Message = text
	g.sched.Cancel(g.messageTimer)
	g.messageTimer = g.sched.After(core.ClockWall, g.cfg.Timing.Message, func() {
		g.state.Message = ""
	})
	g.emit(Event{Kind: EventMessage, Text: text})
}

// updateFlags applies change to the stored flags. Failures are logged and
// play continues.
func (g *Game) updateFlags(name string, change func(*core.Flags) bool) {
	f, err := g.flags.LoadFlags()
	if err != nil {
		g.logger.Warn("load flags", "flag", name, "err", err)
		return
	}
	if !change(&f) {
		return
	}
	if err := g.flags.SaveFlags(f); err != nil {
		g.logger.Warn("save flags", "flag", name, "err", err)
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.state.Paused && g.state.Phase == PhasePlaying,
		Exit:     g.exit,
	}
}
