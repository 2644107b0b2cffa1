package mathheroes

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/vovakirdan/math-heroes/internal/config"
	"github.com/vovakirdan/math-heroes/internal/core"
)

// Mode selects the kind of questions a run asks.
type Mode string

const (
	ModeCounting Mode = "counting"
	ModeAddition Mode = "addition"
)

// ParseMode converts a CLI/menu value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCounting, ModeAddition:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("mathheroes: unknown mode %q (want counting or addition)", s)
	}
}

// Symbol is a countable object shown in a question.
type Symbol struct {
	Name  string
	Glyph rune
	Color core.Color
}

var countingSymbols = []Symbol{
	{"blue_dot", '●', core.ColorBrightBlue},
	{"red_dot", '●', core.ColorBrightRed},
	{"green_dot", '●', core.ColorBrightGreen},
	{"yellow_dot", '●', core.ColorBrightYellow},
	{"star", '★', core.ColorYellow},
	{"heart", '♥', core.ColorRed},
	{"sparkle", '✦', core.ColorBrightYellow},
	{"balloon", 'o', core.ColorBrightMagenta},
	{"apple", '♣', core.ColorGreen},
	{"orange", '◉', core.ColorOrange},
}

var additionSymbols = []Symbol{
	{"brick", '▪', core.ColorRed},
	{"target", '◎', core.ColorBrightRed},
	{"tennis_ball", '○', core.ColorBrightGreen},
	{"soccer_ball", '◍', core.ColorWhite},
	{"basketball", '●', core.ColorOrange},
	{"palette", '◆', core.ColorBrightMagenta},
	{"tent", '▲', core.ColorYellow},
	{"mask", '☺', core.ColorBrightCyan},
	{"kite", '◇', core.ColorCyan},
}

// ObjectGroup is a run of identical symbols.
type ObjectGroup struct {
	Symbol Symbol
	Count  int
}

// Question is one counting or addition problem with three choices.
// Questions are never mutated once generated.
type Question struct {
	ID      string
	Type    Mode
	Prompt  string
	GroupA  ObjectGroup
	GroupB  *ObjectGroup // addition only
	Answer  int
	Choices [3]int
}

// TotalObjects returns the number of objects across both groups.
func (q *Question) TotalObjects() int {
	n := q.GroupA.Count
	if q.GroupB != nil {
		n += q.GroupB.Count
	}
	return n
}

// HelpLabel returns the caption for the help button.
func (q *Question) HelpLabel() string {
	if q.Type == ModeAddition {
		return "Help me add"
	}
	return "Help me count"
}

// clone returns a deep copy safe to hand to the presentation layer.
func (q *Question) clone() *Question {
	if q == nil {
		return nil
	}
	c := *q
	if q.GroupB != nil {
		b := *q.GroupB
		c.GroupB = &b
	}
	return &c
}

// Source is the randomness a QuestionGenerator and SpawnController draw from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
	Read(p []byte) (int, error)
}

// QuestionGenerator builds questions for a difficulty tier.
type QuestionGenerator struct {
	src Source
	cfg config.QuestionsConfig
}

// NewQuestionGenerator creates a generator drawing from src.
func NewQuestionGenerator(src Source, cfg config.QuestionsConfig) *QuestionGenerator {
	return &QuestionGenerator{src: src, cfg: cfg}
}

// MaxValue returns the largest count or sum asked at the given difficulty.
func (g *QuestionGenerator) MaxValue(difficulty int) int {
	if difficulty <= 1 {
		return g.cfg.EasyMax
	}
	return g.cfg.HardMax
}

// Generate returns a new question of type t.
func (g *QuestionGenerator) Generate(t Mode, difficulty int) Question {
	limit := g.MaxValue(difficulty)
	if t == ModeAddition {
		return g.addition(limit)
	}
	return g.counting(limit)
}

func (g *QuestionGenerator) counting(maxCount int) Question {
	count := g.src.Intn(maxCount) + 1
	sym := countingSymbols[g.src.Intn(len(countingSymbols))]

	return Question{
		ID:      g.newID(),
		Type:    ModeCounting,
		Prompt:  fmt.Sprintf("How many %s?", string(sym.Glyph)),
		GroupA:  ObjectGroup{Symbol: sym, Count: count},
		Answer:  count,
		Choices: g.choices(count, maxCount),
	}
}

func (g *QuestionGenerator) addition(maxSum int) Question {
	sum := g.src.Intn(maxSum-1) + 2 // [2, maxSum]
	a := g.src.Intn(sum-1) + 1      // [1, sum-1]
	b := sum - a
	// Both groups share a symbol so the sum reads as one collection.
	sym := additionSymbols[g.src.Intn(len(additionSymbols))]

	return Question{
		ID:      g.newID(),
		Type:    ModeAddition,
		Prompt:  fmt.Sprintf("%d + %d = ?", a, b),
		GroupA:  ObjectGroup{Symbol: sym, Count: a},
		GroupB:  &ObjectGroup{Symbol: sym, Count: b},
		Answer:  sum,
		Choices: g.choices(sum, maxSum),
	}
}

// choices returns the correct value plus two distractors in shuffled order.
func (g *QuestionGenerator) choices(correct, limit int) [3]int {
	d := g.distractors(correct, 0, limit+g.cfg.DistractorSpan)
	out := [3]int{correct, d[0], d[1]}
	g.src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// distractors picks two distinct wrong answers in [lo, hi], preferring the
// neighbours of correct.
func (g *QuestionGenerator) distractors(correct, lo, hi int) [2]int {
	picked := make([]int, 0, 2)
	if correct-1 >= lo {
		picked = append(picked, correct-1)
	}
	if correct+1 <= hi {
		picked = append(picked, correct+1)
	}

	for len(picked) < 2 {
		pool := make([]int, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			if v != correct && !slices.Contains(picked, v) {
				pool = append(pool, v)
			}
		}
		if len(pool) == 0 {
			// Unreachable with a validated config (max >= 3).
			picked = append(picked, hi+len(picked)+1)
			continue
		}
		picked = append(picked, pool[g.src.Intn(len(pool))])
	}
	return [2]int{picked[0], picked[1]}
}

func (g *QuestionGenerator) newID() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

