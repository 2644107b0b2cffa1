package mathheroes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/math-heroes/internal/core"
)

// Screen layout.
const (
	minWidth    = 44
	minHeight   = 18
	hudHeight   = 2
	castleWidth = 6
	panelHeight = 8
)

// Glyphs.
const (
	HeartFull  = '♥'
	HeartEmpty = '♡'
	LaneChar   = '·'
	WallChar   = '█'
	HiddenChar = '∙'
)

var monsterGlyphs = map[MonsterKind]struct {
	glyph rune
	color core.Color
}{
	KindGiggleGhost:   {'&', core.ColorBrightWhite},
	KindGrumpyGrowler: {'%', core.ColorBrightRed},
	KindPumpkinPuff:   {'@', core.ColorOrange},
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minWidth || h < minHeight {
		g.renderTooSmall(dst)
		return
	}

	st := &g.state
	g.renderHUD(dst)

	fieldTop := hudHeight
	fieldBottom := h - panelHeight - 1
	g.renderField(dst, fieldTop, fieldBottom)
	g.renderMessage(dst, fieldBottom)
	g.renderPanel(dst, h-panelHeight)

	switch {
	case st.HelpActive:
		g.renderHelp(dst)
	case st.Phase == PhaseLevelComplete:
		drawCenteredBox(dst, core.ColorBrightYellow,
			fmt.Sprintf("Level %d Complete!", st.Level-1),
			fmt.Sprintf("Score: %d", st.Score))
	case st.Phase == PhaseGameOver:
		drawCenteredBox(dst, core.ColorBrightMagenta,
			"Great effort, Hero!",
			fmt.Sprintf("Score: %d", st.Score),
			fmt.Sprintf("Monsters Stopped: %d", st.Defeated))
	case st.Paused:
		drawCenteredBox(dst, core.ColorBrightCyan, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderHUD draws hearts, score, streak and level.
func (g *Game) renderHUD(dst *core.Screen) {
	st := &g.state
	w := dst.Width()

	x := 1
	for i := 0; i < st.MaxHearts; i++ {
		if i < st.Hearts {
			dst.SetColor(x, 0, HeartFull, core.ColorBrightRed)
		} else {
			dst.SetColor(x, 0, HeartEmpty, core.ColorGray)
		}
		x += 2
	}

	score := fmt.Sprintf("Score: %d  Streak: %d", st.Score, st.Streak)
	dst.DrawTextColor(x+1, 0, score, core.ColorBrightWhite)

	level := fmt.Sprintf("Level %d", st.Level)
	dst.DrawTextColor(w-core.TextWidth(level)-1, 0, level, core.ColorBrightYellow)

	dst.DrawHLineColor(0, 1, w, '─', core.ColorGray)
}

// laneRow returns the screen row for a lane.
func laneRow(lane, lanes, top, bottom int) int {
	span := bottom - top
	if lanes <= 0 || span <= 0 {
		return top
	}
	step := span / lanes
	return top + step/2 + lane*step
}

// columnFor maps a world X position to a screen column right of the castle.
func (g *Game) columnFor(x float64, width int) int {
	left := castleWidth + 1
	right := width - 2
	start, end := g.cfg.Lanes.StartX, g.cfg.Lanes.EndX
	t := (x - end) / (start - end)
	return left + int(core.ClampF(t, 0, 1)*float64(right-left))
}

// renderField draws the castle, lanes and monsters.
func (g *Game) renderField(dst *core.Screen, top, bottom int) {
	w := dst.Width()
	lanes := g.cfg.Lanes.Count

	for y := top; y < bottom; y++ {
		dst.SetColor(castleWidth-1, y, WallChar, core.ColorGray)
	}
	castle := core.NewRect(0, top+(bottom-top)/2-1, castleWidth-1, 3)
	dst.DrawRect(castle, '▓')
	dst.DrawTextColor(castle.X, castle.Y-1, "/\\/\\", core.ColorBrightBlue)

	for lane := 0; lane < lanes; lane++ {
		y := laneRow(lane, lanes, top, bottom)
		dst.DrawHLineColor(castleWidth+1, y, w-castleWidth-2, LaneChar, core.ColorGray)
	}

	for _, m := range g.state.Monsters {
		glyph, ok := monsterGlyphs[m.Kind]
		if !ok {
			glyph = monsterGlyphs[KindGiggleGhost]
		}
		y := laneRow(m.Lane, lanes, top, bottom)
		dst.SetColor(g.columnFor(m.X, w), y, glyph.glyph, glyph.color)
	}
}

// renderMessage draws Owlbert's current line above the question panel.
func (g *Game) renderMessage(dst *core.Screen, y int) {
	if g.state.Message == "" {
		return
	}
	dst.DrawTextCenteredColor(y, "Owlbert: "+g.state.Message, core.ColorBrightGreen)
}

// renderPanel draws the question, its objects, the choices and the help button.
func (g *Game) renderPanel(dst *core.Screen, top int) {
	w := dst.Width()
	panel := core.NewRect(0, top, w, panelHeight)
	dst.DrawBoxColor(panel, core.ColorBlue)

	q := g.state.Question
	if q == nil {
		return
	}

	dst.DrawTextCenteredColor(top+1, q.Prompt, core.ColorBrightWhite)
	drawObjects(dst, top+3, q, nil)

	if g.state.Resolved {
		dst.DrawTextCenteredColor(top+5, "Correct!", core.ColorBrightGreen)
	} else {
		parts := make([]string, len(q.Choices))
		for i, c := range q.Choices {
			parts[i] = fmt.Sprintf("[%d] %d", i+1, c)
		}
		dst.DrawTextCenteredColor(top+5, strings.Join(parts, "    "), core.ColorBrightYellow)
	}

	help, color := "[H] "+q.HelpLabel(), core.ColorCyan
	if g.state.HelpNudge {
		help, color = "> "+help+" <", core.ColorBrightMagenta
	}
	dst.DrawTextColor(w-core.TextWidth(help)-2, top+panelHeight-2, help, color)
}

// drawObjects draws the question's object groups centered on row y.
// When revealed is non-nil, objects not yet counted are dimmed and counted
// ones carry their ordinal on the row above.
func drawObjects(dst *core.Screen, y int, q *Question, revealed []RevealedObject) {
	n := q.TotalObjects()
	width := n * 2
	if q.GroupB != nil {
		width += 2
	}
	x := (dst.Width() - width) / 2

	ordinal := 0
	draw := func(group ObjectGroup) {
		for i := 0; i < group.Count; i++ {
			if revealed != nil && ordinal >= len(revealed) {
				dst.SetColor(x, y, HiddenChar, core.ColorGray)
			} else {
				dst.SetColor(x, y, group.Symbol.Glyph, group.Symbol.Color)
				if revealed != nil {
					dst.DrawTextColor(x, y-1, fmt.Sprint(revealed[ordinal].Ordinal), core.ColorBrightWhite)
				}
			}
			ordinal++
			x += 2
		}
	}

	draw(q.GroupA)
	if q.GroupB != nil {
		dst.SetColor(x, y, '+', core.ColorWhite)
		x += 2
		draw(*q.GroupB)
	}
}

// renderHelp draws the count-along overlay.
func (g *Game) renderHelp(dst *core.Screen) {
	q := g.state.Question
	if q == nil {
		return
	}
	w, h := dst.Width(), dst.Height()
	boxW := min(w-4, max(q.TotalObjects()*2+8, 30))
	box := core.NewRect((w-boxW)/2, h/2-4, boxW, 7)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightCyan)

	dst.DrawTextCenteredColor(box.Y+1, q.HelpLabel(), core.ColorBrightCyan)
	drawObjects(dst, box.Y+3, q, g.state.Revealed)
	dst.DrawTextCenteredColor(box.Bottom()-2, "[Enter] Continue", core.ColorGray)
}

// drawCenteredBox draws a framed message in the middle of the screen.
func drawCenteredBox(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, core.TextWidth(l))
	}
	boxW += 6
	boxH := len(lines) + 2

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, c)
	for i, l := range lines {
		dst.DrawTextCenteredColor(box.Y+1+i, l, c)
	}
}
