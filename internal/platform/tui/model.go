package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-heroes/internal/core"
	"github.com/vovakirdan/math-heroes/internal/games/mathheroes"
	"github.com/vovakirdan/math-heroes/internal/registry"
	"github.com/vovakirdan/math-heroes/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: it forwards
// keys as actions, ticks the simulation, and records the final score.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	palette    Palette
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// ModelOption customizes a GameModel.
type ModelOption func(*GameModel)

// WithPalette sets the color palette.
func WithPalette(p Palette) ModelOption {
	return func(m *GameModel) { m.palette = p }
}

// WithLogger sets the logger for platform-side failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// Standalone makes the model quit when the game asks to leave.
func Standalone() ModelOption {
	return func(m *GameModel) { m.standalone = true }
}

// NewGameModel creates a model for game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		palette:    DefaultPalette(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game lays itself out from the screen size on every render,
		// so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		return m.leave()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.drainEvents()

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.gameState.Exit {
		return m.leave()
	}

	return m, tickCmd(m.config.TickInterval())
}

// eventSource is implemented by games that queue events for the platform.
type eventSource interface {
	DrainEvents() []mathheroes.Event
}

// drainEvents empties the game's event queue into the debug log.
func (m GameModel) drainEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}
	for _, ev := range src.DrainEvents() {
		m.logger.Debug("event", "game", m.game.ID(), "kind", ev.Kind, "level", ev.Level, "score", ev.Score, "text", ev.Text)
	}
}

// leave returns to the menu, or quits when running standalone.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	m.backToMenu = true
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScore records a finished run. Zero scores are not kept.
func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("save score", "game", m.game.ID(), "score", m.gameState.Score, "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot writes the current screen as plain text under
// ~/.mathheroes/screenshots.
func (m *GameModel) saveScreenshot() error {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".mathheroes", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreenWith(m.screen, m.palette)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game is over and the player should see the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunResult is how a standalone game ended.
type RunResult struct {
	State core.GameState
	Quit  bool // the player pressed quit rather than leaving normally
}

// Run plays game in the current terminal until it ends or the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (RunResult, error) {
	opts = append(opts, Standalone())
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return RunResult{Quit: true}, nil
	}
	return RunResult{State: m.State(), Quit: m.IsQuitting() && !m.BackToMenu()}, nil
}
