package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options carries the services a game model talks to. Every field is
// optional.
type Options struct {
	Store     *storage.Store
	Sounds    audio.Sink
	Logger    *log.Logger
	HoldTicks int
	Renderer  *lipgloss.Renderer
}

func (o Options) withDefaults() Options {
	if o.Sounds == nil {
		o.Sounds = audio.Mute{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.HoldTicks <= 0 {
		o.HoldTicks = DefaultHoldTicks
	}
	return o
}

// Model is the Bubble Tea model that runs one game: it ticks the
// simulation, feeds it input, plays its sounds and records its scores.
type Model struct {
	game       Game
	screen     *core.Screen
	view       *ScreenRenderer
	store      *storage.Store
	sounds     audio.Sink
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	tickID     int64
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		view:   NewScreenRenderer(opts.Renderer),
		store:  opts.Store,
		sounds: opts.Sounds,
		logger: opts.Logger,
		config: cfg,
		keys:   NewKeyMapper(opts.HoldTicks),
		tickID: nextTickID(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key for the next tick. Back leaves for the title
// menu, but only from a pause screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Press(msg)
	if action == core.ActionBack && (m.gameState.Paused || m.gameState.GameOver) {
		m.backToMenu = true
	}
	return m, nil
}

// handleResize follows the terminal size. The simulation works on a fixed
// logical canvas, so the game keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame and acts on its result.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.keys.Frame())
	m.keys.Advance()
	m.gameState = result.State

	for _, s := range result.Sounds {
		m.sounds.Play(s)
	}
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	switch result.Verdict {
	case core.VerdictQuit:
		m.logger.Info("quit", "score", result.State.Score, "round", result.State.Round)
		m.quitting = true
		return m, tea.Quit
	case core.VerdictResume:
		m.keys.Release()
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// handleEvent logs a simulation event and saves the score when a game ends.
func (m *Model) handleEvent(e core.Event) {
	m.logger.Debug(e.Kind.String(), "round", e.Round, "score", e.Score, "lives", e.Lives)

	switch e.Kind {
	case core.EventGameOver:
		m.saveScore(e.Score, e.Round)
	case core.EventGameReset:
		m.scoreSaved = false
	}
}

// saveScore records the final score once per game over. Best-effort: the
// game continues regardless.
func (m *Model) saveScore(score, round int) {
	if m.scoreSaved || score <= 0 {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}

	rank, err := m.store.Rank(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not rank score", "err", err)
	}
	if _, err := m.store.SaveScore(m.game.ID(), score, round); err != nil {
		m.logger.Error("could not save score", "score", score, "err", err)
		return
	}
	m.logger.Info("score saved", "score", score, "round", round, "rank", rank)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.view.Render(m.screen)
}

// IsQuitting returns true if the game asked to close.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the title menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}
