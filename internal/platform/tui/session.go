package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// sessionView is the screen a session is currently showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel is the top-level model: title menu -> game or scoreboard ->
// back to the title menu. The local terminal and every SSH session run one.
type SessionModel struct {
	newGame Factory
	gameID  string
	title   string
	config  core.RuntimeConfig
	opts    Options

	view     sessionView
	menu     MenuModel
	game     *Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the title menu.
func NewSessionModel(newGame Factory, cfg core.RuntimeConfig, opts Options) SessionModel {
	opts = opts.withDefaults()
	probe := newGame()

	m := SessionModel{
		newGame: newGame,
		gameID:  probe.ID(),
		title:   probe.Title(),
		config:  cfg,
		opts:    opts,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.title, m.gameID, m.opts.Store, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		game := NewModel(m.newGame(), m.config, m.opts)
		m.game = &game
		m.view = viewGame
		m.opts.Logger.Debug("entering game", "width", m.config.ScreenW, "height", m.config.ScreenH)
		return m, m.game.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.title, m.gameID, m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// toMenu returns to a fresh title menu, picking up any new high score.
func (m *SessionModel) toMenu() {
	m.game = nil
	m.view = viewMenu
	m.menu = m.newMenu()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a session on the local terminal and blocks until it ends.
func Run(newGame Factory, cfg core.RuntimeConfig, opts Options) error {
	model := NewSessionModel(newGame, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// RunGame skips the title menu and starts playing straight away. Back
// returns nowhere, so it ends the program like quit.
func RunGame(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		directGame{model},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// directGame quits the program when the game asks for the menu.
type directGame struct {
	Model
}

func (d directGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := d.Model.Update(msg)
	if m, ok := next.(Model); ok {
		d.Model = m
	}
	if d.BackToMenu() {
		return d, tea.Quit
	}
	return d, cmd
}
