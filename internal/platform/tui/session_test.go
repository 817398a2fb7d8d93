package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestSession(t *testing.T, opts Options) (SessionModel, *[]*scriptedGame) {
	t.Helper()
	var made []*scriptedGame
	factory := func() Game {
		g := &scriptedGame{}
		made = append(made, g)
		return g
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewSessionModel(factory, cfg, opts), &made
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionStartsOnMenu(t *testing.T) {
	m, _ := newTestSession(t, Options{})

	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu", m.view)
	}
	if m.gameID != "scripted" || m.title != "Scripted" {
		t.Errorf("game = %q/%q, want scripted/Scripted", m.gameID, m.title)
	}
	if !strings.Contains(m.View(), "S C R I P T E D") {
		t.Error("menu does not show the game title")
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	m, made := newTestSession(t, Options{})

	m, cmd := sendSession(t, m, keyPress("enter"))
	if m.view != viewGame {
		t.Fatalf("view = %v, want game", m.view)
	}
	if cmd == nil {
		t.Error("entering the game did not start the tick loop")
	}

	// The factory was called once for the probe and once for the game
	if len(*made) != 2 {
		t.Fatalf("factory calls = %d, want 2", len(*made))
	}
	g := (*made)[1]
	if g.resets != 1 {
		t.Errorf("game resets = %d, want 1", g.resets)
	}

	g.queue(core.StepResult{State: core.GameState{Lives: 2, Paused: true}})
	m, _ = sendSession(t, m, TickMsg{ID: m.game.tickID})
	m, _ = sendSession(t, m, keyPress("esc"))

	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu after Back", m.view)
	}
	if m.game != nil {
		t.Error("game model kept after returning to the menu")
	}
	if m.menu.Selected() != ChoiceNone {
		t.Error("menu kept the previous selection")
	}
}

func TestSessionStaleTickIgnored(t *testing.T) {
	m, made := newTestSession(t, Options{})

	m, _ = sendSession(t, m, keyPress("enter"))
	oldID := m.game.tickID
	(*made)[1].queue(core.StepResult{State: core.GameState{Paused: true}})
	m, _ = sendSession(t, m, TickMsg{ID: oldID})
	m, _ = sendSession(t, m, keyPress("b"))

	// Second game: a tick from the first one must not drive it
	m, _ = sendSession(t, m, keyPress("enter"))
	second := (*made)[2]
	m, _ = sendSession(t, m, TickMsg{ID: oldID})

	if len(second.frames) != 0 {
		t.Errorf("stale tick stepped the new game %d times", len(second.frames))
	}
	if m.game.tickID == oldID {
		t.Error("new game reused the old tick id")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m, made := newTestSession(t, Options{})

	m, _ = sendSession(t, m, keyPress("enter"))
	(*made)[1].queue(core.StepResult{Verdict: core.VerdictQuit})
	m, cmd := sendSession(t, m, TickMsg{ID: m.game.tickID})

	if !m.quitting {
		t.Fatal("session not quitting")
	}
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() not empty while quitting")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("scripted", 900, 2); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m, _ := newTestSession(t, Options{Store: store})
	m, _ = sendSession(t, m, keyPress("down"))
	m, _ = sendSession(t, m, keyPress("enter"))

	if m.view != viewScores {
		t.Fatalf("view = %v, want scores", m.view)
	}
	if m.scores.Rows() != 1 {
		t.Errorf("scoreboard rows = %d, want 1", m.scores.Rows())
	}
	if !strings.Contains(m.View(), "900") {
		t.Error("scoreboard does not show the saved score")
	}

	m, _ = sendSession(t, m, keyPress("esc"))
	if m.view != viewMenu {
		t.Errorf("view = %v, want menu", m.view)
	}
}

func TestSessionResizeFollowsIntoGame(t *testing.T) {
	m, _ := newTestSession(t, Options{})

	m, _ = sendSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = sendSession(t, m, keyPress("enter"))

	if w, h := m.game.screen.Width(), m.game.screen.Height(); w != 120 || h != 40 {
		t.Errorf("game screen = %dx%d, want 120x40", w, h)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m, _ := newTestSession(t, Options{})

	m, cmd := sendSession(t, m, keyPress("q"))
	if !m.quitting || cmd == nil {
		t.Error("q on the menu did not quit")
	}
}

func TestDirectGameQuitsOnBack(t *testing.T) {
	g := &scriptedGame{}
	d := directGame{newTestModel(t, g, Options{})}

	g.queue(core.StepResult{State: core.GameState{GameOver: true}})
	next, _ := d.Update(TickMsg{ID: d.tickID})
	next, cmd := next.Update(keyPress("esc"))

	if !next.(directGame).BackToMenu() {
		t.Fatal("Back not recorded")
	}
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}
