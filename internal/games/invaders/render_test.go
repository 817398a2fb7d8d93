package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(1)
	g.score = 300
	g.round = 2
	g.lives = 3

	s := core.NewScreen(120, 35)
	g.Render(s)

	hud := s.Row(0)
	for _, want := range []string{"Score: 300", "Round: 2", "Lives: 3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row %q is missing %q", hud, want)
		}
	}
	if !strings.HasPrefix(strings.TrimLeft(hud[:10], " "), "Round") {
		t.Errorf("round should be on the left of the HUD: %q", hud)
	}
	if !strings.HasSuffix(strings.TrimRight(hud, " "), "Lives: 3") {
		t.Errorf("lives should be on the right of the HUD: %q", hud)
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(1)
	s := core.NewScreen(120, 35)
	g.Render(s)

	if !strings.Contains(s.Row(2), string(DividerChar)) {
		t.Error("HUD divider missing")
	}
	if !strings.Contains(s.Row(30), string(DividerChar)) {
		t.Error("breach line missing")
	}

	out := s.String()
	if !strings.ContainsRune(out, AlienChar) {
		t.Error("aliens not drawn")
	}
	if !strings.ContainsRune(s.Row(34), PlayerChar) {
		t.Error("player should be drawn on the bottom row")
	}
	if cell := s.GetCell(60, 34); cell.Rune != PlayerChar || cell.Color != core.ColorBrightWhite {
		t.Errorf("cell under the ship = %+v", cell)
	}
}

func TestRenderPauseScreen(t *testing.T) {
	g := newTestGame(1)
	hitPlayer(g)
	g.Step(core.NewInputFrame())

	s := core.NewScreen(120, 35)
	g.Render(s)
	out := s.String()

	if !strings.Contains(out, textHit) || !strings.Contains(out, textContinue) {
		t.Errorf("pause screen missing texts:\n%s", out)
	}
	if strings.ContainsRune(out, AlienChar) {
		t.Error("pause screen should be blank apart from the texts")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	s := core.NewScreen(20, 8)
	g.Render(s)

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("expected a size warning on a tiny screen")
	}
}
