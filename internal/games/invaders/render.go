package invaders

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '▲'
	AlienChar        = '▼'
	PlayerBulletChar = '│'
	AlienBulletChar  = '┃'
	DividerChar      = '─'
)

// Minimum terminal size the canvas can be squeezed into.
const (
	minScreenW = 40
	minScreenH = 14
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	vp := core.NewViewport(CanvasWidth, CanvasHeight, dst.Width(), dst.Height())

	if g.phase != PhasePlaying {
		g.renderPauseScreen(dst, vp)
		return
	}

	g.renderDividers(dst, vp)

	for _, a := range g.formation.Aliens() {
		dst.DrawRect(vp.RectToCells(a.BoundingBox()), AlienChar, core.ColorGreen)
	}
	for _, b := range g.playerBullets.Items() {
		dst.DrawRect(vp.RectToCells(b.BoundingBox()), PlayerBulletChar, core.ColorBrightGreen)
	}
	for _, b := range g.alienBullets.Items() {
		dst.DrawRect(vp.RectToCells(b.BoundingBox()), AlienBulletChar, core.ColorRed)
	}
	dst.DrawRect(vp.RectToCells(g.player.BoundingBox()), PlayerChar, core.ColorBrightWhite)

	g.renderHUD(dst, vp)
}

// renderHUD draws score (centred), round (left) and lives (right) on the
// top row of the canvas.
func (g *Game) renderHUD(dst *core.Screen, vp core.Viewport) {
	y := vp.RowOf(10)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(vp.ColumnOf(CanvasWidth/2)-textWidth(score)/2, y, score, core.ColorWhite)

	round := fmt.Sprintf("Round: %d", g.round)
	dst.DrawTextColored(vp.ColumnOf(20), y, round, core.ColorWhite)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColored(vp.ColumnOf(CanvasWidth-20)-textWidth(lives), y, lives, core.ColorWhite)
}

// renderDividers draws the HUD line and the breach line.
func (g *Game) renderDividers(dst *core.Screen, vp core.Viewport) {
	dst.DrawHLine(0, vp.RowOf(HUDLineY), dst.Width(), DividerChar, core.ColorWhite)
	dst.DrawHLine(0, vp.RowOf(BreachLineY), dst.Width(), DividerChar, core.ColorWhite)
}

// renderPauseScreen blanks the screen and shows the pause texts at the
// canvas centre, the sub text 64px below the main one.
func (g *Game) renderPauseScreen(dst *core.Screen, vp core.Viewport) {
	cx := vp.ColumnOf(CanvasWidth / 2)

	mainY := vp.RowOf(CanvasHeight / 2)
	dst.DrawTextColored(cx-textWidth(g.pause.main)/2, mainY, g.pause.main, core.ColorBrightWhite)

	subY := max(vp.RowOf(CanvasHeight/2+64), mainY+1)
	dst.DrawTextColored(cx-textWidth(g.pause.sub)/2, subY, g.pause.sub, core.ColorWhite)
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
