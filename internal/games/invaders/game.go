// Package invaders implements a single-screen Space Invaders shooter.
// The player's ship fends off descending waves of aliens across rounds
// that get faster each time a wave is cleared.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game implements the Space Invaders simulation.
type Game struct {
	// Game objects
	player        *Player
	formation     *Formation
	playerBullets *Bullets
	alienBullets  *Bullets

	// Round/lives bookkeeping
	phase     Phase
	pause     pauseScreen
	round     int
	score     int
	lives     int
	tickCount int

	rng     *rand.Rand
	runtime core.RuntimeConfig

	// Collected during a single Step
	sounds []core.Sound
	events []core.Event
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game from round one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.player = NewPlayer()
	g.playerBullets = NewBullets(PlayerMagazine)
	g.alienBullets = NewBullets(AlienMagazine)

	g.phase = PhasePlaying
	g.pause = pauseScreen{}
	g.score = 0
	g.round = 1
	g.lives = StartingLives
	g.tickCount = 0
	g.sounds = nil
	g.events = nil

	g.startNewRound()
}

// Step advances the game by one frame.
//
// In PhasePlaying the order is: input, player, aliens, player bullets,
// alien bullets, formation shift, collisions, round completion. In the
// paused phases nothing moves and only Enter or quit are honoured.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = nil
	g.events = nil

	verdict := g.handleEvents(in)
	if verdict != core.VerdictContinue || g.phase != PhasePlaying {
		return g.result(verdict)
	}

	g.tickCount++

	g.player.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	g.player.Advance(1)
	g.advanceAliens()
	g.playerBullets.Advance(1)
	g.alienBullets.Advance(1)

	// A lost life ends the frame
	g.shiftAliens()
	if g.phase != PhasePlaying {
		return g.result(core.VerdictContinue)
	}
	g.checkCollisions()
	if g.phase != PhasePlaying {
		return g.result(core.VerdictContinue)
	}
	g.checkRoundCompletion()

	return g.result(core.VerdictContinue)
}

// handleEvents is the single place discrete input is interpreted, for the
// running game and the pause screens alike.
func (g *Game) handleEvents(in core.InputFrame) core.Verdict {
	if in.Has(core.ActionQuit) {
		return core.VerdictQuit
	}

	switch g.phase {
	case PhasePaused, PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.resume()
			return core.VerdictResume
		}
		return core.VerdictContinue
	}

	if in.Has(core.ActionFire) && g.player.Fire(g.playerBullets) {
		g.play(core.SoundPlayerFire)
	}
	return core.VerdictContinue
}

// resume leaves a pause screen. Leaving the final score screen starts a
// brand new game.
func (g *Game) resume() {
	if g.phase == PhaseGameOver {
		g.resetGame()
	}
	g.phase = PhasePlaying
	g.pause = pauseScreen{}
	g.emit(core.EventResumed)
}

// advanceAliens moves each alien, then gives it its chance to fire.
func (g *Game) advanceAliens() {
	for _, a := range g.formation.Aliens() {
		a.Advance(1)
		if g.rng.Intn(AlienFireOdds) == AlienFireOdds-1 && a.Fire(g.alienBullets) {
			g.play(core.SoundAlienFire)
		}
	}
}

// shiftAliens drops and reverses the formation when it reaches a side.
func (g *Game) shiftAliens() {
	_, breached := g.formation.Shift(g.round)
	if !breached {
		return
	}

	g.play(core.SoundBreach)
	g.loseLife()
	g.emit(core.EventBreach)
	g.checkGameStatus(textBreach, textContinue)
}

// checkCollisions resolves player bullets against aliens and alien
// bullets against the player. A frame with kills scores PointsPerAlien
// once, however many aliens died in it.
func (g *Game) checkCollisions() {
	if hits := scanAlienHits(g.playerBullets.Items(), g.formation.Aliens()); len(hits) > 0 {
		deadBullets, deadAliens := splitHits(hits)
		g.playerBullets.Remove(deadBullets)
		g.formation.Remove(deadAliens)

		g.play(core.SoundAlienHit)
		g.score += PointsPerAlien
		for range deadAliens {
			g.emit(core.EventAlienDestroyed)
		}
	}

	if idx := scanPlayerHits(g.alienBullets.Items(), g.player.BoundingBox()); len(idx) > 0 {
		g.alienBullets.Remove(indexSet(idx))

		g.play(core.SoundPlayerHit)
		g.loseLife()
		g.emit(core.EventPlayerHit)
		g.checkGameStatus(textHit, textContinue)
	}
}

// checkRoundCompletion awards the bonus for the round just cleared and
// spawns the next, faster wave.
func (g *Game) checkRoundCompletion() {
	if !g.formation.Empty() {
		return
	}

	g.score += RoundBonus * g.round
	g.emit(core.EventRoundCleared)
	g.round++
	g.startNewRound()
}

// startNewRound spawns a fresh wave moving at the current round number.
// SoundNewRound is never played.
func (g *Game) startNewRound() {
	g.formation = NewWave(g.round)
}

// loseLife takes one life, never going below zero.
func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

// checkGameStatus clears the field after a lost life and blocks the game
// on a pause screen, or on the final score screen when no lives remain.
func (g *Game) checkGameStatus(main, sub string) {
	g.alienBullets.Clear()
	g.playerBullets.Clear()
	g.player.ResetToOrigin()
	g.formation.ResetToOrigin()

	if g.lives == 0 {
		g.phase = PhaseGameOver
		g.pause = pauseScreen{
			main: fmt.Sprintf("Final Score: %d", g.score),
			sub:  textReplay,
		}
		g.emit(core.EventGameOver)
		return
	}

	g.phase = PhasePaused
	g.pause = pauseScreen{main: main, sub: sub}
	g.emit(core.EventPaused)
}

// resetGame starts over from round one after the final score screen.
func (g *Game) resetGame() {
	g.score = 0
	g.round = 1
	g.lives = StartingLives

	g.formation.Clear()
	g.alienBullets.Clear()
	g.playerBullets.Clear()
	g.player.ResetToOrigin()

	g.startNewRound()
	g.emit(core.EventGameReset)
}

func (g *Game) play(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Round: g.round,
		Score: g.score,
		Lives: g.lives,
	})
}

func (g *Game) result(v core.Verdict) core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Verdict: v,
		Sounds:  g.sounds,
		Events:  g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Round:    g.round,
		Lives:    g.lives,
		Paused:   g.phase == PhasePaused,
		GameOver: g.phase == PhaseGameOver,
	}
}
