package invaders

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  35,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func countSound(sounds []core.Sound, s core.Sound) int {
	n := 0
	for _, got := range sounds {
		if got == s {
			n++
		}
	}
	return n
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// hitPlayer places an alien bullet that will overlap the ship after the
// next bullet advance.
func hitPlayer(g *Game) {
	box := g.player.BoundingBox()
	g.alienBullets.Add(NewAlienBullet(box.CenterX(), box.Top()-5))
}

func TestReset(t *testing.T) {
	g := newTestGame(42)

	state := g.State()
	if state.Score != 0 || state.Round != 1 || state.Lives != StartingLives {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if state.Paused || state.GameOver {
		t.Error("a new game should be running")
	}
	if g.formation.Len() != WaveSize {
		t.Errorf("wave size = %d, expected %d", g.formation.Len(), WaveSize)
	}
	if g.playerBullets.Len() != 0 || g.alienBullets.Len() != 0 {
		t.Error("no bullets should be in flight after Reset")
	}
	if g.player.BoundingBox().CenterX() != CanvasWidth/2 {
		t.Error("player should start centred")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must stay in lockstep
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	inputs := rand.New(rand.NewSource(7))
	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		switch inputs.Intn(5) {
		case 0:
			in.Set(core.ActionLeft)
		case 1:
			in.Set(core.ActionRight)
		case 2:
			in.Set(core.ActionFire)
		case 3:
			in.Set(core.ActionConfirm)
		}

		r1 := g1.Step(in)
		r2 := g2.Step(in)

		if r1.State != r2.State {
			t.Fatalf("tick %d: state mismatch %+v vs %+v", i, r1.State, r2.State)
		}
		if fmt.Sprint(r1.Sounds) != fmt.Sprint(r2.Sounds) {
			t.Fatalf("tick %d: sounds mismatch %v vs %v", i, r1.Sounds, r2.Sounds)
		}
	}

	if g1.alienBullets.Len() != g2.alienBullets.Len() {
		t.Errorf("alien bullets mismatch: %d vs %d", g1.alienBullets.Len(), g2.alienBullets.Len())
	}
	for i, a := range g1.formation.Aliens() {
		if a.BoundingBox() != g2.formation.Aliens()[i].BoundingBox() {
			t.Fatalf("alien %d position mismatch", i)
		}
	}
}

func TestInvariantsHoldUnderRandomPlay(t *testing.T) {
	g := newTestGame(99)
	inputs := rand.New(rand.NewSource(3))
	lastScore := 0

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionConfirm} {
			if inputs.Intn(3) == 0 {
				in.Set(a)
			}
		}

		res := g.Step(in)

		if n := g.playerBullets.Len(); n > PlayerMagazine {
			t.Fatalf("tick %d: %d player bullets in flight", i, n)
		}
		if n := g.alienBullets.Len(); n > AlienMagazine {
			t.Fatalf("tick %d: %d alien bullets in flight", i, n)
		}
		if n := g.formation.Len(); n > WaveSize {
			t.Fatalf("tick %d: %d aliens alive", i, n)
		}
		if res.State.Lives < 0 || res.State.Lives > StartingLives {
			t.Fatalf("tick %d: lives = %d", i, res.State.Lives)
		}
		if res.State.Round < 1 {
			t.Fatalf("tick %d: round = %d", i, res.State.Round)
		}
		if res.State.Score < lastScore && !hasEvent(res.Events, core.EventGameReset) {
			t.Fatalf("tick %d: score dropped from %d to %d without a reset", i, lastScore, res.State.Score)
		}
		lastScore = res.State.Score
	}
}

func TestPlayerFireMagazine(t *testing.T) {
	g := newTestGame(1)
	fire := core.FrameOf(core.ActionFire)

	for i := 0; i < PlayerMagazine; i++ {
		res := g.Step(fire)
		if countSound(res.Sounds, core.SoundPlayerFire) != 1 {
			t.Fatalf("shot %d should play the fire sound", i+1)
		}
	}

	res := g.Step(fire)
	if g.playerBullets.Len() != PlayerMagazine {
		t.Errorf("player bullets = %d, expected %d", g.playerBullets.Len(), PlayerMagazine)
	}
	if countSound(res.Sounds, core.SoundPlayerFire) != 0 {
		t.Error("a refused shot must not play the fire sound")
	}
}

func TestHeldMovement(t *testing.T) {
	g := newTestGame(1)
	startX := g.player.BoundingBox().X

	for i := 0; i < 10; i++ {
		g.Step(core.FrameOf(core.ActionLeft))
	}
	if got := g.player.BoundingBox().X; got != startX-10*PlayerVelocity {
		t.Errorf("x after 10 frames left = %d, expected %d", got, startX-10*PlayerVelocity)
	}

	g.Step(core.NewInputFrame())
	if got := g.player.BoundingBox().X; got != startX-10*PlayerVelocity {
		t.Error("player should not move without a held direction")
	}
}

func TestAliensMoveEachFrame(t *testing.T) {
	g := newTestGame(1)
	first := g.formation.Aliens()[0]

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if first.BoundingBox().X != WaveOffset+5 {
		t.Errorf("alien x after 5 frames = %d, expected %d", first.BoundingBox().X, WaveOffset+5)
	}
}

func TestEdgeShiftDuringStep(t *testing.T) {
	g := newTestGame(1)
	aliens := g.formation.Aliens()

	// One alien, one step short of the left edge, moving left.
	trigger := aliens[20]
	trigger.direction = -1
	trigger.rect.X = 1

	before := make([]int, len(aliens))
	for i, a := range aliens {
		before[i] = a.BoundingBox().Y
	}

	g.Step(core.NewInputFrame())

	for i, a := range aliens {
		if a.BoundingBox().Y != before[i]+ShiftStep {
			t.Errorf("alien %d y = %d, expected %d", i, a.BoundingBox().Y, before[i]+ShiftStep)
		}
	}
	if trigger.direction != 1 {
		t.Error("triggering alien should now move right")
	}
	if aliens[0].direction != -1 {
		t.Error("the rest of the wave should reverse too")
	}
}

func TestClearingWaveStartsNextRound(t *testing.T) {
	g := newTestGame(5)

	for i := 0; i < WaveSize; i++ {
		g.alienBullets.Clear()

		target := g.formation.Aliens()[0].BoundingBox()
		g.playerBullets.Add(NewPlayerBullet(target.CenterX(), target.CenterY()+BulletVelocity))

		res := g.Step(core.NewInputFrame())
		if countSound(res.Sounds, core.SoundAlienHit) != 1 {
			t.Fatalf("kill %d: expected one hit sound", i+1)
		}
		if i < WaveSize-1 && g.formation.Len() != WaveSize-1-i {
			t.Fatalf("kill %d: %d aliens left", i+1, g.formation.Len())
		}
		if i == WaveSize-1 && !hasEvent(res.Events, core.EventRoundCleared) {
			t.Fatal("last kill should clear the round")
		}
	}

	state := g.State()
	if state.Score != WaveSize*PointsPerAlien+RoundBonus {
		t.Errorf("score = %d, expected %d", state.Score, WaveSize*PointsPerAlien+RoundBonus)
	}
	if state.Round != 2 {
		t.Errorf("round = %d, expected 2", state.Round)
	}
	if g.formation.Len() != WaveSize {
		t.Fatalf("new wave has %d aliens", g.formation.Len())
	}
	for _, a := range g.formation.Aliens() {
		if a.velocity != 2 {
			t.Fatalf("round 2 aliens should move at 2, got %d", a.velocity)
		}
	}
}

func TestRoundBonusUsesClearedRound(t *testing.T) {
	g := newTestGame(5)
	g.round = 3
	g.score = 700
	g.formation.Clear()

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 700+3*RoundBonus {
		t.Errorf("score = %d, expected %d", res.State.Score, 700+3*RoundBonus)
	}
	if res.State.Round != 4 {
		t.Errorf("round = %d, expected 4", res.State.Round)
	}
	for _, e := range res.Events {
		if e.Kind == core.EventRoundCleared && e.Round != 3 {
			t.Errorf("round cleared event reports round %d, expected 3", e.Round)
		}
	}
}

func TestSimultaneousKills(t *testing.T) {
	g := newTestGame(5)
	g.alienBullets.Clear()

	for _, a := range g.formation.Aliens()[:2] {
		box := a.BoundingBox()
		g.playerBullets.Add(NewPlayerBullet(box.CenterX(), box.CenterY()+BulletVelocity))
	}

	res := g.Step(core.NewInputFrame())

	if g.formation.Len() != WaveSize-2 {
		t.Errorf("%d aliens left, expected %d", g.formation.Len(), WaveSize-2)
	}
	if res.State.Score != PointsPerAlien {
		t.Errorf("score = %d, expected %d for the whole frame", res.State.Score, PointsPerAlien)
	}
	destroyed := 0
	for _, e := range res.Events {
		if e.Kind == core.EventAlienDestroyed {
			destroyed++
		}
	}
	if destroyed != 2 {
		t.Errorf("alien destroyed events = %d, expected 2", destroyed)
	}
	if countSound(res.Sounds, core.SoundAlienHit) != 1 {
		t.Errorf("expected exactly one hit sound per frame, got %d", countSound(res.Sounds, core.SoundAlienHit))
	}
	if g.playerBullets.Len() != 0 {
		t.Error("both bullets should be spent")
	}
}

func TestPlayerHitPauses(t *testing.T) {
	g := newTestGame(5)
	g.player.rect.X = 100
	g.playerBullets.Add(NewPlayerBullet(600, 400))
	hitPlayer(g)

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != StartingLives-1 {
		t.Errorf("lives = %d, expected %d", res.State.Lives, StartingLives-1)
	}
	if !res.State.Paused || g.phase != PhasePaused {
		t.Fatal("losing a life should pause the game")
	}
	if g.pause.main != textHit || g.pause.sub != textContinue {
		t.Errorf("pause texts = %q / %q", g.pause.main, g.pause.sub)
	}
	if countSound(res.Sounds, core.SoundPlayerHit) != 1 {
		t.Error("expected the player hit sound")
	}
	if g.playerBullets.Len() != 0 || g.alienBullets.Len() != 0 {
		t.Error("every bullet should be cleared after a hit")
	}
	if g.player.BoundingBox().CenterX() != CanvasWidth/2 {
		t.Error("player should be re-centred")
	}
	if g.formation.Aliens()[0].BoundingBox().X != WaveOffset {
		t.Error("aliens should return to their spawn points")
	}
}

func TestPausedGameIsFrozen(t *testing.T) {
	g := newTestGame(5)
	hitPlayer(g)
	g.Step(core.NewInputFrame())

	ticks := g.tickCount
	first := g.formation.Aliens()[0].BoundingBox()

	for i := 0; i < 30; i++ {
		res := g.Step(core.FrameOf(core.ActionFire, core.ActionLeft))
		if res.Verdict != core.VerdictContinue {
			t.Fatalf("verdict = %v while paused without Enter", res.Verdict)
		}
		if len(res.Sounds) != 0 {
			t.Fatalf("paused game played %v", res.Sounds)
		}
	}

	if g.tickCount != ticks {
		t.Error("simulation advanced while paused")
	}
	if g.formation.Aliens()[0].BoundingBox() != first {
		t.Error("aliens moved while paused")
	}
	if g.playerBullets.Len() != 0 {
		t.Error("fire should be ignored while paused")
	}

	res := g.Step(core.FrameOf(core.ActionConfirm))
	if res.Verdict != core.VerdictResume {
		t.Errorf("verdict = %v, expected resume", res.Verdict)
	}
	if g.phase != PhasePlaying {
		t.Error("Enter should resume play")
	}
	if res.State.Lives != StartingLives-1 {
		t.Error("resuming must keep the remaining lives")
	}
}

func TestBreach(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantPhase Phase
		wantMain  string
		wantEvent core.EventKind
	}{
		{"pauses with lives left", StartingLives, PhasePaused, textBreach, core.EventPaused},
		{"last life ends the game", 1, PhaseGameOver, "Final Score: 300", core.EventGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(5)
			g.alienBullets.Clear()
			g.lives = tt.lives
			g.score = 300

			last := g.formation.Aliens()[WaveSize-1]
			last.rect.X = CanvasWidth - AlienWidth - 1
			last.rect.Y = 560

			res := g.Step(core.NewInputFrame())

			if res.State.Lives != tt.lives-1 {
				t.Errorf("lives = %d, expected %d", res.State.Lives, tt.lives-1)
			}
			if g.phase != tt.wantPhase || g.pause.main != tt.wantMain {
				t.Errorf("phase = %v, main text = %q, expected %v and %q", g.phase, g.pause.main, tt.wantPhase, tt.wantMain)
			}
			if countSound(res.Sounds, core.SoundBreach) != 1 {
				t.Error("expected the breach sound")
			}
			if !hasEvent(res.Events, core.EventBreach) || !hasEvent(res.Events, tt.wantEvent) {
				t.Errorf("expected breach and %v events, got %v", tt.wantEvent, res.Events)
			}
			if last.BoundingBox().Y != last.originY {
				t.Error("breaching alien should be back at its spawn point")
			}
		})
	}

	t.Run("game over replays from round one", func(t *testing.T) {
		g := newTestGame(5)
		g.alienBullets.Clear()
		g.lives = 1
		g.round = 3

		last := g.formation.Aliens()[WaveSize-1]
		last.rect.X = CanvasWidth - AlienWidth - 1
		last.rect.Y = 560
		g.Step(core.NewInputFrame())

		res := g.Step(core.FrameOf(core.ActionConfirm))
		if res.Verdict != core.VerdictResume {
			t.Fatalf("verdict = %v, expected Resume", res.Verdict)
		}
		if res.State.Score != 0 || res.State.Round != 1 || res.State.Lives != StartingLives {
			t.Errorf("state after replay = %+v", res.State)
		}
		if g.formation.Len() != WaveSize {
			t.Errorf("fresh wave has %d aliens", g.formation.Len())
		}
	})
}

// lastAlienStanding removes every alien but the first and aims a player
// bullet at it.
func lastAlienStanding(g *Game) {
	dead := make(map[int]bool)
	for i := 1; i < WaveSize; i++ {
		dead[i] = true
	}
	g.formation.Remove(dead)

	target := g.formation.Aliens()[0].BoundingBox()
	g.playerBullets.Add(NewPlayerBullet(target.CenterX(), target.CenterY()+BulletVelocity))
}

func TestLastKillAndLastLifeInOneFrame(t *testing.T) {
	g := newTestGame(5)
	g.alienBullets.Clear()
	g.lives = 1
	lastAlienStanding(g)
	hitPlayer(g)

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if res.State.Score != PointsPerAlien || res.State.Round != 1 {
		t.Errorf("state = %+v, expected score %d in round 1 with no bonus", res.State, PointsPerAlien)
	}
	if g.pause.main != fmt.Sprintf("Final Score: %d", res.State.Score) {
		t.Errorf("final screen %q disagrees with score %d", g.pause.main, res.State.Score)
	}
	if hasEvent(res.Events, core.EventRoundCleared) {
		t.Error("a lost game must not clear the round")
	}
	if last := res.Events[len(res.Events)-1]; last.Kind != core.EventGameOver {
		t.Errorf("last event = %v, expected game_over", last.Kind)
	}
}

func TestLastKillAndLostLifeCompletesAfterResume(t *testing.T) {
	g := newTestGame(5)
	g.alienBullets.Clear()
	lastAlienStanding(g)
	hitPlayer(g)

	res := g.Step(core.NewInputFrame())
	if !res.State.Paused || res.State.Round != 1 {
		t.Fatalf("expected a round 1 pause, got %+v", res.State)
	}
	if hasEvent(res.Events, core.EventRoundCleared) {
		t.Error("round cleared while pausing")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	res = g.Step(core.NewInputFrame())

	if res.State.Round != 2 || res.State.Score != PointsPerAlien+RoundBonus {
		t.Errorf("state after resume = %+v, expected round 2 and score %d", res.State, PointsPerAlien+RoundBonus)
	}
	if g.formation.Len() != WaveSize {
		t.Errorf("new wave has %d aliens", g.formation.Len())
	}
}

func TestGameOverAndReplay(t *testing.T) {
	g := newTestGame(5)
	g.lives = 1
	g.score = 4200
	hitPlayer(g)

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || res.State.Paused {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	if g.pause.main != "Final Score: 4200" || g.pause.sub != textReplay {
		t.Errorf("final screen texts = %q / %q", g.pause.main, g.pause.sub)
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("expected a game over event")
	}

	g.formation.Remove(map[int]bool{0: true, 1: true})
	res = g.Step(core.FrameOf(core.ActionConfirm))

	if res.Verdict != core.VerdictResume {
		t.Errorf("verdict = %v, expected resume", res.Verdict)
	}
	if !hasEvent(res.Events, core.EventGameReset) {
		t.Error("expected a game reset event")
	}
	state := g.State()
	if state.Score != 0 || state.Round != 1 || state.Lives != StartingLives || state.GameOver {
		t.Errorf("state after replay = %+v", state)
	}
	if g.formation.Len() != WaveSize {
		t.Errorf("replay wave has %d aliens", g.formation.Len())
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		in    core.InputFrame
	}{
		{"while playing", func(g *Game) {}, core.FrameOf(core.ActionQuit)},
		{"while paused", func(g *Game) { hitPlayer(g); g.Step(core.NewInputFrame()) }, core.FrameOf(core.ActionQuit)},
		{"quit beats enter", func(g *Game) { hitPlayer(g); g.Step(core.NewInputFrame()) }, core.FrameOf(core.ActionQuit, core.ActionConfirm)},
		{"game over", func(g *Game) { g.lives = 1; hitPlayer(g); g.Step(core.NewInputFrame()) }, core.FrameOf(core.ActionQuit)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(5)
			tc.setup(g)
			phase := g.phase

			res := g.Step(tc.in)
			if res.Verdict != core.VerdictQuit {
				t.Errorf("verdict = %v, expected quit", res.Verdict)
			}
			if g.phase != phase {
				t.Errorf("quit changed the phase from %v to %v", phase, g.phase)
			}
		})
	}
}

func TestEnterIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(5)

	res := g.Step(core.FrameOf(core.ActionConfirm))
	if res.Verdict != core.VerdictContinue {
		t.Errorf("verdict = %v, expected continue", res.Verdict)
	}
	if hasEvent(res.Events, core.EventResumed) {
		t.Error("Enter while playing should not resume anything")
	}
}
