package invaders

// Canvas geometry, in logical pixels.
const (
	CanvasWidth  = 1200
	CanvasHeight = 700
	HUDLineY     = 50
	BreachLineY  = CanvasHeight - 100 // Aliens reaching this line breach the defence
)

// Player parameters.
const (
	PlayerWidth    = 64
	PlayerHeight   = 48
	PlayerVelocity = 8
	StartingLives  = 5
	PlayerMagazine = 2 // Player bullets allowed in flight
)

// Alien parameters.
const (
	AlienWidth    = 48
	AlienHeight   = 32
	AlienMagazine = 3 // Alien bullets allowed in flight

	// AlienFireOdds is the denominator of the per-frame, per-alien chance to
	// fire: an alien fires when a draw in [0, AlienFireOdds) lands on the last
	// value.
	AlienFireOdds = 1001
)

// Laser parameters, shared by both bullet kinds.
const (
	LaserWidth     = 6
	LaserHeight    = 18
	BulletVelocity = 10
)

// Wave layout and scoring.
const (
	WaveColumns    = 11
	WaveRows       = 5
	WaveSize       = WaveColumns * WaveRows
	WaveSpacing    = 64
	WaveOffset     = 64
	ShiftStep      = 10 // Descent per formation shift, multiplied by the round number
	PointsPerAlien = 100
	RoundBonus     = 1000 // Multiplied by the round number being cleared
)

// Pause screen texts.
const (
	textBreach   = "Aliens breached the line!"
	textHit      = "You've been hit!"
	textContinue = "Press 'Enter' to continue"
	textReplay   = "Press 'Enter' to play again"
)
