package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Player is the ship the user controls. It only moves horizontally.
type Player struct {
	rect     core.Rect
	velocity int
	left     bool // Left held this frame
	right    bool // Right held this frame
}

// NewPlayer creates a player centred at the bottom of the canvas.
func NewPlayer() *Player {
	p := &Player{
		rect:     core.NewRect(0, CanvasHeight-PlayerHeight, PlayerWidth, PlayerHeight),
		velocity: PlayerVelocity,
	}
	p.ResetToOrigin()
	return p
}

// Steer records which direction keys are held for the next Advance.
func (p *Player) Steer(left, right bool) {
	p.left = left
	p.right = right
}

// Advance moves the player by its velocity while a direction is held and
// the ship has not reached that edge.
func (p *Player) Advance(dt int) {
	if p.left && p.rect.Left() > 0 {
		p.rect.X -= p.velocity * dt
	}
	if p.right && p.rect.Right() < CanvasWidth {
		p.rect.X += p.velocity * dt
	}
}

// BoundingBox returns the player's rectangle.
func (p *Player) BoundingBox() core.Rect {
	return p.rect
}

// ResetToOrigin re-centres the player horizontally.
func (p *Player) ResetToOrigin() {
	p.rect.SetCenterX(CanvasWidth / 2)
}

// Fire adds a bullet at the nose of the ship unless the magazine is full.
// Reports whether a bullet was created.
func (p *Player) Fire(bullets *Bullets) bool {
	if bullets.Full() {
		return false
	}
	return bullets.Add(NewPlayerBullet(p.rect.CenterX(), p.rect.Top()))
}
