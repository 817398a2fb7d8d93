package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Alien is a single member of the formation.
type Alien struct {
	rect      core.Rect
	originX   int
	originY   int
	direction int // +1 right, -1 left
	velocity  int // Equals the round number the alien was spawned in
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(x, y, velocity int) *Alien {
	return &Alien{
		rect:      core.NewRect(x, y, AlienWidth, AlienHeight),
		originX:   x,
		originY:   y,
		direction: 1,
		velocity:  velocity,
	}
}

// Advance steps the alien horizontally in its current direction.
func (a *Alien) Advance(dt int) {
	a.rect.X += a.direction * a.velocity * dt
}

// BoundingBox returns the alien's rectangle.
func (a *Alien) BoundingBox() core.Rect {
	return a.rect
}

// ResetToOrigin puts the alien back where it was spawned, moving right.
func (a *Alien) ResetToOrigin() {
	a.rect.X = a.originX
	a.rect.Y = a.originY
	a.direction = 1
}

// AtSideEdge reports whether the alien touches either side of the canvas.
func (a *Alien) AtSideEdge() bool {
	return a.rect.Left() <= 0 || a.rect.Right() >= CanvasWidth
}

// descend drops the alien, reverses it and takes one step the other way.
func (a *Alien) descend(dy int) {
	a.rect.Y += dy
	a.direction = -a.direction
	a.rect.X += a.direction * a.velocity
}

// Fire drops a bullet from the alien's underside unless the magazine is full.
func (a *Alien) Fire(bullets *Bullets) bool {
	if bullets.Full() {
		return false
	}
	return bullets.Add(NewAlienBullet(a.rect.CenterX(), a.rect.Bottom()))
}
