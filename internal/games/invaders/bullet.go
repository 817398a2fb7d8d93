package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// laser is the geometry shared by both bullet kinds.
type laser struct {
	rect   core.Rect
	origin core.Rect
}

func newLaser(centerX, centerY int) laser {
	r := core.NewRect(0, 0, LaserWidth, LaserHeight)
	r.SetCenter(centerX, centerY)
	return laser{rect: r, origin: r}
}

// BoundingBox returns the laser's rectangle.
func (l *laser) BoundingBox() core.Rect {
	return l.rect
}

// ResetToOrigin moves the laser back to where it was fired.
func (l *laser) ResetToOrigin() {
	l.rect = l.origin
}

// PlayerBullet travels up the screen.
type PlayerBullet struct {
	laser
}

// NewPlayerBullet creates a bullet centred on (x, y).
func NewPlayerBullet(x, y int) *PlayerBullet {
	return &PlayerBullet{laser: newLaser(x, y)}
}

// Advance moves the bullet up.
func (b *PlayerBullet) Advance(dt int) {
	b.rect.Y -= BulletVelocity * dt
}

// OffScreen reports whether the bullet has left through the top.
func (b *PlayerBullet) OffScreen() bool {
	return b.rect.Bottom() < 0
}

// AlienBullet travels down the screen.
type AlienBullet struct {
	laser
}

// NewAlienBullet creates a bullet centred on (x, y).
func NewAlienBullet(x, y int) *AlienBullet {
	return &AlienBullet{laser: newLaser(x, y)}
}

// Advance moves the bullet down.
func (b *AlienBullet) Advance(dt int) {
	b.rect.Y += BulletVelocity * dt
}

// OffScreen reports whether the bullet has left through the bottom.
func (b *AlienBullet) OffScreen() bool {
	return b.rect.Top() > CanvasHeight
}

// Bullets is a capped collection of projectiles in flight.
type Bullets struct {
	items []Projectile
	limit int
}

// NewBullets creates an empty collection holding at most limit projectiles.
func NewBullets(limit int) *Bullets {
	return &Bullets{
		items: make([]Projectile, 0, limit),
		limit: limit,
	}
}

// Len returns the number of projectiles in flight.
func (b *Bullets) Len() int {
	return len(b.items)
}

// Full reports whether the magazine cap has been reached.
func (b *Bullets) Full() bool {
	return len(b.items) >= b.limit
}

// Add appends a projectile. Returns false if the collection is full.
func (b *Bullets) Add(p Projectile) bool {
	if b.Full() {
		return false
	}
	b.items = append(b.items, p)
	return true
}

// Items returns the projectiles in flight. The slice must not be modified.
func (b *Bullets) Items() []Projectile {
	return b.items
}

// Advance moves every projectile and drops those that left the canvas.
func (b *Bullets) Advance(dt int) {
	kept := b.items[:0]
	for _, p := range b.items {
		p.Advance(dt)
		if !p.OffScreen() {
			kept = append(kept, p)
		}
	}
	clear(b.items[len(kept):])
	b.items = kept
}

// Remove drops the projectiles at the given indices.
func (b *Bullets) Remove(dead map[int]bool) {
	if len(dead) == 0 {
		return
	}
	kept := b.items[:0]
	for i, p := range b.items {
		if !dead[i] {
			kept = append(kept, p)
		}
	}
	clear(b.items[len(kept):])
	b.items = kept
}

// Clear removes every projectile.
func (b *Bullets) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}
