package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is the behaviour shared by everything that moves on the canvas.
type Entity interface {
	// Advance moves the entity by dt frames.
	Advance(dt int)

	// BoundingBox returns the entity's current rectangle.
	BoundingBox() core.Rect

	// ResetToOrigin returns the entity to where it started.
	ResetToOrigin()
}

// Projectile is an entity that removes itself once it leaves the canvas.
type Projectile interface {
	Entity

	// OffScreen reports whether the projectile has left the canvas.
	OffScreen() bool
}

var (
	_ Entity     = (*Player)(nil)
	_ Entity     = (*Alien)(nil)
	_ Projectile = (*PlayerBullet)(nil)
	_ Projectile = (*AlienBullet)(nil)
)
