package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// hit is a (bullet, alien) pair found overlapping during a scan.
type hit struct {
	bullet int
	alien  int
}

// scanAlienHits collects every overlapping player-bullet/alien pair.
// Nothing is removed here; callers apply the result after the scan.
func scanAlienHits(bullets []Projectile, aliens []*Alien) []hit {
	var hits []hit
	for bi, b := range bullets {
		box := b.BoundingBox()
		for ai, a := range aliens {
			if box.Intersects(a.BoundingBox()) {
				hits = append(hits, hit{bullet: bi, alien: ai})
			}
		}
	}
	return hits
}

// scanPlayerHits returns the indices of alien bullets overlapping the player.
func scanPlayerHits(bullets []Projectile, player core.Rect) []int {
	var idx []int
	for i, b := range bullets {
		if b.BoundingBox().Intersects(player) {
			idx = append(idx, i)
		}
	}
	return idx
}

// splitHits turns hit pairs into the index sets to destroy on each side.
func splitHits(hits []hit) (bullets, aliens map[int]bool) {
	bullets = make(map[int]bool, len(hits))
	aliens = make(map[int]bool, len(hits))
	for _, h := range hits {
		bullets[h.bullet] = true
		aliens[h.alien] = true
	}
	return bullets, aliens
}

// indexSet converts a list of indices to a set.
func indexSet(idx []int) map[int]bool {
	set := make(map[int]bool, len(idx))
	for _, i := range idx {
		set[i] = true
	}
	return set
}
