package invaders

// Formation is the set of live aliens in the current wave.
type Formation struct {
	aliens []*Alien
}

// NewWave spawns a full grid of aliens moving at the given velocity.
func NewWave(velocity int) *Formation {
	f := &Formation{aliens: make([]*Alien, 0, WaveSize)}
	for col := 0; col < WaveColumns; col++ {
		for row := 0; row < WaveRows; row++ {
			x := WaveOffset + col*WaveSpacing
			y := WaveOffset + row*WaveSpacing
			f.aliens = append(f.aliens, NewAlien(x, y, velocity))
		}
	}
	return f
}

// Len returns the number of live aliens.
func (f *Formation) Len() int {
	return len(f.aliens)
}

// Empty reports whether every alien has been destroyed.
func (f *Formation) Empty() bool {
	return len(f.aliens) == 0
}

// Aliens returns the live aliens. The slice must not be modified.
func (f *Formation) Aliens() []*Alien {
	return f.aliens
}

// ResetToOrigin returns every alien to its spawn point.
func (f *Formation) ResetToOrigin() {
	for _, a := range f.aliens {
		a.ResetToOrigin()
	}
}

// Shift runs the two-pass edge check. The first pass looks at the whole
// set; only if some alien touches a side does the second pass move every
// alien down by ShiftStep*round, reverse it and step it once. Reports
// whether a shift happened and whether any alien reached the breach line.
func (f *Formation) Shift(round int) (shifted, breached bool) {
	for _, a := range f.aliens {
		if a.AtSideEdge() {
			shifted = true
			break
		}
	}
	if !shifted {
		return false, false
	}

	for _, a := range f.aliens {
		a.descend(ShiftStep * round)
		if a.rect.Bottom() >= BreachLineY {
			breached = true
		}
	}
	return true, breached
}

// Remove drops the aliens at the given indices.
func (f *Formation) Remove(dead map[int]bool) {
	if len(dead) == 0 {
		return
	}
	kept := f.aliens[:0]
	for i, a := range f.aliens {
		if !dead[i] {
			kept = append(kept, a)
		}
	}
	clear(f.aliens[len(kept):])
	f.aliens = kept
}

// Clear removes every alien.
func (f *Formation) Clear() {
	clear(f.aliens)
	f.aliens = f.aliens[:0]
}
