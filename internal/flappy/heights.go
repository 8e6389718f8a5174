package flappy

import "golang.org/x/exp/rand"

// HeightSource yields the upper box height of each new obstacle.
// Collision and scoring only ever see the returned values, never the generator.
type HeightSource interface {
	// Split returns a value in the inclusive range [min, max].
	Split(min, max int) int
}

// randomHeights draws splits uniformly from a seeded PCG generator.
type randomHeights struct {
	rng *rand.Rand
}

// NewRandomHeights returns a HeightSource that is reproducible for a given seed.
func NewRandomHeights(seed uint64) HeightSource {
	return &randomHeights{rng: rand.New(rand.NewSource(seed))}
}

func (h *randomHeights) Split(min, max int) int {
	if max <= min {
		return min
	}
	return min + h.rng.Intn(max-min+1)
}
