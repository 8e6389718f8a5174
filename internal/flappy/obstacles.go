package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of boxes with a gap between them.
// Both boxes always share X and W; upper.H + gap + lower.H equals the fly area height.
type Obstacle struct {
	upper  core.Box
	lower  core.Box
	passed bool // Whether the avatar has cleared this obstacle (for scoring)
}

// SpawnObstacle creates an obstacle at the spawn coordinate with its split
// drawn from heights.
func SpawnObstacle(f config.Field, heights HeightSource) Obstacle {
	split := heights.Split(f.SplitMin, f.SplitMax)
	return newObstacle(f, f.SpawnX, float64(split))
}

// newObstacle creates an obstacle at x whose upper box is split units tall.
func newObstacle(f config.Field, x, split float64) Obstacle {
	lowerY := split + f.GapHeight
	return Obstacle{
		upper: core.NewBox(x, 0, f.ObstacleWidth, split),
		lower: core.NewBox(x, lowerY, f.ObstacleWidth, f.FlyAreaHeight-lowerY),
	}
}

// Shift moves both boxes left by distance.
func (o *Obstacle) Shift(distance float64) {
	o.upper.X -= distance
	o.lower.X -= distance
}

// Intersects returns true if b touches either box.
func (o Obstacle) Intersects(b core.Box) bool {
	return o.upper.Intersects(b) || o.lower.Intersects(b)
}

// Removable reports whether the right edge has scrolled to or past edge.
func (o Obstacle) Removable(edge float64) bool {
	return o.upper.Right() <= edge
}

// Left returns the shared left edge of both boxes.
func (o Obstacle) Left() float64 {
	return o.upper.Left()
}

// Right returns the shared right edge of both boxes.
func (o Obstacle) Right() float64 {
	return o.upper.Right()
}

// Upper returns the box hanging from the ceiling.
func (o Obstacle) Upper() core.Box {
	return o.upper
}

// Lower returns the box standing on the floor.
func (o Obstacle) Lower() core.Box {
	return o.lower
}

// Passed reports whether the obstacle has been scored.
func (o Obstacle) Passed() bool {
	return o.passed
}

// ObstacleManager handles spawning, scrolling, and retiring obstacles.
// Obstacles are kept in spawn order, which is also left-to-right order.
type ObstacleManager struct {
	obstacles []Obstacle
	field     config.Field
	heights   HeightSource
}

// NewObstacleManager creates an empty manager.
func NewObstacleManager(f config.Field, heights HeightSource) ObstacleManager {
	return ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		field:     f,
		heights:   heights,
	}
}

// Reset removes all obstacles. The height source is not reseeded.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
}

// Update spawns, scrolls and retires obstacles for the given tick.
func (m *ObstacleManager) Update(tick int) {
	if tick > 0 && tick%m.field.SpawnInterval == 0 {
		m.obstacles = append(m.obstacles, SpawnObstacle(m.field, m.heights))
	}

	for i := range m.obstacles {
		m.obstacles[i].Shift(m.field.ScrollSpeed)
	}

	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if !o.Removable(m.field.RemovalEdge) {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept
}

// FirstUnpassed returns the oldest obstacle not yet scored, or nil.
// The pointer is valid until the next Update or Reset.
func (m *ObstacleManager) FirstUnpassed() *Obstacle {
	for i := range m.obstacles {
		if !m.obstacles[i].passed {
			return &m.obstacles[i]
		}
	}
	return nil
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (m *ObstacleManager) Obstacles() []Obstacle {
	out := make([]Obstacle, len(m.obstacles))
	copy(out, m.obstacles)
	return out
}
