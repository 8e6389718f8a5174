package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleView is a read-only copy of one obstacle.
type ObstacleView struct {
	Upper  core.Box
	Lower  core.Box
	Passed bool
}

// Snapshot captures the complete simulation state for rendering and
// determinism checks. It shares no memory with the simulation.
type Snapshot struct {
	State     GameState
	Tick      int
	Score     int
	HighScore int
	Avatar    core.Box
	Speed     float64
	Dead      bool
	Obstacles []ObstacleView // Spawn order, oldest first
	Field     config.Field
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]ObstacleView, 0, s.obstacles.Len())
	for _, o := range s.obstacles.obstacles {
		views = append(views, ObstacleView{
			Upper:  o.upper,
			Lower:  o.lower,
			Passed: o.passed,
		})
	}

	return Snapshot{
		State:     s.state,
		Tick:      s.tick,
		Score:     s.score,
		HighScore: s.highScore,
		Avatar:    s.avatar.Box(),
		Speed:     s.avatar.Speed(),
		Dead:      s.avatar.Dead(),
		Obstacles: views,
		Field:     s.cfg.Field,
	}
}

// NextObstacle returns the oldest unscored obstacle in the snapshot.
func (snap Snapshot) NextObstacle() (ObstacleView, bool) {
	for _, o := range snap.Obstacles {
		if !o.Passed {
			return o, true
		}
	}
	return ObstacleView{}, false
}
