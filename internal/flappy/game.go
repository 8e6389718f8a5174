// Package flappy implements the avoidance game simulation: an avatar falls
// under gravity, jumps on command, and must pass through a stream of gapped
// obstacles scrolling in from the right.
//
// The simulation is deterministic for a given configuration and HeightSource.
// It never blocks, spawns goroutines or logs; the platform drives it with
// ticks and commands and reads Snapshots to draw.
package flappy

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Simulation coordinates one avatar, its obstacles, and scoring.
// Every exported method holds the simulation lock for its whole duration,
// so ticks and commands never interleave.
type Simulation struct {
	mu        sync.Mutex
	cfg       config.FlappyConfig
	avatar    Avatar
	obstacles ObstacleManager
	score     int
	highScore int
	tick      int
	state     GameState
}

// New creates a simulation with the default configuration and a seeded
// height source.
func New(seed uint64) *Simulation {
	sim, err := NewWithConfig(config.DefaultFlappyConfig(), NewRandomHeights(seed))
	if err != nil {
		panic(fmt.Sprintf("flappy: default config rejected: %v", err))
	}
	return sim
}

// NewWithConfig creates a simulation in the Start state.
// It returns the config's validation error unchanged if cfg cannot run.
func NewWithConfig(cfg config.FlappyConfig, heights HeightSource) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:       cfg,
		avatar:    NewAvatar(cfg),
		obstacles: NewObstacleManager(cfg.Field, heights),
		state:     StateStart,
	}, nil
}

// Play starts a round. No-op unless the state is Start.
func (s *Simulation) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateStart:
		s.state = StatePlaying
	case StatePlaying, StateOver:
	}
}

// Jump makes the avatar jump. No-op unless the state is Playing.
func (s *Simulation) Jump() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		s.avatar.Jump()
	case StateStart, StateOver:
	}
}

// Reset returns to Start with a fresh avatar, no obstacles, and zero score
// and tick. The high score is kept.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.avatar.Reset()
	s.obstacles.Reset()
	s.score = 0
	s.tick = 0
	s.state = StateStart
}

// Tick advances the simulation by one fixed step while Playing and
// returns the resulting state. In any other state it does nothing.
func (s *Simulation) Tick() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		return s.advance()
	case StateStart, StateOver:
	}
	return s.state
}

// advance runs one tick: avatar physics, then obstacles, then collision
// and scoring against the oldest unscored obstacle.
func (s *Simulation) advance() GameState {
	s.tick++

	s.avatar.Update()
	if s.avatar.Dead() {
		return s.gameOver()
	}

	s.obstacles.Update(s.tick)
	if s.obstacles.Len() == 0 {
		return s.state
	}

	// Obstacles never reorder and spawn at the same x, so the oldest
	// unscored one is also the nearest one ahead of the avatar.
	next := s.obstacles.FirstUnpassed()
	if next == nil {
		return s.state
	}

	box := s.avatar.Box()
	if box.Right() >= next.Left() && next.Intersects(box) {
		return s.gameOver()
	}
	if box.Left() > next.Right() {
		next.passed = true
		s.score++
	}

	return s.state
}

func (s *Simulation) gameOver() GameState {
	s.state = StateOver
	if s.score > s.highScore {
		s.highScore = s.score
	}
	return s.state
}

// State returns the current game state.
func (s *Simulation) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the number of obstacles cleared this round.
func (s *Simulation) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// HighScore returns the best score of any finished round in this process.
func (s *Simulation) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}
