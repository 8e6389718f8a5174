package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fixedHeights cycles through a fixed list of splits.
type fixedHeights struct {
	splits []int
	next   int
}

func (h *fixedHeights) Split(min, max int) int {
	v := h.splits[h.next%len(h.splits)]
	h.next++
	return v
}

func TestSpawnObstacleGeometry(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	o := SpawnObstacle(f, &fixedHeights{splits: []int{150}})

	if o.Upper().X != f.SpawnX || o.Lower().X != f.SpawnX {
		t.Errorf("both boxes should start at spawn x %v, got %v and %v", f.SpawnX, o.Upper().X, o.Lower().X)
	}
	if o.Upper().W != o.Lower().W {
		t.Error("boxes should share width")
	}
	if o.Upper().Top() != 0 || o.Lower().Bottom() != f.FlyAreaHeight {
		t.Errorf("boxes should touch ceiling and floor, got upper top %v, lower bottom %v", o.Upper().Top(), o.Lower().Bottom())
	}
	if gap := o.Lower().Top() - o.Upper().Bottom(); gap != f.GapHeight {
		t.Errorf("gap = %v, expected %v", gap, f.GapHeight)
	}
	if sum := o.Upper().H + f.GapHeight + o.Lower().H; sum != f.FlyAreaHeight {
		t.Errorf("heights sum to %v, expected %v", sum, f.FlyAreaHeight)
	}
}

func TestRandomHeightsStayInRange(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	heights := NewRandomHeights(7)

	for i := 0; i < 2000; i++ {
		o := SpawnObstacle(f, heights)
		if o.Upper().H < float64(f.SplitMin) || o.Upper().H > float64(f.SplitMax) {
			t.Fatalf("split %v outside [%d, %d]", o.Upper().H, f.SplitMin, f.SplitMax)
		}
		if o.Lower().H < 0 {
			t.Fatalf("negative lower height %v", o.Lower().H)
		}
	}
}

func TestRandomHeightsDeterministic(t *testing.T) {
	a := NewRandomHeights(12345)
	b := NewRandomHeights(12345)

	for i := 0; i < 100; i++ {
		if x, y := a.Split(110, 220), b.Split(110, 220); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestObstacleShiftMovesBothBoxes(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	o := newObstacle(f, 100, 150)

	o.Shift(2)

	if o.Upper().X != 98 || o.Lower().X != 98 {
		t.Errorf("both boxes should move together, got %v and %v", o.Upper().X, o.Lower().X)
	}
}

func TestObstacleIntersects(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	o := newObstacle(f, 100, 150) // gap spans y=[150, 240]

	tests := []struct {
		name     string
		box      core.Box
		expected bool
	}{
		{"inside gap", core.NewBox(110, 180, 34, 24), false},
		{"hits upper", core.NewBox(110, 140, 34, 24), true},
		{"hits lower", core.NewBox(110, 230, 34, 24), true},
		{"touches upper edge", core.NewBox(110, 126, 34, 24), true},
		{"left of obstacle", core.NewBox(10, 10, 34, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := o.Intersects(tc.box); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestObstacleRemovable(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	o := newObstacle(f, 0, 150)

	if o.Removable(f.RemovalEdge) {
		t.Error("obstacle at x=0 is still visible and must not be removable")
	}

	o.Shift(50) // right edge at 0: off-screen but inside the margin
	if o.Removable(f.RemovalEdge) {
		t.Error("obstacle should linger until the removal edge")
	}

	o.Shift(30)
	if !o.Removable(f.RemovalEdge) {
		t.Errorf("obstacle with right edge %v should be removable", o.Right())
	}
}

func TestManagerSpawnCadence(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	m := NewObstacleManager(f, &fixedHeights{splits: []int{150}})

	m.Update(0)
	if m.Len() != 0 {
		t.Error("tick 0 must not spawn")
	}

	for tick := 1; tick < f.SpawnInterval; tick++ {
		m.Update(tick)
	}
	if m.Len() != 0 {
		t.Errorf("expected no obstacles before tick %d, got %d", f.SpawnInterval, m.Len())
	}

	m.Update(f.SpawnInterval)
	if m.Len() != 1 {
		t.Fatalf("expected one obstacle at tick %d, got %d", f.SpawnInterval, m.Len())
	}
	// Spawned then shifted in the same update
	if x := m.Obstacles()[0].Left(); x != f.SpawnX-f.ScrollSpeed {
		t.Errorf("new obstacle x = %v, expected %v", x, f.SpawnX-f.ScrollSpeed)
	}
}

func TestManagerMonotonicOrder(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	m := NewObstacleManager(f, NewRandomHeights(99))

	maxLen := 0
	for tick := 1; tick <= 3000; tick++ {
		m.Update(tick)

		obs := m.Obstacles()
		for i := 1; i < len(obs); i++ {
			if obs[i-1].Left() > obs[i].Left() {
				t.Fatalf("tick %d: obstacle %d at x=%v is right of later obstacle at x=%v",
					tick, i-1, obs[i-1].Left(), obs[i].Left())
			}
		}
		maxLen = max(maxLen, len(obs))
	}

	if maxLen == 0 {
		t.Fatal("no obstacles ever spawned")
	}
	if maxLen > 8 {
		t.Errorf("obstacles are not being retired, peak count %d", maxLen)
	}
}

func TestManagerRetiresInOrder(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	m := NewObstacleManager(f, &fixedHeights{splits: []int{120, 200}})
	m.obstacles = append(m.obstacles,
		newObstacle(f, -79, 120), // right edge -29, one shift from removal
		newObstacle(f, 100, 200),
	)

	m.Update(1)

	obs := m.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(obs))
	}
	if obs[0].Upper().H != 200 {
		t.Errorf("wrong survivor kept, upper height %v", obs[0].Upper().H)
	}
}

func TestManagerFirstUnpassed(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	m := NewObstacleManager(f, &fixedHeights{splits: []int{150}})

	if m.FirstUnpassed() != nil {
		t.Error("empty manager should have no unpassed obstacle")
	}

	m.obstacles = append(m.obstacles, newObstacle(f, 10, 150), newObstacle(f, 200, 160))
	m.obstacles[0].passed = true

	first := m.FirstUnpassed()
	if first == nil || first.Left() != 200 {
		t.Fatalf("expected the obstacle at x=200, got %+v", first)
	}

	first.passed = true
	if m.FirstUnpassed() != nil {
		t.Error("all obstacles passed, expected nil")
	}
}

func TestManagerReset(t *testing.T) {
	f := config.DefaultFlappyConfig().Field
	m := NewObstacleManager(f, NewRandomHeights(1))
	for tick := 1; tick <= 200; tick++ {
		m.Update(tick)
	}
	if m.Len() == 0 {
		t.Fatal("expected obstacles before reset")
	}

	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Reset should clear obstacles, got %d", m.Len())
	}
}
