package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	sim := New(1)
	screen := core.NewScreen(80, 24)

	Render(sim.Snapshot(), screen)

	if screen.Get(0, 23) != GroundChar {
		t.Errorf("ground should be drawn on the last row, got %q", screen.Get(0, 23))
	}
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("start screen should show the start prompt")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from row 0: %q", screen.Row(0))
	}
}

func TestRenderAvatarPlacement(t *testing.T) {
	sim := New(1)
	screen := core.NewScreen(80, 24)

	Render(sim.Snapshot(), screen)

	// Avatar box x=[60, 94], y=[210, 234] maps to columns 7-11 and rows 12-13
	// (640 units over 80 columns, 420 units over 22 rows below the HUD).
	if got := screen.Get(8, 12); got != AvatarChar {
		t.Errorf("expected avatar body at (8, 12), got %q", got)
	}
	if got := screen.Get(11, 12); got != AvatarBeak {
		t.Errorf("expected avatar beak at (11, 12), got %q", got)
	}
	if got := screen.Get(12, 12); got == AvatarChar {
		t.Error("avatar drawn past its right edge")
	}
}

func TestRenderObstacle(t *testing.T) {
	sim := newTestSim(t, 150)
	f := sim.Config().Field
	sim.Play()
	sim.obstacles.obstacles = append(sim.obstacles.obstacles, newObstacle(f, 320, 210))
	screen := core.NewScreen(80, 24)

	Render(sim.Snapshot(), screen)

	// x=320 maps to column 40; the upper box covers field rows 0-10.
	if got := screen.Get(41, 1); got != PipeChar {
		t.Errorf("expected upper body at (41, 1), got %q", got)
	}
	if got := screen.Get(41, 11); got != PipeCapTop {
		t.Errorf("expected upper cap at (41, 11), got %q", got)
	}
	// Gap: field rows 11-15 are open.
	if got := screen.Get(41, 14); got != ' ' {
		t.Errorf("expected the gap at (41, 14), got %q", got)
	}
	if got := screen.Get(41, 22); got != PipeChar {
		t.Errorf("expected lower body at (41, 22), got %q", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	sim := New(1)
	sim.Play()
	for sim.Tick() == StatePlaying {
	}
	screen := core.NewScreen(80, 24)

	Render(sim.Snapshot(), screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over panel missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	screen := core.NewScreen(10, 4)

	Render(New(1).Snapshot(), screen)

	if !strings.HasPrefix(screen.Row(0), "Window too") {
		t.Errorf("tiny screen should show a warning, got %q", screen.Row(0))
	}
}
