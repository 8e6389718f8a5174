package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar    = '●'
	AvatarBeak    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Minimum screen size the field can be drawn on.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Render draws a snapshot onto dst. Row 0 is the HUD, the last row is the
// ground, and the fly area is scaled into the rows between.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	v := newViewport(snap, dst)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawAvatar(dst, v, snap)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorOrange)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightYellow)

	switch snap.State {
	case StateStart:
		drawCenteredMessage(dst, "FLAPPY", "Press SPACE to start")
	case StateOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  SPACE to retry", snap.Score, snap.HighScore))
	case StatePlaying:
	}
}

// viewport converts world units to screen cells.
type viewport struct {
	cols   float64
	rows   int // Rows occupied by the fly area
	width  float64
	height float64
	top    int // First row of the fly area
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	return viewport{
		cols:   float64(dst.Width()),
		rows:   dst.Height() - 2, // HUD and ground
		width:  snap.Field.ViewWidth,
		height: snap.Field.FlyAreaHeight,
		top:    1,
	}
}

// Multiply before dividing so exact world edges land on exact cell edges.
func (v viewport) col(x float64) float64 { return x * v.cols / v.width }
func (v viewport) row(y float64) float64 { return y * float64(v.rows) / v.height }

// cells maps a world box to the cells it covers, clipped to the fly area.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(v.col(b.Left())))
	x1 := int(math.Ceil(v.col(b.Right())))
	y0 := core.Clamp(int(math.Floor(v.row(b.Top()))), 0, v.rows)
	y1 := core.Clamp(int(math.Ceil(v.row(b.Bottom()))), 0, v.rows)
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

func drawObstacle(dst *core.Screen, v viewport, o ObstacleView) {
	upper := v.cells(o.Upper)
	if upper.H > 0 {
		dst.DrawRect(upper, PipeChar, core.ColorGreen)
		dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, PipeCapTop, core.ColorBrightGreen)
	}

	lower := v.cells(o.Lower)
	if lower.H > 0 {
		dst.DrawRect(lower, PipeChar, core.ColorGreen)
		dst.DrawHLine(lower.X, lower.Y, lower.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawAvatar(dst *core.Screen, v viewport, snap Snapshot) {
	r := v.cells(snap.Avatar)
	color := core.ColorBrightYellow
	if snap.Dead || snap.State == StateOver {
		color = core.ColorRed
	}
	dst.DrawRect(r, AvatarChar, color)
	dst.SetColored(r.Right()-1, r.Y, AvatarBeak, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	panel := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
