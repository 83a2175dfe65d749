package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	CraftChar      = '•'
	CraftNoseChar  = '▲'
	ObstacleChar   = '#'
	ProjectileChar = '*'
)

// viewport maps playfield coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(field core.Playfield, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / field.W,
		sy: float64(dst.Height()) / field.H,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X * v.sx), int(p.Y * v.sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	DrawSnapshot(dst, snap)

	hud := fmt.Sprintf(" Destroyed: %d ", snap.Destroyed)
	dst.DrawText(2, 0, hud)
	clock := fmt.Sprintf(" %.1fs  Rocks: %d ", snap.Elapsed, len(snap.Obstacles))
	dst.DrawText(dst.Width()-len(clock)-2, 0, clock)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Destroyed: %d  |  Press R to restart", snap.Destroyed))
	}
}

// DrawSnapshot rasterizes a world snapshot, scaled to fill dst.
func DrawSnapshot(dst *core.Screen, snap WorldSnapshot) {
	vp := newViewport(snap.Playfield, dst)

	for _, o := range snap.Obstacles {
		color := core.ColorWhite
		if o.Level == LevelSmall {
			color = core.ColorGray
		}
		drawPolygon(dst, vp, o.Outline, ObstacleChar, color)
	}

	for _, p := range snap.Projectiles {
		x, y := vp.cell(p.Pos)
		dst.SetColored(x, y, ProjectileChar, core.ColorYellow)
	}

	craftColor := core.ColorCyan
	if snap.Phase == GameOver {
		craftColor = core.ColorRed
	}
	drawPolygon(dst, vp, snap.Craft.Outline, CraftChar, craftColor)
	if len(snap.Craft.Outline) > 0 {
		x, y := vp.cell(snap.Craft.Outline[0])
		dst.SetColored(x, y, CraftNoseChar, craftColor)
	}
}

// drawPolygon draws a closed outline. Vertices outside the screen are clipped
// cell by cell.
func drawPolygon(dst *core.Screen, vp viewport, pts []core.Vec2, r rune, c core.Color) {
	for i := range pts {
		x0, y0 := vp.cell(pts[i])
		x1, y1 := vp.cell(pts[(i+1)%len(pts)])
		dst.DrawLine(x0, y0, x1, y1, r, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
