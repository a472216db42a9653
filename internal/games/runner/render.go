package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cinnarun/internal/core"
)

// Visual characters for rendering
const (
	FloorTopChar = '▀'
	FloorChar    = '█'
	CloudChar    = '░'
	BodyChar     = '█'
)

// Sprites drawn when an entity covers exactly the sprite's cell size.
// Anything else falls back to a solid block.
var (
	playerSprite = []string{
		` /\__/\ `,
		`( o  o )`,
		` (  w ) `,
		`  U  U  `,
	}
	mushroomSprite = []string{
		`(@@)`,
		` || `,
	}
	wingSprite = []string{
		`<oo>`,
		`V  V`,
	}
)

// cloudLobe is one circle of a cloud, relative to its size.
type cloudLobe struct {
	dx, dy, r float64
}

// cloudShape overlaps four circles into a puffy cloud.
var cloudShape = []cloudLobe{
	{0, 0, 1},
	{-0.6, 0.4, 0.8},
	{0.6, 0.4, 0.8},
	{0, -0.4, 0.7},
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	switch snap.State {
	case NotStarted:
		g.drawTitle(dst)
	case Won:
		g.drawVictory(dst, snap)
	default:
		g.drawScene(dst, snap)
		if snap.State == Lost {
			drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score), core.ColorAlert)
		}
	}
}

// drawTitle renders the start screen.
func (g *Game) drawTitle(dst *core.Screen) {
	floorRow := dst.Height() - int(math.Ceil(g.cfg.World.FloorHeight/g.cfg.Display.CellHeight))
	drawFloor(dst, floorRow)
	drawCenteredMessage(dst, g.Title(), "Press Enter or Space to start", core.ColorHUD)
}

// drawVictory replaces the scene with a celebration.
func (g *Game) drawVictory(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "★ ★ ★", core.ColorCelebrate)
	dst.DrawTextCentered(mid, fmt.Sprintf("Congratulations! You reached %d!", snap.WinScore), core.ColorCelebrate)
	dst.DrawTextCentered(mid+2, "R play again  |  Q quit", core.ColorHUD)
}

// drawScene renders floor, clouds, player, obstacles and the score.
func (g *Game) drawScene(dst *core.Screen, snap Snapshot) {
	d := g.cfg.Display

	drawFloor(dst, int(math.Floor(snap.FloorTop/d.CellHeight)))

	for _, c := range snap.Decorations {
		g.drawCloud(dst, c)
	}

	drawSprite(dst, g.cells(snap.Player), playerSprite, core.ColorPlayer)

	for _, o := range snap.Obstacles {
		sprite, color := mushroomSprite, core.ColorMushroom
		if o.Variant == VariantWing {
			sprite, color = wingSprite, core.ColorWing
		}
		drawSprite(dst, g.cells(o.Box), sprite, color)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorHUD)
}

// cells converts a world box into screen cells, rounding position and
// size independently so sprites keep their shape while moving.
func (g *Game) cells(b core.Box) core.Rect {
	d := g.cfg.Display
	return core.NewRect(
		int(math.Round(b.X/d.CellWidth)),
		int(math.Round(b.Y/d.CellHeight)),
		int(math.Round(b.W/d.CellWidth)),
		int(math.Round(b.H/d.CellHeight)),
	)
}

// drawCloud fills every cell whose center lies inside one of the lobes.
func (g *Game) drawCloud(dst *core.Screen, c DecorationView) {
	d := g.cfg.Display
	reach := 1.6 * c.Size

	minCol := int(math.Floor((c.X - reach) / d.CellWidth))
	maxCol := int(math.Ceil((c.X + reach) / d.CellWidth))
	minRow := int(math.Floor((c.Y - reach) / d.CellHeight))
	maxRow := int(math.Ceil((c.Y + reach) / d.CellHeight))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			px := (float64(col) + 0.5) * d.CellWidth
			py := (float64(row) + 0.5) * d.CellHeight
			for _, l := range cloudShape {
				dx := px - (c.X + l.dx*c.Size)
				dy := py - (c.Y + l.dy*c.Size)
				r := l.r * c.Size
				if dx*dx+dy*dy <= r*r {
					dst.SetColored(col, row, CloudChar, core.ColorCloud)
					break
				}
			}
		}
	}
}

// drawFloor fills everything from row downward.
func drawFloor(dst *core.Screen, row int) {
	row = core.Clamp(row, 0, dst.Height())
	dst.DrawHLine(0, row, dst.Width(), FloorTopChar, core.ColorFloor)
	dst.DrawRect(core.NewRect(0, row+1, dst.Width(), dst.Height()-row-1), FloorChar, core.ColorFloor)
}

// drawSprite draws lines into r when they fit exactly, otherwise fills r.
func drawSprite(dst *core.Screen, r core.Rect, lines []string, color core.Color) {
	if len(lines) != r.H || len([]rune(lines[0])) != r.W {
		dst.DrawRect(r, BodyChar, color)
		return
	}
	for dy, line := range lines {
		for dx, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, color)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorHUD)
}
