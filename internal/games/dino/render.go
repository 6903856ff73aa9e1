package dino

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/runner"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps playfield pixels to screen cells.
type viewport struct {
	top    int
	sx, sy float64 // Cells per playfield pixel
}

func newViewport(phys config.DinoPhysics, dst *core.Screen) viewport {
	rows := core.Max(dst.Height()-hudRows, 1)
	return viewport{
		top: hudRows,
		sx:  float64(dst.Width()) / phys.FieldWidth,
		sy:  float64(rows) / phys.FieldHeight,
	}
}

func (v viewport) cellX(fx float64) int {
	return int(math.Floor(fx * v.sx))
}

func (v viewport) cellY(fy float64) int {
	return v.top + int(math.Floor(fy*v.sy))
}

// drawPattern fills every cell that covers at least one filled block of
// pattern. Coverage keeps thin shapes visible on small terminals.
func (v viewport) drawPattern(dst *core.Screen, pattern []string, x, y, block float64, r rune, c core.Color) {
	rows := len(pattern)
	if rows == 0 {
		return
	}
	cols := len(pattern[0])
	w, h := float64(cols)*block, float64(rows)*block

	// Shave a hair off the far edge so an exact cell boundary is exclusive
	const eps = 1e-6
	for cy := v.cellY(y); cy <= v.cellY(y+h-eps); cy++ {
		fy0 := float64(cy-v.top) / v.sy
		fy1 := float64(cy-v.top+1) / v.sy
		r0 := core.Max(int(math.Floor((fy0-y)/block)), 0)
		r1 := core.Min(int(math.Ceil((fy1-y)/block))-1, rows-1)

		for cx := v.cellX(x); cx <= v.cellX(x+w-eps); cx++ {
			fx0 := float64(cx) / v.sx
			fx1 := float64(cx+1) / v.sx
			c0 := core.Max(int(math.Floor((fx0-x)/block)), 0)
			c1 := core.Min(int(math.Ceil((fx1-x)/block))-1, cols-1)

			if covered(pattern, r0, r1, c0, c1) {
				dst.SetColored(cx, cy, r, c)
			}
		}
	}
}

func covered(pattern []string, r0, r1, c0, c1 int) bool {
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if pattern[row][col] == '#' {
				return true
			}
		}
	}
	return false
}

// cellRect returns the screen cells spanned by a playfield rectangle.
func (v viewport) cellRect(r core.Rect) core.Rect {
	x0, y0 := v.cellX(float64(r.X)), v.cellY(float64(r.Y))
	x1, y1 := v.cellX(float64(r.Right())-1e-6), v.cellY(float64(r.Bottom())-1e-6)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// groundRow is the first row below everything standing on the ground.
func (v viewport) groundRow(groundY float64) int {
	return v.cellY(groundY-1e-6) + 1
}

func (g *Game) drawGround(dst *core.Screen, v viewport) {
	groundRow := v.groundRow(g.cfg.Physics.GroundY)
	for x := range dst.Width() {
		dst.SetColored(x, groundRow, GroundChar, g.theme.Ground)
	}

	// Dirt specks scroll with the obstacles
	offset := int(g.distance * v.sx)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := range dst.Width() {
			if (x+offset+y*3)%7 == 0 {
				dst.SetColored(x, y, DirtChar, g.theme.Dim)
			}
		}
	}
}

func (g *Game) drawObstacles(dst *core.Screen, v viewport) {
	block := float64(g.cfg.Obstacles.BlockSize)
	for _, o := range g.run.Field().Obstacles() {
		v.drawPattern(dst, o.Shape.Pattern(), o.X, o.Y, block, CactusChar, g.theme.Obstacle)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.run.Player()

	// Blink while invulnerable after a hit
	if p.Invulnerable > 0 && (p.Invulnerable/6)%2 == 1 {
		return
	}

	cells := v.cellRect(p.Bounds())
	if p.IsDashing() {
		for y := cells.Y; y < cells.Bottom(); y++ {
			for x := core.Max(cells.X-3, 0); x < cells.X; x++ {
				dst.SetColored(x, y, TrailChar, g.theme.Dash)
			}
		}
	}

	block := float64(g.cfg.Obstacles.BlockSize)
	v.drawPattern(dst, dinoSprite(p.Frame, p.OnGround), p.X, p.Y, block, DinoChar, g.theme.Player)

	if p.Shield.Active {
		g.drawShield(dst, cells.Inflate(2, 2), shieldChars[p.Shield.Stage()])
	}
}

// drawShield outlines r without covering the sprite.
func (g *Game) drawShield(dst *core.Screen, r core.Rect, ch rune) {
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, ch, g.theme.Shield)
		dst.SetColored(x, r.Bottom()-1, ch, g.theme.Shield)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, ch, g.theme.Shield)
		dst.SetColored(r.Right()-1, y, ch, g.theme.Shield)
	}
}

// drawHUD writes the status line: score, coins, health, abilities, speed.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.run.State()
	p := g.run.Player()

	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(fmt.Sprintf("Score %06d", st.Score), g.theme.HUD)
	if g.classic {
		put("CLASSIC", g.theme.Dim)
	} else {
		put(fmt.Sprintf("Coins %d (+%d)", g.bankedCoins+st.Coins, st.Coins), g.theme.Coins)
		put(hearts(p.Health, p.MaxHealth), g.theme.Hearts)
		if g.levels.Shield > 0 {
			put("Shield "+g.shieldStatus(p), g.theme.Shield)
		}
		if g.levels.AirDash > 0 {
			put("Dash "+g.dashStatus(p), g.theme.Dash)
		}
	}

	speed := fmt.Sprintf("Spd %.2f", g.run.Field().CurrentSpeed())
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, g.theme.Dim)

	if g.flashTicks > 0 && g.flash != "" {
		dst.DrawTextColored((dst.Width()-len(g.flash))/2, hudRows+1, g.flash, g.theme.Alert)
	}
}

func hearts(current, limit int) string {
	return strings.Repeat(string(HeartFull), current) + strings.Repeat(string(HeartEmpty), core.Max(limit-current, 0))
}

func (g *Game) shieldStatus(p *runner.Player) string {
	switch {
	case p.Shield.Active:
		return fmt.Sprintf("ON %.1fs", g.seconds(p.Shield.Duration))
	case p.Shield.Cooldown > 0:
		return fmt.Sprintf("%.0fs", math.Ceil(g.seconds(p.Shield.Cooldown)))
	default:
		return "READY"
	}
}

func (g *Game) dashStatus(p *runner.Player) string {
	switch {
	case p.IsDashing():
		return "GO"
	case p.Dash.Cooldown > 0:
		return fmt.Sprintf("%.0fs", math.Ceil(g.seconds(p.Dash.Cooldown)))
	default:
		return "READY"
	}
}

// seconds converts ticks to seconds at the configured tick rate.
func (g *Game) seconds(ticks int) float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(ticks) / float64(rate)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		c := g.theme.HUD
		if i == 0 {
			c = g.theme.Alert
		}
		dst.DrawTextColored(boxX+(boxW-len([]rune(l)))/2, boxY+2+i, l, c)
	}
}
