package flight

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/physics"
)

// Terminal glyphs.
const (
	HillChar   = '░'
	RockChar   = '█'
	GroundChar = '▓'
	PlaneChar  = '█'
	PuffChar   = '∘'
	FaintChar  = '·'
)

// grid maps world pixels to character cells.
type grid struct {
	cols, rows int
	cw, ch     float64 // Pixels per cell
}

func newGrid(dst *core.Screen, worldW, worldH float64) grid {
	g := grid{cols: dst.Width(), rows: dst.Height()}
	if g.cols > 0 && g.rows > 0 {
		g.cw = worldW / float64(g.cols)
		g.ch = worldH / float64(g.rows)
	}
	return g
}

func (g grid) center(c, r int) (float64, float64) {
	return (float64(c) + 0.5) * g.cw, (float64(r) + 0.5) * g.ch
}

func (g grid) cell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cw)), int(math.Floor(y / g.ch))
}

// fill sets every cell whose center lies inside one of the body's parts.
func (g grid) fill(dst *core.Screen, b *physics.Body, r rune, c core.Color) {
	for _, part := range b.Parts() {
		box := part.Bounds()
		c0, r0 := g.cell(box.X, box.Y)
		c1, r1 := g.cell(box.Right(), box.Bottom())
		c0, r0 = core.Max(c0, 0), core.Max(r0, 0)
		c1, r1 = core.Min(c1, g.cols-1), core.Min(r1, g.rows-1)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				x, y := g.center(col, row)
				if part.Contains(x, y) {
					dst.SetColored(col, row, r, c)
				}
			}
		}
	}
}

// Render draws the session onto a character grid scaled from world pixels.
func (g *GameScene) Render(dst *core.Screen) {
	dst.Clear()
	gr := newGrid(dst, g.width, g.height)
	if gr.cw == 0 {
		return
	}

	g.renderHills(dst, gr)

	for _, r := range g.rocks.Rocks() {
		if !r.Visible {
			continue
		}
		gr.fill(dst, r.Top, RockChar, core.ColorGray)
		gr.fill(dst, r.Bottom, RockChar, core.ColorGray)
	}

	left, right := g.ground.Segments()
	gr.fill(dst, left, GroundChar, core.ColorOrange)
	gr.fill(dst, right, GroundChar, core.ColorOrange)

	e := g.plane.Emitter
	e.Each(func(p Particle) {
		col, row := gr.cell(p.X, p.Y)
		glyph := PuffChar
		if e.Alpha(p) < 0.2 {
			glyph = FaintChar
		}
		dst.SetColored(col, row, glyph, core.ColorWhite)
	})

	planeColor := core.ColorRed
	if g.state == Crashed {
		planeColor = core.ColorBrightRed
	}
	gr.fill(dst, g.plane.Body, PlaneChar, planeColor)

	if g.startVisible {
		dst.DrawTextCentered(int(float64(gr.rows)*0.6), " TAP SPACE TO START ", core.ColorBrightGreen)
	}
	if g.gameOverVisible {
		dst.DrawTextCentered(gr.rows/2, " GAME OVER ", core.ColorBrightRed)
		if !g.gameOverWait {
			dst.DrawTextCentered(gr.rows/2+1, " press space ", core.ColorWhite)
		}
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorCyan)
	dst.DrawTextColored(1, gr.rows-1, fmt.Sprintf("High Score: %d", g.highScore), core.ColorCyan)

	button := "[F]"
	if g.fullscreen {
		button = "[f]"
	}
	dst.DrawTextColored(gr.cols-len(button)-1, 0, button, core.ColorGray)
}

// renderHills draws the scrolling mountain outline behind everything else.
func (g *GameScene) renderHills(dst *core.Screen, gr grid) {
	tileX := g.background.TileX()
	w := g.background.Width
	if w <= 0 {
		w = g.width
	}
	for col := 0; col < gr.cols; col++ {
		x, _ := gr.center(col, 0)
		top := g.height*0.72 - g.height*0.06*math.Sin(2*math.Pi*3*(x+tileX)/w)
		for row := 0; row < gr.rows; row++ {
			if _, y := gr.center(col, row); y >= top {
				dst.SetColored(col, row, HillChar, core.ColorGreen)
			}
		}
	}
}

// Render draws the loading line centered on the screen.
func (l *LoadScene) Render(dst *core.Screen) {
	dst.Clear()
	x := (dst.Width() - len(l.cfg.Text)) / 2
	dst.DrawTextColored(x, dst.Height()/2, l.Text(), core.ColorWhite)
}
