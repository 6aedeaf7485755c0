package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"themeshooter/game"
)

// One terminal cell covers this many simulation pixels
const (
	cellW = 8
	cellH = 16
)

// Cell is one character on the terminal grid
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Canvas is a grid of cells in row-major order
type Canvas struct {
	Cols, Rows int
	Cells      []Cell
}

// NewCanvas creates a blank canvas
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Canvas{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
}

// BoundsFor returns the play field that a terminal of the given size shows
func BoundsFor(cols, rows int) game.Bounds {
	return game.Bounds{W: float64(cols * cellW), H: float64(rows * cellH)}
}

// At returns the cell at column x, row y. Out-of-range coordinates yield a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
		return Cell{}
	}
	return c.Cells[y*c.Cols+x]
}

// Row returns the runes of row y as a string
func (c *Canvas) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.Cols; x++ {
		r := c.At(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *Canvas) set(x, y int, r rune, fg color.RGBA) {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
		return
	}
	cell := &c.Cells[y*c.Cols+x]
	cell.Rune = r
	cell.FG = fg
}

func (c *Canvas) fillBG(y0, y1 int, bg color.RGBA) {
	for y := max(y0, 0); y < min(y1, c.Rows); y++ {
		for x := 0; x < c.Cols; x++ {
			c.Cells[y*c.Cols+x].BG = bg
		}
	}
}

func (c *Canvas) text(x, y int, s string, fg color.RGBA) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, fg)
	}
}

func (c *Canvas) centered(y int, s string, fg color.RGBA) {
	c.text((c.Cols-len([]rune(s)))/2, y, s, fg)
}

// rect fills every cell the pixel rectangle touches
func (c *Canvas) rect(r game.Rect, ch rune, fg color.RGBA) {
	x0 := int(math.Floor(r.X / cellW))
	y0 := int(math.Floor(r.Y / cellH))
	x1 := int(math.Ceil(r.Right()/cellW)) - 1
	y1 := int(math.Ceil(r.Bottom()/cellH)) - 1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, ch, fg)
		}
	}
}

func (c *Canvas) point(px, py float64, ch rune, fg color.RGBA) {
	c.set(int(math.Floor(px/cellW)), int(math.Floor(py/cellH)), ch, fg)
}

var (
	colorHUD      = color.RGBA{255, 255, 255, 255}
	colorBar      = color.RGBA{0, 255, 0, 255}
	colorBarEmpty = color.RGBA{100, 0, 0, 255}
	colorBossBar  = color.RGBA{50, 205, 50, 255}
	colorAlert    = color.RGBA{255, 80, 80, 255}
)

// Rasterize maps a pixel frame onto a cols x rows character grid.
// The frame should have been built with BoundsFor(cols, rows).
func Rasterize(f game.Frame, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	groundRow := int(f.Height * 0.85 / cellH)
	c.fillBG(0, groundRow, f.Level.Sky)
	c.fillBG(groundRow, rows, f.Level.Ground)

	for _, p := range f.Particles {
		if p.Alpha > 0.3 {
			c.point(p.X, p.Y, '.', p.Color)
		}
	}
	for _, e := range f.Enemies {
		c.rect(e.Rect, '█', e.Color)
	}
	if f.Boss != nil {
		c.rect(f.Boss.Rect, '▓', f.Boss.Color)
	}
	c.rect(f.Player.Rect, '█', f.Player.Color)
	cx, _ := f.Player.Rect.Center()
	c.point(cx, f.Player.Rect.Y, '▲', f.Player.Color)
	for _, p := range f.Projectiles {
		c.point(p.X, p.Y, '•', p.Color)
	}

	drawHUD(c, f.HUD)
	return c
}

func drawHUD(c *Canvas, hud game.HUD) {
	status := fmt.Sprintf("%s  Score %d", hud.LevelName, hud.Score)
	if !hud.BossBattle {
		status += "  Kills " + hud.Progress
	}
	c.text(1, 0, status, colorHUD)

	c.text(1, 1, "HP ", colorHUD)
	bar(c, 4, 1, 20, hud.PlayerHealth, colorBar)

	if hud.BossBattle {
		c.centered(2, "Boss Battle!", colorAlert)
		bar(c, (c.Cols-30)/2, 3, 30, hud.BossHealth, colorBossBar)
	}

	switch {
	case hud.GameOver:
		c.centered(c.Rows/2-1, "GAME OVER", colorAlert)
		c.centered(c.Rows/2, fmt.Sprintf("Score: %d", hud.Score), colorHUD)
		c.centered(c.Rows/2+1, "Press r or Enter to restart, q to quit", colorHUD)
	case hud.LevelCleared:
		c.centered(c.Rows/2, "Level cleared!", colorHUD)
	}
}

// bar draws a horizontal gauge of width cells filled to frac
func bar(c *Canvas, x, y, width int, frac float64, fg color.RGBA) {
	filled := int(math.Round(game.Clamp(frac, 0, 1) * float64(width)))
	for i := 0; i < width; i++ {
		if i < filled {
			c.set(x+i, y, '█', fg)
		} else {
			c.set(x+i, y, '░', colorBarEmpty)
		}
	}
}
