package arcade

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"themeshooter/game"
)

var (
	colorText         = color.RGBA{255, 255, 255, 255}
	colorHealthBack   = color.RGBA{100, 0, 0, 255}
	colorHealthFill   = color.RGBA{0, 255, 0, 255}
	colorBossBarBack  = color.RGBA{200, 0, 0, 255}
	colorBossBarFill  = color.RGBA{50, 205, 50, 255}
	colorOverlay      = color.RGBA{0, 0, 0, 170}
	colorHitbox       = color.RGBA{255, 0, 255, 255}
	colorPlayerCanopy = color.RGBA{200, 240, 255, 255}
	colorStickRing    = color.RGBA{255, 255, 255, 120}
	colorStickKnob    = color.RGBA{255, 255, 255, 160}
)

// Renderer draws a game.Frame with vector shapes only
type Renderer struct {
	face *basicfont.Face
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		face: basicfont.Face7x13,
	}
}

// Render draws the whole frame. stick may be nil.
func (r *Renderer) Render(screen *ebiten.Image, f game.Frame, stick *game.Joystick) {
	r.drawBackground(screen, f)

	for _, e := range f.Enemies {
		r.drawEnemy(screen, e)
	}
	if f.Boss != nil {
		r.drawBoss(screen, f.Boss)
	}
	r.drawPlayer(screen, f.Player)

	for _, p := range f.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
	for _, p := range f.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), fade(p.Color, p.Alpha), true)
	}

	if GetDebugState().ShowHitboxes {
		r.drawHitboxes(screen, f)
	}
	r.drawHUD(screen, f)
	if stick != nil && stick.Active() {
		r.drawJoystick(screen, stick)
	}
}

// drawJoystick draws the virtual stick's base ring and knob
func (r *Renderer) drawJoystick(screen *ebiten.Image, stick *game.Joystick) {
	ox, oy := stick.Origin()
	dx, dy := stick.Offset()
	vector.StrokeCircle(screen, float32(ox), float32(oy), float32(stick.MaxRadius), 2, colorStickRing, true)
	vector.DrawFilledCircle(screen, float32(ox+dx), float32(oy+dy), float32(stick.MaxRadius*0.4), colorStickKnob, true)
}

// drawBackground fills the theme sky and ground and animates its decoration
func (r *Renderer) drawBackground(screen *ebiten.Image, f game.Frame) {
	lvl := f.Level
	screen.Fill(lvl.Sky)

	groundY := f.Height * 0.85
	vector.DrawFilledRect(screen, 0, float32(groundY), float32(f.Width), float32(f.Height-groundY), lvl.Ground, false)

	t := float64(f.LevelTimer)
	switch lvl.Decoration {
	case game.DecorationVines:
		for i := 0; i < 8; i++ {
			x := (float64(i) + 0.5) * f.Width / 8
			length := 60 + 30*math.Sin(t/40+float64(i))
			sway := 8 * math.Sin(t/25+float64(i)*1.7)
			vector.StrokeLine(screen, float32(x), 0, float32(x+sway), float32(length), 3, lvl.Accent, true)
			vector.DrawFilledCircle(screen, float32(x+sway), float32(length), 5, lvl.Accent, true)
		}
	case game.DecorationEmbers:
		for i := 0; i < 30; i++ {
			x := math.Mod(float64(i)*97+20*math.Sin(t/30+float64(i)), f.Width)
			y := f.Height - math.Mod(t*1.5+float64(i)*73, f.Height)
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2, lvl.Accent, true)
		}
	case game.DecorationSnow:
		for i := 0; i < 50; i++ {
			x := math.Mod(float64(i)*53+15*math.Sin(t/50+float64(i)), f.Width)
			y := math.Mod(t+float64(i)*41, f.Height)
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2, lvl.Accent, true)
		}
	case game.DecorationDunes:
		for i := 0; i < 5; i++ {
			x := math.Mod(float64(i)*f.Width/4-t*0.2, f.Width+200) - 100
			vector.DrawFilledCircle(screen, float32(x), float32(groundY+40), 120, lvl.Accent, true)
		}
	}
}

// drawEnemy draws an enemy body with eyes and a health bar once it is damaged
func (r *Renderer) drawEnemy(screen *ebiten.Image, e game.RectRecord) {
	rc := e.Rect
	vector.DrawFilledRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), e.Color, true)
	vector.StrokeRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), 2, darken(e.Color), true)

	eyeY := rc.Y + rc.H*0.35
	for _, ex := range []float64{rc.X + rc.W*0.3, rc.X + rc.W*0.7} {
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), float32(rc.W*0.1), color.Black, true)
	}

	if e.Health < 1 {
		r.drawHealthBar(screen, rc.X, rc.Y-6, rc.W, 4, e.Health)
	}
}

// drawBoss draws the boss, its health bar and the battle banner
func (r *Renderer) drawBoss(screen *ebiten.Image, b *game.BossRecord) {
	rc := b.Rect
	vector.DrawFilledRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), b.Color, true)
	vector.StrokeRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), 3, darken(b.Color), true)

	// Angrier eyes as the attack pattern escalates
	eyeR := float32(rc.H * (0.12 + 0.04*float64(b.Pattern)))
	for _, ex := range []float64{rc.X + rc.W*0.3, rc.X + rc.W*0.7} {
		vector.DrawFilledCircle(screen, float32(ex), float32(rc.Y+rc.H*0.4), eyeR, color.RGBA{255, 230, 0, 255}, true)
	}
}

// drawPlayer draws the ship as a hull with a canopy
func (r *Renderer) drawPlayer(screen *ebiten.Image, p game.RectRecord) {
	rc := p.Rect
	cx, _ := rc.Center()
	vector.DrawFilledRect(screen, float32(rc.X), float32(rc.Y+rc.H*0.3), float32(rc.W), float32(rc.H*0.7), p.Color, true)
	vector.StrokeLine(screen, float32(rc.X), float32(rc.Y+rc.H*0.3), float32(cx), float32(rc.Y), 3, p.Color, true)
	vector.StrokeLine(screen, float32(rc.X+rc.W), float32(rc.Y+rc.H*0.3), float32(cx), float32(rc.Y), 3, p.Color, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(rc.Y+rc.H*0.5), float32(rc.W*0.15), colorPlayerCanopy, true)
}

// drawHitboxes outlines every collision box (F1)
func (r *Renderer) drawHitboxes(screen *ebiten.Image, f game.Frame) {
	boxes := make([]game.Rect, 0, len(f.Enemies)+2)
	boxes = append(boxes, f.Player.Rect)
	for _, e := range f.Enemies {
		boxes = append(boxes, e.Rect)
	}
	if f.Boss != nil {
		boxes = append(boxes, f.Boss.Rect)
	}
	for _, p := range f.Projectiles {
		boxes = append(boxes, game.CircleRect(p.X, p.Y, p.Radius))
	}
	for _, b := range boxes {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colorHitbox, false)
	}
}

// drawHUD draws the level, score, progress, health bars and overlays
func (r *Renderer) drawHUD(screen *ebiten.Image, f game.Frame) {
	hud := f.HUD
	text.Draw(screen, "Level: "+hud.LevelName, r.face, 10, 20, colorText)
	text.Draw(screen, fmt.Sprintf("Score: %d", hud.Score), r.face, 10, 38, colorText)
	if !hud.BossBattle {
		text.Draw(screen, "Kills: "+hud.Progress, r.face, 10, 56, colorText)
	}

	r.drawHealthBar(screen, 10, f.Height-34, 150, 10, hud.PlayerHealth)
	text.Draw(screen, hud.Hints, r.face, 10, int(f.Height)-8, colorText)

	if hud.BossBattle {
		barW := 200.0
		barX := f.Width/2 - barW/2
		vector.DrawFilledRect(screen, float32(barX), 20, float32(barW), 20, colorBossBarBack, false)
		vector.DrawFilledRect(screen, float32(barX), 20, float32(barW*hud.BossHealth), 20, colorBossBarFill, false)
		r.drawCentered(screen, "Boss Battle!", f.Width/2, 56)
	}

	if GetDebugState().ShowStats {
		stats := fmt.Sprintf("TPS %.0f  enemies %d  shots %d  particles %d",
			ebiten.ActualTPS(), len(f.Enemies), len(f.Projectiles), len(f.Particles))
		ebitenutil.DebugPrintAt(screen, stats, int(f.Width)-len(stats)*6-10, 70)
	}

	switch {
	case hud.GameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(f.Width), float32(f.Height), colorOverlay, false)
		r.drawCentered(screen, "GAME OVER", f.Width/2, f.Height/2-10)
		r.drawCentered(screen, fmt.Sprintf("Score: %d", hud.Score), f.Width/2, f.Height/2+10)
		r.drawCentered(screen, "Press R / Enter or tap to restart", f.Width/2, f.Height/2+30)
	case hud.LevelCleared:
		r.drawCentered(screen, "Level cleared!", f.Width/2, f.Height/2)
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, x, y, w, h, health float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorHealthBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*health), float32(h), colorHealthFill, false)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, cx, y float64) {
	width := len(s) * r.face.Advance
	text.Draw(screen, s, r.face, int(cx)-width/2, int(y), colorText)
}

// fade scales a color's alpha by a in [0, 1], premultiplied for Ebiten
func fade(c color.RGBA, a float64) color.RGBA {
	a = game.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}
