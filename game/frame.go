package game

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// ControlHints is shown at the bottom of the screen
const ControlHints = "Arrows/WASD move  Space fire  Touch: drag left, hold right"

var (
	colorPlayer = color.RGBA{60, 140, 255, 255}
	colorBoss   = colornames.Purple
)

// RectRecord is a box to draw with an optional health fraction
type RectRecord struct {
	Rect   Rect
	Color  color.RGBA
	Health float64
	Kind   EnemyKind
}

// CircleRecord is a round shape to draw
type CircleRecord struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Alpha  float64
}

// BossRecord describes the boss for the renderer
type BossRecord struct {
	Rect    Rect
	Color   color.RGBA
	Health  float64
	Pattern AttackPattern
}

// HUD holds the text fields of the overlay
type HUD struct {
	LevelName    string
	Score        int
	Kills        int
	KillTarget   int
	Progress     string
	PlayerHealth float64
	BossBattle   bool
	BossHealth   float64
	LevelCleared bool
	GameOver     bool
	Hints        string
}

// Frame is everything a renderer needs for one tick. Renderers must not
// write back into the simulation.
type Frame struct {
	Width, Height float64
	Level         Level
	LevelTimer    int
	Tick          uint64

	Player      RectRecord
	Enemies     []RectRecord
	Boss        *BossRecord
	Projectiles []CircleRecord
	Particles   []CircleRecord
	HUD         HUD
}

// BuildFrame snapshots the state into a draw request
func BuildFrame(s *State, b Bounds) Frame {
	f := Frame{
		Width:      b.W,
		Height:     b.H,
		Level:      s.Level(),
		LevelTimer: s.LevelTimer,
		Tick:       s.Tick,
		Player: RectRecord{
			Rect:   s.Player.Rect(),
			Color:  colorPlayer,
			Health: s.Player.HealthFraction(),
		},
		Enemies:     make([]RectRecord, 0, len(s.Enemies)),
		Projectiles: make([]CircleRecord, 0, len(s.Player.Projectiles)+len(s.Boss.Projectiles)),
		Particles:   make([]CircleRecord, 0, len(s.Particles)),
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		f.Enemies = append(f.Enemies, RectRecord{
			Rect:   e.Rect(),
			Color:  GetEnemyKindConfig(e.Kind).Color,
			Health: e.HealthFraction(),
			Kind:   e.Kind,
		})
	}

	if s.Boss.Active {
		f.Boss = &BossRecord{
			Rect:    s.Boss.Rect(),
			Color:   colorBoss,
			Health:  s.Boss.HealthFraction(),
			Pattern: GetAttackPattern(s.Boss.HealthFraction()),
		}
	}

	for _, shots := range [][]Projectile{s.Player.Projectiles, s.Boss.Projectiles} {
		for _, p := range shots {
			f.Projectiles = append(f.Projectiles, CircleRecord{
				X: p.X, Y: p.Y, Radius: p.Radius, Color: p.Color, Alpha: 1,
			})
		}
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		f.Particles = append(f.Particles, CircleRecord{
			X: p.X, Y: p.Y, Radius: p.Radius, Color: p.Color, Alpha: p.Alpha(),
		})
	}

	kills := min(s.Kills, s.Config.KillThreshold)
	f.HUD = HUD{
		LevelName:    f.Level.Name,
		Score:        s.Score,
		Kills:        kills,
		KillTarget:   s.Config.KillThreshold,
		Progress:     fmt.Sprintf("%d/%d", kills, s.Config.KillThreshold),
		PlayerHealth: s.Player.HealthFraction(),
		BossBattle:   s.Phase == PhaseBoss && s.Boss.Active,
		BossHealth:   s.Boss.HealthFraction(),
		LevelCleared: s.AdvancePending,
		GameOver:     s.Phase == PhaseGameOver,
		Hints:        ControlHints,
	}
	return f
}
