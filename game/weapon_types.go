package game

import (
	"image/color"
	"math"
)

// Owner identifies which shooter a projectile belongs to
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerBoss
)

// String returns the owner name used in logs
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// WeaponType defines the different guns in the game
type WeaponType int

const (
	WeaponTypeBlaster WeaponType = iota // Player's straight-up shot
	WeaponTypeBossShot                  // Boss attack pattern shot
)

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type            WeaponType
	Damage          float64
	ProjectileSpeed float64 // Pixels per tick
	Radius          float64
	Owner           Owner
	Color           color.RGBA
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypeBlaster:
		return WeaponConfig{
			Type:            WeaponTypeBlaster,
			Damage:          25.0,
			ProjectileSpeed: 10.0,
			Radius:          4.0,
			Owner:           OwnerPlayer,
			Color:           color.RGBA{255, 240, 120, 255}, // Pale yellow
		}
	case WeaponTypeBossShot:
		return WeaponConfig{
			Type:            WeaponTypeBossShot,
			Damage:          15.0,
			ProjectileSpeed: 5.0,
			Radius:          6.0,
			Owner:           OwnerBoss,
			Color:           color.RGBA{255, 70, 200, 255}, // Magenta
		}
	default:
		return GetWeaponConfig(WeaponTypeBlaster)
	}
}

// Fire creates a projectile at (x, y) travelling along the unit vector (dirX, dirY)
func (wc WeaponConfig) Fire(x, y, dirX, dirY float64) Projectile {
	return Projectile{
		X:      x,
		Y:      y,
		DX:     dirX * wc.ProjectileSpeed,
		DY:     dirY * wc.ProjectileSpeed,
		Radius: wc.Radius,
		Damage: wc.Damage,
		Owner:  wc.Owner,
		Color:  wc.Color,
	}
}

// AttackPattern is a boss volley shape
type AttackPattern int

const (
	AttackSingle AttackPattern = iota // One centered shot
	AttackSpread                      // Three-way spread
	AttackSpray                       // Five-way wide spray
)

// GetAttackPattern selects a pattern from the boss's remaining health fraction.
// The boss gets more aggressive as it is damaged.
func GetAttackPattern(healthFraction float64) AttackPattern {
	switch {
	case healthFraction > 0.7:
		return AttackSingle
	case healthFraction > 0.3:
		return AttackSpread
	default:
		return AttackSpray
	}
}

// Angles returns the shot directions of the pattern in radians from straight down
func (a AttackPattern) Angles() []float64 {
	switch a {
	case AttackSpread:
		return []float64{-0.3, 0, 0.3}
	case AttackSpray:
		return []float64{-0.6, -0.3, 0, 0.3, 0.6}
	default:
		return []float64{0}
	}
}

// Directions returns the unit vectors of the pattern's shots.
// Positive angles lean right of straight down.
func (a AttackPattern) Directions() [][2]float64 {
	angles := a.Angles()
	dirs := make([][2]float64, len(angles))
	for i, angle := range angles {
		dirs[i] = [2]float64{math.Sin(angle), math.Cos(angle)}
	}
	return dirs
}

// String returns the pattern name used in logs
func (a AttackPattern) String() string {
	switch a {
	case AttackSingle:
		return "single"
	case AttackSpread:
		return "spread"
	case AttackSpray:
		return "spray"
	default:
		return "unknown"
	}
}
