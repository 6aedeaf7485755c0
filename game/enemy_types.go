package game

import (
	"image/color"
	"math/rand"
)

// EnemyKind defines the creature that a level sends at the player
type EnemyKind int

const (
	EnemyKindSnake EnemyKind = iota
	EnemyKindLavaBat
	EnemyKindIceWolf
	EnemyKindScorpion
)

// EnemyKindConfig holds the stat ranges for each enemy kind.
// Every range is drawn uniformly per spawn.
type EnemyKindConfig struct {
	Kind      EnemyKind
	Name      string
	MinSize   float64
	MaxSize   float64
	MinSpeed  float64
	MaxSpeed  float64
	MinHealth float64
	MaxHealth float64
	Color     color.RGBA
}

// Per-level scaling applied on top of the kind's ranges
const (
	enemyHealthPerLevel = 10.0
	enemySpeedPerLevel  = 0.15
)

// GetEnemyKindConfig returns configuration for an enemy kind
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemyKindSnake:
		return EnemyKindConfig{
			Kind: EnemyKindSnake, Name: "Snake",
			MinSize: 30, MaxSize: 40,
			MinSpeed: 1.5, MaxSpeed: 2.5,
			MinHealth: 30, MaxHealth: 40,
			Color: color.RGBA{90, 200, 60, 255},
		}
	case EnemyKindLavaBat:
		return EnemyKindConfig{
			Kind: EnemyKindLavaBat, Name: "LavaBat",
			MinSize: 30, MaxSize: 36,
			MinSpeed: 2.0, MaxSpeed: 3.2,
			MinHealth: 25, MaxHealth: 35,
			Color: color.RGBA{255, 120, 30, 255},
		}
	case EnemyKindIceWolf:
		return EnemyKindConfig{
			Kind: EnemyKindIceWolf, Name: "IceWolf",
			MinSize: 36, MaxSize: 50,
			MinSpeed: 1.5, MaxSpeed: 2.4,
			MinHealth: 35, MaxHealth: 50,
			Color: color.RGBA{220, 240, 255, 255},
		}
	case EnemyKindScorpion:
		return EnemyKindConfig{
			Kind: EnemyKindScorpion, Name: "Scorpion",
			MinSize: 32, MaxSize: 44,
			MinSpeed: 1.8, MaxSpeed: 2.8,
			MinHealth: 30, MaxHealth: 45,
			Color: color.RGBA{140, 80, 30, 255},
		}
	default:
		return GetEnemyKindConfig(EnemyKindSnake)
	}
}

// Roll draws a new enemy of this kind for the given level index.
// The enemy is placed above the visible area at horizontal position x.
func (c EnemyKindConfig) Roll(rng *rand.Rand, levelIndex int) Enemy {
	size := between(rng, c.MinSize, c.MaxSize)
	health := between(rng, c.MinHealth, c.MaxHealth) + float64(levelIndex)*enemyHealthPerLevel
	speed := between(rng, c.MinSpeed, c.MaxSpeed) * (1 + float64(levelIndex)*enemySpeedPerLevel)
	return Enemy{
		Y:         -size,
		W:         size,
		H:         size,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		Kind:      c.Kind,
	}
}

func (k EnemyKind) String() string {
	return GetEnemyKindConfig(k).Name
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
