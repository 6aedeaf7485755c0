package game

import "math"

// Spawner creates one enemy every Interval ticks during the wave phase
type Spawner struct {
	Interval  int
	Threshold int

	// Timer counts ticks since the last spawn
	Timer int
}

// NewSpawner creates a spawner from config
func NewSpawner(cfg Config) Spawner {
	return Spawner{
		Interval:  cfg.SpawnInterval,
		Threshold: cfg.KillThreshold,
	}
}

// Update advances the spawn timer and appends an enemy when it fires.
// Returns true if an enemy was spawned. Only the enemy collection is touched.
func (sp *Spawner) Update(s *State, b Bounds) bool {
	if s.Phase != PhaseWave || s.Kills >= sp.Threshold {
		return false
	}

	sp.Timer++
	if sp.Timer < sp.Interval {
		return false
	}
	sp.Timer = 0

	enemy := GetEnemyKindConfig(s.Level().Enemy).Roll(s.rng, s.LevelIndex)
	enemy.X = s.rng.Float64() * math.Max(0, b.W-enemy.W)
	s.Enemies = append(s.Enemies, enemy)
	return true
}
