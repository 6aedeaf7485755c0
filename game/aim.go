package game

import "math"

// PredictiveAim returns where a target moving at (targetVX, targetVY) will be
// when a shot fired now from the shooter reaches it. Velocities and speed are
// in pixels per tick.
func PredictiveAim(shooterX, shooterY, targetX, targetY, targetVX, targetVY, projectileSpeed float64) (float64, float64) {
	// A stationary target needs no lead
	if math.Abs(targetVX) < 0.1 && math.Abs(targetVY) < 0.1 {
		return targetX, targetY
	}

	distance := math.Hypot(targetX-shooterX, targetY-shooterY)
	if distance < 1 || projectileSpeed <= 0 {
		return targetX, targetY
	}

	// Solve distance(shooter, target + v*t) = speed*t by fixed-point iteration,
	// starting from the time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		px := targetX + targetVX*t
		py := targetY + targetVY*t
		next := math.Hypot(px-shooterX, py-shooterY) / projectileSpeed
		if math.Abs(next-t) < 0.001 {
			break
		}
		t = next
	}

	return targetX + targetVX*t, targetY + targetVY*t
}

// Velocity returns the boss's horizontal speed for the current patrol window
func (b *Boss) Velocity(cfg Config) float64 {
	if !b.Active || cfg.BossPatrolPeriod <= 0 {
		return 0
	}
	if b.PatrolTimer%cfg.BossPatrolPeriod < cfg.BossPatrolActive {
		return b.Speed * b.Dir
	}
	return 0
}
