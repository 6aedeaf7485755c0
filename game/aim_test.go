package game

import (
	"math"
	"testing"
)

func TestPredictiveAimStationary(t *testing.T) {
	x, y := PredictiveAim(0, 0, 100, 50, 0, 0, 10)
	if x != 100 || y != 50 {
		t.Errorf("PredictiveAim() = (%v, %v), want the target itself", x, y)
	}
}

func TestPredictiveAimLeadsMovingTarget(t *testing.T) {
	// Target 300 px above, crossing at 3 px/tick; shots travel 10 px/tick
	x, y := PredictiveAim(0, 300, 0, 0, 3, 0, 10)
	if y != 0 {
		t.Errorf("y = %v, want 0 for a horizontal mover", y)
	}

	// Interception satisfies |aim - shooter| = speed * t with x = 3t
	tHit := x / 3
	dist := math.Hypot(x, 300)
	if math.Abs(dist-10*tHit) > 0.5 {
		t.Errorf("aim (%v, %v) does not intercept: distance %v vs travel %v", x, y, dist, 10*tHit)
	}
	if x <= 0 {
		t.Errorf("x = %v, want a lead in the direction of travel", x)
	}
}

func TestBossVelocity(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(cfg, testBounds)
	if v := b.Velocity(cfg); v != 0 {
		t.Errorf("inactive boss velocity = %v, want 0", v)
	}

	b.Active = true
	b.Dir = -1
	if v := b.Velocity(cfg); v != -b.Speed {
		t.Errorf("patrolling velocity = %v, want %v", v, -b.Speed)
	}

	b.PatrolTimer = cfg.BossPatrolActive
	if v := b.Velocity(cfg); v != 0 {
		t.Errorf("resting velocity = %v, want 0", v)
	}
}

func TestAutopilotLeadsBoss(t *testing.T) {
	s := activeBossState(t)
	// Boss centered over the player, moving right
	s.Boss.X = s.Player.X + s.Player.W/2 - s.Boss.W/2
	s.Boss.Dir = 1

	if in := NewAutopilot(s).Poll(testBounds); in.MoveX != 1 {
		t.Errorf("MoveX = %v, want 1 to lead the boss", in.MoveX)
	}
}
