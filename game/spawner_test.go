package game

import (
	"math/rand"
	"testing"
)

func newSpawnState(t *testing.T) *State {
	t.Helper()
	return NewState(DefaultConfig(), testBounds, rand.New(rand.NewSource(7)))
}

func TestSpawnerInterval(t *testing.T) {
	s := newSpawnState(t)
	for i := 1; i < s.Config.SpawnInterval; i++ {
		if s.Spawner.Update(s, testBounds) {
			t.Fatalf("spawned early on call %d", i)
		}
	}
	if !s.Spawner.Update(s, testBounds) {
		t.Fatalf("no spawn after %d calls", s.Config.SpawnInterval)
	}
	if len(s.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, want 1", len(s.Enemies))
	}
	if s.Spawner.Timer != 0 {
		t.Errorf("Timer = %d, want reset to 0", s.Spawner.Timer)
	}

	e := s.Enemies[0]
	if e.Y != -e.H {
		t.Errorf("enemy y = %v, want %v (just above the field)", e.Y, -e.H)
	}
	if e.X < 0 || e.X > testBounds.W-e.W {
		t.Errorf("enemy x = %v outside [0, %v]", e.X, testBounds.W-e.W)
	}
	if e.Kind != EnemyKindSnake {
		t.Errorf("Kind = %v, want Snake in the jungle", e.Kind)
	}
}

func TestSpawnerSuspended(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
	}{
		{"boss phase", func(s *State) { s.Phase = PhaseBoss }},
		{"game over", func(s *State) { s.Phase = PhaseGameOver }},
		{"threshold reached", func(s *State) { s.Kills = s.Config.KillThreshold }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSpawnState(t)
			tc.setup(s)
			for i := 0; i < s.Config.SpawnInterval*3; i++ {
				if s.Spawner.Update(s, testBounds) {
					t.Fatal("spawner fired while suspended")
				}
			}
			if s.Spawner.Timer != 0 {
				t.Errorf("Timer = %d, want untouched", s.Spawner.Timer)
			}
		})
	}
}

func TestSpawnerNarrowField(t *testing.T) {
	s := newSpawnState(t)
	narrow := Bounds{W: 10, H: 600}
	s.Spawner.Timer = s.Spawner.Interval - 1
	if !s.Spawner.Update(s, narrow) {
		t.Fatal("expected a spawn")
	}
	if s.Enemies[0].X != 0 {
		t.Errorf("x = %v, want 0 when the enemy is wider than the field", s.Enemies[0].X)
	}
}

func TestSpawnerLevelScaling(t *testing.T) {
	for level := 0; level < LevelCount; level++ {
		s := newSpawnState(t)
		s.LevelIndex = level
		kind := GetEnemyKindConfig(s.Level().Enemy)

		for i := 0; i < 20; i++ {
			s.Spawner.Timer = s.Spawner.Interval - 1
			s.Spawner.Update(s, testBounds)
		}
		for _, e := range s.Enemies {
			bonus := float64(level) * enemyHealthPerLevel
			if e.MaxHealth < kind.MinHealth+bonus || e.MaxHealth > kind.MaxHealth+bonus {
				t.Errorf("level %d: health %v outside [%v, %v]", level, e.MaxHealth, kind.MinHealth+bonus, kind.MaxHealth+bonus)
			}
			scale := 1 + float64(level)*enemySpeedPerLevel
			if e.Speed < kind.MinSpeed*scale || e.Speed > kind.MaxSpeed*scale {
				t.Errorf("level %d: speed %v outside [%v, %v]", level, e.Speed, kind.MinSpeed*scale, kind.MaxSpeed*scale)
			}
			if e.Kind != kind.Kind {
				t.Errorf("level %d: kind %v, want %v", level, e.Kind, kind.Kind)
			}
		}
	}
}

func TestStepNoSpawnDuringBoss(t *testing.T) {
	s := newSpawnState(t)
	s.Kills = s.Config.KillThreshold

	for i := 0; i < 300; i++ {
		Step(s, Input{}, testBounds)
		if s.Phase == PhaseBoss && len(s.Enemies) != 0 {
			t.Fatalf("tick %d: %d enemies present during the boss phase", s.Tick, len(s.Enemies))
		}
	}
}
