package game

import "testing"

// staticShot is a player blaster round that does not move this tick
func staticShot(x, y float64) Projectile {
	return GetWeaponConfig(WeaponTypeBlaster).Fire(x, y, 0, 0)
}

func staticEnemy(x, y, health float64) Enemy {
	return Enemy{X: x, Y: y, W: 40, H: 40, Health: health, MaxHealth: health}
}

func TestShotDamagesEnemy(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{staticEnemy(100, 100, 30)}

	// First hit leaves the enemy alive
	s.Player.Projectiles = []Projectile{staticShot(120, 120)}
	Step(s, Input{}, testBounds)

	if len(s.Enemies) != 1 || s.Enemies[0].Health != 5 {
		t.Fatalf("enemies = %+v, want one with health 5", s.Enemies)
	}
	if s.Kills != 0 || s.Score != 0 {
		t.Errorf("kills=%d score=%d, want no credit for a hit", s.Kills, s.Score)
	}
	if len(s.Player.Projectiles) != 0 {
		t.Error("shot not consumed")
	}
	if s.CountEvents(EvtEnemyHit) != 1 {
		t.Errorf("EvtEnemyHit = %d, want 1", s.CountEvents(EvtEnemyHit))
	}
	if len(s.Particles) != burstSmall {
		t.Errorf("len(Particles) = %d, want %d", len(s.Particles), burstSmall)
	}

	// Second hit kills it
	s.Player.Projectiles = []Projectile{staticShot(120, 120)}
	Step(s, Input{}, testBounds)

	if len(s.Enemies) != 0 {
		t.Fatalf("enemy survived: %+v", s.Enemies)
	}
	if s.Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.Kills)
	}
	if s.Score != 100 {
		t.Errorf("Score = %d, want 100", s.Score)
	}
	if s.CountEvents(EvtEnemyKilled) != 1 {
		t.Errorf("EvtEnemyKilled = %d, want 1", s.CountEvents(EvtEnemyKilled))
	}
}

func TestKillScoreScalesWithLevel(t *testing.T) {
	for level, want := range []int{100, 150, 200, 250} {
		s := newTestState(t)
		s.LevelIndex = level
		s.Enemies = []Enemy{staticEnemy(100, 100, 10)}
		s.Player.Projectiles = []Projectile{staticShot(120, 120)}

		Step(s, Input{}, testBounds)

		if s.Score != want {
			t.Errorf("level %d: Score = %d, want %d", level, s.Score, want)
		}
	}
}

func TestShotHitsOneEnemyOnly(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{staticEnemy(100, 100, 30), staticEnemy(110, 100, 30)}
	s.Player.Projectiles = []Projectile{staticShot(125, 120)}

	Step(s, Input{}, testBounds)

	if s.Enemies[0].Health != 5 || s.Enemies[1].Health != 30 {
		t.Errorf("health = %v/%v, want 5/30", s.Enemies[0].Health, s.Enemies[1].Health)
	}
}

func TestDeadEnemySkippedBySecondShot(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{staticEnemy(100, 100, 20)}
	s.Player.Projectiles = []Projectile{staticShot(120, 120), staticShot(122, 122)}

	Step(s, Input{}, testBounds)

	if s.Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.Kills)
	}
	if len(s.Player.Projectiles) != 1 {
		t.Errorf("len(Projectiles) = %d, want the second shot to pass through", len(s.Player.Projectiles))
	}
}

func TestAdjacentKillsNotSkipped(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{
		staticEnemy(100, 100, 10),
		staticEnemy(200, 100, 10),
		staticEnemy(300, 100, 10),
	}
	s.Player.Projectiles = []Projectile{staticShot(120, 120), staticShot(220, 120), staticShot(320, 120)}

	Step(s, Input{}, testBounds)

	if len(s.Enemies) != 0 || s.Kills != 3 {
		t.Errorf("enemies left = %d kills = %d, want 0 and 3", len(s.Enemies), s.Kills)
	}
}

func TestEnemyContact(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{staticEnemy(s.Player.X, s.Player.Y-10, 30), staticEnemy(0, 0, 30)}

	Step(s, Input{}, testBounds)

	if len(s.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, want 1", len(s.Enemies))
	}
	if s.Player.Health != 75 {
		t.Errorf("Player.Health = %v, want 75", s.Player.Health)
	}
	if s.Kills != 0 || s.Score != 0 {
		t.Errorf("kills=%d score=%d, contact must not credit a kill", s.Kills, s.Score)
	}
}

func TestShotsHitBoss(t *testing.T) {
	s := activeBossState(t)
	s.Player.Projectiles = []Projectile{staticShot(400, 100), staticShot(420, 100), staticShot(10, 300)}

	Step(s, Input{}, testBounds)

	if s.Boss.Health != 100 {
		t.Errorf("Boss.Health = %v, want 100", s.Boss.Health)
	}
	if s.Score != 400 {
		t.Errorf("Score = %d, want 400", s.Score)
	}
	if len(s.Player.Projectiles) != 1 {
		t.Errorf("len(Projectiles) = %d, want only the miss left", len(s.Player.Projectiles))
	}
}

func TestInactiveBossNotHit(t *testing.T) {
	s := newTestState(t)
	s.Player.Projectiles = []Projectile{staticShot(400, 100)}

	Step(s, Input{}, testBounds)

	if s.Boss.Health != s.Boss.MaxHealth || s.Score != 0 {
		t.Errorf("inactive boss took damage: health=%v score=%d", s.Boss.Health, s.Score)
	}
}

func TestBossShotHitsPlayer(t *testing.T) {
	s := newTestState(t)
	cx, cy := s.Player.Rect().Center()
	s.Boss.Projectiles = []Projectile{GetWeaponConfig(WeaponTypeBossShot).Fire(cx, cy, 0, 0)}

	Step(s, Input{}, testBounds)

	if s.Player.Health != 85 {
		t.Errorf("Player.Health = %v, want 85", s.Player.Health)
	}
	if len(s.Boss.Projectiles) != 0 {
		t.Error("boss shot not consumed")
	}
}

func TestSimultaneousHitsEndRun(t *testing.T) {
	s := newTestState(t)
	s.Player.Health = 10
	cx, cy := s.Player.Rect().Center()
	shot := GetWeaponConfig(WeaponTypeBossShot).Fire(cx, cy, 0, 0)
	shot.Damage = 30
	s.Boss.Projectiles = []Projectile{shot}
	s.Enemies = []Enemy{staticEnemy(s.Player.X, s.Player.Y-10, 30)}

	Step(s, Input{}, testBounds)

	if s.Player.Health != 0 {
		t.Errorf("Player.Health = %v, want clamped to 0", s.Player.Health)
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, want game over on the same tick", s.Phase)
	}
	if got := s.CountEvents(EvtPlayerHit); got != 2 {
		t.Errorf("EvtPlayerHit = %d, want 2", got)
	}
	if got := s.CountEvents(EvtGameOver); got != 1 {
		t.Errorf("EvtGameOver = %d, want 1", got)
	}
}

func TestHealthNeverNegative(t *testing.T) {
	h := 10.0
	if !applyDamage(&h, 30) || h != 0 {
		t.Errorf("applyDamage: health = %v, want 0 and depleted", h)
	}
	h = 90
	heal(&h, 30, 100)
	if h != 100 {
		t.Errorf("heal: health = %v, want capped at 100", h)
	}
}
