package game

import "testing"

func TestBuildFrameWave(t *testing.T) {
	s := newTestState(t)
	s.Kills = 3
	s.Enemies = []Enemy{staticEnemy(10, 10, 40)}
	s.Enemies[0].Health = 10
	s.Player.Projectiles = []Projectile{staticShot(50, 50)}
	s.Particles = []Particle{{X: 1, Y: 1, Life: 5, MaxLife: 10, Radius: 2}}

	f := BuildFrame(s, testBounds)

	if f.Width != 800 || f.Height != 600 {
		t.Errorf("frame size = %vx%v, want 800x600", f.Width, f.Height)
	}
	if f.Boss != nil {
		t.Error("inactive boss should not be drawn")
	}
	if len(f.Enemies) != 1 || f.Enemies[0].Health != 0.25 {
		t.Errorf("enemies = %+v, want one at health 0.25", f.Enemies)
	}
	if len(f.Projectiles) != 1 || len(f.Particles) != 1 {
		t.Errorf("projectiles=%d particles=%d, want 1 and 1", len(f.Projectiles), len(f.Particles))
	}
	if f.Particles[0].Alpha != 0.5 {
		t.Errorf("particle alpha = %v, want 0.5", f.Particles[0].Alpha)
	}

	hud := f.HUD
	if hud.LevelName != "Jungle" || hud.Progress != "3/20" || hud.Hints != ControlHints {
		t.Errorf("HUD = %+v", hud)
	}
	if hud.BossBattle || hud.GameOver || hud.LevelCleared {
		t.Errorf("unexpected HUD flags: %+v", hud)
	}
	if hud.PlayerHealth != 1 {
		t.Errorf("PlayerHealth = %v, want 1", hud.PlayerHealth)
	}
}

func TestBuildFrameBoss(t *testing.T) {
	s := activeBossState(t)
	s.Boss.Health = 30
	s.Kills = 25

	f := BuildFrame(s, testBounds)

	if f.Boss == nil {
		t.Fatal("active boss missing from frame")
	}
	if f.Boss.Health != 0.2 || f.Boss.Pattern != AttackSpray {
		t.Errorf("boss record = %+v, want health 0.2 with spray", f.Boss)
	}
	if !f.HUD.BossBattle || f.HUD.BossHealth != 0.2 {
		t.Errorf("HUD boss fields = %v/%v", f.HUD.BossBattle, f.HUD.BossHealth)
	}
	if f.HUD.Progress != "20/20" {
		t.Errorf("Progress = %q, want capped at 20/20", f.HUD.Progress)
	}
}

func TestBuildFrameDoesNotAlias(t *testing.T) {
	s := newTestState(t)
	s.Enemies = []Enemy{staticEnemy(10, 10, 40)}

	f := BuildFrame(s, testBounds)
	f.Enemies[0].Rect.X = 999

	if s.Enemies[0].X != 10 {
		t.Error("writing to the frame changed the simulation")
	}
}
