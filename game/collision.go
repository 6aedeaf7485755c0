package game

import "image/color"

var (
	colorPlayerHit = color.RGBA{255, 80, 80, 255}
	colorBossHit   = color.RGBA{255, 200, 255, 255}
)

// resolveCollisions runs the pairwise hit tests in their fixed order.
// Every removal is a filter into a fresh slice so no neighbor is skipped.
func (s *State) resolveCollisions(b Bounds) {
	s.playerShotsVsEnemies(b)
	if s.Boss.Active {
		s.playerShotsVsBoss()
	}
	s.bossShotsVsPlayer()
	s.enemiesVsPlayer()
}

// playerShotsVsEnemies lets each shot hit at most one live enemy.
// Enemies killed here are credited and removed after all shots resolve.
func (s *State) playerShotsVsEnemies(b Bounds) {
	if len(s.Enemies) == 0 {
		return
	}

	s.grid.Reset(b)
	for i := range s.Enemies {
		s.grid.Insert(i, s.Enemies[i].Rect())
	}

	shots := make([]Projectile, 0, len(s.Player.Projectiles))
	for _, shot := range s.Player.Projectiles {
		if !s.handleShot(shot) {
			shots = append(shots, shot)
		}
	}
	s.Player.Projectiles = shots

	alive := make([]Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if e.Health > 0 {
			alive = append(alive, e)
		}
	}
	s.Enemies = alive
}

// handleShot applies a player shot to the first live enemy (in spawn order)
// it overlaps. Candidates come from the grid built for this tick.
// Returns true if the shot was consumed.
func (s *State) handleShot(shot Projectile) bool {
	box := shot.Rect()
	hit := -1
	s.grid.Query(box, func(i int) {
		if hit >= 0 && i >= hit {
			return
		}
		e := &s.Enemies[i]
		if e.Health > 0 && box.Overlaps(e.Rect()) {
			hit = i
		}
	})
	if hit < 0 {
		return false
	}

	e := &s.Enemies[hit]
	kind := GetEnemyKindConfig(e.Kind)
	if applyDamage(&e.Health, shot.Damage) {
		points := s.Config.KillScoreBase + s.LevelIndex*s.Config.KillScoreLevel
		s.Kills++
		s.addScore(points)
		cx, cy := e.Rect().Center()
		s.burst(cx, cy, kind.Color, burstLarge)
		s.emit(EvtEnemyKilled, cx, cy, points)
	} else {
		s.burst(shot.X, shot.Y, kind.Color, burstSmall)
		s.emit(EvtEnemyHit, shot.X, shot.Y, int(shot.Damage))
	}
	return true
}

// playerShotsVsBoss damages the boss with every overlapping shot while it stands
func (s *State) playerShotsVsBoss() {
	boss := &s.Boss
	box := boss.Rect()

	shots := make([]Projectile, 0, len(s.Player.Projectiles))
	for _, shot := range s.Player.Projectiles {
		if boss.Health <= 0 || !shot.Rect().Overlaps(box) {
			shots = append(shots, shot)
			continue
		}
		applyDamage(&boss.Health, shot.Damage)
		s.addScore(s.Config.BossHitScore)
		s.burst(shot.X, shot.Y, colorBossHit, burstSmall)
		s.emit(EvtBossHit, shot.X, shot.Y, s.Config.BossHitScore)
	}
	s.Player.Projectiles = shots
}

// bossShotsVsPlayer applies every boss shot that overlaps the player
func (s *State) bossShotsVsPlayer() {
	p := &s.Player
	box := p.Rect()

	shots := make([]Projectile, 0, len(s.Boss.Projectiles))
	for _, shot := range s.Boss.Projectiles {
		if !shot.Rect().Overlaps(box) {
			shots = append(shots, shot)
			continue
		}
		applyDamage(&p.Health, shot.Damage)
		s.burst(shot.X, shot.Y, colorPlayerHit, burstSmall)
		s.emit(EvtPlayerHit, shot.X, shot.Y, int(shot.Damage))
	}
	s.Boss.Projectiles = shots
}

// enemiesVsPlayer removes every enemy touching the player and applies contact damage.
// Contact never credits a kill.
func (s *State) enemiesVsPlayer() {
	p := &s.Player
	box := p.Rect()

	kept := make([]Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if !e.Rect().Overlaps(box) {
			kept = append(kept, e)
			continue
		}
		applyDamage(&p.Health, s.Config.ContactDamage)
		cx, cy := e.Rect().Center()
		s.burst(cx, cy, colorPlayerHit, burstLarge)
		s.emit(EvtPlayerHit, cx, cy, int(s.Config.ContactDamage))
	}
	s.Enemies = kept
}
