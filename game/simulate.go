package game

// Step advances the run by exactly one tick.
//
// Order: progression pre-step, spawner, player, enemies, boss, projectiles,
// particles, collisions, boss-defeat and game-over detection. All timing is
// counted in ticks; b is the live play-field size for this tick.
func Step(s *State, in Input, b Bounds) {
	s.Events = s.Events[:0]

	if s.Phase == PhaseGameOver {
		if in.Restart {
			s.Restart(b)
		}
		return
	}

	s.Tick++
	s.LevelTimer++

	s.updateProgression(b)
	s.Spawner.Update(s, b)
	s.updatePlayer(in, b)
	s.updateEnemies(b)
	s.updateBoss(b)
	s.updateProjectiles(b)
	s.updateParticles()

	s.resolveCollisions(b)

	s.checkBossDefeat()
	s.checkGameOver()
}

// updatePlayer applies the movement vector, clamps to the playable area and fires
func (s *State) updatePlayer(in Input, b Bounds) {
	p := &s.Player

	p.X += Clamp(in.MoveX, -1, 1) * p.Speed
	p.Y += Clamp(in.MoveY, -1, 1) * p.Speed
	p.X = Clamp(p.X, 0, b.W-p.W)
	p.Y = Clamp(p.Y, b.H*s.Config.PlayfieldTop, b.H-p.H)

	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if p.FireCooldown == 0 && in.Fire {
		x := p.X + p.W/2
		p.Projectiles = append(p.Projectiles, GetWeaponConfig(WeaponTypeBlaster).Fire(x, p.Y, 0, -1))
		p.FireCooldown = s.Config.PlayerFireCooldown
		s.emit(EvtShotFired, x, p.Y, 0)
	}
}

// updateEnemies moves enemies down and drops the ones that left the field
func (s *State) updateEnemies(b Bounds) {
	limit := b.H + s.Config.EnemyDespawn
	kept := make([]Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		e.Y += e.Speed
		if e.Y <= limit {
			kept = append(kept, e)
		}
	}
	s.Enemies = kept
}

// updateBoss runs the duty-cycled patrol and the attack timer
func (s *State) updateBoss(b Bounds) {
	boss := &s.Boss
	if !boss.Active {
		return
	}

	if boss.PatrolTimer%s.Config.BossPatrolPeriod < s.Config.BossPatrolActive {
		boss.X += boss.Speed * boss.Dir
		if boss.X <= 0 {
			boss.X = 0
			boss.Dir = 1
		} else if boss.X+boss.W >= b.W {
			boss.X = b.W - boss.W
			boss.Dir = -1
		}
	}
	boss.PatrolTimer++

	boss.FireTimer++
	if boss.FireTimer < s.Config.BossFireInterval {
		return
	}
	boss.FireTimer = 0

	pattern := GetAttackPattern(boss.HealthFraction())
	weapon := GetWeaponConfig(WeaponTypeBossShot)
	x := boss.X + boss.W/2
	y := boss.Y + boss.H
	for _, dir := range pattern.Directions() {
		boss.Projectiles = append(boss.Projectiles, weapon.Fire(x, y, dir[0], dir[1]))
	}
	s.emit(EvtBossFired, x, y, int(pattern))
}

// updateProjectiles moves every shot of both owners and drops those outside the margin
func (s *State) updateProjectiles(b Bounds) {
	s.Player.Projectiles = moveProjectiles(s.Player.Projectiles, b, s.Config.ProjectileMargin)
	s.Boss.Projectiles = moveProjectiles(s.Boss.Projectiles, b, s.Config.ProjectileMargin)
}

func moveProjectiles(shots []Projectile, b Bounds, margin float64) []Projectile {
	kept := make([]Projectile, 0, len(shots))
	for _, p := range shots {
		p.Update()
		if p.InBounds(b, margin) {
			kept = append(kept, p)
		}
	}
	return kept
}
