package game

// updateProgression applies a due level advance and the wave-to-boss transition.
// It runs at the start of a tick, so a threshold reached during tick N
// activates the boss on tick N+1.
func (s *State) updateProgression(b Bounds) {
	if s.AdvancePending && s.Tick >= s.AdvanceAt {
		s.advanceLevel()
	}
	if s.Phase == PhaseWave && s.Kills >= s.Config.KillThreshold {
		s.activateBoss(b)
	}
}

// activateBoss enters the boss phase: enemies are cleared and the boss is healed.
// Its position carries over from the previous encounter unless ResetBossPosition is set.
func (s *State) activateBoss(b Bounds) {
	s.Phase = PhaseBoss
	s.Enemies = nil

	boss := &s.Boss
	if s.Config.ResetBossPosition {
		boss.X = b.W/2 - boss.W/2
		boss.Dir = 1
	}
	boss.X = Clamp(boss.X, 0, b.W-boss.W)
	boss.Health = boss.MaxHealth
	boss.PatrolTimer = 0
	boss.FireTimer = 0
	boss.Projectiles = nil
	boss.Active = true

	s.emit(EvtBossActivated, boss.X+boss.W/2, boss.Y, s.LevelIndex)
}

// checkBossDefeat deactivates a fallen boss and schedules the level advance
func (s *State) checkBossDefeat() {
	boss := &s.Boss
	if s.Phase != PhaseBoss || !boss.Active || boss.Health > 0 {
		return
	}

	boss.Active = false
	s.AdvancePending = true
	s.AdvanceAt = s.Tick + uint64(s.Config.BossDefeatDelay)

	cx, cy := boss.Rect().Center()
	s.burst(cx, cy, s.Level().Accent, burstBoss)
	s.emit(EvtBossDefeated, cx, cy, s.LevelIndex)
}

// advanceLevel moves to the next theme and rewards the player
func (s *State) advanceLevel() {
	s.LevelIndex = (s.LevelIndex + 1) % LevelCount
	s.Phase = PhaseWave
	s.AdvancePending = false
	s.AdvanceAt = 0

	s.Boss.Active = false
	s.Boss.Health = s.Boss.MaxHealth
	s.Boss.PatrolTimer = 0
	s.Boss.FireTimer = 0
	s.Boss.Projectiles = nil
	s.Enemies = nil
	s.Spawner.Timer = 0
	s.Kills = 0
	s.LevelTimer = 0

	s.addScore(s.Config.LevelClearBonus)
	heal(&s.Player.Health, s.Config.LevelClearHeal, s.Player.MaxHealth)

	s.emit(EvtLevelAdvanced, 0, 0, s.LevelIndex)
}

// checkGameOver freezes the run once the player has no health left.
// It overrides any scheduled level advance.
func (s *State) checkGameOver() {
	if s.Player.Health > 0 {
		return
	}
	s.Phase = PhaseGameOver
	s.AdvancePending = false
	s.AdvanceAt = 0
	s.emit(EvtGameOver, s.Player.X, s.Player.Y, s.LevelIndex)
}
