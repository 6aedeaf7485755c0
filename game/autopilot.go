package game

import "math"

// Autopilot is a deterministic bot that plays through the state it observes.
// It drives the headless runner and end-to-end tests.
type Autopilot struct {
	State *State

	// DeadZone is the horizontal distance under which the bot stops steering
	DeadZone float64

	// DodgeRange is how close a boss shot must be before the bot sidesteps
	DodgeRange float64

	// AutoRestart makes the bot restart after a game over
	AutoRestart bool
}

// NewAutopilot creates a bot watching s
func NewAutopilot(s *State) *Autopilot {
	return &Autopilot{
		State:       s,
		DeadZone:    4,
		DodgeRange:  90,
		AutoRestart: true,
	}
}

// Poll chases the lowest enemy (or the boss), always firing, and dodges boss shots
func (a *Autopilot) Poll(b Bounds) Input {
	s := a.State
	in := Input{Fire: true}
	if s.Phase == PhaseGameOver {
		in.Restart = a.AutoRestart
		return in
	}

	px, py := s.Player.Rect().Center()
	targetX := px
	if tx, ty, vx, vy, ok := a.target(); ok {
		speed := GetWeaponConfig(WeaponTypeBlaster).ProjectileSpeed
		targetX, _ = PredictiveAim(px, s.Player.Y, tx, ty, vx, vy, speed)
	}

	if dodge := a.dodge(px, py); dodge != 0 {
		in.MoveX = dodge
		return in
	}

	dx := targetX - px
	if math.Abs(dx) > a.DeadZone {
		in.MoveX = math.Copysign(1, dx)
	}
	// Stay low to have the most time to react
	in.MoveY = 1
	return in
}

// target returns the center and velocity of what is worth chasing: the boss,
// or else the lowest enemy still above the player
func (a *Autopilot) target() (x, y, vx, vy float64, ok bool) {
	s := a.State
	if s.Boss.Active {
		x, y = s.Boss.Rect().Center()
		return x, y, s.Boss.Velocity(s.Config), 0, true
	}

	best := -1
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Y < s.Player.Y && (best < 0 || e.Y > s.Enemies[best].Y) {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, 0, 0, false
	}
	e := &s.Enemies[best]
	x, y = e.Rect().Center()
	return x, y, 0, e.Speed, true
}

// dodge returns a horizontal escape direction if a boss shot is closing in
func (a *Autopilot) dodge(px, py float64) float64 {
	for _, shot := range a.State.Boss.Projectiles {
		dx := shot.X - px
		dy := py - shot.Y
		if dy < 0 || dy > a.DodgeRange || math.Abs(dx) > a.State.Player.W {
			continue
		}
		if dx > 0 {
			return -1
		}
		return 1
	}
	return 0
}
