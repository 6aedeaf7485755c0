package game

import (
	"image/color"
	"math"
)

// Burst sizes for the different hit events
const (
	burstSmall = 6
	burstLarge = 14
	burstBoss  = 40
)

// burst emits count particles radiating from (x, y)
func (s *State) burst(x, y float64, clr color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 1 + s.rng.Float64()*3
		life := 20 + s.rng.Intn(21)
		s.Particles = append(s.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Radius:  2 + s.rng.Float64()*2,
			Color:   clr,
		})
	}
}

// updateParticles ages every particle and drops the expired ones
func (s *State) updateParticles() {
	alive := make([]Particle, 0, len(s.Particles))
	for _, p := range s.Particles {
		p.Update(s.Config.ParticleDecay)
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	s.Particles = alive
}
