package game

import "image/color"

// Player is the ship controlled by the input adapter
type Player struct {
	// Top-left position in screen coordinates
	X, Y float64

	// Size of the hitbox
	W, H float64

	// Pixels moved per tick at full input deflection
	Speed float64

	// Health points, kept within [0, MaxHealth]
	Health    float64
	MaxHealth float64

	// Ticks until the next shot is allowed
	FireCooldown int

	// Projectiles fired by the player that are still in flight
	Projectiles []Projectile
}

// NewPlayer creates a player centered horizontally near the bottom of the field
func NewPlayer(cfg Config, b Bounds) Player {
	return Player{
		X:         b.W/2 - cfg.PlayerSize/2,
		Y:         b.H - cfg.PlayerSize - 20,
		W:         cfg.PlayerSize,
		H:         cfg.PlayerSize,
		Speed:     cfg.PlayerSpeed,
		Health:    cfg.PlayerMaxHealth,
		MaxHealth: cfg.PlayerMaxHealth,
	}
}

// Rect returns the player's hitbox
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// HealthFraction returns health as a value in [0, 1]
func (p *Player) HealthFraction() float64 {
	return fraction(p.Health, p.MaxHealth)
}

// Enemy is a wave enemy falling from the top of the field
type Enemy struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Health    float64
	MaxHealth float64
	Kind      EnemyKind
}

// Rect returns the enemy's hitbox
func (e *Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// HealthFraction returns health as a value in [0, 1]
func (e *Enemy) HealthFraction() float64 {
	return fraction(e.Health, e.MaxHealth)
}

// Boss is the single high-health antagonist of the boss phase
type Boss struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Health    float64
	MaxHealth float64

	// Dir is +1 when patrolling right, -1 when patrolling left
	Dir float64

	// PatrolTimer counts ticks through the duty-cycled movement window
	PatrolTimer int

	// FireTimer counts ticks until the next attack pattern
	FireTimer int

	// Active is true only during the boss phase, until the boss is defeated
	Active bool

	// Projectiles fired by the boss that are still in flight
	Projectiles []Projectile
}

// NewBoss creates an inactive boss centered horizontally
func NewBoss(cfg Config, b Bounds) Boss {
	return Boss{
		X:         b.W/2 - cfg.BossWidth/2,
		Y:         cfg.BossY,
		W:         cfg.BossWidth,
		H:         cfg.BossHeight,
		Speed:     cfg.BossSpeed,
		Health:    cfg.BossMaxHealth,
		MaxHealth: cfg.BossMaxHealth,
		Dir:       1,
	}
}

// Rect returns the boss hitbox
func (b *Boss) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// HealthFraction returns health as a value in [0, 1]
func (b *Boss) HealthFraction() float64 {
	return fraction(b.Health, b.MaxHealth)
}

// Projectile is a round shot owned by exactly one shooter
type Projectile struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Damage float64
	Owner  Owner
	Color  color.RGBA
}

// Rect returns the projectile's bounding box
func (p *Projectile) Rect() Rect {
	return CircleRect(p.X, p.Y, p.Radius)
}

// Update moves the projectile by its fixed per-tick velocity
func (p *Projectile) Update() {
	p.X += p.DX
	p.Y += p.DY
}

// InBounds reports whether the projectile is still within margin of the field.
// The margin is inclusive.
func (p *Projectile) InBounds(b Bounds, margin float64) bool {
	return p.X >= -margin && p.X <= b.W+margin &&
		p.Y >= -margin && p.Y <= b.H+margin
}

// Particle is a purely cosmetic spark
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Radius  float64
	Color   color.RGBA
}

// Update integrates position, decays velocity and ages the particle
func (p *Particle) Update(decay float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= decay
	p.VY *= decay
	p.Life--
}

// IsAlive returns true while the particle has lifetime left
func (p *Particle) IsAlive() bool {
	return p.Life > 0
}

// Alpha returns the opacity as the remaining-life fraction
func (p *Particle) Alpha() float64 {
	return fraction(float64(p.Life), float64(p.MaxLife))
}

// applyDamage subtracts damage and clamps the result at zero.
// Returns true if health is depleted.
func applyDamage(health *float64, damage float64) bool {
	*health -= damage
	if *health <= 0 {
		*health = 0
		return true
	}
	return false
}

// heal adds amount and caps the result at max
func heal(health *float64, amount, max float64) {
	*health = Clamp(*health+amount, 0, max)
}

func fraction(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return Clamp(v/max, 0, 1)
}
