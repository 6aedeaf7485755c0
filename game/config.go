package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a tuning value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants.
// All durations are in ticks; the game runs at TicksPerSecond.
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond int `yaml:"ticks_per_second"`

	// Seed for the run's random source (0 picks one from the clock)
	Seed int64 `yaml:"seed"`

	// Player
	PlayerSize         float64 `yaml:"player_size"`
	PlayerSpeed        float64 `yaml:"player_speed"`
	PlayerMaxHealth    float64 `yaml:"player_max_health"`
	PlayerFireCooldown int     `yaml:"player_fire_cooldown"`

	// PlayfieldTop is the fraction of the screen height above which the player cannot move
	PlayfieldTop float64 `yaml:"playfield_top"`

	// Enemies
	SpawnInterval  int     `yaml:"spawn_interval"`
	KillThreshold  int     `yaml:"kill_threshold"`
	EnemyDespawn   float64 `yaml:"enemy_despawn_margin"`
	ContactDamage  float64 `yaml:"contact_damage"`
	KillScoreBase  int     `yaml:"kill_score_base"`
	KillScoreLevel int     `yaml:"kill_score_per_level"`

	// Boss
	BossWidth         float64 `yaml:"boss_width"`
	BossHeight        float64 `yaml:"boss_height"`
	BossY             float64 `yaml:"boss_y"`
	BossSpeed         float64 `yaml:"boss_speed"`
	BossMaxHealth     float64 `yaml:"boss_max_health"`
	BossFireInterval  int     `yaml:"boss_fire_interval"`
	BossPatrolPeriod  int     `yaml:"boss_patrol_period"`
	BossPatrolActive  int     `yaml:"boss_patrol_active"`
	BossHitScore      int     `yaml:"boss_hit_score"`
	BossDefeatDelay   int     `yaml:"boss_defeat_delay"`
	LevelClearBonus   int     `yaml:"level_clear_bonus"`
	LevelClearHeal    float64 `yaml:"level_clear_heal"`
	ResetBossPosition bool    `yaml:"reset_boss_position"`

	// ProjectileMargin is how far outside the canvas a projectile may travel before removal
	ProjectileMargin float64 `yaml:"projectile_margin"`

	// ParticleDecay is the per-tick particle velocity multiplier
	ParticleDecay float64 `yaml:"particle_decay"`

	// JoystickRadius is the maximum joystick offset in pixels
	JoystickRadius float64 `yaml:"joystick_radius"`

	// Muted disables sound effects
	Muted bool `yaml:"muted"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		TicksPerSecond: 60,

		PlayerSize:         40,
		PlayerSpeed:        5,
		PlayerMaxHealth:    100,
		PlayerFireCooldown: 8,
		PlayfieldTop:       0.45,

		SpawnInterval:  45,
		KillThreshold:  20,
		EnemyDespawn:   50,
		ContactDamage:  25,
		KillScoreBase:  100,
		KillScoreLevel: 50,

		BossWidth:        200,
		BossHeight:       60,
		BossY:            70,
		BossSpeed:        3,
		BossMaxHealth:    150,
		BossFireInterval: 35,
		BossPatrolPeriod: 120,
		BossPatrolActive: 60,
		BossHitScore:     200,
		BossDefeatDelay:  60, // one second at 60 TPS
		LevelClearBonus:  2000,
		LevelClearHeal:   30,

		ProjectileMargin: 20,
		ParticleDecay:    0.95,
		JoystickRadius:   60,
	}
}

// LoadConfig reads a YAML tuning file on top of DefaultConfig.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every tuning value can drive the simulation
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"screen_width", float64(c.ScreenWidth)},
		{"screen_height", float64(c.ScreenHeight)},
		{"ticks_per_second", float64(c.TicksPerSecond)},
		{"player_size", c.PlayerSize},
		{"player_speed", c.PlayerSpeed},
		{"player_max_health", c.PlayerMaxHealth},
		{"player_fire_cooldown", float64(c.PlayerFireCooldown)},
		{"spawn_interval", float64(c.SpawnInterval)},
		{"kill_threshold", float64(c.KillThreshold)},
		{"boss_width", c.BossWidth},
		{"boss_height", c.BossHeight},
		{"boss_max_health", c.BossMaxHealth},
		{"boss_fire_interval", float64(c.BossFireInterval)},
		{"boss_patrol_period", float64(c.BossPatrolPeriod)},
		{"joystick_radius", c.JoystickRadius},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.PlayfieldTop < 0 || c.PlayfieldTop >= 1 {
		return fmt.Errorf("%w: playfield_top must be in [0,1), got %v", ErrInvalidConfig, c.PlayfieldTop)
	}
	if c.BossPatrolActive < 0 || c.BossPatrolActive > c.BossPatrolPeriod {
		return fmt.Errorf("%w: boss_patrol_active must be in [0,%d], got %d",
			ErrInvalidConfig, c.BossPatrolPeriod, c.BossPatrolActive)
	}
	if c.ParticleDecay < 0 || c.ParticleDecay > 1 {
		return fmt.Errorf("%w: particle_decay must be in [0,1], got %v", ErrInvalidConfig, c.ParticleDecay)
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"contact_damage", c.ContactDamage},
		{"level_clear_heal", c.LevelClearHeal},
		{"level_clear_bonus", float64(c.LevelClearBonus)},
		{"kill_score_base", float64(c.KillScoreBase)},
		{"kill_score_per_level", float64(c.KillScoreLevel)},
		{"boss_hit_score", float64(c.BossHitScore)},
		{"boss_defeat_delay", float64(c.BossDefeatDelay)},
		{"enemy_despawn_margin", c.EnemyDespawn},
		{"projectile_margin", c.ProjectileMargin},
	}
	for _, n := range nonNegative {
		if n.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, n.name, n.value)
		}
	}
	return nil
}
