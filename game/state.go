package game

import (
	"math/rand"
	"time"
)

// Phase is the progression state of the run
type Phase uint8

const (
	PhaseWave     Phase = iota // Enemies spawn and fall
	PhaseBoss                  // Boss active, spawning suspended
	PhaseGameOver              // Simulation frozen until restart
)

func (p Phase) String() string {
	switch p {
	case PhaseWave:
		return "wave"
	case PhaseBoss:
		return "boss"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the single aggregate owned by the tick function.
// Nothing outside Step mutates it.
type State struct {
	Config Config

	Player    Player
	Enemies   []Enemy
	Boss      Boss
	Particles []Particle
	Spawner   Spawner

	// Run state
	LevelIndex int
	Score      int
	Kills      int
	Phase      Phase
	LevelTimer int

	// Tick counts every simulated tick since the state was created
	Tick uint64

	// AdvancePending is set when the boss falls; the level advances at tick AdvanceAt
	AdvancePending bool
	AdvanceAt      uint64

	// Events recorded by the most recent Step. The slice is reused between ticks.
	Events []Event

	rng  *rand.Rand
	grid *Grid
}

// NewState creates a run at level 0 in the wave phase.
// A nil rng is replaced by one seeded from Config.Seed, or the clock if that is 0.
func NewState(cfg Config, b Bounds, rng *rand.Rand) *State {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	s := &State{
		Config: cfg,
		rng:    rng,
		grid:   NewGrid(gridCellSize),
		Events: make([]Event, 0, 32),
	}
	s.reset(b)
	return s
}

// Restart resets the run to its initial values regardless of prior state.
// A pending level advance is dropped.
func (s *State) Restart(b Bounds) {
	s.reset(b)
	s.emit(EvtRestart, 0, 0, 0)
}

func (s *State) reset(b Bounds) {
	s.Player = NewPlayer(s.Config, b)
	s.Enemies = nil
	s.Boss = NewBoss(s.Config, b)
	s.Particles = nil
	s.Spawner = NewSpawner(s.Config)
	s.LevelIndex = 0
	s.Score = 0
	s.Kills = 0
	s.Phase = PhaseWave
	s.LevelTimer = 0
	s.AdvancePending = false
	s.AdvanceAt = 0
}

// Level returns the current theme
func (s *State) Level() Level {
	return LevelAt(s.LevelIndex)
}

// addScore is the only way score changes during a run
func (s *State) addScore(points int) {
	if points > 0 {
		s.Score += points
	}
}
