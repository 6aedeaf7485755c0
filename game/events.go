package game

import "github.com/rs/zerolog"

// EventType identifies something that happened during a tick
type EventType uint8

const (
	EvtShotFired EventType = iota
	EvtEnemyHit
	EvtEnemyKilled
	EvtBossHit
	EvtBossFired
	EvtPlayerHit
	EvtBossActivated
	EvtBossDefeated
	EvtLevelAdvanced
	EvtGameOver
	EvtRestart
)

var eventNames = [...]string{
	EvtShotFired:     "shot_fired",
	EvtEnemyHit:      "enemy_hit",
	EvtEnemyKilled:   "enemy_killed",
	EvtBossHit:       "boss_hit",
	EvtBossFired:     "boss_fired",
	EvtPlayerHit:     "player_hit",
	EvtBossActivated: "boss_activated",
	EvtBossDefeated:  "boss_defeated",
	EvtLevelAdvanced: "level_advanced",
	EvtGameOver:      "game_over",
	EvtRestart:       "restart",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is recorded by Step for consumers outside the simulation
// (logging, sound, tests). Events never feed back into the core.
type Event struct {
	Type EventType
	Tick uint64
	X, Y float64

	// Value carries the score awarded, damage taken or level index, depending on Type
	Value int
}

// emit appends an event for the current tick
func (s *State) emit(t EventType, x, y float64, value int) {
	s.Events = append(s.Events, Event{Type: t, Tick: s.Tick, X: x, Y: y, Value: value})
}

// CountEvents returns how many events of a type the last Step recorded
func (s *State) CountEvents(t EventType) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// LogTransitions writes one entry per phase transition in events
func LogTransitions(log zerolog.Logger, s *State, events []Event) {
	for _, e := range events {
		theme := LevelAt(e.Value).Name
		switch e.Type {
		case EvtBossActivated:
			log.Info().Uint64("tick", e.Tick).Str("theme", theme).Int("score", s.Score).Msg("boss activated")
		case EvtBossDefeated:
			log.Info().Uint64("tick", e.Tick).Str("theme", theme).Msg("boss defeated")
		case EvtLevelAdvanced:
			log.Info().Uint64("tick", e.Tick).Str("theme", theme).Int("score", s.Score).Msg("level advanced")
		case EvtGameOver:
			log.Info().Uint64("tick", e.Tick).Str("theme", theme).Int("score", s.Score).Msg("game over")
		case EvtRestart:
			log.Info().Uint64("tick", e.Tick).Msg("restart")
		}
	}
}
