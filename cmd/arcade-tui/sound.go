package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"themeshooter/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is the frequency and length of one event's beep
type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[game.EventType]tone{
	game.EvtEnemyKilled:   {220, 60 * time.Millisecond},
	game.EvtBossHit:       {330, 40 * time.Millisecond},
	game.EvtPlayerHit:     {110, 120 * time.Millisecond},
	game.EvtBossActivated: {150, 300 * time.Millisecond},
	game.EvtBossDefeated:  {523.25, 400 * time.Millisecond},
	game.EvtLevelAdvanced: {659.25, 250 * time.Millisecond},
	game.EvtGameOver:      {98, 500 * time.Millisecond},
}

// sounds plays event beeps through the system speaker
type sounds struct {
	enabled bool
}

// newSounds initializes the speaker. The game runs silently if that fails.
func newSounds(muted bool) (*sounds, error) {
	if muted {
		return &sounds{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sounds{}, fmt.Errorf("init speaker: %w", err)
	}
	return &sounds{enabled: true}, nil
}

// play starts one beep per event type present this tick
func (s *sounds) play(events []game.Event) {
	if !s.enabled {
		return
	}
	seen := make(map[game.EventType]bool, len(events))
	for _, e := range events {
		t, ok := tones[e.Type]
		if !ok || seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		quiet := &effects.Gain{Streamer: sine, Gain: -0.8}
		speaker.Play(beep.Take(sampleRate.N(t.dur), quiet))
	}
}

func (s *sounds) close() {
	if s.enabled {
		speaker.Close()
	}
}
