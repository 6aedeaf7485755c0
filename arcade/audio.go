package arcade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"themeshooter/game"
)

const sampleRate = 44100

// SoundBank holds one synthesized beep per event type
type SoundBank struct {
	ctx     *audio.Context
	players map[game.EventType]*audio.Player
	muted   bool
}

// tones maps events to a frequency and duration in seconds
var tones = map[game.EventType][2]float64{
	game.EvtShotFired:     {880, 0.04},
	game.EvtEnemyHit:      {440, 0.05},
	game.EvtEnemyKilled:   {220, 0.12},
	game.EvtBossHit:       {330, 0.06},
	game.EvtPlayerHit:     {110, 0.2},
	game.EvtBossActivated: {150, 0.5},
	game.EvtBossDefeated:  {523.25, 0.6},
	game.EvtLevelAdvanced: {659.25, 0.4},
	game.EvtGameOver:      {98, 0.8},
}

// NewSoundBank synthesizes all tones up front
func NewSoundBank(muted bool) *SoundBank {
	sb := &SoundBank{muted: muted, players: make(map[game.EventType]*audio.Player)}
	if muted {
		return sb
	}
	sb.ctx = audio.NewContext(sampleRate)
	for evt, t := range tones {
		sb.players[evt] = newBeepPlayer(sb.ctx, t[0], t[1])
	}
	return sb
}

// Play starts the beep of every event type present this tick, once each
func (sb *SoundBank) Play(events []game.Event) {
	if sb.muted {
		return
	}
	seen := make(map[game.EventType]bool, len(events))
	for _, e := range events {
		if seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		p, ok := sb.players[e.Type]
		if !ok {
			continue
		}
		if err := p.Rewind(); err != nil {
			log.Error().Err(err).Stringer("event", e.Type).Msg("failed to rewind sound")
			continue
		}
		p.Play()
	}
}

// ToggleMute flips muting; the audio context is created lazily on first unmute
func (sb *SoundBank) ToggleMute() {
	sb.muted = !sb.muted
	if !sb.muted && sb.ctx == nil {
		sb.ctx = audio.NewContext(sampleRate)
		for evt, t := range tones {
			sb.players[evt] = newBeepPlayer(sb.ctx, t[0], t[1])
		}
	}
}

// Muted reports whether sounds are suppressed
func (sb *SoundBank) Muted() bool {
	return sb.muted
}

// newBeepPlayer renders a decaying sine into 16-bit stereo PCM
func newBeepPlayer(ctx *audio.Context, freq, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-4 * t / durSec)
		v := int16(math.Sin(2*math.Pi*freq*t) * 5000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}
