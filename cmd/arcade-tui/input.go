package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"themeshooter/game"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held until this long after its last event.
const keyHoldWindow = 180 * time.Millisecond

// terminalInput turns tcell key events into game.Input
type terminalInput struct {
	keys     game.KeyState
	lastSeen map[game.Key]time.Time
	restart  bool
	clock    func() time.Time
	holdFor  time.Duration
}

func newTerminalInput() *terminalInput {
	return &terminalInput{
		lastSeen: make(map[game.Key]time.Time),
		clock:    time.Now,
		holdFor:  keyHoldWindow,
	}
}

// keyFor maps a tcell key event to a logical control
func keyFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyEnter:
		return game.KeyRestart, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyLeft, true
		case 'd', 'D':
			return game.KeyRight, true
		case 'w', 'W':
			return game.KeyUp, true
		case 's', 'S':
			return game.KeyDown, true
		case ' ':
			return game.KeyFire, true
		case 'r', 'R':
			return game.KeyRestart, true
		}
	}
	return 0, false
}

// press records a key event
func (t *terminalInput) press(k game.Key) {
	if k == game.KeyRestart {
		t.restart = true
		return
	}
	now := t.clock()
	// Opposite directions cancel the hold of the other one at once
	switch k {
	case game.KeyLeft:
		delete(t.lastSeen, game.KeyRight)
	case game.KeyRight:
		delete(t.lastSeen, game.KeyLeft)
	case game.KeyUp:
		delete(t.lastSeen, game.KeyDown)
	case game.KeyDown:
		delete(t.lastSeen, game.KeyUp)
	}
	t.lastSeen[k] = now
}

// Poll implements game.InputProvider. Restart is delivered once per press.
func (t *terminalInput) Poll(game.Bounds) game.Input {
	now := t.clock()
	for _, k := range []game.Key{game.KeyLeft, game.KeyRight, game.KeyUp, game.KeyDown, game.KeyFire} {
		seen, ok := t.lastSeen[k]
		t.keys.Set(k, ok && now.Sub(seen) <= t.holdFor)
	}
	t.keys.Set(game.KeyRestart, t.restart)
	t.restart = false
	return game.Combine(&t.keys, nil)
}
