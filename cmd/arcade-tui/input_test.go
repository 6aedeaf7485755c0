package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"themeshooter/game"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Key
		ok   bool
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.KeyLeft, true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.KeyDown, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.KeyRight, true},
		{"W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), game.KeyUp, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.KeyFire, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.KeyRestart, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("keyFor() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTerminalInputHoldWindow(t *testing.T) {
	now := time.Unix(0, 0)
	in := newTerminalInput()
	in.clock = func() time.Time { return now }

	in.press(game.KeyRight)
	in.press(game.KeyFire)
	got := in.Poll(game.Bounds{})
	if got.MoveX != 1 || !got.Fire {
		t.Fatalf("right+fire just pressed: got %+v", got)
	}

	now = now.Add(keyHoldWindow / 2)
	if got := in.Poll(game.Bounds{}); got.MoveX != 1 {
		t.Errorf("within hold window: MoveX = %v, want 1", got.MoveX)
	}

	now = now.Add(keyHoldWindow)
	if got := in.Poll(game.Bounds{}); got.MoveX != 0 || got.Fire {
		t.Errorf("after hold window: got %+v, want released", got)
	}
}

func TestTerminalInputOppositeCancels(t *testing.T) {
	now := time.Unix(0, 0)
	in := newTerminalInput()
	in.clock = func() time.Time { return now }

	in.press(game.KeyLeft)
	in.press(game.KeyRight)
	if got := in.Poll(game.Bounds{}); got.MoveX != 1 {
		t.Errorf("MoveX = %v, want 1 after reversing", got.MoveX)
	}
}

func TestTerminalInputRestartOnce(t *testing.T) {
	in := newTerminalInput()
	in.press(game.KeyRestart)
	if !in.Poll(game.Bounds{}).Restart {
		t.Fatal("restart not delivered")
	}
	if in.Poll(game.Bounds{}).Restart {
		t.Error("restart delivered twice for one press")
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Error("a should not quit")
	}
}
