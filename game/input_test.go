package game

import "testing"

func TestKeyStateVector(t *testing.T) {
	tests := []struct {
		name  string
		held  []Key
		wantX float64
		wantY float64
	}{
		{"none", nil, 0, 0},
		{"left", []Key{KeyLeft}, -1, 0},
		{"right and down", []Key{KeyRight, KeyDown}, 1, 1},
		{"opposites cancel", []Key{KeyLeft, KeyRight, KeyUp}, 0, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var k KeyState
			for _, key := range tc.held {
				k.Press(key)
			}
			x, y := k.Vector()
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Vector() = (%v, %v), want (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestKeyStatePressRelease(t *testing.T) {
	var k KeyState
	k.Press(KeyFire)
	if !k.Held(KeyFire) {
		t.Fatal("fire should be held after Press")
	}
	k.Release(KeyFire)
	if k.Held(KeyFire) {
		t.Fatal("fire should be released")
	}
	k.Set(KeyLeft, true)
	k.Reset()
	if k.Held(KeyLeft) {
		t.Error("Reset should release every key")
	}
	if k.Held(Key(-1)) || k.Held(keyCount) {
		t.Error("out-of-range keys must read as released")
	}
}

func TestJoystick(t *testing.T) {
	j := NewJoystick(60)

	j.Drag(500, 500)
	if x, y := j.Vector(); x != 0 || y != 0 {
		t.Errorf("Drag before Begin moved the stick to (%v, %v)", x, y)
	}

	j.Begin(100, 100)
	j.Drag(130, 100)
	if x, y := j.Vector(); x != 0.5 || y != 0 {
		t.Errorf("half deflection Vector() = (%v, %v), want (0.5, 0)", x, y)
	}

	j.Drag(100, 400)
	if dx, dy := j.Offset(); dx != 0 || dy != 60 {
		t.Errorf("Offset() = (%v, %v), want clamped to (0, 60)", dx, dy)
	}
	if x, y := j.Vector(); x != 0 || y != 1 {
		t.Errorf("Vector() = (%v, %v), want (0, 1)", x, y)
	}
	if ox, oy := j.Origin(); ox != 100 || oy != 100 {
		t.Errorf("Origin() = (%v, %v), want (100, 100)", ox, oy)
	}

	j.End()
	if j.Active() {
		t.Error("stick still active after End")
	}
	if x, y := j.Vector(); x != 0 || y != 0 {
		t.Errorf("Vector() after End = (%v, %v), want zero", x, y)
	}
}

func TestCombine(t *testing.T) {
	var k KeyState
	k.Press(KeyRight)
	j := NewJoystick(60)
	j.Begin(0, 0)
	j.Drag(30, -30)
	j.FireHeld = true

	in := Combine(&k, j)
	if in.MoveX != 1 {
		t.Errorf("MoveX = %v, want clamped to 1", in.MoveX)
	}
	if in.MoveY != -0.5 {
		t.Errorf("MoveY = %v, want -0.5", in.MoveY)
	}
	if !in.Fire {
		t.Error("joystick fire should set Fire")
	}

	if got := Combine(nil, nil); got != (Input{}) {
		t.Errorf("Combine(nil, nil) = %+v, want zero", got)
	}
}
