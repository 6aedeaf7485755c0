package arcade

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"themeshooter/game"
)

// keyBindings maps each logical control to its physical keys
var keyBindings = map[game.Key][]ebiten.Key{
	game.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	game.KeyFire:    {ebiten.KeySpace},
	game.KeyRestart: {ebiten.KeyR, ebiten.KeyEnter},
}

// PlayerInput provides input from keyboard, mouse drag and touch.
// On touch screens the left half is a virtual joystick and the right half fires.
type PlayerInput struct {
	keys  game.KeyState
	stick *game.Joystick

	stickTouch       ebiten.TouchID
	stickTouchActive bool
	fireTouches      map[ebiten.TouchID]bool
	mouseDragging    bool
	tapped           bool

	touchBuf []ebiten.TouchID
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput(joystickRadius float64) *PlayerInput {
	return &PlayerInput{
		stick:       game.NewJoystick(joystickRadius),
		fireTouches: make(map[ebiten.TouchID]bool),
		touchBuf:    make([]ebiten.TouchID, 0, 8),
	}
}

// Poll samples keyboard, mouse and touch state into one Input
func (p *PlayerInput) Poll(b game.Bounds) game.Input {
	for key, physical := range keyBindings {
		down := false
		for _, k := range physical {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		p.keys.Set(key, down)
	}

	p.updateTouches(b)
	if !p.stickTouchActive {
		p.updateMouse()
	}

	in := game.Combine(&p.keys, p.stick)
	in.Restart = in.Restart || p.tapped
	return in
}

// updateTouches assigns new touches to the stick or the fire button by screen half
func (p *PlayerInput) updateTouches(b game.Bounds) {
	p.tapped = false
	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		p.tapped = true
		x, y := ebiten.TouchPosition(id)
		if float64(x) < b.W/2 && !p.stickTouchActive {
			p.stickTouch = id
			p.stickTouchActive = true
			p.stick.Begin(float64(x), float64(y))
			continue
		}
		p.fireTouches[id] = true
	}

	if p.stickTouchActive {
		if inpututil.IsTouchJustReleased(p.stickTouch) {
			p.stick.End()
			p.stickTouchActive = false
		} else {
			x, y := ebiten.TouchPosition(p.stickTouch)
			p.stick.Drag(float64(x), float64(y))
		}
	}

	for id := range p.fireTouches {
		if inpututil.IsTouchJustReleased(id) {
			delete(p.fireTouches, id)
		}
	}
	p.stick.FireHeld = len(p.fireTouches) > 0
}

// updateMouse treats a left-button drag as the joystick on desktop
func (p *PlayerInput) updateMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouseDragging = true
		p.stick.Begin(float64(x), float64(y))
	case p.mouseDragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		p.stick.Drag(float64(x), float64(y))
	case p.mouseDragging:
		p.mouseDragging = false
		p.stick.End()
	}
}

// Stick exposes the virtual joystick so the renderer can draw it
func (p *PlayerInput) Stick() *game.Joystick {
	return p.stick
}
