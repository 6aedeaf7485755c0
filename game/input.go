package game

import "math"

// Input is the normalized per-tick control sample consumed by Step
type Input struct {
	// Movement vector, each axis in [-1, 1]
	MoveX, MoveY float64

	// Fire is true while any fire control is held
	Fire bool

	// Restart is honored only in the game-over phase
	Restart bool
}

// InputProvider produces one Input per tick
type InputProvider interface {
	// Poll samples the controls for the coming tick given the live field size
	Poll(b Bounds) Input
}

// Key names a logical control, independent of the physical binding
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyRestart
	keyCount
)

// KeyState folds discrete key-down/key-up events into held state
type KeyState struct {
	held [keyCount]bool
}

// Press records a key-down event
func (k *KeyState) Press(key Key) {
	k.Set(key, true)
}

// Release records a key-up event
func (k *KeyState) Release(key Key) {
	k.Set(key, false)
}

// Set records the held state of a key
func (k *KeyState) Set(key Key, down bool) {
	if key >= 0 && key < keyCount {
		k.held[key] = down
	}
}

// Held reports whether a key is currently down
func (k *KeyState) Held(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return k.held[key]
}

// Reset releases every key
func (k *KeyState) Reset() {
	k.held = [keyCount]bool{}
}

// Vector returns the keyboard movement vector; opposite keys cancel out
func (k *KeyState) Vector() (float64, float64) {
	var x, y float64
	if k.held[KeyLeft] {
		x--
	}
	if k.held[KeyRight] {
		x++
	}
	if k.held[KeyUp] {
		y--
	}
	if k.held[KeyDown] {
		y++
	}
	return x, y
}

// Joystick folds pointer or touch drags into an offset from the press point.
// The offset magnitude never exceeds MaxRadius.
type Joystick struct {
	MaxRadius float64

	// FireHeld is set by the fire button of the touch controls
	FireHeld bool

	active           bool
	originX, originY float64
	offsetX, offsetY float64
}

// NewJoystick creates a joystick with the given maximum deflection
func NewJoystick(maxRadius float64) *Joystick {
	return &Joystick{MaxRadius: maxRadius}
}

// Begin anchors the stick at the press point
func (j *Joystick) Begin(x, y float64) {
	j.active = true
	j.originX, j.originY = x, y
	j.offsetX, j.offsetY = 0, 0
}

// Drag moves the stick toward (x, y), clamped to MaxRadius
func (j *Joystick) Drag(x, y float64) {
	if !j.active {
		return
	}
	dx := x - j.originX
	dy := y - j.originY
	if dist := math.Hypot(dx, dy); dist > j.MaxRadius && dist > 0 {
		scale := j.MaxRadius / dist
		dx *= scale
		dy *= scale
	}
	j.offsetX, j.offsetY = dx, dy
}

// End releases the stick back to center
func (j *Joystick) End() {
	j.active = false
	j.offsetX, j.offsetY = 0, 0
}

// Active reports whether the stick is being dragged
func (j *Joystick) Active() bool {
	return j.active
}

// Origin returns the press point
func (j *Joystick) Origin() (float64, float64) {
	return j.originX, j.originY
}

// Offset returns the clamped drag offset in pixels
func (j *Joystick) Offset() (float64, float64) {
	return j.offsetX, j.offsetY
}

// Vector returns the offset scaled to [-1, 1] per axis
func (j *Joystick) Vector() (float64, float64) {
	if !j.active || j.MaxRadius <= 0 {
		return 0, 0
	}
	return j.offsetX / j.MaxRadius, j.offsetY / j.MaxRadius
}

// Combine adds the keyboard and joystick vectors and clamps each axis.
// Either source may be nil.
func Combine(keys *KeyState, stick *Joystick) Input {
	var in Input
	if keys != nil {
		in.MoveX, in.MoveY = keys.Vector()
		in.Fire = keys.Held(KeyFire)
		in.Restart = keys.Held(KeyRestart)
	}
	if stick != nil {
		sx, sy := stick.Vector()
		in.MoveX += sx
		in.MoveY += sy
		in.Fire = in.Fire || stick.FireHeld
	}
	in.MoveX = Clamp(in.MoveX, -1, 1)
	in.MoveY = Clamp(in.MoveY, -1, 1)
	return in
}
