package controls

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/terralit/common"
	"github.com/Carmen-Shannon/terralit/engine/camera"
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// Controls turns held keys into per-tick adjustments of the camera eye and
// light position, one key pair per axis:
//
//	camera X: A / D    camera Y: Q / E    camera Z: W / S (W moves toward -z)
//	light  X: Left / Right    light Y: PageDown / PageUp    light Z: Up / Down (Up moves toward -z)
//
// Movement is scaled by elapsed time so the rate is frame-rate independent,
// and every axis is clamped to a configured [min, max] range. Key state is
// fed from the window's key callbacks; Update is called once per tick on the
// frame thread.
type Controls interface {
	// KeyDown records a key as held. Wire this to the window's key down callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key code constants)
	KeyDown(keyCode uint32)

	// KeyUp records a key as released. Wire this to the window's key up callback.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// Pressed reports whether a key is currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key is held
	Pressed(keyCode uint32) bool

	// Update applies all held axis keys to the camera and light, moving each
	// axis by stepPerSecond * deltaTime and clamping the result. When any
	// value changed the label callback (if set) receives the new live label.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	//
	// Returns:
	//   - bool: true if the camera or light moved this tick
	Update(deltaTime float32) bool

	// Label returns the live camera and light positions formatted for display,
	// the text counterpart of the axis controls.
	//
	// Returns:
	//   - string: the formatted label
	Label() string

	// StepPerSecond returns the movement rate in world units per second.
	//
	// Returns:
	//   - float32: the movement rate
	StepPerSecond() float32

	// Min returns the lower clamp bound applied to every axis.
	//
	// Returns:
	//   - float32: the minimum axis value
	Min() float32

	// Max returns the upper clamp bound applied to every axis.
	//
	// Returns:
	//   - float32: the maximum axis value
	Max() float32
}

// controlsImpl is the implementation of the Controls interface.
type controlsImpl struct {
	mu  *sync.Mutex
	cam camera.Camera
	lgt light.Light

	pressed       map[uint32]bool
	stepPerSecond float32
	min           float32
	max           float32
	onLabelChange func(label string)
}

// Compile-time interface compliance check
var _ Controls = &controlsImpl{}

// NewControls creates key-driven axis controls bound to a camera and a light.
// Both are required and NewControls panics if either is nil.
//
// Parameters:
//   - cam: the camera whose eye the controls move (must not be nil)
//   - lgt: the light whose position the controls move (must not be nil)
//   - options: functional options to configure the controls
//
// Returns:
//   - Controls: the newly created controls
func NewControls(cam camera.Camera, lgt light.Light, options ...ControlsBuilderOption) Controls {
	if cam == nil {
		panic("controls: NewControls requires a non-nil Camera")
	}
	if lgt == nil {
		panic("controls: NewControls requires a non-nil Light")
	}

	c := &controlsImpl{
		mu:            &sync.Mutex{},
		cam:           cam,
		lgt:           lgt,
		pressed:       make(map[uint32]bool),
		stepPerSecond: 2.0,
		min:           -10.0,
		max:           10.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controlsImpl) KeyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pressed[keyCode] = true
}

func (c *controlsImpl) KeyUp(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pressed, keyCode)
}

func (c *controlsImpl) Pressed(keyCode uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressed[keyCode]
}

func (c *controlsImpl) Update(deltaTime float32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	step := c.stepPerSecond * deltaTime
	camDelta := mgl32.Vec3{
		c.axisStep(common.KeyD, common.KeyA, step),
		c.axisStep(common.KeyE, common.KeyQ, step),
		c.axisStep(common.KeyS, common.KeyW, step),
	}
	lightDelta := mgl32.Vec3{
		c.axisStep(common.KeyRight, common.KeyLeft, step),
		c.axisStep(common.KeyPageUp, common.KeyPageDown, step),
		c.axisStep(common.KeyDown, common.KeyUp, step),
	}

	moved := false
	if camDelta != (mgl32.Vec3{}) {
		c.cam.SetEye(clampVec(c.cam.Eye().Add(camDelta), c.min, c.max))
		moved = true
	}
	if lightDelta != (mgl32.Vec3{}) {
		c.lgt.SetPosition(clampVec(c.lgt.Position().Add(lightDelta), c.min, c.max))
		moved = true
	}

	if moved && c.onLabelChange != nil {
		c.onLabelChange(c.label())
	}
	return moved
}

func (c *controlsImpl) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label()
}

func (c *controlsImpl) StepPerSecond() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepPerSecond
}

func (c *controlsImpl) Min() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.min
}

func (c *controlsImpl) Max() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.max
}

// axisStep resolves one axis from its positive and negative keys. Holding
// both cancels out. Caller must hold the mutex.
func (c *controlsImpl) axisStep(positiveKey, negativeKey uint32, step float32) float32 {
	var delta float32
	if c.pressed[positiveKey] {
		delta += step
	}
	if c.pressed[negativeKey] {
		delta -= step
	}
	return delta
}

// label formats the live camera and light positions. Caller must hold the mutex.
func (c *controlsImpl) label() string {
	eye := c.cam.Eye()
	pos := c.lgt.Position()
	return fmt.Sprintf("camera (%.1f, %.1f, %.1f) | light (%.1f, %.1f, %.1f)",
		eye.X(), eye.Y(), eye.Z(), pos.X(), pos.Y(), pos.Z())
}

// clampVec clamps every component of v to [lo, hi].
func clampVec(v mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(v[0], lo, hi),
		mgl32.Clamp(v[1], lo, hi),
		mgl32.Clamp(v[2], lo, hi),
	}
}
