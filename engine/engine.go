package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/terralit/engine/controls"
	"github.com/Carmen-Shannon/terralit/engine/profiler"
	"github.com/Carmen-Shannon/terralit/engine/scene"
	"github.com/Carmen-Shannon/terralit/engine/window"
)

// engine implements the Engine interface.
// Drives the scene through the window's message loop: every loop iteration
// runs exactly one frame to completion before the window schedules the next,
// so frames never overlap and the frame state needs no cross-frame locking.
type engine struct {
	window window.Window
	scn    scene.Scene
	ctl    controls.Controls

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	running  bool
	lastTick time.Time
}

// Engine is the main entry point for the application.
// It owns the frame loop and coordinates the window, controls, and scene.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene the engine drives each frame.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// Controls returns the engine's key-driven controls, or nil if none were attached.
	//
	// Returns:
	//   - controls.Controls: the controls instance or nil
	Controls() controls.Controls

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Running reports whether the frame loop has started and not yet returned.
	//
	// Returns:
	//   - bool: true while Run is driving frames
	Running() bool

	// Run starts the frame loop (blocks until the window closes). Each loop
	// iteration applies controls input, performs the resize check, renders one
	// frame, and optionally sleeps to honor the frame limit.
	Run()

	// Quit closes the window, ending the Run loop after the current frame.
	// Safe to call when the engine is not running.
	Quit()
}

// Ensure engine implements Engine interface.
var _ Engine = &engine{}

// NewEngine creates a new Engine driving the given scene through the given
// window. Both are required and NewEngine panics if either is nil. The
// window's resize callback is wired to the scene so surface changes apply as
// soon as the platform reports them; the per-frame resize check covers
// anything the callback missed.
//
// Parameters:
//   - win: the window whose message loop drives frames (must not be nil)
//   - scn: the scene to render each frame (must not be nil)
//   - options: functional options for engine configuration (controls, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(win window.Window, scn scene.Scene, options ...EngineBuilderOption) Engine {
	if win == nil {
		panic("engine: NewEngine requires a non-nil Window")
	}
	if scn == nil {
		panic("engine: NewEngine requires a non-nil Scene")
	}

	e := &engine{
		window:           win,
		scn:              scn,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	win.SetResizeCallback(scn.Resize)
	if e.ctl != nil {
		win.SetKeyDownCallback(e.ctl.KeyDown)
		win.SetKeyUpCallback(e.ctl.KeyUp)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scn
}

func (e *engine) Controls() controls.Controls {
	return e.ctl
}

func (e *engine) Run() {
	e.lastTick = time.Now()
	e.running = true
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.running = false
}

func (e *engine) Quit() {
	if err := e.window.Close(); err != nil {
		log.Printf("engine: window close failed: %v", err)
	}
}

func (e *engine) Running() bool {
	return e.running
}

// frame executes one tick of the frame loop: controls input, resize check,
// uniform pack + upload + draw (via the scene), profiler tick, and the
// optional frame-limit sleep. Runs on the window's message loop thread.
func (e *engine) frame() {
	now := time.Now()
	dt := float32(now.Sub(e.lastTick).Seconds())
	e.lastTick = now

	if e.ctl != nil {
		e.ctl.Update(dt)
	}

	e.scn.Resize(e.window.Width(), e.window.Height())

	if err := e.scn.RenderFrame(); err != nil {
		log.Printf("engine: frame skipped: %v", err)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.frameLimit > 0 {
		if remaining := e.frameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
