package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/terralit/common"
	"github.com/Carmen-Shannon/terralit/engine/camera"
	"github.com/Carmen-Shannon/terralit/engine/controls"
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/Carmen-Shannon/terralit/engine/model"
	"github.com/Carmen-Shannon/terralit/engine/renderer"
	"github.com/Carmen-Shannon/terralit/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/terralit/engine/scene"
	"github.com/Carmen-Shannon/terralit/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// fakeWindow drives the update callback a fixed number of iterations,
// standing in for the platform message loop.
type fakeWindow struct {
	width, height int
	iterations    int
	closed        bool

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(callback func())                { w.onUpdate = callback }
func (w *fakeWindow) SetResizeCallback(callback func(int, int))        { w.onResize = callback }
func (w *fakeWindow) SetKeyDownCallback(callback func(keyCode uint32)) { w.onKeyDown = callback }
func (w *fakeWindow) SetKeyUpCallback(callback func(keyCode uint32))   { w.onKeyUp = callback }
func (w *fakeWindow) SetTitle(title string)                            {}
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor       { return nil }
func (w *fakeWindow) IsRunning() bool                                  { return !w.closed }
func (w *fakeWindow) Close() error                                     { w.closed = true; return nil }
func (w *fakeWindow) Width() int                                       { return w.width }
func (w *fakeWindow) Height() int                                      { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.iterations && !w.closed; i++ {
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

// fakeScene records the calls the frame loop makes against it.
type fakeScene struct {
	renderedFrames int
	resizeWidths   []int
	resizeHeights  []int
}

var _ scene.Scene = &fakeScene{}

func (s *fakeScene) Name() string                                           { return "fake" }
func (s *fakeScene) SetName(name string)                                    {}
func (s *fakeScene) Camera() camera.Camera                                  { return nil }
func (s *fakeScene) SetCamera(cam camera.Camera)                            {}
func (s *fakeScene) Renderer() renderer.Renderer                            { return nil }
func (s *fakeScene) Light() light.Light                                     { return nil }
func (s *fakeScene) SetLight(l light.Light)                                 {}
func (s *fakeScene) Model() model.Model                                     { return nil }
func (s *fakeScene) SetModel(mdl model.Model)                               {}
func (s *fakeScene) ModelMatrix() mgl32.Mat4                                { return mgl32.Ident4() }
func (s *fakeScene) SetModelMatrix(m mgl32.Mat4)                            {}
func (s *fakeScene) UniformProvider() bind_group_provider.BindGroupProvider { return nil }
func (s *fakeScene) RenderFrame() error                                     { s.renderedFrames++; return nil }

func (s *fakeScene) Resize(width, height int) {
	s.resizeWidths = append(s.resizeWidths, width)
	s.resizeHeights = append(s.resizeHeights, height)
}

func TestNewEnginePanicsOnMissingDependencies(t *testing.T) {
	win := &fakeWindow{}
	scn := &fakeScene{}

	assert.Panics(t, func() { NewEngine(nil, scn) }, "nil window")
	assert.Panics(t, func() { NewEngine(win, nil) }, "nil scene")
}

func TestRunDrivesFramesUntilWindowCloses(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, iterations: 3}
	scn := &fakeScene{}
	e := NewEngine(win, scn)

	e.Run()

	assert.Equal(t, 3, scn.renderedFrames)
	assert.False(t, e.Running())
	// Every frame performs the resize check against the live window dimensions.
	assert.Equal(t, []int{800, 800, 800}, scn.resizeWidths)
	assert.Equal(t, []int{600, 600, 600}, scn.resizeHeights)
}

func TestNewEngineWiresResizeCallback(t *testing.T) {
	win := &fakeWindow{}
	scn := &fakeScene{}
	NewEngine(win, scn)

	win.onResize(1024, 768)

	assert.Equal(t, []int{1024}, scn.resizeWidths)
	assert.Equal(t, []int{768}, scn.resizeHeights)
}

func TestNewEngineWiresControlsToKeyCallbacks(t *testing.T) {
	win := &fakeWindow{}
	scn := &fakeScene{}
	ctl := controls.NewControls(
		camera.NewCamera(),
		light.NewLight(light.LightTypeDirectional),
	)
	e := NewEngine(win, scn, WithControls(ctl))

	assert.Equal(t, ctl, e.Controls())
	win.onKeyDown(common.KeyW)
	assert.True(t, ctl.Pressed(common.KeyW))
	win.onKeyUp(common.KeyW)
	assert.False(t, ctl.Pressed(common.KeyW))
}

func TestQuitClosesWindow(t *testing.T) {
	win := &fakeWindow{iterations: 100}
	scn := &fakeScene{}
	e := NewEngine(win, scn)

	e.Quit()

	assert.False(t, win.IsRunning())
	e.Run()
	assert.Equal(t, 0, scn.renderedFrames, "a closed window schedules no frames")
}

func TestSetFrameLimit(t *testing.T) {
	e := NewEngine(&fakeWindow{}, &fakeScene{}).(*engine)

	e.SetFrameLimit(60)
	assert.Equal(t, time.Second/60, e.frameLimit)

	e.SetFrameLimit(0)
	assert.Equal(t, time.Duration(0), e.frameLimit)
}

func TestWithFrameLimitOption(t *testing.T) {
	e := NewEngine(&fakeWindow{}, &fakeScene{}, WithFrameLimit(120)).(*engine)
	assert.Equal(t, time.Second/120, e.frameLimit)

	uncapped := NewEngine(&fakeWindow{}, &fakeScene{}, WithFrameLimit(-1)).(*engine)
	assert.Equal(t, time.Duration(0), uncapped.frameLimit)
}
