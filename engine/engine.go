package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/camera"
	"github.com/Carmen-Shannon/glade/engine/logger"
	"github.com/Carmen-Shannon/glade/engine/profiler"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/scene"
	"github.com/Carmen-Shannon/glade/engine/window"

	"go.uber.org/zap"
)

// ErrNoScene is returned by Run when no scene has been attached to the engine.
var ErrNoScene = errors.New("no scene set")

// engine implements the Engine interface.
// Everything runs on the window's locked OS thread: OpenGL confines context
// access to one thread, so input processing, the tick callback, and rendering
// all happen inside the window's message loop rather than on separate
// goroutines.
type engine struct {
	window window.Window
	ctx    renderer.RenderContext
	cam    camera.Camera
	sc     scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	tickCallback func(deltaTime float32)

	// keysDown tracks held keys so movement applies every frame rather than
	// at the keyboard repeat rate.
	keysDown map[uint32]bool

	lastCursorX float32
	lastCursorY float32
	cursorSeen  bool

	startClock float64
	lastClock  float64
	running    bool

	lastRenderErr string

	shutdownOnce sync.Once
}

// Engine is the main entry point for the engine.
// It orchestrates the frame loop, camera input, and window management for a
// single active scene.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Context returns the render context shared by the engine's scene and
	// registries.
	//
	// Returns:
	//   - renderer.RenderContext: the render context
	Context() renderer.RenderContext

	// Camera returns the engine's camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Scene returns the active scene, or nil if none is set.
	//
	// Returns:
	//   - scene.Scene: the active scene
	Scene() scene.Scene

	// SetScene replaces the active scene. If the engine is already running,
	// the new scene is set up immediately; otherwise Run sets it up.
	//
	// Parameters:
	//   - s: the scene to activate
	SetScene(s scene.Scene)

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame before the
	// scene renders. Use this for app logic and animation updates.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the frame loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run sets up the active scene and blocks in the frame loop until the
	// window closes or Quit is called. The scene is torn down and the window
	// closed before Run returns.
	//
	// Returns:
	//   - error: ErrNoScene if no scene is attached
	Run() error

	// Quit tears down the scene and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A default window, render context, and camera are created for any not
// supplied; the render context is initialized against the window's OpenGL
// context and blending is enabled.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
		keysDown: make(map[uint32]bool),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}
	if e.ctx == nil {
		e.ctx = renderer.NewRenderContext(renderer.BackendTypeOpenGL)
	}
	if err := e.ctx.Init(); err != nil {
		panic(fmt.Sprintf("failed to initialize render context: %v", err))
	}
	e.ctx.EnableBlending()
	e.ctx.Resize(e.window.Width(), e.window.Height())

	if e.cam == nil {
		e.cam = camera.NewCamera(
			camera.WithController(camera.NewCameraController()),
			camera.WithAspect(float32(e.window.Width())/float32(e.window.Height())),
		)
	}

	e.window.SetResizeCallback(func(width, height int) {
		e.ctx.Resize(width, height)
		if height > 0 {
			e.cam.SetAspect(float32(width) / float32(height))
		}
	})
	e.window.SetKeyDownCallback(e.onKeyDown)
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		e.keysDown[keyCode] = false
	})
	e.window.SetMouseMoveCallback(e.onMouseMove)
	e.window.SetScrollCallback(func(delta float32) {
		if ctrl := e.cam.Controller(); ctrl != nil {
			ctrl.AdjustZoom(delta)
		}
	})

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Context() renderer.RenderContext {
	return e.ctx
}

func (e *engine) Camera() camera.Camera {
	return e.cam
}

func (e *engine) Scene() scene.Scene {
	return e.sc
}

func (e *engine) SetScene(s scene.Scene) {
	e.sc = s
	if e.running && s != nil {
		e.setupScene(s)
	}
}

func (e *engine) Run() error {
	if e.sc == nil {
		return ErrNoScene
	}
	defer e.shutdown()

	e.setupScene(e.sc)

	e.startClock = e.window.Clock()
	e.lastClock = e.startClock
	e.running = true
	e.window.SetUpdateCallback(e.frame)

	logger.Log.Info("engine running", zap.String("scene", e.sc.Name()))
	e.window.ProcessMessages()
	return nil
}

// setupScene loads the scene's resources, logging rather than failing on
// setup errors so a missing texture degrades to the placeholder color instead
// of stopping the app.
func (e *engine) setupScene(s scene.Scene) {
	if err := s.Setup(); err != nil {
		logger.Log.Warn("scene setup reported errors",
			zap.String("scene", s.Name()),
			zap.Error(err))
	}
}

// Quit tears down the scene and closes the window.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.shutdown()
}

// shutdown releases the scene's GPU resources while the context is still
// live, then closes the window.
func (e *engine) shutdown() {
	e.shutdownOnce.Do(func() {
		e.running = false
		if e.sc != nil {
			e.sc.Teardown()
		}
		_ = e.window.Close()
		logger.Log.Info("engine stopped")
	})
}

// frame advances one frame: input, tick, camera sync, scene render, present.
// Called by the window's message loop after each event poll.
func (e *engine) frame() {
	now := e.window.Clock()
	dt := float32(now - e.lastClock)
	e.lastClock = now

	e.processMovement(dt)
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.sc != nil {
		e.cam.Sync(e.sc.Shader())
		e.logRenderErr(e.sc.Render(float32(now - e.startClock)))
		e.window.SwapBuffers()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.frameLimit > 0 {
		elapsed := time.Duration((e.window.Clock() - now) * float64(time.Second))
		if remaining := e.frameLimit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// logRenderErr reports a render error once, suppressing identical repeats so
// a persistently missing asset does not flood the log at frame rate.
func (e *engine) logRenderErr(err error) {
	if err == nil {
		e.lastRenderErr = ""
		return
	}
	if err.Error() == e.lastRenderErr {
		return
	}
	e.lastRenderErr = err.Error()
	logger.Log.Warn("scene render reported errors",
		zap.String("scene", e.sc.Name()),
		zap.Error(err))
}

// processMovement applies camera movement for every held movement key against
// this frame's delta.
func (e *engine) processMovement(dt float32) {
	ctrl := e.cam.Controller()
	if ctrl == nil {
		return
	}
	for key, down := range e.keysDown {
		if !down {
			continue
		}
		switch key {
		case common.KeyW:
			ctrl.Move(camera.MoveForward, dt)
		case common.KeyS:
			ctrl.Move(camera.MoveBackward, dt)
		case common.KeyA:
			ctrl.Move(camera.MoveLeft, dt)
		case common.KeyD:
			ctrl.Move(camera.MoveRight, dt)
		case common.KeyQ:
			ctrl.Move(camera.MoveUp, dt)
		case common.KeyE:
			ctrl.Move(camera.MoveDown, dt)
		}
	}
}

func (e *engine) onKeyDown(keyCode uint32) {
	e.keysDown[keyCode] = true
	switch keyCode {
	case common.KeyP:
		e.cam.SetProjection(camera.ProjectionPerspective)
	case common.KeyO:
		e.cam.SetProjection(camera.ProjectionOrthographic)
	}
}

// onMouseMove turns cursor motion into look deltas. The first sample only
// seeds the cursor position, so the view does not jump when the cursor first
// enters the window.
func (e *engine) onMouseMove(x, y float32) {
	if !e.cursorSeen {
		e.lastCursorX, e.lastCursorY = x, y
		e.cursorSeen = true
		return
	}
	dx := x - e.lastCursorX
	dy := e.lastCursorY - y // screen y grows downward
	e.lastCursorX, e.lastCursorY = x, y

	if ctrl := e.cam.Controller(); ctrl != nil {
		ctrl.Look(dx, dy)
	}
}

// EnableProfiler enables frame statistics output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called once per frame.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the frame loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
