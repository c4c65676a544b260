package engine

import (
	"time"

	"github.com/Carmen-Shannon/glade/engine/camera"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/scene"
	"github.com/Carmen-Shannon/glade/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: if true, enables frame statistics output
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets a custom configured window for the engine to use rather
// than allowing the engine to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderContext sets a custom render context rather than allowing the
// engine to create one internally. The engine still initializes it during
// construction.
//
// Parameters:
//   - ctx: the render context to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderContext(ctx renderer.RenderContext) EngineBuilderOption {
	return func(e *engine) {
		e.ctx = ctx
	}
}

// WithCamera sets a custom camera rather than allowing the engine to create
// one internally.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(cam camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.cam = cam
	}
}

// WithScene sets the active scene during engine construction.
//
// Parameters:
//   - s: the scene to activate
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.sc = s
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the frame loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.frameLimit = 0
			return
		}
		e.frameLimit = time.Second / time.Duration(fps)
	}
}
