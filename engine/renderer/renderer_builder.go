package renderer

import "github.com/go-gl/mathgl/mgl32"

// RenderContextBuilderOption defines a function that modifies the render context
// configuration during construction.
type RenderContextBuilderOption func(*renderContext)

// NewRenderContext creates a new RenderContext for the given backend type.
//
// Parameters:
//   - backendType: the graphics backend to drive
//   - options: optional configuration functions
//
// Returns:
//   - RenderContext: the configured render context
func NewRenderContext(backendType RendererBackendType, options ...RenderContextBuilderOption) RenderContext {
	ctx := &renderContext{
		clearColor:   mgl32.Vec4{0, 0, 0, 1},
		boundTexture: make(map[int32]uint32),
		activeUnit:   -1,
	}

	for _, opt := range options {
		opt(ctx)
	}

	if ctx.backend == nil {
		switch backendType {
		case BackendTypeOpenGL:
			ctx.backend = newGLRendererBackend()
		default:
			panic("unsupported renderer backend type")
		}
	}

	return ctx
}

// WithBackend overrides the graphics backend used by the render context.
//
// Parameters:
//   - backend: the backend implementation to use
//
// Returns:
//   - RenderContextBuilderOption: the configuration function
func WithBackend(backend RendererBackend) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.backend = backend
	}
}

// WithClearColor sets the initial clear color for the render context.
//
// Parameters:
//   - color: the clear color as RGBA in the range [0, 1]
//
// Returns:
//   - RenderContextBuilderOption: the configuration function
func WithClearColor(color mgl32.Vec4) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.clearColor = color
	}
}
