package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/glade/common"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext owns the global render state for a frame and acts as the factory
// for GPU resources. Registries and mesh providers create their textures and
// buffers through the context so every GPU handle traces back to one place.
//
// The context caches texture bindings per unit and skips binds that would not
// change state, so callers can re-bind freely each frame.
type RenderContext interface {
	// Init initializes the underlying graphics backend. It must be called once,
	// after the window's OpenGL context is current and before any resource is
	// created.
	//
	// Returns:
	//   - error: an error if the backend could not be initialized
	Init() error

	// SetClearColor sets the color used to fill the frame on BeginFrame.
	//
	// Parameters:
	//   - color: the clear color as RGBA in the range [0, 1]
	SetClearColor(color mgl32.Vec4)

	// BeginFrame prepares the frame for drawing: depth testing is enabled and the
	// color and depth buffers are cleared.
	BeginFrame()

	// EnableBlending turns on alpha blending for subsequent draws.
	EnableBlending()

	// DisableBlending turns off alpha blending.
	DisableBlending()

	// Resize updates the viewport to the given framebuffer dimensions.
	//
	// Parameters:
	//   - width: the framebuffer width in pixels
	//   - height: the framebuffer height in pixels
	Resize(width, height int)

	// BindTextureUnit binds a texture to the given texture unit. Binding the same
	// texture to the same unit twice is a no-op.
	//
	// Parameters:
	//   - unit: the texture unit index, starting at 0
	//   - texture: the texture handle to bind
	BindTextureUnit(unit int32, texture uint32)

	// InvalidateState drops the cached binding state. Call it when GL state was
	// changed outside of the context.
	InvalidateState()

	// CreateTexture2D uploads staged RGBA pixel data and returns the texture handle.
	//
	// Parameters:
	//   - staging: the decoded pixel data to upload
	//
	// Returns:
	//   - uint32: the texture handle
	//   - error: an error if the staging data is invalid or the upload failed
	CreateTexture2D(staging *common.TextureStagingData) (uint32, error)

	// DeleteTexture2D releases a texture created by CreateTexture2D.
	//
	// Parameters:
	//   - texture: the texture handle to release
	DeleteTexture2D(texture uint32)

	// CreateMeshBuffers uploads interleaved vertex and index data and returns the
	// buffer handles. Vertices are 8 floats each: position, normal, texture
	// coordinate.
	//
	// Parameters:
	//   - vertices: the interleaved vertex data
	//   - indices: the triangle index data
	//
	// Returns:
	//   - MeshBuffers: the uploaded buffer handles
	//   - error: an error if the data does not match the vertex layout
	CreateMeshBuffers(vertices []float32, indices []uint32) (MeshBuffers, error)

	// DeleteMeshBuffers releases buffers created by CreateMeshBuffers.
	//
	// Parameters:
	//   - buffers: the buffer handles to release
	DeleteMeshBuffers(buffers MeshBuffers)

	// DrawMesh issues an indexed draw of the given buffers.
	//
	// Parameters:
	//   - buffers: the buffer handles to draw
	DrawMesh(buffers MeshBuffers)
}

type renderContext struct {
	backend      RendererBackend
	clearColor   mgl32.Vec4
	boundTexture map[int32]uint32
	activeUnit   int32
}

var _ RenderContext = &renderContext{}

func (r *renderContext) Init() error {
	if err := r.backend.Init(); err != nil {
		return fmt.Errorf("render context init: %w", err)
	}
	r.backend.SetClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), r.clearColor.W())
	return nil
}

func (r *renderContext) SetClearColor(color mgl32.Vec4) {
	r.clearColor = color
	r.backend.SetClearColor(color.X(), color.Y(), color.Z(), color.W())
}

func (r *renderContext) BeginFrame() {
	r.backend.EnableDepthTest()
	r.backend.ClearFrame()
}

func (r *renderContext) EnableBlending() {
	r.backend.EnableBlending()
}

func (r *renderContext) DisableBlending() {
	r.backend.DisableBlending()
}

func (r *renderContext) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.Viewport(int32(width), int32(height))
}

func (r *renderContext) BindTextureUnit(unit int32, texture uint32) {
	if bound, ok := r.boundTexture[unit]; ok && bound == texture {
		return
	}
	if r.activeUnit != unit {
		r.backend.ActiveTextureUnit(unit)
		r.activeUnit = unit
	}
	r.backend.BindTexture2D(texture)
	r.boundTexture[unit] = texture
}

func (r *renderContext) InvalidateState() {
	r.boundTexture = make(map[int32]uint32)
	r.activeUnit = -1
}

func (r *renderContext) CreateTexture2D(staging *common.TextureStagingData) (uint32, error) {
	texture, err := r.backend.CreateTexture2D(staging)
	if err != nil {
		return 0, err
	}
	// Uploading binds the new texture behind the context's back.
	r.InvalidateState()
	return texture, nil
}

func (r *renderContext) DeleteTexture2D(texture uint32) {
	r.backend.DeleteTexture2D(texture)
	for unit, bound := range r.boundTexture {
		if bound == texture {
			delete(r.boundTexture, unit)
		}
	}
}

func (r *renderContext) CreateMeshBuffers(vertices []float32, indices []uint32) (MeshBuffers, error) {
	return r.backend.CreateMeshBuffers(vertices, indices)
}

func (r *renderContext) DeleteMeshBuffers(buffers MeshBuffers) {
	r.backend.DeleteMeshBuffers(buffers)
}

func (r *renderContext) DrawMesh(buffers MeshBuffers) {
	r.backend.DrawMesh(buffers)
}
