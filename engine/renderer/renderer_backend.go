package renderer

import (
	"github.com/Carmen-Shannon/glade/common"
)

// RendererBackendType identifies the GPU backend implementation used by the RenderContext.
type RendererBackendType int

const (
	// BackendTypeOpenGL selects the OpenGL 4.1 core rendering backend.
	BackendTypeOpenGL RendererBackendType = iota
)

// VertexFloats is the number of floats in one interleaved vertex: position (3),
// normal (3), texture coordinate (2).
const VertexFloats = 8

// MeshBuffers holds the GPU object names for one uploaded mesh: a vertex array
// describing the attribute layout, the vertex and index buffers, and the index
// count used for draw calls.
type MeshBuffers struct {
	// VAO is the vertex array object name.
	VAO uint32
	// VBO is the vertex buffer object name.
	VBO uint32
	// EBO is the element (index) buffer object name.
	EBO uint32
	// IndexCount is the number of indices to draw.
	IndexCount int32
}

// RendererBackend is the backend interface for the RenderContext. It wraps the
// raw GPU API calls so higher layers (texture registry, mesh provider, scene
// composer) can run against a recording fake in tests. All methods must be
// called on the thread that owns the GPU context.
type RendererBackend interface {
	// Init initializes the GPU API bindings. Must be called once after the
	// context is current and before any other backend call.
	//
	// Returns:
	//   - error: error if the bindings fail to initialize
	Init() error

	// SetClearColor sets the color buffer clear value.
	//
	// Parameters:
	//   - r, g, b, a: the clear color components in [0, 1]
	SetClearColor(r, g, b, a float32)

	// ClearFrame clears the color and depth buffers.
	ClearFrame()

	// EnableDepthTest enables depth testing with a less-or-equal pass policy.
	EnableDepthTest()

	// DisableDepthTest disables depth testing.
	DisableDepthTest()

	// EnableBlending enables alpha blending with the SRC_ALPHA /
	// ONE_MINUS_SRC_ALPHA factors used for the transparent water plane.
	EnableBlending()

	// DisableBlending disables alpha blending.
	DisableBlending()

	// Viewport sets the rendering viewport to the given pixel dimensions.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Viewport(width, height int32)

	// ActiveTextureUnit selects the active texture unit for subsequent binds.
	//
	// Parameters:
	//   - unit: the zero-based texture unit index
	ActiveTextureUnit(unit int32)

	// BindTexture2D binds a 2D texture to the active texture unit.
	//
	// Parameters:
	//   - texture: the texture object name
	BindTexture2D(texture uint32)

	// CreateTexture2D uploads staged pixel data as a new 2D texture with repeat
	// wrapping, linear min/mag filtering, and generated mipmaps. The currently
	// bound texture on the active unit is left pointing at the new texture.
	//
	// Parameters:
	//   - staging: the decoded RGBA pixel data to upload
	//
	// Returns:
	//   - uint32: the new texture object name
	//   - error: error if the texture could not be created
	CreateTexture2D(staging *common.TextureStagingData) (uint32, error)

	// DeleteTexture2D releases a texture object.
	//
	// Parameters:
	//   - texture: the texture object name to delete
	DeleteTexture2D(texture uint32)

	// CreateMeshBuffers uploads interleaved vertex data (position vec3, normal
	// vec3, texcoord vec2) and triangle indices, returning the GPU object names.
	//
	// Parameters:
	//   - vertices: interleaved vertex attributes, 8 floats per vertex
	//   - indices: triangle indices into the vertex data
	//
	// Returns:
	//   - MeshBuffers: the created GPU object names and index count
	//   - error: error if buffer creation fails
	CreateMeshBuffers(vertices []float32, indices []uint32) (MeshBuffers, error)

	// DeleteMeshBuffers releases the GPU objects of an uploaded mesh.
	//
	// Parameters:
	//   - buffers: the mesh buffers to delete
	DeleteMeshBuffers(buffers MeshBuffers)

	// DrawMesh issues an indexed triangle draw of a previously uploaded mesh.
	//
	// Parameters:
	//   - buffers: the mesh buffers to draw
	DrawMesh(buffers MeshBuffers)
}
