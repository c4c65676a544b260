package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/glade/common"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glRendererBackend is the OpenGL 4.1 core implementation of the RendererBackend interface.
type glRendererBackend struct{}

var _ RendererBackend = &glRendererBackend{}

// newGLRendererBackend creates a new OpenGL backend.
//
// Returns:
//   - *glRendererBackend: the backend instance
func newGLRendererBackend() *glRendererBackend {
	return &glRendererBackend{}
}

func (b *glRendererBackend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}
	return nil
}

func (b *glRendererBackend) SetClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *glRendererBackend) ClearFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *glRendererBackend) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (b *glRendererBackend) DisableDepthTest() {
	gl.Disable(gl.DEPTH_TEST)
}

func (b *glRendererBackend) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (b *glRendererBackend) DisableBlending() {
	gl.Disable(gl.BLEND)
}

func (b *glRendererBackend) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (b *glRendererBackend) ActiveTextureUnit(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (b *glRendererBackend) BindTexture2D(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (b *glRendererBackend) CreateTexture2D(staging *common.TextureStagingData) (uint32, error) {
	if staging == nil || len(staging.Pixels) == 0 {
		return 0, fmt.Errorf("texture staging data is empty")
	}
	if expected := int(staging.Width) * int(staging.Height) * 4; len(staging.Pixels) != expected {
		return 0, fmt.Errorf("texture staging data is %d bytes, expected %d for %dx%d RGBA",
			len(staging.Pixels), expected, staging.Width, staging.Height)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, staging.Width, staging.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(staging.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return texture, nil
}

func (b *glRendererBackend) DeleteTexture2D(texture uint32) {
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
}

func (b *glRendererBackend) CreateMeshBuffers(vertices []float32, indices []uint32) (MeshBuffers, error) {
	if len(vertices) == 0 || len(vertices)%VertexFloats != 0 {
		return MeshBuffers{}, fmt.Errorf("vertex data length %d is not a multiple of the %d-float vertex layout", len(vertices), VertexFloats)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return MeshBuffers{}, fmt.Errorf("index data length %d is not a multiple of 3", len(indices))
	}

	var buffers MeshBuffers
	gl.GenVertexArrays(1, &buffers.VAO)
	gl.BindVertexArray(buffers.VAO)

	gl.GenBuffers(1, &buffers.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffers.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buffers.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, VertexFloats*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, VertexFloats*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, VertexFloats*4, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	buffers.IndexCount = int32(len(indices))
	return buffers, nil
}

func (b *glRendererBackend) DeleteMeshBuffers(buffers MeshBuffers) {
	if buffers.EBO != 0 {
		gl.DeleteBuffers(1, &buffers.EBO)
	}
	if buffers.VBO != 0 {
		gl.DeleteBuffers(1, &buffers.VBO)
	}
	if buffers.VAO != 0 {
		gl.DeleteVertexArrays(1, &buffers.VAO)
	}
}

func (b *glRendererBackend) DrawMesh(buffers MeshBuffers) {
	gl.BindVertexArray(buffers.VAO)
	gl.DrawElements(gl.TRIANGLES, buffers.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
