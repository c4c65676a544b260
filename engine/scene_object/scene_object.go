package scene_object

import (
	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

type sceneObject struct {
	meshKind        mesh.MeshKind
	scale           mgl32.Vec3
	rotationDegrees mgl32.Vec3
	position        mgl32.Vec3
	textured        bool
	color           mgl32.Vec4
	textureTag      string
	uvScale         mgl32.Vec2
	materialTag     string
	spin            bool
}

// SceneObject describes one drawable entry in a scene's declarative object
// list: which primitive mesh to draw, its transform, and its appearance.
//
// The appearance is either a flat color or a texture tag, never both at once.
// Setting one clears the other, so the mutual exclusion holds over any sequence
// of mutations. Transform state is pure data; the model matrix is recomputed
// from it on every call rather than cached.
type SceneObject interface {
	// MeshKind returns the primitive mesh this object draws.
	//
	// Returns:
	//   - mesh.MeshKind: the mesh kind
	MeshKind() mesh.MeshKind

	// Scale returns the per-axis scale factors.
	//
	// Returns:
	//   - mgl32.Vec3: the scale as (x, y, z)
	Scale() mgl32.Vec3

	// RotationDegrees returns the static Euler rotation in degrees, applied in
	// X, Y, Z order.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation angles as (x, y, z)
	RotationDegrees() mgl32.Vec3

	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position as (x, y, z)
	Position() mgl32.Vec3

	// Textured reports whether the object samples a texture. When false the
	// object is drawn with its flat color.
	//
	// Returns:
	//   - bool: true when a texture tag is active
	Textured() bool

	// Color returns the flat RGBA color. Meaningful only when Textured is false.
	//
	// Returns:
	//   - mgl32.Vec4: the color as (r, g, b, a)
	Color() mgl32.Vec4

	// TextureTag returns the texture tag to resolve through the texture
	// registry. Meaningful only when Textured is true.
	//
	// Returns:
	//   - string: the texture tag
	TextureTag() string

	// UVScale returns the texture coordinate multiplier used when the object is
	// textured.
	//
	// Returns:
	//   - mgl32.Vec2: the UV scale as (u, v)
	UVScale() mgl32.Vec2

	// MaterialTag returns the material preset tag, or an empty string when the
	// object uses whatever material state is already bound.
	//
	// Returns:
	//   - string: the material tag
	MaterialTag() string

	// Spin reports whether the object replaces its static rotation with a
	// continuous Y-axis rotation driven by elapsed time.
	//
	// Returns:
	//   - bool: true when the object spins
	Spin() bool

	// ModelMatrix composes the object's model transform. Static objects use
	// translate, rotate X then Y then Z, scale; spinning objects use the elapsed
	// time in seconds directly as the Y rotation angle in radians.
	//
	// Parameters:
	//   - elapsedSeconds: seconds since scene start, used only by spinning objects
	//
	// Returns:
	//   - mgl32.Mat4: the composed model matrix
	ModelMatrix(elapsedSeconds float32) mgl32.Mat4

	// SetColor switches the object to a flat color appearance, disabling texture
	// sampling.
	//
	// Parameters:
	//   - color: the color as (r, g, b, a)
	SetColor(color mgl32.Vec4)

	// SetTexture switches the object to a textured appearance, disabling the
	// flat color.
	//
	// Parameters:
	//   - tag: the texture tag to resolve at draw time
	//   - uvScale: the texture coordinate multiplier
	SetTexture(tag string, uvScale mgl32.Vec2)
}

var _ SceneObject = &sceneObject{}

func (s *sceneObject) MeshKind() mesh.MeshKind {
	return s.meshKind
}

func (s *sceneObject) Scale() mgl32.Vec3 {
	return s.scale
}

func (s *sceneObject) RotationDegrees() mgl32.Vec3 {
	return s.rotationDegrees
}

func (s *sceneObject) Position() mgl32.Vec3 {
	return s.position
}

func (s *sceneObject) Textured() bool {
	return s.textured
}

func (s *sceneObject) Color() mgl32.Vec4 {
	return s.color
}

func (s *sceneObject) TextureTag() string {
	return s.textureTag
}

func (s *sceneObject) UVScale() mgl32.Vec2 {
	return s.uvScale
}

func (s *sceneObject) MaterialTag() string {
	return s.materialTag
}

func (s *sceneObject) Spin() bool {
	return s.spin
}

func (s *sceneObject) ModelMatrix(elapsedSeconds float32) mgl32.Mat4 {
	if s.spin {
		return common.BuildSpinModelMatrix(s.scale, elapsedSeconds, s.position)
	}
	return common.BuildModelMatrix(s.scale, s.rotationDegrees, s.position)
}

func (s *sceneObject) SetColor(color mgl32.Vec4) {
	s.color = color
	s.textured = false
	s.textureTag = ""
}

func (s *sceneObject) SetTexture(tag string, uvScale mgl32.Vec2) {
	s.textureTag = tag
	s.uvScale = uvScale
	s.textured = true
}
