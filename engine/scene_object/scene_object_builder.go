package scene_object

import (
	"github.com/Carmen-Shannon/glade/engine/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneObjectBuilderOption defines a function that modifies a scene object
// during construction.
type SceneObjectBuilderOption func(*sceneObject)

// NewSceneObject creates a SceneObject drawing the given mesh kind. Without
// options the object sits at the origin at unit scale with a flat white
// appearance.
//
// Parameters:
//   - kind: the primitive mesh to draw
//   - options: optional configuration functions
//
// Returns:
//   - SceneObject: the configured scene object
func NewSceneObject(kind mesh.MeshKind, options ...SceneObjectBuilderOption) SceneObject {
	obj := &sceneObject{
		meshKind: kind,
		scale:    mgl32.Vec3{1, 1, 1},
		color:    mgl32.Vec4{1, 1, 1, 1},
		uvScale:  mgl32.Vec2{1, 1},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

// WithScale sets the per-axis scale factors.
//
// Parameters:
//   - scale: the scale as (x, y, z)
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithScale(scale mgl32.Vec3) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.scale = scale
	}
}

// WithRotationDegrees sets the static Euler rotation in degrees, applied in
// X, Y, Z order.
//
// Parameters:
//   - rotation: the rotation angles as (x, y, z)
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithRotationDegrees(rotation mgl32.Vec3) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.rotationDegrees = rotation
	}
}

// WithPosition sets the world-space position.
//
// Parameters:
//   - position: the position as (x, y, z)
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithPosition(position mgl32.Vec3) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.position = position
	}
}

// WithColor gives the object a flat color appearance, disabling texture
// sampling.
//
// Parameters:
//   - color: the color as (r, g, b, a)
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithColor(color mgl32.Vec4) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.SetColor(color)
	}
}

// WithTexture gives the object a textured appearance, disabling the flat
// color.
//
// Parameters:
//   - tag: the texture tag to resolve at draw time
//   - uvScale: the texture coordinate multiplier
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithTexture(tag string, uvScale mgl32.Vec2) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.SetTexture(tag, uvScale)
	}
}

// WithMaterialTag sets the material preset the object is shaded with.
//
// Parameters:
//   - tag: the material tag to resolve at draw time
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithMaterialTag(tag string) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.materialTag = tag
	}
}

// WithSpin sets whether the object continuously rotates around the Y axis
// using elapsed time as the rotation angle.
//
// Parameters:
//   - spin: true to spin
//
// Returns:
//   - SceneObjectBuilderOption: the configuration function
func WithSpin(spin bool) SceneObjectBuilderOption {
	return func(obj *sceneObject) {
		obj.spin = spin
	}
}
