package scene_object

import (
	"testing"

	"github.com/Carmen-Shannon/glade/engine/mesh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewSceneObjectDefaults(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindSphere)

	assert.Equal(t, mesh.MeshKindSphere, obj.MeshKind())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Scale())
	assert.Equal(t, mgl32.Vec3{}, obj.RotationDegrees())
	assert.Equal(t, mgl32.Vec3{}, obj.Position())
	assert.False(t, obj.Textured())
	assert.Empty(t, obj.TextureTag())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, obj.Color())
	assert.Equal(t, mgl32.Vec2{1, 1}, obj.UVScale())
	assert.Empty(t, obj.MaterialTag())
	assert.False(t, obj.Spin())
}

func TestAppearanceStatesAreMutuallyExclusive(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindPlane, WithTexture("grass", mgl32.Vec2{2, 2}))
	assert.True(t, obj.Textured())
	assert.Equal(t, "grass", obj.TextureTag())
	assert.Equal(t, mgl32.Vec2{2, 2}, obj.UVScale())

	obj.SetColor(mgl32.Vec4{1, 0, 0, 1})
	assert.False(t, obj.Textured())
	assert.Empty(t, obj.TextureTag())
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, obj.Color())

	obj.SetTexture("water", mgl32.Vec2{1, 4})
	assert.True(t, obj.Textured())
	assert.Equal(t, "water", obj.TextureTag())
	assert.Equal(t, mgl32.Vec2{1, 4}, obj.UVScale())

	// Flip back and forth; both states must never hold together.
	for i := 0; i < 3; i++ {
		obj.SetColor(mgl32.Vec4{0, 0, 1, 1})
		assert.False(t, obj.Textured())
		obj.SetTexture("bark", mgl32.Vec2{1, 1})
		assert.True(t, obj.Textured())
	}
}

func TestBuilderLastAppearanceOptionWins(t *testing.T) {
	colored := NewSceneObject(mesh.MeshKindCone,
		WithTexture("leaves", mgl32.Vec2{1, 1}),
		WithColor(mgl32.Vec4{0, 1, 0, 1}),
	)
	assert.False(t, colored.Textured())
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, colored.Color())

	textured := NewSceneObject(mesh.MeshKindCone,
		WithColor(mgl32.Vec4{0, 1, 0, 1}),
		WithTexture("leaves", mgl32.Vec2{1, 1}),
	)
	assert.True(t, textured.Textured())
	assert.Equal(t, "leaves", textured.TextureTag())
}

func TestModelMatrixStaticTransform(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindCylinder,
		WithScale(mgl32.Vec3{2, 3, 2}),
		WithRotationDegrees(mgl32.Vec3{0, 0, 90}),
		WithPosition(mgl32.Vec3{5, 0, -5}),
	)

	m := obj.ModelMatrix(123) // elapsed time must not move a static object

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 5, origin.X(), 1e-5)
	assert.InDelta(t, 0, origin.Y(), 1e-5)
	assert.InDelta(t, -5, origin.Z(), 1e-5)

	// The X axis is scaled by 2, then rotated onto +Y.
	axis := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 5, axis.X(), 1e-5)
	assert.InDelta(t, 2, axis.Y(), 1e-5)
	assert.InDelta(t, -5, axis.Z(), 1e-5)
}

func TestModelMatrixSpinTracksElapsedTime(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindCylinder,
		WithRotationDegrees(mgl32.Vec3{45, 45, 45}), // replaced wholesale by the spin
		WithPosition(mgl32.Vec3{0, 2, 0}),
		WithSpin(true),
	)

	// With no elapsed time a spinning object holds its rest pose.
	m := obj.ModelMatrix(0)
	point := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, point.X(), 1e-5)
	assert.InDelta(t, 2, point.Y(), 1e-5)
	assert.InDelta(t, 0, point.Z(), 1e-5)

	// A quarter turn of elapsed rotation carries +X onto -Z.
	m = obj.ModelMatrix(mgl32.DegToRad(90))
	point = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, point.X(), 1e-5)
	assert.InDelta(t, 2, point.Y(), 1e-5)
	assert.InDelta(t, -1, point.Z(), 1e-5)
}

func TestModelMatrixSpinAppliesScale(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindCone,
		WithScale(mgl32.Vec3{2, 1, 2}),
		WithSpin(true),
	)

	m := obj.ModelMatrix(mgl32.DegToRad(90))
	point := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, point.X(), 1e-5)
	assert.InDelta(t, -2, point.Z(), 1e-5)
}

func TestBuilderOptionsSetEveryField(t *testing.T) {
	obj := NewSceneObject(mesh.MeshKindPlane,
		WithScale(mgl32.Vec3{4, 1, 4}),
		WithRotationDegrees(mgl32.Vec3{0, 90, 0}),
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithMaterialTag("matte"),
		WithSpin(true),
	)

	assert.Equal(t, mgl32.Vec3{4, 1, 4}, obj.Scale())
	assert.Equal(t, mgl32.Vec3{0, 90, 0}, obj.RotationDegrees())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Position())
	assert.Equal(t, "matte", obj.MaterialTag())
	assert.True(t, obj.Spin())
}
