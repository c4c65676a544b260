package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const matTol = 1e-5

// transformPoint applies a model matrix to a point (w = 1).
func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	out := m.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1})
	return mgl32.Vec3{out.X(), out.Y(), out.Z()}
}

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), matTol)
	assert.InDelta(t, want.Y(), got.Y(), matTol)
	assert.InDelta(t, want.Z(), got.Z(), matTol)
}

func TestBuildModelMatrixMovesOriginToPosition(t *testing.T) {
	tests := []struct {
		scale    mgl32.Vec3
		rotation mgl32.Vec3
		position mgl32.Vec3
	}{
		{mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{2, 3, 4}, mgl32.Vec3{45, 90, 135}, mgl32.Vec3{10, -1, 5}},
		{mgl32.Vec3{25, 5, 10}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{0, 9, -36}},
		{mgl32.Vec3{0.5, 3, 0.5}, mgl32.Vec3{0, 180, 0}, mgl32.Vec3{-20, -1, -12}},
	}

	for _, tt := range tests {
		m := BuildModelMatrix(tt.scale, tt.rotation, tt.position)
		assertVec3InDelta(t, tt.position, transformPoint(m, mgl32.Vec3{}))
	}
}

func TestBuildModelMatrixScalesPerAxis(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{2, 3, 4}, mgl32.Vec3{}, mgl32.Vec3{5, 6, 7})
	assertVec3InDelta(t, mgl32.Vec3{7, 9, 11}, transformPoint(m, mgl32.Vec3{1, 1, 1}))
}

func TestBuildModelMatrixScalesBeforeRotating(t *testing.T) {
	// Unit X stretched to length 2 and then rotated a quarter turn about Z must
	// land on +Y with its full length. Rotating first would leave length 1.
	m := BuildModelMatrix(mgl32.Vec3{2, 1, 1}, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{})
	assertVec3InDelta(t, mgl32.Vec3{0, 2, 0}, transformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestBuildModelMatrixRotationOrder(t *testing.T) {
	// With all three angles at 90 degrees a point sees Z, then Y, then X:
	// (1,0,0) -> (0,1,0) -> (0,1,0) -> (0,0,1). The reversed composition would
	// land on (0,0,-1), so this vector pins the order down.
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{90, 90, 90}, mgl32.Vec3{})
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, transformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestBuildModelMatrixAnglesAreDegrees(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 360, 0}, mgl32.Vec3{})
	assertVec3InDelta(t, mgl32.Vec3{1, 2, 3}, transformPoint(m, mgl32.Vec3{1, 2, 3}))
}

func TestBuildSpinModelMatrixRotatesAboutY(t *testing.T) {
	// The spin angle is radians: a quarter turn carries +X onto -Z.
	m := BuildSpinModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.DegToRad(90), mgl32.Vec3{})
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, transformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestBuildSpinModelMatrixScalesBeforeSpinning(t *testing.T) {
	m := BuildSpinModelMatrix(mgl32.Vec3{2, 1, 1}, mgl32.DegToRad(90), mgl32.Vec3{1, 1, 1})
	assertVec3InDelta(t, mgl32.Vec3{1, 1, -1}, transformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestBuildSpinModelMatrixZeroAngle(t *testing.T) {
	m := BuildSpinModelMatrix(mgl32.Vec3{3, 1, 1}, 0, mgl32.Vec3{0, 2, 0})
	assertVec3InDelta(t, mgl32.Vec3{3, 3, 1}, transformPoint(m, mgl32.Vec3{1, 1, 1}))
}
