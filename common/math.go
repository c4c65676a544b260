package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildModelMatrix constructs a 4x4 model matrix from scale, Euler rotation, and position.
// The composition is Translate * RotateX * RotateY * RotateZ * Scale, applied
// right-to-left: an object is scaled first, then rotated about X, Y, and Z in that
// order as separate composed rotations, then translated. Angles are degrees and are
// converted to radians here. Matrices are column-major (OpenGL convention).
//
// Parameters:
//   - scale: per-axis scale factors
//   - rotationDegrees: Euler angles in degrees, applied X then Y then Z
//   - position: world-space translation
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func BuildModelMatrix(scale, rotationDegrees, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDegrees.X()))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDegrees.Y()))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDegrees.Z()))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// BuildSpinModelMatrix constructs a model matrix for an object spinning about the
// world Y axis. The spin replaces the static Euler rotation entirely: the
// composition is Translate * RotateY(spinRadians) * Scale. The angle is in radians;
// callers typically pass elapsed seconds directly.
//
// Parameters:
//   - scale: per-axis scale factors
//   - spinRadians: rotation about Y in radians
//   - position: world-space translation
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func BuildSpinModelMatrix(scale mgl32.Vec3, spinRadians float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationY := mgl32.HomogRotate3DY(spinRadians)
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return translation.Mul4(rotationY).Mul4(scaling)
}
