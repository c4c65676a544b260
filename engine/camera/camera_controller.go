package camera

import "github.com/go-gl/mathgl/mgl32"

// MoveDirection identifies a movement axis for CameraController.Move, relative
// to the controller's current orientation.
type MoveDirection int

const (
	// MoveForward moves along the front vector.
	MoveForward MoveDirection = iota
	// MoveBackward moves against the front vector.
	MoveBackward
	// MoveLeft moves against the right vector.
	MoveLeft
	// MoveRight moves along the right vector.
	MoveRight
	// MoveUp moves along the up vector.
	MoveUp
	// MoveDown moves against the up vector.
	MoveDown
)

// CameraController defines the union interface for camera control systems.
// Controllers own positional and orientation state; Camera reads from the
// controller and computes view/projection matrices. Embeds both
// lookCameraController and moveCameraController, enabling mouse look and
// keyboard movement to work simultaneously from a single controller instance.
type CameraController interface {
	lookCameraController
	moveCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - pos: world-space coordinates
	SetPosition(pos mgl32.Vec3)

	// Front returns the normalized view direction derived from yaw and pitch.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Right returns the normalized right vector.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// Up returns the normalized up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3
}

// lookCameraController defines orientation control methods. Yaw and pitch are
// Euler angles in degrees; pitch is clamped to its bounds so the view cannot
// flip over the vertical. Zoom is the perspective field of view in degrees,
// narrowed by scroll input.
type lookCameraController interface {
	// Look turns the view by the given mouse deltas scaled by the mouse
	// sensitivity. Positive dx turns right, positive dy tilts up.
	//
	// Parameters:
	//   - dx: horizontal mouse delta in screen units
	//   - dy: vertical mouse delta in screen units, up positive
	Look(dx, dy float32)

	// Yaw returns the horizontal view angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// SetYaw sets the horizontal view angle directly and recomputes the
	// orientation vectors.
	//
	// Parameters:
	//   - yaw: new yaw in degrees
	SetYaw(yaw float32)

	// Pitch returns the vertical view angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetPitch sets the vertical view angle, clamped to the pitch bounds, and
	// recomputes the orientation vectors.
	//
	// Parameters:
	//   - pitch: new pitch in degrees
	SetPitch(pitch float32)

	// Zoom returns the perspective field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Zoom() float32

	// SetZoom sets the field of view directly, clamped to the zoom bounds.
	//
	// Parameters:
	//   - zoom: new field of view in degrees
	SetZoom(zoom float32)

	// AdjustZoom narrows the field of view by the given scroll offset, clamped
	// to the zoom bounds. Positive offsets zoom in.
	//
	// Parameters:
	//   - offset: scroll amount
	AdjustZoom(offset float32)

	// MouseSensitivity returns the mouse look sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32
}

// moveCameraController defines translation control methods. Movement follows
// the controller's local axes, so forward tracks wherever the view points.
type moveCameraController interface {
	// Move translates the camera along one of its local axes by the movement
	// speed scaled with the frame delta.
	//
	// Parameters:
	//   - direction: the axis and sign to move along
	//   - deltaSeconds: seconds elapsed since the previous frame
	Move(direction MoveDirection, deltaSeconds float32)

	// MovementSpeed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// SetMovementSpeed sets the movement speed in world units per second.
	//
	// Parameters:
	//   - speed: new movement speed
	SetMovementSpeed(speed float32)
}
