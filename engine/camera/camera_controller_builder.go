package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - pos: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(pos mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = pos
	}
}

// WithWorldUp sets the world up vector the orientation vectors are derived
// against.
//
// Parameters:
//   - up: the world up vector
//
// Returns:
//   - CameraControllerOption: functional option to set the world up vector
func WithWorldUp(up mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.worldUp = up
	}
}

// WithYaw sets the initial horizontal view angle.
//
// Parameters:
//   - yaw: horizontal angle in degrees (-90 = -Z axis)
//
// Returns:
//   - CameraControllerOption: functional option to set the yaw
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
	}
}

// WithPitch sets the initial vertical view angle.
//
// Parameters:
//   - pitch: vertical angle in degrees (0 = horizontal)
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = pitch
	}
}

// WithPitchBounds sets the minimum and maximum pitch angles.
//
// Parameters:
//   - min: minimum vertical angle in degrees (prevents looking past straight down)
//   - max: maximum vertical angle in degrees (prevents flipping over)
//
// Returns:
//   - CameraControllerOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minPitch = min
		cc.maxPitch = max
	}
}

// WithZoom sets the initial perspective field of view.
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom
func WithZoom(zoom float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoom = zoom
	}
}

// WithZoomBounds sets the minimum and maximum field of view.
//
// Parameters:
//   - min: narrowest field of view in degrees
//   - max: widest field of view in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set zoom bounds
func WithZoomBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minZoom = min
		cc.maxZoom = max
	}
}

// WithMovementSpeed sets the movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: functional option to set movement speed
func WithMovementSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse look sensitivity.
//
// Parameters:
//   - sensitivity: multiplier for mouse movement
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
