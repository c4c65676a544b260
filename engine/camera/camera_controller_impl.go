package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Supports mouse look and keyboard movement simultaneously. Look methods
// modify the Euler angles and recompute the orientation vectors; move methods
// translate the position along the current local axes.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	worldUp  mgl32.Vec3

	// Orientation vectors (computed from yaw and pitch)
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Orientation constraints
	minPitch float32
	maxPitch float32
	minZoom  float32
	maxZoom  float32

	zoom             float32
	movementSpeed    float32
	mouseSensitivity float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with sensible defaults:
// positioned at (0, 5, 12) looking down the negative Z axis with a 45 degree
// field of view.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 5, 12},
		worldUp:  mgl32.Vec3{0, 1, 0},

		yaw:   -90,
		pitch: 0,

		minPitch: -89,
		maxPitch: 89,
		minZoom:  1,
		maxZoom:  45,

		zoom:             45,
		movementSpeed:    2.5,
		mouseSensitivity: 0.1,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clampOrientation()
	cc.updateVectors()
	return cc
}

// updateVectors recomputes the front, right, and up vectors from the Euler
// angles. Must be called whenever yaw or pitch changes.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateVectors() {
	yawRad := mgl32.DegToRad(cc.yaw)
	pitchRad := mgl32.DegToRad(cc.pitch)

	cc.front = mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}.Normalize()
	cc.right = cc.front.Cross(cc.worldUp).Normalize()
	cc.up = cc.right.Cross(cc.front).Normalize()
}

// clampOrientation pulls pitch and zoom back inside their bounds.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampOrientation() {
	if cc.pitch < cc.minPitch {
		cc.pitch = cc.minPitch
	}
	if cc.pitch > cc.maxPitch {
		cc.pitch = cc.maxPitch
	}
	if cc.zoom < cc.minZoom {
		cc.zoom = cc.minZoom
	}
	if cc.zoom > cc.maxZoom {
		cc.zoom = cc.maxZoom
	}
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(pos mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = pos
}

func (cc *cameraControllerImpl) Front() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.front
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.right
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.up
}

// --- lookCameraController implementation ---

func (cc *cameraControllerImpl) Look(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch += dy * cc.mouseSensitivity
	cc.clampOrientation()
	cc.updateVectors()
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = yaw
	cc.updateVectors()
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) SetPitch(pitch float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = pitch
	cc.clampOrientation()
	cc.updateVectors()
}

func (cc *cameraControllerImpl) Zoom() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoom
}

func (cc *cameraControllerImpl) SetZoom(zoom float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoom = zoom
	cc.clampOrientation()
}

func (cc *cameraControllerImpl) AdjustZoom(offset float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoom -= offset
	cc.clampOrientation()
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

// --- moveCameraController implementation ---

func (cc *cameraControllerImpl) Move(direction MoveDirection, deltaSeconds float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	velocity := cc.movementSpeed * deltaSeconds
	switch direction {
	case MoveForward:
		cc.position = cc.position.Add(cc.front.Mul(velocity))
	case MoveBackward:
		cc.position = cc.position.Sub(cc.front.Mul(velocity))
	case MoveLeft:
		cc.position = cc.position.Sub(cc.right.Mul(velocity))
	case MoveRight:
		cc.position = cc.position.Add(cc.right.Mul(velocity))
	case MoveUp:
		cc.position = cc.position.Add(cc.up.Mul(velocity))
	case MoveDown:
		cc.position = cc.position.Sub(cc.up.Mul(velocity))
	}
}

func (cc *cameraControllerImpl) MovementSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.movementSpeed
}

func (cc *cameraControllerImpl) SetMovementSpeed(speed float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.movementSpeed = speed
}
