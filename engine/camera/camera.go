package camera

import (
	"sync"

	"github.com/Carmen-Shannon/glade/engine/renderer/shader"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how the camera projects the scene.
type ProjectionMode int

const (
	// ProjectionPerspective projects with the controller's field of view.
	ProjectionPerspective ProjectionMode = iota
	// ProjectionOrthographic projects without perspective foreshortening,
	// sized by the camera's orthographic half extent.
	ProjectionOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	aspect        float32
	near          float32
	far           float32
	projection    ProjectionMode
	orthoHalfSize float32

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds projection settings and computes view/projection matrices
// from an attached CameraController, pushing them to a shader via Sync each
// frame.
type Camera interface {
	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Projection returns the active projection mode.
	//
	// Returns:
	//   - ProjectionMode: the projection mode
	Projection() ProjectionMode

	// ViewMatrix returns the current 4x4 view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current 4x4 projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Controller returns the attached CameraController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update reads position and orientation from the controller and recomputes
	// the matrices. If no controller is attached, this method does nothing.
	Update()

	// Sync recomputes the matrices from the controller and pushes the view,
	// projection, and view position uniforms. The shader is made current
	// first, so the pushes always land on the given program.
	//
	// Parameters:
	//   - sh: the shader to push camera uniforms to
	Sync(sh shader.Shader)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetProjection switches the projection mode and recomputes matrices.
	//
	// Parameters:
	//   - mode: the projection mode
	SetProjection(mode ProjectionMode)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// A controller must be attached via SetController or WithController option
// before position and orientation data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		aspect:           1.0,
		near:             0.1,
		far:              100.0,
		projection:       ProjectionPerspective,
		orthoHalfSize:    10.0,
		viewMatrix:       mgl32.Ident4(),
		projectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.updateMatrices()
	}
	return c
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Projection() ProjectionMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) Sync(sh shader.Shader) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()

	sh.Use()
	sh.SetMat4(shader.UniformView, c.viewMatrix)
	sh.SetMat4(shader.UniformProjection, c.projectionMatrix)
	if c.controller != nil {
		sh.SetVec3(shader.UniformViewPosition, c.controller.Position())
	}
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetProjection(mode ProjectionMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = mode
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

// updateMatrices recalculates the view and projection matrices. It reads
// position and orientation from the attached controller. This is a no-op when
// the controller is nil. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller == nil {
		return
	}

	pos := c.controller.Position()
	c.viewMatrix = mgl32.LookAtV(pos, pos.Add(c.controller.Front()), c.controller.Up())

	switch c.projection {
	case ProjectionOrthographic:
		h := c.orthoHalfSize
		c.projectionMatrix = mgl32.Ortho(-h*c.aspect, h*c.aspect, -h, h, c.near, c.far)
	default:
		c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.controller.Zoom()), c.aspect, c.near, c.far)
	}
}
