package camera

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithProjection sets the initial projection mode.
//
// Parameters:
//   - mode: the projection mode
//
// Returns:
//   - CameraBuilderOption: functional option to set the projection mode
func WithProjection(mode ProjectionMode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = mode
	}
}

// WithOrthoHalfSize sets the vertical half extent of the orthographic view
// volume in world units. The horizontal extent follows the aspect ratio.
//
// Parameters:
//   - halfSize: vertical half extent in world units
//
// Returns:
//   - CameraBuilderOption: functional option to set the orthographic extent
func WithOrthoHalfSize(halfSize float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthoHalfSize = halfSize
	}
}

// WithController attaches a controller to the camera.
// After all options are applied, the camera recomputes its matrices from the
// controller's state.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
