package camera

import (
	"testing"

	"github.com/Carmen-Shannon/glade/engine/renderer/shader"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingShader captures uniform writes so Sync can be verified without a
// compiled program.
type recordingShader struct {
	writes []uniformWrite
	used   int
}

type uniformWrite struct {
	name  string
	value any
}

var _ shader.Shader = &recordingShader{}

func (r *recordingShader) Key() string                           { return "recording" }
func (r *recordingShader) Compile() error                        { return nil }
func (r *recordingShader) Use()                                  { r.used++ }
func (r *recordingShader) Program() uint32                       { return 0 }
func (r *recordingShader) SetMat4(name string, value mgl32.Mat4) { r.record(name, value) }
func (r *recordingShader) SetVec2(name string, value mgl32.Vec2) { r.record(name, value) }
func (r *recordingShader) SetVec3(name string, value mgl32.Vec3) { r.record(name, value) }
func (r *recordingShader) SetVec4(name string, value mgl32.Vec4) { r.record(name, value) }
func (r *recordingShader) SetFloat(name string, value float32)   { r.record(name, value) }
func (r *recordingShader) SetInt(name string, value int32)       { r.record(name, value) }
func (r *recordingShader) SetBool(name string, value bool)       { r.record(name, value) }
func (r *recordingShader) SetSampler2D(name string, slot int32)  { r.record(name, slot) }
func (r *recordingShader) Destroy()                              {}

func (r *recordingShader) record(name string, value any) {
	r.writes = append(r.writes, uniformWrite{name: name, value: value})
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.Equal(t, float32(1), cam.Aspect())
	assert.InDelta(t, 0.1, cam.Near(), 1e-6)
	assert.Equal(t, float32(100), cam.Far())
	assert.Equal(t, ProjectionPerspective, cam.Projection())
	assert.Nil(t, cam.Controller())

	// Without a controller the matrices stay at identity.
	assert.Equal(t, mgl32.Ident4(), cam.ViewMatrix())
	assert.Equal(t, mgl32.Ident4(), cam.ProjectionMatrix())
}

func TestViewMatrixFollowsController(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl))

	pos := ctrl.Position()
	want := mgl32.LookAtV(pos, pos.Add(ctrl.Front()), ctrl.Up())
	assert.Equal(t, want, cam.ViewMatrix())

	ctrl.SetPosition(mgl32.Vec3{3, 3, 3})
	cam.Update()

	pos = ctrl.Position()
	want = mgl32.LookAtV(pos, pos.Add(ctrl.Front()), ctrl.Up())
	assert.Equal(t, want, cam.ViewMatrix())
}

func TestPerspectiveProjectionUsesControllerZoom(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(16.0/9.0), WithNear(0.5), WithFar(200))

	want := mgl32.Perspective(mgl32.DegToRad(ctrl.Zoom()), 16.0/9.0, 0.5, 200)
	assert.Equal(t, want, cam.ProjectionMatrix())
}

func TestZoomReshapesProjection(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl))

	ctrl.AdjustZoom(20) // field of view narrows from 45 to 25 degrees
	cam.Update()

	want := mgl32.Perspective(mgl32.DegToRad(25), 1, cam.Near(), cam.Far())
	assert.Equal(t, want, cam.ProjectionMatrix())
}

func TestOrthographicProjectionScalesWithAspect(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(2), WithOrthoHalfSize(10))

	cam.SetProjection(ProjectionOrthographic)
	assert.Equal(t, ProjectionOrthographic, cam.Projection())

	want := mgl32.Ortho(-20, 20, -10, 10, cam.Near(), cam.Far())
	assert.Equal(t, want, cam.ProjectionMatrix())

	// Switching back recomputes the perspective matrix.
	cam.SetProjection(ProjectionPerspective)
	wantPersp := mgl32.Perspective(mgl32.DegToRad(ctrl.Zoom()), 2, cam.Near(), cam.Far())
	assert.Equal(t, wantPersp, cam.ProjectionMatrix())
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(1))

	before := cam.ProjectionMatrix()
	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	assert.NotEqual(t, before, after)
	assert.Equal(t, float32(2), cam.Aspect())
}

func TestSyncPushesCameraUniforms(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl))

	sh := &recordingShader{}
	cam.Sync(sh)

	assert.Equal(t, 1, sh.used)
	require.Len(t, sh.writes, 3)
	assert.Equal(t, shader.UniformView, sh.writes[0].name)
	assert.Equal(t, cam.ViewMatrix(), sh.writes[0].value)
	assert.Equal(t, shader.UniformProjection, sh.writes[1].name)
	assert.Equal(t, cam.ProjectionMatrix(), sh.writes[1].value)
	assert.Equal(t, shader.UniformViewPosition, sh.writes[2].name)
	assert.Equal(t, ctrl.Position(), sh.writes[2].value)
}

func TestSyncWithoutControllerSkipsViewPosition(t *testing.T) {
	cam := NewCamera()
	sh := &recordingShader{}
	cam.Sync(sh)

	require.Len(t, sh.writes, 2)
	assert.Equal(t, shader.UniformView, sh.writes[0].name)
	assert.Equal(t, shader.UniformProjection, sh.writes[1].name)
}

func TestSetControllerAttachesLate(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController()

	cam.SetController(ctrl)
	assert.Equal(t, ctrl, cam.Controller())

	cam.Update()
	assert.NotEqual(t, mgl32.Ident4(), cam.ViewMatrix())
}
