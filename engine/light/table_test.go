package light

import (
	"testing"

	"github.com/Carmen-Shannon/glade/engine/renderer/shader"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingShader captures uniform writes in call order so tests can assert on
// exactly what a sync pushed.
type recordingShader struct {
	writes []uniformWrite
}

type uniformWrite struct {
	name  string
	value any
}

var _ shader.Shader = &recordingShader{}

func (r *recordingShader) Key() string                            { return "recording" }
func (r *recordingShader) Compile() error                         { return nil }
func (r *recordingShader) Use()                                   {}
func (r *recordingShader) Program() uint32                        { return 0 }
func (r *recordingShader) SetMat4(name string, value mgl32.Mat4)  { r.record(name, value) }
func (r *recordingShader) SetVec2(name string, value mgl32.Vec2)  { r.record(name, value) }
func (r *recordingShader) SetVec3(name string, value mgl32.Vec3)  { r.record(name, value) }
func (r *recordingShader) SetVec4(name string, value mgl32.Vec4)  { r.record(name, value) }
func (r *recordingShader) SetFloat(name string, value float32)    { r.record(name, value) }
func (r *recordingShader) SetInt(name string, value int32)        { r.record(name, value) }
func (r *recordingShader) SetBool(name string, value bool)        { r.record(name, value) }
func (r *recordingShader) SetSampler2D(name string, slot int32)   { r.record(name, slot) }
func (r *recordingShader) Destroy()                               {}

func (r *recordingShader) record(name string, value any) {
	r.writes = append(r.writes, uniformWrite{name: name, value: value})
}

func sunLight() Light {
	return NewLight(
		WithPosition(mgl32.Vec3{-10, 50, -20}),
		WithAmbientColor(mgl32.Vec3{0.3, 0.15, 0}),
		WithDiffuseColor(mgl32.Vec3{1, 0.6, 0}),
		WithSpecularColor(mgl32.Vec3{1, 0.6, 0}),
		WithFocalStrength(0.2),
		WithSpecularIntensity(0.2),
	)
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, mgl32.Vec3{}, l.Position)
	assert.Equal(t, mgl32.Vec3{}, l.AmbientColor)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.DiffuseColor)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.SpecularColor)
	assert.Zero(t, l.FocalStrength)
	assert.Equal(t, float32(1), l.SpecularIntensity)
}

func TestTableSetAndReadBack(t *testing.T) {
	tbl := NewTable()
	want := sunLight()
	require.NoError(t, tbl.Set(2, want))

	got, active := tbl.At(2)
	assert.True(t, active)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, tbl.ActiveCount())
}

func TestTableSetReplacesWholeSlot(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(1, sunLight()))

	replacement := Light{Position: mgl32.Vec3{1, 2, 3}}
	require.NoError(t, tbl.Set(1, replacement))

	got, active := tbl.At(1)
	assert.True(t, active)
	assert.Equal(t, replacement, got) // zero fields overwrite the old values too
}

func TestTableSetOutOfRangeLeavesSlotsUntouched(t *testing.T) {
	tbl := NewTable(WithLights(sunLight(), sunLight(), sunLight(), sunLight()))

	for _, index := range []int{-1, SlotCount, 17} {
		err := tbl.Set(index, Light{Position: mgl32.Vec3{9, 9, 9}})
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
	}

	for i := 0; i < SlotCount; i++ {
		got, active := tbl.At(i)
		assert.True(t, active)
		assert.Equal(t, sunLight(), got)
	}
}

func TestTableAtInvalidIndex(t *testing.T) {
	tbl := NewTable()

	got, active := tbl.At(-1)
	assert.False(t, active)
	assert.Equal(t, Light{}, got)

	got, active = tbl.At(SlotCount)
	assert.False(t, active)
	assert.Equal(t, Light{}, got)
}

func TestTableAtEmptySlot(t *testing.T) {
	tbl := NewTable()
	got, active := tbl.At(0)
	assert.False(t, active)
	assert.Equal(t, Light{}, got)
}

func TestSyncToShaderPushesSixUniforms(t *testing.T) {
	tbl := NewTable()
	l := sunLight()
	require.NoError(t, tbl.Set(0, l))

	sh := &recordingShader{}
	require.NoError(t, tbl.SyncToShader(sh, 0))

	assert.Equal(t, []uniformWrite{
		{"lightSources[0].position", l.Position},
		{"lightSources[0].ambientColor", l.AmbientColor},
		{"lightSources[0].diffuseColor", l.DiffuseColor},
		{"lightSources[0].specularColor", l.SpecularColor},
		{"lightSources[0].focalStrength", l.FocalStrength},
		{"lightSources[0].specularIntensity", l.SpecularIntensity},
	}, sh.writes)
}

func TestSyncToShaderIndexesTheUniformArray(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(3, sunLight()))

	sh := &recordingShader{}
	require.NoError(t, tbl.SyncToShader(sh, 3))

	require.Len(t, sh.writes, 6)
	for _, w := range sh.writes {
		assert.Contains(t, w.name, "lightSources[3].")
	}
}

func TestSyncToShaderOutOfRange(t *testing.T) {
	tbl := NewTable()
	sh := &recordingShader{}

	assert.ErrorIs(t, tbl.SyncToShader(sh, SlotCount), ErrSlotOutOfRange)
	assert.Empty(t, sh.writes)
}

func TestSyncAllPushesActiveSlotsInOrder(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(2, Light{Position: mgl32.Vec3{2, 0, 0}}))
	require.NoError(t, tbl.Set(0, Light{Position: mgl32.Vec3{0, 0, 0}}))

	sh := &recordingShader{}
	tbl.SyncAll(sh)

	// Two active slots, six uniforms each, slot order regardless of Set order.
	require.Len(t, sh.writes, 12)
	assert.Equal(t, "lightSources[0].position", sh.writes[0].name)
	assert.Equal(t, "lightSources[2].position", sh.writes[6].name)
}

func TestSyncAllEmptyTablePushesNothing(t *testing.T) {
	tbl := NewTable()
	sh := &recordingShader{}
	tbl.SyncAll(sh)
	assert.Empty(t, sh.writes)
}

func TestNewTableSeatsLightsFromSlotZero(t *testing.T) {
	a := Light{Position: mgl32.Vec3{1, 0, 0}}
	b := Light{Position: mgl32.Vec3{2, 0, 0}}
	tbl := NewTable(WithLights(a, b))

	assert.Equal(t, 2, tbl.ActiveCount())

	got, active := tbl.At(0)
	assert.True(t, active)
	assert.Equal(t, a, got)

	got, active = tbl.At(1)
	assert.True(t, active)
	assert.Equal(t, b, got)

	_, active = tbl.At(2)
	assert.False(t, active)
}

func TestWithLightsOverCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		WithLights(Light{}, Light{}, Light{}, Light{}, Light{})
	})
}
