package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/glade/engine/mesh"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/renderer/shader"
	"github.com/Carmen-Shannon/glade/engine/renderer/texture"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOutdoorFixture(t *testing.T) *sceneFixture {
	t.Helper()
	backend := &sceneBackend{}
	ctx := renderer.NewRenderContext(renderer.BackendTypeOpenGL, renderer.WithBackend(backend))
	decoder := &sceneDecoder{}
	sh := &recordingShader{}

	sc := NewOutdoorScene(ctx, sh, "assets",
		WithTextureRegistry(texture.NewRegistry(ctx, texture.WithLoader(decoder))))
	return &sceneFixture{scene: sc, sh: sh, backend: backend, decoder: decoder}
}

func TestOutdoorSceneComposition(t *testing.T) {
	f := newOutdoorFixture(t)

	objects := f.scene.Objects()
	require.Len(t, objects, 57)

	counts := map[mesh.MeshKind]int{}
	spinning := 0
	for _, obj := range objects {
		counts[obj.MeshKind()]++
		if obj.Spin() {
			spinning++
		}
	}

	assert.Equal(t, 3, counts[mesh.MeshKindPlane])     // grass, water, sky
	assert.Equal(t, 3, counts[mesh.MeshKindSphere])    // suns
	assert.Equal(t, 24, counts[mesh.MeshKindCylinder]) // tree trunks
	assert.Equal(t, 27, counts[mesh.MeshKindCone])     // mountains and canopies
	assert.Equal(t, 48, spinning)                      // every tree part spins
}

func TestOutdoorSceneDrawOrder(t *testing.T) {
	f := newOutdoorFixture(t)
	objects := f.scene.Objects()

	assert.Equal(t, "grass", objects[0].TextureTag()) // ground plane first
	assert.Equal(t, "water", objects[1].TextureTag())

	// The sky backdrop draws last, tilted upright behind the scene.
	sky := objects[len(objects)-1]
	assert.Equal(t, mesh.MeshKindPlane, sky.MeshKind())
	assert.Equal(t, "sky", sky.TextureTag())
	assert.Equal(t, mgl32.Vec3{90, 0, 0}, sky.RotationDegrees())
	assert.Equal(t, mgl32.Vec3{0, 9, -36}, sky.Position())
}

func TestOutdoorSceneTreesPairTrunkAndCanopy(t *testing.T) {
	f := newOutdoorFixture(t)

	trunks := 0
	canopies := 0
	for _, obj := range f.scene.Objects() {
		switch obj.TextureTag() {
		case "bark":
			trunks++
			assert.Equal(t, mesh.MeshKindCylinder, obj.MeshKind())
			assert.True(t, obj.Spin())
		case "leaves":
			canopies++
			assert.Equal(t, mesh.MeshKindCone, obj.MeshKind())
			assert.True(t, obj.Spin())
		}
	}
	assert.Equal(t, 24, trunks)
	assert.Equal(t, 24, canopies)
}

func TestOutdoorSceneSunsMatchLights(t *testing.T) {
	f := newOutdoorFixture(t)
	require.NoError(t, f.scene.Setup())

	require.Equal(t, 3, f.scene.Lights().ActiveCount())

	l0, _ := f.scene.Lights().At(0)
	assert.Equal(t, mgl32.Vec3{-10, 50, -20}, l0.Position)
	assert.Equal(t, mgl32.Vec3{0.3, 0.15, 0}, l0.AmbientColor)
	assert.Equal(t, mgl32.Vec3{1, 0.6, 0}, l0.DiffuseColor)
	assert.Equal(t, mgl32.Vec3{1, 0.6, 0}, l0.SpecularColor)
	assert.Equal(t, float32(0.2), l0.FocalStrength)
	assert.Equal(t, float32(0.2), l0.SpecularIntensity)

	l1, _ := f.scene.Lights().At(1)
	assert.Equal(t, mgl32.Vec3{-8, 8, -22}, l1.Position)
	l2, _ := f.scene.Lights().At(2)
	assert.Equal(t, mgl32.Vec3{10, 9, -18}, l2.Position)

	suns := 0
	for _, obj := range f.scene.Objects() {
		if obj.MeshKind() == mesh.MeshKindSphere {
			suns++
			assert.Equal(t, mgl32.Vec4{1, 0.5, 0, 1}, obj.Color())
		}
	}
	assert.Equal(t, 3, suns)
}

func TestOutdoorSceneLoadsTexturesFromAssetDir(t *testing.T) {
	f := newOutdoorFixture(t)
	require.NoError(t, f.scene.Setup())

	reg := f.scene.Textures()
	assert.Equal(t, 5, reg.Count())
	for slot, tag := range []string{"bark", "grass", "water", "leaves", "sky"} {
		assert.Equal(t, slot, reg.FindSlot(tag), tag)
	}

	wantPaths := []string{
		filepath.Join("assets", "bark.jpg"),
		filepath.Join("assets", "grass.jpg"),
		filepath.Join("assets", "water.jpg"),
		filepath.Join("assets", "leaves.jpg"),
		filepath.Join("assets", "sky.jpg"),
	}
	assert.Equal(t, wantPaths, f.decoder.decoded)
}

func TestOutdoorSceneRendersEveryObject(t *testing.T) {
	f := newOutdoorFixture(t)
	require.NoError(t, f.scene.Setup())
	require.NoError(t, f.scene.Render(1))

	assert.Len(t, f.backend.drawn, 57)
	assert.Len(t, f.backend.meshCreated, 4) // one upload per primitive kind
	assert.Len(t, f.sh.writesNamed(shader.UniformModel), 57)
}

func TestOutdoorSceneMissingAssetStillRenders(t *testing.T) {
	f := newOutdoorFixture(t)
	f.decoder.fail = map[string]error{
		filepath.Join("assets", "water.jpg"): errors.New("no such file"),
	}

	err := f.scene.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "water")
	assert.Equal(t, 4, f.scene.Textures().Count())

	err = f.scene.Render(0)
	assert.ErrorIs(t, err, ErrTextureNotFound)

	// The water plane drew with the placeholder color; nothing was skipped.
	assert.Len(t, f.backend.drawn, 57)
	assert.Contains(t, f.sh.writesNamed(shader.UniformObjectColor), PlaceholderColor)
}

func TestOutdoorSceneCallerOptionsApply(t *testing.T) {
	backend := &sceneBackend{}
	ctx := renderer.NewRenderContext(renderer.BackendTypeOpenGL, renderer.WithBackend(backend))
	decoder := &sceneDecoder{}
	sh := &recordingShader{}

	sc := NewOutdoorScene(ctx, sh, "assets",
		WithTextureRegistry(texture.NewRegistry(ctx, texture.WithLoader(decoder))),
		WithViewPosition(mgl32.Vec3{0, 10, 30}))
	require.NoError(t, sc.Setup())
	require.NoError(t, sc.Render(0))

	assert.Equal(t, mgl32.Vec3{0, 10, 30}, sh.lastNamed(viewPosUniform))
}
