package texture

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/loader"
	"github.com/Carmen-Shannon/glade/engine/renderer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder hands out one-pixel staging data for every path, or a configured
// failure, without touching the filesystem.
type fakeDecoder struct {
	fail    map[string]error
	decoded []string
}

var _ loader.Loader = &fakeDecoder{}

func (f *fakeDecoder) Decode(path string) (*common.TextureStagingData, error) {
	if err, ok := f.fail[path]; ok {
		return nil, err
	}
	f.decoded = append(f.decoded, path)
	return &common.TextureStagingData{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1, Channels: 4}, nil
}

func (f *fakeDecoder) DecodeAll(assets []common.TextureAsset) ([]*common.TextureStagingData, []error) {
	staging := make([]*common.TextureStagingData, len(assets))
	errs := make([]error, len(assets))
	for i, asset := range assets {
		staging[i], errs[i] = f.Decode(asset.Path)
	}
	return staging, errs
}

// fakeTextureBackend implements renderer.RendererBackend with sequential
// texture handles and bind recording.
type fakeTextureBackend struct {
	nextTexture uint32
	created     []uint32
	deleted     []uint32
	activeUnit  int32
	binds       []textureBind
}

type textureBind struct {
	unit    int32
	texture uint32
}

var _ renderer.RendererBackend = &fakeTextureBackend{}

func (f *fakeTextureBackend) Init() error                      { return nil }
func (f *fakeTextureBackend) SetClearColor(r, g, b, a float32) {}
func (f *fakeTextureBackend) ClearFrame()                      {}
func (f *fakeTextureBackend) EnableDepthTest()                 {}
func (f *fakeTextureBackend) DisableDepthTest()                {}
func (f *fakeTextureBackend) EnableBlending()                  {}
func (f *fakeTextureBackend) DisableBlending()                 {}
func (f *fakeTextureBackend) Viewport(width, height int32)     {}

func (f *fakeTextureBackend) ActiveTextureUnit(unit int32) { f.activeUnit = unit }

func (f *fakeTextureBackend) BindTexture2D(texture uint32) {
	f.binds = append(f.binds, textureBind{unit: f.activeUnit, texture: texture})
}

func (f *fakeTextureBackend) CreateTexture2D(staging *common.TextureStagingData) (uint32, error) {
	f.nextTexture++
	f.created = append(f.created, f.nextTexture)
	return f.nextTexture, nil
}

func (f *fakeTextureBackend) DeleteTexture2D(texture uint32) {
	f.deleted = append(f.deleted, texture)
}

func (f *fakeTextureBackend) CreateMeshBuffers(vertices []float32, indices []uint32) (renderer.MeshBuffers, error) {
	return renderer.MeshBuffers{}, nil
}

func (f *fakeTextureBackend) DeleteMeshBuffers(buffers renderer.MeshBuffers) {}
func (f *fakeTextureBackend) DrawMesh(buffers renderer.MeshBuffers)          {}

func newTestRegistry() (Registry, *fakeTextureBackend, *fakeDecoder) {
	backend := &fakeTextureBackend{}
	ctx := renderer.NewRenderContext(renderer.BackendTypeOpenGL, renderer.WithBackend(backend))
	decoder := &fakeDecoder{}
	return NewRegistry(ctx, WithLoader(decoder)), backend, decoder
}

func TestLoadAssignsSlotsInRegistrationOrder(t *testing.T) {
	reg, _, _ := newTestRegistry()

	tags := []string{"grass", "water", "bark", "leaves", "sky"}
	for _, tag := range tags {
		require.NoError(t, reg.Load(tag+".jpg", tag))
	}

	assert.Equal(t, len(tags), reg.Count())
	for slot, tag := range tags {
		assert.Equal(t, slot, reg.FindSlot(tag), tag)
	}
}

func TestFindIDReturnsBackendHandle(t *testing.T) {
	reg, backend, _ := newTestRegistry()
	require.NoError(t, reg.Load("grass.jpg", "grass"))
	require.NoError(t, reg.Load("water.jpg", "water"))

	require.Len(t, backend.created, 2)
	assert.Equal(t, int64(backend.created[0]), reg.FindID("grass"))
	assert.Equal(t, int64(backend.created[1]), reg.FindID("water"))
}

func TestFindUnknownTagReturnsSentinels(t *testing.T) {
	reg, _, _ := newTestRegistry()
	require.NoError(t, reg.Load("grass.jpg", "grass"))

	assert.Equal(t, int64(-1), reg.FindID("mud"))
	assert.Equal(t, -1, reg.FindSlot("mud"))
}

func TestLoadRejectsDuplicateTag(t *testing.T) {
	reg, _, _ := newTestRegistry()
	require.NoError(t, reg.Load("grass.jpg", "grass"))

	err := reg.Load("other.jpg", "grass")
	assert.ErrorIs(t, err, ErrDuplicateTag)
	assert.Equal(t, 1, reg.Count())
}

func TestLoadRejectsBeyondCapacity(t *testing.T) {
	reg, _, _ := newTestRegistry()
	for i := 0; i < Capacity; i++ {
		require.NoError(t, reg.Load("img.jpg", fmt.Sprintf("tag-%d", i)))
	}

	err := reg.Load("img.jpg", "one-more")
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, Capacity, reg.Count())
	assert.Equal(t, -1, reg.FindSlot("one-more"))
}

func TestLoadDecodeFailureLeavesRegistryUnchanged(t *testing.T) {
	reg, _, decoder := newTestRegistry()
	decoder.fail = map[string]error{"missing.jpg": errors.New("no such file")}

	err := reg.Load("missing.jpg", "grass")
	require.Error(t, err)
	assert.Zero(t, reg.Count())
	assert.Equal(t, -1, reg.FindSlot("grass"))
}

func TestLoadAllAlignsErrorsWithAssets(t *testing.T) {
	reg, _, decoder := newTestRegistry()
	decoder.fail = map[string]error{"water.jpg": errors.New("corrupt data")}

	errs := reg.LoadAll([]common.TextureAsset{
		{Path: "grass.jpg", Tag: "grass"},
		{Path: "water.jpg", Tag: "water"},
		{Path: "bark.jpg", Tag: "bark"},
	})

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
	assert.NoError(t, errs[2])

	// Failed assets take no slot, so later assets close the gap.
	assert.Equal(t, 0, reg.FindSlot("grass"))
	assert.Equal(t, 1, reg.FindSlot("bark"))
	assert.Equal(t, -1, reg.FindSlot("water"))
}

func TestBindAllBindsSlotsToMatchingUnits(t *testing.T) {
	reg, backend, _ := newTestRegistry()
	require.NoError(t, reg.Load("grass.jpg", "grass"))
	require.NoError(t, reg.Load("water.jpg", "water"))

	backend.binds = nil
	reg.BindAll()

	assert.Equal(t, []textureBind{
		{unit: 0, texture: backend.created[0]},
		{unit: 1, texture: backend.created[1]},
	}, backend.binds)
}

func TestDestroyAllReleasesEveryTexture(t *testing.T) {
	reg, backend, _ := newTestRegistry()
	require.NoError(t, reg.Load("grass.jpg", "grass"))
	require.NoError(t, reg.Load("water.jpg", "water"))
	created := append([]uint32(nil), backend.created...)

	reg.DestroyAll()
	assert.Equal(t, created, backend.deleted)
	assert.Zero(t, reg.Count())
	assert.Equal(t, -1, reg.FindSlot("grass"))

	reg.DestroyAll()
	assert.Len(t, backend.deleted, 2) // nothing left to release
}

func TestNewRegistryRequiresContext(t *testing.T) {
	assert.Panics(t, func() { NewRegistry(nil) })
}
