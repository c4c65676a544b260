package loader

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/glade/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRowsPNG writes a 2x2 png with a red top row and a blue bottom row, the
// minimal image that makes a vertical flip observable.
func writeRowsPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{B: 255, A: 255})
	return writeImage(t, "rows.png", func(f *os.File) error { return png.Encode(f, img) })
}

func writeImage(t *testing.T, name string, encode func(*os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(file))
	require.NoError(t, file.Close())
	return path
}

func TestDecodeFlipsRowsForGL(t *testing.T) {
	path := writeRowsPNG(t)
	l := NewLoader(BackendTypeImage)

	staging, err := l.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, int32(2), staging.Width)
	assert.Equal(t, int32(2), staging.Height)
	assert.Equal(t, 4, staging.Channels)
	require.Len(t, staging.Pixels, 2*2*4)

	// The first staged row is the bottom of the image: blue, not red.
	assert.Equal(t, byte(0), staging.Pixels[0])
	assert.Equal(t, byte(255), staging.Pixels[2])
	// The second staged row is the original top: red.
	assert.Equal(t, byte(255), staging.Pixels[8])
	assert.Equal(t, byte(0), staging.Pixels[10])
}

func TestDecodeWithoutFlipKeepsRowOrder(t *testing.T) {
	path := writeRowsPNG(t)
	l := NewLoader(BackendTypeImage, WithFlipVertical(false))

	staging, err := l.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, byte(255), staging.Pixels[0]) // red top row stays first
}

func TestDecodeJPEGReportsThreeChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := writeImage(t, "flat.jpg", func(f *os.File) error { return jpeg.Encode(f, img, nil) })

	l := NewLoader(BackendTypeImage)
	staging, err := l.Decode(path)
	require.NoError(t, err)

	assert.Equal(t, 3, staging.Channels)
	assert.Len(t, staging.Pixels, 4*4*4) // staging data is always RGBA
}

func TestDecodeRejectsGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writeImage(t, "gray.png", func(f *os.File) error { return png.Encode(f, img) })

	l := NewLoader(BackendTypeImage)
	_, err := l.Decode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channels")
}

func TestDecodeMissingFile(t *testing.T) {
	l := NewLoader(BackendTypeImage)
	_, err := l.Decode(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestDecodeAllPreservesInputOrder(t *testing.T) {
	good := writeRowsPNG(t)
	l := NewLoader(BackendTypeImage, WithWorkers(2))

	staging, errs := l.DecodeAll([]common.TextureAsset{
		{Path: good, Tag: "first"},
		{Path: filepath.Join(t.TempDir(), "absent.png"), Tag: "second"},
		{Path: good, Tag: "third"},
	})

	require.Len(t, staging, 3)
	require.Len(t, errs, 3)

	assert.NotNil(t, staging[0])
	assert.NoError(t, errs[0])

	assert.Nil(t, staging[1])
	require.Error(t, errs[1])
	assert.Contains(t, errs[1].Error(), "second")

	assert.NotNil(t, staging[2])
	assert.NoError(t, errs[2])
}

func TestDecodeAllEmptyBatch(t *testing.T) {
	l := NewLoader(BackendTypeImage)
	staging, errs := l.DecodeAll(nil)
	assert.Empty(t, staging)
	assert.Empty(t, errs)
}

func TestDecodeAllReusesThePool(t *testing.T) {
	good := writeRowsPNG(t)
	l := NewLoader(BackendTypeImage, WithWorkers(1))

	for i := 0; i < 3; i++ {
		staging, errs := l.DecodeAll([]common.TextureAsset{{Path: good, Tag: "grass"}})
		require.Len(t, staging, 1)
		assert.NotNil(t, staging[0])
		assert.NoError(t, errs[0])
	}
}
