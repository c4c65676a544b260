package loader

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/Carmen-Shannon/glade/common"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// imageLoaderBackend is the implementation of the loaderBackend interface for
// still-image formats. Supported formats are the registered stdlib decoders
// (PNG, JPEG) plus BMP and TIFF.
type imageLoaderBackend struct{}

var _ loaderBackend = &imageLoaderBackend{}

// newImageLoaderBackend creates a new image decoding backend.
//
// Returns:
//   - *imageLoaderBackend: the backend instance
func newImageLoaderBackend() *imageLoaderBackend {
	return &imageLoaderBackend{}
}

func (b *imageLoaderBackend) Decode(path string) (*common.TextureStagingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	return b.DecodeReader(file, path)
}

func (b *imageLoaderBackend) DecodeReader(r io.Reader, name string) (*common.TextureStagingData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}

	channels := sourceChannels(img)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("texture %s has %d channels, only 3 (RGB) or 4 (RGBA) are supported", name, channels)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return &common.TextureStagingData{
		Pixels:   rgba.Pix,
		Width:    int32(bounds.Dx()),
		Height:   int32(bounds.Dy()),
		Channels: channels,
	}, nil
}

// sourceChannels reports the channel count of the decoded image's source format,
// before the RGBA conversion. Grayscale (1) and alpha-only (2) sources are
// reported as-is so the caller can reject them.
func sourceChannels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.YCbCr:
		return 3
	case *image.NYCbCrA:
		return 4
	case *image.CMYK:
		return 4
	case *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	default:
		return 0
	}
}
