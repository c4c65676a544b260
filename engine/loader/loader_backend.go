package loader

import (
	"io"

	"github.com/Carmen-Shannon/glade/common"
)

// loaderBackend defines the generic interface for decoding texture images from files or streams.
// Concrete implementations (e.g., imageLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Decode reads and decodes an image file into RGBA staging data.
	// Rows are in top-down order; the loader applies any vertical flip.
	//
	// Parameters:
	//   - path: the file path to decode
	//
	// Returns:
	//   - *common.TextureStagingData: the decoded pixel data
	//   - error: error if decoding fails or the channel count is unsupported
	Decode(path string) (*common.TextureStagingData, error)

	// DecodeReader decodes an image from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing image data
	//   - name: a descriptive name for error messages
	//
	// Returns:
	//   - *common.TextureStagingData: the decoded pixel data
	//   - error: error if decoding fails or the channel count is unsupported
	DecodeReader(r io.Reader, name string) (*common.TextureStagingData, error)
}
