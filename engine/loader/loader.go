package loader

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/glade/common"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the asset format backend to use.
type LoaderBackendType int

const (
	// BackendTypeImage selects the image file loader backend (PNG/JPEG/BMP/TIFF).
	BackendTypeImage LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	flipVertical bool
	workers      int

	// decodePool manages a bounded set of reusable goroutines for parallel image
	// decoding. Decoded staging data is consumed on the GL context thread; the
	// pool never touches GPU state.
	decodePool worker.DynamicWorkerPool
	poolOnce   sync.Once

	backend loaderBackend
}

// Loader defines the public-facing interface for decoding texture image files into
// CPU-side staging data. It abstracts the image format behind a generic backend and
// fans batch decodes out over a worker pool, keeping file IO and pixel conversion
// off the render thread. The loader performs no GPU work.
type Loader interface {
	// Decode reads and decodes a single image file into RGBA staging data.
	// Images whose source channel count is neither 3 (RGB) nor 4 (RGBA) are
	// rejected. When the loader is configured to flip vertically (the default),
	// pixel rows are reordered so row 0 is the bottom of the image, matching
	// OpenGL texture coordinate origin.
	//
	// Parameters:
	//   - path: the image file path to decode
	//
	// Returns:
	//   - *common.TextureStagingData: the decoded pixel data
	//   - error: error if the file cannot be read, decoded, or has an unsupported channel count
	Decode(path string) (*common.TextureStagingData, error)

	// DecodeAll decodes a batch of texture assets in parallel on the worker pool.
	// Results preserve input order: staging[i] corresponds to assets[i] and is nil
	// exactly when errs[i] is non-nil. Callers that register textures from the
	// result keep their registration order deterministic regardless of decode
	// completion order.
	//
	// Parameters:
	//   - assets: the path/tag pairs to decode
	//
	// Returns:
	//   - []*common.TextureStagingData: decoded staging data, index-aligned with assets
	//   - []error: per-asset errors, index-aligned with assets
	DecodeAll(assets []common.TextureAsset) ([]*common.TextureStagingData, []error)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeImage)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		flipVertical: true,
		workers:      max(runtime.NumCPU()-1, 1),
	}

	switch backendType {
	case BackendTypeImage:
		l.backend = newImageLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Decode(path string) (*common.TextureStagingData, error) {
	staging, err := l.backend.Decode(path)
	if err != nil {
		return nil, err
	}
	if l.flipVertical {
		flipRows(staging)
	}
	return staging, nil
}

func (l *loader) DecodeAll(assets []common.TextureAsset) ([]*common.TextureStagingData, []error) {
	staging := make([]*common.TextureStagingData, len(assets))
	errs := make([]error, len(assets))
	if len(assets) == 0 {
		return staging, errs
	}

	l.poolOnce.Do(func() {
		l.decodePool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	})

	// A WaitGroup provides the batch barrier since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for setup-time batches.
	var wg sync.WaitGroup
	for i, asset := range assets {
		wg.Add(1)
		idx := i
		a := asset
		l.decodePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				data, err := l.Decode(a.Path)
				if err != nil {
					errs[idx] = fmt.Errorf("failed to decode texture %q: %w", a.Tag, err)
					return nil, err
				}
				staging[idx] = data
				return nil, nil
			},
		})
	}
	wg.Wait()

	return staging, errs
}

// flipRows reverses the row order of RGBA staging pixels in place.
func flipRows(staging *common.TextureStagingData) {
	rowBytes := int(staging.Width) * 4
	tmp := make([]byte, rowBytes)
	for top, bottom := 0, int(staging.Height)-1; top < bottom; top, bottom = top+1, bottom-1 {
		topRow := staging.Pixels[top*rowBytes : (top+1)*rowBytes]
		bottomRow := staging.Pixels[bottom*rowBytes : (bottom+1)*rowBytes]
		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}
