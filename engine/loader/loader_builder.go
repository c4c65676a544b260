package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithFlipVertical is an option builder that controls whether decoded images are
// flipped vertically. The default is true, matching OpenGL's bottom-left texture
// coordinate origin.
//
// Parameters:
//   - flip: true to flip decoded pixel rows
//
// Returns:
//   - LoaderBuilderOption: a function that applies the flip option to a loader
func WithFlipVertical(flip bool) LoaderBuilderOption {
	return func(l *loader) {
		l.flipVertical = flip
	}
}

// WithWorkers is an option builder that sets the worker count for batch decodes.
// Values below 1 are ignored; the default is NumCPU-1 (minimum 1).
//
// Parameters:
//   - workers: the number of decode workers
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		if workers >= 1 {
			l.workers = workers
		}
	}
}
