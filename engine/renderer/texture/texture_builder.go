package texture

import (
	"github.com/Carmen-Shannon/glade/engine/loader"
	"github.com/Carmen-Shannon/glade/engine/renderer"
)

// RegistryBuilderOption defines a function that modifies the registry
// configuration during construction.
type RegistryBuilderOption func(*registry)

// NewRegistry creates a new texture Registry backed by the given render context.
//
// Parameters:
//   - ctx: the render context used for GPU uploads and binds, must not be nil
//   - options: optional configuration functions
//
// Returns:
//   - Registry: the configured texture registry
func NewRegistry(ctx renderer.RenderContext, options ...RegistryBuilderOption) Registry {
	if ctx == nil {
		panic("texture registry requires a render context")
	}

	r := &registry{
		ctx:     ctx,
		entries: make([]TextureEntry, 0, Capacity),
	}

	for _, opt := range options {
		opt(r)
	}

	if r.decoder == nil {
		r.decoder = loader.NewLoader(loader.BackendTypeImage)
	}

	return r
}

// WithLoader overrides the image loader used to decode texture files.
//
// Parameters:
//   - decoder: the loader to decode with
//
// Returns:
//   - RegistryBuilderOption: the configuration function
func WithLoader(decoder loader.Loader) RegistryBuilderOption {
	return func(r *registry) {
		r.decoder = decoder
	}
}
