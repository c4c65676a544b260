package mesh

import "github.com/Carmen-Shannon/glade/engine/renderer"

// ProviderBuilderOption defines a function that modifies the provider
// configuration during construction.
type ProviderBuilderOption func(*provider)

// NewProvider creates a mesh Provider backed by the given render context.
//
// Parameters:
//   - ctx: the render context used for buffer uploads and draws, must not be nil
//   - options: optional configuration functions
//
// Returns:
//   - Provider: the configured mesh provider
func NewProvider(ctx renderer.RenderContext, options ...ProviderBuilderOption) Provider {
	if ctx == nil {
		panic("mesh provider requires a render context")
	}

	p := &provider{
		ctx:        ctx,
		radialSegs: 32,
		ringSegs:   16,
		meshes:     make(map[MeshKind]renderer.MeshBuffers),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// WithRadialSegments sets the number of segments around the Y axis for curved
// shapes. Values below 3 are ignored.
//
// Parameters:
//   - segments: the radial segment count
//
// Returns:
//   - ProviderBuilderOption: the configuration function
func WithRadialSegments(segments int) ProviderBuilderOption {
	return func(p *provider) {
		if segments >= 3 {
			p.radialSegs = segments
		}
	}
}

// WithRingSegments sets the number of latitudinal rings for the sphere. Values
// below 2 are ignored.
//
// Parameters:
//   - segments: the ring segment count
//
// Returns:
//   - ProviderBuilderOption: the configuration function
func WithRingSegments(segments int) ProviderBuilderOption {
	return func(p *provider) {
		if segments >= 2 {
			p.ringSegs = segments
		}
	}
}
