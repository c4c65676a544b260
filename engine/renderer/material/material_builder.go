package material

import "fmt"

// RegistryBuilderOption defines a function that modifies the registry
// configuration during construction.
type RegistryBuilderOption func(*registry)

// NewRegistry creates a new empty material Registry.
//
// Parameters:
//   - options: optional configuration functions
//
// Returns:
//   - Registry: the configured material registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registry{
		presets: make([]MaterialPreset, 0),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithPresets registers initial presets in the given order. Panics when two
// presets share a tag.
//
// Parameters:
//   - presets: the presets to register
//
// Returns:
//   - RegistryBuilderOption: the configuration function
func WithPresets(presets ...MaterialPreset) RegistryBuilderOption {
	return func(r *registry) {
		for _, preset := range presets {
			if err := r.Add(preset); err != nil {
				panic(fmt.Sprintf("cannot seed material registry: %v", err))
			}
		}
	}
}
