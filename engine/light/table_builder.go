package light

import "fmt"

// TableBuilderOption defines a function that modifies the light table during
// construction.
type TableBuilderOption func(*table)

// NewTable creates an empty light Table with all slots inactive.
//
// Parameters:
//   - options: optional configuration functions
//
// Returns:
//   - Table: the configured light table
func NewTable(options ...TableBuilderOption) Table {
	t := &table{}

	for _, opt := range options {
		opt(t)
	}

	return t
}

// WithLights fills slots 0..len(lights)-1 with the given lights and marks them
// active. Panics when more lights are given than the table has slots.
//
// Parameters:
//   - lights: the lights to store, in slot order
//
// Returns:
//   - TableBuilderOption: the configuration function
func WithLights(lights ...Light) TableBuilderOption {
	if len(lights) > SlotCount {
		panic(fmt.Sprintf("light table holds %d slots, got %d lights", SlotCount, len(lights)))
	}
	return func(t *table) {
		for i, l := range lights {
			t.slots[i] = l
			t.active[i] = true
		}
	}
}
