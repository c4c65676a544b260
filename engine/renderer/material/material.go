package material

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDuplicateTag is returned when a preset is added under a tag that is already
// registered.
var ErrDuplicateTag = errors.New("material tag is already registered")

// MaterialPreset describes the surface response of an object under the Phong
// lighting model. Presets are pure data; the scene composer resolves them by tag
// and pushes their fields as shader uniforms per draw.
type MaterialPreset struct {
	// Tag is the stable string key for lookups.
	Tag string
	// AmbientColor is the RGB color reflected under ambient light.
	AmbientColor mgl32.Vec3
	// AmbientStrength scales the ambient contribution. It is carried with the
	// preset but not part of the shader's material block.
	AmbientStrength float32
	// DiffuseColor is the RGB color reflected under direct light.
	DiffuseColor mgl32.Vec3
	// SpecularColor is the RGB color of specular highlights.
	SpecularColor mgl32.Vec3
	// Shininess is the specular exponent; higher values tighten highlights.
	Shininess float32
}

// Registry holds an ordered, append-only collection of material presets looked
// up by tag. Lookup is a linear scan and the first match wins, so registration
// order is significant.
type Registry interface {
	// Add appends a preset to the registry.
	//
	// Parameters:
	//   - preset: the preset to append
	//
	// Returns:
	//   - error: ErrDuplicateTag if the preset's tag is already registered
	Add(preset MaterialPreset) error

	// Find returns a copy of the first preset registered under tag.
	//
	// Parameters:
	//   - tag: the tag to look up
	//
	// Returns:
	//   - MaterialPreset: the matching preset, or the zero value if absent
	//   - bool: true when a preset was found
	Find(tag string) (MaterialPreset, bool)

	// Count returns the number of registered presets.
	//
	// Returns:
	//   - int: the preset count
	Count() int
}

type registry struct {
	presets []MaterialPreset
}

var _ Registry = &registry{}

func (r *registry) Add(preset MaterialPreset) error {
	if _, found := r.Find(preset.Tag); found {
		return fmt.Errorf("cannot add material %q: %w", preset.Tag, ErrDuplicateTag)
	}
	r.presets = append(r.presets, preset)
	return nil
}

func (r *registry) Find(tag string) (MaterialPreset, bool) {
	for _, preset := range r.presets {
		if preset.Tag == tag {
			return preset, true
		}
	}
	return MaterialPreset{}, false
}

func (r *registry) Count() int {
	return len(r.presets)
}
