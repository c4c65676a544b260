package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption defines a function that modifies a light during
// construction.
type LightBuilderOption func(*Light)

// NewLight creates a Light with neutral defaults (white diffuse and specular at
// full intensity, no ambient term, no focal falloff) and applies the provided
// options.
//
// Parameters:
//   - options: optional configuration functions
//
// Returns:
//   - Light: the configured light value
func NewLight(options ...LightBuilderOption) Light {
	l := Light{
		DiffuseColor:      mgl32.Vec3{1, 1, 1},
		SpecularColor:     mgl32.Vec3{1, 1, 1},
		SpecularIntensity: 1,
	}
	for _, opt := range options {
		opt(&l)
	}
	return l
}

// WithPosition sets the world-space position of the light.
//
// Parameters:
//   - position: the position as (x, y, z)
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.Position = position
	}
}

// WithAmbientColor sets the RGB ambient contribution of the light.
//
// Parameters:
//   - color: the ambient color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithAmbientColor(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.AmbientColor = color
	}
}

// WithDiffuseColor sets the RGB diffuse contribution of the light.
//
// Parameters:
//   - color: the diffuse color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithDiffuseColor(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.DiffuseColor = color
	}
}

// WithSpecularColor sets the RGB specular contribution of the light.
//
// Parameters:
//   - color: the specular color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithSpecularColor(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.SpecularColor = color
	}
}

// WithFocalStrength sets the falloff exponent applied to the diffuse impact.
//
// Parameters:
//   - strength: the falloff exponent
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithFocalStrength(strength float32) LightBuilderOption {
	return func(l *Light) {
		l.FocalStrength = strength
	}
}

// WithSpecularIntensity sets the scale applied to the specular contribution.
//
// Parameters:
//   - intensity: the specular scale
//
// Returns:
//   - LightBuilderOption: the configuration function
func WithSpecularIntensity(intensity float32) LightBuilderOption {
	return func(l *Light) {
		l.SpecularIntensity = intensity
	}
}
