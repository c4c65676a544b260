package light

import "github.com/go-gl/mathgl/mgl32"

// Light describes one Phong light source. Lights are pure data; they are stored
// in a Table and pushed to the shader as a block of six uniforms per slot.
type Light struct {
	// Position is the world-space position of the light.
	Position mgl32.Vec3
	// AmbientColor is the RGB ambient contribution of the light.
	AmbientColor mgl32.Vec3
	// DiffuseColor is the RGB diffuse contribution of the light.
	DiffuseColor mgl32.Vec3
	// SpecularColor is the RGB specular contribution of the light.
	SpecularColor mgl32.Vec3
	// FocalStrength is the falloff exponent applied to the diffuse impact. A
	// value of zero disables the falloff shaping.
	FocalStrength float32
	// SpecularIntensity scales the specular contribution.
	SpecularIntensity float32
}
