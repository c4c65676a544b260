package shader

// Uniform names shared between the scene GLSL sources and the packages that
// push state into them. The lightSources array elements are addressed by index
// and composed at the call site.
const (
	UniformModel                 = "model"
	UniformView                  = "view"
	UniformProjection            = "projection"
	UniformViewPosition          = "viewPosition"
	UniformObjectColor           = "objectColor"
	UniformObjectTexture         = "objectTexture"
	UniformUseTexture            = "bUseTexture"
	UniformUseLighting           = "bUseLighting"
	UniformLightColor            = "lightColor"
	UniformUVScale               = "UVscale"
	UniformMaterialAmbientColor  = "material.ambientColor"
	UniformMaterialDiffuseColor  = "material.diffuseColor"
	UniformMaterialSpecularColor = "material.specularColor"
	UniformMaterialShininess     = "material.shininess"
)
