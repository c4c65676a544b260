package shader

// SceneVertexSource is the default vertex stage for the outdoor scene shader.
// Vertex attributes are position (0), normal (1), and texture coordinate (2),
// matching the layout the mesh provider uploads.
const SceneVertexSource = `#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inTexCoord;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
	fragmentPosition = vec3(model * vec4(inPosition, 1.0));
	fragmentNormal = mat3(transpose(inverse(model))) * inNormal;
	fragmentTexCoord = inTexCoord;
	gl_Position = projection * view * vec4(fragmentPosition, 1.0);
}
`

// SceneFragmentSource is the default fragment stage for the outdoor scene shader.
// Shading is a fixed four-light Phong approximation. bUseTexture switches the base
// color between the objectTexture sample (scaled by UVscale) and objectColor;
// bUseLighting bypasses the lighting sum entirely. focalStrength is the falloff
// exponent applied to each light's diffuse impact.
const SceneFragmentSource = `#version 410 core
struct Material {
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

#define TOTAL_LIGHTS 4

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentTexCoord;

out vec4 outFragmentColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

void main()
{
	vec4 baseColor;
	if (bUseTexture)
	{
		baseColor = texture(objectTexture, fragmentTexCoord * UVscale);
	}
	else
	{
		baseColor = objectColor;
	}

	if (!bUseLighting)
	{
		outFragmentColor = baseColor;
		return;
	}

	vec3 normal = normalize(fragmentNormal);
	vec3 viewDirection = normalize(viewPosition - fragmentPosition);
	vec3 phongResult = vec3(0.0);

	for (int i = 0; i < TOTAL_LIGHTS; i++)
	{
		vec3 ambient = lightSources[i].ambientColor * material.ambientColor;

		vec3 lightDirection = normalize(lightSources[i].position - fragmentPosition);
		float impact = max(dot(normal, lightDirection), 0.0);
		if (lightSources[i].focalStrength > 0.0)
		{
			impact = pow(impact, lightSources[i].focalStrength);
		}
		vec3 diffuse = impact * lightSources[i].diffuseColor * material.diffuseColor;

		vec3 reflectDirection = reflect(-lightDirection, normal);
		float specularComponent = pow(max(dot(viewDirection, reflectDirection), 0.0), material.shininess);
		vec3 specular = lightSources[i].specularIntensity * specularComponent * lightSources[i].specularColor * material.specularColor;

		phongResult += ambient + diffuse + specular;
	}

	outFragmentColor = vec4(phongResult, 1.0) * baseColor;
}
`
