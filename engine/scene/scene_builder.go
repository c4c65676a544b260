package scene

import (
	"fmt"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/light"
	"github.com/Carmen-Shannon/glade/engine/mesh"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/renderer/material"
	"github.com/Carmen-Shannon/glade/engine/renderer/shader"
	"github.com/Carmen-Shannon/glade/engine/renderer/texture"
	"github.com/Carmen-Shannon/glade/engine/scene_object"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// NewScene creates a Scene rendering through the given context and shader.
// The scene starts with its own mesh provider, texture registry, material
// registry, and light table, all replaceable through options. Panics if ctx
// or sh is nil.
//
// Parameters:
//   - name: the scene identifier used in logs
//   - ctx: the render context the scene and its registries draw through
//   - sh: the shader program the scene renders with
//   - options: optional configuration functions
//
// Returns:
//   - Scene: the configured scene
func NewScene(name string, ctx renderer.RenderContext, sh shader.Shader, options ...SceneBuilderOption) Scene {
	if ctx == nil {
		panic("scene requires a render context")
	}
	if sh == nil {
		panic("scene requires a shader")
	}

	s := &scene{
		name:      name,
		ctx:       ctx,
		sh:        sh,
		meshes:    mesh.NewProvider(ctx),
		textures:  texture.NewRegistry(ctx),
		materials: material.NewRegistry(),
		lights:    light.NewTable(),
		viewPos:   mgl32.Vec3{0, 0, 3},
		defaultMaterial: material.MaterialPreset{
			Tag:             "default",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 1,
			DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
			SpecularColor:   mgl32.Vec3{1, 1, 1},
			Shininess:       32,
		},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithObjects appends initial objects to the scene's draw order.
//
// Parameters:
//   - objects: the objects to append
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...scene_object.SceneObject) SceneBuilderOption {
	return func(s *scene) {
		s.objects = append(s.objects, objects...)
	}
}

// WithTextureAssets appends texture assets for Setup to load, in load order.
// Asset order determines texture slot order.
//
// Parameters:
//   - assets: the path and tag pairs to load
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTextureAssets(assets ...common.TextureAsset) SceneBuilderOption {
	return func(s *scene) {
		s.assets = append(s.assets, assets...)
	}
}

// WithMaterialPresets appends material presets for Setup to register, in
// registration order.
//
// Parameters:
//   - presets: the presets to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterialPresets(presets ...material.MaterialPreset) SceneBuilderOption {
	return func(s *scene) {
		s.presets = append(s.presets, presets...)
	}
}

// WithSceneLights sets the lights Setup seats into table slots 0 through
// len(lights)-1. Panics if more lights are given than the table holds.
//
// Parameters:
//   - lights: the lights to seat, in slot order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSceneLights(lights ...light.Light) SceneBuilderOption {
	if len(lights) > light.SlotCount {
		panic(fmt.Sprintf("scene light table holds %d slots, got %d lights", light.SlotCount, len(lights)))
	}
	return func(s *scene) {
		s.initialLights = lights
	}
}

// WithDefaultMaterial replaces the material pushed at the start of each frame
// before any per-object material overrides.
//
// Parameters:
//   - preset: the frame's base material
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDefaultMaterial(preset material.MaterialPreset) SceneBuilderOption {
	return func(s *scene) {
		s.defaultMaterial = preset
	}
}

// WithViewPosition replaces the fixed view position the scene pushes each
// frame. Defaults to (0, 0, 3).
//
// Parameters:
//   - pos: the view position in world space
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewPosition(pos mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.viewPos = pos
	}
}

// WithMeshProvider replaces the scene's mesh provider.
//
// Parameters:
//   - p: the mesh provider
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshProvider(p mesh.Provider) SceneBuilderOption {
	return func(s *scene) {
		s.meshes = p
	}
}

// WithTextureRegistry replaces the scene's texture registry.
//
// Parameters:
//   - r: the texture registry
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTextureRegistry(r texture.Registry) SceneBuilderOption {
	return func(s *scene) {
		s.textures = r
	}
}

// WithMaterialRegistry replaces the scene's material registry.
//
// Parameters:
//   - r: the material registry
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterialRegistry(r material.Registry) SceneBuilderOption {
	return func(s *scene) {
		s.materials = r
	}
}

// WithLightTable replaces the scene's light table.
//
// Parameters:
//   - t: the light table
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLightTable(t light.Table) SceneBuilderOption {
	return func(s *scene) {
		s.lights = t
	}
}
