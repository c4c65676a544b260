package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/light"
	"github.com/Carmen-Shannon/glade/engine/logger"
	"github.com/Carmen-Shannon/glade/engine/mesh"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/renderer/material"
	"github.com/Carmen-Shannon/glade/engine/renderer/shader"
	"github.com/Carmen-Shannon/glade/engine/renderer/texture"
	"github.com/Carmen-Shannon/glade/engine/scene_object"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	// ErrTextureNotFound is returned when an object references a texture tag the
	// registry does not hold. The object is drawn with the placeholder color.
	ErrTextureNotFound = errors.New("texture tag not registered")
	// ErrMaterialNotFound is returned when an object references a material tag
	// the registry does not hold. The previously pushed material stands.
	ErrMaterialNotFound = errors.New("material tag not registered")
)

// PlaceholderColor is the flat color drawn in place of a texture that failed to
// load or resolve, making missing assets visible instead of leaving stale
// texture state on screen.
var PlaceholderColor = mgl32.Vec4{1, 0, 1, 1}

// viewPosUniform is the scene-owned view position uniform, pushed every frame
// for shaders that declare it. The built-in fragment stage reads the camera's
// viewPosition instead; shader setters ignore unresolved names, so pushing
// both is safe with either source set.
const viewPosUniform = "viewPos"

// Scene composes a fixed 3D scene from declarative object records. Setup loads
// every GPU resource the object list needs, Render walks the list once per
// frame issuing transform, appearance, and draw calls in list order, and
// Teardown releases the resources. The scene owns no GPU handles itself; the
// registries it carries do.
type Scene interface {
	// Name returns the scene's identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Shader returns the shader program the scene renders with.
	//
	// Returns:
	//   - shader.Shader: the scene shader
	Shader() shader.Shader

	// Meshes returns the mesh provider owning the scene's mesh buffers.
	//
	// Returns:
	//   - mesh.Provider: the mesh provider
	Meshes() mesh.Provider

	// Textures returns the texture registry owning the scene's textures.
	//
	// Returns:
	//   - texture.Registry: the texture registry
	Textures() texture.Registry

	// Materials returns the material preset registry.
	//
	// Returns:
	//   - material.Registry: the material registry
	Materials() material.Registry

	// Lights returns the light source table.
	//
	// Returns:
	//   - light.Table: the light table
	Lights() light.Table

	// Objects returns the declarative object list in draw order.
	//
	// Returns:
	//   - []scene_object.SceneObject: the object list
	Objects() []scene_object.SceneObject

	// AddObject appends an object to the end of the draw order.
	//
	// Parameters:
	//   - obj: the object to append
	AddObject(obj scene_object.SceneObject)

	// Setup loads every resource the scene needs: the mesh kinds referenced by
	// the object list, the scene's texture assets, material presets, and the
	// initial light slots. Calling Setup again after it succeeds is a no-op.
	//
	// Texture asset failures are non-fatal: they are logged, joined into the
	// returned error, and the affected objects fall back to the placeholder
	// color at render time. Mesh upload, duplicate preset, and light slot
	// failures abort setup.
	//
	// Returns:
	//   - error: joined non-fatal asset errors, or a fatal setup error
	Setup() error

	// Render draws one frame: frame state, shader activation, light sync, the
	// default material push, then every object in list order. Per-object
	// resolution failures are joined into the returned error; the frame is
	// still drawn, with placeholder appearances where resolution failed.
	//
	// Parameters:
	//   - elapsedSeconds: seconds since scene start, drives spinning objects
	//
	// Returns:
	//   - error: joined per-object resolution errors
	Render(elapsedSeconds float32) error

	// SetLightColor pushes a flat light color uniform for shaders that tint
	// with it. The standard scene shader ignores it.
	//
	// Parameters:
	//   - color: the light color as (r, g, b, a)
	SetLightColor(color mgl32.Vec4)

	// Teardown releases the scene's textures and mesh buffers. Safe to call
	// more than once.
	Teardown()
}

type scene struct {
	name            string
	ctx             renderer.RenderContext
	sh              shader.Shader
	meshes          mesh.Provider
	textures        texture.Registry
	materials       material.Registry
	lights          light.Table
	objects         []scene_object.SceneObject
	assets          []common.TextureAsset
	presets         []material.MaterialPreset
	initialLights   []light.Light
	defaultMaterial material.MaterialPreset
	viewPos         mgl32.Vec3
	ready           bool
}

var _ Scene = &scene{}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Shader() shader.Shader {
	return s.sh
}

func (s *scene) Meshes() mesh.Provider {
	return s.meshes
}

func (s *scene) Textures() texture.Registry {
	return s.textures
}

func (s *scene) Materials() material.Registry {
	return s.materials
}

func (s *scene) Lights() light.Table {
	return s.lights
}

func (s *scene) Objects() []scene_object.SceneObject {
	return s.objects
}

func (s *scene) AddObject(obj scene_object.SceneObject) {
	s.objects = append(s.objects, obj)
}

func (s *scene) Setup() error {
	if s.ready {
		return nil
	}
	start := time.Now()

	if err := s.meshes.LoadAll(s.referencedMeshKinds()...); err != nil {
		return fmt.Errorf("scene %q setup: %w", s.name, err)
	}

	var assetErrs []error
	for _, err := range s.textures.LoadAll(s.assets) {
		if err != nil {
			assetErrs = append(assetErrs, err)
		}
	}
	s.textures.BindAll()

	for _, preset := range s.presets {
		if err := s.materials.Add(preset); err != nil {
			return fmt.Errorf("scene %q setup: %w", s.name, err)
		}
	}

	for i, l := range s.initialLights {
		if err := s.lights.Set(i, l); err != nil {
			return fmt.Errorf("scene %q setup: %w", s.name, err)
		}
	}

	s.ready = true
	logger.Log.Info("scene ready",
		zap.String("scene", s.name),
		zap.Int("objects", len(s.objects)),
		zap.Int("textures", s.textures.Count()),
		zap.Int("lights", s.lights.ActiveCount()),
		zap.Duration("took", time.Since(start)))
	return errors.Join(assetErrs...)
}

func (s *scene) Render(elapsedSeconds float32) error {
	s.ctx.BeginFrame()
	s.sh.Use()

	s.sh.SetVec3(viewPosUniform, s.viewPos)
	s.lights.SyncAll(s.sh)
	s.sh.SetBool(shader.UniformUseLighting, true)
	s.pushMaterial(s.defaultMaterial)

	var errs []error
	for _, obj := range s.objects {
		if err := s.drawObject(obj, elapsedSeconds); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *scene) SetLightColor(color mgl32.Vec4) {
	s.sh.Use()
	s.sh.SetVec4(shader.UniformLightColor, color)
}

func (s *scene) Teardown() {
	s.textures.DestroyAll()
	s.meshes.DestroyAll()
}

// drawObject pushes one object's transform and appearance, then draws its
// mesh. Resolution failures demote the appearance but never skip the draw.
func (s *scene) drawObject(obj scene_object.SceneObject, elapsedSeconds float32) error {
	s.sh.SetMat4(shader.UniformModel, obj.ModelMatrix(elapsedSeconds))

	var errs []error
	if tag := obj.MaterialTag(); tag != "" {
		if preset, found := s.materials.Find(tag); found {
			s.pushMaterial(preset)
		} else {
			errs = append(errs, fmt.Errorf("object material %q: %w", tag, ErrMaterialNotFound))
		}
	}

	if obj.Textured() {
		if err := s.applyTexture(obj.TextureTag(), obj.UVScale()); err != nil {
			errs = append(errs, err)
			s.applyColor(PlaceholderColor)
		}
	} else {
		s.applyColor(obj.Color())
	}

	if err := s.meshes.Draw(obj.MeshKind()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// applyTexture resolves a tag to its slot, binds the texture to that unit, and
// switches the shader to textured sampling.
func (s *scene) applyTexture(tag string, uvScale mgl32.Vec2) error {
	slot := s.textures.FindSlot(tag)
	if slot < 0 {
		return fmt.Errorf("object texture %q: %w", tag, ErrTextureNotFound)
	}

	s.ctx.BindTextureUnit(int32(slot), uint32(s.textures.FindID(tag)))
	s.sh.SetBool(shader.UniformUseTexture, true)
	s.sh.SetSampler2D(shader.UniformObjectTexture, int32(slot))
	s.sh.SetVec2(shader.UniformUVScale, uvScale)
	return nil
}

// applyColor switches the shader to flat color output, disabling texture
// sampling.
func (s *scene) applyColor(color mgl32.Vec4) {
	s.sh.SetBool(shader.UniformUseTexture, false)
	s.sh.SetVec4(shader.UniformObjectColor, color)
}

func (s *scene) pushMaterial(preset material.MaterialPreset) {
	s.sh.SetVec3(shader.UniformMaterialAmbientColor, preset.AmbientColor)
	s.sh.SetVec3(shader.UniformMaterialDiffuseColor, preset.DiffuseColor)
	s.sh.SetVec3(shader.UniformMaterialSpecularColor, preset.SpecularColor)
	s.sh.SetFloat(shader.UniformMaterialShininess, preset.Shininess)
}

// referencedMeshKinds returns the distinct mesh kinds in the object list,
// ordered by first appearance.
func (s *scene) referencedMeshKinds() []mesh.MeshKind {
	seen := make(map[mesh.MeshKind]bool)
	kinds := make([]mesh.MeshKind, 0, 4)
	for _, obj := range s.objects {
		if !seen[obj.MeshKind()] {
			seen[obj.MeshKind()] = true
			kinds = append(kinds, obj.MeshKind())
		}
	}
	return kinds
}
