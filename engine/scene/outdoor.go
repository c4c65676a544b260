package scene

import (
	"path/filepath"

	"github.com/Carmen-Shannon/glade/common"
	"github.com/Carmen-Shannon/glade/engine/light"
	"github.com/Carmen-Shannon/glade/engine/mesh"
	"github.com/Carmen-Shannon/glade/engine/renderer"
	"github.com/Carmen-Shannon/glade/engine/renderer/shader"
	"github.com/Carmen-Shannon/glade/engine/scene_object"

	"github.com/go-gl/mathgl/mgl32"
)

// outdoorTextureTags lists the outdoor scene's texture tags in load order.
// Each tag doubles as the image file name under the asset directory.
var outdoorTextureTags = []string{"bark", "grass", "water", "leaves", "sky"}

// treePositions are the ground positions of the outdoor scene's trees. The
// first dozen ring the clearing, the second dozen fill it in.
var treePositions = []mgl32.Vec3{
	{10, -1, 5}, {15, -1, 8}, {18, -1, 3},
	{-10, -1, 5}, {-15, -1, 8}, {-18, -1, 3},
	{10, -1, -5}, {15, -1, -8}, {18, -1, -3},
	{-10, -1, -5}, {-15, -1, -8}, {-18, -1, -3},
	{-3, -1, 2}, {3, -1, -2}, {-7, -1, 3}, {7, -1, -3},
	{-2, -1, -4}, {2, -1, 4}, {-6, -1, -3}, {6, -1, 3},
	{15, -1, 10}, {-15, -1, -10}, {20, -1, 12}, {-20, -1, -12},
}

// NewOutdoorScene assembles the stock outdoor scene: a grass field cut by a
// water strip, three glowing suns over three mountains, two dozen spinning
// trees, and a sky backdrop. Textures are loaded from assetDir as "<tag>.jpg"
// for the tags bark, grass, water, leaves, and sky. Further options are
// applied after the scene content, so they can override any of it.
//
// Parameters:
//   - ctx: the render context the scene draws through
//   - sh: the shader program the scene renders with
//   - assetDir: the directory holding the scene's texture images
//   - options: optional configuration functions
//
// Returns:
//   - Scene: the assembled outdoor scene
func NewOutdoorScene(ctx renderer.RenderContext, sh shader.Shader, assetDir string, options ...SceneBuilderOption) Scene {
	assets := make([]common.TextureAsset, 0, len(outdoorTextureTags))
	for _, tag := range outdoorTextureTags {
		assets = append(assets, common.TextureAsset{
			Path: filepath.Join(assetDir, tag+".jpg"),
			Tag:  tag,
		})
	}

	objects := make([]scene_object.SceneObject, 0, 9+2*len(treePositions))
	objects = append(objects,
		// Ground and water.
		scene_object.NewSceneObject(mesh.MeshKindPlane,
			scene_object.WithScale(mgl32.Vec3{25, 5, 36}),
			scene_object.WithPosition(mgl32.Vec3{0, -1, 0}),
			scene_object.WithTexture("grass", mgl32.Vec2{1, 1})),
		scene_object.NewSceneObject(mesh.MeshKindPlane,
			scene_object.WithScale(mgl32.Vec3{25, 1, 2}),
			scene_object.WithPosition(mgl32.Vec3{0, -0.5, 0}),
			scene_object.WithTexture("water", mgl32.Vec2{1, 1})),
		// Suns, one per light source.
		scene_object.NewSceneObject(mesh.MeshKindSphere,
			scene_object.WithScale(mgl32.Vec3{2, 2, 2}),
			scene_object.WithPosition(mgl32.Vec3{-10, 10, -20}),
			scene_object.WithColor(mgl32.Vec4{1, 0.5, 0, 1})),
		scene_object.NewSceneObject(mesh.MeshKindSphere,
			scene_object.WithScale(mgl32.Vec3{1.5, 1.5, 1.5}),
			scene_object.WithPosition(mgl32.Vec3{-8, 8, -22}),
			scene_object.WithColor(mgl32.Vec4{1, 0.5, 0, 1})),
		scene_object.NewSceneObject(mesh.MeshKindSphere,
			scene_object.WithScale(mgl32.Vec3{1, 1, 1}),
			scene_object.WithPosition(mgl32.Vec3{10, 9, -18}),
			scene_object.WithColor(mgl32.Vec4{1, 0.5, 0, 1})),
		// Mountains.
		scene_object.NewSceneObject(mesh.MeshKindCone,
			scene_object.WithScale(mgl32.Vec3{10, 5, 10}),
			scene_object.WithPosition(mgl32.Vec3{-10, 0, -20}),
			scene_object.WithColor(mgl32.Vec4{0.5, 0.35, 0.05, 1})),
		scene_object.NewSceneObject(mesh.MeshKindCone,
			scene_object.WithScale(mgl32.Vec3{8, 4, 8}),
			scene_object.WithPosition(mgl32.Vec3{10, 0, -15}),
			scene_object.WithColor(mgl32.Vec4{0.55, 0.4, 0.1, 1})),
		scene_object.NewSceneObject(mesh.MeshKindCone,
			scene_object.WithScale(mgl32.Vec3{12, 6, 12}),
			scene_object.WithPosition(mgl32.Vec3{0, 0, -25}),
			scene_object.WithColor(mgl32.Vec4{0.6, 0.45, 0.15, 1})),
	)
	for _, pos := range treePositions {
		objects = append(objects, outdoorTree(pos)...)
	}
	objects = append(objects,
		// Sky backdrop, stood upright behind the scene.
		scene_object.NewSceneObject(mesh.MeshKindPlane,
			scene_object.WithScale(mgl32.Vec3{25, 5, 10}),
			scene_object.WithPosition(mgl32.Vec3{0, 9, -36}),
			scene_object.WithRotationDegrees(mgl32.Vec3{90, 0, 0}),
			scene_object.WithTexture("sky", mgl32.Vec2{1, 1})),
	)

	base := []SceneBuilderOption{
		WithTextureAssets(assets...),
		WithSceneLights(outdoorLights()...),
		WithObjects(objects...),
	}
	return NewScene("outdoor", ctx, sh, append(base, options...)...)
}

// outdoorTree builds one tree at the given ground position: a bark trunk with
// a leaf canopy seated halfway up it, both spinning.
func outdoorTree(pos mgl32.Vec3) []scene_object.SceneObject {
	return []scene_object.SceneObject{
		scene_object.NewSceneObject(mesh.MeshKindCylinder,
			scene_object.WithScale(mgl32.Vec3{0.5, 3, 0.5}),
			scene_object.WithPosition(pos),
			scene_object.WithTexture("bark", mgl32.Vec2{1, 1}),
			scene_object.WithSpin(true)),
		scene_object.NewSceneObject(mesh.MeshKindCone,
			scene_object.WithScale(mgl32.Vec3{2, 3, 2}),
			scene_object.WithPosition(mgl32.Vec3{pos.X(), pos.Y() + 1.5, pos.Z()}),
			scene_object.WithTexture("leaves", mgl32.Vec2{1, 1}),
			scene_object.WithSpin(true)),
	}
}

// outdoorLights builds the three sunset lights, one behind each sun.
func outdoorLights() []light.Light {
	positions := []mgl32.Vec3{
		{-10, 50, -20},
		{-8, 8, -22},
		{10, 9, -18},
	}
	lights := make([]light.Light, 0, len(positions))
	for _, pos := range positions {
		lights = append(lights, light.NewLight(
			light.WithPosition(pos),
			light.WithAmbientColor(mgl32.Vec3{0.3, 0.15, 0}),
			light.WithDiffuseColor(mgl32.Vec3{1, 0.6, 0}),
			light.WithSpecularColor(mgl32.Vec3{1, 0.6, 0}),
			light.WithFocalStrength(0.2),
			light.WithSpecularIntensity(0.2),
		))
	}
	return lights
}
