// Package scenes builds the small set of demo scenes the CLI offers in
// place of the teacher's PBRT/PLY scene-file loader (pkg/loaders,
// pkg/scene/pbrt_scene.go) — there is no external scene-description
// format in this renderer's scope, so "-scene" simply names one of a
// few programmatically constructed scenes, mirroring the shape of the
// teacher's NewDefaultScene (pkg/scene/default_scene.go): a handful of
// spheres, a ground plane, and a point light.
package scenes

import (
	"fmt"

	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/geom"
	"github.com/kavanaugh-render/pathtracer/pkg/light"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
	"github.com/kavanaugh-render/pathtracer/pkg/scenegraph"
)

// Names lists every built-in scene the CLI accepts for -scene.
var Names = []string{"default", "cornell", "spheregrid"}

// Build constructs the named built-in scene. Every scene is laid out
// for the camera fixed at the world origin looking down -z (the
// renderer has no look-at transform), so geometry is placed directly in
// front of that view rather than around an arbitrary camera position.
// Build returns an error for unknown names so the CLI can report a
// usable message instead of panicking on a typo.
func Build(name string) (*scenegraph.Scene, error) {
	switch name {
	case "default":
		return defaultScene(), nil
	case "cornell":
		return cornellScene(), nil
	case "spheregrid":
		return sphereGridScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (want one of %v)", name, Names)
	}
}

// defaultScene is a single Phong sphere over a diffuse ground plane, lit by
// one point light — the smallest scene that exercises every module.
func defaultScene() *scenegraph.Scene {
	s := scenegraph.NewScene()

	ground := geom.NewInfinitePlane(pathmath.NewPoint(0, -1, 0), pathmath.NewVector(0, 1, 0), bsdf.NewDiffuseMaterial(pathmath.NewColor(0.6, 0.6, 0.6)))
	sphere := geom.NewSphere(pathmath.NewPoint(0, 0, -3), 1, bsdf.NewPhongMaterial(pathmath.NewColor(0.65, 0.25, 0.2), pathmath.NewColor(0.3, 0.3, 0.3), 32))

	s.AddShape(ground)
	s.AddShape(sphere)
	s.AddLight(light.NewPointLight(pathmath.NewPoint(3, 4, 0), pathmath.NewColor(40, 40, 40)))

	return s
}

// cornellScene is a simplified, sphere-only stand-in for the teacher's
// Cornell box: colored walls built from infinite planes, three spheres
// (one of each closed material variant), and an overhead point light.
func cornellScene() *scenegraph.Scene {
	s := scenegraph.NewScene()

	floor := geom.NewInfinitePlane(pathmath.NewPoint(0, -2, 0), pathmath.NewVector(0, 1, 0), bsdf.NewDiffuseMaterial(pathmath.White()))
	ceiling := geom.NewInfinitePlane(pathmath.NewPoint(0, 3, 0), pathmath.NewVector(0, -1, 0), bsdf.NewDiffuseMaterial(pathmath.White()))
	back := geom.NewInfinitePlane(pathmath.NewPoint(0, 0, -8), pathmath.NewVector(0, 0, 1), bsdf.NewDiffuseMaterial(pathmath.White()))
	left := geom.NewInfinitePlane(pathmath.NewPoint(-3, 0, 0), pathmath.NewVector(1, 0, 0), bsdf.NewDiffuseMaterial(pathmath.NewColor(0.8, 0.1, 0.1)))
	right := geom.NewInfinitePlane(pathmath.NewPoint(3, 0, 0), pathmath.NewVector(-1, 0, 0), bsdf.NewDiffuseMaterial(pathmath.NewColor(0.1, 0.8, 0.1)))

	diffuseSphere := geom.NewSphere(pathmath.NewPoint(-1.2, -1.2, -4), 0.8, bsdf.NewDiffuseMaterial(pathmath.NewColor(0.2, 0.3, 0.8)))
	phongSphere := geom.NewSphere(pathmath.NewPoint(1.2, -1.2, -5), 0.8, bsdf.NewPhongMaterial(pathmath.NewColor(0.5, 0.5, 0.1), pathmath.White(), 64))
	blackSphere := geom.NewSphere(pathmath.NewPoint(0, -1.5, -3), 0.5, bsdf.NewBlackBody())

	s.AddShape(floor)
	s.AddShape(ceiling)
	s.AddShape(back)
	s.AddShape(left)
	s.AddShape(right)
	s.AddShape(diffuseSphere)
	s.AddShape(phongSphere)
	s.AddShape(blackSphere)
	s.AddLight(light.NewPointLight(pathmath.NewPoint(0, 2.5, -3), pathmath.NewColor(25, 25, 25)))

	return s
}

// sphereGridScene is a grid of diffuse spheres over a ground plane,
// useful for exercising the dispatcher's worker partition with a busy
// scene.
func sphereGridScene() *scenegraph.Scene {
	s := scenegraph.NewScene()

	ground := geom.NewInfinitePlane(pathmath.NewPoint(0, -1, 0), pathmath.NewVector(0, 1, 0), bsdf.NewDiffuseMaterial(pathmath.NewColor(0.5, 0.5, 0.5)))
	s.AddShape(ground)

	const gridSize = 6
	const spacing = 2.0
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			x := (float64(col) - float64(gridSize-1)/2) * spacing
			z := -6 - float64(row)*spacing
			albedo := pathmath.NewColor(
				float64(col+1)/float64(gridSize),
				float64(row+1)/float64(gridSize),
				0.5,
			)
			s.AddShape(geom.NewSphere(pathmath.NewPoint(x, -0.25, z), 0.75, bsdf.NewDiffuseMaterial(albedo)))
		}
	}

	s.AddLight(light.NewPointLight(pathmath.NewPoint(0, 8, -2), pathmath.NewColor(80, 80, 80)))

	return s
}
