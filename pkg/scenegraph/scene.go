// Package scenegraph holds the scene the integrator traces against: an
// ordered collection of shapes and emitters plus a constant background
// color. Grounded on the teacher's pkg/scene/scene.go Scene struct
// (Shapes/Lights slices and AddXxx host-construction methods), with the
// BVH and light-sampler machinery dropped — a linear scan over the
// closed shape set is sufficient per the renderer's scope.
package scenegraph

import (
	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/geom"
	"github.com/kavanaugh-render/pathtracer/pkg/light"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// defaultBackground is the radiance returned for rays that escape the
// scene without hitting anything.
var defaultBackground = pathmath.NewColor(0.2, 0.2, 0.2)

// Scene is an ordered set of shapes and emitters. Order matters only as
// a tie-breaker: ClosestHit keeps the first shape encountered among
// equal-distance hits.
type Scene struct {
	Shapes     []geom.Shape
	Emitters   []light.Emitter
	Background pathmath.Color
}

// NewScene creates an empty scene with the default background color.
func NewScene() *Scene {
	return &Scene{Background: defaultBackground}
}

// AddShape appends a shape to the scene.
func (s *Scene) AddShape(shape geom.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends an emitter to the scene.
func (s *Scene) AddLight(emitter light.Emitter) {
	s.Emitters = append(s.Emitters, emitter)
}

// ClosestHit scans every shape and returns the interaction with the
// smallest positive T, or ok=false if the ray hits nothing. Ties are
// broken by insertion order: the first shape added wins.
func (s *Scene) ClosestHit(ray pathmath.Ray) (*bsdf.SurfaceInteraction, bool) {
	var closest *bsdf.SurfaceInteraction

	for _, shape := range s.Shapes {
		si, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		if closest == nil || si.T < closest.T {
			closest = si
		}
	}

	return closest, closest != nil
}
