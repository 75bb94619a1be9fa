// Package geom implements the closed set of implicit shapes the renderer
// can intersect: spheres and infinite planes. Grounded on the teacher's
// pkg/geometry/sphere.go and pkg/geometry/plane.go, simplified to this
// spec's formulas and with the bounding-volume / BVH machinery dropped —
// a linear scan over primitives is sufficient per the spec's Non-goals.
package geom

import (
	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// Shape is the single operation every primitive exposes: a closest-hit
// test against a ray. A nil *bsdf.SurfaceInteraction with ok=false means
// the ray misses.
type Shape interface {
	Intersect(ray pathmath.Ray) (*bsdf.SurfaceInteraction, bool)
}
