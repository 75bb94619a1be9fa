package geom

import (
	"math"

	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// Sphere is a solid sphere of the given radius (> 0) and material.
type Sphere struct {
	Center   pathmath.Point
	Radius   float64
	Material bsdf.Material
}

// NewSphere creates a new sphere. Radius must be > 0 (undefined behavior
// otherwise, per the renderer's treatment of degenerate geometry).
func NewSphere(center pathmath.Point, radius float64, material bsdf.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Intersect implements Shape. Uses the nearer root of the quadratic
// |o + t*u - center| = radius, rejecting t <= 0 so the ray origin cannot self-hit.
func (s *Sphere) Intersect(ray pathmath.Ray) (*bsdf.SurfaceInteraction, bool) {
	u := ray.Direction.Normalize()
	oc := ray.Origin.Subtract(s.Center)

	b := u.Dot(oc)
	delta := b*b - (oc.LengthSquared() - s.Radius*s.Radius)
	if delta < 0 {
		return nil, false
	}

	t := -b - math.Sqrt(delta)
	if t <= 0 {
		return nil, false
	}

	position := ray.Origin.AddScaled(u, t)
	normal := position.Subtract(s.Center).Normalize()

	return &bsdf.SurfaceInteraction{
		Position: position,
		Normal:   normal,
		T:        t,
		Material: s.Material,
		Wi:       u.Negate(),
	}, true
}
