package geom

import (
	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// planeEpsilon is the one-sidedness tolerance: rays parallel to or facing
// away from the plane's outward normal are rejected, not just rays
// exactly parallel to it. This makes InfinitePlane one-sided, unlike the
// teacher's symmetric |denom| < eps two-sided test — a deliberate
// spec-mandated behavior change, preserved here intentionally.
const planeEpsilon = 1e-6

// InfinitePlane is an infinite plane through Center with unit outward
// normal OutwardNormal, visible only from the side the normal points to.
type InfinitePlane struct {
	Center        pathmath.Point
	OutwardNormal pathmath.Vector
	Material      bsdf.Material
}

// NewInfinitePlane creates a new infinite plane. OutwardNormal must
// already be a unit vector.
func NewInfinitePlane(center pathmath.Point, outwardNormal pathmath.Vector, material bsdf.Material) *InfinitePlane {
	return &InfinitePlane{Center: center, OutwardNormal: outwardNormal, Material: material}
}

// Intersect implements Shape.
func (p *InfinitePlane) Intersect(ray pathmath.Ray) (*bsdf.SurfaceInteraction, bool) {
	u := ray.Direction.Normalize()
	denom := u.Dot(p.OutwardNormal)
	if !(denom < -planeEpsilon) {
		return nil, false
	}

	t := p.Center.Subtract(ray.Origin).Dot(p.OutwardNormal) / denom
	if t <= 0 {
		return nil, false
	}

	position := ray.Origin.AddScaled(u, t)

	return &bsdf.SurfaceInteraction{
		Position: position,
		Normal:   p.OutwardNormal,
		T:        t,
		Material: p.Material,
		Wi:       u.Negate(),
	}, true
}
