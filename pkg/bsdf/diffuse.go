package bsdf

import (
	"math"
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// DiffuseMaterial is a perfectly Lambertian reflector. Grounded on the
// teacher's pkg/material/lambertian.go (cosine-weighted sampling, albedo/pi
// BRDF), adapted to the unified Eval/Sample/PDF contract.
type DiffuseMaterial struct {
	Albedo pathmath.Color
}

// NewDiffuseMaterial creates a diffuse material with the given albedo.
func NewDiffuseMaterial(albedo pathmath.Color) *DiffuseMaterial {
	return &DiffuseMaterial{Albedo: albedo}
}

func (d *DiffuseMaterial) Eval(si *SurfaceInteraction, wo pathmath.Vector) (pathmath.Color, float64) {
	cosine := math.Max(0, si.Normal.Dot(wo))
	radiance := d.Albedo.Scale(cosine / math.Pi)
	return radiance, cosineHemispherePDF(si.Normal, wo)
}

func (d *DiffuseMaterial) Sample(si *SurfaceInteraction, rng *rand.Rand) pathmath.Vector {
	return cosineSampleHemisphere(pathmath.LocalFrame(si.Normal), rng)
}

func (d *DiffuseMaterial) PDF(si *SurfaceInteraction, wo pathmath.Vector) float64 {
	return cosineHemispherePDF(si.Normal, wo)
}

func (d *DiffuseMaterial) IsDelta() bool { return false }
