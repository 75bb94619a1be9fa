package bsdf

import (
	"math"
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// PhongMaterial combines a Lambertian diffuse lobe with a specular lobe
// around the mirror-reflected incoming direction. It is not
// energy-normalized: Albedo and Specular are colors, not reflectances in
// [0,1], matching the teacher's un-normalized BRDFs (metal.go scales
// albedo directly rather than deriving a Fresnel-correct reflectance).
// Preserve this.
type PhongMaterial struct {
	Albedo   pathmath.Color
	Specular pathmath.Color
	Exponent float64
}

// NewPhongMaterial creates a Phong material. Exponent must be > 0.
func NewPhongMaterial(albedo, specular pathmath.Color, exponent float64) *PhongMaterial {
	return &PhongMaterial{Albedo: albedo, Specular: specular, Exponent: exponent}
}

// mirrorDirection returns r = -reflect(wi, n), the perfect mirror
// direction of the incoming direction wi.
func mirrorDirection(si *SurfaceInteraction) pathmath.Vector {
	return si.Wi.Reflect(si.Normal).Negate()
}

func (p *PhongMaterial) Eval(si *SurfaceInteraction, wo pathmath.Vector) (pathmath.Color, float64) {
	cosine := math.Max(0, si.Normal.Dot(wo))
	diffuse := p.Albedo.Scale(cosine / math.Pi)

	r := mirrorDirection(si)
	specCos := math.Max(0, r.Dot(wo))
	specular := p.Specular.Scale(math.Pow(specCos, p.Exponent))

	return diffuse.Add(specular), uniformHemispherePDF
}

func (p *PhongMaterial) Sample(si *SurfaceInteraction, rng *rand.Rand) pathmath.Vector {
	return uniformSampleHemisphere(pathmath.LocalFrame(si.Normal), rng)
}

func (p *PhongMaterial) PDF(si *SurfaceInteraction, wo pathmath.Vector) float64 {
	return uniformHemispherePDF
}

func (p *PhongMaterial) IsDelta() bool { return false }
