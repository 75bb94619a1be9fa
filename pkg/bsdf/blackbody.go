package bsdf

import (
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// BlackBody absorbs all incident light. Eval returns zero radiance but
// still reports the diffuse PDF so the estimator never divides by zero;
// preserve this — it is intentional, not a bug (see the integrator's
// indirect-bounce throughput update).
type BlackBody struct{}

// NewBlackBody creates a black-body material.
func NewBlackBody() *BlackBody { return &BlackBody{} }

func (b *BlackBody) Eval(si *SurfaceInteraction, wo pathmath.Vector) (pathmath.Color, float64) {
	return pathmath.Black(), cosineHemispherePDF(si.Normal, wo)
}

func (b *BlackBody) Sample(si *SurfaceInteraction, rng *rand.Rand) pathmath.Vector {
	return cosineSampleHemisphere(pathmath.LocalFrame(si.Normal), rng)
}

func (b *BlackBody) PDF(si *SurfaceInteraction, wo pathmath.Vector) float64 {
	return cosineHemispherePDF(si.Normal, wo)
}

func (b *BlackBody) IsDelta() bool { return false }
