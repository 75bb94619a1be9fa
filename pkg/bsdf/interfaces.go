// Package bsdf implements the reflectance models (BSDFs) and the
// SurfaceInteraction record produced by closest-hit queries. Grounded on
// the teacher's pkg/material/interfaces.go and pkg/material/lambertian.go,
// generalized to the four-method Eval/Sample/PDF/IsDelta contract the
// spec requires (the teacher splits direction-generation (Scatter) from
// value-evaluation (EvaluateBRDF); this renderer's integrator needs both
// in one call at a chosen outgoing direction, so they are unified here).
package bsdf

import (
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/light"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// SurfaceInteraction is an immutable record produced by a closest-hit
// query against the scene.
type SurfaceInteraction struct {
	Position pathmath.Point
	Normal   pathmath.Vector
	T        float64
	Material Material
	Wi       pathmath.Vector // direction from the hit point back toward the ray origin
	Emitter  light.Emitter   // always nil in the current surface-attachment model
}

// Material is the BSDF contract every reflectance model implements.
type Material interface {
	// Eval returns the BSDF value times the foreshortening factor for wo,
	// and the density Sample would assign to wo.
	Eval(si *SurfaceInteraction, wo pathmath.Vector) (radiance pathmath.Color, pdf float64)

	// Sample draws a direction according to this material's PDF.
	Sample(si *SurfaceInteraction, rng *rand.Rand) pathmath.Vector

	// PDF returns the probability density (per unit solid angle) Sample
	// would assign to wo.
	PDF(si *SurfaceInteraction, wo pathmath.Vector) float64

	// IsDelta reports whether scattering is a Dirac distribution.
	// Reserved: every material implemented here returns false.
	IsDelta() bool
}
