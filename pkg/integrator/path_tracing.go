// Package integrator implements the unidirectional Monte-Carlo path
// tracer that turns a primary ray into a radiance estimate. Grounded on
// the teacher's pkg/integrator/path_tracing.go PathTracingIntegrator
// (running throughput, Russian-roulette termination, material
// scattering loop), rewritten as the spec's flat iterative loop instead
// of the teacher's recursive one, with direct lighting via next-event
// estimation and without the teacher's bidirectional/MIS machinery —
// both out of scope here.
package integrator

import (
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
	"github.com/kavanaugh-render/pathtracer/pkg/scenegraph"
)

// originEpsilon offsets new shadow and bounce ray origins off the
// surface they were spawned from, avoiding self-intersection.
const originEpsilon = 1e-3

// PathIntegrator estimates radiance along a primary ray by unidirectional
// path tracing with next-event estimation and Russian-roulette
// termination.
type PathIntegrator struct {
	// MaxBounce caps the number of scattering events traced per ray.
	MaxBounce int
	// RussianRoulette is the bounce index after which roulette
	// termination kicks in.
	RussianRoulette int
}

// NewPathIntegrator creates a path integrator with the given bounce
// budget and roulette threshold.
func NewPathIntegrator(maxBounce, russianRoulette int) *PathIntegrator {
	return &PathIntegrator{MaxBounce: maxBounce, RussianRoulette: russianRoulette}
}

// Li estimates the radiance arriving along ray from scene.
func (pt *PathIntegrator) Li(ray pathmath.Ray, scene *scenegraph.Scene, rng *rand.Rand) pathmath.Color {
	throughput := pathmath.White()
	color := pathmath.Black()

	for bounce := 0; bounce < pt.MaxBounce; bounce++ {
		si, ok := scene.ClosestHit(ray)
		if !ok {
			color = color.Add(throughput.Mul(scene.Background))
			break
		}

		if si.Emitter != nil {
			sample := si.Emitter.Sample()
			color = color.Add(throughput.Mul(sample.Radiance))
		}

		color = color.Add(throughput.Mul(pt.directLighting(si, scene)))

		wo := si.Material.Sample(si, rng)
		radiance, pdf := si.Material.Eval(si, wo)
		throughput = throughput.Mul(radiance).Scale(1.0 / pdf)

		ray = pathmath.NewRay(si.Position.AddScaled(wo, originEpsilon), wo)

		if bounce > pt.RussianRoulette {
			q := throughput.MaxComponent()
			if rng.Float64() > q {
				break
			}
			throughput = throughput.Scale(1.0 / q)
		}
	}

	return color
}

// directLighting performs next-event estimation: every light in the
// scene is sampled once and its contribution added if unshadowed. It
// does not divide by distance or by the BSDF's sampling density — a
// direct unshadowed product of BSDF value and light radiance, by
// design.
func (pt *PathIntegrator) directLighting(si *bsdf.SurfaceInteraction, scene *scenegraph.Scene) pathmath.Color {
	total := pathmath.Black()

	for _, emitter := range scene.Emitters {
		sample := emitter.Sample()
		wo := sample.Position.Subtract(si.Position).Normalize()

		shadowRay := pathmath.NewRay(si.Position.AddScaled(wo, originEpsilon), wo)
		if _, hit := scene.ClosestHit(shadowRay); hit {
			continue
		}

		radiance, _ := si.Material.Eval(si, wo)
		total = total.Add(radiance.Mul(sample.Radiance))
	}

	return total
}
