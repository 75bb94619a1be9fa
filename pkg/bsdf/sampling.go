package bsdf

import (
	"math"
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// cosineSampleHemisphere draws a cosine-weighted direction around the
// normal carried by the surface interaction's local frame.
func cosineSampleHemisphere(frame pathmath.Frame, rng *rand.Rand) pathmath.Vector {
	xi1, xi2 := rng.Float64(), rng.Float64()
	r := math.Sqrt(xi1)
	phi := 2 * math.Pi * xi2
	local := pathmath.NewVector(math.Cos(phi)*r, math.Sin(phi)*r, math.Sqrt(math.Max(0, 1-xi1)))
	return frame.ToWorld(local)
}

// uniformSampleHemisphere draws a direction uniformly over the hemisphere
// around the normal carried by the surface interaction's local frame.
func uniformSampleHemisphere(frame pathmath.Frame, rng *rand.Rand) pathmath.Vector {
	xi1, xi2 := rng.Float64(), rng.Float64()
	r := math.Sqrt(1 - xi1*xi1)
	phi := 2 * math.Pi * xi2
	local := pathmath.NewVector(math.Cos(phi)*r, math.Sin(phi)*r, xi1)
	return frame.ToWorld(local)
}

// cosineHemispherePDF is (n.wo)/pi, the density of cosineSampleHemisphere.
func cosineHemispherePDF(n, wo pathmath.Vector) float64 {
	return math.Max(0, n.Dot(wo)) / math.Pi
}

// uniformHemispherePDF is the constant density of uniformSampleHemisphere.
const uniformHemispherePDF = 1.0 / (2.0 * math.Pi)
