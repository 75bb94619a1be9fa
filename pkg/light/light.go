// Package light implements the scene's emitter model. The spec's closed
// emitter variant set currently has one member, PointLight; Emitter is
// kept as an interface (rather than a concrete point-light struct used
// everywhere) because SurfaceInteraction threads an optional emitter
// reference for a future area-light surface attachment.
package light

import "github.com/kavanaugh-render/pathtracer/pkg/pathmath"

// Sample is the (radiance, position, weight) triple an emitter hands back.
// Weight is an analytic factor already folded into Radiance by the
// emitter itself (always 1.0 for the point lights implemented here).
type Sample struct {
	Radiance pathmath.Color
	Position pathmath.Point
	Weight   float64
}

// Emitter is a light source that can be sampled for direct lighting.
type Emitter interface {
	Sample() Sample
}

// PointLight is a zero-size emitter at a fixed position with a constant
// intensity. It is never attached to a surface, so any SurfaceInteraction
// produced by the shapes in this renderer always has a nil Emitter field
// — that field exists for a future area-light surface attachment.
type PointLight struct {
	Position  pathmath.Point
	Intensity pathmath.Color
}

// NewPointLight creates a point light at the given position with the
// given RGB intensity.
func NewPointLight(position pathmath.Point, intensity pathmath.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample returns this light's (radiance, position, weight) triple. The
// weight is always 1.0: a point light carries no sampling density to
// divide out, per the renderer's direct-lighting contract.
func (p *PointLight) Sample() Sample {
	return Sample{Radiance: p.Intensity, Position: p.Position, Weight: 1.0}
}
