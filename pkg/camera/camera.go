// Package camera implements the pinhole camera that maps sensor pixel
// coordinates to jittered world-space primary rays.
package camera

import (
	"math"
	"math/rand"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
	"github.com/kavanaugh-render/pathtracer/pkg/sensor"
)

// PinholeCamera sits at the world origin looking down -z. Construction
// takes the field of view in degrees and converts it to radians once, the
// way the teacher's scene presets convert a CameraConfig.VFov field.
type PinholeCamera struct {
	Sensor     *sensor.Sensor
	FOVRadians float64
	Origin     pathmath.Point
}

// NewPinholeCamera creates a camera for the given sensor and field of
// view in degrees.
func NewPinholeCamera(s *sensor.Sensor, fovDegrees float64) *PinholeCamera {
	return &PinholeCamera{
		Sensor:     s,
		FOVRadians: fovDegrees * math.Pi / 180.0,
		Origin:     pathmath.NewPoint(0, 0, 0),
	}
}

// SampleRay produces a jittered primary ray through pixel (i,j). The
// second return value is false when (i,j) is outside the sensor, in
// which case the caller must not invoke the integrator.
func (c *PinholeCamera) SampleRay(i, j int, rng *rand.Rand) (pathmath.Ray, bool) {
	if !c.Sensor.Inside(i, j) {
		return pathmath.Ray{}, false
	}

	width := float64(c.Sensor.Width)
	height := float64(c.Sensor.Height)
	aspect := width / height

	xi1, xi2 := rng.Float64(), rng.Float64()
	u := (float64(i) + xi1) / (width + 1)
	v := (float64(j) + xi2) / (height + 1)

	halfFOV := c.FOVRadians / 2
	x := (2*u - 1) * aspect * math.Tan(halfFOV)
	y := (1 - 2*v) * math.Tan(halfFOV)

	direction := pathmath.NewVector(x, y, -1).Normalize()
	return pathmath.NewRay(c.Origin, direction), true
}
