package camera

import (
	"math/rand"
	"testing"

	"github.com/kavanaugh-render/pathtracer/pkg/sensor"
)

func TestSampleRayOutOfBoundsReturnsFalse(t *testing.T) {
	s := sensor.NewSensor(200, 100)
	cam := NewPinholeCamera(s, 45)
	rng := rand.New(rand.NewSource(1))

	if _, ok := cam.SampleRay(-1, 0, rng); ok {
		t.Error("SampleRay(-1,0) should be out of bounds")
	}
	if _, ok := cam.SampleRay(200, 0, rng); ok {
		t.Error("SampleRay(200,0) should be out of bounds")
	}
	if _, ok := cam.SampleRay(0, 100, rng); ok {
		t.Error("SampleRay(0,100) should be out of bounds")
	}
}

func TestSampleRayCentralPixelLooksDownNegativeZ(t *testing.T) {
	s := sensor.NewSensor(200, 100)
	cam := NewPinholeCamera(s, 45)
	rng := rand.New(rand.NewSource(1))

	ray, ok := cam.SampleRay(100, 50, rng)
	if !ok {
		t.Fatal("expected central pixel to be in bounds")
	}
	if ray.Origin != cam.Origin {
		t.Errorf("origin = %v, want %v", ray.Origin, cam.Origin)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("central ray direction.Z = %f, want < 0", ray.Direction.Z)
	}
}

func TestSampleRayJittersAcrossCalls(t *testing.T) {
	s := sensor.NewSensor(10, 10)
	cam := NewPinholeCamera(s, 60)
	rng := rand.New(rand.NewSource(7))

	first, _ := cam.SampleRay(5, 5, rng)
	second, _ := cam.SampleRay(5, 5, rng)
	if first.Direction == second.Direction {
		t.Error("expected successive samples of the same pixel to differ due to jitter")
	}
}
