package dispatch

import (
	"testing"

	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/camera"
	"github.com/kavanaugh-render/pathtracer/pkg/geom"
	"github.com/kavanaugh-render/pathtracer/pkg/integrator"
	"github.com/kavanaugh-render/pathtracer/pkg/light"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
	"github.com/kavanaugh-render/pathtracer/pkg/scenegraph"
	"github.com/kavanaugh-render/pathtracer/pkg/sensor"
)

func buildTestScene() *scenegraph.Scene {
	scene := scenegraph.NewScene()
	scene.AddShape(geom.NewSphere(pathmath.NewPoint(0, 0, -5), 1, bsdf.NewDiffuseMaterial(pathmath.NewColor(0.8, 0.2, 0.2))))
	scene.AddLight(light.NewPointLight(pathmath.NewPoint(5, 5, 0), pathmath.NewColor(20, 20, 20)))
	return scene
}

func TestRenderFillsEveryPixel(t *testing.T) {
	sens := sensor.NewSensor(8, 6)
	cam := camera.NewPinholeCamera(sens, 60)
	scene := buildTestScene()
	pt := integrator.NewPathIntegrator(4, 2)

	Render(sens, cam, scene, pt, 4, 2)

	for j := 0; j < sens.Height; j++ {
		for i := 0; i < sens.Width; i++ {
			// Every pixel must have been visited by some worker;
			// background color is non-black so an untouched pixel would
			// read as pure black, which is distinguishable here.
			if got := sens.Pixel(i, j).Color(); got == pathmath.Black() {
				t.Errorf("pixel (%d,%d) is black, want it written by a worker", i, j)
			}
		}
	}
}

func TestRenderPartitionsDisjointChunksCoveringAllPixels(t *testing.T) {
	sens := sensor.NewSensor(5, 3)
	cam := camera.NewPinholeCamera(sens, 60)
	scene := scenegraph.NewScene()
	pt := integrator.NewPathIntegrator(1, 1)

	Render(sens, cam, scene, pt, 1, 4)

	for _, p := range sens.Pixels() {
		got := p.Color()
		if got != scene.Background {
			t.Errorf("pixel (%d,%d) = %v, want background %v (empty scene, every ray misses)", p.I, p.J, got, scene.Background)
		}
	}
}

func TestRenderWithZeroOrNegativeWorkersFallsBackToDefault(t *testing.T) {
	sens := sensor.NewSensor(4, 4)
	cam := camera.NewPinholeCamera(sens, 60)
	scene := scenegraph.NewScene()
	pt := integrator.NewPathIntegrator(1, 1)

	// Must not panic or deadlock when workers <= 0.
	stats := Render(sens, cam, scene, pt, 1, 0)
	if stats.Workers <= 0 {
		t.Errorf("Workers = %d, want > 0 after falling back to a default", stats.Workers)
	}
	Render(sens, cam, scene, pt, 1, -3)
}

func TestRenderStatsReportsTotalsForAFixedSampleBudget(t *testing.T) {
	sens := sensor.NewSensor(5, 3)
	cam := camera.NewPinholeCamera(sens, 60)
	scene := buildTestScene()
	pt := integrator.NewPathIntegrator(2, 1)

	const spp = 8
	stats := Render(sens, cam, scene, pt, spp, 3)

	wantPixels := 5 * 3
	if stats.TotalPixels != wantPixels {
		t.Errorf("TotalPixels = %d, want %d", stats.TotalPixels, wantPixels)
	}
	if stats.SamplesPerPixel != spp {
		t.Errorf("SamplesPerPixel = %d, want %d", stats.SamplesPerPixel, spp)
	}
	if stats.Workers != 3 {
		t.Errorf("Workers = %d, want 3", stats.Workers)
	}
	wantSamples := wantPixels * spp
	if stats.TotalSamples != wantSamples {
		t.Errorf("TotalSamples = %d, want %d (every pixel is in-bounds, so none are discarded)", stats.TotalSamples, wantSamples)
	}
}
