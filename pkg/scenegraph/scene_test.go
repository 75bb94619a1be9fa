package scenegraph

import (
	"testing"

	"github.com/kavanaugh-render/pathtracer/pkg/bsdf"
	"github.com/kavanaugh-render/pathtracer/pkg/geom"
	"github.com/kavanaugh-render/pathtracer/pkg/light"
	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

func TestNewSceneHasDefaultBackground(t *testing.T) {
	s := NewScene()
	want := pathmath.NewColor(0.2, 0.2, 0.2)
	if s.Background != want {
		t.Errorf("default background = %v, want %v", s.Background, want)
	}
}

func TestClosestHitMissesEmptyScene(t *testing.T) {
	s := NewScene()
	ray := pathmath.NewRay(pathmath.NewPoint(0, 0, 0), pathmath.NewVector(0, 0, -1))
	if _, ok := s.ClosestHit(ray); ok {
		t.Error("expected miss on empty scene")
	}
}

func TestClosestHitKeepsNearestShape(t *testing.T) {
	s := NewScene()
	near := geom.NewSphere(pathmath.NewPoint(0, 0, -5), 1, bsdf.NewBlackBody())
	far := geom.NewSphere(pathmath.NewPoint(0, 0, -20), 1, bsdf.NewBlackBody())
	// Insert far first, to make sure distance (not insertion order) wins
	// when the distances actually differ.
	s.AddShape(far)
	s.AddShape(near)

	ray := pathmath.NewRay(pathmath.NewPoint(0, 0, 0), pathmath.NewVector(0, 0, -1))
	si, ok := s.ClosestHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if si.Material != near.Material {
		t.Error("ClosestHit did not return the nearer shape's interaction")
	}
}

func TestClosestHitBreaksTiesByInsertionOrder(t *testing.T) {
	s := NewScene()
	first := geom.NewInfinitePlane(pathmath.NewPoint(0, 0, -5), pathmath.NewVector(0, 0, 1), bsdf.NewBlackBody())
	second := geom.NewInfinitePlane(pathmath.NewPoint(0, 0, -5), pathmath.NewVector(0, 0, 1), bsdf.NewDiffuseMaterial(pathmath.White()))
	s.AddShape(first)
	s.AddShape(second)

	ray := pathmath.NewRay(pathmath.NewPoint(0, 0, 0), pathmath.NewVector(0, 0, -1))
	si, ok := s.ClosestHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if si.Material != first.Material {
		t.Error("ClosestHit should keep the first-inserted shape on an exact tie")
	}
}

func TestAddLightAppendsEmitter(t *testing.T) {
	s := NewScene()
	pl := light.NewPointLight(pathmath.NewPoint(1, 2, 3), pathmath.White())
	s.AddLight(pl)

	if len(s.Emitters) != 1 || s.Emitters[0] != light.Emitter(pl) {
		t.Errorf("Emitters = %v, want [%v]", s.Emitters, pl)
	}
}
