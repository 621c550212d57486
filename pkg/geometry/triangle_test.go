package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, grey())

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      2.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax, &rec)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if tt.shouldHit && math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
		})
	}
}

func TestTriangle_NormalAndArea(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grey())

	if triangle.Normal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected +Z normal, got %v", triangle.Normal())
	}
	if triangle.Area() != 2 {
		t.Errorf("Expected area 2, got %f", triangle.Area())
	}
	if box := triangle.BoundingBox(); box.Size().Z <= 0 {
		t.Errorf("Expected flat triangle box to be padded, got %v", box)
	}
}

func TestTriangle_RandomSampleInside(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), grey())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	var centroid core.Vec3
	const numSamples = 20000
	for i := 0; i < numSamples; i++ {
		p := triangle.RandomSample(core.Vec3{}, sampler)
		if p.X < -1e-12 || p.Y < -1e-12 || p.X+p.Y > 1+1e-12 || p.Z != 0 {
			t.Fatalf("Sample %v outside triangle", p)
		}
		centroid = centroid.Add(p)
	}

	// Uniform samples average to the centroid (1/3, 1/3)
	centroid = centroid.Multiply(1.0 / numSamples)
	if math.Abs(centroid.X-1.0/3) > 0.01 || math.Abs(centroid.Y-1.0/3) > 0.01 {
		t.Errorf("Expected centroid near (1/3, 1/3), got %v", centroid)
	}
}

func TestTriangle_PDFValue(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, 2, -1), core.NewVec3(1, 2, -1), core.NewVec3(0, 2, 1), grey())
	origin := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 1, 0)

	// Straight up: distance 2, cosine 1
	expected := 4.0 / triangle.Area()
	if pdf := triangle.PDFValue(origin, dir); math.Abs(pdf-expected) > 1e-9 {
		t.Errorf("Expected PDF %f, got %f", expected, pdf)
	}
	if pdf := triangle.PDFValue(origin, core.NewVec3(0, -1, 0)); pdf != 0 {
		t.Errorf("Expected zero PDF when missing, got %f", pdf)
	}
}
