package geometry

import (
	"math"
	"testing"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

func TestBox_Hit_AxisAligned(t *testing.T) {
	// Create a 2x2x2 box centered at origin
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), grey())

	tests := []struct {
		name           string
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits front face",
			ray:            core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Ray hits left face",
			ray:            core.NewRay(core.NewVec3(-5, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:           "Ray from inside hits top",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			shouldHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:      "Ray misses",
			ray:       core.NewRay(core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			isHit := box.Hit(tt.ray, 0.001, math.Inf(1), &rec)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
			if rec.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
		})
	}
}

func TestBox_IsNotALight(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), grey())
	origin := core.NewVec3(5, 5, 5)
	if pdf := box.PDFValue(origin, core.NewVec3(-1, -1, -1)); pdf != 0 {
		t.Errorf("Expected zero PDF, got %f", pdf)
	}
	if got := box.RandomSample(origin, nil); got != origin {
		t.Errorf("Expected origin back, got %v", got)
	}
	if box.CenterPoint(core.AxisY) != 0.5 {
		t.Errorf("Expected Y centroid 0.5, got %f", box.CenterPoint(core.AxisY))
	}
}
