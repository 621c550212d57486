package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenpath/pathtracer/pkg/core"
)

func upFacingHit() *HitRecord {
	return &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1,
		FrontFace: true,
	}
}

func TestLambertian_ScatterStaysAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := upFacingHit()
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scattered, ok := lambertian.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray to start at hit point, got %v", scattered.Origin)
		}
		if scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v below the surface", scattered.Direction)
		}
	}
}

func TestLambertian_ScatterIsCosineDistributed(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := upFacingHit()
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// Under a cos/π density, E[cos] = 2/3 and E[1/pdf * cos * brdf] = 1
	const numSamples = 50000
	sumCos := 0.0
	sumEstimate := 0.0
	for i := 0; i < numSamples; i++ {
		scattered, _ := lambertian.Scatter(ray, hit, sampler)
		cos := scattered.Direction.Normalize().Dot(hit.Normal)
		sumCos += cos

		pdf := lambertian.ScatteringPDF(ray, hit, scattered)
		if pdf > 0 {
			sumEstimate += lambertian.BRDF(ray, hit, scattered) * cos / pdf
		}
	}

	if mean := sumCos / numSamples; math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine ~0.667, got %f", mean)
	}
	if mean := sumEstimate / numSamples; math.Abs(mean-1.0) > 1e-3 {
		t.Errorf("Expected reflectance estimate ~1, got %f", mean)
	}
}

func TestLambertian_PDFAndBRDF(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.5, 0.7, 0.9))
	hit := upFacingHit()
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		name        string
		direction   core.Vec3
		expectedPDF float64
		expectedF   float64
	}{
		{"Along normal", core.NewVec3(0, 0, 2), 1 / math.Pi, 1 / math.Pi},
		{"45 degrees", core.NewVec3(1, 0, 1), math.Sqrt2 / 2 / math.Pi, 1 / math.Pi},
		{"Grazing", core.NewVec3(1, 0, 0), 0, 0},
		{"Below surface", core.NewVec3(0, 0, -1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scattered := core.NewRay(hit.Point, tt.direction)
			if pdf := lambertian.ScatteringPDF(ray, hit, scattered); math.Abs(pdf-tt.expectedPDF) > 1e-12 {
				t.Errorf("PDF: expected %f, got %f", tt.expectedPDF, pdf)
			}
			if f := lambertian.BRDF(ray, hit, scattered); math.Abs(f-tt.expectedF) > 1e-12 {
				t.Errorf("BRDF: expected %f, got %f", tt.expectedF, f)
			}
		})
	}
}

func TestLambertian_ColorFromTexture(t *testing.T) {
	checker := NewCheckerTexture(1, core.NewColor(1, 1, 1), core.NewColor(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)

	even := &HitRecord{Point: core.NewVec3(1, 1, 1)}
	odd := &HitRecord{Point: core.NewVec3(-1, 1, 1)}

	if got := lambertian.Color(even); got != core.NewColor(1, 1, 1) {
		t.Errorf("Expected white at %v, got %v", even.Point, got)
	}
	if got := lambertian.Color(odd); got != core.NewColor(0, 0, 0) {
		t.Errorf("Expected black at %v, got %v", odd.Point, got)
	}
	if lambertian.IsSpecular() {
		t.Error("Lambertian should not be specular")
	}
	if !lambertian.Emitted(core.Vec2{}, core.Vec3{}).IsBlack() {
		t.Error("Lambertian should not emit")
	}
}
