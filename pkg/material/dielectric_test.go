package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenpath/pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.Ray{Origin: core.NewVec3(-1, 1, 0), Direction: rayDirection}

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	if glass.Color(hit) != core.NewColor(1, 1, 1) {
		t.Errorf("Expected clear glass to be white, got %v", glass.Color(hit))
	}
	if !glass.IsSpecular() {
		t.Error("Dielectric should be specular")
	}

	// Try many different random seeds to ensure we get both behaviours
	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		scattered, ok := glass.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}

		direction := scattered.Direction.Normalize()
		if direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
			// Snell: sin(out) = sin(45°) / 1.5
			expectedSin := math.Sin(math.Pi/4) / 1.5
			if math.Abs(direction.X-expectedSin) > 1e-9 {
				t.Errorf("Expected refracted sin %f, got %f", expectedSin, direction.X)
			}
		}
	}

	if !hasReflection {
		t.Error("Expected at least one Fresnel reflection")
	}
	if !hasRefraction {
		t.Error("Expected at least one refraction")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at a steep angle from inside
	ray := core.NewRay(core.NewVec3(-1, -0.2, 0), core.NewVec3(1, 0.2, 0))
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0), // Flipped to face the ray
		FrontFace: false,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 100; i++ {
		scattered, _ := glass.Scatter(ray, hit, sampler)
		if scattered.Direction.Y >= 0 {
			t.Fatalf("Expected total internal reflection back into the glass, got %v", scattered.Direction)
		}
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence on glass reflects about 4%
	if r := Reflectance(1.0, 1.0/1.5); math.Abs(r-0.04) > 1e-9 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", r)
	}
	// Grazing incidence reflects everything
	if r := Reflectance(0.0, 1.0/1.5); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Expected 1 at grazing incidence, got %f", r)
	}
}
