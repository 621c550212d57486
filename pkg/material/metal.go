package material

import (
	"github.com/lumenpath/pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Color // Metal color
	Fuzzness float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the incoming ray, perturbed by the fuzz radius.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (core.Ray, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	scattered := core.NewRay(hit.Point, reflected)
	return scattered, scattered.Direction.Dot(hit.Normal) > 0
}

// ScatteringPDF is zero for a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// BRDF is unused for specular surfaces and always 1
func (m *Metal) BRDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1
}

// Emitted returns black
func (m *Metal) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return black
}

// Color returns the metal tint
func (m *Metal) Color(hit *HitRecord) core.Color {
	return m.Albedo
}

// IsSpecular returns true
func (m *Metal) IsSpecular() bool {
	return true
}

func (m *Metal) isMaterial() {}
