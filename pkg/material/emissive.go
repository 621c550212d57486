package material

import (
	"github.com/lumenpath/pathtracer/pkg/core"
)

// Emissive represents a light-emitting material. It emits on both faces.
type Emissive struct {
	Emission ColorSource // Emitted radiance
}

// NewEmissive creates a new emissive material with uniform radiance
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates an emissive material whose radiance varies over the surface
func NewTexturedEmissive(emission ColorSource) *Emissive {
	if emission == nil {
		panic("material: emissive needs a color source")
	}
	return &Emissive{Emission: emission}
}

// Scatter absorbs every incoming ray
func (e *Emissive) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (core.Ray, bool) {
	return core.Ray{}, false
}

// ScatteringPDF is zero since nothing scatters
func (e *Emissive) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// BRDF is zero since lights don't reflect
func (e *Emissive) BRDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission at the given point
func (e *Emissive) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return e.Emission.Evaluate(uv, point)
}

// Color returns black
func (e *Emissive) Color(hit *HitRecord) core.Color {
	return black
}

// IsSpecular returns false
func (e *Emissive) IsSpecular() bool {
	return false
}

func (e *Emissive) isMaterial() {}
