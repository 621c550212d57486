package material

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64    // Index of refraction (e.g., 1.5 for glass)
	Tint            core.Color // Transmission color, white for clear glass
}

// NewDielectric creates a new clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: core.NewColor(1, 1, 1)}
}

// NewTintedDielectric creates a dielectric that filters transmitted light
func NewTintedDielectric(refractiveIndex float64, tint core.Color) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: tint}
}

// Scatter chooses between reflection and refraction by Schlick's reflectance
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (core.Ray, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Ray is entering the material (from air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // Ray is exiting the material (from glass to air)
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.NewRay(hit.Point, direction), true
}

// ScatteringPDF is zero for a delta distribution
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// BRDF is unused for specular surfaces and always 1
func (d *Dielectric) BRDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1
}

// Emitted returns black
func (d *Dielectric) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return black
}

// Color returns the tint
func (d *Dielectric) Color(hit *HitRecord) core.Color {
	return d.Tint
}

// IsSpecular returns true
func (d *Dielectric) IsSpecular() bool {
	return true
}

func (d *Dielectric) isMaterial() {}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
