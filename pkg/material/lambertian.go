package material

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	if albedoTexture == nil {
		panic("material: lambertian needs a color source")
	}
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter offsets the normal by a uniform unit vector, which yields a cosine-distributed direction
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (core.Ray, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.NewRay(hit.Point, scatterDirection), true
}

// ScatteringPDF is cos(θ) / π for the scattered direction
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// BRDF is the constant 1/π over the upper hemisphere
func (l *Lambertian) BRDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	if hit.Normal.Dot(scattered.Direction) <= 0 {
		return 0
	}
	return 1.0 / math.Pi
}

// Emitted returns black
func (l *Lambertian) Emitted(uv core.Vec2, point core.Vec3) core.Color {
	return black
}

// Color samples the albedo at the hit's texture coordinates
func (l *Lambertian) Color(hit *HitRecord) core.Color {
	return l.Albedo.Evaluate(hit.UV, hit.Point)
}

// IsSpecular returns false
func (l *Lambertian) IsSpecular() bool {
	return false
}

func (l *Lambertian) isMaterial() {}
