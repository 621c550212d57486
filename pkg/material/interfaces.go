package material

import (
	"github.com/lumenpath/pathtracer/pkg/core"
)

// Material describes how a surface responds to light.
// The set of implementations is closed to this package.
type Material interface {
	// Scatter samples an outgoing ray at the hit, or reports absorption
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (core.Ray, bool)

	// ScatteringPDF is the solid-angle density with which Scatter produces scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	// BRDF is the scalar reflectance function for the pair of directions;
	// the surface color is applied separately via Color
	BRDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance the surface emits at the given texture coordinates and point
	Emitted(uv core.Vec2, point core.Vec3) core.Color

	// Color returns the surface albedo at the hit
	Color(hit *HitRecord) core.Color

	// IsSpecular reports whether scattering is a delta distribution
	IsSpecular() bool

	isMaterial()
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

var black = core.Color{}
