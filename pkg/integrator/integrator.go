package integrator

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, scene *Scene, sampler core.Sampler) core.Color
}

// Scene is everything the integrator needs to trace paths
type Scene struct {
	World      geometry.Hittable // Usually a BVH over every object, the light included
	Light      geometry.Hittable // Optional emitter sampled for direct lighting
	Background core.Color        // Radiance for rays that escape
	Sky        *Gradient         // Optional sky replacing Background
}

// Gradient blends two colors by the vertical component of a ray direction
type Gradient struct {
	Top    core.Color
	Bottom core.Color
}

// background returns the radiance of an escaping ray
func (s *Scene) background(ray core.Ray) core.Color {
	if s.Sky == nil {
		return s.Background
	}

	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return s.Sky.Bottom.Multiply(1.0 - t).Add(s.Sky.Top.Multiply(t))
}

// Config controls path termination and numeric tolerances
type Config struct {
	MaxDepth                   int     // Maximum number of bounces
	RussianRouletteProbability float64 // Chance a path continues at each bounce
	PDFEpsilon                 float64 // Densities at or below this are treated as zero
	TMin                       float64 // Ray offset to avoid self-intersection
	ShadowEpsilon              float64 // Tolerance on reaching the sampled light point
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxDepth:                   50,
		RussianRouletteProbability: 0.8,
		PDFEpsilon:                 1e-6,
		TMin:                       0.001,
		ShadowEpsilon:              1e-4,
	}
}
