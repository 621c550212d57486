package integrator

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// PathTracer implements unidirectional path tracing with next-event estimation
// toward a single designated light and Russian roulette termination
type PathTracer struct {
	config Config
}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// Config returns the integrator's settings
func (pt *PathTracer) Config() Config {
	return pt.config
}

// RayColor computes the color for a single camera ray
func (pt *PathTracer) RayColor(ray core.Ray, scene *Scene, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, scene, pt.config.MaxDepth, sampler, false)
}

// rayColor traces one path vertex. sampledLight is set when the previous vertex
// already accounted for the designated light through direct sampling.
func (pt *PathTracer) rayColor(ray core.Ray, scene *Scene, depth int, sampler core.Sampler, sampledLight bool) core.Color {
	var rec material.HitRecord
	if !scene.World.Hit(ray, pt.config.TMin, math.Inf(1), &rec) {
		return scene.background(ray)
	}

	emitted := rec.Material.Emitted(rec.UV, rec.Point)
	if sampledLight && scene.Light != nil && rec.Material == geometry.MaterialOf(scene.Light) {
		emitted = core.Color{}
	}

	scattered, ok := rec.Material.Scatter(ray, &rec, sampler)
	if !ok {
		return emitted
	}

	color := rec.Material.Color(&rec)

	if rec.Material.IsSpecular() {
		if pt.terminate(depth, sampler) {
			return emitted
		}
		incoming := pt.rayColor(scattered, scene, depth-1, sampler, false)
		return emitted.Add(color.MultiplyVec(incoming).Multiply(1.0 / pt.config.RussianRouletteProbability))
	}

	direct := pt.directLighting(ray, scene, &rec, color, sampler)

	if pt.terminate(depth, sampler) {
		return emitted.Add(direct)
	}

	indirect := pt.indirectLighting(ray, scattered, scene, &rec, color, depth, sampler)
	return emitted.Add(direct).Add(indirect)
}

// terminate applies the depth limit and the Russian roulette draw
func (pt *PathTracer) terminate(depth int, sampler core.Sampler) bool {
	return depth <= 0 || sampler.Get1D() > pt.config.RussianRouletteProbability
}

// directLighting samples a point on the designated light and weights its emission
// by the BRDF, the cosine at the surface and the light's solid-angle density
func (pt *PathTracer) directLighting(rayIn core.Ray, scene *Scene, rec *material.HitRecord, color core.Color, sampler core.Sampler) core.Color {
	if scene.Light == nil {
		return core.Color{}
	}

	lightPoint := scene.Light.RandomSample(rec.Point, sampler)
	toLight := lightPoint.Subtract(rec.Point)
	if toLight.NearZero() {
		return core.Color{}
	}

	cosine := rec.Normal.Dot(toLight.Normalize())
	if cosine <= 0 {
		return core.Color{}
	}

	pdf := scene.Light.PDFValue(rec.Point, toLight)
	if pdf <= pt.config.PDFEpsilon {
		return core.Color{}
	}

	// The shadow ray spans exactly t in [0, 1]; the first thing it hits must be the light point
	shadowRay := core.NewRay(rec.Point, toLight)
	var shadowRec material.HitRecord
	if !scene.World.Hit(shadowRay, pt.config.TMin, math.Inf(1), &shadowRec) || shadowRec.T < 1-pt.config.ShadowEpsilon {
		return core.Color{}
	}

	radiance := shadowRec.Material.Emitted(shadowRec.UV, shadowRec.Point)
	brdf := rec.Material.BRDF(rayIn, rec, shadowRay)
	return color.MultiplyVec(radiance).Multiply(brdf * cosine / pdf)
}

// indirectLighting continues the path along the material's sampled direction
func (pt *PathTracer) indirectLighting(rayIn, scattered core.Ray, scene *Scene, rec *material.HitRecord, color core.Color, depth int, sampler core.Sampler) core.Color {
	pdf := rec.Material.ScatteringPDF(rayIn, rec, scattered)
	if pdf <= pt.config.PDFEpsilon {
		return core.Color{}
	}

	cosine := math.Max(0, rec.Normal.Dot(scattered.Direction.Normalize()))
	brdf := rec.Material.BRDF(rayIn, rec, scattered)

	incoming := pt.rayColor(scattered, scene, depth-1, sampler, scene.Light != nil)
	weight := brdf * cosine / pdf / pt.config.RussianRouletteProbability
	return color.MultiplyVec(incoming).Multiply(weight)
}
