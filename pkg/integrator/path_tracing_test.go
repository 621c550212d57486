package integrator

import (
	"math"
	"testing"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// createTwoSphereScene builds the classic red sphere over a large ground sphere under a sky
func createTwoSphereScene(t *testing.T) *Scene {
	t.Helper()
	red := material.NewLambertian(core.NewColor(0.7, 0.1, 0.1))
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

	world, err := geometry.NewBVH([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	})
	if err != nil {
		t.Fatalf("NewBVH: %v", err)
	}

	return &Scene{
		World: world,
		Sky: &Gradient{
			Top:    core.NewColor(0.5, 0.7, 1.0),
			Bottom: core.NewColor(1.0, 1.0, 1.0),
		},
	}
}

// averageColor traces the same ray n times and returns the mean radiance
func averageColor(pt *PathTracer, ray core.Ray, scene *Scene, n int, seed int64) core.Color {
	sampler := core.NewSeededSampler(seed)
	sum := core.Color{}
	for i := 0; i < n; i++ {
		sum = sum.Add(pt.RayColor(ray, scene, sampler))
	}
	return sum.Multiply(1.0 / float64(n))
}

func isFiniteColor(c core.Color) bool {
	for _, v := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	scene := createTwoSphereScene(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	config := DefaultConfig()
	config.MaxDepth = 0
	pt := NewPathTracer(config)

	// With no light and no emitters, a depth-0 path that hits a surface carries nothing
	color := pt.RayColor(ray, scene, core.NewSeededSampler(42))
	if color != (core.Color{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}

	pt = NewPathTracer(DefaultConfig())
	color = averageColor(pt, ray, scene, 200, 42)
	if color.IsBlack() {
		t.Errorf("Expected non-black color at default depth, got %v", color)
	}
}

// TestPathTracingMiss tests that escaping rays return the background
func TestPathTracingMiss(t *testing.T) {
	pt := NewPathTracer(DefaultConfig())
	sampler := core.NewSeededSampler(1)

	scene := createTwoSphereScene(t)
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got, want := pt.RayColor(up, scene, sampler), core.NewColor(0.5, 0.7, 1.0); got != want {
		t.Errorf("Sky straight up: got %v, want %v", got, want)
	}

	horizon := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	want := core.NewColor(0.75, 0.85, 1.0)
	if got := pt.RayColor(horizon, scene, sampler); got.Subtract(want).Length() > 1e-12 {
		t.Errorf("Sky at horizon: got %v, want %v", got, want)
	}

	scene.Sky = nil
	scene.Background = core.NewColor(0.2, 0.3, 0.4)
	if got := pt.RayColor(up, scene, sampler); got != scene.Background {
		t.Errorf("Flat background: got %v, want %v", got, scene.Background)
	}
}

// TestPathTracingTwoSphereScene tests the central camera ray of the two-sphere scene
func TestPathTracingTwoSphereScene(t *testing.T) {
	scene := createTwoSphereScene(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var rec material.HitRecord
	if !scene.World.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected central ray to hit the foreground sphere")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Errorf("Expected hit at t=0.5, got %f", rec.T)
	}

	pt := NewPathTracer(DefaultConfig())
	color := averageColor(pt, ray, scene, 2000, 7)

	if !isFiniteColor(color) {
		t.Fatalf("Expected finite color, got %v", color)
	}
	// Red albedo dominates; nothing can exceed the brightest sky value scaled by the albedo
	if color.X <= color.Y || color.X <= color.Z {
		t.Errorf("Expected red-dominated color, got %v", color)
	}
	if color.X > 0.7 || color.Y > 0.1 || color.Z > 0.1 {
		t.Errorf("Color %v exceeds albedo-weighted sky", color)
	}
	if color.X < 0.1 {
		t.Errorf("Color %v is implausibly dark", color)
	}
}

// TestPathTracingFurnace tests that a diffuse sphere under uniform unit illumination reflects its albedo
func TestPathTracingFurnace(t *testing.T) {
	albedo := 0.5
	scene := &Scene{
		World:      geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewColor(albedo, albedo, albedo))),
		Background: core.NewColor(1, 1, 1),
	}

	pt := NewPathTracer(DefaultConfig())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := averageColor(pt, ray, scene, 20000, 3)

	if math.Abs(color.X-albedo) > 0.02 {
		t.Errorf("Furnace: expected ~%.2f, got %v", albedo, color)
	}
	if color.X != color.Y || color.Y != color.Z {
		t.Errorf("Furnace: expected grey result, got %v", color)
	}
}

// createLitScene places a black sphere on the z axis and a square area light above it
func createLitScene(t *testing.T, albedo core.Color) (*Scene, material.Material) {
	t.Helper()
	emissive := material.NewEmissive(core.NewColor(4, 4, 4))
	light := geometry.NewXZRect(-1, 1, -3, -1, 2, emissive)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(albedo))

	world, err := geometry.NewBVH([]geometry.Hittable{sphere, light})
	if err != nil {
		t.Fatalf("NewBVH: %v", err)
	}
	return &Scene{World: world, Light: light}, emissive
}

// TestPathTracingBlackSphereEnergy tests that an absorbing sphere lit by an area light stays bounded
func TestPathTracingBlackSphereEnergy(t *testing.T) {
	scene, _ := createLitScene(t, core.NewColor(0, 0, 0))
	pt := NewPathTracer(DefaultConfig())

	// Looking down on the top of the sphere from just under the light
	ray := core.NewRay(core.NewVec3(0, 1.5, -2), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(11)
	for i := 0; i < 1000; i++ {
		color := pt.RayColor(ray, scene, sampler)
		if !isFiniteColor(color) {
			t.Fatalf("Sample %d: non-finite color %v", i, color)
		}
		if color != (core.Color{}) {
			t.Fatalf("Sample %d: black sphere reflected %v", i, color)
		}
	}
}

// TestPathTracingDirectLighting tests that a white sphere under an area light is lit mostly by the direct term
func TestPathTracingDirectLighting(t *testing.T) {
	scene, _ := createLitScene(t, core.NewColor(0.8, 0.8, 0.8))
	ray := core.NewRay(core.NewVec3(0, 1.5, -2), core.NewVec3(0, -1, 0))

	withLight := averageColor(NewPathTracer(DefaultConfig()), ray, scene, 4000, 5)
	if !isFiniteColor(withLight) || withLight.X <= 0 {
		t.Fatalf("Expected positive finite radiance, got %v", withLight)
	}

	// Without roulette continuation only the direct term remains
	directOnly := DefaultConfig()
	directOnly.MaxDepth = 0
	direct := averageColor(NewPathTracer(directOnly), ray, scene, 4000, 5)

	if direct.X <= 0 {
		t.Fatalf("Expected a direct contribution, got %v", direct)
	}
	if direct.X < 0.5*withLight.X {
		t.Errorf("Expected direct term to dominate: direct %v, total %v", direct, withLight)
	}
	if withLight.X > 4 {
		t.Errorf("Reflected radiance %v exceeds the light's emission", withLight)
	}
}

// TestPathTracingLightSeenDirectly tests that a camera ray hitting the light returns its emission
func TestPathTracingLightSeenDirectly(t *testing.T) {
	scene, _ := createLitScene(t, core.NewColor(0.8, 0.8, 0.8))
	pt := NewPathTracer(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0.5, 0, -1.5), core.NewVec3(0, 1, 0))
	if got, want := pt.RayColor(ray, scene, core.NewSeededSampler(2)), core.NewColor(4, 4, 4); got != want {
		t.Errorf("Expected emission %v, got %v", want, got)
	}
}

// TestPathTracingSuppressesSampledEmission tests that a bounce reaching the light after direct sampling adds no emission
func TestPathTracingSuppressesSampledEmission(t *testing.T) {
	scene, emissive := createLitScene(t, core.NewColor(0.8, 0.8, 0.8))
	pt := NewPathTracer(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0.5, 0, -1.5), core.NewVec3(0, 1, 0))
	if got := pt.rayColor(ray, scene, 10, core.NewSeededSampler(2), true); got != (core.Color{}) {
		t.Errorf("Expected suppressed emission, got %v", got)
	}
	if geometry.MaterialOf(scene.Light) != emissive {
		t.Errorf("Expected the light's material to be the emissive")
	}
}

// TestPathTracingMirror tests that a perfect mirror reflects the background
func TestPathTracingMirror(t *testing.T) {
	scene := &Scene{
		World:      geometry.NewXYRect(-1, 1, -1, 1, -2, material.NewMetal(core.NewColor(0.9, 0.9, 0.9), 0)),
		Background: core.NewColor(1, 1, 1),
	}
	pt := NewPathTracer(DefaultConfig())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := averageColor(pt, ray, scene, 10000, 9)

	if math.Abs(color.X-0.9) > 0.03 {
		t.Errorf("Mirror: expected ~0.9, got %v", color)
	}
}
