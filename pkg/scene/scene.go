package scene

import (
	"fmt"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/integrator"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Objects        []geometry.Hittable // Objects in the scene, the light included
	Light          geometry.Hittable   // Emitter sampled for direct lighting, or nil
	Background     core.Color          // Radiance for rays that escape
	Sky            *integrator.Gradient
	SamplingConfig SamplingConfig
}

// SamplingConfig holds the recommended render settings for a scene
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// newScene creates an empty scene with the given camera and sampling settings
func newScene(cameraConfig renderer.CameraConfig, sampling SamplingConfig) *Scene {
	cameraConfig.AspectRatio = float64(sampling.Width) / float64(sampling.Height)
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Objects:        make([]geometry.Hittable, 0),
		SamplingConfig: sampling,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// SetLight adds an emitter to the scene and makes it the light sampled for direct lighting.
// A scene samples one light; a second call replaces the sampled light but keeps the first visible.
func (s *Scene) SetLight(light geometry.Hittable) {
	s.Light = light
	s.Objects = append(s.Objects, light)
}

// AddRectLight adds an axis-aligned rectangular area light to the scene
func (s *Scene) AddRectLight(rect *geometry.Rect) *geometry.Rect {
	s.SetLight(rect)
	return rect
}

// Build constructs the acceleration structure and returns the scene the integrator renders
func (s *Scene) Build(logger core.Logger) (*integrator.Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	bvh, err := geometry.NewBVH(s.Objects)
	if err != nil {
		return nil, fmt.Errorf("building scene BVH: %w", err)
	}

	stats := bvh.Stats()
	logger.Printf("BVH built over %d objects (%d primitives): %d nodes, %d leaves, max depth %d, average leaf depth %.1f\n",
		len(s.Objects), s.GetPrimitiveCount(), stats.Nodes, stats.Leaves, stats.MaxDepth, stats.AverageLeafDepth)

	return &integrator.Scene{
		World:      bvh,
		Light:      s.Light,
		Background: s.Background,
		Sky:        s.Sky,
	}, nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, object := range s.Objects {
		count += countPrimitives(object)
	}
	return count
}

// countPrimitives counts primitives in a single object, looking through meshes and decorators
func countPrimitives(object geometry.Hittable) int {
	switch obj := object.(type) {
	case *geometry.TriangleMesh:
		return obj.TriangleCount()
	case *geometry.Box:
		return 6
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	case *geometry.HittableList:
		count := 0
		for _, member := range obj.Objects {
			count += countPrimitives(member)
		}
		return count
	default:
		return 1
	}
}
