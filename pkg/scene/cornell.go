package scene

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/material"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates a classic Cornell box scene with rect walls, two boxes and area lighting
func NewCornellScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt: core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	})

	// Create materials
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // right wall
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // left wall
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // back wall
	)

	// Ceiling light, just under the ceiling so it does not coincide with it
	s.AddRectLight(geometry.NewXZRect(213, 343, 227, 332, cornellSize-1, material.NewEmissive(core.NewColor(15, 15, 15))))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)

	s.Add(
		geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
		geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)),
	)

	return s
}
