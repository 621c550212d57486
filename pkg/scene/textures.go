package scene

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/loaders"
	"github.com/lumenpath/pathtracer/pkg/material"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// NewTextureScene creates a scene demonstrating texture mapping on spheres and rects,
// lit by a checker-textured spherical light
func NewTextureScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 2, 10),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0, // Wide enough to see every shape
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 100,
		MaxDepth:        20,
	})
	s.Background = core.NewColor(0.05, 0.05, 0.08)

	// Create procedural textures
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9), // White
		core.NewColor(0.2, 0.2, 0.8), // Blue
	)
	fineBrickPattern := material.NewCheckerboardTexture(512, 512, 16,
		core.NewColor(0.7, 0.3, 0.1),  // Orange
		core.NewColor(0.5, 0.2, 0.05), // Dark brown
	)
	floorChecker := material.NewCheckerTexture(2, core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.1, 0.1, 0.1))

	var imageSource material.ColorSource = fineBrickPattern
	if opts.TexturePath != "" {
		texture, err := loaders.LoadImageTexture(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		imageSource = texture
	}

	s.Add(
		geometry.NewXZRect(-20, 20, -20, 20, 0, material.NewTexturedLambertian(floorChecker)),
		geometry.NewSphere(core.NewVec3(-3, 1, 0), 1.0, material.NewTexturedLambertian(checkerboard)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewTexturedLambertian(imageSource)),
		geometry.NewXYRect(2, 4, 0, 2, -0.5, material.NewTexturedLambertian(fineBrickPattern)),
		// Green glass in front of the brick panel
		geometry.NewSphere(core.NewVec3(3, 0.75, 1.5), 0.75, material.NewTintedDielectric(1.5, core.NewColor(0.8, 1.0, 0.85))),
	)

	// Warm checkered light above the shapes
	lightPattern := &material.CheckerTexture{
		Scale: 8,
		Even:  material.NewSolidColor(core.NewColor(8, 7, 6)),
		Odd:   material.NewSolidColor(core.NewColor(4, 3.5, 3)),
	}
	s.SetLight(geometry.NewSphere(core.NewVec3(0, 6, 3), 1.0, material.NewTexturedEmissive(lightPattern)))

	return s, nil
}
