package scene

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/integrator"
	"github.com/lumenpath/pathtracer/pkg/material"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// NewDefaultScene creates the classic two-sphere scene: a matte red sphere resting
// on a huge ground sphere, lit only by the sky
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	s.Sky = &integrator.Gradient{
		Top:    core.NewColor(0.5, 0.7, 1.0), // blue sky
		Bottom: core.NewColor(1.0, 1.0, 1.0), // white horizon
	}

	red := material.NewLambertian(core.NewColor(0.7, 0.1, 0.1))
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	)

	return s
}
