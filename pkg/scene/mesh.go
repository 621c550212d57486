package scene

import (
	"errors"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/integrator"
	"github.com/lumenpath/pathtracer/pkg/loaders"
	"github.com/lumenpath/pathtracer/pkg/material"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// meshStageSize is the height a mesh is fitted to when no placement is given
const meshStageSize = 2.0

// NewMeshScene creates a scene with an STL model standing on a floor under an area light
func NewMeshScene(opts Options) (*Scene, error) {
	if opts.MeshPath == "" {
		return nil, errors.New("mesh scene needs a mesh path")
	}

	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 2, 6),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        30,
	})

	s.Sky = &integrator.Gradient{
		Top:    core.NewColor(0.15, 0.2, 0.3),
		Bottom: core.NewColor(0.3, 0.3, 0.3),
	}

	// Ground and light
	s.Add(geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewColor(0.6, 0.6, 0.6))))
	s.AddRectLight(geometry.NewXZRect(-1.5, 1.5, -1.5, 1.5, 5, material.NewEmissive(core.NewColor(6, 6, 6))))

	placement := opts.Mesh
	if placement == (loaders.MeshOptions{Simplify: placement.Simplify}) {
		placement.FitSize = meshStageSize
		placement.CenterXZ = true
		placement.GroundToY = true
	}

	mesh, err := loaders.LoadSTL(opts.MeshPath, material.NewLambertian(core.NewColor(0.8, 0.5, 0.3)), placement)
	if err != nil {
		return nil, err
	}
	s.Add(mesh)

	return s, nil
}
