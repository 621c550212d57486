package scene

import (
	"math/rand"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/integrator"
	"github.com/lumenpath/pathtracer/pkg/loaders"
	"github.com/lumenpath/pathtracer/pkg/material"
	"github.com/lumenpath/pathtracer/pkg/renderer"
)

// sphereFieldExtent is the half-width of the grid of small spheres
const sphereFieldExtent = 11

// NewSpheresScene creates a field of randomly placed small spheres around three large ones.
// The layout depends only on opts.Seed. With opts.TexturePath set, the matte
// feature sphere is wrapped in that image.
func NewSpheresScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.1,  // Small depth of field for some focus variation
		FocusDistance: 10.0, // Focus between the feature spheres
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           600,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	s.Sky = &integrator.Gradient{
		Top:    core.NewColor(0.5, 0.7, 1.0),
		Bottom: core.NewColor(1.0, 1.0, 1.0),
	}

	checker := material.NewCheckerTexture(10, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	random := rand.New(rand.NewSource(opts.Seed))
	sampler := core.NewRandomSampler(random)
	glass := material.NewDielectric(1.5)

	for a := -sphereFieldExtent; a < sphereFieldExtent; a++ {
		for b := -sphereFieldExtent; b < sphereFieldExtent; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch chooseMat := random.Float64(); {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				mat = material.NewMetal(albedo, core.RandomInRange(random.Float64(), 0, 0.5))
			default:
				mat = glass
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	var feature material.Material = material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))
	if opts.TexturePath != "" {
		texture, err := loaders.LoadImageTexture(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		feature = material.NewTexturedLambertian(texture)
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, feature),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)

	return s, nil
}
