package geometry

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// MockShape for testing
type MockShape struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool
}

func (m MockShape) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	if m.hitFn == nil {
		return false
	}
	return m.hitFn(ray, tMin, tMax, rec)
}

func (m MockShape) BoundingBox() core.AABB {
	return m.boundingBox
}

func (m MockShape) CenterPoint(axis core.Axis) float64 {
	return m.boundingBox.Center().Component(axis)
}

func (m MockShape) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

func (m MockShape) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return origin
}

// hitAt returns a hit function reporting a hit at tValue when it lies within range
func hitAt(tValue float64) func(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	return func(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
		if tValue < tMin || tValue > tMax {
			return false
		}
		rec.T = tValue
		rec.Point = ray.At(tValue)
		return true
	}
}

func grey() material.Material {
	return material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
}
