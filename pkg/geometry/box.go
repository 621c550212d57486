package geometry

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// Box is an axis-aligned box built from six rects sharing one material
type Box struct {
	Min, Max core.Vec3
	Material material.Material
	sides    *HittableList
}

// NewBox creates the box spanning corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	requireMaterial(mat, "box")
	bounds := core.NewAABB(p0, p1)

	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat),
	)

	return &Box{Min: bounds.Min, Max: bounds.Max, Material: mat, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	return b.sides.Hit(ray, tMin, tMax, rec)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox() core.AABB {
	return core.AABB{Min: b.Min, Max: b.Max}
}

// CenterPoint returns the box center along axis
func (b *Box) CenterPoint(axis core.Axis) float64 {
	return b.BoundingBox().Center().Component(axis)
}

// PDFValue is 0; boxes are never sampled as lights
func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// RandomSample returns origin; boxes are never sampled as lights
func (b *Box) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return origin
}
