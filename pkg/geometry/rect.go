package geometry

import (
	"fmt"
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// rectThickness pads the flat axis of a rect's bounding box
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle lying in the plane Normal = K.
// A and B are the two in-plane axes in X, Y, Z order, spanning [A0, A1] × [B0, B1].
// The outward normal points along +Normal.
type Rect struct {
	Normal   core.Axis
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return newRect(core.AxisZ, x0, x1, y0, y1, k, mat)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return newRect(core.AxisY, x0, x1, z0, z1, k, mat)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return newRect(core.AxisX, y0, y1, z0, z1, k, mat)
}

func newRect(normal core.Axis, a0, a1, b0, b1, k float64, mat material.Material) *Rect {
	requireMaterial(mat, "rect")
	if a0 > a1 || b0 > b1 {
		panic(fmt.Sprintf("geometry: rect bounds reversed: [%f,%f]x[%f,%f]", a0, a1, b0, b1))
	}
	return &Rect{Normal: normal, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
}

// planeAxes returns the two in-plane axes
func (r *Rect) planeAxes() (core.Axis, core.Axis) {
	switch r.Normal {
	case core.AxisX:
		return core.AxisY, core.AxisZ
	case core.AxisY:
		return core.AxisX, core.AxisZ
	}
	return core.AxisX, core.AxisY
}

// point assembles a world point from in-plane coordinates
func (r *Rect) point(a, b float64) core.Vec3 {
	switch r.Normal {
	case core.AxisX:
		return core.NewVec3(r.K, a, b)
	case core.AxisY:
		return core.NewVec3(a, r.K, b)
	}
	return core.NewVec3(a, b, r.K)
}

func unitAxis(axis core.Axis) core.Vec3 {
	switch axis {
	case core.AxisX:
		return core.NewVec3(1, 0, 0)
	case core.AxisY:
		return core.NewVec3(0, 1, 0)
	}
	return core.NewVec3(0, 0, 1)
}

// Hit intersects the ray with the rect's plane and checks the in-plane bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	dn := ray.Direction.Component(r.Normal)
	if math.Abs(dn) < epsilon {
		return false
	}

	t := (r.K - ray.Origin.Component(r.Normal)) / dn
	if t < tMin || t > tMax {
		return false
	}

	axisA, axisB := r.planeAxes()
	p := ray.At(t)
	a := p.Component(axisA)
	b := p.Component(axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return false
	}

	rec.T = t
	rec.Point = p
	rec.Material = r.Material
	rec.UV = core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0))
	rec.SetFaceNormal(ray, unitAxis(r.Normal))

	return true
}

// BoundingBox returns the rect's extent, padded along the normal axis
func (r *Rect) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(r.point(r.A0, r.B0), r.point(r.A1, r.B1)).Pad(rectThickness)
}

// CenterPoint returns the bounding box centroid along axis
func (r *Rect) CenterPoint(axis core.Axis) float64 {
	return r.BoundingBox().Center().Component(axis)
}

// Area returns the rect's surface area
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns the density of reaching direction by uniform area sampling
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), &rec) {
		return 0
	}
	return areaPDF(direction, &rec, r.Area())
}

// RandomSample returns a uniformly distributed point on the rect
func (r *Rect) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	return r.point(core.RandomInRange(sample.X, r.A0, r.A1), core.RandomInRange(sample.Y, r.B0, r.B1))
}
