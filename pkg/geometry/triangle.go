package geometry

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
	area       float64           // Cached surface area
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	requireMaterial(mat, "triangle")
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}

	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	t.normal = cross.Normalize()
	t.area = 0.5 * cross.Length()
	// Flat triangles still need a box with volume for slab tests
	t.bbox = core.NewAABBFromPoints(v0, v1, v2).Pad(0.0001)

	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return false
	}

	rec.T = tHit
	rec.Point = ray.At(tHit)
	rec.Material = t.Material
	rec.UV = core.NewVec2(u, v)
	rec.SetFaceNormal(ray, t.normal)

	return true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// CenterPoint returns the bounding box centroid along axis
func (t *Triangle) CenterPoint(axis core.Axis) float64 {
	return t.bbox.Center().Component(axis)
}

// Normal returns the triangle's unit normal, following the V0→V1→V2 winding
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.area
}

// PDFValue returns the density of reaching direction by uniform area sampling
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !t.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), &rec) {
		return 0
	}
	return areaPDF(direction, &rec, t.area)
}

// RandomSample returns a uniformly distributed point on the triangle
func (t *Triangle) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	su := math.Sqrt(sample.X)
	b0 := 1 - su
	b1 := sample.Y * su
	b2 := 1 - b0 - b1
	return t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(b2))
}
