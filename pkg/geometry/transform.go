package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears shifted by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)
	if !t.Object.Hit(moved, tMin, tMax, rec) {
		return false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return true
}

// BoundingBox returns the object's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	box := t.Object.BoundingBox()
	return core.AABB{Min: box.Min.Add(t.Offset), Max: box.Max.Add(t.Offset)}
}

// CenterPoint shifts the object's centroid by the offset
func (t *Translate) CenterPoint(axis core.Axis) float64 {
	return t.Object.CenterPoint(axis) + t.Offset.Component(axis)
}

// PDFValue evaluates the object's density from the origin expressed in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// RandomSample samples the object in object space and shifts the result
func (t *Translate) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.RandomSample(origin.Subtract(t.Offset), sampler).Add(t.Offset)
}

// RotateY rotates an object about the Y axis through the origin
type RotateY struct {
	Object  Hittable
	Degrees float64
	toWorld mgl64.Mat3
	toLocal mgl64.Mat3
	bbox    core.AABB
}

// NewRotateY wraps object so it appears rotated by degrees about +Y
func NewRotateY(object Hittable, degrees float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(degrees))
	r := &RotateY{
		Object:  object,
		Degrees: degrees,
		toWorld: toWorld,
		toLocal: toWorld.Transpose(),
	}

	box := object.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				corners = append(corners, r.world(core.NewVec3(x, y, z)))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)

	return r
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

func (r *RotateY) world(v core.Vec3) core.Vec3 { return transform(r.toWorld, v) }
func (r *RotateY) local(v core.Vec3) core.Vec3 { return transform(r.toLocal, v) }

// Hit rotates the ray into object space, intersects, and rotates the result back.
// Rotation preserves the normal's orientation relative to the ray.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	rotated := core.NewRay(r.local(ray.Origin), r.local(ray.Direction))
	if !r.Object.Hit(rotated, tMin, tMax, rec) {
		return false
	}
	rec.Point = r.world(rec.Point)
	rec.Normal = r.world(rec.Normal)
	return true
}

// BoundingBox returns the box around the rotated corners of the object's box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// CenterPoint returns the rotated box centroid along axis
func (r *RotateY) CenterPoint(axis core.Axis) float64 {
	return r.bbox.Center().Component(axis)
}

// PDFValue evaluates the object's density in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.local(origin), r.local(direction))
}

// RandomSample samples the object in object space and rotates the result
func (r *RotateY) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.world(r.Object.RandomSample(r.local(origin), sampler))
}
