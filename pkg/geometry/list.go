package geometry

import (
	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// HittableList is a flat collection of objects tested one after another
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box
func (l *HittableList) Add(object Hittable) {
	if len(l.Objects) == 0 {
		l.bbox = object.BoundingBox()
	} else {
		l.bbox = core.SurroundingBox(l.bbox, object.BoundingBox())
	}
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit across all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if object.Hit(ray, tMin, closestSoFar, rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// CenterPoint returns the bounding box centroid along axis
func (l *HittableList) CenterPoint(axis core.Axis) float64 {
	return l.bbox.Center().Component(axis)
}

// PDFValue averages the member densities, matching RandomSample's uniform choice of member
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// RandomSample picks a member uniformly and samples it
func (l *HittableList) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return origin
	}
	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return l.Objects[index].RandomSample(origin, sampler)
}
