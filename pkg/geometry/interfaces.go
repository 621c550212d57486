package geometry

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// epsilon is the threshold below which determinants and cosines count as degenerate
const epsilon = 1e-8

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit fills rec with the closest intersection in [tMin, tMax] and reports
	// whether there was one. rec is untouched on a miss.
	Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool

	// BoundingBox returns a box enclosing the object
	BoundingBox() core.AABB

	// CenterPoint returns the object's centroid coordinate along axis, used to order objects when splitting
	CenterPoint(axis core.Axis) float64

	// PDFValue returns the solid-angle density of sampling direction from origin
	// via RandomSample, or 0 for objects that are never sampled as lights
	PDFValue(origin, direction core.Vec3) float64

	// RandomSample returns a point on the surface, uniformly distributed by area
	RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// MaterialOf returns the single material carried by h, or nil when h has none or several
func MaterialOf(h Hittable) material.Material {
	switch o := h.(type) {
	case *Sphere:
		return o.Material
	case *Triangle:
		return o.Material
	case *Rect:
		return o.Material
	case *Box:
		return o.Material
	case *TriangleMesh:
		return o.Material
	case *Translate:
		return MaterialOf(o.Object)
	case *RotateY:
		return MaterialOf(o.Object)
	case *HittableList:
		var shared material.Material
		for i, object := range o.Objects {
			m := MaterialOf(object)
			if i == 0 {
				shared = m
			} else if m != shared {
				return nil
			}
		}
		return shared
	}
	return nil
}

// areaPDF converts a uniform-by-area density over a surface of the given area
// into a solid-angle density at the point recorded in rec
func areaPDF(direction core.Vec3, rec *material.HitRecord, area float64) float64 {
	length := direction.Length()
	if length == 0 || area <= 0 {
		return 0
	}
	cosine := math.Abs(direction.Dot(rec.Normal)) / length
	if cosine < epsilon {
		return 0
	}
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	return distanceSquared / (cosine * area)
}

// requireMaterial panics when a primitive is built without a material
func requireMaterial(m material.Material, kind string) {
	if m == nil {
		panic("geometry: " + kind + " needs a material")
	}
}
