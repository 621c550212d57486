package geometry

import (
	"fmt"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// TriangleMesh represents a collection of triangles sharing one material.
// It uses an internal BVH for fast intersection tests.
type TriangleMesh struct {
	Material  material.Material
	triangles []Hittable
	bvh       *BVHNode
}

// NewTriangleMesh creates a mesh from vertices and face indices.
// Each group of 3 indices forms a triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) (*TriangleMesh, error) {
	requireMaterial(mat, "triangle mesh")
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	triangles := make([]Hittable, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i/3, index, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat))
	}

	return newTriangleMesh(triangles, mat)
}

// NewTriangleMeshFromTriangles wraps already-built triangles in a mesh
func NewTriangleMeshFromTriangles(triangles []*Triangle, mat material.Material) (*TriangleMesh, error) {
	requireMaterial(mat, "triangle mesh")
	hittables := make([]Hittable, len(triangles))
	for i, triangle := range triangles {
		hittables[i] = triangle
	}
	return newTriangleMesh(hittables, mat)
}

func newTriangleMesh(triangles []Hittable, mat material.Material) (*TriangleMesh, error) {
	bvh, err := NewBVH(triangles)
	if err != nil {
		return nil, fmt.Errorf("building mesh BVH: %w", err)
	}
	return &TriangleMesh{Material: mat, triangles: triangles, bvh: bvh}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	return tm.bvh.Hit(ray, tMin, tMax, rec)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// CenterPoint returns the mesh's box centroid along axis
func (tm *TriangleMesh) CenterPoint(axis core.Axis) float64 {
	return tm.bvh.CenterPoint(axis)
}

// PDFValue is 0; meshes are never sampled as lights
func (tm *TriangleMesh) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// RandomSample returns origin; meshes are never sampled as lights
func (tm *TriangleMesh) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return origin
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Stats describes the mesh's internal BVH
func (tm *TriangleMesh) Stats() Stats {
	return tm.bvh.Stats()
}
