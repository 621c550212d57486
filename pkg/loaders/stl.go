package loaders

import (
	"github.com/fogleman/fauxgl"
	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/xerrors"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/geometry"
	"github.com/lumenpath/pathtracer/pkg/material"
)

// degenerateArea is the triangle area below which imported faces are dropped
const degenerateArea = 1e-12

// MeshOptions controls how an imported mesh is placed in the scene
type MeshOptions struct {
	Simplify  float64   // Fraction of faces to keep via edge collapse; 0 or >= 1 keeps all
	FitSize   float64   // When > 0, scale so the largest extent equals FitSize
	Scale     float64   // Uniform scale applied after fitting; 0 means 1
	RotateY   float64   // Rotation about +Y in degrees
	Offset    core.Vec3 // Translation applied last
	CenterXZ  bool      // Center the mesh over the origin in X and Z
	GroundToY bool      // Move the mesh so its lowest point sits at y = 0
}

// LoadSTL reads an ASCII or binary STL file and returns its faces as a
// single-material triangle mesh with its own BVH
func LoadSTL(path string, mat material.Material, opts MeshOptions) (*geometry.TriangleMesh, error) {
	mesh, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, xerrors.Errorf("while loading STL %q: %w", path, err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, xerrors.Errorf("STL %q has no triangles", path)
	}

	faces := make([]*simplify.Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		faces = append(faces, simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position),
		))
	}

	if opts.Simplify > 0 && opts.Simplify < 1 {
		faces = simplify.NewMesh(faces).Simplify(opts.Simplify).Triangles
	}

	triangles, err := placeTriangles(faces, mat, opts)
	if err != nil {
		return nil, xerrors.Errorf("while placing STL %q: %w", path, err)
	}

	result, err := geometry.NewTriangleMeshFromTriangles(triangles, mat)
	if err != nil {
		return nil, xerrors.Errorf("while building mesh for %q: %w", path, err)
	}
	return result, nil
}

func simplifyVector(v fauxgl.Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func toVec3(v simplify.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// placeTriangles converts faces to scene triangles, applying the placement transform
// and dropping faces with no area
func placeTriangles(faces []*simplify.Triangle, mat material.Material, opts MeshOptions) ([]*geometry.Triangle, error) {
	points := make([]core.Vec3, 0, 3*len(faces))
	for _, f := range faces {
		points = append(points, toVec3(f.V1), toVec3(f.V2), toVec3(f.V3))
	}
	transform := meshTransform(core.NewAABBFromPoints(points...), opts)

	triangles := make([]*geometry.Triangle, 0, len(faces))
	for i := 0; i < len(points); i += 3 {
		v0 := applyTransform(transform, points[i])
		v1 := applyTransform(transform, points[i+1])
		v2 := applyTransform(transform, points[i+2])

		if v1.Subtract(v0).Cross(v2.Subtract(v0)).Length()*0.5 < degenerateArea {
			continue
		}
		triangles = append(triangles, geometry.NewTriangle(v0, v1, v2, mat))
	}

	if len(triangles) == 0 {
		return nil, xerrors.New("every face is degenerate")
	}
	return triangles, nil
}

// meshTransform builds the model matrix: recenter, fit, scale, rotate, then offset
func meshTransform(bounds core.AABB, opts MeshOptions) mgl64.Mat4 {
	center := bounds.Center()
	anchor := mgl64.Vec3{0, 0, 0}
	if opts.CenterXZ {
		anchor[0], anchor[2] = center.X, center.Z
	}
	if opts.GroundToY {
		anchor[1] = bounds.Min.Y
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if opts.FitSize > 0 {
		size := bounds.Size()
		if extent := max(size.X, size.Y, size.Z); extent > 0 {
			scale *= opts.FitSize / extent
		}
	}

	return mgl64.Translate3D(opts.Offset.X, opts.Offset.Y, opts.Offset.Z).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(opts.RotateY))).
		Mul4(mgl64.Scale3D(scale, scale, scale)).
		Mul4(mgl64.Translate3D(-anchor[0], -anchor[1], -anchor[2]))
}

func applyTransform(m mgl64.Mat4, v core.Vec3) core.Vec3 {
	p := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return core.NewVec3(p[0], p[1], p[2])
}
