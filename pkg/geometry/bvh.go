package geometry

import (
	"errors"
	"math/rand"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/material"
)

const (
	// LeafThreshold is the largest number of objects stored in a single leaf
	LeafThreshold = 5

	// BuildSeed seeds pivot selection so identical inputs build identical trees
	BuildSeed = 42
)

// ErrEmptyScene is returned when a BVH is requested over no objects
var ErrEmptyScene = errors.New("geometry: cannot build BVH over an empty scene")

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves hold Objects; interior nodes hold Left and Right.
// A nil *BVHNode is an empty tree that nothing hits.
type BVHNode struct {
	Box     core.AABB
	Left    *BVHNode
	Right   *BVHNode
	Objects []Hittable // Leaf objects (nil for interior nodes)
	Count   int        // Objects below this node
}

// NewBVH builds a BVH over a copy of objects
func NewBVH(objects []Hittable) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	// Work on a copy so the caller's slice order is left alone
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	rng := rand.New(rand.NewSource(BuildSeed))
	return buildBVH(objectsCopy, rng), nil
}

// buildBVH splits at the median centroid along the longest axis of the node's box
func buildBVH(objects []Hittable, rng *rand.Rand) *BVHNode {
	box := objects[0].BoundingBox()
	for _, object := range objects[1:] {
		box = core.SurroundingBox(box, object.BoundingBox())
	}

	if len(objects) <= LeafThreshold {
		return &BVHNode{
			Box:     box,
			Objects: objects,
			Count:   len(objects),
		}
	}

	mid := QuickSelect(objects, len(objects)/2+1, box.LongestAxis(), rng)

	left := buildBVH(objects[:mid], rng)
	right := buildBVH(objects[mid:], rng)

	return &BVHNode{
		Box:   core.SurroundingBox(left.Box, right.Box),
		Left:  left,
		Right: right,
		Count: left.Count + right.Count,
	}
}

// IsLeaf reports whether the node stores objects directly
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Hit tests if a ray intersects any object in the BVH
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	if n == nil || !n.Box.Hit(ray, tMin, tMax) {
		return false
	}

	if n.IsLeaf() {
		hitAnything := false
		closestSoFar := tMax
		for _, object := range n.Objects {
			if object.Hit(ray, tMin, closestSoFar, rec) {
				hitAnything = true
				closestSoFar = rec.T
			}
		}
		return hitAnything
	}

	hitLeft := n.Left.Hit(ray, tMin, tMax, rec)
	if hitLeft {
		tMax = rec.T
	}
	hitRight := n.Right.Hit(ray, tMin, tMax, rec)

	return hitLeft || hitRight
}

// BoundingBox returns the overall bounding box of the BVH
func (n *BVHNode) BoundingBox() core.AABB {
	if n == nil {
		return core.AABB{}
	}
	return n.Box
}

// CenterPoint returns the box centroid along axis
func (n *BVHNode) CenterPoint(axis core.Axis) float64 {
	return n.BoundingBox().Center().Component(axis)
}

// PDFValue is 0; a BVH is never sampled as a light
func (n *BVHNode) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// RandomSample returns origin; a BVH is never sampled as a light
func (n *BVHNode) RandomSample(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return origin
}

// Stats describes the shape of a built BVH
type Stats struct {
	Nodes            int
	Leaves           int
	MaxDepth         int
	AverageLeafDepth float64
	Objects          int
}

// Stats walks the tree and summarizes its structure
func (n *BVHNode) Stats() Stats {
	var stats Stats
	if n == nil {
		return stats
	}

	depthSum := 0
	n.collectStats(0, &stats, &depthSum)
	if stats.Leaves > 0 {
		stats.AverageLeafDepth = float64(depthSum) / float64(stats.Leaves)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *Stats, depthSum *int) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if n.IsLeaf() {
		stats.Leaves++
		stats.Objects += len(n.Objects)
		*depthSum += depth
		return
	}

	n.Left.collectStats(depth+1, stats, depthSum)
	n.Right.collectStats(depth+1, stats, depthSum)
}
