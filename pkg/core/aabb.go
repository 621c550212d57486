package core

import "fmt"

// Axis selects one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Valid reports whether the axis is X, Y or Z
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points.
// Corners given in reversed order are a caller bug and panic.
func NewAABB(min, max Vec3) AABB {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("core: AABB corners reversed: min=%v max=%v", min, max))
	}
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	lo := points[0]
	hi := points[0]
	for _, point := range points[1:] {
		lo = lo.Min(point)
		hi = hi.Max(point)
	}

	return AABB{Min: lo, Max: hi}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// Zero direction components yield infinite reciprocals, which the
// interval arithmetic below handles without special-casing.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := AxisX; axis <= AxisZ; axis++ {
		invDirection := 1.0 / ray.Direction.Component(axis)
		origin := ray.Origin.Component(axis)

		t0 := (aabb.Min.Component(axis) - origin) * invDirection
		t1 := (aabb.Max.Component(axis) - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// 0*Inf is NaN when the origin sits exactly on a slab plane; NaN never tightens
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax < tMin {
			return false
		}
	}

	return true
}

// SurroundingBox returns the smallest AABB enclosing both boxes
func SurroundingBox(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return SurroundingBox(aabb, other)
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis with the longest extent, ties broken toward X then Y
func (aabb AABB) LongestAxis() Axis {
	size := aabb.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return AxisX
	}
	if size.Y >= size.Z {
		return AxisY
	}
	return AxisZ
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Pad returns a copy with any axis thinner than delta widened to delta.
// Axis-aligned rects need this so their boxes have volume.
func (aabb AABB) Pad(delta float64) AABB {
	padded := aabb
	half := delta / 2
	if padded.Max.X-padded.Min.X < delta {
		padded.Min.X -= half
		padded.Max.X += half
	}
	if padded.Max.Y-padded.Min.Y < delta {
		padded.Min.Y -= half
		padded.Max.Y += half
	}
	if padded.Max.Z-padded.Min.Z < delta {
		padded.Min.Z -= half
		padded.Max.Z += half
	}
	return padded
}
