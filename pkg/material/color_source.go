package material

import (
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Color
}

// CheckerTexture alternates between two sources in a 3D checker pattern
type CheckerTexture struct {
	Scale float64 // Checks per world unit
	Even  ColorSource
	Odd   ColorSource
}

// NewCheckerTexture creates a solid-colored 3D checker
func NewCheckerTexture(scale float64, even, odd core.Color) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate picks Even or Odd from the sign of a product of sines over the point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
