package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{
			name:     "Straight through center",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: true,
		},
		{
			name:     "Parallel miss with zero direction components",
			ray:      NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: false,
		},
		{
			name:     "Pointing away",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: false,
		},
		{
			name:     "Box beyond tMax",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			tMin:     0.001,
			tMax:     3,
			expected: false,
		},
		{
			name:     "Origin inside box",
			ray:      NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: true,
		},
		{
			name:     "Origin on slab plane",
			ray:      NewRay(NewVec3(1, 0, -5), NewVec3(0, 0, 1)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: true,
		},
		{
			name:     "Diagonal miss",
			ray:      NewRay(NewVec3(-5, 3, 0), NewVec3(1, 0, 0)),
			tMin:     0.001,
			tMax:     math.Inf(1),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewAABB_PanicsOnReversedCorners(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for reversed corners")
		}
	}()
	NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1))
}

func TestSurroundingBox_CommutativeAndAssociative(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 100; i++ {
		a, b, c := randomBox(), randomBox(), randomBox()

		if SurroundingBox(a, b) != SurroundingBox(b, a) {
			t.Fatalf("SurroundingBox not commutative for %v, %v", a, b)
		}
		if SurroundingBox(SurroundingBox(a, b), c) != SurroundingBox(a, SurroundingBox(b, c)) {
			t.Fatalf("SurroundingBox not associative for %v, %v, %v", a, b, c)
		}

		union := SurroundingBox(a, b)
		if !union.Contains(a) || !union.Contains(b) {
			t.Fatalf("Union %v does not contain its inputs", union)
		}
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		max      Vec3
		expected Axis
	}{
		{"X longest", NewVec3(3, 1, 1), AxisX},
		{"Y longest", NewVec3(1, 3, 1), AxisY},
		{"Z longest", NewVec3(1, 1, 3), AxisZ},
		{"Tie breaks toward X", NewVec3(2, 2, 2), AxisX},
		{"Y and Z tie breaks toward Y", NewVec3(1, 2, 2), AxisY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABB(Vec3{}, tt.max)
			if got := box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 5), NewVec3(1, 1, 5))
	padded := flat.Pad(0.0001)
	if padded.Size().Z <= 0 {
		t.Errorf("Expected padded box to have thickness, got %v", padded)
	}
	if padded.Min.X != 0 || padded.Max.X != 1 {
		t.Errorf("Expected thick axes to be unchanged, got %v", padded)
	}
}
