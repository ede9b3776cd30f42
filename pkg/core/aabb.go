package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// SurroundingBox returns the minimal AABB that contains both boxes
func SurroundingBox(a, b AABB) AABB {
	min := Vec3{
		X: math.Min(a.Min.X, b.Min.X),
		Y: math.Min(a.Min.Y, b.Min.Y),
		Z: math.Min(a.Min.Z, b.Min.Z),
	}
	max := Vec3{
		X: math.Max(a.Max.X, b.Max.X),
		Y: math.Max(a.Max.Y, b.Max.Y),
		Z: math.Max(a.Max.Z, b.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// AxisInterval returns the extent of the box along the given axis
func (aabb AABB) AxisInterval(axis int) Interval {
	return Interval{Min: aabb.Min.Axis(axis), Max: aabb.Max.Axis(axis)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties resolve to the lowest axis index.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// EnsureMinimum returns the AABB with any axis thinner than delta padded out,
// so planar shapes still get a box with volume
func (aabb AABB) EnsureMinimum(delta float64) AABB {
	result := aabb
	for axis := 0; axis < 3; axis++ {
		if result.AxisInterval(axis).Size() < delta {
			expanded := result.AxisInterval(axis).Expand(delta / 2)
			switch axis {
			case 0:
				result.Min.X, result.Max.X = expanded.Min, expanded.Max
			case 1:
				result.Min.Y, result.Max.Y = expanded.Min, expanded.Max
			case 2:
				result.Min.Z, result.Max.Z = expanded.Min, expanded.Max
			}
		}
	}
	return result
}

// Hit tests if a ray intersects this AABB over the parameter range rayT using
// the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// A ray parallel to the slab constrains nothing on this axis if its
		// origin lies inside the slab, and can never enter it otherwise.
		// Branching here keeps the 0/0 NaN case out of the division below.
		if math.Abs(direction) < 1e-12 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}

	return true
}
