package geometry

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// HitRecord contains information about a ray-object intersection. Records are
// built fresh per query and never mutated after being returned.
type HitRecord struct {
	Point     core.Vec3          // Point of intersection
	Normal    core.Vec3          // Surface normal, flipped to oppose the ray
	T         float64            // Parameter t along the ray
	U, V      float64            // Texture coordinates
	FrontFace bool               // Whether the ray hit the outer surface
	Material  *material.Material // Material of the hit object
}

// SetFaceNormal orients the given outward geometric normal against the
// incoming ray and records which face was hit. Downstream shading code can
// then assume the normal always points toward the ray's origin side.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the geometric-intersection contract shared by all primitives
type Shape interface {
	// Hit tests the ray against the shape over the parameter range rayT
	Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool)

	// BoundingBox returns a box containing the shape over all shutter times
	BoundingBox() core.AABB

	// Sample draws a point on the shape's surface at the given shutter time,
	// for area-light sampling toward target. pdf is with respect to surface
	// area.
	Sample(target core.Vec3, rng *rand.Rand, time float64) (point, normal core.Vec3, pdf float64)
}
