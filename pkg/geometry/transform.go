package geometry

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Transformed wraps a shape with an affine transform. Rays are mapped into
// object space with the inverse transform, hit points back with the forward
// transform, and normals with the inverse transpose of the linear part.
//
// Surface sampling through a Transformed assumes a rigid transform (rotation
// and translation): non-uniform scaling would change the surface area and
// invalidate the wrapped shape's area pdf.
type Transformed struct {
	inner   Shape
	forward core.Mat4
	inverse core.Mat4
	bbox    core.AABB
}

// NewTransformed wraps a shape with the given affine transform. It panics if
// the transform is singular.
func NewTransformed(inner Shape, transform core.Mat4) *Transformed {
	inverse, ok := transform.Inverse()
	if !ok {
		panic("geometry: transform matrix is singular")
	}

	return &Transformed{
		inner:   inner,
		forward: transform,
		inverse: inverse,
		bbox:    transformBBox(inner.BoundingBox(), transform),
	}
}

// NewTranslated wraps a shape with a pure translation
func NewTranslated(inner Shape, offset core.Vec3) *Transformed {
	return NewTransformed(inner, core.TranslationMatrix(offset))
}

// NewRotatedY wraps a shape with a rotation about the Y axis by angle radians
func NewRotatedY(inner Shape, angle float64) *Transformed {
	return NewTransformed(inner, core.RotationYMatrix(angle))
}

// Hit transforms the ray into object space, intersects the wrapped shape and
// maps the hit back into world space
func (t *Transformed) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	// The direction is deliberately not normalized so the t parameter is
	// shared between the two spaces
	localRay := core.Ray{
		Origin:    t.inverse.TransformPoint(ray.Origin),
		Direction: t.inverse.TransformDirection(ray.Direction),
		Time:      ray.Time,
	}

	rec, ok := t.inner.Hit(localRay, rayT)
	if !ok {
		return nil, false
	}

	rec.Point = t.forward.TransformPoint(rec.Point)
	// Normals transform by the inverse transpose of the linear part
	rec.Normal = t.inverse.TransposedTransformDirection(rec.Normal).Normalize()
	return rec, true
}

// BoundingBox returns the axis-aligned extent of the transformed corners of
// the wrapped shape's box. Conservative, not necessarily tight.
func (t *Transformed) BoundingBox() core.AABB {
	return t.bbox
}

// Sample draws a point on the wrapped shape and maps it into world space
func (t *Transformed) Sample(target core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	localTarget := t.inverse.TransformPoint(target)
	point, normal, pdf := t.inner.Sample(localTarget, rng, time)

	point = t.forward.TransformPoint(point)
	normal = t.inverse.TransposedTransformDirection(normal).Normalize()
	return point, normal, pdf
}

func transformBBox(bbox core.AABB, transform core.Mat4) core.AABB {
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		corner := core.NewVec3(
			pick(i&1 == 0, bbox.Min.X, bbox.Max.X),
			pick(i&2 == 0, bbox.Min.Y, bbox.Max.Y),
			pick(i&4 == 0, bbox.Min.Z, bbox.Max.Z),
		)
		corners = append(corners, transform.TransformPoint(corner))
	}
	return core.NewAABBFromPoints(corners...)
}

func pick(first bool, a, b float64) float64 {
	if first {
		return a
	}
	return b
}
