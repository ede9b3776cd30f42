package geometry

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Quad represents a finite parallelogram defined by a corner point and two
// edge vectors
type Quad struct {
	corner core.Vec3
	u, v   core.Vec3
	normal core.Vec3 // unit normal of the plane
	d      float64   // plane equation constant: normal·p = d
	w      core.Vec3 // n/(n·n), for expressing hits in the (alpha,beta) basis
	area   float64
	bbox   core.AABB
}

// NewQuad creates a quad from a corner point and two edge vectors. It panics
// if the edge vectors are degenerate (parallel or zero length).
func NewQuad(corner, u, v core.Vec3) *Quad {
	n := u.Cross(v)
	area := n.Length()
	if area < 1e-12 {
		panic("geometry: quad edge vectors are degenerate")
	}

	normal := n.Multiply(1.0 / area)
	diag1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		corner: corner,
		u:      u,
		v:      v,
		normal: normal,
		d:      normal.Dot(corner),
		w:      n.Multiply(1.0 / n.Dot(n)),
		area:   area,
		bbox:   core.SurroundingBox(diag1, diag2).EnsureMinimum(1e-4),
	}
}

// Hit tests if a ray intersects the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	denominator := q.normal.Dot(ray.Direction)

	// Near-parallel rays are treated as misses
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	root := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !rayT.Surrounds(root) {
		return nil, false
	}

	// Express the hit point in the quad's (alpha, beta) basis
	hitPoint := ray.At(root)
	planar := hitPoint.Subtract(q.corner)
	alpha := q.w.Dot(planar.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	rec := &HitRecord{T: root, Point: hitPoint, U: alpha, V: beta}
	rec.SetFaceNormal(ray, q.normal)
	return rec, true
}

// BoundingBox returns the quad's bounding box, padded so the planar box still
// has volume
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.area
}

// Sample draws a uniform point on the quad's surface. The pdf is 1/area.
func (q *Quad) Sample(target core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	point := q.corner.
		Add(q.u.Multiply(rng.Float64())).
		Add(q.v.Multiply(rng.Float64()))
	return point, q.normal, 1.0 / q.area
}
