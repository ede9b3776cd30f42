package geometry

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Sphere represents a sphere whose center may move linearly over the shutter
// interval. A negative radius inverts the normals, which makes the inner
// surface of a hollow glass sphere expressible.
type Sphere struct {
	center core.Ray // center(t) = Origin + t*Direction
	radius float64
	bbox   core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return NewMovingSphere(center, center, radius)
}

// NewMovingSphere creates a sphere that moves linearly from centerFrom to
// centerTo as the shutter time goes from 0 to 1
func NewMovingSphere(centerFrom, centerTo core.Vec3, radius float64) *Sphere {
	// The box uses the absolute radius so negative-radius spheres still bound
	r := math.Abs(radius)
	radiusVec := core.NewVec3(r, r, r)

	boxFrom := core.NewAABB(centerFrom.Subtract(radiusVec), centerFrom.Add(radiusVec))
	boxTo := core.NewAABB(centerTo.Subtract(radiusVec), centerTo.Add(radiusVec))

	return &Sphere{
		center: core.NewRay(centerFrom, centerTo.Subtract(centerFrom)),
		radius: radius,
		bbox:   core.SurroundingBox(boxFrom, boxTo),
	}
}

// Hit tests if a ray intersects the sphere at the ray's shutter time
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	center := s.center.At(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root, fall back to the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	rec := &HitRecord{T: root, Point: ray.At(root)}

	// Dividing by the signed radius inverts the normal for radius < 0
	outwardNormal := rec.Point.Subtract(center).Multiply(1.0 / s.radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(rec.Point.Subtract(center).Multiply(1.0 / math.Abs(s.radius)))

	return rec, true
}

// BoundingBox returns a box containing the sphere over the whole shutter
// interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// Sample draws a uniform point on the sphere's surface at the given shutter
// time. The pdf is 1/area.
func (s *Sphere) Sample(target core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	center := s.center.At(time)
	r := math.Abs(s.radius)

	normal := core.SampleOnUnitSphere(rng)
	point := center.Add(normal.Multiply(r))
	pdf := 1.0 / (4.0 * math.Pi * r * r)
	return point, normal, pdf
}

// sphereUV maps a unit vector on the sphere to spherical texture coordinates
// in [0,1]x[0,1] (azimuth and polar angle)
func sphereUV(unit core.Vec3) (u, v float64) {
	theta := math.Acos(-unit.Y)
	phi := math.Atan2(-unit.Z, unit.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
