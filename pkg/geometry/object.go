package geometry

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Object couples a shape with a material. Shapes and materials are shared by
// reference: copying an Object is a shallow copy, and the same material may
// back many objects and BVH leaves.
type Object struct {
	Shape    Shape
	Material *material.Material
}

// NewObject creates an object. A nil material defaults to matte white.
func NewObject(shape Shape, mat *material.Material) *Object {
	if mat == nil {
		mat = material.Diffuse(core.NewVec3(1, 1, 1))
	}
	return &Object{Shape: shape, Material: mat}
}

// Hit intersects the ray with the object's shape and stamps the object's
// material onto the record
func (o *Object) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	rec, ok := o.Shape.Hit(ray, rayT)
	if !ok {
		return nil, false
	}
	rec.Material = o.Material
	return rec, true
}

// BoundingBox returns the bounding box of the object's shape
func (o *Object) BoundingBox() core.AABB {
	return o.Shape.BoundingBox()
}

// Sample draws a point on the object's surface for light sampling
func (o *Object) Sample(target core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	return o.Shape.Sample(target, rng, time)
}
