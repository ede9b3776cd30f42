package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
)

// Scene aggregates objects, lights, the background radiance and an optional
// BVH over the objects. Scenes are built once and become read-only for the
// duration of rendering; the BVH always reflects the object list it was built
// from, so adding objects invalidates it until the next BuildBVH call.
type Scene struct {
	objects    []*geometry.Object
	lights     []lights.Light
	background core.Vec3
	bvh        *geometry.BVH
}

// New creates an empty scene with a black background
func New() *Scene {
	return &Scene{}
}

// Add appends objects to the scene and invalidates any cached BVH
func (s *Scene) Add(objects ...*geometry.Object) *Scene {
	s.objects = append(s.objects, objects...)
	s.bvh = nil
	return s
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) *Scene {
	s.lights = append(s.lights, ls...)
	return s
}

// SetBackground sets the radiance returned for rays that escape the scene
func (s *Scene) SetBackground(color core.Vec3) *Scene {
	s.background = color
	return s
}

// BuildBVH builds the acceleration structure from a snapshot of the current
// object list. It must be called again after any object mutation, and panics
// if the scene holds no objects.
func (s *Scene) BuildBVH() *Scene {
	s.bvh = geometry.NewBVH(s.objects)
	return s
}

// Objects returns the scene's object list
func (s *Scene) Objects() []*geometry.Object {
	return s.objects
}

// Lights returns the scene's light list
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// Background returns the background radiance
func (s *Scene) Background() core.Vec3 {
	return s.background
}

// BVH returns the cached acceleration structure, or nil if not built
func (s *Scene) BVH() *geometry.BVH {
	return s.bvh
}

// Intersect returns the nearest intersection of the ray with the scene,
// through the BVH when one is built and by linear scan otherwise
func (s *Scene) Intersect(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool) {
	if s.bvh != nil {
		return s.bvh.Hit(ray, rayT)
	}

	var closest *geometry.HitRecord
	closestSoFar := rayT.Max
	for _, obj := range s.objects {
		if rec, ok := obj.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}
	return closest, closest != nil
}
