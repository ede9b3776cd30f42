package geometry

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Group is a compound shape: a fixed list of shapes treated as one surface,
// such as the six quads of a box. Groups are small; hits use a linear scan.
type Group []Shape

// NewGroup creates a group. It panics when empty, which would make every
// query degenerate.
func NewGroup(shapes ...Shape) Group {
	if len(shapes) == 0 {
		panic("geometry: group requires at least one shape")
	}
	return Group(shapes)
}

// Hit returns the nearest intersection among the group's members
func (g Group) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := rayT.Max
	for _, shape := range g {
		if rec, ok := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of the members' boxes
func (g Group) BoundingBox() core.AABB {
	bbox := g[0].BoundingBox()
	for _, shape := range g[1:] {
		bbox = core.SurroundingBox(bbox, shape.BoundingBox())
	}
	return bbox
}

// Sample draws a point from a uniformly chosen member, scaling the pdf by the
// selection probability
func (g Group) Sample(target core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	member := g[rng.Intn(len(g))]
	point, normal, pdf := member.Sample(target, rng, time)
	return point, normal, pdf / float64(len(g))
}
