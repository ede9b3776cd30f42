package geometry

import (
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
)

// BVHNode is a node in the bounding volume hierarchy: either a leaf holding
// exactly one object, or an internal node with two children. A node's box is
// the union of its children's boxes. The tree is immutable once built.
type BVHNode struct {
	left, right *BVHNode
	object      *Object // non-nil for leaves only
	bbox        core.AABB
}

// BVH accelerates nearest-hit queries over a scene snapshot from O(n) to an
// expected O(log n) tree descent
type BVH struct {
	root *BVHNode
}

// NewBVH builds a BVH from the given objects. Building from an empty list is
// a precondition violation and panics. The input slice is copied, so the
// caller's ordering is not disturbed.
func NewBVH(objects []*Object) *BVH {
	if len(objects) == 0 {
		panic("geometry: BVH build requires at least one object")
	}
	objs := make([]*Object, len(objects))
	copy(objs, objects)
	return &BVH{root: buildBVHNode(objs)}
}

func buildBVHNode(objects []*Object) *BVHNode {
	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = core.SurroundingBox(bbox, obj.BoundingBox())
	}

	if len(objects) == 1 {
		return &BVHNode{object: objects[0], bbox: bbox}
	}

	// Split along the longest axis of the combined box, ordering objects by
	// the minimum bound of their boxes on that axis
	axis := bbox.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Min.Axis(axis) < objects[j].BoundingBox().Min.Axis(axis)
	})

	mid := len(objects) / 2
	left := buildBVHNode(objects[:mid])
	right := buildBVHNode(objects[mid:])

	// Recompute from the built subtrees rather than reusing the slice box
	return &BVHNode{
		left:  left,
		right: right,
		bbox:  core.SurroundingBox(left.bbox, right.bbox),
	}
}

// Hit returns the nearest intersection of the ray with any object in the tree
func (b *BVH) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	return b.root.hit(ray, rayT)
}

func (n *BVHNode) hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	if n.object != nil {
		return n.object.Hit(ray, rayT)
	}

	// Intersect the left subtree first, then search the right subtree only up
	// to the left hit. The narrowed interval structurally excludes farther
	// hits, so no explicit t comparison is needed.
	leftRec, leftOk := n.left.hit(ray, rayT)
	if leftOk {
		rayT = core.NewInterval(rayT.Min, leftRec.T)
	}

	rightRec, rightOk := n.right.hit(ray, rayT)
	if rightOk {
		return rightRec, true
	}
	return leftRec, leftOk
}

// BVHStats describes the structure of a built tree
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

// Stats walks the tree and reports node counts and depth
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{}
	collectBVHStats(b.root, 0, &stats)
	return stats
}

func collectBVHStats(n *BVHNode, depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if n.object != nil {
		stats.Leaves++
		return
	}
	collectBVHStats(n.left, depth+1, stats)
	collectBVHStats(n.right, depth+1, stats)
}

// LeafObjects returns the objects held by the tree's leaves in traversal order
func (b *BVH) LeafObjects() []*Object {
	var objects []*Object
	var walk func(n *BVHNode)
	walk = func(n *BVHNode) {
		if n.object != nil {
			objects = append(objects, n.object)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(b.root)
	return objects
}

// BoundingBox returns the box enclosing the whole tree
func (b *BVH) BoundingBox() core.AABB {
	return b.root.bbox
}
