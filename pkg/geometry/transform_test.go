package geometry

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestTransformed_TranslatedSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	translated := NewTranslated(sphere, core.NewVec3(3, 0, 0))

	ray := core.NewRay(core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := translated.Hit(ray, core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit on translated sphere, but got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if !vecsClose(hit.Point, core.NewVec3(3, 0, 1), 1e-9) {
		t.Errorf("Expected point (3,0,1), got %v", hit.Point)
	}
	if !vecsClose(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	// The original position is now empty
	atOrigin := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := translated.Hit(atOrigin, core.NewInterval(0.001, 1000.0)); isHit {
		t.Error("Expected miss at the untranslated position")
	}
}

func TestTransformed_RotatedQuadNormal(t *testing.T) {
	// A quad in the xy-plane rotated a quarter turn about Y faces +x
	quad := NewQuad(core.NewVec3(-0.5, -0.5, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	rotated := NewRotatedY(quad, math.Pi/2)

	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))
	hit, isHit := rotated.Hit(ray, core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit on rotated quad, but got miss")
	}

	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if !vecsClose(hit.Normal, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected rotated normal (1,0,0), got %v", hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestTransformed_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	translated := NewTranslated(sphere, core.NewVec3(10, 0, 0))

	bbox := translated.BoundingBox()
	if !vecsClose(bbox.Min, core.NewVec3(9, -1, -1), 1e-9) ||
		!vecsClose(bbox.Max, core.NewVec3(11, 1, 1), 1e-9) {
		t.Errorf("Expected box [(9,-1,-1), (11,1,1)], got [%v, %v]", bbox.Min, bbox.Max)
	}

	// Rotating an xy-plane quad about Y foreshortens its x extent to
	// cos(pi/4) and spreads the rest into z
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	rotated := NewRotatedY(quad, math.Pi/4)
	rbox := rotated.BoundingBox()

	halfExtent := math.Cos(math.Pi / 4)
	if math.Abs(rbox.Min.X+halfExtent) > 1e-3 || math.Abs(rbox.Max.X-halfExtent) > 1e-3 {
		t.Errorf("Expected rotated box to span x in about [-%f, %f], got [%f, %f]",
			halfExtent, halfExtent, rbox.Min.X, rbox.Max.X)
	}

	// The box stays conservative: every transformed corner of the wrapped
	// shape's box lies inside it
	inner := quad.BoundingBox()
	rotation := core.RotationYMatrix(math.Pi / 4)
	for _, corner := range []core.Vec3{
		core.NewVec3(inner.Min.X, inner.Min.Y, inner.Min.Z),
		core.NewVec3(inner.Max.X, inner.Min.Y, inner.Min.Z),
		core.NewVec3(inner.Min.X, inner.Max.Y, inner.Max.Z),
		core.NewVec3(inner.Max.X, inner.Max.Y, inner.Max.Z),
	} {
		p := rotation.TransformPoint(corner)
		if p.X < rbox.Min.X-1e-9 || p.X > rbox.Max.X+1e-9 ||
			p.Y < rbox.Min.Y-1e-9 || p.Y > rbox.Max.Y+1e-9 ||
			p.Z < rbox.Min.Z-1e-9 || p.Z > rbox.Max.Z+1e-9 {
			t.Errorf("Transformed corner %v outside box [%v, %v]", p, rbox.Min, rbox.Max)
		}
	}
}

func TestTransformed_SingularTransform_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for singular transform")
		}
	}()
	NewTransformed(NewSphere(core.NewVec3(0, 0, 0), 1.0), core.ScaleMatrix(core.NewVec3(1, 0, 1)))
}

func TestGroup_Hit_Nearest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 2), 0.5)
	far := NewSphere(core.NewVec3(0, 0, -2), 0.5)
	group := NewGroup(near, far)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := group.Hit(ray, core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected nearest hit at t=2.5, got t=%f", hit.T)
	}
}

func TestGroup_BoundingBox_Union(t *testing.T) {
	group := NewGroup(
		NewSphere(core.NewVec3(-2, 0, 0), 1.0),
		NewSphere(core.NewVec3(2, 0, 0), 1.0),
	)

	bbox := group.BoundingBox()
	if !vecsClose(bbox.Min, core.NewVec3(-3, -1, -1), 1e-9) ||
		!vecsClose(bbox.Max, core.NewVec3(3, 1, 1), 1e-9) {
		t.Errorf("Expected box [(-3,-1,-1), (3,1,1)], got [%v, %v]", bbox.Min, bbox.Max)
	}
}

func TestGroup_Empty_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty group")
		}
	}()
	NewGroup()
}
