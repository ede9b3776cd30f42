package scene

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/renderer"
)

// NewCornellScene builds the classic Cornell box: white/red/green walls, a
// ceiling area light sampled as an object light, and two rotated boxes built
// from quads under affine transforms
func NewCornellScene(aspectRatio float64) (*Scene, renderer.Camera) {
	white := material.Diffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.Diffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.Diffuse(core.NewVec3(0.12, 0.45, 0.15))
	lamp := material.Light(core.NewVec3(1, 1, 1), 15)

	s := New()

	// Walls, floor and ceiling
	s.Add(
		geometry.NewObject(geometry.NewQuad( // left (green)
			core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555)), green),
		geometry.NewObject(geometry.NewQuad( // right (red)
			core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555)), red),
		geometry.NewObject(geometry.NewQuad( // floor
			core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555)), white),
		geometry.NewObject(geometry.NewQuad( // ceiling
			core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555)), white),
		geometry.NewObject(geometry.NewQuad( // back wall
			core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0)), white),
	)

	// Ceiling lamp, registered both as geometry and as a sampled light
	lampQuad := geometry.NewObject(geometry.NewQuad(
		core.NewVec3(213, 554, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105)), lamp)
	s.Add(lampQuad)
	s.AddLight(lights.NewObjectLight(lampQuad))

	// Two boxes, rotated about Y and translated into place
	s.Add(
		box(core.NewVec3(165, 330, 165), white,
			core.TranslationMatrix(core.NewVec3(265, 0, 295)).
				Mul(core.RotationYMatrix(15*math.Pi/180))),
		box(core.NewVec3(165, 165, 165), white,
			core.TranslationMatrix(core.NewVec3(130, 0, 65)).
				Mul(core.RotationYMatrix(-18*math.Pi/180))),
	)

	s.BuildBVH()

	camera := renderer.NewPinholeCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 40,
		AspectRatio: aspectRatio,
	})

	return s, camera
}

// box assembles an axis-aligned box from six quads at the origin and wraps it
// in the given transform
func box(size core.Vec3, mat *material.Material, transform core.Mat4) *geometry.Object {
	dx := core.NewVec3(size.X, 0, 0)
	dy := core.NewVec3(0, size.Y, 0)
	dz := core.NewVec3(0, 0, size.Z)
	origin := core.NewVec3(0, 0, 0)

	sides := geometry.NewGroup(
		geometry.NewQuad(origin, dx, dy),         // front
		geometry.NewQuad(origin.Add(dz), dx, dy), // back
		geometry.NewQuad(origin, dz, dy),         // left
		geometry.NewQuad(origin.Add(dx), dz, dy), // right
		geometry.NewQuad(origin.Add(dy), dx, dz), // top
		geometry.NewQuad(origin, dx, dz),         // bottom
	)

	return geometry.NewObject(geometry.NewTransformed(sides, transform), mat)
}
