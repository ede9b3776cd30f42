package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/renderer"
)

// NewDefaultScene builds an open-air scene with a matte ground, a glass
// sphere, a rough metal sphere and a motion-blurred diffuse sphere, lit by
// ambient, directional and point lights
func NewDefaultScene(aspectRatio float64) (*Scene, renderer.Camera) {
	ground := material.Diffuse(core.NewVec3(0.5, 0.5, 0.5))
	matte := material.Diffuse(core.NewVec3(0.7, 0.3, 0.3))
	glass := material.Glass(0.02, 1.5)
	metal := material.Metal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	s := New().
		SetBackground(core.NewVec3(0.5, 0.7, 1.0)).
		Add(
			geometry.NewObject(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), ground),
			geometry.NewObject(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), glass),
			// Hollow interior: the negative radius flips the normals inward
			geometry.NewObject(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45), glass),
			geometry.NewObject(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), metal),
			geometry.NewObject(geometry.NewMovingSphere(
				core.NewVec3(0, 0, -1), core.NewVec3(0, 0.15, -1), 0.5), matte),
		).
		AddLight(
			lights.NewAmbient(core.NewVec3(0.05, 0.05, 0.05)),
			lights.NewDirectional(core.NewVec3(0.6, 0.6, 0.55), core.NewVec3(-0.4, 1, 0.3)),
			lights.NewPoint(core.NewVec3(8, 8, 8), core.NewVec3(2, 2, 0)),
		).
		BuildBVH()

	camera := renderer.NewPinholeCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0.4, 1.5),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 50,
		AspectRatio: aspectRatio,
	})

	return s, camera
}
