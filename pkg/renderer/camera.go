package renderer

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Camera generates primary rays. The core only depends on this contract, not
// on any particular projection.
type Camera interface {
	// GetRay returns a ray through image-plane coordinates (u, v) in [0,1]
	GetRay(u, v float64, rng *rand.Rand) core.Ray
}

// PinholeCamera is a simple look-at perspective camera. Rays carry a shutter
// time drawn uniformly from [0,1) so moving shapes are motion blurred.
type PinholeCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFovDegrees float64 // vertical field of view
	AspectRatio float64 // width / height
}

// NewPinholeCamera creates a camera from a look-at description
func NewPinholeCamera(cfg CameraConfig) *PinholeCamera {
	theta := cfg.VFovDegrees * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &PinholeCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a primary ray through image-plane coordinates (u, v)
func (c *PinholeCamera) GetRay(u, v float64, rng *rand.Rand) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRayAt(c.origin, direction, rng.Float64())
}
