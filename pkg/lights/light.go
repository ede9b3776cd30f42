package lights

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
)

// LightType discriminates the light variants for integrator branching
type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeObject      LightType = "object"
)

// Light answers illumination queries for next-event estimation
type Light interface {
	Type() LightType

	// Illuminate returns the incident radiance at point, the unit direction
	// from point toward the light, and the distance to it. Ambient lights
	// return a zero direction and distance and are not shadow-tested;
	// directional lights return an infinite distance.
	Illuminate(point core.Vec3, rng *rand.Rand, time float64) (radiance core.Vec3, direction core.Vec3, distance float64)
}

// Ambient is a constant radiance term applied to every surface
type Ambient struct {
	Color core.Vec3
}

// NewAmbient creates an ambient light
func NewAmbient(color core.Vec3) *Ambient {
	return &Ambient{Color: color}
}

func (l *Ambient) Type() LightType { return LightTypeAmbient }

// Illuminate returns the flat ambient radiance
func (l *Ambient) Illuminate(point core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	return l.Color, core.Vec3{}, 0
}

// Directional is a parallel light infinitely far away, with no attenuation
type Directional struct {
	Color     core.Vec3
	Direction core.Vec3 // unit direction from surfaces toward the light
}

// NewDirectional creates a directional light shining along the given
// direction-to-light
func NewDirectional(color, directionToLight core.Vec3) *Directional {
	return &Directional{Color: color, Direction: directionToLight.Normalize()}
}

func (l *Directional) Type() LightType { return LightTypeDirectional }

// Illuminate returns the constant radiance and direction with an infinite
// distance, so shadow rays test all the way out
func (l *Directional) Illuminate(point core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	return l.Color, l.Direction, math.Inf(1)
}

// Point is an isotropic light at a location, attenuated by inverse-square
// distance
type Point struct {
	Color    core.Vec3
	Position core.Vec3
}

// NewPoint creates a point light
func NewPoint(color, position core.Vec3) *Point {
	return &Point{Color: color, Position: position}
}

func (l *Point) Type() LightType { return LightTypePoint }

// Illuminate returns the inverse-square attenuated radiance
func (l *Point) Illuminate(point core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	displacement := l.Position.Subtract(point)
	distance := displacement.Length()
	if distance < 1e-9 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	radiance := l.Color.Multiply(1.0 / (distance * distance))
	return radiance, displacement.Multiply(1.0 / distance), distance
}

// ObjectLight samples an emissive object's surface for next-event estimation.
// This is the only light variant backed by scene geometry.
type ObjectLight struct {
	Object *geometry.Object
}

// NewObjectLight creates a light from an emissive object. The object should
// also be present in the scene's object list so camera rays can see it.
func NewObjectLight(obj *geometry.Object) *ObjectLight {
	return &ObjectLight{Object: obj}
}

func (l *ObjectLight) Type() LightType { return LightTypeObject }

// Illuminate samples a point on the object's surface at the given shutter
// time and converts its emission to incident radiance at point:
// emittance·color·cosθ / (distance²·pdf), zero when the sampled facet faces
// away.
func (l *ObjectLight) Illuminate(point core.Vec3, rng *rand.Rand, time float64) (core.Vec3, core.Vec3, float64) {
	samplePoint, sampleNormal, pdf := l.Object.Sample(point, rng, time)
	if pdf <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-9 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	direction := toLight.Multiply(1.0 / distance)

	// Cosine at the light's surface; emission only leaves the front side
	cosTheta := sampleNormal.Dot(direction.Negate())
	if cosTheta <= 0 {
		return core.Vec3{}, direction, distance
	}

	mat := l.Object.Material
	radiance := mat.Color.Multiply(mat.Emittance * cosTheta / (distance * distance * pdf))
	return radiance, direction, distance
}
