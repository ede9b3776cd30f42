package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

const (
	// minRoughness keeps the Beckmann distribution away from a delta spike
	minRoughness = 0.01

	// iorEpsilon keeps the refraction ratio away from exactly 1, where the
	// transmission half-vector math degenerates
	iorEpsilon = 1e-4
)

// Material is a single parametric surface model covering diffuse, glossy
// metallic and transparent dielectric surfaces. Materials are immutable after
// construction and shared by reference among objects.
type Material struct {
	Color       core.Vec3 // Base color (albedo for diffuse, tint for metal/glass)
	Roughness   float64   // Microfacet roughness in [0.01, 1]
	Metallic    float64   // Dielectric (0) to conductor (1) Fresnel blend
	IOR         float64   // Index of refraction, held away from exactly 1
	Emittance   float64   // Emitted radiance scale, 0 for non-emissive
	Transparent bool      // Transmissive dielectric (glass) when true
}

// Diffuse creates a fully rough, opaque material with the given color
func Diffuse(color core.Vec3) *Material {
	return newMaterial(color, 1.0, 0, 1.0, 0, false)
}

// Metal creates a metallic material with the given color and roughness
func Metal(color core.Vec3, roughness float64) *Material {
	return newMaterial(color, roughness, 1.0, 1.0, 0, false)
}

// Mirror creates a smooth, fully specular metallic material
func Mirror(color core.Vec3) *Material {
	return newMaterial(color, minRoughness, 1.0, 1.0, 0, false)
}

// Glass creates a transparent dielectric with the given roughness and index
// of refraction
func Glass(roughness, ior float64) *Material {
	return newMaterial(core.NewVec3(1, 1, 1), roughness, 0, ior, 0, true)
}

// Light creates an emissive material with the given color and emittance
func Light(color core.Vec3, emittance float64) *Material {
	return newMaterial(color, 1.0, 0, 1.0, emittance, false)
}

func newMaterial(color core.Vec3, roughness, metallic, ior, emittance float64, transparent bool) *Material {
	return &Material{
		Color:       color,
		Roughness:   clamp(roughness, minRoughness, 1.0),
		Metallic:    clamp(metallic, 0, 1),
		IOR:         sanitizeIOR(ior),
		Emittance:   math.Max(0, emittance),
		Transparent: transparent,
	}
}

// Emitted returns the emitted radiance of the material
func (m *Material) Emitted() core.Vec3 {
	return m.Color.Multiply(m.Emittance)
}

// fresnelF0 returns the reflectance at normal incidence, blended from the
// dielectric value toward the base color by the metallic parameter
func (m *Material) fresnelF0() core.Vec3 {
	r0 := (m.IOR - 1) / (m.IOR + 1)
	r0 *= r0
	return core.NewVec3(r0, r0, r0).Lerp(m.Color, m.Metallic)
}

// refractionIndices returns the indices on the view side and the far side of
// the surface. FrontFace comes from the hit record, so this stays consistent
// with the already-flipped shading normal.
func (m *Material) refractionIndices(frontFace bool) (etaView, etaFar float64) {
	if frontFace {
		return 1.0, m.IOR
	}
	return m.IOR, 1.0
}

func sanitizeIOR(ior float64) float64 {
	if ior <= 0 {
		return 1.0 + iorEpsilon
	}
	if math.Abs(ior-1.0) < iorEpsilon {
		if ior < 1.0 {
			return 1.0 - iorEpsilon
		}
		return 1.0 + iorEpsilon
	}
	return ior
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
