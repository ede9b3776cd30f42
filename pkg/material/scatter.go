package material

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Scatter importance-samples an outgoing direction for a ray arriving against
// viewDir, choosing among specular reflection, diffuse reflection and
// transmission. It returns the sampled direction and its pdf. ok is false when
// the sample must be discarded (total internal reflection, or a microfacet
// reflection below the horizon); the integrator treats that as no indirect
// contribution for this bounce, not as an error.
func (m *Material) Scatter(rng *rand.Rand, normal, viewDir core.Vec3, frontFace bool) (core.Vec3, float64, bool) {
	probSpecular := m.specularProbability()

	var lightDir core.Vec3
	switch r := rng.Float64(); {
	case r < probSpecular:
		half := core.SampleBeckmannHalfVector(normal, m.Roughness, rng)
		lightDir = core.Reflect(viewDir.Negate(), half)
		if lightDir.Dot(normal) <= 0 {
			return core.Vec3{}, 0, false
		}

	case m.Transparent:
		half := core.SampleBeckmannHalfVector(normal, m.Roughness, rng)
		etaView, etaFar := m.refractionIndices(frontFace)
		eta := etaView / etaFar

		cosVH := viewDir.Dot(half)
		if cosVH <= 0 {
			return core.Vec3{}, 0, false
		}
		sin2Transmitted := eta * eta * (1 - cosVH*cosVH)
		if sin2Transmitted >= 1 {
			// Total internal reflection: no transmitted direction exists
			return core.Vec3{}, 0, false
		}
		cosTransmitted := math.Sqrt(1 - sin2Transmitted)
		lightDir = viewDir.Negate().Multiply(eta).
			Add(half.Multiply(eta*cosVH - cosTransmitted)).
			Normalize()
		if lightDir.Dot(normal) >= 0 {
			return core.Vec3{}, 0, false
		}

	default:
		lightDir = core.SampleCosineHemisphere(normal, rng)
	}

	pdf := m.PDF(lightDir, viewDir, normal, frontFace)
	if pdf < 1e-12 || math.IsNaN(pdf) || math.IsInf(pdf, 0) {
		return core.Vec3{}, 0, false
	}
	return lightDir, pdf, true
}

// PDF returns the multiple-importance-sampling probability density of Scatter
// producing lightDir: the strategy pdfs are summed, weighted by their
// selection probabilities, so every strategy that could have generated the
// direction contributes.
func (m *Material) PDF(lightDir, viewDir, normal core.Vec3, frontFace bool) float64 {
	probSpecular := m.specularProbability()
	nl := normal.Dot(lightDir)

	if nl > 0 {
		pdf := 0.0
		if probSpecular > 0 {
			half := lightDir.Add(viewDir)
			if half.LengthSquared() > 1e-18 {
				half = half.Normalize()
				cosVH := math.Abs(viewDir.Dot(half))
				if cosVH > 1e-9 {
					// Beckmann half-vector pdf with the reflection Jacobian
					pdf += probSpecular * m.beckmannD(normal.Dot(half)) * normal.Dot(half) / (4 * cosVH)
				}
			}
		}
		if !m.Transparent {
			pdf += (1 - probSpecular) * nl / math.Pi
		}
		return pdf
	}

	if m.Transparent && nl < 0 {
		etaView, etaFar := m.refractionIndices(frontFace)

		half := viewDir.Multiply(etaView).Add(lightDir.Multiply(etaFar)).Negate()
		if half.LengthSquared() < 1e-18 {
			return 0
		}
		half = half.Normalize()
		if half.Dot(normal) < 0 {
			half = half.Negate()
		}

		cosVH := viewDir.Dot(half)
		cosLH := lightDir.Dot(half)
		if cosVH <= 0 {
			return 0
		}
		eta := etaView / etaFar
		if eta*eta*(1-cosVH*cosVH) >= 1 {
			return 0
		}

		denom := etaView*cosVH + etaFar*cosLH
		denom *= denom
		if denom < 1e-12 {
			return 0
		}

		// Half-vector pdf times the transmission Jacobian dωh/dωl
		halfPDF := m.beckmannD(normal.Dot(half)) * normal.Dot(half)
		jacobian := etaFar * etaFar * math.Abs(cosLH) / denom
		return (1 - probSpecular) * halfPDF * jacobian
	}

	return 0
}

// specularProbability estimates how often Scatter should pick the specular
// strategy: the luminance of F0, floored at 0.2 so bright highlights are never
// under-sampled. Materials with no meaningful specular component sample
// diffuse only.
func (m *Material) specularProbability() float64 {
	f0 := m.fresnelF0().Luminance()
	if !m.Transparent && f0 < 1e-3 {
		return 0
	}
	return clamp(math.Max(0.2, f0), 0, 1)
}
