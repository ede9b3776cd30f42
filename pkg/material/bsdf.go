package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// BSDF evaluates the scattering distribution for light arriving along lightDir
// and leaving along viewDir, both unit vectors pointing away from the surface.
// The normal must be the hit record's normal (already flipped toward viewDir).
// Reflection uses a Cook-Torrance microfacet lobe plus a Lambertian diffuse
// term for opaque materials; transmission uses the Walter et al. microfacet
// BTDF. Directions on opposite sides of the surface select transmission.
func (m *Material) BSDF(lightDir, viewDir, normal core.Vec3, frontFace bool) core.Vec3 {
	nl := normal.Dot(lightDir)
	nv := normal.Dot(viewDir)
	if nv < 1e-9 {
		return core.Vec3{}
	}

	if nl > 0 {
		return m.reflectionBSDF(lightDir, viewDir, normal, nl, nv)
	}
	if m.Transparent && nl < 0 {
		return m.transmissionBSDF(lightDir, viewDir, normal, nl, nv, frontFace)
	}
	return core.Vec3{}
}

func (m *Material) reflectionBSDF(lightDir, viewDir, normal core.Vec3, nl, nv float64) core.Vec3 {
	half := lightDir.Add(viewDir)
	if half.LengthSquared() < 1e-18 {
		return core.Vec3{}
	}
	half = half.Normalize()

	fresnel := m.schlickFresnel(math.Abs(viewDir.Dot(half)))
	d := m.beckmannD(normal.Dot(half))
	g := m.smithG(nl, nv)

	specular := fresnel.Multiply(d * g / (4 * nl * nv))
	if m.Transparent {
		return specular
	}

	// Energy not reflected feeds the diffuse lobe
	kd := core.NewVec3(1, 1, 1).Subtract(fresnel)
	diffuse := kd.MultiplyVec(m.Color).Multiply(1.0 / math.Pi)
	return specular.Add(diffuse)
}

// transmissionBSDF implements the Walter et al. microfacet BTDF. viewDir is
// the incident side (index etaView), lightDir the far side (index etaFar).
func (m *Material) transmissionBSDF(lightDir, viewDir, normal core.Vec3, nl, nv float64, frontFace bool) core.Vec3 {
	etaView, etaFar := m.refractionIndices(frontFace)

	// Transmission half-vector: h = -(etaView*v + etaFar*l), oriented to the
	// shading normal's hemisphere
	half := viewDir.Multiply(etaView).Add(lightDir.Multiply(etaFar)).Negate()
	if half.LengthSquared() < 1e-18 {
		return core.Vec3{}
	}
	half = half.Normalize()
	if half.Dot(normal) < 0 {
		half = half.Negate()
	}

	cosVH := viewDir.Dot(half)
	cosLH := lightDir.Dot(half)
	if cosVH <= 0 {
		return core.Vec3{}
	}

	// Beyond the critical angle the surface is fully reflective
	eta := etaView / etaFar
	sin2Transmitted := eta * eta * (1 - cosVH*cosVH)
	if sin2Transmitted >= 1 {
		return core.Vec3{}
	}

	fresnel := m.schlickFresnel(cosVH)
	d := m.beckmannD(normal.Dot(half))
	g := m.smithG(nl, nv)

	denom := etaView*cosVH + etaFar*cosLH
	denom *= denom
	if denom < 1e-12 {
		return core.Vec3{}
	}

	scale := math.Abs(cosVH*cosLH) / (nv * math.Abs(nl)) * etaFar * etaFar * d * g / denom
	transmitted := core.NewVec3(1, 1, 1).Subtract(fresnel)
	return transmitted.MultiplyVec(m.Color).Multiply(scale)
}

// beckmannD is the Beckmann normal-distribution term for a half-vector with
// the given cosine to the normal
func (m *Material) beckmannD(cosNH float64) float64 {
	if cosNH <= 1e-9 {
		return 0
	}
	cos2 := cosNH * cosNH
	tan2 := (1 - cos2) / cos2
	m2 := m.Roughness * m.Roughness
	return math.Exp(-tan2/m2) / (math.Pi * m2 * cos2 * cos2)
}

// smithG is the Smith shadowing-masking term with the Schlick-GGX
// approximation. It depends only on the normal/light/view cosines.
func (m *Material) smithG(nl, nv float64) float64 {
	k := m.Roughness * m.Roughness / 2
	g1 := func(cos float64) float64 {
		cos = math.Abs(cos)
		return cos / (cos*(1-k) + k)
	}
	return g1(nl) * g1(nv)
}

// schlickFresnel is Schlick's approximation of the Fresnel reflectance for the
// given cosine, using the metallic-blended F0
func (m *Material) schlickFresnel(cos float64) core.Vec3 {
	cos = clamp(cos, 0, 1)
	f0 := m.fresnelF0()
	weight := math.Pow(1-cos, 5)
	return f0.Add(core.NewVec3(1, 1, 1).Subtract(f0).Multiply(weight))
}
