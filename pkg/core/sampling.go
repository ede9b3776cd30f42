package core

import (
	"math"
	"math/rand"
)

// ONB is an ortho-normal basis aligned to a surface normal, used to lift
// hemisphere samples into world space
type ONB struct {
	U, V, W Vec3
}

// NewONB creates an ortho-normal basis whose W axis is the given normal
func NewONB(normal Vec3) ONB {
	w := normal.Normalize()
	var ref Vec3
	if math.Abs(w.X) > 0.9 {
		ref = NewVec3(0, 1, 0)
	} else {
		ref = NewVec3(1, 0, 0)
	}
	v := w.Cross(ref).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Transform maps local basis coordinates into world space
func (b ONB) Transform(local Vec3) Vec3 {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around normal. The pdf of the returned direction is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, rng *rand.Rand) Vec3 {
	a := 2.0 * math.Pi * rng.Float64()
	z := rng.Float64()
	r := math.Sqrt(z)

	local := NewVec3(r*math.Cos(a), r*math.Sin(a), math.Sqrt(1.0-z))
	return NewONB(normal).Transform(local)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(rng *rand.Rand) Vec3 {
	z := 1.0 - 2.0*rng.Float64()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * rng.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleBeckmannHalfVector draws a microfacet half-vector around normal from
// the Beckmann distribution with the given roughness, via the inverse CDF
// tan²θ = -m² ln(1-u). The pdf of the returned half-vector is D(h)·cos(θ).
func SampleBeckmannHalfVector(normal Vec3, roughness float64, rng *rand.Rand) Vec3 {
	u1 := rng.Float64()
	u2 := rng.Float64()

	tan2Theta := -roughness * roughness * math.Log(1.0-u1)
	cosTheta := 1.0 / math.Sqrt(1.0+tan2Theta)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * u2

	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return NewONB(normal).Transform(local)
}

// Reflect returns the reflection of direction v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
