package material

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestBSDF_DiffuseNearLambertian(t *testing.T) {
	// A diffuse material has negligible Fresnel, so the BSDF is close to
	// albedo/pi for any reflection geometry
	mat := Diffuse(core.NewVec3(0.8, 0.4, 0.2))
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)

	lightDirs := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0.5, 0, 0.866),
		core.NewVec3(-0.3, 0.6, 0.742).Normalize(),
	}

	for _, lightDir := range lightDirs {
		f := mat.BSDF(lightDir, view, normal, true)
		want := mat.Color.Multiply(1.0 / math.Pi)
		if !vecsClose(f, want, 1e-4) {
			t.Errorf("Light %v: expected near %v, got %v", lightDir, want, f)
		}
	}
}

func TestBSDF_ZeroBelowHorizon(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)
	below := core.NewVec3(0, 0.6, -0.8)

	// Opaque materials scatter nothing through the surface
	for _, mat := range []*Material{
		Diffuse(core.NewVec3(0.8, 0.8, 0.8)),
		Metal(core.NewVec3(0.9, 0.9, 0.9), 0.3),
	} {
		if f := mat.BSDF(below, view, normal, true); f != (core.Vec3{}) {
			t.Errorf("Expected zero BSDF below horizon, got %v", f)
		}
	}

	// A view direction below the surface is degenerate
	mat := Diffuse(core.NewVec3(0.8, 0.8, 0.8))
	if f := mat.BSDF(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), normal, true); f != (core.Vec3{}) {
		t.Errorf("Expected zero BSDF for view below surface, got %v", f)
	}
}

func TestBSDF_Reciprocity(t *testing.T) {
	// Swapping light and view directions leaves the reflection BSDF unchanged
	mat := Metal(core.NewVec3(0.9, 0.7, 0.5), 0.4)
	normal := core.NewVec3(0, 0, 1)
	a := core.NewVec3(0.3, 0.2, 0.933).Normalize()
	b := core.NewVec3(-0.5, 0.1, 0.86).Normalize()

	forward := mat.BSDF(a, b, normal, true)
	reverse := mat.BSDF(b, a, normal, true)
	if !vecsClose(forward, reverse, 1e-9) {
		t.Errorf("Expected reciprocal BSDF, got %v and %v", forward, reverse)
	}
}

func TestBSDF_MetalSpecularPeak(t *testing.T) {
	// The specular lobe peaks at the mirror configuration and falls off as the
	// light direction moves away from it
	mat := Metal(core.NewVec3(0.9, 0.9, 0.9), 0.2)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)

	peak := mat.BSDF(core.NewVec3(0, 0, 1), view, normal, true).Luminance()
	offPeak := mat.BSDF(core.NewVec3(0.6, 0, 0.8), view, normal, true).Luminance()

	if peak <= offPeak {
		t.Errorf("Expected peak %f to exceed off-peak %f", peak, offPeak)
	}
	if offPeak < 0 {
		t.Errorf("Expected non-negative BSDF, got %f", offPeak)
	}
}

func TestBSDF_GlassHasNoDiffuseLobe(t *testing.T) {
	// Transparent materials reflect only through the specular lobe, so the
	// value away from the mirror direction is far below a Lambertian lobe
	glass := Glass(0.05, 1.5)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)
	offSpecular := core.NewVec3(0.8, 0, 0.6)

	f := glass.BSDF(offSpecular, view, normal, true)
	if f.Luminance() > 1e-3 {
		t.Errorf("Expected near-zero off-specular reflection for glass, got %v", f)
	}
}

func TestBSDF_Transmission(t *testing.T) {
	glass := Glass(0.2, 1.5)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)

	// Straight-through transmission is the brightest configuration
	straight := glass.BSDF(core.NewVec3(0, 0, -1), view, normal, true)
	if straight.Luminance() <= 0 {
		t.Fatalf("Expected positive straight-through transmission, got %v", straight)
	}

	// Transmission through an opaque material is zero
	opaque := Diffuse(core.NewVec3(0.8, 0.8, 0.8))
	if f := opaque.BSDF(core.NewVec3(0, 0, -1), view, normal, true); f != (core.Vec3{}) {
		t.Errorf("Expected zero transmission for opaque material, got %v", f)
	}
}

func TestBSDF_TransmissionRespectsSnell(t *testing.T) {
	// For a smooth surface only direction pairs near Snell's law transmit
	// appreciably. View at 30 degrees entering glass refracts to about 19.5
	// degrees on the far side.
	glass := Glass(0.05, 1.5)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0.5, 0, math.Sqrt(3)/2)

	sinRefracted := 0.5 / 1.5
	cosRefracted := math.Sqrt(1 - sinRefracted*sinRefracted)
	snell := core.NewVec3(-sinRefracted, 0, -cosRefracted)
	offSnell := core.NewVec3(-0.7, 0, -math.Sqrt(1-0.49))

	good := glass.BSDF(snell, view, normal, true).Luminance()
	bad := glass.BSDF(offSnell, view, normal, true).Luminance()

	if good <= 0 {
		t.Fatalf("Expected positive transmission at the Snell direction, got %f", good)
	}
	if bad >= good/100 {
		t.Errorf("Expected off-Snell transmission to be far dimmer: snell=%g off=%g", good, bad)
	}
}

func TestBeckmannD_NormalizesOverHalfVectors(t *testing.T) {
	// Integrating D(h)·cos(h) over the hemisphere gives 1. The integrand
	// depends only on the polar angle, so a 1D quadrature suffices.
	for _, roughness := range []float64{0.1, 0.3, 0.7, 1.0} {
		mat := Metal(core.NewVec3(1, 1, 1), roughness)

		const steps = 20000
		integral := 0.0
		for i := 0; i < steps; i++ {
			theta := (float64(i) + 0.5) / steps * math.Pi / 2
			cos := math.Cos(theta)
			integral += mat.beckmannD(cos) * cos * math.Sin(theta) * (math.Pi / 2 / steps) * 2 * math.Pi
		}

		if math.Abs(integral-1.0) > 0.01 {
			t.Errorf("Roughness %f: expected D normalization 1, got %f", roughness, integral)
		}
	}
}
