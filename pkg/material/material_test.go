package material

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestMaterial_Constructors(t *testing.T) {
	diffuse := Diffuse(core.NewVec3(0.8, 0.2, 0.2))
	if diffuse.Roughness != 1.0 || diffuse.Metallic != 0 || diffuse.Transparent {
		t.Errorf("Diffuse: unexpected parameters %+v", diffuse)
	}

	metal := Metal(core.NewVec3(0.9, 0.9, 0.9), 0.3)
	if metal.Metallic != 1.0 || metal.Roughness != 0.3 {
		t.Errorf("Metal: unexpected parameters %+v", metal)
	}

	mirror := Mirror(core.NewVec3(1, 1, 1))
	if mirror.Roughness != 0.01 {
		t.Errorf("Mirror: expected minimum roughness 0.01, got %f", mirror.Roughness)
	}

	glass := Glass(0.05, 1.5)
	if !glass.Transparent || glass.IOR != 1.5 {
		t.Errorf("Glass: unexpected parameters %+v", glass)
	}

	light := Light(core.NewVec3(1, 0.9, 0.8), 5.0)
	if light.Emittance != 5.0 {
		t.Errorf("Light: expected emittance 5, got %f", light.Emittance)
	}
}

func TestMaterial_ParameterClamping(t *testing.T) {
	// Roughness below the floor is lifted, above 1 is capped
	if m := Metal(core.NewVec3(1, 1, 1), 0.0); m.Roughness != 0.01 {
		t.Errorf("Expected roughness floor 0.01, got %f", m.Roughness)
	}
	if m := Metal(core.NewVec3(1, 1, 1), 5.0); m.Roughness != 1.0 {
		t.Errorf("Expected roughness cap 1.0, got %f", m.Roughness)
	}

	// An IOR of exactly 1 is nudged away so refraction math stays finite
	if m := Glass(0.1, 1.0); m.IOR == 1.0 {
		t.Error("Expected IOR to be nudged away from 1")
	}
	if m := Glass(0.1, -2.0); m.IOR <= 1.0 {
		t.Errorf("Expected non-positive IOR to be sanitized above 1, got %f", m.IOR)
	}
}

func TestMaterial_Emitted(t *testing.T) {
	light := Light(core.NewVec3(1, 0.5, 0.25), 4.0)
	want := core.NewVec3(4, 2, 1)
	if got := light.Emitted(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := Diffuse(core.NewVec3(1, 1, 1)).Emitted(); got != (core.Vec3{}) {
		t.Errorf("Expected non-emissive material to emit zero, got %v", got)
	}
}

func TestMaterial_FresnelF0(t *testing.T) {
	// Dielectric at IOR 1.5: F0 = ((1.5-1)/(1.5+1))^2 = 0.04
	glass := Glass(0.1, 1.5)
	f0 := glass.fresnelF0()
	if math.Abs(f0.X-0.04) > 1e-9 {
		t.Errorf("Expected dielectric F0 0.04, got %f", f0.X)
	}

	// A full conductor reflects its base color at normal incidence
	metal := Metal(core.NewVec3(0.9, 0.6, 0.3), 0.5)
	f0 = metal.fresnelF0()
	if !vecsClose(f0, core.NewVec3(0.9, 0.6, 0.3), 1e-9) {
		t.Errorf("Expected metallic F0 to equal base color, got %v", f0)
	}
}

func TestMaterial_RefractionIndices(t *testing.T) {
	glass := Glass(0.1, 1.5)

	etaView, etaFar := glass.refractionIndices(true)
	if etaView != 1.0 || etaFar != 1.5 {
		t.Errorf("Front face: expected (1, 1.5), got (%f, %f)", etaView, etaFar)
	}

	etaView, etaFar = glass.refractionIndices(false)
	if etaView != 1.5 || etaFar != 1.0 {
		t.Errorf("Back face: expected (1.5, 1), got (%f, %f)", etaView, etaFar)
	}
}

func vecsClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
