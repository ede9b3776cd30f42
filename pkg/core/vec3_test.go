package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Z-0.8) > 1e-12 {
		t.Errorf("Expected (0.6,0,0.8), got %v", v)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d): expected %f, got %f", axis, want, got)
		}
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0): expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1): expected %v, got %v", b, got)
	}
	if got := a.Lerp(b, 0.5); got != NewVec3(1, 2, 3) {
		t.Errorf("Lerp(0.5): expected (1,2,3), got %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestVec3_Luminance(t *testing.T) {
	// The luminance weights sum to 1, so white has luminance 1
	if got := NewVec3(1, 1, 1).Luminance(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected white luminance 1, got %f", got)
	}
	if got := NewVec3(0, 1, 0).Luminance(); math.Abs(got-0.587) > 1e-12 {
		t.Errorf("Expected green luminance 0.587, got %f", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"finite", NewVec3(1, 2, 3), true},
		{"zero", Vec3{}, true},
		{"nan", NewVec3(math.NaN(), 0, 0), false},
		{"positive inf", NewVec3(0, math.Inf(1), 0), false},
		{"negative inf", NewVec3(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %t, want %t", tt.v, got, tt.want)
			}
		})
	}
}
