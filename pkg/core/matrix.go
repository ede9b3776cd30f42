package core

import "math"

// Mat4 is a row-major 4x4 matrix representing an affine transform
type Mat4 [4][4]float64

// IdentityMatrix returns the identity transform
func IdentityMatrix() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TranslationMatrix returns a transform that translates by offset
func TranslationMatrix(offset Vec3) Mat4 {
	m := IdentityMatrix()
	m[0][3] = offset.X
	m[1][3] = offset.Y
	m[2][3] = offset.Z
	return m
}

// ScaleMatrix returns a transform that scales each axis independently
func ScaleMatrix(factors Vec3) Mat4 {
	m := IdentityMatrix()
	m[0][0] = factors.X
	m[1][1] = factors.Y
	m[2][2] = factors.Z
	return m
}

// RotationYMatrix returns a rotation about the Y axis by angle radians
func RotationYMatrix(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationXMatrix returns a rotation about the X axis by angle radians
func RotationXMatrix(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationZMatrix returns a rotation about the Z axis by angle radians
func RotationZMatrix(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// TransformPoint applies the full affine transform (including translation) to p
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformDirection applies only the linear part of the transform to v
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// TransposedTransformDirection applies the transpose of the linear part to v.
// Calling this on an inverse matrix yields the inverse-transpose normal rule.
func (m Mat4) TransposedTransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// Inverse returns the inverse transform via Gauss-Jordan elimination.
// The second return value is false if the matrix is singular.
func (m Mat4) Inverse() (Mat4, bool) {
	inv := IdentityMatrix()
	work := m

	for col := 0; col < 4; col++ {
		// Partial pivoting
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(work[row][col]) > math.Abs(work[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(work[pivot][col]) < 1e-12 {
			return Mat4{}, false
		}
		work[col], work[pivot] = work[pivot], work[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale := 1.0 / work[col][col]
		for j := 0; j < 4; j++ {
			work[col][j] *= scale
			inv[col][j] *= scale
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := work[row][col]
			for j := 0; j < 4; j++ {
				work[row][j] -= factor * work[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}

	return inv, true
}
