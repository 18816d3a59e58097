// Package transform provides the ECEF ⇄ ECI coordinate frame transformation
// for position vectors.
//
// Method: simplified GMST-only rotation about the polar axis. Polar motion,
// precession and nutation are ignored.
//
// Reference: Vallado, "Fundamentals of Astrodynamics and Applications", Ch. 3.
package transform

import "math"

// Vector is a position in either frame, in kilometers.
type Vector struct {
	X float64 `json:"x_km"`
	Y float64 `json:"y_km"`
	Z float64 `json:"z_km"`
}

// Norm returns the magnitude of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Matrix is a row-major 3x3 matrix.
type Matrix [3][3]float64

// MulVec returns m·v.
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns mᵀ. For a rotation matrix this is its inverse.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// RotationMatrix returns the ECEF→ECI rotation for a GMST angle θ (radians):
//
//	[ cos(-θ)   sin(-θ)  0 ]
//	[ -sin(-θ)  cos(-θ)  0 ]
//	[ 0         0        1 ]
func RotationMatrix(theta float64) Matrix {
	s, c := math.Sincos(-theta)
	return Matrix{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// ECEFToECI rotates an ECEF position into ECI using a precomputed GMST angle.
func ECEFToECI(theta float64, ecef Vector) Vector {
	return RotationMatrix(theta).MulVec(ecef)
}

// ECIToECEF rotates an ECI position into ECEF using a precomputed GMST angle.
// It applies the transpose of the ECEFToECI matrix, which is the same as
// rotating by -θ.
func ECIToECEF(theta float64, eci Vector) Vector {
	return RotationMatrix(theta).Transpose().MulVec(eci)
}
