package sphere

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Basis returns an orthonormal 3×2 basis [b1 b2] of the tangent plane at u.
// The first column is the normalized cross product of u with the coordinate
// axis least aligned with it, the second completes the right-handed frame.
func (u Unit) Basis() *mat.Dense {
	ax, ay, az := math.Abs(u.x), math.Abs(u.y), math.Abs(u.z)
	axis := Unit{x: 1}
	switch {
	case ay <= ax && ay <= az:
		axis = Unit{y: 1}
	case az <= ax && az <= ay:
		axis = Unit{z: 1}
	}
	b1x, b1y, b1z := u.cross(axis)
	n1 := math.Sqrt(b1x*b1x + b1y*b1y + b1z*b1z)
	b1x, b1y, b1z = b1x/n1, b1y/n1, b1z/n1

	b1 := Unit{x: b1x, y: b1y, z: b1z}
	b2x, b2y, b2z := u.cross(b1)

	return mat.NewDense(3, 2, []float64{
		b1x, b2x,
		b1y, b2y,
		b1z, b2z,
	})
}

// Skew returns the 3×3 skew-symmetric matrix û, so that û·w = u × w.
func (u Unit) Skew() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -u.z, u.y,
		u.z, 0, -u.x,
		-u.y, u.x, 0,
	})
}
