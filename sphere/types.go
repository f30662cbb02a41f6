package sphere

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrZeroVector signals construction from the zero vector, which names
	// no direction.
	ErrZeroVector = errors.New("sphere: zero vector has no direction")
	// ErrBadRotation signals a rotation argument that is not orthonormal
	// 3×3.
	ErrBadRotation = errors.New("sphere: rotation must be orthonormal 3×3")
	// ErrBadDimension signals a tangent vector whose length is not 2, or a
	// point vector whose length is not 3.
	ErrBadDimension = errors.New("sphere: wrong vector dimension")
	// ErrHemisphere signals local coordinates of a direction on or beyond
	// the equator relative to the base point, where the projection
	// retraction has no inverse.
	ErrHemisphere = errors.New("sphere: direction outside the local hemisphere")
	// ErrDegenerate signals a distance Jacobian at coincident or antipodal
	// directions, where the geodesic direction is undefined.
	ErrDegenerate = errors.New("sphere: jacobian undefined at coincident or antipodal directions")
)

// Dim is the tangent-space dimensionality of the sphere.
const Dim = 2

// Unit is a point on the unit sphere. Construct through New or FromVec; the
// zero Unit is not a valid direction.
type Unit struct {
	x, y, z float64
}

// New normalizes (x, y, z) onto the sphere.
func New(x, y, z float64) (Unit, error) {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return Unit{}, ErrZeroVector
	}
	return Unit{x: x / n, y: y / n, z: z / n}, nil
}

// FromVec normalizes a 3-vector onto the sphere.
//
// Errors: ErrBadDimension, ErrZeroVector.
func FromVec(v *mat.VecDense) (Unit, error) {
	if v == nil || v.Len() != 3 {
		return Unit{}, fmt.Errorf("%w (want a 3-vector)", ErrBadDimension)
	}
	return New(v.AtVec(0), v.AtVec(1), v.AtVec(2))
}

// Point returns the direction as a fresh 3-vector.
func (u Unit) Point() *mat.VecDense {
	return mat.NewVecDense(3, []float64{u.x, u.y, u.z})
}

// Equal reports whether both directions agree componentwise within tol.
func (u Unit) Equal(other Unit, tol float64) bool {
	return math.Abs(u.x-other.x) <= tol &&
		math.Abs(u.y-other.y) <= tol &&
		math.Abs(u.z-other.z) <= tol
}

// String renders the direction with fixed precision.
func (u Unit) String() string {
	return fmt.Sprintf("Unit(%.6f %.6f %.6f)", u.x, u.y, u.z)
}

// dot is the inner product of two directions.
func (u Unit) dot(other Unit) float64 {
	return u.x*other.x + u.y*other.y + u.z*other.z
}

// cross is the cross product of two directions (not normalized).
func (u Unit) cross(other Unit) (x, y, z float64) {
	return u.y*other.z - u.z*other.y,
		u.z*other.x - u.x*other.z,
		u.x*other.y - u.y*other.x
}
