package sphere

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// checkRotation verifies R is orthonormal 3×3 within a strict tolerance.
func checkRotation(R *mat.Dense) error {
	if R == nil {
		return fmt.Errorf("%w (nil)", ErrBadRotation)
	}
	if r, c := R.Dims(); r != 3 || c != 3 {
		return fmt.Errorf("%w (got %d×%d)", ErrBadRotation, r, c)
	}
	var rtr mat.Dense
	rtr.Mul(R.T(), R)
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	if !mat.EqualApprox(&rtr, eye, 1e-9) {
		return fmt.Errorf("%w (RᵀR differs from identity)", ErrBadRotation)
	}
	return nil
}

// Rotate returns R·u.
//
// Errors: ErrBadRotation.
func Rotate(R *mat.Dense, u Unit) (Unit, error) {
	if err := checkRotation(R); err != nil {
		return Unit{}, err
	}
	var q mat.VecDense
	q.MulVec(R, u.Point())
	return FromVec(&q)
}

// RotateWithJacobians returns R·u together with the tangent-space
// Jacobians: hr (2×3) with respect to a rotation perturbation R·exp(ω̂),
// and hu (2×2) with respect to u's tangent coordinates.
//
// Errors: ErrBadRotation.
func RotateWithJacobians(R *mat.Dense, u Unit) (q Unit, hr, hu *mat.Dense, err error) {
	q, err = Rotate(R, u)
	if err != nil {
		return Unit{}, nil, nil, err
	}
	bqT := q.Basis().T()

	// d(R·exp(ω̂)·p)/dω at ω = 0 is −R·û, projected onto q's tangent plane.
	hr = mat.NewDense(2, 3, nil)
	var rSkew mat.Dense
	rSkew.Mul(R, u.Skew())
	hr.Mul(bqT, &rSkew)
	hr.Scale(-1, hr)

	// Perturbing u along its basis moves q by R·Bu, again projected.
	hu = mat.NewDense(2, 2, nil)
	var rbu mat.Dense
	rbu.Mul(R, u.Basis())
	hu.Mul(bqT, &rbu)
	return q, hr, hu, nil
}

// Distance returns the geodesic angle between two directions, in [0, π].
func (u Unit) Distance(other Unit) float64 {
	cx, cy, cz := u.cross(other)
	sin := math.Sqrt(cx*cx + cy*cy + cz*cz)
	return math.Atan2(sin, u.dot(other))
}

// DistanceJacobian returns the angle together with its 1×2 Jacobian in
// other's tangent coordinates: moving other away from u grows the angle.
//
// Errors: ErrDegenerate at coincident or antipodal directions.
func (u Unit) DistanceJacobian(other Unit) (float64, *mat.Dense, error) {
	theta := u.Distance(other)
	sin := math.Sin(theta)
	if sin < 1e-12 {
		return theta, nil, ErrDegenerate
	}
	// ∇θ at other is −u_⊥/sin θ; the basis projection drops the normal
	// component of u on its own.
	j := mat.NewDense(1, 2, nil)
	var p mat.Dense
	p.Mul(u.Point().T(), other.Basis())
	j.Scale(-1/sin, &p)
	return theta, j, nil
}
