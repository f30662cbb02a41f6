package sphere

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Retract maps tangent coordinates v at u onto the sphere by the projection
// retraction: normalize(u + B·v). The result stays exactly invertible by
// LocalCoordinates.
//
// Errors: ErrBadDimension.
func (u Unit) Retract(v *mat.VecDense) (Unit, error) {
	if v == nil || v.Len() != Dim {
		return Unit{}, fmt.Errorf("%w (want a %d-vector)", ErrBadDimension, Dim)
	}
	var step mat.VecDense
	step.MulVec(u.Basis(), v)
	step.AddVec(&step, u.Point())
	return FromVec(&step)
}

// LocalCoordinates inverts Retract: the tangent coordinates at u that reach
// other. Defined only while other stays strictly inside the hemisphere
// around u.
//
// Errors: ErrHemisphere.
func (u Unit) LocalCoordinates(other Unit) (*mat.VecDense, error) {
	c := u.dot(other)
	if c <= 0 {
		return nil, ErrHemisphere
	}
	v := mat.NewVecDense(Dim, nil)
	v.MulVec(u.Basis().T(), other.Point())
	v.ScaleVec(1/c, v)
	return v, nil
}
