// Package sphere provides a point on the unit sphere S², a 2-dof manifold
// primitive used for direction estimation (bearing-only measurements,
// surface normals).
//
// What:
//   - Unit: a direction, stored normalized. Constructors reject the zero
//     vector; everything else is scaled onto the sphere.
//   - Basis: an orthonormal 3×2 tangent basis at the point; Skew: the
//     skew-symmetric matrix of the point.
//   - Rotate / RotateWithJacobians: direction rotated by an orthonormal
//     3×3 matrix, with 2×3 and 2×2 tangent-space Jacobians.
//   - Distance / DistanceJacobian: geodesic angle between directions and
//     its 1×2 Jacobian in the other direction's tangent coordinates.
//   - Retract / LocalCoordinates: the projection retraction q =
//     normalize(p + B·v) and its exact inverse on the hemisphere facing p.
//
// Why:
//   - Estimators need a minimal 2-dof parameterization of directions; the
//     projection retraction keeps Retract and LocalCoordinates exact
//     inverses of each other, which optimization loops rely on.
//
// The zero Unit is invalid; always construct through New or FromVec. Units
// are immutable values, safe to copy and share.
//
// Errors: ErrZeroVector, ErrBadRotation, ErrBadDimension, ErrHemisphere,
// ErrDegenerate.
//
// Complexity: every operation is constant time on 3-vectors and small
// matrices.
package sphere
