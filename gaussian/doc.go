// Package gaussian provides the linear-Gaussian building blocks consumed by
// the hybrid layer: conditionals of the form
//
//	P(F | P) ∝ exp(−½ · ‖R·x_F + Σⱼ Sⱼ·x_Pⱼ − d‖²),
//
// the Jacobian factors they convert to, and ordered factor collections.
//
// What:
//   - Values: continuous variable values, one vector per key.
//   - Conditional: immutable per-key column blocks (R over the frontal keys,
//     one S block per parent key) and the right-hand side d.
//   - JacobianFactor: keys, per-key A blocks, and b; the factor view
//     A = [R | S₁ | … | Sₚ], b = d of a conditional.
//   - FactorGraph: an ordered []*JacobianFactor with value-semantics append
//     and aliasing-free concatenation.
//
// Why:
//   - The hybrid layer stores one Conditional per discrete assignment and
//     merges factor collections per assignment; it needs cheap structural
//     conversion and tolerance-based equality, not solvers.
//
// Conventions:
//   - Constructors copy every matrix and vector they are given; accessors
//     never expose internal storage. Built values are therefore safe to read
//     concurrently.
//   - R is upper-triangular by convention (as produced by elimination); the
//     constructors do not enforce triangularity.
//   - Equality is near-equality: identical ordered keys and shapes, entries
//     within an absolute tolerance. DefaultTol applies where no tolerance is
//     supplied by the caller.
//
// Errors:
//   - ErrKeyCount: key/block count disagreement or no frontal keys.
//   - ErrShapeMismatch: block row/column or right-hand-side length clash.
//   - ErrBadKey: duplicate key within one factor or conditional.
//   - ErrMissingValue: evaluation over Values lacking a referenced key.
//
// Complexity: construction and Equal are O(total matrix entries); Error is
// one matrix-vector product per block.
package gaussian
