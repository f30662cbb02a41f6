// Package hybrid implements the conditional mixture at the heart of a
// discrete+continuous probabilistic model: a conditional density
// P(X | M, Z) where X is a set of continuous frontal variables, Z their
// continuous parents, and M discrete parent variables selecting among
// linear-Gaussian hypotheses (mode or data-association hypotheses).
//
// What:
//   - Hypothesis: a tagged, possibly absent *gaussian.Conditional leaf.
//     Absence is a valid state, preserved through every operation.
//   - Mixture: immutable; declared continuous frontal and parent keys,
//     discrete parent keys, and a decision tree mapping every assignment of
//     the discrete parents to a Hypothesis.
//   - AsFactorGraphTree: the structural view used by elimination, mapping
//     each assignment to the factor collection of its hypothesis.
//   - Add: the merge that folds this mixture's factors into an externally
//     accumulated factor-graph tree, assignment by assignment.
//
// Why:
//   - Inference over hybrid models repeatedly merges per-assignment factor
//     collections across mixtures. Storing conditionals in a compressed
//     decision tree bounds that work by the number of distinct hypotheses,
//     not the full joint assignment space, and broadcasting in dtree.Apply
//     keeps the merge correct when the operands branch on different keys.
//
// The mixture satisfies two independent capability interfaces: Factor
// (scope and pointwise error) and Conditional (frontal/parent structure).
// Consumers depend on the capability they need.
//
// Construction errors: ErrNoDiscreteParents, ErrNilTree, ErrKeySetMismatch,
// ErrDimensionMismatch, ErrSizeMismatch. Evaluation at an absent leaf
// yields ErrNoHypothesis. Construction failures leave no partial mixture.
//
// All operations are pure: derived trees are fresh, operands are never
// mutated, and a built mixture is safe for concurrent readers.
//
// Complexity: construction O(leaves), Equal O(tree size), Add
// O(result size · max cardinality).
package hybrid
