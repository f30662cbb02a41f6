// Package hybnet is your in-memory toolkit for hybrid discrete+continuous
// probabilistic models: decision-tree-indexed Gaussian hypotheses and the
// per-assignment merge machinery behind hybrid inference.
//
// 🚀 What is hybnet?
//
//	A small, pure-data-structure library that brings together:
//		• Variable bookkeeping: keys, symbols, discrete keys & assignment enumeration
//		• Decision trees: compressed, assignment-exact, with broadcasting apply
//		• Linear-Gaussian pieces: conditionals, Jacobian factors & factor collections
//		• Conditional mixtures: per-mode hypotheses and the factor-graph merge
//		• A unit-sphere manifold point for direction estimation
//
// ✨ Why choose hybnet?
//
//   - Assignment-exact semantics – equality and merge are defined per discrete
//     assignment, never by internal tree shape
//   - Immutable values – every operation returns fresh trees; built values are
//     safe for concurrent readers with no locks
//   - Pure Go + gonum – dense linear algebra through gonum.org/v1/gonum/mat,
//     nothing hidden
//   - Explicit absence – a missing hypothesis is a tagged state, not a nil
//
// Under the hood, everything is organized under five subpackages:
//
//	vars/     — Key, Symbol, DiscreteKey, Assignment & canonical enumeration
//	dtree/    — the compressed decision tree: New, Apply, Map, Choose, Flatten
//	gaussian/ — Conditional, JacobianFactor, FactorGraph, Values
//	hybrid/   — Mixture, Hypothesis, AsFactorGraphTree, Add
//	sphere/   — Unit, Basis, Rotate, Retract, LocalCoordinates
//
// Quick ASCII example:
//
//	     (m0)
//	    0/  \1
//	 P(x|z)  P(x|z)
//
//	a two-hypothesis mixture: mode m0 picks which Gaussian governs x.
//
// Dive into the examples/ directory for end-to-end scenarios, from cost
// tables to a full per-mode factor-graph merge.
//
//	go get github.com/veltanor/hybnet
package hybnet
