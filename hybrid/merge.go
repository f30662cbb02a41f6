package hybrid

import (
	"github.com/veltanor/hybnet/dtree"
	"github.com/veltanor/hybnet/gaussian"
)

// fgEq compares factor collections at the package default tolerance; the
// equality under which derived factor-graph trees compress.
func fgEq(a, b gaussian.FactorGraph) bool {
	return a.Equal(b, gaussian.DefaultTol)
}

// AsFactorGraphTree derives the factor view of the mixture: a tree over the
// same discrete assignments where a present hypothesis becomes a one-factor
// collection and an absent one an empty collection. The tree is built fresh
// on every call and shares no storage with the mixture.
func (m *Mixture) AsFactorGraphTree() *dtree.Tree[gaussian.FactorGraph] {
	tree, err := dtree.Map(m.tree, func(h Hypothesis) gaussian.FactorGraph {
		c, ok := h.Conditional()
		if !ok {
			return nil
		}
		return gaussian.FactorGraph{c.ToFactor()}
	}, fgEq)
	if err != nil {
		// Map fails only on nil arguments, which this call never passes.
		panic(err)
	}
	return tree
}

// Add folds this mixture's factors into an externally accumulated
// factor-graph tree: for every joint assignment over the union of the
// mixture's discrete parents and sum's keys, the result holds sum's
// collection extended by this mixture's factor for that assignment. Keys
// present in only one operand broadcast; keys in neither stay out of the
// result. Neither operand is mutated.
//
// Errors: dtree.ErrNilTree, dtree.ErrCardinalityClash.
func (m *Mixture) Add(sum *dtree.Tree[gaussian.FactorGraph]) (*dtree.Tree[gaussian.FactorGraph], error) {
	return m.AsFactorGraphTree().Apply(sum, gaussian.Concat)
}

// NewEmptySum returns the identity for Add: the tree holding the empty
// factor collection at every assignment.
func NewEmptySum() *dtree.Tree[gaussian.FactorGraph] {
	return dtree.NewLeaf(gaussian.FactorGraph(nil), fgEq)
}
