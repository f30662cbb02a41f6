package dtree

import (
	"errors"
	"sort"

	"github.com/veltanor/hybnet/vars"
)

// Sentinel errors for decision-tree construction and evaluation.
var (
	// ErrNilEq indicates a constructor was given a nil leaf-equality function.
	ErrNilEq = errors.New("dtree: leaf equality function is nil")

	// ErrNilTree indicates a nil tree was passed where an operand is required.
	ErrNilTree = errors.New("dtree: tree operand is nil")

	// ErrNilCombine indicates Apply was given a nil combiner.
	ErrNilCombine = errors.New("dtree: combine function is nil")

	// ErrNilMap indicates Map was given a nil transform.
	ErrNilMap = errors.New("dtree: map function is nil")

	// ErrBadCardinality indicates a key with fewer than two states.
	ErrBadCardinality = errors.New("dtree: key cardinality must be at least 2")

	// ErrDuplicateKey indicates a key listed twice in a constructor key set,
	// or an explicit branch that depends on the key selecting it.
	ErrDuplicateKey = errors.New("dtree: duplicate key")

	// ErrLeafCount indicates a flat leaf list whose length differs from the
	// product of the key cardinalities.
	ErrLeafCount = errors.New("dtree: leaf count does not match cardinality product")

	// ErrBranchCount indicates an explicit branch list whose length differs
	// from the branching key's cardinality.
	ErrBranchCount = errors.New("dtree: branch count does not match cardinality")

	// ErrCardinalityClash indicates one key id carrying two different
	// cardinalities across operands or branches.
	ErrCardinalityClash = errors.New("dtree: key used with conflicting cardinalities")

	// ErrMissingKey indicates an evaluation assignment that does not cover a
	// key the tree branches on.
	ErrMissingKey = errors.New("dtree: assignment misses a key the tree branches on")

	// ErrBadState indicates a state index outside [0, cardinality).
	ErrBadState = errors.New("dtree: state index out of range")
)

// EqFunc decides whether two leaf values are equal. Compression and tree
// equality use it exclusively; leaf identity is never consulted.
type EqFunc[L any] func(a, b L) bool

// Tree is a compressed decision tree over discrete keys with leaves of
// type L. Semantically it is a total function from assignments over its
// key set to L. Trees are immutable: every operation that would change a
// tree returns a new one.
type Tree[L any] struct {
	root node[L]
	eq   EqFunc[L]
}

// node is one vertex of a tree: either a leaf or a choice.
type node[L any] interface {
	isLeaf() bool
}

// leaf holds a single value of the induced function.
type leaf[L any] struct {
	value L
}

func (leaf[L]) isLeaf() bool { return true }

// choice branches on one discrete key with exactly Card branches.
type choice[L any] struct {
	key      vars.DiscreteKey
	branches []node[L]
}

func (*choice[L]) isLeaf() bool { return false }

// IsLeaf reports whether the tree is a single leaf (depends on no keys).
func (t *Tree[L]) IsLeaf() bool {
	return t.root.isLeaf()
}

// Eq returns the tree's leaf-equality function.
func (t *Tree[L]) Eq() EqFunc[L] {
	return t.eq
}

// Keys returns the discrete keys the tree actually branches on, ascending
// by key id. Keys eliminated by compression do not appear.
// Complexity: O(size of tree).
func (t *Tree[L]) Keys() vars.DiscreteKeys {
	cards := make(map[vars.Key]int)
	collectKeys[L](t.root, cards)
	ids := make([]vars.Key, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make(vars.DiscreteKeys, len(ids))
	for i, id := range ids {
		out[i] = vars.DiscreteKey{Key: id, Card: cards[id]}
	}
	return out
}

// collectKeys walks n accumulating key cardinalities. Within one valid tree
// a key id always carries a single cardinality.
func collectKeys[L any](n node[L], cards map[vars.Key]int) {
	c, ok := n.(*choice[L])
	if !ok {
		return
	}
	cards[c.key.Key] = c.key.Card
	for _, b := range c.branches {
		collectKeys[L](b, cards)
	}
}

// NumLeaves returns the number of leaf nodes in the compressed
// representation. After compression this is the number of distinct
// reachable leaf regions, not the joint assignment count.
// Complexity: O(size of tree).
func (t *Tree[L]) NumLeaves() int {
	return countLeaves[L](t.root)
}

func countLeaves[L any](n node[L]) int {
	c, ok := n.(*choice[L])
	if !ok {
		return 1
	}
	total := 0
	for _, b := range c.branches {
		total += countLeaves[L](b)
	}
	return total
}
