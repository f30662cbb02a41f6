package dtree

import (
	"github.com/veltanor/hybnet/vars"
)

// NewLeaf returns the constant tree: every assignment maps to v.
// The equality function becomes the tree's leaf equality for all later
// operations; a nil eq is a programming error and panics.
// Complexity: O(1).
func NewLeaf[L any](v L, eq EqFunc[L]) *Tree[L] {
	if eq == nil {
		panic(ErrNilEq)
	}
	return &Tree[L]{root: leaf[L]{value: v}, eq: eq}
}

// New builds a tree from a flat ordered leaf list over the given keys.
// The first key is the outermost branch: leaves enumerate assignments in
// canonical nested order, the last key varying fastest. The input slice is
// read, never retained.
//
// Errors: ErrNilEq, ErrBadCardinality, ErrDuplicateKey, ErrLeafCount
// (len(leaves) ≠ product of cardinalities, including overflowing products).
// Complexity: O(len(leaves)).
func New[L any](keys vars.DiscreteKeys, leaves []L, eq EqFunc[L]) (*Tree[L], error) {
	if eq == nil {
		return nil, ErrNilEq
	}
	seen := make(map[vars.Key]struct{}, len(keys))
	for _, dk := range keys {
		if dk.Card < vars.MinCardinality {
			return nil, ErrBadCardinality
		}
		if _, dup := seen[dk.Key]; dup {
			return nil, ErrDuplicateKey
		}
		seen[dk.Key] = struct{}{}
	}
	product, err := keys.Product()
	if err != nil || product != len(leaves) {
		return nil, ErrLeafCount
	}

	// Strides in the given order: the first key owns the largest stride.
	strides := make([]int, len(keys))
	stride := 1
	for i := len(keys) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= keys[i].Card
	}
	// Build in canonical (ascending id) order so path order holds by
	// construction regardless of the caller's key order.
	order := canonicalOrder(keys)

	return &Tree[L]{root: buildFlat(keys, strides, order, 0, 0, leaves, eq), eq: eq}, nil
}

// canonicalOrder returns index positions of keys sorted ascending by id.
func canonicalOrder(keys vars.DiscreteKeys) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && keys[order[j]].Key < keys[order[j-1]].Key; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// buildFlat assembles the subtree for the canonical key at position depth,
// with base indexing the flat slice under the states fixed so far.
func buildFlat[L any](keys vars.DiscreteKeys, strides, order []int, depth, base int, leaves []L, eq EqFunc[L]) node[L] {
	if depth == len(order) {
		return leaf[L]{value: leaves[base]}
	}
	ki := order[depth]
	dk := keys[ki]
	branches := make([]node[L], dk.Card)
	for s := 0; s < dk.Card; s++ {
		branches[s] = buildFlat(keys, strides, order, depth+1, base+s*strides[ki], leaves, eq)
	}
	return mkChoice(dk, branches, eq)
}

// NewChoice builds a tree from explicitly given branches: branch i is the
// restriction of the result to key = i. Branches may branch on any other
// keys; the constructor normalizes to canonical path order. All branches
// must share the result's leaf equality (the first branch's is used).
//
// Errors: ErrBadCardinality, ErrBranchCount, ErrNilTree, ErrNilEq,
// ErrCardinalityClash (a key id reused with a different cardinality),
// ErrDuplicateKey (a branch depends on key itself).
// Complexity: O(output size · cardinality of key).
func NewChoice[L any](key vars.DiscreteKey, branches []*Tree[L]) (*Tree[L], error) {
	if key.Card < vars.MinCardinality {
		return nil, ErrBadCardinality
	}
	if len(branches) != key.Card {
		return nil, ErrBranchCount
	}
	cards := map[vars.Key]int{key.Key: key.Card}
	for _, b := range branches {
		if b == nil {
			return nil, ErrNilTree
		}
		inv := keyCards[L](b.root)
		if card, inside := inv[key.Key]; inside {
			if card != key.Card {
				return nil, ErrCardinalityClash
			}
			return nil, ErrDuplicateKey
		}
		if err := mergeCards(cards, inv); err != nil {
			return nil, err
		}
	}
	eq := branches[0].eq
	if eq == nil {
		return nil, ErrNilEq
	}
	roots := make([]node[L], len(branches))
	for i, b := range branches {
		roots[i] = b.root
	}
	return &Tree[L]{root: choiceOf(key, roots, eq), eq: eq}, nil
}

// choiceOf stitches branches under key while keeping ascending path order:
// any branch key smaller than key is pulled above it, one key per level.
func choiceOf[L any](key vars.DiscreteKey, branches []node[L], eq EqFunc[L]) node[L] {
	var m vars.DiscreteKey
	found := false
	for _, b := range branches {
		if c, ok := b.(*choice[L]); ok && c.key.Key < key.Key {
			if !found || c.key.Key < m.Key {
				m, found = c.key, true
			}
		}
	}
	if !found {
		return mkChoice(key, branches, eq)
	}
	out := make([]node[L], m.Card)
	for s := 0; s < m.Card; s++ {
		sub := make([]node[L], len(branches))
		for i, b := range branches {
			sub[i] = restrict[L](b, m.Key, s)
		}
		out[s] = choiceOf(key, sub, eq)
	}
	return mkChoice(m, out, eq)
}
