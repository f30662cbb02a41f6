package dtree

import (
	"github.com/veltanor/hybnet/vars"
)

// mkChoice wraps branches in a choice node on key, collapsing to the first
// branch when every branch induces the same function under eq. This is the
// mandatory compression pass: it runs on every node produced by any
// constructor or tree-producing operation. The branches slice is owned by
// the result; callers must not reuse it.
func mkChoice[L any](key vars.DiscreteKey, branches []node[L], eq EqFunc[L]) node[L] {
	for i := 1; i < len(branches); i++ {
		if !equalNodes(branches[0], branches[i], eq) {
			return &choice[L]{key: key, branches: branches}
		}
	}
	return branches[0]
}

// equalNodes reports assignment-based equality of two subtrees: the induced
// functions agree under eq on every joint assignment over the union of
// their key sets. The walk is structural (product recursion), so shape and
// compression differences never affect the verdict.
func equalNodes[L any](a, b node[L], eq EqFunc[L]) bool {
	la, aLeaf := a.(leaf[L])
	if aLeaf {
		if lb, bLeaf := b.(leaf[L]); bLeaf {
			return eq(la.value, lb.value)
		}
	}
	k, _ := minChoiceKey[L](a, b)
	for s := 0; s < k.Card; s++ {
		if !equalNodes(restrict[L](a, k.Key, s), restrict[L](b, k.Key, s), eq) {
			return false
		}
	}
	return true
}

// minChoiceKey returns the smallest key on which either root branches.
// Reports false only when both roots are leaves.
func minChoiceKey[L any](a, b node[L]) (vars.DiscreteKey, bool) {
	var k vars.DiscreteKey
	found := false
	if c, ok := a.(*choice[L]); ok {
		k, found = c.key, true
	}
	if c, ok := b.(*choice[L]); ok && (!found || c.key.Key < k.Key) {
		k, found = c.key, true
	}
	return k, found
}

// restrict fixes key=state in n, assuming key is no larger than n's root
// key. Under ascending path order a subtree whose root key differs cannot
// depend on key at all, so it is returned unchanged (broadcast case).
func restrict[L any](n node[L], key vars.Key, state int) node[L] {
	if c, ok := n.(*choice[L]); ok && c.key.Key == key {
		return c.branches[state]
	}
	return n
}

// keyCards returns the key→cardinality inventory of a subtree.
func keyCards[L any](n node[L]) map[vars.Key]int {
	cards := make(map[vars.Key]int)
	collectKeys[L](n, cards)
	return cards
}

// mergeCards folds src into dst, failing with ErrCardinalityClash when a
// key id carries different cardinalities on the two sides.
func mergeCards(dst, src map[vars.Key]int) error {
	for id, card := range src {
		if have, ok := dst[id]; ok && have != card {
			return ErrCardinalityClash
		}
		dst[id] = card
	}
	return nil
}
