package dtree

// Apply combines two trees pointwise: for every joint assignment over the
// union of both key sets the result leaf is combine(thisLeaf, otherLeaf).
// A key present in only one operand is branched over fully in the result,
// with the other operand's value repeated across its states (broadcast).
// The result is compressed and uses the receiver's leaf equality; neither
// operand is mutated.
//
// Errors: ErrNilTree, ErrNilCombine, ErrCardinalityClash (a key id used
// with different cardinalities by the operands).
// Complexity: O(|result|·C) for maximum cardinality C; recursion depth is
// the number of distinct keys on a path of the result.
func (t *Tree[L]) Apply(other *Tree[L], combine func(a, b L) L) (*Tree[L], error) {
	if t == nil || other == nil {
		return nil, ErrNilTree
	}
	if combine == nil {
		return nil, ErrNilCombine
	}
	if t.eq == nil {
		return nil, ErrNilEq
	}
	cards := keyCards[L](t.root)
	if err := mergeCards(cards, keyCards[L](other.root)); err != nil {
		return nil, err
	}
	return &Tree[L]{root: applyRec(t.root, other.root, combine, t.eq), eq: t.eq}, nil
}

// applyRec is the joint Shannon recursion: expand on the smallest root key
// of either side, restricting both operands, until both sides are leaves.
func applyRec[L any](a, b node[L], combine func(x, y L) L, eq EqFunc[L]) node[L] {
	la, aLeaf := a.(leaf[L])
	if aLeaf {
		if lb, bLeaf := b.(leaf[L]); bLeaf {
			return leaf[L]{value: combine(la.value, lb.value)}
		}
	}
	k, _ := minChoiceKey[L](a, b)
	branches := make([]node[L], k.Card)
	for s := 0; s < k.Card; s++ {
		branches[s] = applyRec(restrict[L](a, k.Key, s), restrict[L](b, k.Key, s), combine, eq)
	}
	return mkChoice(k, branches, eq)
}

// Map transforms every leaf of t through f into a tree over the same keys,
// compressed under the target type's equality eq. The tree shape is
// preserved except where f makes previously distinct leaves coincide.
// A free function because the leaf type changes.
//
// Errors: ErrNilTree, ErrNilMap, ErrNilEq.
// Complexity: O(size of t).
func Map[A, B any](t *Tree[A], f func(A) B, eq EqFunc[B]) (*Tree[B], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if f == nil {
		return nil, ErrNilMap
	}
	if eq == nil {
		return nil, ErrNilEq
	}
	return &Tree[B]{root: mapRec(t.root, f, eq), eq: eq}, nil
}

func mapRec[A, B any](n node[A], f func(A) B, eq EqFunc[B]) node[B] {
	if l, ok := n.(leaf[A]); ok {
		return leaf[B]{value: f(l.value)}
	}
	c := n.(*choice[A])
	branches := make([]node[B], len(c.branches))
	for i, b := range c.branches {
		branches[i] = mapRec(b, f, eq)
	}
	return mkChoice(c.key, branches, eq)
}

// Equal reports whether the two trees induce the same function over every
// assignment of the union of their key sets, under the receiver's leaf
// equality. Internal shape, compression state, and construction key order
// never influence the verdict. Trees over clashing cardinalities are never
// equal.
// Complexity: O(product of tree sizes) worst case.
func (t *Tree[L]) Equal(other *Tree[L]) bool {
	if t == nil {
		return false
	}
	return t.EqualFunc(other, t.eq)
}

// EqualFunc is Equal under an explicit leaf equality instead of the
// receiver's own, e.g. a tolerance chosen at comparison time.
func (t *Tree[L]) EqualFunc(other *Tree[L], eq EqFunc[L]) bool {
	if t == nil || other == nil || eq == nil {
		return false
	}
	cards := keyCards[L](t.root)
	if err := mergeCards(cards, keyCards[L](other.root)); err != nil {
		return false
	}
	return equalNodes(t.root, other.root, eq)
}
