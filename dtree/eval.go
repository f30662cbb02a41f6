package dtree

import (
	"fmt"

	"github.com/veltanor/hybnet/vars"
)

// At evaluates the tree at the given assignment. Keys the tree does not
// branch on are ignored; a missing key the tree does branch on yields
// ErrMissingKey, an out-of-range state ErrBadState.
// Complexity: O(path length).
func (t *Tree[L]) At(a vars.Assignment) (L, error) {
	var zero L
	n := t.root
	for {
		c, ok := n.(*choice[L])
		if !ok {
			return n.(leaf[L]).value, nil
		}
		state, present := a[c.key.Key]
		if !present {
			return zero, fmt.Errorf("%w (key %s)", ErrMissingKey, vars.DefaultKeyFormatter(c.key.Key))
		}
		if state < 0 || state >= c.key.Card {
			return zero, fmt.Errorf("%w (key %s state %d)", ErrBadState, vars.DefaultKeyFormatter(c.key.Key), state)
		}
		n = c.branches[state]
	}
}

// Choose restricts the tree to key = state, returning a tree that no
// longer branches on key. When the tree does not depend on key the
// receiver itself is returned: trees are immutable, so sharing is safe.
//
// Errors: ErrBadState.
// Complexity: O(size of tree).
func (t *Tree[L]) Choose(key vars.Key, state int) (*Tree[L], error) {
	if state < 0 {
		return nil, ErrBadState
	}
	card, present := keyCards[L](t.root)[key]
	if !present {
		return t, nil
	}
	if state >= card {
		return nil, fmt.Errorf("%w (key %s state %d)", ErrBadState, vars.DefaultKeyFormatter(key), state)
	}
	return &Tree[L]{root: chooseRec(t.root, key, state, t.eq), eq: t.eq}, nil
}

// chooseRec removes the key level wherever it occurs. Subtrees rooted above
// the key rebuild (and re-compress) around the restricted branches; subtrees
// rooted below it cannot contain the key and pass through unchanged.
func chooseRec[L any](n node[L], key vars.Key, state int, eq EqFunc[L]) node[L] {
	c, ok := n.(*choice[L])
	if !ok || c.key.Key > key {
		return n
	}
	if c.key.Key == key {
		return c.branches[state]
	}
	branches := make([]node[L], len(c.branches))
	for i, b := range c.branches {
		branches[i] = chooseRec(b, key, state, eq)
	}
	return mkChoice(c.key, branches, eq)
}

// Visit calls fn once per stored leaf, in canonical order (ascending key
// ids, states ascending within a key). Compressed leaves are visited once
// however many assignments they cover.
func (t *Tree[L]) Visit(fn func(L)) {
	if fn == nil {
		return
	}
	visitRec(t.root, fn)
}

func visitRec[L any](n node[L], fn func(L)) {
	if l, ok := n.(leaf[L]); ok {
		fn(l.value)
		return
	}
	for _, b := range n.(*choice[L]).branches {
		visitRec(b, fn)
	}
}

// VisitWith is Visit with path context: fn receives the assignment of the
// keys actually branched on along the leaf's path. The leaf's value covers
// every extension of that partial assignment. The assignment passed to fn
// is the callee's to keep.
func (t *Tree[L]) VisitWith(fn func(vars.Assignment, L)) {
	if fn == nil {
		return
	}
	visitWithRec(t.root, make(vars.Assignment), fn)
}

func visitWithRec[L any](n node[L], path vars.Assignment, fn func(vars.Assignment, L)) {
	if l, ok := n.(leaf[L]); ok {
		fn(path.Clone(), l.value)
		return
	}
	c := n.(*choice[L])
	for s, b := range c.branches {
		path[c.key.Key] = s
		visitWithRec(b, path, fn)
	}
	delete(path, c.key.Key)
}

// Flatten enumerates the induced function as a flat leaf list over the
// given key ordering, first key outermost. It inverts New: feeding the
// result back with the same keys rebuilds an equal tree. The given keys
// must cover the tree's own keys with matching cardinalities.
//
// Errors: ErrBadCardinality, ErrDuplicateKey, ErrMissingKey,
// ErrCardinalityClash, vars.ErrProductOverflow.
// Complexity: O(P·n) for P joint assignments over n keys.
func (t *Tree[L]) Flatten(keys vars.DiscreteKeys) ([]L, error) {
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
	for id, card := range keyCards[L](t.root) {
		i := keys.IndexOf(id)
		if i < 0 {
			return nil, fmt.Errorf("%w (key %s)", ErrMissingKey, vars.DefaultKeyFormatter(id))
		}
		if keys[i].Card != card {
			return nil, ErrCardinalityClash
		}
	}
	product, err := keys.Product()
	if err != nil {
		return nil, err
	}
	out := make([]L, 0, product)
	for _, a := range vars.Assignments(keys) {
		v, err := t.At(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
