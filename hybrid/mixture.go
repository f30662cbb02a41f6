package hybrid

import (
	"fmt"
	"strings"

	"github.com/veltanor/hybnet/dtree"
	"github.com/veltanor/hybnet/gaussian"
	"github.com/veltanor/hybnet/vars"
)

// Mixture is a conditional density P(frontals | parents, discretes): a
// decision tree over the discrete parent keys whose leaves each hold the
// linear-Gaussian hypothesis for that assignment, or nothing. Immutable
// after construction.
type Mixture struct {
	frontals  []vars.Key
	parents   []vars.Key
	discretes vars.DiscreteKeys
	tree      *dtree.Tree[Hypothesis]
}

// New builds a mixture around an explicit hypothesis tree.
//
// The tree may branch on fewer keys than declared (a compressed tree drops
// keys no hypothesis depends on) but never on keys outside the declared
// discrete parents. Every present leaf must carry exactly the declared
// frontal and parent key sequences: leaves share one matrix layout.
//
// Errors: ErrNoDiscreteParents, ErrNilTree, ErrKeySetMismatch,
// ErrDimensionMismatch, and vars sentinels for invalid discrete keys.
func New(frontals, parents []vars.Key, discretes vars.DiscreteKeys, tree *dtree.Tree[Hypothesis]) (*Mixture, error) {
	if len(discretes) == 0 {
		return nil, ErrNoDiscreteParents
	}
	if err := discretes.Validate(); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	for _, dk := range tree.Keys() {
		i := discretes.IndexOf(dk.Key)
		if i < 0 {
			return nil, fmt.Errorf("%w (tree key %s undeclared)",
				ErrKeySetMismatch, vars.DefaultKeyFormatter(dk.Key))
		}
		if discretes[i].Card != dk.Card {
			return nil, fmt.Errorf("%w (key %s declared with cardinality %d, tree uses %d)",
				ErrKeySetMismatch, vars.DefaultKeyFormatter(dk.Key), discretes[i].Card, dk.Card)
		}
	}
	var leafErr error
	tree.Visit(func(h Hypothesis) {
		c, ok := h.Conditional()
		if !ok || leafErr != nil {
			return
		}
		if !vars.KeysEqual(c.Frontals(), frontals) {
			leafErr = fmt.Errorf("%w (leaf frontals [%s], declared [%s])",
				ErrDimensionMismatch, vars.FormatKeys(c.Frontals(), nil), vars.FormatKeys(frontals, nil))
			return
		}
		if !vars.KeysEqual(c.Parents(), parents) {
			leafErr = fmt.Errorf("%w (leaf parents [%s], declared [%s])",
				ErrDimensionMismatch, vars.FormatKeys(c.Parents(), nil), vars.FormatKeys(parents, nil))
		}
	})
	if leafErr != nil {
		return nil, leafErr
	}
	return &Mixture{
		frontals:  append([]vars.Key(nil), frontals...),
		parents:   append([]vars.Key(nil), parents...),
		discretes: discretes.Clone(),
		tree:      tree,
	}, nil
}

// FromConditionals builds a mixture from conditionals listed flat in
// canonical order over the declared discrete parents: first declared key
// outermost (slowest-varying), last key fastest. A nil entry is an absent
// hypothesis.
//
// Errors: ErrSizeMismatch when len(list) is not the product of the declared
// cardinalities, plus everything New reports.
func FromConditionals(frontals, parents []vars.Key, discretes vars.DiscreteKeys, list []*gaussian.Conditional) (*Mixture, error) {
	if len(discretes) == 0 {
		return nil, ErrNoDiscreteParents
	}
	if err := discretes.Validate(); err != nil {
		return nil, err
	}
	product, err := discretes.Product()
	if err != nil {
		return nil, err
	}
	if len(list) != product {
		return nil, fmt.Errorf("%w (%d conditionals for %d assignments)",
			ErrSizeMismatch, len(list), product)
	}
	leaves := make([]Hypothesis, len(list))
	for i, c := range list {
		leaves[i] = NewHypothesis(c)
	}
	tree, err := dtree.New(discretes, leaves, HypothesisEq(gaussian.DefaultTol))
	if err != nil {
		return nil, err
	}
	return New(frontals, parents, discretes, tree)
}

// Conditionals returns the hypothesis tree. Trees are immutable, so the
// caller may hold and traverse it freely.
func (m *Mixture) Conditionals() *dtree.Tree[Hypothesis] { return m.tree }

// Frontals returns the declared continuous frontal keys, in order.
func (m *Mixture) Frontals() []vars.Key {
	return append([]vars.Key(nil), m.frontals...)
}

// ContinuousParents returns the declared continuous parent keys, in order.
func (m *Mixture) ContinuousParents() []vars.Key {
	return append([]vars.Key(nil), m.parents...)
}

// ContinuousKeys returns frontals followed by parents.
func (m *Mixture) ContinuousKeys() []vars.Key {
	keys := make([]vars.Key, 0, len(m.frontals)+len(m.parents))
	keys = append(keys, m.frontals...)
	return append(keys, m.parents...)
}

// DiscreteKeys returns the declared discrete parent keys.
func (m *Mixture) DiscreteKeys() vars.DiscreteKeys { return m.discretes.Clone() }

// Equal reports near-equality at tol: equal frontal, parent, and discrete
// key sets (as sets), and hypothesis trees inducing the same function over
// every discrete assignment. Tree compression shape never matters.
func (m *Mixture) Equal(other *Mixture, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !vars.KeysEqualAsSets(m.frontals, other.frontals) ||
		!vars.KeysEqualAsSets(m.parents, other.parents) ||
		!m.discretes.EqualAsSets(other.discretes) {
		return false
	}
	return m.tree.EqualFunc(other.tree, HypothesisEq(tol))
}

// Choose returns the hypothesis selected by the given discrete assignment.
// The result may be absent; that is not an error.
//
// Errors: dtree.ErrMissingKey, dtree.ErrBadState.
func (m *Mixture) Choose(choice vars.Assignment) (Hypothesis, error) {
	return m.tree.At(choice)
}

// Error evaluates the negative log-density (up to a constant) of the
// hypothesis selected by choice at the continuous values.
//
// Errors: ErrNoHypothesis at an absent leaf, dtree evaluation sentinels,
// gaussian.ErrMissingValue.
func (m *Mixture) Error(cont gaussian.Values, choice vars.Assignment) (float64, error) {
	h, err := m.tree.At(choice)
	if err != nil {
		return 0, err
	}
	c, ok := h.Conditional()
	if !ok {
		return 0, fmt.Errorf("%w (%s)", ErrNoHypothesis, choice.Format(nil))
	}
	return c.Error(cont)
}

// Format renders the mixture deterministically: declared keys, then the
// hypothesis tree in canonical order. Cosmetic only.
func (m *Mixture) Format(kf vars.KeyFormatter) string {
	var sb strings.Builder
	sb.WriteString("Mixture P(" + vars.FormatKeys(m.frontals, kf))
	if len(m.parents) > 0 {
		sb.WriteString(" | " + vars.FormatKeys(m.parents, kf))
	}
	sb.WriteString(" ; " + vars.FormatKeys(m.discretes.Keys(), kf) + ")\n")
	sb.WriteString(m.tree.Format(kf, func(h Hypothesis) string { return h.format(kf) }))
	return sb.String()
}

// String renders the mixture with default key formatting.
func (m *Mixture) String() string { return m.Format(nil) }
