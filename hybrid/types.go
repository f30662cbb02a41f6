package hybrid

import (
	"errors"

	"github.com/veltanor/hybnet/gaussian"
	"github.com/veltanor/hybnet/vars"
)

var (
	// ErrNoDiscreteParents signals a mixture declared without discrete
	// parent keys; a mixture must branch on at least one.
	ErrNoDiscreteParents = errors.New("hybrid: no discrete parent keys")
	// ErrNilTree signals construction from a nil conditional tree.
	ErrNilTree = errors.New("hybrid: nil conditional tree")
	// ErrKeySetMismatch signals a conditional tree branching on keys outside
	// the declared discrete parents, or with clashing cardinalities.
	ErrKeySetMismatch = errors.New("hybrid: tree keys outside declared discrete parents")
	// ErrDimensionMismatch signals a present leaf whose frontal or parent
	// key sequence differs from the mixture's declared sequences.
	ErrDimensionMismatch = errors.New("hybrid: leaf keys differ from declared continuous keys")
	// ErrSizeMismatch signals a flat conditional list whose length is not
	// the product of the discrete parents' cardinalities.
	ErrSizeMismatch = errors.New("hybrid: conditional count does not match joint cardinality")
	// ErrNoHypothesis signals evaluation at an assignment holding an absent
	// hypothesis. Absence itself is a valid state; only evaluation fails.
	ErrNoHypothesis = errors.New("hybrid: no hypothesis at assignment")
)

// Factor is the capability a hybrid factor exposes to inference: its
// continuous and discrete scope, and a pointwise error given values for
// both.
type Factor interface {
	ContinuousKeys() []vars.Key
	DiscreteKeys() vars.DiscreteKeys
	Error(cont gaussian.Values, choice vars.Assignment) (float64, error)
}

// Conditional is the conditional capability on top of Factor: which of the
// continuous keys are frontal and which are parents.
type Conditional interface {
	Factor
	Frontals() []vars.Key
	ContinuousParents() []vars.Key
}

var (
	_ Factor      = (*Mixture)(nil)
	_ Conditional = (*Mixture)(nil)
)
