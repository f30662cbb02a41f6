package hybrid

import (
	"github.com/veltanor/hybnet/dtree"
	"github.com/veltanor/hybnet/gaussian"
	"github.com/veltanor/hybnet/vars"
)

// Hypothesis is one leaf of a mixture: either a linear-Gaussian conditional
// or explicitly nothing. The zero value is absent.
type Hypothesis struct {
	cond *gaussian.Conditional
}

// NewHypothesis wraps a conditional; a nil conditional yields the absent
// hypothesis.
func NewHypothesis(c *gaussian.Conditional) Hypothesis {
	return Hypothesis{cond: c}
}

// Absent returns the hypothesis holding no conditional.
func Absent() Hypothesis { return Hypothesis{} }

// Present reports whether a conditional is held.
func (h Hypothesis) Present() bool { return h.cond != nil }

// Conditional returns the held conditional, if any.
func (h Hypothesis) Conditional() (*gaussian.Conditional, bool) {
	return h.cond, h.cond != nil
}

// Equal reports near-equality at tol. Absent compares equal only to absent.
func (h Hypothesis) Equal(other Hypothesis, tol float64) bool {
	if h.cond == nil || other.cond == nil {
		return h.cond == other.cond
	}
	return h.cond.Equal(other.cond, tol)
}

// HypothesisEq returns the leaf equality at tol, in the form decision-tree
// constructors take.
func HypothesisEq(tol float64) dtree.EqFunc[Hypothesis] {
	return func(a, b Hypothesis) bool { return a.Equal(b, tol) }
}

// String renders the hypothesis compactly, keys only.
func (h Hypothesis) String() string { return h.format(nil) }

func (h Hypothesis) format(kf vars.KeyFormatter) string {
	if h.cond == nil {
		return "(absent)"
	}
	s := "P(" + vars.FormatKeys(h.cond.Frontals(), kf)
	if parents := h.cond.Parents(); len(parents) > 0 {
		s += " | " + vars.FormatKeys(parents, kf)
	}
	return s + ")"
}
