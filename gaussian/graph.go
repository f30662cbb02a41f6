package gaussian

import (
	"fmt"
	"strings"
)

// FactorGraph is an ordered collection of factors. The zero value is the
// empty collection.
type FactorGraph []*JacobianFactor

// Append returns a collection extended by f. The receiver's backing array is
// never written: results of Append do not alias each other.
func (g FactorGraph) Append(f *JacobianFactor) FactorGraph {
	return append(g[:len(g):len(g)], f)
}

// Concat returns a ++ b in a fresh backing array; neither operand aliases
// the result.
func Concat(a, b FactorGraph) FactorGraph {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make(FactorGraph, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Len reports the number of factors.
func (g FactorGraph) Len() int { return len(g) }

// Empty reports whether the collection holds no factors.
func (g FactorGraph) Empty() bool { return len(g) == 0 }

// Equal reports order-sensitive near-equality: same length, factors
// pairwise Equal within tol.
func (g FactorGraph) Equal(other FactorGraph, tol float64) bool {
	if len(g) != len(other) {
		return false
	}
	for i, f := range g {
		if !f.Equal(other[i], tol) {
			return false
		}
	}
	return true
}

// String renders the collection deterministically.
func (g FactorGraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FactorGraph (%d factors)\n", len(g))
	for i, f := range g {
		fmt.Fprintf(&sb, "[%d] %v", i, f)
	}
	return sb.String()
}
