package vars

import (
	"sort"
	"strconv"
	"strings"
)

// Assignment maps discrete keys to chosen state indices, one per key,
// each within [0, cardinality) of the corresponding DiscreteKey.
type Assignment map[Key]int

// Clone returns an independent copy of the assignment.
// Complexity: O(n).
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy of the assignment with k set to state.
// The receiver is never mutated.
// Complexity: O(n).
func (a Assignment) With(k Key, state int) Assignment {
	out := a.Clone()
	out[k] = state
	return out
}

// Format renders the assignment deterministically (keys ascending) using
// the given formatter, e.g. "m0=1 m1=0". A nil formatter falls back to
// DefaultKeyFormatter.
func (a Assignment) Format(kf KeyFormatter) string {
	if kf == nil {
		kf = DefaultKeyFormatter
	}
	keys := make([]Key, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kf(k))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(a[k]))
	}
	return sb.String()
}

// Assignments enumerates every joint assignment over keys in canonical
// order: the first key varies slowest (outermost), the last fastest.
// The empty set yields a single empty assignment.
//
// The result holds product-of-cardinalities maps; callers enumerating large
// joint spaces should prefer streaming via decision-tree visits instead.
// Complexity: O(P·n) time and memory for P joint states over n keys.
func Assignments(keys DiscreteKeys) []Assignment {
	product, err := keys.Product()
	if err != nil {
		// An overflowing joint space cannot be materialized.
		panic(err)
	}
	out := make([]Assignment, 0, product)
	current := make(Assignment, len(keys))
	var recurse func(depth int)
	recurse = func(depth int) {
		if depth == len(keys) {
			out = append(out, current.Clone())
			return
		}
		dk := keys[depth]
		for state := 0; state < dk.Card; state++ {
			current[dk.Key] = state
			recurse(depth + 1)
		}
		delete(current, dk.Key)
	}
	recurse(0)
	return out
}
