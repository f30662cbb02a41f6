// Package vars defines the variable identities shared by every hybnet
// package: plain continuous/discrete variable keys, discrete keys with
// finite cardinalities, and assignments of states to discrete keys.
//
// What & Why:
//
//	Hybrid probabilistic models mix continuous variables (positions,
//	velocities, landmarks) with discrete variables (modes, data
//	associations). Both are identified by a Key (an opaque uint64) so
//	that containers never depend on what a variable means, only on its
//	identity. A DiscreteKey pairs a Key with the number of states the
//	variable can take; an Assignment picks one state per discrete key.
//
// Conventions:
//
//   - Cardinalities are always ≥ 2; a single-state "choice" is not a choice.
//   - Assignment enumeration is canonical: the first key in a DiscreteKeys
//     slice varies slowest (outermost), the last varies fastest.
//   - Formatting of keys is cosmetic and pluggable via KeyFormatter;
//     Symbol offers the common char+index naming scheme (x0, v3, m1, …).
//
// Errors:
//
//	ErrBadCardinality  - discrete cardinality below 2.
//	ErrDuplicateKey    - the same Key listed twice in a DiscreteKeys set.
//	ErrProductOverflow - joint state count exceeds the int range.
package vars
