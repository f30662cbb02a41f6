// Package dtree implements a compressed decision tree: a total function
// from assignments over a set of discrete keys to leaf values of an
// arbitrary type.
//
// What & Why:
//
//	Hybrid inference indexes per-hypothesis payloads (conditionals, factor
//	collections) by assignments of discrete mode variables. Materializing
//	one entry per joint assignment grows exponentially with the number of
//	variables, while in practice most assignments share payloads. A decision
//	tree stores one branch per state only where the function actually
//	depends on a key, and collapses subtrees whose induced functions are
//	equal, so its size is bounded by the number of distinct reachable
//	leaves rather than by the joint assignment space.
//
// Representation invariants:
//
//   - Along every root→leaf path keys strictly ascend by id, so each key is
//     assigned at most once per path (canonical global order).
//   - A node branching on key k carries exactly Card(k) branches, one per
//     state in [0, Card(k)).
//   - No node has all branches equal under the tree's leaf equality: such
//     nodes are collapsed on construction and after every operation
//     (mandatory compression).
//
// Leaf equality is supplied by the caller as an EqFunc at construction and
// is used for compression and tree equality; values are never compared by
// identity. Equality between whole trees is assignment-based: two trees are
// equal iff they induce the same function over every assignment of the
// union of their key sets, whatever shape each happens to be stored in.
//
// All operations are pure: trees are immutable after construction, and
// Apply/Map/Choose allocate fresh trees without touching their operands.
// Concurrent reads of a built tree need no locking.
//
// Complexity:
//
//	Construction from a flat list of P leaves runs in O(P).
//	Apply runs in O(|result|·C) for result size |result| and max cardinality
//	C; recursion depth equals the number of distinct keys on a path.
//
// Errors (sentinel):
//
//	ErrNilEq            - constructor given a nil leaf-equality function.
//	ErrNilTree          - nil tree operand.
//	ErrNilCombine       - Apply given a nil combiner.
//	ErrNilMap           - Map given a nil transform.
//	ErrBadCardinality   - a key with cardinality < 2.
//	ErrDuplicateKey     - a key listed twice, or a branch depending on the
//	                      key that selects it.
//	ErrLeafCount        - flat-list length ≠ product of cardinalities.
//	ErrBranchCount      - explicit branch count ≠ key cardinality.
//	ErrCardinalityClash - one key id used with two different cardinalities.
//	ErrMissingKey       - evaluation assignment lacks a key the tree needs.
//	ErrBadState         - state index outside [0, cardinality).
package dtree
