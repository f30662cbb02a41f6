package vars

import (
	"errors"
	"math"
)

// Sentinel errors for discrete-key handling.
var (
	// ErrBadCardinality indicates a discrete key with fewer than two states.
	ErrBadCardinality = errors.New("vars: discrete cardinality must be at least 2")

	// ErrDuplicateKey indicates the same Key appears twice in a DiscreteKeys set.
	ErrDuplicateKey = errors.New("vars: duplicate discrete key")

	// ErrProductOverflow indicates the joint state count does not fit in an int.
	ErrProductOverflow = errors.New("vars: cardinality product overflows int")
)

// MinCardinality is the smallest admissible number of states of a discrete
// variable.
const MinCardinality = 2

// DiscreteKey pairs a variable identity with the number of states the
// variable can take.
type DiscreteKey struct {
	// Key identifies the discrete variable.
	Key Key

	// Card is the number of states, always ≥ MinCardinality in a valid key.
	Card int
}

// Valid reports whether the key carries an admissible cardinality.
func (d DiscreteKey) Valid() bool {
	return d.Card >= MinCardinality
}

// DiscreteKeys is an ordered collection of discrete keys. Order is
// meaningful: it fixes the canonical assignment enumeration (first key
// outermost) used by flat-list constructors and by printing.
type DiscreteKeys []DiscreteKey

// Keys returns the bare Key slice in the same order.
// Complexity: O(n).
func (dks DiscreteKeys) Keys() []Key {
	out := make([]Key, len(dks))
	for i, dk := range dks {
		out[i] = dk.Key
	}
	return out
}

// Contains reports whether k is one of the discrete keys.
// Complexity: O(n).
func (dks DiscreteKeys) Contains(k Key) bool {
	return dks.IndexOf(k) >= 0
}

// IndexOf returns the position of k in the collection, or -1 when absent.
// Complexity: O(n).
func (dks DiscreteKeys) IndexOf(k Key) int {
	for i, dk := range dks {
		if dk.Key == k {
			return i
		}
	}
	return -1
}

// Validate checks cardinalities and key uniqueness for the whole set.
// Returns ErrBadCardinality or ErrDuplicateKey on the first violation.
// Complexity: O(n).
func (dks DiscreteKeys) Validate() error {
	seen := make(map[Key]struct{}, len(dks))
	for _, dk := range dks {
		if !dk.Valid() {
			return ErrBadCardinality
		}
		if _, dup := seen[dk.Key]; dup {
			return ErrDuplicateKey
		}
		seen[dk.Key] = struct{}{}
	}
	return nil
}

// Product returns the number of joint assignments over the set, i.e. the
// product of all cardinalities. The empty set has exactly one (empty)
// assignment.
// Returns ErrProductOverflow when the count exceeds the int range.
// Complexity: O(n).
func (dks DiscreteKeys) Product() (int, error) {
	product := 1
	for _, dk := range dks {
		if dk.Card > 0 && product > math.MaxInt/dk.Card {
			return 0, ErrProductOverflow
		}
		product *= dk.Card
	}
	return product, nil
}

// EqualAsSets reports whether two collections name the same keys with the
// same cardinalities, ignoring order.
// Complexity: O(n).
func (dks DiscreteKeys) EqualAsSets(other DiscreteKeys) bool {
	if len(dks) != len(other) {
		return false
	}
	cards := make(map[Key]int, len(dks))
	for _, dk := range dks {
		cards[dk.Key] = dk.Card
	}
	if len(cards) != len(dks) {
		return false // duplicates can never match a valid set
	}
	for _, dk := range other {
		card, ok := cards[dk.Key]
		if !ok || card != dk.Card {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the collection.
// Complexity: O(n).
func (dks DiscreteKeys) Clone() DiscreteKeys {
	if dks == nil {
		return nil
	}
	out := make(DiscreteKeys, len(dks))
	copy(out, dks)
	return out
}
